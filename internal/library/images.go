// Package library locates files under the documents root: related
// images for gallery rendering and text documents for indexing.
package library

import (
	"log"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ragstack/ragview/internal/render"
)

// URLPrefix is the route images are served under.
const URLPrefix = "/documents/"

// maxRelatedImages caps one gallery render; the original viewer shows at
// most ten tiles per source folder.
const maxRelatedImages = 10

// imageExts are the extensions FindRelated picks up.
var imageExts = map[string]bool{
	".jpeg": true,
	".jpg":  true,
	".png":  true,
}

// FolderKey returns the dedup key for a source file: its first three
// path segments, or the whole path if shorter. Sources in the same
// document folder share a key so their images are collected only once.
func FolderKey(sourceFile string) string {
	parts := strings.Split(path.Clean(sourceFile), "/")
	if len(parts) > 3 {
		parts = parts[:3]
	}
	return strings.Join(parts, "/")
}

// FindRelated returns the images living alongside sourceFile under root,
// sorted by name and capped at maxRelatedImages. Paths are returned as
// servable URLs under URLPrefix. A missing folder yields no images, not
// an error.
func FindRelated(root, sourceFile string) []render.Image {
	folder := FolderKey(sourceFile)
	dir := filepath.Join(root, filepath.FromSlash(folder))

	entries, err := os.ReadDir(dir)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("library: reading %s: %v", dir, err)
		}
		return nil
	}

	var images []render.Image
	for _, e := range entries {
		if e.IsDir() || !imageExts[strings.ToLower(filepath.Ext(e.Name()))] {
			continue
		}
		images = append(images, render.Image{
			Path: URLPrefix + path.Join(folder, e.Name()),
			Name: e.Name(),
		})
	}

	sort.Slice(images, func(i, j int) bool { return images[i].Name < images[j].Name })
	if len(images) > maxRelatedImages {
		images = images[:maxRelatedImages]
	}
	return images
}

// CollectRelated gathers related images for a list of source files,
// visiting each document folder once and capping the total.
func CollectRelated(root string, sourceFiles []string, limit int) []render.Image {
	if limit <= 0 {
		limit = maxRelatedImages
	}

	seen := make(map[string]bool)
	var images []render.Image

	for _, src := range sourceFiles {
		key := FolderKey(src)
		if seen[key] {
			continue
		}
		seen[key] = true
		images = append(images, FindRelated(root, src)...)
		if len(images) >= limit {
			images = images[:limit]
			break
		}
	}
	return images
}
