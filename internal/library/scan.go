package library

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// TextFile is one indexable document found under the library root.
type TextFile struct {
	// RelPath is the slash-separated path relative to the root.
	RelPath string
	Content string
}

// DefaultIncludes matches the text formats the indexer understands.
var DefaultIncludes = []string{"**/*.md", "**/*.txt"}

// ScanText walks root and returns every file matching one of the include
// globs. Globs use doublestar syntax so ** spans directories.
func ScanText(root string, includes []string) ([]TextFile, error) {
	if len(includes) == 0 {
		includes = DefaultIncludes
	}

	var files []TextFile
	err := filepath.Walk(root, func(p string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			if strings.HasPrefix(info.Name(), ".") && p != root {
				return filepath.SkipDir
			}
			return nil
		}

		rel, err := filepath.Rel(root, p)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)

		if !matchesAny(includes, rel) {
			return nil
		}

		content, err := os.ReadFile(p)
		if err != nil {
			return fmt.Errorf("reading %s: %w", rel, err)
		}
		files = append(files, TextFile{RelPath: rel, Content: string(content)})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", root, err)
	}
	return files, nil
}

func matchesAny(patterns []string, rel string) bool {
	for _, pattern := range patterns {
		if matched, err := doublestar.PathMatch(pattern, rel); err == nil && matched {
			return true
		}
		// also match against the bare file name for simple patterns
		if matched, err := doublestar.PathMatch(pattern, filepath.Base(rel)); err == nil && matched {
			return true
		}
	}
	return false
}
