package library

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestFolderKey(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"ncs/semiconductor/arch/page_01.md", "ncs/semiconductor/arch"},
		{"a/b/c/d/e", "a/b/c"},
		{"a/b", "a/b"},
		{"single.md", "single.md"},
	}
	for _, tt := range tests {
		if got := FolderKey(tt.in); got != tt.want {
			t.Errorf("FolderKey(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFindRelated(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "ncs", "arch", "doc1", "fig2.png"))
	writeFile(t, filepath.Join(root, "ncs", "arch", "doc1", "fig1.jpeg"))
	writeFile(t, filepath.Join(root, "ncs", "arch", "doc1", "notes.txt"))
	writeFile(t, filepath.Join(root, "ncs", "arch", "other", "unrelated.png"))

	images := FindRelated(root, "ncs/arch/doc1/page_03.md")

	if len(images) != 2 {
		t.Fatalf("expected 2 images, got %d: %+v", len(images), images)
	}
	// sorted by name
	if images[0].Name != "fig1.jpeg" || images[1].Name != "fig2.png" {
		t.Errorf("unexpected order: %+v", images)
	}
	if !strings.HasPrefix(images[0].Path, URLPrefix+"ncs/arch/doc1/") {
		t.Errorf("unexpected path: %q", images[0].Path)
	}
}

func TestFindRelatedMissingFolder(t *testing.T) {
	if images := FindRelated(t.TempDir(), "no/such/folder/file.md"); images != nil {
		t.Errorf("expected nil for missing folder, got %+v", images)
	}
}

func TestFindRelatedCap(t *testing.T) {
	root := t.TempDir()
	for i := 0; i < 15; i++ {
		writeFile(t, filepath.Join(root, "d", "e", "f", string(rune('a'+i))+".png"))
	}
	if images := FindRelated(root, "d/e/f/x.md"); len(images) != maxRelatedImages {
		t.Errorf("expected %d images, got %d", maxRelatedImages, len(images))
	}
}

func TestCollectRelatedDedupsFolders(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a", "b", "c", "img.png"))

	images := CollectRelated(root, []string{
		"a/b/c/one.md",
		"a/b/c/two.md", // same folder, must not duplicate images
	}, 12)

	if len(images) != 1 {
		t.Errorf("expected 1 image after dedup, got %d: %+v", len(images), images)
	}
}

func TestCollectRelatedLimit(t *testing.T) {
	root := t.TempDir()
	for i := 0; i < 8; i++ {
		writeFile(t, filepath.Join(root, "a", "b", "c", string(rune('a'+i))+".png"))
	}
	if images := CollectRelated(root, []string{"a/b/c/x.md"}, 3); len(images) != 3 {
		t.Errorf("expected limit of 3, got %d", len(images))
	}
}

func TestScanText(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "intro.md"), []byte("# hi"), 0o644); err != nil {
		t.Fatal(err)
	}
	writeFile(t, filepath.Join(root, "sub", "notes.txt"))
	writeFile(t, filepath.Join(root, "sub", "image.png"))

	files, err := ScanText(root, nil)
	if err != nil {
		t.Fatalf("ScanText: %v", err)
	}
	if len(files) != 2 {
		t.Fatalf("expected 2 text files, got %d: %+v", len(files), files)
	}
	for _, f := range files {
		if strings.HasSuffix(f.RelPath, ".png") {
			t.Errorf("image should not be scanned: %q", f.RelPath)
		}
	}
}

func TestScanTextCustomGlob(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a.md"))
	writeFile(t, filepath.Join(root, "b.rst"))

	files, err := ScanText(root, []string{"**/*.rst"})
	if err != nil {
		t.Fatalf("ScanText: %v", err)
	}
	if len(files) != 1 || files[0].RelPath != "b.rst" {
		t.Errorf("expected only b.rst, got %+v", files)
	}
}
