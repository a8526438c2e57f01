// Package testsupport provides helpers for building throwaway music library
// trees and configurations in tests.
package testsupport

import (
	"os"
	"path/filepath"
	"testing"
)

// LibraryTree describes an artist/album/file layout: outer keys are artist
// folders, inner keys album folders, slices the track file names.
type LibraryTree map[string]map[string][]string

// WriteLibrary materializes a library tree under root. File contents are a
// short placeholder; only names and layout matter to the matcher.
func WriteLibrary(t testing.TB, root string, tree LibraryTree) {
	t.Helper()

	for artist, albums := range tree {
		for album, files := range albums {
			dir := filepath.Join(root, artist, album)
			if err := os.MkdirAll(dir, 0o755); err != nil {
				t.Fatalf("mkdir %s: %v", dir, err)
			}
			for _, file := range files {
				path := filepath.Join(dir, file)
				if err := os.WriteFile(path, []byte("audio"), 0o644); err != nil {
					t.Fatalf("write %s: %v", path, err)
				}
			}
		}
	}
}
