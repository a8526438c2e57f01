package library_test

import (
	"os"
	"path/filepath"
	"slices"
	"testing"

	"tracksmith/internal/library"
	"tracksmith/internal/testsupport"
)

func TestDirSourceListing(t *testing.T) {
	root := t.TempDir()
	testsupport.WriteLibrary(t, root, testsupport.LibraryTree{
		"Queen": {
			"A Night at the Opera": {"11 - Bohemian Rhapsody.flac", "cover.jpg"},
			"News of the World":    {"02 - We Will Rock You.mp3"},
		},
		"David Bowie": {
			"Hunky Dory": {"04 - Life on Mars.mp3"},
		},
	})
	// Loose files at the root must not surface as artists.
	if err := os.WriteFile(filepath.Join(root, "README.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	source := library.NewDirSource(root)

	artists, err := source.ArtistDirs()
	if err != nil {
		t.Fatalf("ArtistDirs: %v", err)
	}
	slices.Sort(artists)
	if want := []string{"David Bowie", "Queen"}; !slices.Equal(artists, want) {
		t.Errorf("ArtistDirs = %v, want %v", artists, want)
	}

	albums, err := source.AlbumDirs("Queen")
	if err != nil {
		t.Fatalf("AlbumDirs: %v", err)
	}
	slices.Sort(albums)
	if want := []string{"A Night at the Opera", "News of the World"}; !slices.Equal(albums, want) {
		t.Errorf("AlbumDirs = %v, want %v", albums, want)
	}

	files, err := source.TrackFiles("Queen", "A Night at the Opera")
	if err != nil {
		t.Fatalf("TrackFiles: %v", err)
	}
	if want := []string{"11 - Bohemian Rhapsody.flac"}; !slices.Equal(files, want) {
		t.Errorf("TrackFiles = %v, want %v (non-audio files must be filtered)", files, want)
	}

	path := source.FilePath("Queen", "A Night at the Opera", "11 - Bohemian Rhapsody.flac")
	if _, err := os.Stat(path); err != nil {
		t.Errorf("FilePath %q does not resolve: %v", path, err)
	}
}

func TestDirSourceMissingRoot(t *testing.T) {
	source := library.NewDirSource(filepath.Join(t.TempDir(), "does-not-exist"))
	if _, err := source.ArtistDirs(); err == nil {
		t.Error("expected error for missing root")
	}
}
