package library

import (
	"os"
	"path/filepath"
)

// Source lists the music library tree one level at a time. Implementations
// return immediate subdirectory or file names, never recursive walks.
type Source interface {
	// ArtistDirs returns the immediate subdirectories of the library root.
	ArtistDirs() ([]string, error)
	// AlbumDirs returns the subdirectories of one artist folder.
	AlbumDirs(artist string) ([]string, error)
	// TrackFiles returns the audio file names inside one album folder.
	TrackFiles(artist, album string) ([]string, error)
	// FilePath returns the absolute path of a track file.
	FilePath(artist, album, file string) string
}

// DirSource reads a library tree rooted at a filesystem directory.
type DirSource struct {
	Root string
}

// NewDirSource creates a Source over the given library root.
func NewDirSource(root string) *DirSource {
	return &DirSource{Root: root}
}

func (s *DirSource) ArtistDirs() ([]string, error) {
	return subdirectories(s.Root)
}

func (s *DirSource) AlbumDirs(artist string) ([]string, error) {
	return subdirectories(filepath.Join(s.Root, artist))
}

func (s *DirSource) TrackFiles(artist, album string) ([]string, error) {
	entries, err := os.ReadDir(filepath.Join(s.Root, artist, album))
	if err != nil {
		return nil, err
	}
	var files []string
	for _, entry := range entries {
		if entry.IsDir() || !IsAudioFile(entry.Name()) {
			continue
		}
		files = append(files, entry.Name())
	}
	return files, nil
}

func (s *DirSource) FilePath(artist, album, file string) string {
	return filepath.Join(s.Root, artist, album, file)
}

func subdirectories(path string) ([]string, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, err
	}
	var dirs []string
	for _, entry := range entries {
		if entry.IsDir() {
			dirs = append(dirs, entry.Name())
		}
	}
	return dirs, nil
}
