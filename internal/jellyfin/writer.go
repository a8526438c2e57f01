package jellyfin

import (
	"encoding/xml"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"

	"tracksmith/internal/logging"
	"tracksmith/internal/textutil"
)

// MediaTypeAudio is the PlaylistMediaType value for music playlists.
const MediaTypeAudio = "Audio"

// Document is the playlist XML shape Jellyfin reads from
// <playlist_dir>/<name>/playlist.xml.
type Document struct {
	XMLName   xml.Name `xml:"Item"`
	Items     []Entry  `xml:"PlaylistItems>PlaylistItem"`
	Shares    struct{} `xml:"Shares"`
	MediaType string   `xml:"PlaylistMediaType"`
}

// Entry is one track reference inside the playlist document.
type Entry struct {
	Path string `xml:"Path"`
}

// Writer creates playlist folders under the Jellyfin playlist directory.
type Writer struct {
	PlaylistDir string
	Ownership   Ownership
	logger      *slog.Logger
}

// NewWriter creates a Writer targeting the given playlist data directory.
func NewWriter(playlistDir string, ownership Ownership, logger *slog.Logger) *Writer {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Writer{PlaylistDir: playlistDir, Ownership: ownership, logger: logger}
}

// Write creates (or replaces) the playlist folder for name and writes the
// document referencing trackPaths in order. It returns the playlist.xml
// path. A file lock inside the folder keeps concurrent runs from
// interleaving their writes.
func (w *Writer) Write(name string, trackPaths []string) (string, error) {
	folder := textutil.SanitizeFolderName(name)
	if folder == "" {
		return "", fmt.Errorf("playlist name %q is empty after sanitization", name)
	}
	if len(trackPaths) == 0 {
		return "", fmt.Errorf("refusing to write empty playlist %q", name)
	}

	dir := filepath.Join(w.PlaylistDir, folder)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create playlist folder: %w", err)
	}

	lock := flock.New(filepath.Join(dir, ".tracksmith.lock"))
	locked, err := lock.TryLock()
	if err != nil {
		return "", fmt.Errorf("acquire playlist lock: %w", err)
	}
	if !locked {
		return "", fmt.Errorf("playlist %q is being written by another tracksmith run", name)
	}
	defer func() {
		if err := lock.Unlock(); err != nil {
			w.logger.Warn("release playlist lock", logging.Error(err))
		}
	}()

	doc := Document{MediaType: MediaTypeAudio}
	doc.Items = make([]Entry, 0, len(trackPaths))
	for _, path := range trackPaths {
		doc.Items = append(doc.Items, Entry{Path: path})
	}

	payload, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal playlist: %w", err)
	}
	payload = append([]byte(xml.Header), payload...)
	payload = append(payload, '\n')

	file := filepath.Join(dir, "playlist.xml")
	if err := os.WriteFile(file, payload, 0o644); err != nil {
		return "", fmt.Errorf("write playlist: %w", err)
	}

	w.applyOwnership(dir, file)
	return file, nil
}
