package library

import (
	"path/filepath"
	"regexp"
	"strings"
)

// audioExtensions are the file types considered part of the library.
var audioExtensions = map[string]struct{}{
	".mp3":  {},
	".flac": {},
	".m4a":  {},
	".ogg":  {},
	".wav":  {},
}

// liveKeywords flag a filename as a live recording when present as a
// case-insensitive substring.
var liveKeywords = []string{"live", "concert", "tour", "festival", "unplugged", "acoustic"}

// trackNumberPrefix matches a leading track number such as "07 - " or "07. ".
var trackNumberPrefix = regexp.MustCompile(`^\d+\s*[-.]\s*`)

// Entry is one audio file discovered in the library with artist and title
// guesses derived from its name.
type Entry struct {
	ArtistDir string
	AlbumDir  string
	FileName  string

	// Artist and Title are parsed from the filename. When the name carries
	// no "Artist - Title" separator the artist falls back to the folder name
	// and the title to the full stem.
	Artist string
	Title  string

	Live bool
	FLAC bool
}

// IsAudioFile reports whether the file name has a recognized audio extension.
// The comparison is case-insensitive.
func IsAudioFile(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	_, ok := audioExtensions[ext]
	return ok
}

// ParseEntry derives an Entry from a file within an artist/album folder.
// The stem is stripped of a leading track number, then split on the first
// " - " separator into artist and title.
func ParseEntry(artistDir, albumDir, fileName string) Entry {
	stem := strings.TrimSuffix(fileName, filepath.Ext(fileName))
	stem = trackNumberPrefix.ReplaceAllString(stem, "")

	entry := Entry{
		ArtistDir: artistDir,
		AlbumDir:  albumDir,
		FileName:  fileName,
		Artist:    artistDir,
		Title:     stem,
		Live:      isLiveName(fileName),
		FLAC:      strings.EqualFold(filepath.Ext(fileName), ".flac"),
	}

	if artist, title, found := strings.Cut(stem, " - "); found {
		entry.Artist = artist
		entry.Title = title
	}
	return entry
}

func isLiveName(name string) bool {
	lowered := strings.ToLower(name)
	for _, keyword := range liveKeywords {
		if strings.Contains(lowered, keyword) {
			return true
		}
	}
	return false
}
