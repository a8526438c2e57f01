package jellyfin

import (
	"os"
)

// Candidate locations probed by auto-detection, most common first.
var (
	DefaultMusicPaths = []string{
		"/mnt/datapool/music",
		"/media/music",
		"/var/lib/jellyfin/music",
		"/home/jellyfin/music",
		"/music",
		"/data/music",
		"/srv/music",
	}

	DefaultPlaylistPaths = []string{
		"/var/lib/jellyfin/data/playlists",
		"/config/data/playlists",
		"/jellyfin/data/playlists",
		"/home/jellyfin/data/playlists",
	}
)

// DetectMusicDir returns the first candidate that exists and contains at
// least one subdirectory, which is what an artist-organized library looks
// like. Unreadable candidates are skipped.
func DetectMusicDir(candidates []string) (string, bool) {
	for _, path := range candidates {
		entries, err := os.ReadDir(path)
		if err != nil {
			continue
		}
		for _, entry := range entries {
			if entry.IsDir() {
				return path, true
			}
		}
	}
	return "", false
}

// DetectPlaylistDir returns the first candidate that exists as a directory.
func DetectPlaylistDir(candidates []string) (string, bool) {
	for _, path := range candidates {
		info, err := os.Stat(path)
		if err != nil || !info.IsDir() {
			continue
		}
		return path, true
	}
	return "", false
}
