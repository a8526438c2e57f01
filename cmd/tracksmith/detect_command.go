package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"tracksmith/internal/jellyfin"
)

func newDetectCommand() *cobra.Command {
	return &cobra.Command{
		Use:         "detect",
		Short:       "Probe common Jellyfin music and playlist locations",
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			if musicDir, ok := jellyfin.DetectMusicDir(jellyfin.DefaultMusicPaths); ok {
				fmt.Fprintf(out, "Music directory: %s\n", musicDir)
			} else {
				fmt.Fprintln(out, "Music directory: not found (set paths.music_dir in the config file)")
			}

			if playlistDir, ok := jellyfin.DetectPlaylistDir(jellyfin.DefaultPlaylistPaths); ok {
				fmt.Fprintf(out, "Playlist directory: %s\n", playlistDir)
			} else {
				fmt.Fprintln(out, "Playlist directory: not found (set paths.playlist_dir in the config file)")
			}
			return nil
		},
	}
}
