package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"tracksmith/internal/config"
	"tracksmith/internal/jellyfin"
	"tracksmith/internal/library"
	"tracksmith/internal/logging"
	"tracksmith/internal/match"
	"tracksmith/internal/pipeline"
	"tracksmith/internal/playlist"
	"tracksmith/internal/report"
)

func newGenerateCommand(ctx *commandContext) *cobra.Command {
	var nameFlag string
	var musicDirFlag string
	var playlistDirFlag string
	var nonInteractive bool

	cmd := &cobra.Command{
		Use:   "generate <playlist-file>",
		Short: "Resolve a playlist file and write it as a Jellyfin playlist",
		Long: `Resolve every track of a playlist file against the music library and
write the matches as a Jellyfin playlist folder.

The input is either a CSV file with artist/title columns or a plain text
file with one "Artist - Title" line per row. Tracks without a confident
automatic match are offered for interactive selection when running on a
terminal.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if err := applyPathOverrides(cfg, musicDirFlag, playlistDirFlag); err != nil {
				return err
			}

			logger, err := ctx.newLogger(cfg)
			if err != nil {
				return fmt.Errorf("setup logging: %w", err)
			}

			if err := requireDirectory("music directory", cfg.Paths.MusicDir); err != nil {
				return err
			}
			if err := requireDirectory("playlist directory", cfg.Paths.PlaylistDir); err != nil {
				return err
			}

			playlistFile := args[0]
			tracks, err := playlist.ReadFile(playlistFile)
			if err != nil {
				return err
			}
			if len(tracks) == 0 {
				return fmt.Errorf("%s contains no usable artist/title pairs", playlistFile)
			}

			name := strings.TrimSpace(nameFlag)
			if name == "" {
				base := filepath.Base(playlistFile)
				name = strings.TrimSuffix(base, filepath.Ext(base))
			}

			retriever := match.NewRetriever(library.NewDirSource(cfg.Paths.MusicDir), logger)
			resolver := match.NewResolver(retriever, logger)

			var disambiguator *match.Disambiguator
			if cfg.Matching.Interactive && !nonInteractive && stdinIsTerminal() {
				prompter := newTerminalPrompter(cmd.InOrStdin(), cmd.OutOrStdout())
				disambiguator = match.NewDisambiguator(retriever, prompter, logger)
			}

			logger.Info("resolving playlist",
				logging.String("playlist", name),
				logging.Int("tracks", len(tracks)),
				logging.Bool("interactive", disambiguator != nil))

			result, err := pipeline.New(resolver, disambiguator, logger).Run(tracks)
			if err != nil {
				return err
			}
			if result.Matched() == 0 {
				return fmt.Errorf("none of the %d tracks matched the library; playlist not written", len(tracks))
			}

			writer := jellyfin.NewWriter(cfg.Paths.PlaylistDir, jellyfin.Ownership{
				Enabled: cfg.Jellyfin.SetOwnership,
				Owner:   cfg.Jellyfin.Owner,
				Group:   cfg.Jellyfin.Group,
			}, logger)
			written, err := writer.Write(name, result.Paths)
			if err != nil {
				return err
			}

			saveRunHistory(cmd, cfg, logger, name, written, result)
			printSummary(cmd, name, written, result)
			return nil
		},
	}

	cmd.Flags().StringVarP(&nameFlag, "name", "n", "", "Playlist name (defaults to the input file name)")
	cmd.Flags().StringVar(&musicDirFlag, "music-dir", "", "Override the configured music directory")
	cmd.Flags().StringVar(&playlistDirFlag, "playlist-dir", "", "Override the configured playlist directory")
	cmd.Flags().BoolVar(&nonInteractive, "non-interactive", false, "Skip the interactive disambiguation pass")
	return cmd
}

func applyPathOverrides(cfg *config.Config, musicDir, playlistDir string) error {
	if trimmed := strings.TrimSpace(musicDir); trimmed != "" {
		expanded, err := config.ExpandPath(trimmed)
		if err != nil {
			return err
		}
		cfg.Paths.MusicDir = expanded
	}
	if trimmed := strings.TrimSpace(playlistDir); trimmed != "" {
		expanded, err := config.ExpandPath(trimmed)
		if err != nil {
			return err
		}
		cfg.Paths.PlaylistDir = expanded
	}
	return nil
}

func requireDirectory(label, path string) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("%s is not configured; run `tracksmith detect` or set it in the config file", label)
	}
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("%s %s is not accessible: %w", label, path, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s %s is not a directory", label, path)
	}
	return nil
}

func stdinIsTerminal() bool {
	fd := os.Stdin.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func saveRunHistory(cmd *cobra.Command, cfg *config.Config, logger *slog.Logger, name, written string, result *pipeline.Result) {
	if !cfg.Report.Enabled {
		return
	}
	dbPath := cfg.ReportDBPath()
	if dbPath == "" {
		return
	}

	store, err := report.Open(dbPath)
	if err != nil {
		logger.Warn("open run history", logging.Error(err))
		return
	}
	defer store.Close()

	records := make([]report.TrackRecord, 0, len(result.Outcomes))
	for i, outcome := range result.Outcomes {
		record := report.TrackRecord{
			Position: i,
			Artist:   outcome.Track.Artist,
			Title:    outcome.Track.Title,
			Status:   report.StatusSkipped,
		}
		if outcome.Matched {
			record.Status = report.StatusMatched
			record.Stage = outcome.Stage
			record.Path = outcome.Candidate.Path
			record.Score = outcome.Candidate.Score
			record.Live = outcome.Candidate.Live
			record.FLAC = outcome.Candidate.FLAC
		}
		records = append(records, record)
	}

	if _, err := store.SaveRun(cmd.Context(), name, written, records); err != nil {
		logger.Warn("save run history", logging.Error(err))
	}
}

func printSummary(cmd *cobra.Command, name, written string, result *pipeline.Result) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "\nPlaylist %q written to %s\n", name, written)
	fmt.Fprintf(out, "Matched %d of %d tracks\n", result.Matched(), len(result.Outcomes))

	unresolved := result.Unresolved()
	if len(unresolved) == 0 {
		return
	}
	fmt.Fprintln(out, "Not found in library:")
	for _, track := range unresolved {
		fmt.Fprintf(out, "  %s - %s\n", track.Artist, track.Title)
	}
}
