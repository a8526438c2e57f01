package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"tracksmith/internal/library"
	"tracksmith/internal/match"
)

func newMatchCommand(ctx *commandContext) *cobra.Command {
	var stageFlag string

	cmd := &cobra.Command{
		Use:   "match <artist> <title>",
		Short: "Show how a single track matches against the library",
		Long: `Score one artist/title query against the music library and print every
candidate per resolver stage. Useful for understanding why a playlist
track matched the wrong file or nothing at all.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.newLogger(cfg)
			if err != nil {
				return fmt.Errorf("setup logging: %w", err)
			}
			if err := requireDirectory("music directory", cfg.Paths.MusicDir); err != nil {
				return err
			}

			query := match.Query{Artist: args[0], Title: args[1]}
			retriever := match.NewRetriever(library.NewDirSource(cfg.Paths.MusicDir), logger)

			stages := append(match.Stages(), match.Stage{Name: "interactive", Thresholds: match.InteractiveThresholds})
			if stageFlag != "" {
				selected, err := stageByName(stages, stageFlag)
				if err != nil {
					return err
				}
				stages = []match.Stage{selected}
			}

			out := cmd.OutOrStdout()
			for _, stage := range stages {
				candidates := retriever.Retrieve(query, stage.Thresholds)
				fmt.Fprintf(out, "\nStage %s: %d candidate(s)\n", stage.Name, len(candidates))
				if len(candidates) == 0 {
					continue
				}
				rows := make([][]string, 0, len(candidates))
				for i, candidate := range candidates {
					rows = append(rows, []string{
						strconv.Itoa(i + 1),
						fmt.Sprintf("%.3f", candidate.Score),
						fmt.Sprintf("%.3f", candidate.ArtistSim),
						fmt.Sprintf("%.3f", candidate.TitleSim),
						yesNo(candidate.Live),
						yesNo(candidate.FLAC),
						candidate.Path,
					})
				}
				fmt.Fprintln(out, renderTable(
					[]string{"#", "Score", "Artist Sim", "Title Sim", "Live", "FLAC", "Path"},
					rows,
					[]columnAlignment{alignRight, alignRight, alignRight, alignRight, alignLeft, alignLeft, alignLeft},
				))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&stageFlag, "stage", "", "Only evaluate one stage (strict, medium, loose, interactive)")
	return cmd
}

func stageByName(stages []match.Stage, name string) (match.Stage, error) {
	for _, stage := range stages {
		if stage.Name == name {
			return stage, nil
		}
	}
	return match.Stage{}, fmt.Errorf("unknown stage %q", name)
}
