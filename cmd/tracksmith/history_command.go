package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"tracksmith/internal/report"
)

func newHistoryCommand(ctx *commandContext) *cobra.Command {
	var limitFlag int

	cmd := &cobra.Command{
		Use:   "history [run-id]",
		Short: "Show recent playlist runs and their per-track outcomes",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			dbPath := cfg.ReportDBPath()
			if dbPath == "" {
				return fmt.Errorf("run history requires paths.log_dir to be configured")
			}

			store, err := report.Open(dbPath)
			if err != nil {
				return err
			}
			defer store.Close()

			if len(args) == 1 {
				return printRunDetail(cmd, store, args[0])
			}
			return printRunList(cmd, store, limitFlag)
		},
	}

	cmd.Flags().IntVarP(&limitFlag, "limit", "l", 10, "Number of runs to show")
	return cmd
}

func printRunList(cmd *cobra.Command, store *report.Store, limit int) error {
	runs, err := store.ListRecent(cmd.Context(), limit)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if len(runs) == 0 {
		fmt.Fprintln(out, "No recorded runs")
		return nil
	}

	rows := make([][]string, 0, len(runs))
	for _, run := range runs {
		rows = append(rows, []string{
			run.ID,
			run.PlaylistName,
			run.CreatedAt.Local().Format(time.DateTime),
			strconv.Itoa(run.Requested),
			strconv.Itoa(run.Matched),
			strconv.Itoa(run.Skipped),
		})
	}
	fmt.Fprintln(out, renderTable(
		[]string{"Run", "Playlist", "When", "Requested", "Matched", "Skipped"},
		rows,
		[]columnAlignment{alignLeft, alignLeft, alignLeft, alignRight, alignRight, alignRight},
	))
	return nil
}

func printRunDetail(cmd *cobra.Command, store *report.Store, runID string) error {
	tracks, err := store.RunTracks(cmd.Context(), runID)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if len(tracks) == 0 {
		fmt.Fprintf(out, "No tracks recorded for run %s\n", runID)
		return nil
	}

	rows := make([][]string, 0, len(tracks))
	for _, track := range tracks {
		score := ""
		if track.Status == report.StatusMatched {
			score = fmt.Sprintf("%.3f", track.Score)
		}
		rows = append(rows, []string{
			strconv.Itoa(track.Position + 1),
			track.Artist,
			track.Title,
			track.Status,
			track.Stage,
			score,
			track.Path,
		})
	}
	fmt.Fprintln(out, renderTable(
		[]string{"#", "Artist", "Title", "Status", "Stage", "Score", "Path"},
		rows,
		[]columnAlignment{alignRight, alignLeft, alignLeft, alignLeft, alignLeft, alignRight, alignLeft},
	))
	return nil
}
