// Package report persists run history in a SQLite database.
//
// Every generate run records the playlist it produced and the per-track
// outcomes (matched with stage and score, or skipped), so past decisions
// can be reviewed after the fact with the history command.
package report
