package report

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

//go:embed schema.sql
var schemaSQL string

// schemaVersion is the current schema version. Bump this when the schema
// changes; old history databases must be deleted after a bump.
const schemaVersion = 1

// ErrSchemaMismatch indicates the history database was written by an
// incompatible tracksmith version.
var ErrSchemaMismatch = errors.New("schema version mismatch")

// Track statuses recorded per run.
const (
	StatusMatched = "matched"
	StatusSkipped = "skipped"
)

// Run is one recorded generate invocation.
type Run struct {
	ID           string
	PlaylistName string
	PlaylistPath string
	CreatedAt    time.Time
	Requested    int
	Matched      int
	Skipped      int
}

// TrackRecord is the outcome of one playlist line within a run.
type TrackRecord struct {
	Position int
	Artist   string
	Title    string
	Status   string
	Stage    string
	Path     string
	Score    float64
	Live     bool
	FLAC     bool
}

// Store manages run-history persistence backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
}

// Open initializes or connects to the history database at dbPath.
func Open(dbPath string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create history directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{db: db, path: dbPath}
	if err := store.initSchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Path returns the database file location.
func (s *Store) Path() string {
	return s.path
}

func (s *Store) initSchema(ctx context.Context) error {
	var tableExists int
	err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(1) FROM sqlite_master WHERE type='table' AND name='schema_version'",
	).Scan(&tableExists)
	if err != nil {
		return fmt.Errorf("check schema_version table: %w", err)
	}

	if tableExists == 0 {
		return s.createSchema(ctx)
	}

	var version int
	if err := s.db.QueryRowContext(ctx, "SELECT version FROM schema_version LIMIT 1").Scan(&version); err != nil {
		return fmt.Errorf("read schema version: %w", err)
	}
	if version != schemaVersion {
		return fmt.Errorf("%w: database has version %d, expected %d (delete %s to reset)",
			ErrSchemaMismatch, version, schemaVersion, s.path)
	}
	return nil
}

func (s *Store) createSchema(ctx context.Context) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin schema tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, schemaSQL); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	if _, err := tx.ExecContext(ctx, "INSERT INTO schema_version (version) VALUES (?)", schemaVersion); err != nil {
		return fmt.Errorf("record schema version: %w", err)
	}
	return tx.Commit()
}

// SaveRun records one generate invocation and its per-track outcomes. The
// run ID is generated here and returned.
func (s *Store) SaveRun(ctx context.Context, playlistName, playlistPath string, tracks []TrackRecord) (*Run, error) {
	run := &Run{
		ID:           uuid.NewString(),
		PlaylistName: playlistName,
		PlaylistPath: playlistPath,
		CreatedAt:    time.Now().UTC(),
		Requested:    len(tracks),
	}
	for _, track := range tracks {
		if track.Status == StatusMatched {
			run.Matched++
		} else {
			run.Skipped++
		}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin run tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO runs (id, playlist_name, playlist_path, created_at, requested, matched, skipped)
         VALUES (?, ?, ?, ?, ?, ?, ?)`,
		run.ID, run.PlaylistName, run.PlaylistPath,
		run.CreatedAt.Format(time.RFC3339Nano),
		run.Requested, run.Matched, run.Skipped,
	)
	if err != nil {
		return nil, fmt.Errorf("insert run: %w", err)
	}

	for _, track := range tracks {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO run_tracks (run_id, position, artist, title, status, stage, path, score, live, flac)
             VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			run.ID, track.Position, track.Artist, track.Title,
			track.Status, track.Stage, track.Path, track.Score,
			boolToInt(track.Live), boolToInt(track.FLAC),
		)
		if err != nil {
			return nil, fmt.Errorf("insert run track: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit run: %w", err)
	}
	return run, nil
}

// ListRecent returns up to limit runs, newest first.
func (s *Store) ListRecent(ctx context.Context, limit int) ([]*Run, error) {
	if limit <= 0 {
		limit = 10
	}
	// Ordered by insertion, not the timestamp string: RFC3339Nano trims
	// trailing zeros, so its lexicographic order is not chronological.
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, playlist_name, playlist_path, created_at, requested, matched, skipped
         FROM runs ORDER BY rowid DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var runs []*Run
	for rows.Next() {
		var run Run
		var createdAt string
		if err := rows.Scan(&run.ID, &run.PlaylistName, &run.PlaylistPath,
			&createdAt, &run.Requested, &run.Matched, &run.Skipped); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		run.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt)
		if err != nil {
			return nil, fmt.Errorf("parse run timestamp: %w", err)
		}
		runs = append(runs, &run)
	}
	return runs, rows.Err()
}

// RunTracks returns the per-track outcomes of one run, in playlist order.
func (s *Store) RunTracks(ctx context.Context, runID string) ([]TrackRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT position, artist, title, status, stage, path, score, live, flac
         FROM run_tracks WHERE run_id = ? ORDER BY position`, runID)
	if err != nil {
		return nil, fmt.Errorf("query run tracks: %w", err)
	}
	defer rows.Close()

	var tracks []TrackRecord
	for rows.Next() {
		var track TrackRecord
		var live, flac int
		if err := rows.Scan(&track.Position, &track.Artist, &track.Title,
			&track.Status, &track.Stage, &track.Path, &track.Score, &live, &flac); err != nil {
			return nil, fmt.Errorf("scan run track: %w", err)
		}
		track.Live = live != 0
		track.FLAC = flac != 0
		tracks = append(tracks, track)
	}
	return tracks, rows.Err()
}

func boolToInt(value bool) int {
	if value {
		return 1
	}
	return 0
}
