package report

import (
	"context"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestSaveRunAndListRecent(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	tracks := []TrackRecord{
		{Position: 0, Artist: "Queen", Title: "Bohemian Rhapsody", Status: StatusMatched, Stage: "strict", Path: "/music/q.flac", Score: 0.98, FLAC: true},
		{Position: 1, Artist: "Nena", Title: "Irgendwie", Status: StatusSkipped},
	}
	run, err := store.SaveRun(ctx, "Road Trip", "/playlists/Road Trip/playlist.xml", tracks)
	if err != nil {
		t.Fatalf("SaveRun: %v", err)
	}
	if run.ID == "" {
		t.Error("run has no ID")
	}
	if run.Requested != 2 || run.Matched != 1 || run.Skipped != 1 {
		t.Errorf("run counts = %d/%d/%d, want 2/1/1", run.Requested, run.Matched, run.Skipped)
	}

	runs, err := store.ListRecent(ctx, 5)
	if err != nil {
		t.Fatalf("ListRecent: %v", err)
	}
	if len(runs) != 1 || runs[0].ID != run.ID {
		t.Fatalf("ListRecent = %v, want single run %s", runs, run.ID)
	}
	if runs[0].PlaylistName != "Road Trip" {
		t.Errorf("playlist name = %q", runs[0].PlaylistName)
	}
}

func TestRunTracksPreserveOrder(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	tracks := []TrackRecord{
		{Position: 0, Artist: "A", Title: "One", Status: StatusMatched, Path: "/music/a.mp3", Score: 0.8},
		{Position: 1, Artist: "B", Title: "Two", Status: StatusSkipped},
		{Position: 2, Artist: "C", Title: "Three", Status: StatusMatched, Path: "/music/c.flac", Score: 0.7, Live: true, FLAC: true},
	}
	run, err := store.SaveRun(ctx, "Mix", "/playlists/Mix/playlist.xml", tracks)
	if err != nil {
		t.Fatalf("SaveRun: %v", err)
	}

	got, err := store.RunTracks(ctx, run.ID)
	if err != nil {
		t.Fatalf("RunTracks: %v", err)
	}
	if len(got) != len(tracks) {
		t.Fatalf("got %d tracks, want %d", len(got), len(tracks))
	}
	for i := range tracks {
		if got[i] != tracks[i] {
			t.Errorf("track[%d] = %+v, want %+v", i, got[i], tracks[i])
		}
	}
}

func TestListRecentNewestFirst(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	for _, name := range []string{"First", "Second"} {
		if _, err := store.SaveRun(ctx, name, "/playlists/x", nil); err != nil {
			t.Fatalf("SaveRun(%s): %v", name, err)
		}
	}

	runs, err := store.ListRecent(ctx, 1)
	if err != nil {
		t.Fatalf("ListRecent: %v", err)
	}
	if len(runs) != 1 || runs[0].PlaylistName != "Second" {
		t.Errorf("ListRecent(1) = %v, want newest run Second", runs)
	}
}

func TestOpenExistingDatabase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")
	store, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if _, err := store.SaveRun(context.Background(), "Mix", "/p", nil); err != nil {
		t.Fatal(err)
	}
	if err := store.Close(); err != nil {
		t.Fatal(err)
	}

	reopened, err := Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer reopened.Close()

	runs, err := reopened.ListRecent(context.Background(), 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 1 {
		t.Errorf("got %d runs after reopen, want 1", len(runs))
	}
}
