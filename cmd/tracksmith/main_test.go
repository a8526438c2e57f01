package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"tracksmith/internal/testsupport"
)

// cliTestEnv holds a throwaway config file plus music and playlist trees.
type cliTestEnv struct {
	configPath  string
	musicDir    string
	playlistDir string
	baseDir     string
}

func setupCLITestEnv(t *testing.T) *cliTestEnv {
	t.Helper()

	base := t.TempDir()
	env := &cliTestEnv{
		baseDir:     base,
		configPath:  filepath.Join(base, "config.toml"),
		musicDir:    filepath.Join(base, "music"),
		playlistDir: filepath.Join(base, "playlists"),
	}
	if err := os.MkdirAll(env.playlistDir, 0o755); err != nil {
		t.Fatal(err)
	}
	testsupport.WriteLibrary(t, env.musicDir, testsupport.LibraryTree{
		"Queen": {
			"A Night at the Opera": {"11 - Bohemian Rhapsody.flac"},
		},
		"David Bowie": {
			"Hunky Dory": {"04 - Life on Mars.mp3"},
		},
	})

	content := fmt.Sprintf(`[paths]
music_dir = %q
playlist_dir = %q
log_dir = %q

[jellyfin]
set_ownership = false

[report]
enabled = true
`, env.musicDir, env.playlistDir, filepath.Join(base, "logs"))
	if err := os.WriteFile(env.configPath, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return env
}

func runCLI(t *testing.T, args []string, configPath string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	if configPath != "" {
		args = append([]string{"--config", configPath}, args...)
	}
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected %q to contain %q", output, substr)
	}
}

func TestGenerateWritesPlaylist(t *testing.T) {
	env := setupCLITestEnv(t)

	playlistFile := filepath.Join(env.baseDir, "road trip.txt")
	content := "Queen - Bohemian Rhapsody\nDavid Bowie - Life on Mars\nUnknown Band - Missing Song\n"
	if err := os.WriteFile(playlistFile, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	out, _, err := runCLI(t, []string{"generate", playlistFile, "--non-interactive"}, env.configPath)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	requireContains(t, out, "Matched 2 of 3 tracks")
	requireContains(t, out, "Unknown Band - Missing Song")

	written := filepath.Join(env.playlistDir, "road trip", "playlist.xml")
	data, err := os.ReadFile(written)
	if err != nil {
		t.Fatalf("expected playlist at %s: %v", written, err)
	}
	if !strings.Contains(string(data), "Bohemian Rhapsody.flac") {
		t.Error("playlist missing matched track")
	}

	// The run lands in history.
	out, _, err = runCLI(t, []string{"history"}, env.configPath)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	requireContains(t, out, "road trip")
}

func TestGenerateFailsWhenNothingMatches(t *testing.T) {
	env := setupCLITestEnv(t)

	playlistFile := filepath.Join(env.baseDir, "misses.txt")
	if err := os.WriteFile(playlistFile, []byte("Xylophonic Zebras - Quartz Vortex\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, _, err := runCLI(t, []string{"generate", playlistFile, "--non-interactive"}, env.configPath)
	if err == nil {
		t.Fatal("expected error when no tracks match")
	}
	if _, statErr := os.Stat(filepath.Join(env.playlistDir, "misses")); !os.IsNotExist(statErr) {
		t.Error("playlist folder was created despite zero matches")
	}
}

func TestGenerateMissingMusicDir(t *testing.T) {
	env := setupCLITestEnv(t)
	if err := os.RemoveAll(env.musicDir); err != nil {
		t.Fatal(err)
	}

	playlistFile := filepath.Join(env.baseDir, "mix.txt")
	if err := os.WriteFile(playlistFile, []byte("Queen - Bohemian Rhapsody\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, _, err := runCLI(t, []string{"generate", playlistFile}, env.configPath); err == nil {
		t.Fatal("expected error for missing music directory")
	}
}

func TestMatchCommand(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"match", "Queen", "Bohemian Rhapsody"}, env.configPath)
	if err != nil {
		t.Fatalf("match: %v", err)
	}
	requireContains(t, out, "Stage strict: 1 candidate(s)")
	requireContains(t, out, "Bohemian Rhapsody.flac")
}

func TestConfigShow(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"config", "show"}, env.configPath)
	if err != nil {
		t.Fatalf("config show: %v", err)
	}
	requireContains(t, out, "paths.music_dir")
	requireContains(t, out, env.musicDir)
}
