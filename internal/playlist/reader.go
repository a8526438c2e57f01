package playlist

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Track is one artist/title pair requested by the playlist. Order is
// preserved and duplicates are allowed.
type Track struct {
	Artist string
	Title  string
}

// Column synonyms, in priority order. The first column whose cell is
// non-empty wins for each row.
var (
	artistColumns = []string{"artist", "creator"}
	titleColumns  = []string{"title", "track", "song"}
)

// ReadFile parses a playlist file by extension: .csv uses header-based
// column matching, anything else is treated as "Artist - Title" lines.
// A CSV file that cannot be parsed as CSV falls back to the text format.
func ReadFile(path string) ([]Track, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read playlist: %w", err)
	}

	if strings.EqualFold(filepath.Ext(path), ".csv") {
		if tracks, err := parseCSV(data); err == nil {
			return tracks, nil
		}
	}
	return parseText(data), nil
}

func parseCSV(data []byte) ([]Track, error) {
	reader := csv.NewReader(strings.NewReader(string(data)))
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv: %w", err)
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("csv has no data rows")
	}

	artistIdx := columnIndexes(records[0], artistColumns)
	titleIdx := columnIndexes(records[0], titleColumns)
	if len(artistIdx) == 0 || len(titleIdx) == 0 {
		return nil, fmt.Errorf("csv header has no recognized artist/title columns")
	}

	var tracks []Track
	for _, row := range records[1:] {
		artist := firstNonEmpty(row, artistIdx)
		title := firstNonEmpty(row, titleIdx)
		if artist == "" || title == "" {
			continue
		}
		tracks = append(tracks, Track{Artist: artist, Title: title})
	}
	return tracks, nil
}

// columnIndexes returns the header positions matching the synonym list, in
// synonym priority order.
func columnIndexes(header []string, synonyms []string) []int {
	var indexes []int
	for _, name := range synonyms {
		for i, col := range header {
			if strings.EqualFold(strings.TrimSpace(col), name) {
				indexes = append(indexes, i)
			}
		}
	}
	return indexes
}

func firstNonEmpty(row []string, indexes []int) string {
	for _, i := range indexes {
		if i >= len(row) {
			continue
		}
		if value := strings.TrimSpace(row[i]); value != "" {
			return value
		}
	}
	return ""
}

func parseText(data []byte) []Track {
	var tracks []Track
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		artist, title, found := strings.Cut(line, " - ")
		if !found {
			continue
		}
		artist = strings.TrimSpace(artist)
		title = strings.TrimSpace(title)
		if artist == "" || title == "" {
			continue
		}
		tracks = append(tracks, Track{Artist: artist, Title: title})
	}
	return tracks
}
