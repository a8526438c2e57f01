// Package playlist parses flat playlist descriptions into track queries.
//
// Two input shapes are supported: CSV with a header row (column names are
// matched against a small synonym set, case-insensitively) and plain text
// with one "Artist - Title" pair per line. Rows that carry no recognizable
// artist/title pair are dropped silently; a malformed input file is a data
// problem, not a reason to abort a run.
package playlist
