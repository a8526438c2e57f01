// Package library provides access to an artist/album/track music library
// tree and parses audio filenames into artist and title guesses.
//
// Source is deliberately a one-level-at-a-time listing capability rather
// than a recursive walker: the retriever prunes entire artist subtrees by
// folder-name similarity before any per-file work, which is what keeps full
// library scans tractable. DirSource is the filesystem implementation.
package library
