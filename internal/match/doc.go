// Package match resolves artist/title queries against a music library by
// fuzzy string matching.
//
// The Retriever walks the library one artist folder at a time, pruning whole
// subtrees whose folder name is too dissimilar to the queried artist before
// any per-file work. Surviving files are scored with a weighted blend of
// folder-artist, file-artist, and title similarity, filtered by three
// independent threshold floors, and ordered by a fixed tie-break key: studio
// recordings before live ones, FLAC before lossy, then descending score.
//
// The Resolver escalates through three fixed threshold stages, strict to
// loose, and takes the top candidate of the first stage that produces any.
// A single fixed threshold either misses legitimate fuzzy matches or admits
// too much noise; escalation only loosens after a higher-precision pass has
// been exhausted.
//
// The Disambiguator handles what the resolver cannot: it re-queries at
// recall-oriented thresholds and hands a ranked shortlist to a
// caller-supplied Prompter for a human decision. The matching core has no
// direct dependency on any input/output channel.
package match
