package match

import "sort"

// Query is one requested playlist entry.
type Query struct {
	Artist string
	Title  string
}

// Candidate is a scored library file proposed as a match for a Query.
type Candidate struct {
	Path     string
	Artist   string // parsed from the filename, display form
	Title    string
	Filename string

	// Score is the weighted similarity blend plus the FLAC bonus. It can
	// exceed 1.0 by the bonus amount; that headroom is deliberate.
	Score     float64
	ArtistSim float64 // artist-folder similarity
	TitleSim  float64

	Live bool
	FLAC bool
}

// liveRank and formatRank turn the tie-break flags into explicit ordered
// ranks so the sort key is spelled out rather than relying on incidental
// boolean ordering: studio before live, FLAC before lossy.
func (c Candidate) liveRank() int {
	if c.Live {
		return 1
	}
	return 0
}

func (c Candidate) formatRank() int {
	if c.FLAC {
		return 0
	}
	return 1
}

// Less orders candidates by the fixed composite key (liveness rank, format
// rank, descending score).
func Less(a, b Candidate) bool {
	if a.liveRank() != b.liveRank() {
		return a.liveRank() < b.liveRank()
	}
	if a.formatRank() != b.formatRank() {
		return a.formatRank() < b.formatRank()
	}
	return a.Score > b.Score
}

// SortCandidates sorts in place by the composite key. The sort is stable, so
// fully tied candidates keep their discovery order.
func SortCandidates(candidates []Candidate) {
	sort.SliceStable(candidates, func(i, j int) bool {
		return Less(candidates[i], candidates[j])
	})
}
