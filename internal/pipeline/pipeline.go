package pipeline

import (
	"log/slog"

	"tracksmith/internal/logging"
	"tracksmith/internal/match"
	"tracksmith/internal/playlist"
)

// Outcome is the final disposition of one requested track.
type Outcome struct {
	Track playlist.Track
	// Matched reports whether a library file was chosen. When true,
	// Candidate and Stage are set.
	Matched   bool
	Candidate match.Candidate
	// Stage names the resolver stage that matched, or "interactive" for a
	// human pick.
	Stage string
}

// StageInteractive marks outcomes chosen by a human rather than a resolver
// stage.
const StageInteractive = "interactive"

// Result summarizes one resolution run. Outcomes holds one entry per input
// track in input order; Paths holds the matched file paths, also in input
// order.
type Result struct {
	Outcomes []Outcome
	Paths    []string
}

// Matched counts the tracks that resolved to a library file.
func (r *Result) Matched() int {
	return len(r.Paths)
}

// Skipped counts the tracks that did not resolve.
func (r *Result) Skipped() int {
	return len(r.Outcomes) - len(r.Paths)
}

// Unresolved returns the input tracks that did not match, in input order.
func (r *Result) Unresolved() []playlist.Track {
	var tracks []playlist.Track
	for _, outcome := range r.Outcomes {
		if !outcome.Matched {
			tracks = append(tracks, outcome.Track)
		}
	}
	return tracks
}

// Pipeline resolves playlist tracks against the library.
type Pipeline struct {
	resolver      *match.Resolver
	disambiguator *match.Disambiguator
	logger        *slog.Logger
}

// New creates a Pipeline. A nil disambiguator disables the interactive pass.
func New(resolver *match.Resolver, disambiguator *match.Disambiguator, logger *slog.Logger) *Pipeline {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Pipeline{resolver: resolver, disambiguator: disambiguator, logger: logger}
}

// Run resolves every track. The automatic pass runs over the whole input
// before the interactive pass starts, so the human only ever sees the
// leftovers. Interactive picks land at their original playlist position,
// not at the end.
func (p *Pipeline) Run(tracks []playlist.Track) (*Result, error) {
	outcomes := make([]Outcome, len(tracks))
	var ambiguous []int

	for i, track := range tracks {
		outcomes[i].Track = track
		query := match.Query{Artist: track.Artist, Title: track.Title}
		resolution := p.resolver.Resolve(query)
		if resolution == nil {
			ambiguous = append(ambiguous, i)
			continue
		}
		outcomes[i].Matched = true
		outcomes[i].Candidate = resolution.Candidate
		outcomes[i].Stage = resolution.Stage
	}

	if p.disambiguator != nil && len(ambiguous) > 0 {
		p.logger.Info("starting interactive pass", logging.Int("tracks", len(ambiguous)))
		for _, i := range ambiguous {
			track := outcomes[i].Track
			chosen, err := p.disambiguator.Disambiguate(match.Query{Artist: track.Artist, Title: track.Title})
			if err != nil {
				return nil, err
			}
			if chosen == nil {
				continue
			}
			outcomes[i].Matched = true
			outcomes[i].Candidate = *chosen
			outcomes[i].Stage = StageInteractive
		}
	}

	result := &Result{Outcomes: outcomes}
	for _, outcome := range outcomes {
		if outcome.Matched {
			result.Paths = append(result.Paths, outcome.Candidate.Path)
		} else {
			p.logger.Info("track not found in library",
				logging.String("artist", outcome.Track.Artist),
				logging.String("title", outcome.Track.Title))
		}
	}
	return result, nil
}
