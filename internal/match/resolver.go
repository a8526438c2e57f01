package match

import (
	"log/slog"

	"tracksmith/internal/logging"
)

// Resolution is a successful automatic match: the winning candidate and the
// stage that produced it.
type Resolution struct {
	Candidate Candidate
	Stage     string
}

// Resolver runs the retriever at progressively looser thresholds.
type Resolver struct {
	retriever *Retriever
	stages    []Stage
	logger    *slog.Logger
}

// NewResolver creates a Resolver using the standard escalation stages.
func NewResolver(retriever *Retriever, logger *slog.Logger) *Resolver {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Resolver{retriever: retriever, stages: Stages(), logger: logger}
}

// Resolve returns the top-ranked candidate of the first stage that yields
// any, or nil when every stage comes up empty. A stricter stage's result is
// always preferred over anything a looser stage might find.
func (r *Resolver) Resolve(query Query) *Resolution {
	for _, stage := range r.stages {
		candidates := r.retriever.Retrieve(query, stage.Thresholds)
		if len(candidates) == 0 {
			continue
		}
		top := candidates[0]
		r.logger.Debug("query resolved",
			logging.String("artist", query.Artist),
			logging.String("title", query.Title),
			logging.String("stage", stage.Name),
			logging.String("file", top.Filename),
			logging.Float64("score", top.Score),
			logging.Int("candidates", len(candidates)))
		return &Resolution{Candidate: top, Stage: stage.Name}
	}
	return nil
}
