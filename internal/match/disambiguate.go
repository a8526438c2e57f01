package match

import (
	"log/slog"
	"strconv"
	"strings"

	"tracksmith/internal/logging"
)

// SkipInput is the selection token that skips the current query.
const SkipInput = "s"

// Prompter supplies the human interaction channel for ambiguous queries.
// Present shows the ranked shortlist; RequestSelection returns one raw input
// line. Validation and re-prompting are owned by the Disambiguator, so a
// Prompter implementation stays a dumb pipe.
type Prompter interface {
	Present(query Query, shortlist []Candidate) error
	RequestSelection(max int) (string, error)
}

// Disambiguator re-queries at recall-oriented thresholds and lets a human
// pick from the shortlist.
type Disambiguator struct {
	retriever *Retriever
	prompter  Prompter
	logger    *slog.Logger
}

// NewDisambiguator creates a Disambiguator using the given prompter.
func NewDisambiguator(retriever *Retriever, prompter Prompter, logger *slog.Logger) *Disambiguator {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Disambiguator{retriever: retriever, prompter: prompter, logger: logger}
}

// Disambiguate returns the chosen candidate, or nil when the shortlist is
// empty or the user skips. An empty shortlist never prompts. Invalid input
// (non-numeric, out of range) is re-prompted, never treated as a skip.
func (d *Disambiguator) Disambiguate(query Query) (*Candidate, error) {
	candidates := d.retriever.Retrieve(query, InteractiveThresholds)
	if len(candidates) == 0 {
		d.logger.Info("no candidates even at interactive thresholds",
			logging.String("artist", query.Artist),
			logging.String("title", query.Title))
		return nil, nil
	}

	shortlist := candidates
	if len(shortlist) > ShortlistSize {
		shortlist = shortlist[:ShortlistSize]
	}
	if err := d.prompter.Present(query, shortlist); err != nil {
		return nil, err
	}

	for {
		input, err := d.prompter.RequestSelection(len(shortlist))
		if err != nil {
			return nil, err
		}
		input = strings.ToLower(strings.TrimSpace(input))
		if input == SkipInput {
			return nil, nil
		}
		index, err := strconv.Atoi(input)
		if err != nil || index < 1 || index > len(shortlist) {
			continue
		}
		chosen := shortlist[index-1]
		d.logger.Info("candidate selected interactively",
			logging.String("artist", query.Artist),
			logging.String("title", query.Title),
			logging.String("file", chosen.Filename))
		return &chosen, nil
	}
}
