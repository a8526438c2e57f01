package match_test

import (
	"strings"
	"testing"

	"tracksmith/internal/library"
	"tracksmith/internal/match"
)

func newResolver(t *testing.T) *match.Resolver {
	t.Helper()
	return match.NewResolver(newRetriever(t, standardTree()), nil)
}

func TestResolveStrictStage(t *testing.T) {
	resolution := newResolver(t).Resolve(match.Query{Artist: "Queen", Title: "Bohemian Rhapsody"})
	if resolution == nil {
		t.Fatal("expected a resolution")
	}
	if resolution.Stage != match.StageStrict.Name {
		t.Errorf("stage = %q, want strict", resolution.Stage)
	}
}

func TestResolveEscalatesToMedium(t *testing.T) {
	// Title similarity 0.63 against "Bohemian Rhapsody" misses the strict
	// floor of 0.7 but clears medium's 0.6.
	resolution := newResolver(t).Resolve(match.Query{Artist: "Queen", Title: "The Rhapsody Thing"})
	if resolution == nil {
		t.Fatal("expected a resolution")
	}
	if resolution.Stage != match.StageMedium.Name {
		t.Errorf("stage = %q, want medium", resolution.Stage)
	}
	if !strings.Contains(resolution.Candidate.Path, "Bohemian Rhapsody") {
		t.Errorf("candidate = %q", resolution.Candidate.Path)
	}
}

func TestResolveEscalatesToLoose(t *testing.T) {
	// Title similarity 0.52 only clears the loose floor of 0.5.
	resolution := newResolver(t).Resolve(match.Query{Artist: "Queen", Title: "Bo Rap"})
	if resolution == nil {
		t.Fatal("expected a resolution")
	}
	if resolution.Stage != match.StageLoose.Name {
		t.Errorf("stage = %q, want loose", resolution.Stage)
	}
}

func TestResolveNoMatch(t *testing.T) {
	if got := newResolver(t).Resolve(match.Query{Artist: "Queen", Title: "Opera Rock Song"}); got != nil {
		t.Errorf("Resolve = %+v, want nil", got)
	}
}

func TestResolveEmptyLibrary(t *testing.T) {
	retriever := match.NewRetriever(library.NewDirSource(t.TempDir()), nil)
	if got := match.NewResolver(retriever, nil).Resolve(match.Query{Artist: "Queen", Title: "Anthem"}); got != nil {
		t.Errorf("Resolve = %+v, want nil", got)
	}
}
