package match_test

import (
	"fmt"
	"strings"
	"testing"

	"tracksmith/internal/match"
	"tracksmith/internal/testsupport"
)

type fakePrompter struct {
	inputs        []string
	presentCalls  int
	shortlistSize int
}

func (p *fakePrompter) Present(query match.Query, shortlist []match.Candidate) error {
	p.presentCalls++
	p.shortlistSize = len(shortlist)
	return nil
}

func (p *fakePrompter) RequestSelection(max int) (string, error) {
	if len(p.inputs) == 0 {
		return "", fmt.Errorf("prompter script exhausted")
	}
	input := p.inputs[0]
	p.inputs = p.inputs[1:]
	return input, nil
}

func TestDisambiguateSelection(t *testing.T) {
	prompter := &fakePrompter{inputs: []string{"1"}}
	d := match.NewDisambiguator(newRetriever(t, standardTree()), prompter, nil)

	chosen, err := d.Disambiguate(match.Query{Artist: "Queen", Title: "Opera Rock Song"})
	if err != nil {
		t.Fatalf("Disambiguate: %v", err)
	}
	if chosen == nil {
		t.Fatal("expected a candidate")
	}
	if !strings.Contains(chosen.Path, "Bohemian Rhapsody") {
		t.Errorf("chosen = %q", chosen.Path)
	}
	if prompter.presentCalls != 1 {
		t.Errorf("Present called %d times, want 1", prompter.presentCalls)
	}
}

func TestDisambiguateSkip(t *testing.T) {
	prompter := &fakePrompter{inputs: []string{"s"}}
	d := match.NewDisambiguator(newRetriever(t, standardTree()), prompter, nil)

	chosen, err := d.Disambiguate(match.Query{Artist: "Queen", Title: "Opera Rock Song"})
	if err != nil {
		t.Fatalf("Disambiguate: %v", err)
	}
	if chosen != nil {
		t.Errorf("chosen = %+v, want nil after skip", chosen)
	}
}

func TestDisambiguateRepromptsOnInvalidInput(t *testing.T) {
	// Garbage, zero, and out-of-range selections are all re-prompted; only
	// the final valid index is honored.
	prompter := &fakePrompter{inputs: []string{"abc", "0", "99", "1"}}
	d := match.NewDisambiguator(newRetriever(t, standardTree()), prompter, nil)

	chosen, err := d.Disambiguate(match.Query{Artist: "Queen", Title: "Opera Rock Song"})
	if err != nil {
		t.Fatalf("Disambiguate: %v", err)
	}
	if chosen == nil {
		t.Fatal("expected a candidate after re-prompting")
	}
	if len(prompter.inputs) != 0 {
		t.Errorf("%d scripted inputs unused", len(prompter.inputs))
	}
}

func TestDisambiguateEmptyShortlistNeverPrompts(t *testing.T) {
	prompter := &fakePrompter{}
	d := match.NewDisambiguator(newRetriever(t, standardTree()), prompter, nil)

	chosen, err := d.Disambiguate(match.Query{Artist: "Xylophonic Zebras", Title: "Quartz Vortex"})
	if err != nil {
		t.Fatalf("Disambiguate: %v", err)
	}
	if chosen != nil {
		t.Errorf("chosen = %+v, want nil", chosen)
	}
	if prompter.presentCalls != 0 {
		t.Error("Present was called for an empty shortlist")
	}
}

func TestDisambiguateCapsShortlist(t *testing.T) {
	tree := testsupport.LibraryTree{"Queen": {}}
	for i := 0; i < 15; i++ {
		album := fmt.Sprintf("Album %02d", i)
		tree["Queen"][album] = []string{"01 - Anthem.mp3"}
	}
	prompter := &fakePrompter{inputs: []string{"s"}}
	d := match.NewDisambiguator(newRetriever(t, tree), prompter, nil)

	if _, err := d.Disambiguate(match.Query{Artist: "Queen", Title: "Anthem"}); err != nil {
		t.Fatalf("Disambiguate: %v", err)
	}
	if prompter.shortlistSize != match.ShortlistSize {
		t.Errorf("shortlist size = %d, want %d", prompter.shortlistSize, match.ShortlistSize)
	}
}
