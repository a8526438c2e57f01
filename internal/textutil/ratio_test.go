package textutil

import (
	"math"
	"testing"
)

func TestRatioIdentical(t *testing.T) {
	for _, s := range []string{"", "a", "bohemian rhapsody", "99 luftballons"} {
		if got := Ratio(s, s); got != 1.0 {
			t.Errorf("Ratio(%q, %q) = %v, want 1.0", s, s, got)
		}
	}
}

func TestRatioDisjoint(t *testing.T) {
	if got := Ratio("abc", "xyz"); got != 0 {
		t.Errorf("Ratio(disjoint) = %v, want 0", got)
	}
}

func TestRatioPartial(t *testing.T) {
	// "ab" matches, "c"/"d" do not: 2*2/6.
	got := Ratio("abc", "abd")
	want := 2.0 * 2.0 / 6.0
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("Ratio(abc, abd) = %v, want %v", got, want)
	}
}

func TestRatioRecursesAroundLongestBlock(t *testing.T) {
	// Longest block "bcd", then nothing matches on the flanks: 2*3/8.
	got := Ratio("abcd", "bcdx")
	want := 2.0 * 3.0 / 8.0
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("Ratio(abcd, bcdx) = %v, want %v", got, want)
	}
}

func TestSimilarityNormalizes(t *testing.T) {
	pairs := [][2]string{
		{"Queen", "queen"},
		{"Beyoncé", "Beyonce"},
		{"Bohemian Rhapsody (2011 Remaster)", "Bohemian Rhapsody"},
		{"Simon & Garfunkel", "Simon and Garfunkel"},
	}
	for _, pair := range pairs {
		if got := Similarity(pair[0], pair[1]); got != 1.0 {
			t.Errorf("Similarity(%q, %q) = %v, want 1.0", pair[0], pair[1], got)
		}
	}
}

func TestSimilaritySelf(t *testing.T) {
	for _, s := range []string{"Queen", "Mötley Crüe", "The Dark Side of the Moon"} {
		if got := Similarity(s, s); got != 1.0 {
			t.Errorf("Similarity(%q, %q) = %v, want 1.0", s, s, got)
		}
	}
}

func TestSimilarityEmptyConvention(t *testing.T) {
	if got := Similarity("", ""); got != 1.0 {
		t.Errorf("Similarity(empty, empty) = %v, want 1.0", got)
	}
}
