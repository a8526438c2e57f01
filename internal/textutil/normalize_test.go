package textutil

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"lowercases and trims", "  Bohemian Rhapsody  ", "bohemian rhapsody"},
		{"strips remaster qualifier", "Bohemian Rhapsody (2011 Remaster)", "bohemian rhapsody"},
		{"strips remix qualifier", "One More Time (Club Remix)", "one more time"},
		{"strips bracketed year", "Starman [1972]", "starman"},
		{"strips bracketed remaster", "Heroes [2017 Remaster]", "heroes"},
		{"ampersand becomes and", "Simon & Garfunkel", "simon and garfunkel"},
		{"plus becomes and", "Florence + the Machine", "florence and the machine"},
		{"umlaut expansion", "Motörhead", "motoerhead"},
		{"sharp s expansion", "Straße", "strasse"},
		{"accent stripping", "Beyoncé", "beyonce"},
		{"collapses whitespace", "The  Dark   Side", "the dark side"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.input)
			if got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"",
		"Bohemian Rhapsody (2011 Remaster)",
		"Motörhead",
		"Simon & Garfunkel",
		"  Voilà   [1999 mix]  ",
		"99 Luftballons",
	}
	for _, input := range inputs {
		once := Normalize(input)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: first %q, second %q", input, once, twice)
		}
	}
}

func TestSanitizeFolderName(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Road Trip 2024", "Road Trip 2024"},
		{"AC/DC Essentials", "AC-DC Essentials"},
		{"What? No!", "What No!"},
		{"  padded  ", "padded"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := SanitizeFolderName(tt.input); got != tt.want {
			t.Errorf("SanitizeFolderName(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
