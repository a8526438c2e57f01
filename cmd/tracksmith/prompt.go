package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"tracksmith/internal/match"
)

// terminalPrompter shows disambiguation shortlists on the terminal and reads
// selections from stdin. Input validation lives in the disambiguator; this
// type only renders and reads.
type terminalPrompter struct {
	in  *bufio.Reader
	out io.Writer
}

func newTerminalPrompter(in io.Reader, out io.Writer) *terminalPrompter {
	return &terminalPrompter{in: bufio.NewReader(in), out: out}
}

func (p *terminalPrompter) Present(query match.Query, shortlist []match.Candidate) error {
	fmt.Fprintf(p.out, "\nNo confident match for %s - %s. Closest library files:\n", query.Artist, query.Title)

	rows := make([][]string, 0, len(shortlist))
	for i, candidate := range shortlist {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			candidate.Artist,
			candidate.Title,
			fmt.Sprintf("%.2f", candidate.Score),
			yesNo(candidate.Live),
			yesNo(candidate.FLAC),
			candidate.Filename,
		})
	}
	fmt.Fprintln(p.out, renderTable(
		[]string{"#", "Artist", "Title", "Score", "Live", "FLAC", "File"},
		rows,
		[]columnAlignment{alignRight, alignLeft, alignLeft, alignRight, alignLeft, alignLeft, alignLeft},
	))
	return nil
}

func (p *terminalPrompter) RequestSelection(max int) (string, error) {
	fmt.Fprintf(p.out, "Select 1-%d, or %q to skip: ", max, match.SkipInput)
	line, err := p.in.ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("read selection: %w", err)
	}
	return line, nil
}
