// Package pipeline drives playlist resolution end to end.
//
// Every requested track goes through the automatic resolver first; tracks
// that miss get a second chance in the interactive pass when a prompter is
// available. Output order always follows input order, interactive picks
// included, and every input track is accounted for as either matched or
// skipped.
package pipeline
