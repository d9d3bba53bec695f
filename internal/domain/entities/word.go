// Package entities contains domain entities used across the application.
package entities

import "strings"

// Word represents a single vocabulary entry.
type Word struct {
	ID       int    `json:"id"`       // unique identifier, assigned by the store
	Word     string `json:"word"`     // the vocabulary word itself
	Meaning  string `json:"meaning"`  // translation or definition
	Phonetic string `json:"phonetic"` // pronunciation / reading
	Topic    string `json:"topic"`    // free-text grouping label, may be empty
}

// SameWord reports whether w and other share the same word value,
// compared case-insensitively. Word uniqueness is enforced on this.
func (w Word) SameWord(other string) bool {
	return strings.EqualFold(strings.TrimSpace(w.Word), strings.TrimSpace(other))
}

// Matches reports whether the query is a case-insensitive substring of
// any of the word's text fields.
func (w Word) Matches(query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}

	for _, field := range []string{w.Word, w.Meaning, w.Phonetic, w.Topic} {
		if strings.Contains(strings.ToLower(field), q) {
			return true
		}
	}

	return false
}
