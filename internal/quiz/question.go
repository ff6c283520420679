// Package quiz holds the canonical Question entity and the coercions that
// turn raw cell values into its typed fields.
package quiz

import (
	"slices"
	"sort"
)

// Question is the canonical quiz entity emitted by the projector.
// Field order is the order of the emitted literal.
type Question struct {
	ID          int     `json:"id"`
	Category    string  `json:"category"`
	Difficulty  string  `json:"difficulty"`
	Question    string  `json:"question"`
	Options     Options `json:"options"`
	Answer      string  `json:"answer"`
	Explanation string  `json:"explanation"`
}

// Options maps an option letter to its text. Encoding sorts keys, so the
// literal always lists A, B, C, D in order.
type Options map[string]string

// Letters returns the option keys in sorted order.
func (o Options) Letters() []string {
	letters := make([]string, 0, len(o))
	for k := range o {
		letters = append(letters, k)
	}

	sort.Strings(letters)

	return letters
}

// Has reports whether letter is one of the option keys.
func (o Options) Has(letter string) bool {
	_, ok := o[letter]
	return ok
}

// HasAll reports whether every letter is present.
func (o Options) HasAll(letters []string) bool {
	return !slices.ContainsFunc(letters, func(l string) bool { return !o.Has(l) })
}

// DefaultLetters are the option keys of a four-choice question.
var DefaultLetters = []string{"A", "B", "C", "D"}
