package service

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/ndquang/vocab-trainer/internal/domain/entities"
)

// similarityThreshold is the Levenshtein similarity required for a typed
// word or phonetic answer to count as a typo rather than a mistake.
const similarityThreshold = 0.8

// AnswerChecker grades free-text quiz answers with a loose normalizer:
// case, punctuation, diacritics and extra whitespace never make an answer
// wrong. Meaning answers additionally tolerate partial containment, since
// translations often differ by particles ("con mèo" vs "mèo").
type AnswerChecker struct{}

func NewAnswerChecker() *AnswerChecker {
	return &AnswerChecker{}
}

// Check reports whether userAnswer matches correctAnswer for a question
// of the given mode.
func (c *AnswerChecker) Check(userAnswer, correctAnswer, mode string) bool {
	user := normalizeAnswer(userAnswer)
	correct := normalizeAnswer(correctAnswer)

	if user == "" || correct == "" {
		return false
	}

	if user == correct {
		return true
	}

	if entities.AnswerField(mode) == "meaning" {
		if strings.Contains(user, correct) || strings.Contains(correct, user) {
			return true
		}
		return wordSubset(user, correct) || wordSubset(correct, user)
	}

	return similarity(user, correct) >= similarityThreshold
}

// normalizeAnswer lowercases, strips diacritics and punctuation, and
// collapses whitespace.
func normalizeAnswer(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))

	// NFD decomposition followed by removal of combining marks folds
	// "mèo" and "meo" into the same string.
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	if folded, _, err := transform.String(t, s); err == nil {
		s = folded
	}

	s = strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			return r
		}
		return ' '
	}, s)

	return strings.Join(strings.Fields(s), " ")
}

// wordSubset reports whether every word of sub occurs in super.
func wordSubset(sub, super string) bool {
	superWords := make(map[string]bool)
	for _, w := range strings.Fields(super) {
		superWords[w] = true
	}

	for _, w := range strings.Fields(sub) {
		if !superWords[w] {
			return false
		}
	}

	return true
}

// similarity is 1 minus the normalized Levenshtein distance.
func similarity(s1, s2 string) float64 {
	maxLen := len([]rune(s1))
	if l := len([]rune(s2)); l > maxLen {
		maxLen = l
	}
	if maxLen == 0 {
		return 1.0
	}

	return 1.0 - float64(levenshteinDistance(s1, s2))/float64(maxLen)
}

// levenshteinDistance computes the edit distance between two strings
// using two rolling rows instead of the full matrix.
func levenshteinDistance(s1, s2 string) int {
	r1 := []rune(s1)
	r2 := []rune(s2)

	cols := len(r2) + 1
	prev := make([]int, cols)
	curr := make([]int, cols)

	for j := 0; j < cols; j++ {
		prev[j] = j
	}

	for i := 1; i <= len(r1); i++ {
		curr[0] = i

		for j := 1; j < cols; j++ {
			cost := 1
			if r1[i-1] == r2[j-1] {
				cost = 0
			}

			curr[j] = min(
				curr[j-1]+1,    // insertion
				prev[j]+1,      // deletion
				prev[j-1]+cost, // substitution
			)
		}

		prev, curr = curr, prev
	}

	return prev[cols-1]
}
