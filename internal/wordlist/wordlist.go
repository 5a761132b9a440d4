// Package wordlist normalizes and filters the word lists fed to the
// word-placement generators: uppercase A-Z only, length bounds, a
// distinct-letter cap, and an optional blocklist.
package wordlist

import (
	"errors"
	"strings"
)

// Default filter bounds. Words shorter than 4 letters make degenerate
// placements; the distinct-letter cap of 7 matches the letter-tray
// constraint of the word game the lists are curated for.
const (
	DefaultMinLength       = 4
	DefaultMaxLength       = 12
	DefaultDistinctLetters = 7
)

// ErrEmptyList reports that filtering removed every word.
var ErrEmptyList = errors.New("no words remain after filtering")

// Options configures word filtering. Zero values fall back to the
// package defaults; an empty Blocklist blocks nothing.
type Options struct {
	MinLength       int
	MaxLength       int
	DistinctLetters int
	Blocklist       map[string]bool
}

// DefaultOptions returns the standard filter settings.
func DefaultOptions() *Options {
	return &Options{
		MinLength:       DefaultMinLength,
		MaxLength:       DefaultMaxLength,
		DistinctLetters: DefaultDistinctLetters,
	}
}

// Normalize uppercases a word and strips everything outside A-Z.
func Normalize(word string) string {
	var sb strings.Builder
	sb.Grow(len(word))
	for _, r := range strings.ToUpper(word) {
		if r >= 'A' && r <= 'Z' {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// Filter normalizes, deduplicates, and filters words by the options,
// preserving first-occurrence order. Returns ErrEmptyList when nothing
// survives.
func Filter(words []string, opts *Options) ([]string, error) {
	if opts == nil {
		opts = DefaultOptions()
	}
	minLen := opts.MinLength
	if minLen <= 0 {
		minLen = DefaultMinLength
	}
	maxLen := opts.MaxLength
	if maxLen <= 0 {
		maxLen = DefaultMaxLength
	}
	distinct := opts.DistinctLetters
	if distinct <= 0 {
		distinct = DefaultDistinctLetters
	}

	seen := make(map[string]bool, len(words))
	out := make([]string, 0, len(words))
	for _, raw := range words {
		w := Normalize(raw)
		if len(w) < minLen || len(w) > maxLen {
			continue
		}
		if distinctLetters(w) > distinct {
			continue
		}
		if opts.Blocklist[w] || seen[w] {
			continue
		}
		seen[w] = true
		out = append(out, w)
	}
	if len(out) == 0 {
		return nil, ErrEmptyList
	}
	return out, nil
}

func distinctLetters(word string) int {
	var mask uint32
	for i := 0; i < len(word); i++ {
		mask |= 1 << (word[i] - 'A')
	}
	n := 0
	for ; mask != 0; mask &= mask - 1 {
		n++
	}
	return n
}
