package wordlist

import (
	"errors"
	"slices"
	"testing"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"gopher", "GOPHER"},
		{"it's", "ITS"},
		{"  mixed-Case ", "MIXEDCASE"},
		{"123", ""},
	}
	for _, tc := range cases {
		if got := Normalize(tc.in); got != tc.want {
			t.Errorf("Normalize(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFilter(t *testing.T) {
	words := []string{
		"cat",        // too short
		"gopher",     // kept
		"Gopher",     // duplicate after normalization
		"sesquipedalianism", // too long
		"facetiously",       // over the distinct-letter cap
		"banana",     // kept, only 3 distinct letters
	}
	got, err := Filter(words, DefaultOptions())
	if err != nil {
		t.Fatalf("Filter failed: %v", err)
	}
	want := []string{"GOPHER", "BANANA"}
	if !slices.Equal(got, want) {
		t.Fatalf("Filter = %v, want %v", got, want)
	}
}

func TestFilterBlocklist(t *testing.T) {
	opts := DefaultOptions()
	opts.Blocklist = map[string]bool{"BLOCKED": true}
	got, err := Filter([]string{"blocked", "allowed"}, opts)
	if err != nil {
		t.Fatalf("Filter failed: %v", err)
	}
	if !slices.Equal(got, []string{"ALLOWED"}) {
		t.Fatalf("Filter = %v, want [ALLOWED]", got)
	}
}

func TestFilterEmptyResult(t *testing.T) {
	if _, err := Filter([]string{"a", "io"}, nil); !errors.Is(err, ErrEmptyList) {
		t.Fatalf("Filter = %v, want ErrEmptyList", err)
	}
}
