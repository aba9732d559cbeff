package fuzzy

import (
	"reflect"
	"testing"
)

func TestMatchSubsequence(t *testing.T) {
	tests := []struct {
		query     string
		candidate string
		want      bool
	}{
		{"ntx", "notes.txt", true},
		{"xtn", "notes.txt", false},
		{"", "notes.txt", true},
		{"", "", true},
		{"notes.txt", "notes.txt", true},
		{"NOTES", "notes.txt", true},
		{"z", "notes.txt", false},
		{"a", "", false},
	}

	for _, tt := range tests {
		if got := Match(tt.query, tt.candidate); got != tt.want {
			t.Fatalf("Match(%q, %q) = %v, want %v", tt.query, tt.candidate, got, tt.want)
		}
	}
}

func TestFilterPreservesOrder(t *testing.T) {
	t.Parallel()

	candidates := []string{"zeta.txt", "alpha.txt", "beta.md", "gamma.txt"}

	got := Filter("at", candidates)
	want := []string{"zeta.txt", "alpha.txt", "gamma.txt"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}

	got = Filter("md", candidates)
	want = []string{"beta.md"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestFilterEmptyQueryIsIdentity(t *testing.T) {
	t.Parallel()

	candidates := []string{"b.txt", "a.txt", "c.txt"}
	got := Filter("", candidates)
	if !reflect.DeepEqual(got, candidates) {
		t.Fatalf("expected %v, got %v", candidates, got)
	}

	got[0] = "mutated"
	if candidates[0] != "b.txt" {
		t.Fatalf("expected Filter to return a copy")
	}
}

func TestFilterIsIdempotent(t *testing.T) {
	t.Parallel()

	candidates := []string{"notes.txt", "todo.md", "nixos.txt", "readme"}
	first := Filter("nt", candidates)
	second := Filter("nt", candidates)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("expected identical results, got %v and %v", first, second)
	}
}

func TestFilterAgreesWithMatch(t *testing.T) {
	t.Parallel()

	candidates := []string{"notes.txt", "todo.md", "nixos.txt", "readme", "NT"}
	for _, query := range []string{"n", "nt", "o.m", "xyz", "e"} {
		var want []string
		for _, c := range candidates {
			if Match(query, c) {
				want = append(want, c)
			}
		}
		got := Filter(query, candidates)
		if len(got) != len(want) {
			t.Fatalf("query %q: Filter %v disagrees with Match %v", query, got, want)
		}
		for i := range got {
			if got[i] != want[i] {
				t.Fatalf("query %q: Filter %v disagrees with Match %v", query, got, want)
			}
		}
	}
}

func TestRankReturnsOnlyMatches(t *testing.T) {
	t.Parallel()

	got := Rank("todo", []string{"readme", "todo.md", "t-o-d-o.txt"})
	if len(got) != 2 {
		t.Fatalf("expected 2 matches, got %v", got)
	}
	if got[0] != "todo.md" {
		t.Fatalf("expected contiguous match to rank first, got %v", got)
	}
}
