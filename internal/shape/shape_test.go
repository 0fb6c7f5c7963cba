package shape

import (
	"strings"
	"testing"
)

func TestClamp(t *testing.T) {
	tests := []struct {
		name       string
		n, lo, hi  int
		want       int
	}{
		{"above range", 500, 1, 100, 100},
		{"below range", 0, 1, 100, 1},
		{"inside range", 42, 1, 100, 42},
		{"at low bound", 1, 1, 100, 1},
		{"at high bound", 100, 1, 100, 100},
		{"negative input", -7, 1, 100, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Clamp(tt.n, tt.lo, tt.hi); got != tt.want {
				t.Errorf("Clamp(%d, %d, %d) = %d, want %d", tt.n, tt.lo, tt.hi, got, tt.want)
			}
		})
	}
}

func TestTruncateText(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		maxChars int
		want     string
		cut      bool
	}{
		{"over budget", "abcdef", 3, "abc" + TruncationMarker, true},
		{"under budget", "ab", 3, "ab", false},
		{"exactly at budget", "abc", 3, "abc", false},
		{"empty input", "", 10, "", false},
		{"zero budget", "abc", 0, TruncationMarker, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, cut := TruncateText(tt.in, tt.maxChars)
			if got != tt.want || cut != tt.cut {
				t.Errorf("TruncateText(%q, %d) = (%q, %v), want (%q, %v)",
					tt.in, tt.maxChars, got, cut, tt.want, tt.cut)
			}
		})
	}
}

func TestTruncateText_MultibyteBudgetIsCharacters(t *testing.T) {
	in := "héllo wörld"
	got, cut := TruncateText(in, 4)
	if !cut {
		t.Fatal("expected truncation")
	}
	want := "héll" + TruncationMarker
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	// Cutting mid-rune would leave an invalid prefix.
	if strings.ContainsRune(got, '�') {
		t.Errorf("truncation corrupted multibyte text: %q", got)
	}
}

func TestCapList(t *testing.T) {
	tests := []struct {
		name        string
		items       []int
		max         int
		want        []int
		wantDropped int
	}{
		{"over cap", []int{1, 2, 3, 4, 5}, 2, []int{1, 2}, 3},
		{"under cap", []int{1, 2}, 5, []int{1, 2}, 0},
		{"at cap", []int{1, 2}, 2, []int{1, 2}, 0},
		{"zero cap", []int{1, 2}, 0, []int{}, 2},
		{"empty input", []int{}, 3, []int{}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, dropped := CapList(tt.items, tt.max)
			if dropped != tt.wantDropped {
				t.Errorf("dropped = %d, want %d", dropped, tt.wantDropped)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("got %v, want %v", got, tt.want)
					break
				}
			}
		})
	}
}

func TestCapList_PreservesOrder(t *testing.T) {
	items := []string{"z", "a", "m", "b"}
	got, dropped := CapList(items, 3)
	if dropped != 1 {
		t.Fatalf("dropped = %d, want 1", dropped)
	}
	for i, want := range []string{"z", "a", "m"} {
		if got[i] != want {
			t.Errorf("got[%d] = %q, want %q", i, got[i], want)
		}
	}
}
