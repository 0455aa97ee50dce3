package output

import (
	"strings"
	"testing"
)

func TestScoreBar_Fill(t *testing.T) {
	SetNoColor(true)
	defer SetNoColor(false)

	tests := []struct {
		name       string
		score      float64
		width      int
		wantFilled int
		wantEmpty  int
	}{
		{"empty", 0.0, 10, 0, 10},
		{"midpoint", 0.5, 10, 5, 5},
		{"full", 1.0, 10, 10, 0},
		{"rounds down", 0.79, 10, 7, 3},
		{"narrow", 0.5, 4, 2, 2},
		{"clamped above", 1.4, 10, 10, 0},
		{"clamped below", -0.2, 10, 0, 10},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := ScoreBar(tc.score, tc.width)
			if n := strings.Count(got, "█"); n != tc.wantFilled {
				t.Errorf("filled cells = %d, want %d", n, tc.wantFilled)
			}
			if n := strings.Count(got, "░"); n != tc.wantEmpty {
				t.Errorf("empty cells = %d, want %d", n, tc.wantEmpty)
			}
		})
	}
}

func TestScoreBar_NumericSuffix(t *testing.T) {
	SetNoColor(true)
	defer SetNoColor(false)

	got := ScoreBar(0.375, 10)
	if !strings.HasSuffix(got, "0.38") {
		t.Errorf("expected two-decimal score suffix, got %q", got)
	}
}

func TestScoreBar_DefaultWidth(t *testing.T) {
	SetNoColor(true)
	defer SetNoColor(false)

	got := ScoreBar(1.0, 0)
	if n := strings.Count(got, "█"); n != 10 {
		t.Errorf("default width = %d cells, want 10", n)
	}
}

func TestSection(t *testing.T) {
	SetNoColor(true)
	defer SetNoColor(false)

	got := Section("Big Five Snapshot")
	if !strings.Contains(got, "Big Five Snapshot") {
		t.Errorf("expected title in section header, got %q", got)
	}
	if !strings.Contains(got, "─") {
		t.Error("expected horizontal rule under section title")
	}
}
