package prompt

import (
	"testing"

	"github.com/sonderlabs/sonder/internal/survey"
)

var standardLabels = []string{
	"Strongly disagree",
	"Disagree",
	"Neutral",
	"Agree",
	"Strongly agree",
}

func TestScaleOptions_LabelledStandardScale(t *testing.T) {
	q := survey.Question{Prompt: "p", Dimension: "d", ScaleMin: 1, ScaleMax: 5}

	opts := ScaleOptions(q, standardLabels)
	if len(opts) != 5 {
		t.Fatalf("expected 5 options, got %d", len(opts))
	}
	if opts[0].Value != 1 || opts[4].Value != 5 {
		t.Errorf("option values = %d..%d, want 1..5", opts[0].Value, opts[4].Value)
	}
	if opts[0].Key != "1 (Strongly disagree)" {
		t.Errorf("first label = %q, want %q", opts[0].Key, "1 (Strongly disagree)")
	}
	if opts[4].Key != "5 (Strongly agree)" {
		t.Errorf("last label = %q, want %q", opts[4].Key, "5 (Strongly agree)")
	}
}

func TestScaleOptions_NumericFallbackForOtherScales(t *testing.T) {
	q := survey.Question{Prompt: "p", Dimension: "d", ScaleMin: 1, ScaleMax: 7}

	opts := ScaleOptions(q, standardLabels)
	if len(opts) != 7 {
		t.Fatalf("expected 7 options, got %d", len(opts))
	}
	for i, opt := range opts {
		want := i + 1
		if opt.Value != want {
			t.Errorf("option %d value = %d, want %d", i, opt.Value, want)
		}
	}
	if opts[0].Key != "1" {
		t.Errorf("first label = %q, want plain %q", opts[0].Key, "1")
	}
}

func TestScaleOptions_NoLabels(t *testing.T) {
	q := survey.Question{Prompt: "p", Dimension: "d", ScaleMin: 1, ScaleMax: 5}

	opts := ScaleOptions(q, nil)
	if opts[2].Key != "3" {
		t.Errorf("label without configured labels = %q, want %q", opts[2].Key, "3")
	}
}
