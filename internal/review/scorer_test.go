package review

import (
	"strings"
	"testing"
)

func TestScoreEmptyText(t *testing.T) {
	// Base 50, minus 20 for length < 150, no suggestions, no keywords.
	if got := Score(nil, ""); got != 30 {
		t.Fatalf("expected 30, got %d", got)
	}
}

func TestScoreClampsToZero(t *testing.T) {
	text := "I think I helped with the project and I was responsible for sales."

	suggestions := Match(text)
	if len(suggestions) == 0 {
		t.Fatalf("expected weak phrases in fixture text")
	}

	if got := Score(suggestions, text); got != 0 {
		t.Fatalf("expected clamped score 0, got %d", got)
	}
}

func TestScoreLongTextWithKeywords(t *testing.T) {
	// 602 runes, two keywords, no weak phrases: 50 + 20 + 20 = 90.
	text := strings.Repeat("x", 588) + " data software"

	suggestions := Match(text)
	if len(suggestions) != 0 {
		t.Fatalf("fixture text must not contain weak phrases, got %v", suggestions)
	}

	if got := Score(suggestions, text); got != 90 {
		t.Fatalf("expected 90, got %d", got)
	}
}

func TestScoreKeywordBonusCappedPerKeyword(t *testing.T) {
	text := "python python python " + strings.Repeat("x", 200)

	// 221 runes (no length adjustment), one keyword counted once.
	if got := Score(nil, text); got != 60 {
		t.Fatalf("expected 60, got %d", got)
	}
}

func TestScoreLengthBandBoundaries(t *testing.T) {
	cases := []struct {
		name   string
		length int
		want   int
	}{
		{"just below short limit", 149, 30},
		{"exactly short limit", 150, 50},
		{"exactly long limit", 500, 50},
		{"just above long limit", 501, 70},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			text := strings.Repeat("x", tc.length)
			if got := Score(nil, text); got != tc.want {
				t.Fatalf("length %d: expected %d, got %d", tc.length, tc.want, got)
			}
		})
	}
}

func TestScoreCountsRunesNotBytes(t *testing.T) {
	// 150 runes but 300 bytes: no short-text penalty.
	text := strings.Repeat("é", 150)
	if got := Score(nil, text); got != 50 {
		t.Fatalf("expected 50, got %d", got)
	}
}

func TestScoreStaysInBounds(t *testing.T) {
	texts := []string{
		"",
		strings.Repeat("i think ", 500),
		strings.Repeat("data software python ", 100),
		strings.Repeat("I believe I helped with data. ", 50),
	}

	for _, text := range texts {
		got := Score(Match(text), text)
		if got < 0 || got > 100 {
			t.Fatalf("score %d out of bounds for %q...", got, text[:min(len(text), 30)])
		}
	}
}

func TestSignalsAreIndependent(t *testing.T) {
	in := ScoreInput{Suggestions: 2, Length: 700, Text: "shipping software"}

	deltas := map[string]int{}
	for _, signal := range Signals() {
		deltas[signal.Name] = signal.Delta(in)
	}

	if deltas["weak_phrases"] != -30 {
		t.Fatalf("expected weak_phrases -30, got %d", deltas["weak_phrases"])
	}
	if deltas["length_band"] != 20 {
		t.Fatalf("expected length_band +20, got %d", deltas["length_band"])
	}
	if deltas["keywords"] != 10 {
		t.Fatalf("expected keywords +10, got %d", deltas["keywords"])
	}
}
