package review

import (
	"strings"
	"unicode/utf8"
)

// Scoring weights. The three signals are additive and independent; the
// clamp is applied once at the end, so intermediate values may leave
// the [0, 100] range.
const (
	baseScore = 50

	suggestionPenalty = 15

	shortTextLimit   = 150
	shortTextPenalty = 20
	longTextLimit    = 500
	longTextBonus    = 20

	keywordBonus = 10

	minScore = 0
	maxScore = 100
)

// keywords earn a bonus when present anywhere in the lowercased text.
// Substring match on purpose: "database" counts for "data".
var keywords = []string{"data", "software", "python"}

// ScoreInput carries the per-call signal inputs.
type ScoreInput struct {
	// Suggestions is the matcher finding count; content does not matter.
	Suggestions int
	// Length is the text length in runes.
	Length int
	// Text is the original text, used for keyword presence only.
	Text string
}

// Signal is one independent scoring adjustment.
type Signal struct {
	Name  string
	Delta func(in ScoreInput) int
}

// Signals returns the scoring pipeline in evaluation order.
func Signals() []Signal {
	return []Signal{
		{
			Name: "weak_phrases",
			Delta: func(in ScoreInput) int {
				return -suggestionPenalty * in.Suggestions
			},
		},
		{
			Name: "length_band",
			Delta: func(in ScoreInput) int {
				switch {
				case in.Length < shortTextLimit:
					return -shortTextPenalty
				case in.Length > longTextLimit:
					return longTextBonus
				default:
					return 0
				}
			},
		},
		{
			Name: "keywords",
			Delta: func(in ScoreInput) int {
				lower := strings.ToLower(in.Text)
				bonus := 0
				for _, keyword := range keywords {
					if strings.Contains(lower, keyword) {
						bonus += keywordBonus
					}
				}
				return bonus
			},
		},
	}
}

// Score combines the matcher findings with length and keyword signals
// into a bounded quality score. Deterministic and total: any suggestion
// count and any text, including empty, produce a score in [0, 100].
func Score(suggestions []Suggestion, text string) int {
	in := ScoreInput{
		Suggestions: len(suggestions),
		Length:      utf8.RuneCountInString(text),
		Text:        text,
	}

	score := baseScore
	for _, signal := range Signals() {
		score += signal.Delta(in)
	}

	return clamp(score)
}

func clamp(score int) int {
	if score < minScore {
		return minScore
	}
	if score > maxScore {
		return maxScore
	}
	return score
}
