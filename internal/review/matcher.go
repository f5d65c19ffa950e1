package review

import (
	"fmt"
	"strings"
	"unicode"
)

// Suggestion is one rendered advisory tied to a matched weak phrase.
type Suggestion struct {
	Phrase string
	Advice string
}

// String renders the suggestion the way it is shown to the user.
func (s Suggestion) String() string {
	return fmt.Sprintf("Found: '%s'. %s", s.Phrase, s.Advice)
}

// Match scans text for the weak-phrase catalog and returns one
// suggestion per category that matched at least once, in catalog
// order. Matching is case-insensitive and token-boundary based:
// "rethink" does not contain "think". Empty text yields nil.
func Match(text string) []Suggestion {
	tokens := tokenize(text)
	if len(tokens) == 0 {
		return nil
	}

	var suggestions []Suggestion
	seen := make(map[string]struct{})

	for _, rule := range rules {
		phrase, ok := findPhrase(tokens, rule.Pattern)
		if !ok {
			continue
		}

		suggestion := Suggestion{Phrase: phrase, Advice: rule.Advice}
		if _, dup := seen[suggestion.String()]; dup {
			continue
		}
		seen[suggestion.String()] = struct{}{}
		suggestions = append(suggestions, suggestion)
	}

	return suggestions
}

// findPhrase returns the literal matched phrase for the first position
// where consecutive tokens satisfy all predicates in order.
func findPhrase(tokens []string, pattern []TokenPredicate) (string, bool) {
	if len(pattern) == 0 {
		return "", false
	}

	for start := 0; start+len(pattern) <= len(tokens); start++ {
		matched := true
		for i, pred := range pattern {
			if !pred(tokens[start+i]) {
				matched = false
				break
			}
		}
		if matched {
			return strings.Join(tokens[start:start+len(pattern)], " "), true
		}
	}

	return "", false
}

// tokenize lowercases text and splits it into runs of letters, digits
// and apostrophes. Invalid UTF-8 is dropped with the other separators,
// so malformed input degrades to fewer tokens instead of an error.
func tokenize(text string) []string {
	if text == "" {
		return nil
	}

	text = strings.ToValidUTF8(text, " ")

	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '\''
	})
}
