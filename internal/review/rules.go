package review

// TokenPredicate reports whether a single lowercased token satisfies one
// position of a rule pattern.
type TokenPredicate func(token string) bool

// Rule describes one weak-phrase category: an ordered sequence of
// adjacent-token predicates and the advice rendered when it matches.
type Rule struct {
	Category string
	Pattern  []TokenPredicate
	Advice   string
}

// Token matches the exact lowercased token.
func Token(want string) TokenPredicate {
	return func(token string) bool { return token == want }
}

// Lemma matches the base form and its simple inflections (-s, -ed,
// -ing, with doubled-consonant and trailing-e forms folded back).
func Lemma(base string) TokenPredicate {
	return func(token string) bool { return lemmatize(token) == base }
}

func lemmatize(token string) string {
	for _, suffix := range []string{"ing", "ed", "es", "s"} {
		stem, ok := stripSuffix(token, suffix)
		if !ok {
			continue
		}
		// "helped" -> "help", "managed" -> "manag" + "e",
		// "planning" -> "plann" -> "plan".
		if n := len(stem); n >= 3 && stem[n-1] == stem[n-2] {
			stem = stem[:n-1]
		}
		return stem
	}
	return token
}

func stripSuffix(token, suffix string) (string, bool) {
	if len(token) <= len(suffix) || token[len(token)-len(suffix):] != suffix {
		return "", false
	}
	return token[:len(token)-len(suffix)], true
}

// rules is the weak-phrase catalog. Matching walks it in order, so the
// output suggestion order is the definition order here. Adding a
// category means appending a row.
var rules = []Rule{
	{
		Category: "self-doubt",
		Pattern:  []TokenPredicate{Token("i"), Token("think")},
		Advice:   "Try a more confident phrase.",
	},
	{
		Category: "self-doubt",
		Pattern:  []TokenPredicate{Token("i"), Token("believe")},
		Advice:   "Use a stronger, assertive tone.",
	},
	{
		Category: "weak-verb",
		Pattern:  []TokenPredicate{Lemma("help"), Token("with")},
		Advice:   "Use stronger verbs like 'Assisted', 'Supported', or 'Contributed to'.",
	},
	{
		Category: "passive-ownership",
		Pattern:  []TokenPredicate{Token("responsible"), Token("for")},
		Advice:   "Use action verbs like 'Managed', 'Owned', or 'Led'.",
	},
}

// Rules returns the shared weak-phrase catalog. The slice and its rules
// are read-only; callers must not mutate them.
func Rules() []Rule {
	return rules
}
