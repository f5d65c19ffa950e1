package review

import (
	"reflect"
	"testing"
)

func TestMatchFindsCatalogPhrases(t *testing.T) {
	text := "I think I helped with the project and I was responsible for sales."

	got := Match(text)

	want := []string{
		"Found: 'i think'. Try a more confident phrase.",
		"Found: 'helped with'. Use stronger verbs like 'Assisted', 'Supported', or 'Contributed to'.",
		"Found: 'responsible for'. Use action verbs like 'Managed', 'Owned', or 'Led'.",
	}

	if len(got) != len(want) {
		t.Fatalf("expected %d suggestions, got %d: %v", len(want), len(got), got)
	}
	for i, suggestion := range got {
		if suggestion.String() != want[i] {
			t.Fatalf("suggestion %d: expected %q, got %q", i, want[i], suggestion.String())
		}
	}
}

func TestMatchIsCaseInsensitive(t *testing.T) {
	got := Match("I THINK this works")
	if len(got) != 1 {
		t.Fatalf("expected 1 suggestion, got %d", len(got))
	}
	if got[0].Phrase != "i think" {
		t.Fatalf("expected phrase 'i think', got %q", got[0].Phrase)
	}
}

func TestMatchDeduplicatesPerCall(t *testing.T) {
	got := Match("I think I think I believe")
	if len(got) != 2 {
		t.Fatalf("expected 2 suggestions, got %d: %v", len(got), got)
	}
	if got[0].Phrase != "i think" || got[1].Phrase != "i believe" {
		t.Fatalf("unexpected phrases: %q, %q", got[0].Phrase, got[1].Phrase)
	}
}

func TestMatchRespectsWordBoundaries(t *testing.T) {
	cases := []struct {
		name string
		text string
	}{
		{"prefix inside word", "I rethink my choices"},
		{"split across punctuation is fine", "i. think"},
	}

	// "i. think" tokenizes to adjacent tokens, so only the first case
	// must stay empty.
	if got := Match(cases[0].text); len(got) != 0 {
		t.Fatalf("%s: expected no suggestions, got %v", cases[0].name, got)
	}
	if got := Match(cases[1].text); len(got) != 1 {
		t.Fatalf("%s: expected 1 suggestion, got %v", cases[1].name, got)
	}
}

func TestMatchLemmaForms(t *testing.T) {
	cases := []struct {
		text    string
		matches bool
	}{
		{"helped with testing", true},
		{"helping with testing", true},
		{"helps with testing", true},
		{"help with testing", true},
		{"helped without supervision", false},
		{"helped the team with testing", false},
	}

	for _, tc := range cases {
		got := Match(tc.text)
		if tc.matches && len(got) != 1 {
			t.Fatalf("%q: expected a match, got %v", tc.text, got)
		}
		if !tc.matches && len(got) != 0 {
			t.Fatalf("%q: expected no match, got %v", tc.text, got)
		}
	}
}

func TestMatchEmptyText(t *testing.T) {
	if got := Match(""); got != nil {
		t.Fatalf("expected nil for empty text, got %v", got)
	}
	if got := Match("   \n\t "); got != nil {
		t.Fatalf("expected nil for whitespace text, got %v", got)
	}
}

func TestMatchInvalidUTF8DoesNotPanic(t *testing.T) {
	text := "I \xff\xfe think" // broken bytes between the tokens

	// Broken bytes are dropped like any other separator, so the phrase
	// still matches instead of failing the whole call.
	got := Match(text)
	if len(got) != 1 {
		t.Fatalf("expected 1 suggestion, got %v", got)
	}
}

func TestMatchIsDeterministic(t *testing.T) {
	text := "I believe I helped with sales"

	first := Match(text)
	second := Match(text)

	if !reflect.DeepEqual(first, second) {
		t.Fatalf("expected identical results, got %v and %v", first, second)
	}
}
