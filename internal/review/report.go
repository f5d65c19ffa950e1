// Package review scores career text and suggests phrase-level
// improvements. Both entry points are pure functions over the input
// text and the static weak-phrase catalog; the package holds no state
// between calls and is safe for unrestricted concurrent use.
package review

import (
	"encoding/json"
	"os"
)

// Report is the full result of one scoring invocation.
type Report struct {
	Score       int      `json:"score"`
	Suggestions []string `json:"suggestions"`
}

// Analyze runs the matcher and the scorer over text.
func Analyze(text string) *Report {
	matches := Match(text)

	suggestions := make([]string, 0, len(matches))
	for _, m := range matches {
		suggestions = append(suggestions, m.String())
	}

	return &Report{
		Score:       Score(matches, text),
		Suggestions: suggestions,
	}
}

// DumpToTmpFile writes the report as indented JSON to a temporary file
// and returns its name.
func (r *Report) DumpToTmpFile() (string, error) {
	file, err := os.CreateTemp("", "pitchspark_report_*.json")
	if err != nil {
		return "", err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return "", err
	}
	return file.Name(), nil
}
