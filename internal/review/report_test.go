package review

import (
	"encoding/json"
	"os"
	"testing"
)

func TestAnalyze(t *testing.T) {
	report := Analyze("I think I can do this")

	// 50 - 15 (one suggestion) - 20 (short) = 15.
	if report.Score != 15 {
		t.Fatalf("expected score 15, got %d", report.Score)
	}
	if len(report.Suggestions) != 1 {
		t.Fatalf("expected 1 suggestion, got %d", len(report.Suggestions))
	}
	if report.Suggestions[0] != "Found: 'i think'. Try a more confident phrase." {
		t.Fatalf("unexpected suggestion: %q", report.Suggestions[0])
	}
}

func TestAnalyzeEmptyText(t *testing.T) {
	report := Analyze("")

	if report.Score != 30 {
		t.Fatalf("expected score 30, got %d", report.Score)
	}
	if len(report.Suggestions) != 0 {
		t.Fatalf("expected no suggestions, got %v", report.Suggestions)
	}
}

func TestReportDumpToTmpFile(t *testing.T) {
	report := Analyze("I believe this is fine")

	filename, err := report.DumpToTmpFile()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer os.Remove(filename)

	data, err := os.ReadFile(filename)
	if err != nil {
		t.Fatalf("reading dump: %v", err)
	}

	var decoded Report
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("decoding dump: %v", err)
	}
	if decoded.Score != report.Score {
		t.Fatalf("expected score %d, got %d", report.Score, decoded.Score)
	}
	if len(decoded.Suggestions) != len(report.Suggestions) {
		t.Fatalf("expected %d suggestions, got %d", len(report.Suggestions), len(decoded.Suggestions))
	}
}
