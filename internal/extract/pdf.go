// Package extract pulls plain text out of uploaded PDF resumes. The
// scoring core only ever sees the extracted string.
package extract

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ledongthuc/pdf"
)

// PDF extracts the concatenated page text from a PDF document.
// Pages that fail to decode are skipped; an error is returned only
// when the document is unreadable or yields no text at all.
func PDF(r io.ReaderAt, size int64) (string, error) {
	reader, err := pdf.NewReader(r, size)
	if err != nil {
		return "", fmt.Errorf("read pdf: %w", err)
	}

	var builder strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}

		content, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}

		builder.WriteString(content)
		builder.WriteString("\n")
	}

	text := Normalize(builder.String())
	if text == "" {
		return "", errors.New("no extractable text in pdf")
	}

	return text, nil
}

// PDFFile extracts text from a PDF on disk.
func PDFFile(path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer file.Close()

	stat, err := file.Stat()
	if err != nil {
		return "", err
	}

	return PDF(file, stat.Size())
}

// Normalize collapses whitespace runs into single spaces and drops
// invalid UTF-8, so the scorer sees clean prose instead of extractor
// layout artifacts.
func Normalize(text string) string {
	text = strings.ToValidUTF8(text, " ")
	return strings.Join(strings.Fields(text), " ")
}
