// Package extract converts uploaded resume files into plain text for
// scoring.
package extract

import (
	"fmt"
	"io"
	"strings"

	"github.com/ledongthuc/pdf"
)

// Error represents a failure to extract text from an uploaded file.
type Error struct {
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("extract error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("extract error: %s", e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// PDFText extracts the plain text content of a PDF. Image-only PDFs
// yield an Error since there is no text layer to read.
func PDFText(r io.ReaderAt, size int64) (string, error) {
	reader, err := pdf.NewReader(r, size)
	if err != nil {
		return "", &Error{Message: "failed to open PDF", Cause: err}
	}

	body, err := reader.GetPlainText()
	if err != nil {
		return "", &Error{Message: "failed to read PDF text", Cause: err}
	}

	var sb strings.Builder
	if _, err := io.Copy(&sb, body); err != nil {
		return "", &Error{Message: "failed to read PDF text", Cause: err}
	}

	text := CleanText(sb.String())
	if text == "" {
		return "", &Error{Message: "no text content found in PDF"}
	}
	return text, nil
}

// CleanText collapses all runs of whitespace into single spaces and
// trims the result.
func CleanText(text string) string {
	return strings.Join(strings.Fields(text), " ")
}
