package extract

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanText_CollapsesWhitespace(t *testing.T) {
	text := "John  Doe\n\nSoftware   Engineer\t5 years"

	assert.Equal(t, "John Doe Software Engineer 5 years", CleanText(text))
}

func TestCleanText_TrimsEdges(t *testing.T) {
	assert.Equal(t, "resume", CleanText("  \n resume \t "))
}

func TestCleanText_Empty(t *testing.T) {
	assert.Equal(t, "", CleanText("   \n\t  "))
	assert.Equal(t, "", CleanText(""))
}

func TestPDFText_InvalidData(t *testing.T) {
	data := []byte("this is not a pdf document")

	_, err := PDFText(bytes.NewReader(data), int64(len(data)))

	assert.Error(t, err)
	var extractErr *Error
	assert.True(t, errors.As(err, &extractErr))
}

func TestPDFText_EmptyData(t *testing.T) {
	_, err := PDFText(bytes.NewReader(nil), 0)

	assert.Error(t, err)
}
