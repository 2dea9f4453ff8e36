package extract

import (
	"bytes"
	"strings"

	"github.com/fumiama/go-docx"

	"github.com/hireflow/resume-ingest/internal/format"
)

// extractDOCX joins the text of each paragraph with a single newline,
// preserving paragraph order. Tables, headers, footers, and embedded
// objects are skipped.
func extractDOCX(data []byte) (string, error) {
	doc, err := docx.Parse(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", &UnreadableDocumentError{Kind: format.DOCX, Err: err}
	}

	var paragraphs []string
	for _, item := range doc.Document.Body.Items {
		if p, ok := item.(*docx.Paragraph); ok {
			paragraphs = append(paragraphs, p.String())
		}
	}
	return strings.Join(paragraphs, "\n"), nil
}
