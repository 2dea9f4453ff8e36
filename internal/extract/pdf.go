package extract

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/hireflow/resume-ingest/internal/format"
)

// extractPDF concatenates the textual content of every page in order.
// No layout or table reconstruction is attempted.
func extractPDF(data []byte) (text string, err error) {
	// The pdf parser panics on some malformed inputs; fold those into the
	// unreadable-document error path instead of crashing the pipeline.
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = &UnreadableDocumentError{Kind: format.PDF, Err: fmt.Errorf("parser panic: %v", r)}
		}
	}()

	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", &UnreadableDocumentError{Kind: format.PDF, Err: err}
	}

	var b strings.Builder
	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		content, err := page.GetPlainText(nil)
		if err != nil {
			return "", &UnreadableDocumentError{Kind: format.PDF, Err: fmt.Errorf("page %d: %w", i, err)}
		}
		b.WriteString(content)
	}
	return b.String(), nil
}
