// Package format classifies uploaded files by extension.
package format

import (
	"path/filepath"
	"strings"
)

// Kind is the detected document format of an uploaded file.
type Kind int

const (
	// Unsupported means the file extension is not in the supported set.
	Unsupported Kind = iota
	// PDF is a .pdf file.
	PDF
	// DOCX is a .docx file.
	DOCX
)

// String returns the lowercase extension name for the kind.
func (k Kind) String() string {
	switch k {
	case PDF:
		return "pdf"
	case DOCX:
		return "docx"
	default:
		return "unsupported"
	}
}

// Classify determines the document kind from the filename's extension.
// The match is a case-insensitive suffix check; file content is never inspected.
func Classify(filename string) Kind {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".pdf":
		return PDF
	case ".docx":
		return DOCX
	default:
		return Unsupported
	}
}

// Supported reports whether the filename has a supported extension.
func Supported(filename string) bool {
	return Classify(filename) != Unsupported
}
