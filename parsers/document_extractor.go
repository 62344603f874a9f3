package parsers

import (
	"bytes"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

// DocumentExtractor converts uploaded resume documents to plain text so the
// profile extractor always operates on decoded text.
type DocumentExtractor struct{}

// NewDocumentExtractor creates a new document text extractor.
func NewDocumentExtractor() *DocumentExtractor {
	return &DocumentExtractor{}
}

var xmlTagRegex = regexp.MustCompile(`<[^>]+>`)

// ExtractFromFile determines the file type from its name and extracts text
// from the raw bytes accordingly.
func (e *DocumentExtractor) ExtractFromFile(filename string, data []byte) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))

	switch ext {
	case ".pdf":
		return e.extractPDF(data)
	case ".docx":
		return e.extractDocx(data)
	case ".txt":
		return string(data), nil
	default:
		return "", fmt.Errorf("unsupported file format: %s", ext)
	}
}

// extractPDF pulls plain text from every page of a PDF document.
func (e *DocumentExtractor) extractPDF(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to read pdf: %w", err)
	}

	var builder strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, _ := page.GetPlainText(nil)
		builder.WriteString(text)
		builder.WriteString("\n")
	}

	return builder.String(), nil
}

// extractDocx reads a DOCX document from memory. The document body comes
// back with WordprocessingML markup, so tags are stripped before returning.
func (e *DocumentExtractor) extractDocx(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to parse docx: %w", err)
	}
	defer doc.Close()

	content := doc.Editable().GetContent()
	content = strings.ReplaceAll(content, "</w:p>", "\n")
	content = xmlTagRegex.ReplaceAllString(content, "")

	return content, nil
}
