// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package preprocessors

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// PDFPreprocessor extracts the text of PDF documents, one output row per
// line of page text, followed by any AcroForm fields.
type PDFPreprocessor struct {
	maxPages int
}

// NewPDFPreprocessor creates a PDF preprocessor reading at most maxPages
// pages; zero or less reads every page.
func NewPDFPreprocessor(maxPages int) *PDFPreprocessor {
	return &PDFPreprocessor{maxPages: maxPages}
}

// GetName returns the name of this preprocessor
func (pp *PDFPreprocessor) GetName() string {
	return "PDF Text Preprocessor"
}

// GetSupportedExtensions returns the file extensions this preprocessor supports
func (pp *PDFPreprocessor) GetSupportedExtensions() []string {
	return []string{".pdf"}
}

// CanProcess checks if this preprocessor can handle the given file
func (pp *PDFPreprocessor) CanProcess(filePath string) bool {
	return strings.ToLower(filepath.Ext(filePath)) == ".pdf"
}

// Process validates the document and extracts its text
func (pp *PDFPreprocessor) Process(filePath string) (*ProcessedContent, error) {
	if err := api.ValidateFile(filePath, model.NewDefaultConfiguration()); err != nil {
		return nil, fmt.Errorf("invalid PDF file: %w", err)
	}

	f, r, err := pdf.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("error opening PDF: %w", err)
	}
	defer f.Close()

	pageCount := r.NumPage()
	if pp.maxPages > 0 && pageCount > pp.maxPages {
		pageCount = pp.maxPages
	}

	var sb strings.Builder
	for i := 1; i <= pageCount; i++ {
		p := r.Page(i)
		if p.V.IsNull() {
			continue
		}
		text, err := p.GetPlainText(nil)
		if err != nil {
			return nil, fmt.Errorf("error reading page %d: %w", i, err)
		}
		sb.WriteString(text)
		sb.WriteString("\n")
	}

	if formData := extractFormData(r); formData != "" {
		sb.WriteString(formData)
	}

	content := newContent(filePath, cleanTextPreservingStructure(sb.String()), "PDF", "pdf")
	content.PageCount = pageCount
	return content, nil
}

// extractFormData renders AcroForm fields as "Name: x Value: y" lines
func extractFormData(r *pdf.Reader) string {
	fields := r.Trailer().Key("Root").Key("AcroForm").Key("Fields")
	if fields.Kind() != pdf.Array {
		return ""
	}

	var sb strings.Builder
	for i := 0; i < fields.Len(); i++ {
		name, value := extractFieldNameValue(fields.Index(i))
		if name != "" && value != "" {
			fmt.Fprintf(&sb, "Name: %s Value: %s\n", name, value)
		}
	}
	return sb.String()
}

// extractFieldNameValue extracts name and value from a single form field
func extractFieldNameValue(field pdf.Value) (string, string) {
	if field.Kind() != pdf.Dict {
		return "", ""
	}

	var name string
	if t := field.Key("T"); t.Kind() == pdf.String {
		name = t.Text()
	}

	value := fieldText(field.Key("V"))
	if value == "" {
		value = fieldText(field.Key("DV"))
	}
	return name, value
}

func fieldText(v pdf.Value) string {
	switch v.Kind() {
	case pdf.String:
		return v.Text()
	case pdf.Name:
		return v.Name()
	}
	return ""
}

// cleanTextPreservingStructure drops blank lines and collapses runs of
// spaces and tabs within each line, keeping line breaks.
func cleanTextPreservingStructure(text string) string {
	lines := strings.Split(text, "\n")
	cleaned := lines[:0]
	for _, line := range lines {
		line = strings.Join(strings.Fields(line), " ")
		if line != "" {
			cleaned = append(cleaned, line)
		}
	}
	return strings.Join(cleaned, "\n")
}
