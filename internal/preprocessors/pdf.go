// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package preprocessors

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// maxPages caps per-document page extraction. Regulatory filings run a few
// pages; anything past the cap is almost certainly an attachment bundle.
const maxPages = 50

// PDFPreprocessor extracts analyzable text from PDF filings. Page text and
// AcroForm field values are both extracted, since electronically filed forms
// often carry the interesting values only in form fields.
type PDFPreprocessor struct {
	pdfConfig *model.Configuration
}

// NewPDFPreprocessor creates the PDF preprocessor.
func NewPDFPreprocessor() *PDFPreprocessor {
	cfg := model.NewDefaultConfiguration()
	cfg.ValidationMode = model.ValidationRelaxed
	return &PDFPreprocessor{pdfConfig: cfg}
}

func (p *PDFPreprocessor) Name() string {
	return "pdf"
}

func (p *PDFPreprocessor) CanProcess(path string) bool {
	return hasExtension(path, ".pdf")
}

func (p *PDFPreprocessor) Process(path string) (*Document, error) {
	// Structural validation first. A malformed PDF fails here with a clear
	// error instead of producing garbled text downstream.
	if err := api.ValidateFile(path, p.pdfConfig); err != nil {
		return nil, fmt.Errorf("invalid PDF %s: %w", filepath.Base(path), err)
	}

	doc := &Document{
		Path:          path,
		Filename:      filepath.Base(path),
		Format:        "pdf",
		Metadata:      map[string]string{},
		ProcessorType: p.Name(),
	}

	if ctx, err := api.ReadContextFile(path); err == nil {
		doc.PageCount = ctx.PageCount
		if ctx.Producer != "" {
			doc.Metadata["producer"] = ctx.Producer
		}
		if ctx.Creator != "" {
			doc.Metadata["creator"] = ctx.Creator
		}
	}

	text, pages, err := extractPDFText(path)
	if err != nil {
		return nil, err
	}
	if doc.PageCount == 0 {
		doc.PageCount = pages
	}
	doc.Text = text
	return doc, nil
}

// extractPDFText pulls page text and AcroForm field values from the file.
func extractPDFText(path string) (string, int, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return "", 0, fmt.Errorf("error opening PDF: %w", err)
	}
	defer f.Close()

	pages := r.NumPage()
	limit := pages
	if limit > maxPages {
		limit = maxPages
	}

	var buf bytes.Buffer
	for i := 1; i <= limit; i++ {
		pg := r.Page(i)
		if pg.V.IsNull() {
			continue
		}
		pageText, err := pg.GetPlainText(nil)
		if err != nil {
			continue
		}
		if buf.Len() > 0 {
			buf.WriteString("\n")
		}
		buf.WriteString(pageText)
	}

	// AcroForm values are emitted as "label: value" lines so the field
	// extractor reads them the same way as typed-out form text.
	if formText := extractAcroFormFields(r); formText != "" {
		buf.WriteString("\n")
		buf.WriteString(formText)
	}

	return buf.String(), pages, nil
}

func extractAcroFormFields(r *pdf.Reader) string {
	root := r.Trailer().Key("Root")
	if root.IsNull() {
		return ""
	}
	acroForm := root.Key("AcroForm")
	if acroForm.IsNull() {
		return ""
	}
	fields := acroForm.Key("Fields")
	if fields.IsNull() || fields.Kind() != pdf.Array {
		return ""
	}

	var b strings.Builder
	for i := 0; i < fields.Len(); i++ {
		field := fields.Index(i)
		if field.IsNull() {
			continue
		}
		name, value := formFieldNameValue(field)
		if name != "" && value != "" {
			fmt.Fprintf(&b, "%s: %s\n", name, value)
		}
	}
	return b.String()
}

func formFieldNameValue(field pdf.Value) (string, string) {
	if field.Kind() != pdf.Dict {
		return "", ""
	}

	var name, value string
	if t := field.Key("T"); !t.IsNull() && t.Kind() == pdf.String {
		name = t.Text()
	}
	if v := field.Key("V"); !v.IsNull() {
		switch v.Kind() {
		case pdf.String:
			value = v.Text()
		case pdf.Name:
			value = v.Name()
		}
	}
	return name, value
}
