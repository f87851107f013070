// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package preprocessors

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRouter_PlaintextCatchAll(t *testing.T) {
	router := NewRouter(nil)

	tests := []struct {
		name     string
		filename string
	}{
		{"txt extension", "form.txt"},
		{"unknown extension", "form.dat"},
		{"no extension", "form"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeTempFile(t, tt.filename, "Form 79\nDebtor Name: Alice Carter\n")

			doc, err := router.Process(path)
			if err != nil {
				t.Fatal(err)
			}
			if doc.ProcessorType != "plaintext" {
				t.Errorf("processor = %q, want plaintext", doc.ProcessorType)
			}
			if !strings.Contains(doc.Text, "Alice Carter") {
				t.Errorf("text not passed through: %q", doc.Text)
			}
			if doc.PageCount != 1 {
				t.Errorf("page count = %d, want 1", doc.PageCount)
			}
		})
	}
}

func TestRouter_RoutesByExtension(t *testing.T) {
	router := NewRouter(nil)

	tests := []struct {
		filename string
		want     string
	}{
		{"filing.pdf", "pdf"},
		{"scan.jpg", "image"},
		{"scan.TIFF", "image"},
		{"notes.txt", "plaintext"},
	}

	for _, tt := range tests {
		var got string
		for _, p := range router.preprocessors {
			if p.CanProcess(tt.filename) {
				got = p.Name()
				break
			}
		}
		if got != tt.want {
			t.Errorf("%s routed to %q, want %q", tt.filename, got, tt.want)
		}
	}
}

func TestPlaintext_MissingFile(t *testing.T) {
	_, err := NewPlaintextPreprocessor().Process(filepath.Join(t.TempDir(), "absent.txt"))
	if err == nil {
		t.Error("expected error for missing file")
	}
}

func TestPDF_RejectsNonPDFContent(t *testing.T) {
	path := writeTempFile(t, "fake.pdf", "this is not a pdf")

	_, err := NewPDFPreprocessor().Process(path)
	if err == nil {
		t.Error("expected validation error for non-PDF content")
	}
}

func TestImage_NoExifStillProducesDocument(t *testing.T) {
	// A bare PNG header carries no EXIF block; the document should still
	// come back with the metadata banner and an empty tag map.
	path := writeTempFile(t, "scan.png", "\x89PNG\r\n\x1a\n")

	doc, err := NewImagePreprocessor().Process(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(doc.Text, "Scanned Document Metadata:") {
		t.Errorf("missing metadata banner: %q", doc.Text)
	}
	if len(doc.Metadata) != 0 {
		t.Errorf("expected no tags, got %v", doc.Metadata)
	}
}

func TestFormatOf(t *testing.T) {
	if got := formatOf("/tmp/Form47.PDF"); got != "pdf" {
		t.Errorf("formatOf = %q, want pdf", got)
	}
	if got := formatOf("plain"); got != "" {
		t.Errorf("formatOf = %q, want empty", got)
	}
}
