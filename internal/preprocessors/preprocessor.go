// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package preprocessors turns input files into the raw text the engine
// analyzes. Routing is by file extension; each preprocessor owns one
// family of formats. Binary formats that carry no extractable text (scanned
// images) still contribute provenance metadata to the analysis text.
package preprocessors

import (
	"fmt"
	"path/filepath"
	"strings"

	"formscan/internal/observability"
)

// Document is the preprocessed form of one input file.
type Document struct {
	// Original file information
	Path     string
	Filename string

	// Extracted content
	Text string

	// Content metadata
	Format    string
	PageCount int

	// Provenance metadata (scanner tags, producer, timestamps)
	Metadata map[string]string

	// Processing information
	ProcessorType string
}

// Preprocessor converts one family of file formats into analyzable text.
type Preprocessor interface {
	// Name identifies the preprocessor in logs and Document records.
	Name() string

	// CanProcess reports whether this preprocessor handles the file.
	CanProcess(path string) bool

	// Process reads the file and produces its Document.
	Process(path string) (*Document, error)
}

// Router dispatches files to the first preprocessor that claims them.
type Router struct {
	preprocessors []Preprocessor
	observer      *observability.StandardObserver
}

// NewRouter builds the standard preprocessor chain. Plaintext runs last as
// the catch-all. Pass nil for observer to disable instrumentation.
func NewRouter(observer *observability.StandardObserver) *Router {
	return &Router{
		preprocessors: []Preprocessor{
			NewPDFPreprocessor(),
			NewImagePreprocessor(),
			NewPlaintextPreprocessor(),
		},
		observer: observer,
	}
}

// Process routes one file to its preprocessor.
func (r *Router) Process(path string) (*Document, error) {
	for _, p := range r.preprocessors {
		if !p.CanProcess(path) {
			continue
		}

		var finish func(success bool, metadata map[string]interface{})
		if r.observer != nil {
			finish = r.observer.StartTiming("preprocessor", p.Name(), filepath.Base(path))
		}

		doc, err := p.Process(path)
		if finish != nil {
			finish(err == nil, map[string]interface{}{"format": formatOf(path)})
		}
		return doc, err
	}
	return nil, fmt.Errorf("no preprocessor for file type %q", filepath.Ext(path))
}

func formatOf(path string) string {
	return strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
}

func hasExtension(path string, exts ...string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range exts {
		if ext == e {
			return true
		}
	}
	return false
}
