// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package extractor scans raw document text with the shared pattern library
// and produces the flat field map the rest of the engine operates on.
package extractor

import (
	"strings"

	"formscan/internal/findings"
	"formscan/internal/observability"
	"formscan/internal/patterns"
)

// Extractor applies the named extraction patterns to raw text. It holds no
// per-document state and is safe for concurrent use.
type Extractor struct {
	observer *observability.StandardObserver
}

// New returns a ready extractor.
func New() *Extractor {
	return &Extractor{}
}

// SetObserver sets the observability component.
func (e *Extractor) SetObserver(observer *observability.StandardObserver) {
	e.observer = observer
}

// Extract scans rawText and returns the candidate field map plus the coarse
// document classification. Extraction never fails: unrecognized text yields
// an empty field map and the "other" classification. Each pattern is applied
// independently — it either matches and contributes one field or is silently
// skipped. Missing fields are absent keys, never empty-string placeholders.
func (e *Extractor) Extract(rawText string) (findings.ExtractedFields, findings.DocumentType) {
	var finishTiming func(bool, map[string]interface{})
	if e.observer != nil {
		finishTiming = e.observer.StartTiming("extractor", "extract", "")
	}

	fields := make(findings.ExtractedFields)

	for _, fp := range patterns.ExtractionPatterns {
		if _, taken := fields[fp.Field]; taken {
			continue
		}
		m := fp.Regex.FindStringSubmatch(rawText)
		if m == nil || len(m) <= fp.Group {
			continue
		}
		value := strings.TrimSpace(m[fp.Group])
		if value == "" {
			continue
		}
		fields[fp.Field] = value
	}

	// A declared form number in the header is extracted like any other
	// field; the resolver prefers it over classification heuristics.
	if m := patterns.FormNumber.FindStringSubmatch(rawText); m != nil {
		fields["formNumber"] = m[1]
	}

	// Bare "Dated: ..." lines carry the signing date when no labelled
	// signature block matched.
	if !fields.Has("dateSigned") {
		if m := patterns.ISODate.FindStringSubmatch(rawText); m != nil && containsDatedLabel(rawText, m[1]) {
			fields["dateSigned"] = m[1]
		}
	}

	docType := Classify(rawText)

	if finishTiming != nil {
		finishTiming(true, map[string]interface{}{
			"field_count":   len(fields),
			"document_type": string(docType),
		})
	}

	return fields, docType
}

// Classify runs the priority-ordered keyword test over the text. The first
// rule with any keyword present wins; ties resolve by the fixed priority
// order (bankruptcy > proposal > court > meeting > security), never by
// longest match or frequency.
func Classify(rawText string) findings.DocumentType {
	lower := strings.ToLower(rawText)
	for _, rule := range patterns.ClassificationRules {
		for _, kw := range rule.Keywords {
			if strings.Contains(lower, kw) {
				return findings.DocumentType(rule.Type)
			}
		}
	}
	return findings.DocOther
}

// containsDatedLabel reports whether the date appears on a line labelled as
// a signing date, so arbitrary dates in body text are not misread.
func containsDatedLabel(rawText, date string) bool {
	for _, line := range strings.Split(rawText, "\n") {
		if !strings.Contains(line, date) {
			continue
		}
		lower := strings.ToLower(line)
		if strings.Contains(lower, "dated") || strings.Contains(lower, "signed") {
			return true
		}
	}
	return false
}
