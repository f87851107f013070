// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package resolver maps a declared or inferred form number to a template in
// the registry. Resolution is total: when nothing matches it returns the
// registry's generic fallback template rather than failing.
package resolver

import (
	"strings"

	"formscan/internal/findings"
	"formscan/internal/registry"
)

// classificationDefaults maps a document classification to the form number
// most commonly behind it, used only when no explicit hint resolves.
var classificationDefaults = map[findings.DocumentType]string{
	findings.DocBankruptcy: "79",
	findings.DocProposal:   "47",
	findings.DocCourt:      "20",
	findings.DocMeeting:    "11",
	findings.DocSecurity:   "82",
}

// Resolver resolves form templates against a loaded registry.
type Resolver struct {
	registry *registry.Registry
}

// New returns a resolver bound to the given registry.
func New(reg *registry.Registry) *Resolver {
	return &Resolver{registry: reg}
}

// Resolve returns the template for the analysis. The declared hint wins when
// present and catalogued; otherwise a best-effort form number is derived from
// the classification. A lookup miss never fails — it degrades to the generic
// template so downstream validation degrades gracefully.
func (r *Resolver) Resolve(declaredFormNumber string, docType findings.DocumentType) *registry.FormTemplate {
	if hint := normalize(declaredFormNumber); hint != "" {
		if t := r.registry.Lookup(hint); t != nil {
			return t
		}
	}

	if derived, ok := classificationDefaults[docType]; ok {
		if t := r.registry.Lookup(derived); t != nil {
			return t
		}
	}

	return r.registry.Generic()
}

// normalize strips a "Form" prefix and surrounding whitespace so hints like
// "Form 47" and "47" resolve identically.
func normalize(formNumber string) string {
	s := strings.TrimSpace(formNumber)
	lower := strings.ToLower(s)
	if strings.HasPrefix(lower, "form") {
		s = strings.TrimSpace(s[4:])
	}
	return strings.TrimPrefix(s, "0")
}
