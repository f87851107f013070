// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package resolver

import (
	"testing"

	"formscan/internal/findings"
	"formscan/internal/registry"
)

func TestResolve_HintWins(t *testing.T) {
	r := New(registry.MustLoad())

	// The hint points at a form that disagrees with the classification;
	// the hint must win.
	got := r.Resolve("31", findings.DocProposal)
	if got.FormNumber != "31" {
		t.Errorf("Resolve(31, proposal) = form %q, want 31", got.FormNumber)
	}
}

func TestResolve_HintNormalization(t *testing.T) {
	r := New(registry.MustLoad())

	cases := []string{"47", " 47 ", "Form 47", "form 47", "FORM 47"}
	for _, hint := range cases {
		got := r.Resolve(hint, findings.DocOther)
		if got.FormNumber != "47" {
			t.Errorf("Resolve(%q) = form %q, want 47", hint, got.FormNumber)
		}
	}
}

func TestResolve_ClassificationFallback(t *testing.T) {
	r := New(registry.MustLoad())

	cases := []struct {
		docType findings.DocumentType
		want    string
	}{
		{findings.DocBankruptcy, "79"},
		{findings.DocProposal, "47"},
		{findings.DocCourt, "20"},
		{findings.DocMeeting, "11"},
		{findings.DocSecurity, "82"},
	}
	for _, tc := range cases {
		got := r.Resolve("", tc.docType)
		if got.FormNumber != tc.want {
			t.Errorf("Resolve(%q) = form %q, want %q", tc.docType, got.FormNumber, tc.want)
		}
	}
}

func TestResolve_NeverReturnsNil(t *testing.T) {
	r := New(registry.MustLoad())

	cases := []struct {
		hint    string
		docType findings.DocumentType
	}{
		{"", findings.DocOther},
		{"999", findings.DocOther},
		{"garbage", findings.DocumentType("unknown")},
	}
	for _, tc := range cases {
		got := r.Resolve(tc.hint, tc.docType)
		if got == nil {
			t.Fatalf("Resolve(%q, %q) returned nil", tc.hint, tc.docType)
		}
		if len(got.RequiredFields) != 0 && got.FormNumber == "" {
			t.Error("generic fallback must not require fields")
		}
	}
}

func TestResolve_UnknownHintFallsThroughToClassification(t *testing.T) {
	r := New(registry.MustLoad())

	got := r.Resolve("999", findings.DocBankruptcy)
	if got.FormNumber != "79" {
		t.Errorf("unknown hint should fall through to classification default, got form %q", got.FormNumber)
	}
}
