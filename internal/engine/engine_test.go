// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package engine

import (
	"encoding/json"
	"testing"

	"formscan/internal/findings"
	"formscan/internal/registry"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	enabled, err := ParseCategories("all")
	if err != nil {
		t.Fatal(err)
	}
	return New(registry.MustLoad(), BuildRuleSets(enabled), nil)
}

const proposalText = `Form 47 - Consumer Proposal sworn before the administrator
Consumer: Alice B Carter
Administrator: Robert T Lee
Proposal Amount: $10,000
Total Debt: $100,000
Secured Debt: $20,000
Monthly Payment: $500
Proposal Term: 24 months
Dated: 2024-03-15
Personal Information
Financial Statements
List of Creditors`

func TestAnalyze_ProposalEndToEnd(t *testing.T) {
	e := newTestEngine(t)

	got := e.Analyze(NewRequest(proposalText))

	if got.FormNumber != "47" {
		t.Errorf("form number = %q, want 47", got.FormNumber)
	}
	if got.DocumentType != findings.DocProposal {
		t.Errorf("document type = %q, want proposal", got.DocumentType)
	}

	var lowRatio, insufficient bool
	for _, e := range got.ValidationErrors {
		switch e.Code {
		case "LOW_PROPOSAL_RATIO":
			lowRatio = true
		case "INSUFFICIENT_PAYMENTS":
			insufficient = true
		}
	}
	if !lowRatio {
		t.Error("LOW_PROPOSAL_RATIO should fire for a 12.5% return")
	}
	if insufficient {
		t.Error("INSUFFICIENT_PAYMENTS should not fire when the schedule covers the offer")
	}

	// Form 47 carries a fixed override risk set with one high risk, so the
	// verdict is non_compliant regardless of the sweeps.
	if got.Compliance.State != findings.NonCompliant {
		t.Errorf("verdict = %q, want non_compliant", got.Compliance.State)
	}
	if len(got.Recommendations) != len(got.Risks) {
		t.Errorf("got %d recommendations for %d risks, want one per risk", len(got.Recommendations), len(got.Risks))
	}
}

func TestAnalyze_Idempotence(t *testing.T) {
	e := newTestEngine(t)
	req := NewRequest(proposalText)

	first := e.Analyze(req)
	second := e.Analyze(req)

	// AnalyzedAt is the only wall-clock field; everything else, including
	// the derived ID, must be bit-identical.
	first.AnalyzedAt = second.AnalyzedAt

	a, err := json.Marshal(first)
	if err != nil {
		t.Fatal(err)
	}
	b, err := json.Marshal(second)
	if err != nil {
		t.Fatal(err)
	}
	if string(a) != string(b) {
		t.Errorf("identical input produced different results:\n%s\n%s", a, b)
	}
}

func TestAnalyze_HintOverridesHeader(t *testing.T) {
	e := newTestEngine(t)

	req := NewRequest(proposalText)
	req.FormNumberHint = "79"

	got := e.Analyze(req)
	if got.FormNumber != "79" {
		t.Errorf("form number = %q, want the hinted 79", got.FormNumber)
	}
}

func TestAnalyze_StatusFailed(t *testing.T) {
	e := newTestEngine(t)

	got := e.Analyze(NewRequest("no labels here at all"))
	if got.Status != findings.StatusFailed {
		t.Errorf("status = %q, want failed for an unusable extraction", got.Status)
	}
	if got.Confidence != 0 {
		t.Errorf("confidence = %v, want 0 against the generic template", got.Confidence)
	}
}

func TestAnalyze_StatusPartial(t *testing.T) {
	e := newTestEngine(t)

	// A statement of affairs with a required field (trusteeName) missing.
	got := e.Analyze(NewRequest(`FORM 79 - Statement of Affairs of the bankruptcy
Debtor: John Q Smith
Total Assets: $45,000.00
Total Liabilities: $120,000.00
Dated: 2024-02-01`))

	if got.Status != findings.StatusPartial {
		t.Errorf("status = %q, want partial", got.Status)
	}
	if got.Confidence <= 0 || got.Confidence >= 1 {
		t.Errorf("confidence = %v, want a fraction strictly between 0 and 1", got.Confidence)
	}

	required := 0
	for _, e := range got.ValidationErrors {
		if e.Code == "REQUIRED_FIELD" && e.Field == "trusteeName" {
			required++
		}
	}
	if required != 1 {
		t.Errorf("trusteeName reported %d times, want exactly once", required)
	}
}

func TestAnalyze_NeverNilSlices(t *testing.T) {
	e := newTestEngine(t)

	got := e.Analyze(NewRequest(""))
	if got.ValidationErrors == nil {
		t.Error("ValidationErrors should be empty, not nil")
	}
	if got.Fields == nil {
		t.Error("Fields should be an empty map, not nil")
	}
}

func TestAnalyze_DisabledCategorySkipsRules(t *testing.T) {
	enabled, err := ParseCategories("bankruptcy")
	if err != nil {
		t.Fatal(err)
	}
	e := New(registry.MustLoad(), BuildRuleSets(enabled), nil)

	got := e.Analyze(NewRequest(proposalText))
	for _, v := range got.ValidationErrors {
		if v.Code == "LOW_PROPOSAL_RATIO" {
			t.Error("proposal rules should not run when the category is disabled")
		}
	}
}

func TestParseCategories(t *testing.T) {
	cases := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"all", len(AllCategories), false},
		{"", len(AllCategories), false},
		{"bankruptcy", 1, false},
		{"bankruptcy,proposal", 2, false},
		{" Proposal , FARMING ", 2, false},
		{"bankruptcy,unknown", 0, true},
	}
	for _, tc := range cases {
		got, err := ParseCategories(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParseCategories(%q) should fail", tc.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseCategories(%q): %v", tc.in, err)
			continue
		}
		if len(got) != tc.want {
			t.Errorf("ParseCategories(%q) enabled %d categories, want %d", tc.in, len(got), tc.want)
		}
	}
}
