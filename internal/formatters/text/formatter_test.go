// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package text

import (
	"strings"
	"testing"

	"formscan/internal/findings"
	"formscan/internal/formatters"
)

func sampleResult() *findings.AnalysisResult {
	return &findings.AnalysisResult{
		ID:           "deadbeef",
		FormNumber:   "47",
		DocumentType: findings.DocProposal,
		Fields:       findings.ExtractedFields{"clientName": "Alice B Carter"},
		ValidationErrors: []findings.ValidationError{
			{Field: "proposalAmount", Kind: findings.KindWarning, Code: "LOW_PROPOSAL_RATIO", Message: "offer below 30% of unsecured debt"},
		},
		Risks: []findings.RiskAssessment{
			{Category: "financial", Severity: findings.SeverityHigh, Description: "annulment on default"},
			{Category: "document", Severity: findings.SeverityMedium, Description: "missing creditor section"},
		},
		RiskScore:       83.3,
		Recommendations: []string{"review and verify the financial figures: annulment on default"},
		Compliance:      findings.ComplianceStatus{State: findings.NonCompliant},
		Summary:         "Form 47 (Consumer Proposal) classified as proposal",
		Status:          findings.StatusSuccess,
	}
}

func TestFormat_PlainOutput(t *testing.T) {
	out, err := NewFormatter().Format(sampleResult(), formatters.FormatterOptions{NoColor: true})
	if err != nil {
		t.Fatal(err)
	}

	for _, want := range []string{
		"Form:           47",
		"LOW_PROPOSAL_RATIO",
		"non_compliant",
		"RECOMMENDATIONS:",
		"annulment on default",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestFormat_SeverityOrdering(t *testing.T) {
	out, err := NewFormatter().Format(sampleResult(), formatters.FormatterOptions{NoColor: true})
	if err != nil {
		t.Fatal(err)
	}

	high := strings.Index(out, "annulment on default")
	medium := strings.Index(out, "missing creditor section")
	if high == -1 || medium == -1 || high > medium {
		t.Errorf("high risks should print before medium risks:\n%s", out)
	}
}

func TestFormat_VerboseShowsFields(t *testing.T) {
	out, err := NewFormatter().Format(sampleResult(), formatters.FormatterOptions{NoColor: true, Verbose: true})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "Alice B Carter") {
		t.Errorf("verbose output should include extracted fields:\n%s", out)
	}
}

func TestRegistry_Registration(t *testing.T) {
	if _, ok := formatters.Get("text"); !ok {
		t.Error("text formatter should self-register")
	}
	if info := formatters.GetFormatInfo("text"); info.MimeType != "text/plain" {
		t.Errorf("mime type = %q, want text/plain", info.MimeType)
	}
}
