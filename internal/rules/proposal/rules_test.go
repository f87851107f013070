// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package proposal

import (
	"testing"

	"formscan/internal/findings"
)

func codes(errs []findings.ValidationError) map[string]findings.ValidationError {
	out := make(map[string]findings.ValidationError, len(errs))
	for _, e := range errs {
		out[e.Code] = e
	}
	return out
}

func TestEvaluate_LowRatioFiresAlone(t *testing.T) {
	fields := findings.ExtractedFields{
		"proposalAmount": "$10,000",
		"totalDebt":      "$100,000",
		"securedDebt":    "$20,000",
		"monthlyPayment": "$500",
		"proposalTerm":   "24",
	}

	got := codes(New().Evaluate(fields))

	// Unsecured debt is $80,000 and 30% of it is $24,000, so the $10,000
	// offer is low. The schedule funds $12,000, which covers the offer.
	if _, ok := got[CodeLowProposalRatio]; !ok {
		t.Error("LOW_PROPOSAL_RATIO should fire for a 12.5% return")
	}
	if _, ok := got[CodeInsufficientPayments]; ok {
		t.Error("INSUFFICIENT_PAYMENTS should not fire when the schedule covers the offer")
	}
}

func TestEvaluate_InsufficientPayments(t *testing.T) {
	fields := findings.ExtractedFields{
		"proposalAmount": "$30,000",
		"totalDebt":      "$100,000",
		"securedDebt":    "$20,000",
		"monthlyPayment": "$500",
		"proposalTerm":   "24",
	}

	got := codes(New().Evaluate(fields))

	e, ok := got[CodeInsufficientPayments]
	if !ok {
		t.Fatal("INSUFFICIENT_PAYMENTS should fire when $500 x 24 cannot fund $30,000")
	}
	if e.Kind != findings.KindError {
		t.Errorf("INSUFFICIENT_PAYMENTS kind = %q, want error", e.Kind)
	}
	if e.Context["scheduledTotal"] != "$12000.00" {
		t.Errorf("scheduledTotal = %q, want $12000.00", e.Context["scheduledTotal"])
	}
}

func TestEvaluate_HealthyProposalIsClean(t *testing.T) {
	fields := findings.ExtractedFields{
		"proposalAmount": "$30,000",
		"totalDebt":      "$100,000",
		"securedDebt":    "$20,000",
		"monthlyPayment": "$600",
		"proposalTerm":   "50",
	}

	if errs := New().Evaluate(fields); len(errs) != 0 {
		t.Errorf("healthy proposal produced findings: %+v", errs)
	}
}

func TestEvaluate_MissingOperandsDefaultToZero(t *testing.T) {
	// With every operand absent the arithmetic runs on zeros: 0 < 0 is
	// false on both rules, so nothing fires.
	if errs := New().Evaluate(findings.ExtractedFields{}); len(errs) != 0 {
		t.Errorf("empty field set produced findings: %+v", errs)
	}

	// A declared offer with no payment schedule is unfundable.
	got := codes(New().Evaluate(findings.ExtractedFields{
		"proposalAmount": "$10,000",
		"totalDebt":      "$100,000",
	}))
	if _, ok := got[CodeInsufficientPayments]; !ok {
		t.Error("INSUFFICIENT_PAYMENTS should fire when the schedule is absent")
	}
}
