// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package securities

import (
	"testing"

	"formscan/internal/findings"
)

func TestEvaluate_CapitalAdequacy(t *testing.T) {
	errs := New().Evaluate(findings.ExtractedFields{
		"operatingCapital": "$200,000",
	})

	if len(errs) != 1 {
		t.Fatalf("got %d findings, want 1: %+v", len(errs), errs)
	}
	e := errs[0]
	if e.Code != CodeCapitalAdequacy {
		t.Errorf("code = %q, want CAPITAL_ADEQUACY", e.Code)
	}
	if e.Kind != findings.KindRegulatory {
		t.Errorf("kind = %q, want regulatory", e.Kind)
	}
	if e.Context["required"] != "$250000.00" {
		t.Errorf("context required = %q, want $250000.00", e.Context["required"])
	}
}

func TestEvaluate_SegregationViolation(t *testing.T) {
	errs := New().Evaluate(findings.ExtractedFields{
		"operatingCapital": "$300,000",
		"customerAssets":   "$1,000,000",
		"segregatedFunds":  "$800,000",
	})

	var violation *findings.ValidationError
	for _, e := range errs {
		if e.Code == CodeCapitalAdequacy {
			t.Errorf("capital of $300,000 should satisfy the minimum: %+v", e)
		}
		if e.Code == CodeSegregationViolation {
			violation = &e
		}
	}
	if violation == nil {
		t.Fatal("SEGREGATION_VIOLATION should fire when segregated funds fall short")
	}
	if violation.Kind != findings.KindError {
		t.Errorf("kind = %q, want error", violation.Kind)
	}
	if violation.Context["customerAssets"] != "$1000000.00" {
		t.Errorf("context customerAssets = %q, want $1000000.00", violation.Context["customerAssets"])
	}
}

// The capital check reads the firm's own capital, not the customer assets it
// holds: a firm holding large customer positions can still be undercapitalized.
func TestEvaluate_CapitalAndCustomerAssetsDiverge(t *testing.T) {
	errs := New().Evaluate(findings.ExtractedFields{
		"operatingCapital": "$100,000",
		"customerAssets":   "$5,000,000",
		"segregatedFunds":  "$5,000,000",
	})

	if len(errs) != 1 {
		t.Fatalf("got %d findings, want 1: %+v", len(errs), errs)
	}
	if errs[0].Code != CodeCapitalAdequacy {
		t.Errorf("code = %q, want CAPITAL_ADEQUACY", errs[0].Code)
	}
	if errs[0].Context["current"] != "$100000.00" {
		t.Errorf("context current = %q, want the firm's own capital $100000.00", errs[0].Context["current"])
	}
}

func TestEvaluate_FullySegregatedAdequateFirm(t *testing.T) {
	errs := New().Evaluate(findings.ExtractedFields{
		"operatingCapital": "$300,000",
		"customerAssets":   "$1,000,000",
		"segregatedFunds":  "$1,000,000",
	})
	if len(errs) != 0 {
		t.Errorf("compliant firm produced findings: %+v", errs)
	}
}

func TestEvaluate_MissingCapitalFlagsAdequacy(t *testing.T) {
	errs := New().Evaluate(findings.ExtractedFields{})
	if len(errs) != 1 || errs[0].Code != CodeCapitalAdequacy {
		t.Errorf("absent capital should flag adequacy alone, got %+v", errs)
	}
}
