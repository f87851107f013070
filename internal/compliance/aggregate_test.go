// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package compliance

import (
	"testing"

	"formscan/internal/findings"
)

func TestAggregate_Precedence(t *testing.T) {
	err := findings.ValidationError{Kind: findings.KindError, Code: "INSUFFICIENT_PAYMENTS", Message: "m"}
	warn := findings.ValidationError{Kind: findings.KindWarning, Code: "SOLVENCY_CHECK", Message: "m"}
	reg := findings.ValidationError{Kind: findings.KindRegulatory, Code: "FDMA_THRESHOLD", Message: "m"}
	high := findings.RiskAssessment{Category: "legal", Severity: findings.SeverityHigh, Description: "d"}
	medium := findings.RiskAssessment{Category: "document", Severity: findings.SeverityMedium, Description: "d"}
	low := findings.RiskAssessment{Category: "financial", Severity: findings.SeverityLow, Description: "d"}

	cases := []struct {
		name  string
		errs  []findings.ValidationError
		risks []findings.RiskAssessment
		want  findings.ComplianceState
	}{
		{"nothing at all", nil, nil, findings.Compliant},
		{"low risk only", nil, []findings.RiskAssessment{low}, findings.Compliant},
		{"warning forces review", []findings.ValidationError{warn}, nil, findings.NeedsReview},
		{"regulatory forces review", []findings.ValidationError{reg}, nil, findings.NeedsReview},
		{"medium risk forces review", nil, []findings.RiskAssessment{medium}, findings.NeedsReview},
		{"error forces non-compliant", []findings.ValidationError{err}, nil, findings.NonCompliant},
		{"high risk forces non-compliant", nil, []findings.RiskAssessment{high}, findings.NonCompliant},
		{"one error dominates many warnings", []findings.ValidationError{warn, warn, warn, err, warn}, nil, findings.NonCompliant},
		{"high risk dominates warnings", []findings.ValidationError{warn}, []findings.RiskAssessment{medium, high}, findings.NonCompliant},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Aggregate(tc.errs, tc.risks, true)
			if got.State != tc.want {
				t.Errorf("Aggregate() = %q, want %q", got.State, tc.want)
			}
		})
	}
}

func TestAggregate_RegulatoryExclusion(t *testing.T) {
	reg := findings.ValidationError{Kind: findings.KindRegulatory, Code: "CCAA_THRESHOLD", Message: "m"}

	got := Aggregate([]findings.ValidationError{reg}, nil, false)
	if got.State != findings.Compliant {
		t.Errorf("regulatory finding excluded from verdict should leave compliant, got %q", got.State)
	}

	got = Aggregate([]findings.ValidationError{reg}, nil, true)
	if got.State != findings.NeedsReview {
		t.Errorf("regulatory finding included should force needs_review, got %q", got.State)
	}
}

func TestAggregate_CompliantHasNoDetails(t *testing.T) {
	got := Aggregate(nil, nil, true)
	if len(got.Details) != 0 {
		t.Errorf("compliant verdict should carry no details, got %v", got.Details)
	}
}
