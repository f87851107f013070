// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package pension

import (
	"testing"

	"formscan/internal/findings"
)

func TestEvaluate_FundingRatio(t *testing.T) {
	cases := []struct {
		name        string
		assets      string
		liabilities string
		fires       bool
	}{
		{"underfunded", "$700,000", "$1,000,000", true},
		{"at the minimum", "$800,000", "$1,000,000", false},
		{"fully funded", "$1,000,000", "$1,000,000", false},
		{"no declared liabilities", "$700,000", "", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fields := findings.ExtractedFields{"totalAssets": tc.assets}
			if tc.liabilities != "" {
				fields["totalLiabilities"] = tc.liabilities
			}

			fired := false
			for _, e := range New().Evaluate(fields) {
				if e.Code == CodeFundingRatio {
					fired = true
					if e.Kind != findings.KindRegulatory {
						t.Errorf("FUNDING_RATIO kind = %q, want regulatory", e.Kind)
					}
				}
			}
			if fired != tc.fires {
				t.Errorf("FUNDING_RATIO fired = %v, want %v", fired, tc.fires)
			}
		})
	}
}

func TestEvaluate_EmployerContributions(t *testing.T) {
	cases := []struct {
		name     string
		remitted string
		required string
		fires    bool
	}{
		{"shortfall", "$30,000", "$42,000", true},
		{"nothing remitted", "", "$42,000", true},
		{"nothing declared at all", "", "", true},
		{"fully remitted", "$42,000", "$42,000", false},
		{"remitted with no stated requirement", "$5,000", "", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fields := findings.ExtractedFields{}
			if tc.remitted != "" {
				fields["employerContributions"] = tc.remitted
			}
			if tc.required != "" {
				fields["requiredContributions"] = tc.required
			}

			fired := false
			for _, e := range New().Evaluate(fields) {
				if e.Code == CodeEmployerContribution {
					fired = true
					if e.Kind != findings.KindError {
						t.Errorf("EMPLOYER_CONTRIBUTION kind = %q, want error", e.Kind)
					}
				}
			}
			if fired != tc.fires {
				t.Errorf("EMPLOYER_CONTRIBUTION fired = %v, want %v", fired, tc.fires)
			}
		})
	}
}

func TestEvaluate_ShortfallContext(t *testing.T) {
	errs := New().Evaluate(findings.ExtractedFields{
		"employerContributions": "$30,000",
		"requiredContributions": "$42,000",
	})

	if len(errs) != 1 {
		t.Fatalf("got %d findings, want 1: %+v", len(errs), errs)
	}
	e := errs[0]
	if e.Code != CodeEmployerContribution {
		t.Errorf("code = %q, want EMPLOYER_CONTRIBUTION", e.Code)
	}
	if e.Context["remitted"] != "$30000.00" || e.Context["required"] != "$42000.00" {
		t.Errorf("context = %v, want remitted $30000.00 and required $42000.00", e.Context)
	}
}

func TestEvaluate_CleanFiling(t *testing.T) {
	fields := findings.ExtractedFields{
		"totalAssets":           "$950,000",
		"totalLiabilities":      "$1,000,000",
		"employerContributions": "$42,000",
		"requiredContributions": "$42,000",
	}
	if errs := New().Evaluate(fields); len(errs) != 0 {
		t.Errorf("95%% funded plan with contributions current produced findings: %+v", errs)
	}
}
