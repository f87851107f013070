// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package bankruptcy

import (
	"testing"

	"formscan/internal/findings"
)

func TestEvaluate_SolvencyCheck(t *testing.T) {
	cases := []struct {
		name        string
		assets      string
		liabilities string
		fires       bool
	}{
		{"clearly insolvent", "$45,000", "$120,000", false},
		{"assets just under margin", "$119,000", "$100,000", false},
		{"assets at exactly 1.2x", "$120,000", "$100,000", false},
		{"assets above margin", "$121,000", "$100,000", true},
		{"solvent estate", "$500,000", "$100,000", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fields := findings.ExtractedFields{
				"totalAssets":      tc.assets,
				"totalLiabilities": tc.liabilities,
			}
			errs := New().Evaluate(fields)

			fired := false
			for _, e := range errs {
				if e.Code == CodeSolvencyCheck {
					fired = true
					if e.Kind != findings.KindWarning {
						t.Errorf("SOLVENCY_CHECK kind = %q, want warning", e.Kind)
					}
				}
			}
			if fired != tc.fires {
				t.Errorf("SOLVENCY_CHECK fired = %v, want %v", fired, tc.fires)
			}
		})
	}
}

func TestEvaluate_MissingOperandsDefaultToZero(t *testing.T) {
	if errs := New().Evaluate(findings.ExtractedFields{}); len(errs) != 0 {
		t.Errorf("empty field set produced findings: %+v", errs)
	}

	// Assets with no declared liabilities compare against zero and fire.
	errs := New().Evaluate(findings.ExtractedFields{"totalAssets": "$1,000"})
	if len(errs) != 1 || errs[0].Code != CodeSolvencyCheck {
		t.Errorf("assets without liabilities should trigger the solvency check, got %+v", errs)
	}
}
