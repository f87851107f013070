// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package risk

import (
	"fmt"

	"formscan/internal/findings"
)

// maxWeight is the weight of a high-severity risk.
const maxWeight = 3

// Score computes the aggregate risk score for a risk list. The score is the
// average severity expressed on a 0-100 scale and capped at 100; an empty
// list scores 0. Note the formula reads counterintuitively at small counts
// (a single low risk scores 33); the formula is kept as-is for result
// compatibility across releases.
func Score(risks []findings.RiskAssessment) float64 {
	if len(risks) == 0 {
		return 0
	}

	sum := 0
	for _, r := range risks {
		sum += r.Severity.Weight()
	}

	score := float64(sum) / float64(len(risks)*maxWeight) * 100
	if score > 100 {
		score = 100
	}
	return score
}

// Recommendations generates one deterministic recommendation per risk
// record, phrased by category.
func Recommendations(risks []findings.RiskAssessment) []string {
	out := make([]string, 0, len(risks))
	for _, r := range risks {
		out = append(out, recommendationFor(r))
	}
	return out
}

func recommendationFor(r findings.RiskAssessment) string {
	switch r.Category {
	case "financial":
		return fmt.Sprintf("review and verify the financial figures: %s", r.Description)
	case "compliance":
		if len(r.References) > 0 {
			return fmt.Sprintf("ensure compliance with %s %s: %s", r.References[0].Source, r.References[0].Reference, r.Description)
		}
		return fmt.Sprintf("ensure compliance: %s", r.Description)
	case "legal":
		return fmt.Sprintf("legal review required: %s", r.Description)
	case "document":
		return fmt.Sprintf("document completion required: %s", r.Description)
	default:
		return fmt.Sprintf("review: %s", r.Description)
	}
}
