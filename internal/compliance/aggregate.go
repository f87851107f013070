// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package compliance derives the final verdict for a document from its
// validation findings and risk assessments.
package compliance

import (
	"fmt"

	"formscan/internal/findings"
)

// Aggregate applies strict precedence, not a weighted vote: a single hard
// error or high-severity risk forces non_compliant no matter how many clean
// findings surround it; warnings, regulatory findings, and medium risks
// force needs_review; anything else is compliant. When includeRegulatory is
// false, regulatory findings are excluded from the verdict but errors and
// warnings still count.
func Aggregate(errs []findings.ValidationError, risks []findings.RiskAssessment, includeRegulatory bool) findings.ComplianceStatus {
	var details []string
	nonCompliant := false
	needsReview := false

	for _, e := range errs {
		switch e.Kind {
		case findings.KindError:
			nonCompliant = true
			details = append(details, fmt.Sprintf("%s: %s", e.Code, e.Message))
		case findings.KindWarning:
			needsReview = true
			details = append(details, fmt.Sprintf("%s: %s", e.Code, e.Message))
		case findings.KindRegulatory:
			if !includeRegulatory {
				continue
			}
			needsReview = true
			details = append(details, fmt.Sprintf("%s: %s", e.Code, e.Message))
		}
	}

	for _, r := range risks {
		switch r.Severity {
		case findings.SeverityHigh:
			nonCompliant = true
			details = append(details, fmt.Sprintf("high %s risk: %s", r.Category, r.Description))
		case findings.SeverityMedium:
			needsReview = true
			details = append(details, fmt.Sprintf("medium %s risk: %s", r.Category, r.Description))
		}
	}

	switch {
	case nonCompliant:
		return findings.ComplianceStatus{State: findings.NonCompliant, Details: details}
	case needsReview:
		return findings.ComplianceStatus{State: findings.NeedsReview, Details: details}
	default:
		return findings.ComplianceStatus{State: findings.Compliant}
	}
}
