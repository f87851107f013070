// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package risk

import "formscan/internal/findings"

// overrides is the per-form fast path. Forms listed here have a stable,
// well-known risk profile and bypass the generic sweeps entirely. The table
// is consulted before any sweep runs so the override stays visible and
// independently testable.
var overrides = map[string][]findings.RiskAssessment{
	// Form 47 consumer proposals carry the same three risks on every
	// filing: annulment on default, the second-annulment bar, and the
	// surplus-income sensitivity of the payment schedule.
	"47": {
		{
			Category:       "financial",
			Severity:       findings.SeverityHigh,
			Description:    "proposal is annulled automatically when the consumer debtor is three months in default",
			Impact:         "annulment revives the full original debt less payments made",
			RequiredAction: "confirm the payment schedule leaves headroom against income interruption",
			References: []findings.LegalReference{
				{Source: "BIA", Reference: "s.66.31", Title: "Annulment on Default"},
			},
		},
		{
			Category:       "legal",
			Severity:       findings.SeverityMedium,
			Description:    "a debtor whose proposal is annulled cannot file another without court leave",
			Impact:         "default forecloses the proposal remedy and usually leads to bankruptcy",
			RequiredAction: "advise the debtor of the consequences of annulment before filing",
			References: []findings.LegalReference{
				{Source: "BIA", Reference: "s.66.32", Title: "Subsequent Proposals"},
			},
		},
		{
			Category:       "compliance",
			Severity:       findings.SeverityMedium,
			Description:    "payment schedule must be re-examined when the debtor's income changes materially",
			Impact:         "an unadjusted schedule understates the return available to creditors",
			RequiredAction: "schedule the statutory income review with the administrator",
			References: []findings.LegalReference{
				{Source: "OSB", Reference: "Directive 6R3", Title: "Assessment of an Individual Debtor"},
			},
		},
	},
}

// Override returns the pre-authored risk set for a form, if one exists. The
// returned slice is a copy; callers may not mutate the table.
func Override(formNumber string) ([]findings.RiskAssessment, bool) {
	set, ok := overrides[formNumber]
	if !ok {
		return nil, false
	}
	out := make([]findings.RiskAssessment, len(set))
	copy(out, set)
	return out, true
}
