// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package corporate

import "formscan/internal/help"

// GetRuleInfo returns standardized information about the corporate rules
func (v *Validator) GetRuleInfo() help.RuleInfo {
	return help.RuleInfo{
		Name:             "CORPORATE",
		ShortDescription: "CCAA eligibility and restructuring viability checks",
		DetailedDescription: `The corporate rule set checks whether a restructuring application meets the
Companies' Creditors Arrangement Act entry requirements and whether a plan of
arrangement is structurally viable.

CCAA protection is only available to debtor companies with aggregate claims
of at least $5,000,000; smaller debtors restructure under BIA Division I
instead. Applications below the threshold are flagged as regulatory findings.

The viability check computes the secured share of total debt. When secured
claims exceed 90% of the total, the unsecured pool a plan would compromise is
negligible and the filing is flagged for review.`,

		Rules: []help.Rule{
			{Code: CodeCCAAThreshold, Kind: "regulatory",
				Description: "Aggregate claims are below the $5,000,000 CCAA eligibility minimum"},
			{Code: CodeRestructuringViability, Kind: "warning",
				Description: "Secured claims exceed 90% of total debt, leaving no unsecured pool to compromise"},
		},

		Frameworks:      []string{"Companies' Creditors Arrangement Act, s.3(1)", "CCAA s.4", "BIA Division I"},
		FieldsConsulted: []string{"totalDebt", "securedDebt"},

		Examples: []string{
			"formscan --file initial-order-application.pdf --categories corporate",
			"formscan --file plan.txt --form 86 --verbose",
		},
	}
}
