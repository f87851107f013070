// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package pension

import "formscan/internal/help"

// GetRuleInfo returns standardized information about the pension rules
func (v *Validator) GetRuleInfo() help.RuleInfo {
	return help.RuleInfo{
		Name:             "PENSION",
		ShortDescription: "Funding and contribution checks for pension wind-up filings",
		DetailedDescription: `The pension rule set checks wind-up filings made when an insolvent employer
sponsors a registered pension plan.

The funding check divides plan assets by accrued benefit liabilities. A plan
funded below the 80% solvency minimum is reported as a regulatory finding for
the supervisor's attention.

The contribution check compares the contributions the employer remitted
against the plan's required current service cost. Under the BIA unremitted
amounts rank as a super-priority charge on the employer's assets, so a
shortfall is reported as an error rather than a risk — including when the
statement declares no remittance at all.`,

		Rules: []help.Rule{
			{Code: CodeFundingRatio, Kind: "regulatory",
				Description: "Plan assets fund less than 80% of accrued benefit liabilities"},
			{Code: CodeEmployerContribution, Kind: "error",
				Description: "Employer contributions fall short of the required current service cost"},
		},

		Frameworks:      []string{"Pension Benefits Standards Act, s.29", "BIA s.81.5 (super-priority)", "BIA s.81.6"},
		FieldsConsulted: []string{"totalAssets", "totalLiabilities", "employerContributions", "requiredContributions"},

		Examples: []string{
			"formscan --file wind-up-report.pdf --categories pension",
			"formscan --file contributions.txt --form 61 --verbose",
		},
	}
}
