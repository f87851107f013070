// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package farming

import "formscan/internal/help"

// GetRuleInfo returns standardized information about the farming rules
func (v *Validator) GetRuleInfo() help.RuleInfo {
	return help.RuleInfo{
		Name:             "FARMING",
		ShortDescription: "Eligibility checks for farm debt mediation applications",
		DetailedDescription: `The farming rule set checks an application for mediation under the Farm
Debt Mediation Act against the statutory eligibility requirements.

Mediation is available only to insolvent farmers whose aggregate debt meets
the statutory minimum. Applications below the minimum are reported as
regulatory findings carrying both the declared and required amounts, so the
shortfall is visible without re-reading the source document.`,

		Rules: []help.Rule{
			{Code: CodeFDMAThreshold, Kind: "regulatory",
				Description: "Declared farm debt is below the $15,000 mediation eligibility minimum"},
		},

		Frameworks:      []string{"Farm Debt Mediation Act, s.5", "FDMA s.6"},
		FieldsConsulted: []string{"totalDebt"},

		Examples: []string{
			"formscan --file mediation-application.pdf --categories farming",
			"formscan --file farm-review.txt --form 55",
		},
	}
}
