// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package bankruptcy

import "formscan/internal/help"

// GetRuleInfo returns standardized information about the bankruptcy rules
func (v *Validator) GetRuleInfo() help.RuleInfo {
	return help.RuleInfo{
		Name:             "BANKRUPTCY",
		ShortDescription: "Cross-field checks for bankruptcy filings under the BIA",
		DetailedDescription: `The bankruptcy rule set checks the internal consistency of a bankruptcy
filing's declared financial position.

A person making an assignment must actually be insolvent: aggregate debts of
at least $1,000 and an inability to meet obligations as they become due. When
the declared assets materially exceed the declared liabilities, the filing is
flagged for review rather than rejected, since valuations on a statement of
affairs are estimates sworn by the debtor.`,

		Rules: []help.Rule{
			{Code: CodeSolvencyCheck, Kind: "warning",
				Description: "Declared assets exceed liabilities by more than 20%, which is atypical for a bankruptcy filing"},
		},

		Frameworks:      []string{"Bankruptcy and Insolvency Act, s.43(7)", "BIA s.2 (definition of insolvent person)"},
		FieldsConsulted: []string{"totalAssets", "totalLiabilities"},

		Examples: []string{
			"formscan --file statement-of-affairs.pdf --categories bankruptcy",
			"formscan --file estate.txt --form 79 --verbose",
		},
	}
}
