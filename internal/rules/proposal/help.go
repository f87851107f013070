// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package proposal

import "formscan/internal/help"

// GetRuleInfo returns standardized information about the proposal rules
func (v *Validator) GetRuleInfo() help.RuleInfo {
	return help.RuleInfo{
		Name:             "PROPOSAL",
		ShortDescription: "Viability checks for consumer and Division I proposals",
		DetailedDescription: `The proposal rule set checks whether the terms offered to creditors are
internally consistent and plausibly acceptable.

The return ratio compares the proposal amount against the unsecured debt
(total debt less secured claims). Proposals returning less than 30 cents on
the dollar are flagged for review since creditors rarely accept them.

The payment schedule check multiplies the monthly payment by the term in
months and requires the total to cover the promised proposal amount. A
schedule that cannot fund the proposal is an arithmetic impossibility, so it
is reported as an error.`,

		Rules: []help.Rule{
			{Code: CodeLowProposalRatio, Kind: "warning",
				Description: "Proposal amount is below 30% of the unsecured debt"},
			{Code: CodeInsufficientPayments, Kind: "error",
				Description: "Monthly payment times term does not cover the proposal amount"},
		},

		Frameworks:      []string{"Bankruptcy and Insolvency Act, s.54 (creditor acceptance)", "BIA s.66.12 (consumer proposals)"},
		FieldsConsulted: []string{"proposalAmount", "totalDebt", "securedDebt", "monthlyPayment", "proposalTerm"},

		Examples: []string{
			"formscan --file consumer-proposal.pdf --form 47",
			"formscan --file proposal.txt --categories proposal --format json",
		},
	}
}
