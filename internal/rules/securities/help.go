// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package securities

import "formscan/internal/help"

// GetRuleInfo returns standardized information about the securities rules
func (v *Validator) GetRuleInfo() help.RuleInfo {
	return help.RuleInfo{
		Name:             "SECURITIES",
		ShortDescription: "Capital and segregation checks for insolvent securities firms",
		DetailedDescription: `The securities rule set checks the filings of an insolvent securities firm
administered under BIA Part XII.

The capital check compares the firm's risk-adjusted operating capital against
the regulatory minimum. A shortfall is a regulatory finding for the
self-regulatory organization.

The segregation check compares segregated customer funds against the customer
assets the firm holds. Customer property must be fully segregated from the
firm's own funds at all times; a shortfall is a direct compliance breach and
is reported as an error.`,

		Rules: []help.Rule{
			{Code: CodeCapitalAdequacy, Kind: "regulatory",
				Description: "Operating capital is below the $250,000 regulatory minimum"},
			{Code: CodeSegregationViolation, Kind: "error",
				Description: "Segregated funds do not cover the customer assets held"},
		},

		Frameworks:      []string{"BIA Part XII (securities firm bankruptcies)", "BIA s.261", "CIRO Rule 4100"},
		FieldsConsulted: []string{"operatingCapital", "customerAssets", "segregatedFunds"},

		Examples: []string{
			"formscan --file customer-accounts.pdf --categories securities",
			"formscan --file capital-report.txt --form 71",
		},
	}
}
