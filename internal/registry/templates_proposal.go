// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package registry

import "formscan/internal/findings"

// proposalForms covers Division I commercial proposals and Division II
// consumer proposals.
func proposalForms() []FormTemplate {
	return []FormTemplate{
		{
			FormNumber:  "40",
			Title:       "Certificate of Filing of a Consumer Proposal",
			Category:    "proposal",
			Subcategory: "consumer",
			RequiredFields: []RequiredField{
				req("clientName", TypeText, "BIA s.66.13 — consumer debtor"),
				req("trusteeName", TypeText, "administrator of the proposal"),
				req("dateOfFiling", TypeDate, "BIA s.66.13(2) — filing date"),
				opt("estateNumber", TypeText, "OSB Directive 16R — estate reference"),
			},
			DateFields: []string{"dateOfFiling"},
			References: []string{"BIA s.66.13"},
		},
		{
			FormNumber:  "44",
			Title:       "Notice of Intention to Make a Proposal",
			Category:    "proposal",
			Subcategory: "division_i",
			RequiredFields: []RequiredField{
				req("clientName", TypeText, "BIA s.50.4(1) — insolvent person"),
				req("trusteeName", TypeText, "BIA s.50.4(1) — trustee under the notice"),
				req("dateOfFiling", TypeDate, "BIA s.50.4(8) — 30-day stay clock start"),
			},
			DateFields: []string{"dateOfFiling"},
			RiskIndicators: []RiskIndicator{
				{Field: "dateOfFiling", RiskType: "compliance", Severity: findings.SeverityHigh,
					Description: "Proposal must be filed within 30 days of the notice of intention",
					Threshold:   &Threshold{Value: 30, Unit: "days", Operator: "gt"}},
			},
			References: []string{"BIA s.50.4"},
		},
		{
			FormNumber:  "45",
			Title:       "Cash-Flow Statement",
			Category:    "proposal",
			Subcategory: "division_i",
			RequiredFields: []RequiredField{
				req("clientName", TypeText, "BIA s.50(6) — person making the proposal"),
				req("monthlyIncome", TypeCurrency, "projected monthly receipts"),
				req("monthlyExpenses", TypeCurrency, "projected monthly disbursements"),
				req("dateSigned", TypeDate, "statement date"),
			},
			DateFields:     []string{"dateSigned"},
			MonetaryFields: []string{"monthlyIncome", "monthlyExpenses"},
			RiskIndicators: []RiskIndicator{
				{Field: "monthlyExpenses", RiskType: "financial", Severity: findings.SeverityHigh,
					Description: "Projected disbursements exceed projected receipts",
					Threshold:   &Threshold{Value: 1.0, Unit: "ratio", Operator: "gt", Baseline: "monthlyIncome"}},
			},
			References: []string{"BIA s.50(6)"},
		},
		{
			FormNumber:  "46",
			Title:       "Report of Trustee on Cash-Flow Statement",
			Category:    "proposal",
			Subcategory: "division_i",
			RequiredFields: []RequiredField{
				req("clientName", TypeText, "person making the proposal"),
				req("trusteeName", TypeText, "BIA s.50(6)(b) — reviewing trustee"),
				req("dateSigned", TypeDate, "report date"),
			},
			DateFields: []string{"dateSigned"},
			References: []string{"BIA s.50(6)"},
		},
		{
			FormNumber:  "47",
			Title:       "Consumer Proposal",
			Category:    "proposal",
			Subcategory: "consumer",
			RequiredFields: []RequiredField{
				req("clientName", TypeText, "BIA s.66.13(2) — consumer debtor"),
				req("trusteeName", TypeText, "administrator of the proposal"),
				req("proposalAmount", TypeCurrency, "BIA s.66.12 — total offered to creditors"),
				req("monthlyPayment", TypeCurrency, "payment schedule instalment"),
				req("proposalTerm", TypeNumber, "BIA s.66.12(5) — term not exceeding five years"),
				req("totalDebt", TypeCurrency, "BIA s.66.11 — aggregate debts excluding mortgage"),
				req("dateSigned", TypeDate, "execution date"),
				opt("securedDebt", TypeCurrency, "claims of secured creditors"),
			},
			DateFields:     []string{"dateSigned"},
			MonetaryFields: []string{"proposalAmount", "monthlyPayment", "totalDebt", "securedDebt"},
			RiskIndicators: []RiskIndicator{
				{Field: "totalDebt", RiskType: "compliance", Severity: findings.SeverityHigh,
					Description: "Consumer proposal debts exceed the Division II ceiling",
					Threshold:   &Threshold{Value: 250000, Unit: "amount", Operator: "gt"}},
				{Field: "proposalTerm", RiskType: "compliance", Severity: findings.SeverityHigh,
					Description: "Term exceeds the five-year statutory maximum",
					Threshold:   &Threshold{Value: 60, Unit: "days", Operator: "gt"}},
				{Field: "proposalAmount", RiskType: "financial", Severity: findings.SeverityMedium,
					Description: "Offer is a small fraction of unsecured debt and may not gain creditor approval",
					Threshold:   &Threshold{Value: 0.3, Unit: "ratio", Operator: "lt", Baseline: "totalDebt"}},
			},
			References: []string{"BIA s.66.11", "BIA s.66.12", "BIA s.66.13"},
		},
		{
			FormNumber:  "48",
			Title:       "Report of Administrator on Consumer Proposal",
			Category:    "proposal",
			Subcategory: "consumer",
			RequiredFields: []RequiredField{
				req("clientName", TypeText, "consumer debtor"),
				req("trusteeName", TypeText, "BIA s.66.14 — reporting administrator"),
				req("dateSigned", TypeDate, "report date"),
			},
			DateFields: []string{"dateSigned"},
			References: []string{"BIA s.66.14"},
		},
		{
			FormNumber:  "49",
			Title:       "Notice to Creditors of Consumer Proposal",
			Category:    "proposal",
			Subcategory: "consumer",
			RequiredFields: []RequiredField{
				req("clientName", TypeText, "consumer debtor"),
				req("trusteeName", TypeText, "administrator giving notice"),
				req("proposalAmount", TypeCurrency, "amount offered"),
				req("dateOfFiling", TypeDate, "BIA s.66.14(b) — notice within 10 days of filing"),
			},
			DateFields:     []string{"dateOfFiling"},
			MonetaryFields: []string{"proposalAmount"},
			References:     []string{"BIA s.66.14"},
		},
		{
			FormNumber:  "50",
			Title:       "Certificate of Full Performance of Consumer Proposal",
			Category:    "proposal",
			Subcategory: "consumer",
			RequiredFields: []RequiredField{
				req("clientName", TypeText, "consumer debtor released"),
				req("trusteeName", TypeText, "certifying administrator"),
				req("dateSigned", TypeDate, "BIA s.66.38 — completion date"),
			},
			DateFields: []string{"dateSigned"},
			References: []string{"BIA s.66.38"},
		},
		{
			FormNumber:  "51",
			Title:       "Notice of Default in Performance of Consumer Proposal",
			Category:    "proposal",
			Subcategory: "consumer",
			RequiredFields: []RequiredField{
				req("clientName", TypeText, "defaulting consumer debtor"),
				req("trusteeName", TypeText, "administrator giving notice"),
				req("monthlyPayment", TypeCurrency, "instalment in default"),
				req("dateSigned", TypeDate, "BIA s.66.31 — deemed annulment clock"),
			},
			DateFields:     []string{"dateSigned"},
			MonetaryFields: []string{"monthlyPayment"},
			RiskIndicators: []RiskIndicator{
				{Field: "monthlyPayment", RiskType: "financial", Severity: findings.SeverityHigh,
					Description: "Three months of missed payments deems the proposal annulled"},
			},
			References: []string{"BIA s.66.31"},
		},
		{
			FormNumber:  "52",
			Title:       "Notice of Annulment of Consumer Proposal",
			Category:    "proposal",
			Subcategory: "consumer",
			RequiredFields: []RequiredField{
				req("clientName", TypeText, "consumer debtor"),
				req("trusteeName", TypeText, "administrator giving notice"),
				req("dateSigned", TypeDate, "annulment date"),
			},
			DateFields: []string{"dateSigned"},
			References: []string{"BIA s.66.3"},
		},
		{
			FormNumber:  "91",
			Title:       "Proposal (Division I)",
			Category:    "proposal",
			Subcategory: "division_i",
			RequiredFields: []RequiredField{
				req("clientName", TypeText, "BIA s.50(1) — insolvent person"),
				req("trusteeName", TypeText, "trustee under the proposal"),
				req("proposalAmount", TypeCurrency, "consideration offered to creditors"),
				req("totalDebt", TypeCurrency, "aggregate claims"),
				req("securedDebt", TypeCurrency, "claims of secured creditors addressed"),
				req("dateSigned", TypeDate, "execution date"),
				opt("monthlyPayment", TypeCurrency, "instalment schedule"),
				opt("proposalTerm", TypeNumber, "term in months"),
			},
			DateFields:     []string{"dateSigned"},
			MonetaryFields: []string{"proposalAmount", "totalDebt", "securedDebt", "monthlyPayment"},
			RiskIndicators: []RiskIndicator{
				{Field: "proposalAmount", RiskType: "financial", Severity: findings.SeverityMedium,
					Description: "Offer is a small fraction of unsecured debt and may not gain creditor approval",
					Threshold:   &Threshold{Value: 0.3, Unit: "ratio", Operator: "lt", Baseline: "totalDebt"}},
			},
			References: []string{"BIA s.50", "BIA s.62"},
		},
		{
			FormNumber:  "92",
			Title:       "Report of Trustee on Proposal (Division I)",
			Category:    "proposal",
			Subcategory: "division_i",
			RequiredFields: []RequiredField{
				req("clientName", TypeText, "insolvent person"),
				req("trusteeName", TypeText, "BIA s.51(1)(b) — reporting trustee"),
				req("dateSigned", TypeDate, "report date"),
			},
			DateFields: []string{"dateSigned"},
			References: []string{"BIA s.51"},
		},
		{
			FormNumber:  "93",
			Title:       "Notice of Meeting of Creditors to Consider Proposal",
			Category:    "proposal",
			Subcategory: "division_i",
			RequiredFields: []RequiredField{
				req("clientName", TypeText, "insolvent person"),
				req("meetingInfo", TypeText, "BIA s.51(1) — meeting within 21 days of filing"),
				req("chairInfo", TypeText, "meeting chair"),
			},
			RiskIndicators: []RiskIndicator{
				{Field: "meetingInfo", RiskType: "compliance", Severity: findings.SeverityHigh,
					Description: "Meeting to consider the proposal must be held within 21 days",
					Threshold:   &Threshold{Value: 21, Unit: "days", Operator: "gt"}},
			},
			References: []string{"BIA s.51"},
		},
		{
			FormNumber:  "94",
			Title:       "Certificate of Approval of Proposal by Court",
			Category:    "proposal",
			Subcategory: "division_i",
			RequiredFields: []RequiredField{
				req("clientName", TypeText, "insolvent person"),
				req("courtNumber", TypeText, "approving court file"),
				req("dateSigned", TypeDate, "BIA s.58 — approval date"),
			},
			DateFields: []string{"dateSigned"},
			References: []string{"BIA s.58", "BIA s.59"},
		},
	}
}
