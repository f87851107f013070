// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package registry

import "formscan/internal/findings"

// specializedForms covers the farming, pension, and securities-firm filings
// that carry their own statutory frameworks (FDMA, PBSA, provincial
// securities legislation) on top of the BIA.
func specializedForms() []FormTemplate {
	return []FormTemplate{
		// Farming — Farm Debt Mediation Act filings.
		{
			FormNumber:  "55",
			Title:       "Application for Farm Debt Mediation",
			Category:    "farming",
			Subcategory: "mediation",
			RequiredFields: []RequiredField{
				req("clientName", TypeText, "FDMA s.5 — insolvent farmer"),
				req("totalDebt", TypeCurrency, "FDMA s.6 — aggregate farm debt"),
				req("totalAssets", TypeCurrency, "farm assets under review"),
				req("dateOfFiling", TypeDate, "application date"),
			},
			DateFields:     []string{"dateOfFiling"},
			MonetaryFields: []string{"totalDebt", "totalAssets"},
			RiskIndicators: []RiskIndicator{
				{Field: "totalDebt", RiskType: "compliance", Severity: findings.SeverityHigh,
					Description: "Farm debt below the mediation eligibility minimum",
					Threshold:   &Threshold{Value: 15000, Unit: "amount", Operator: "lt"}},
			},
			References: []string{"FDMA s.5", "FDMA s.6"},
		},
		{
			FormNumber:  "56",
			Title:       "Notice of Stay of Proceedings (Farm Debt Mediation)",
			Category:    "farming",
			Subcategory: "mediation",
			RequiredFields: []RequiredField{
				req("clientName", TypeText, "FDMA s.7 — farmer protected by the stay"),
				req("dateOfFiling", TypeDate, "FDMA s.7(1) — 30-day stay start"),
			},
			DateFields: []string{"dateOfFiling"},
			References: []string{"FDMA s.7"},
		},
		{
			FormNumber:  "57",
			Title:       "Financial Review Report (Farm Operation)",
			Category:    "farming",
			Subcategory: "mediation",
			RequiredFields: []RequiredField{
				req("clientName", TypeText, "farmer under review"),
				req("totalAssets", TypeCurrency, "FDMA s.9 — farm asset appraisal"),
				req("totalLiabilities", TypeCurrency, "farm liabilities"),
				req("dateSigned", TypeDate, "review date"),
			},
			DateFields:     []string{"dateSigned"},
			MonetaryFields: []string{"totalAssets", "totalLiabilities"},
			References:     []string{"FDMA s.9"},
		},
		{
			FormNumber:  "58",
			Title:       "Mediation Arrangement (Farm Debt)",
			Category:    "farming",
			Subcategory: "mediation",
			RequiredFields: []RequiredField{
				req("clientName", TypeText, "farmer party to the arrangement"),
				req("monthlyPayment", TypeCurrency, "restructured payment schedule"),
				req("dateSigned", TypeDate, "FDMA s.10 — signed arrangement"),
			},
			DateFields:     []string{"dateSigned"},
			MonetaryFields: []string{"monthlyPayment"},
			References:     []string{"FDMA s.10"},
		},

		// Pension — wind-up filings under pension benefits standards.
		{
			FormNumber:  "60",
			Title:       "Pension Plan Wind-Up Report (Insolvent Employer)",
			Category:    "pension",
			Subcategory: "wind_up",
			RequiredFields: []RequiredField{
				req("clientName", TypeText, "insolvent plan sponsor"),
				req("totalAssets", TypeCurrency, "PBSA s.29 — plan assets at wind-up"),
				req("totalLiabilities", TypeCurrency, "accrued benefit liabilities"),
				req("dateSigned", TypeDate, "wind-up effective date"),
			},
			DateFields:     []string{"dateSigned"},
			MonetaryFields: []string{"totalAssets", "totalLiabilities"},
			RiskIndicators: []RiskIndicator{
				{Field: "totalAssets", RiskType: "compliance", Severity: findings.SeverityHigh,
					Description: "Plan funding ratio below the regulatory minimum",
					Threshold:   &Threshold{Value: 0.8, Unit: "ratio", Operator: "lt", Baseline: "totalLiabilities"}},
			},
			References: []string{"PBSA s.29", "BIA s.81.5"},
		},
		{
			FormNumber:  "61",
			Title:       "Statement of Unremitted Pension Contributions",
			Category:    "pension",
			Subcategory: "contributions",
			RequiredFields: []RequiredField{
				req("clientName", TypeText, "employer in default"),
				req("employerContributions", TypeCurrency, "BIA s.81.5 — contributions remitted to the fund"),
				req("requiredContributions", TypeCurrency, "required current service cost"),
				req("dateSigned", TypeDate, "statement date"),
			},
			DateFields:     []string{"dateSigned"},
			MonetaryFields: []string{"employerContributions", "requiredContributions"},
			RiskIndicators: []RiskIndicator{
				{Field: "employerContributions", RiskType: "legal", Severity: findings.SeverityHigh,
					Description: "Unremitted contributions rank as a super-priority charge"},
			},
			References: []string{"BIA s.81.5", "BIA s.81.6"},
		},
		{
			FormNumber:  "62",
			Title:       "Actuarial Valuation Summary (Wind-Up)",
			Category:    "pension",
			Subcategory: "wind_up",
			RequiredFields: []RequiredField{
				req("clientName", TypeText, "plan sponsor"),
				req("totalAssets", TypeCurrency, "solvency assets"),
				req("totalLiabilities", TypeCurrency, "solvency liabilities"),
				req("dateSigned", TypeDate, "valuation date"),
			},
			DateFields:     []string{"dateSigned"},
			MonetaryFields: []string{"totalAssets", "totalLiabilities"},
			References:     []string{"PBSA s.9", "PBSA s.29"},
		},

		// Securities — insolvent securities-firm filings.
		{
			FormNumber:  "70",
			Title:       "Securities Firm Bankruptcy — Statement of Customer Accounts",
			Category:    "securities",
			Subcategory: "customer_accounts",
			RequiredFields: []RequiredField{
				req("clientName", TypeText, "BIA Part XII — insolvent securities firm"),
				req("customerAssets", TypeCurrency, "customer assets held"),
				req("segregatedFunds", TypeCurrency, "segregated customer funds"),
				req("dateSigned", TypeDate, "statement date"),
			},
			DateFields:     []string{"dateSigned"},
			MonetaryFields: []string{"customerAssets", "segregatedFunds"},
			RiskIndicators: []RiskIndicator{
				{Field: "segregatedFunds", RiskType: "legal", Severity: findings.SeverityHigh,
					Description: "Segregated funds less than customer assets is a segregation breach",
					Threshold:   &Threshold{Value: 1.0, Unit: "ratio", Operator: "lt", Baseline: "customerAssets"}},
			},
			References: []string{"BIA s.253", "BIA s.261"},
		},
		{
			FormNumber:  "71",
			Title:       "Securities Firm — Regulatory Capital Report",
			Category:    "securities",
			Subcategory: "capital",
			RequiredFields: []RequiredField{
				req("clientName", TypeText, "reporting securities firm"),
				req("operatingCapital", TypeCurrency, "risk-adjusted operating capital"),
				req("dateSigned", TypeDate, "report date"),
			},
			DateFields:     []string{"dateSigned"},
			MonetaryFields: []string{"operatingCapital"},
			RiskIndicators: []RiskIndicator{
				{Field: "operatingCapital", RiskType: "compliance", Severity: findings.SeverityHigh,
					Description: "Operating capital below the regulatory minimum",
					Threshold:   &Threshold{Value: 250000, Unit: "amount", Operator: "lt"}},
			},
			References: []string{"CIRO Rule 4100", "BIA s.253"},
		},
		{
			FormNumber:  "72",
			Title:       "Customer Name Securities Reconciliation",
			Category:    "securities",
			Subcategory: "customer_accounts",
			RequiredFields: []RequiredField{
				req("clientName", TypeText, "insolvent securities firm"),
				req("trusteeName", TypeText, "BIA s.256 — administering trustee"),
				req("dateSigned", TypeDate, "reconciliation date"),
			},
			DateFields: []string{"dateSigned"},
			References: []string{"BIA s.256", "BIA s.263"},
		},
	}
}
