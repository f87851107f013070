// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package registry

import "formscan/internal/findings"

// corporateForms covers receiverships and corporate restructuring filings
// under the BIA and the Companies' Creditors Arrangement Act.
func corporateForms() []FormTemplate {
	return []FormTemplate{
		{
			FormNumber:  "82",
			Title:       "Notice of Intention to Enforce Security",
			Category:    "corporate",
			Subcategory: "receivership",
			RequiredFields: []RequiredField{
				req("clientName", TypeText, "BIA s.244(1) — insolvent debtor"),
				req("securityInfo", TypeText, "BIA s.244(1) — security to be enforced"),
				req("totalDebt", TypeCurrency, "amount secured"),
				req("dateSigned", TypeDate, "BIA s.244(2) — 10-day enforcement stay"),
			},
			DateFields:     []string{"dateSigned"},
			MonetaryFields: []string{"totalDebt"},
			RiskIndicators: []RiskIndicator{
				{Field: "dateSigned", RiskType: "legal", Severity: findings.SeverityHigh,
					Description: "Enforcement before the 10-day notice period expires is invalid",
					Threshold:   &Threshold{Value: 10, Unit: "days", Operator: "lt"}},
			},
			References: []string{"BIA s.244"},
		},
		{
			FormNumber:  "83",
			Title:       "Statement of Receiver (Initial Report)",
			Category:    "corporate",
			Subcategory: "receivership",
			RequiredFields: []RequiredField{
				req("clientName", TypeText, "BIA s.246(1) — debtor in receivership"),
				req("trusteeName", TypeText, "appointed receiver"),
				req("totalAssets", TypeCurrency, "property under the receiver's control"),
				req("dateSigned", TypeDate, "report date"),
			},
			DateFields:     []string{"dateSigned"},
			MonetaryFields: []string{"totalAssets"},
			References:     []string{"BIA s.246"},
		},
		{
			FormNumber:  "84",
			Title:       "Receiver's Interim Report",
			Category:    "corporate",
			Subcategory: "receivership",
			RequiredFields: []RequiredField{
				req("clientName", TypeText, "debtor in receivership"),
				req("trusteeName", TypeText, "reporting receiver"),
				req("totalAssets", TypeCurrency, "realizations to date"),
				req("dateSigned", TypeDate, "report date"),
			},
			DateFields:     []string{"dateSigned"},
			MonetaryFields: []string{"totalAssets"},
			References:     []string{"BIA s.246(2)"},
		},
		{
			FormNumber:  "85",
			Title:       "Receiver's Final Report and Statement of Accounts",
			Category:    "corporate",
			Subcategory: "receivership",
			RequiredFields: []RequiredField{
				req("clientName", TypeText, "debtor in receivership"),
				req("trusteeName", TypeText, "reporting receiver"),
				req("totalAssets", TypeCurrency, "total realizations"),
				req("totalLiabilities", TypeCurrency, "claims against the receivership"),
				req("dateSigned", TypeDate, "final report date"),
			},
			DateFields:     []string{"dateSigned"},
			MonetaryFields: []string{"totalAssets", "totalLiabilities"},
			References:     []string{"BIA s.246(3)"},
		},
		{
			FormNumber:  "86",
			Title:       "Initial Application for CCAA Protection",
			Category:    "corporate",
			Subcategory: "ccaa",
			RequiredFields: []RequiredField{
				req("clientName", TypeText, "CCAA s.3(1) — debtor company"),
				req("totalDebt", TypeCurrency, "CCAA s.3(1) — claims must exceed five million dollars"),
				req("courtNumber", TypeText, "supervising court file"),
				req("dateOfFiling", TypeDate, "initial order date"),
				req("businessNumber", TypeText, "corporate registration"),
			},
			DateFields:     []string{"dateOfFiling"},
			MonetaryFields: []string{"totalDebt"},
			RiskIndicators: []RiskIndicator{
				{Field: "totalDebt", RiskType: "compliance", Severity: findings.SeverityHigh,
					Description: "Claims below the five-million-dollar CCAA eligibility threshold",
					Threshold:   &Threshold{Value: 5000000, Unit: "amount", Operator: "lt"}},
			},
			References: []string{"CCAA s.3(1)"},
		},
		{
			FormNumber:  "87",
			Title:       "Monitor's Report on CCAA Proceedings",
			Category:    "corporate",
			Subcategory: "ccaa",
			RequiredFields: []RequiredField{
				req("clientName", TypeText, "debtor company"),
				req("trusteeName", TypeText, "CCAA s.23 — court-appointed monitor"),
				req("totalAssets", TypeCurrency, "assets under restructuring"),
				req("totalLiabilities", TypeCurrency, "claims outstanding"),
				req("dateSigned", TypeDate, "report date"),
			},
			DateFields:     []string{"dateSigned"},
			MonetaryFields: []string{"totalAssets", "totalLiabilities"},
			References:     []string{"CCAA s.23"},
		},
		{
			FormNumber:  "88",
			Title:       "Plan of Compromise or Arrangement",
			Category:    "corporate",
			Subcategory: "ccaa",
			RequiredFields: []RequiredField{
				req("clientName", TypeText, "debtor company"),
				req("proposalAmount", TypeCurrency, "consideration offered under the plan"),
				req("totalDebt", TypeCurrency, "claims compromised"),
				req("securedDebt", TypeCurrency, "secured claims affected"),
				req("dateSigned", TypeDate, "plan date"),
			},
			DateFields:     []string{"dateSigned"},
			MonetaryFields: []string{"proposalAmount", "totalDebt", "securedDebt"},
			RiskIndicators: []RiskIndicator{
				{Field: "securedDebt", RiskType: "financial", Severity: findings.SeverityMedium,
					Description: "Heavily secured debt load leaves little room for a viable restructuring",
					Threshold:   &Threshold{Value: 0.9, Unit: "ratio", Operator: "gt", Baseline: "totalDebt"}},
			},
			References: []string{"CCAA s.4", "CCAA s.5"},
		},
		{
			FormNumber:  "89",
			Title:       "Notice of Meeting of Creditors (CCAA Plan Vote)",
			Category:    "corporate",
			Subcategory: "ccaa",
			RequiredFields: []RequiredField{
				req("clientName", TypeText, "debtor company"),
				req("meetingInfo", TypeText, "CCAA s.4 — creditor class meeting"),
				req("chairInfo", TypeText, "meeting chair"),
			},
			References: []string{"CCAA s.4"},
		},
		{
			FormNumber:  "90",
			Title:       "Certificate of Plan Implementation",
			Category:    "corporate",
			Subcategory: "ccaa",
			RequiredFields: []RequiredField{
				req("clientName", TypeText, "debtor company"),
				req("trusteeName", TypeText, "certifying monitor"),
				req("courtNumber", TypeText, "sanction order reference"),
				req("dateSigned", TypeDate, "implementation date"),
			},
			DateFields: []string{"dateSigned"},
			References: []string{"CCAA s.6"},
		},
		{
			FormNumber:  "96",
			Title:       "Interim Receiver Appointment Order",
			Category:    "corporate",
			Subcategory: "receivership",
			RequiredFields: []RequiredField{
				req("clientName", TypeText, "BIA s.47(1) — debtor"),
				req("trusteeName", TypeText, "appointed interim receiver"),
				req("courtNumber", TypeText, "appointing court file"),
				req("dateSigned", TypeDate, "order date"),
			},
			DateFields: []string{"dateSigned"},
			References: []string{"BIA s.47"},
		},
	}
}
