// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package registry

import "formscan/internal/findings"

// bankruptcyForms covers ordinary administration and summary administration
// bankruptcy filings under the Bankruptcy and Insolvency Act.
func bankruptcyForms() []FormTemplate {
	return []FormTemplate{
		{
			FormNumber:  "1",
			Title:       "Assignment for the General Benefit of Creditors",
			Category:    "bankruptcy",
			Subcategory: "assignment",
			RequiredFields: []RequiredField{
				req("clientName", TypeText, "BIA s.49(1) — identity of the insolvent person"),
				req("trusteeName", TypeText, "BIA s.49(4) — appointed licensed insolvency trustee"),
				req("dateSigned", TypeDate, "BIA s.49(1) — execution date of the assignment"),
				req("districtOf", TypeText, "BIA s.43(5) — locality of the debtor"),
				opt("estateNumber", TypeText, "OSB Directive 16R — estate numbering"),
			},
			DateFields:     []string{"dateSigned"},
			MonetaryFields: nil,
			RiskIndicators: []RiskIndicator{
				{Field: "dateSigned", RiskType: "compliance", Severity: findings.SeverityHigh,
					Description: "Unsigned or undated assignment is not a valid bankruptcy event"},
			},
			References: []string{"BIA s.49", "BIA s.43(5)"},
		},
		{
			FormNumber:  "2",
			Title:       "Statement of Affairs (Business Bankruptcy)",
			Category:    "bankruptcy",
			Subcategory: "statement_of_affairs",
			RequiredFields: []RequiredField{
				req("clientName", TypeText, "BIA s.158(d) — full disclosure of affairs"),
				req("trusteeName", TypeText, "BIA s.16 — trustee of record"),
				req("totalAssets", TypeCurrency, "BIA s.158(d) — asset disclosure"),
				req("totalLiabilities", TypeCurrency, "BIA s.158(d) — liability disclosure"),
				req("dateSigned", TypeDate, "BIA s.158(d) — sworn date"),
				opt("businessNumber", TypeText, "CRA program account of the business"),
			},
			DateFields:     []string{"dateSigned"},
			MonetaryFields: []string{"totalAssets", "totalLiabilities"},
			RiskIndicators: []RiskIndicator{
				{Field: "totalAssets", RiskType: "financial", Severity: findings.SeverityHigh,
					Description: "Assets materially exceeding liabilities is atypical for a bankruptcy filing",
					Threshold:   &Threshold{Value: 1.2, Unit: "ratio", Operator: "gt", Baseline: "totalLiabilities"}},
				{Field: "totalLiabilities", RiskType: "compliance", Severity: findings.SeverityMedium,
					Description: "Liabilities below the statutory bankruptcy minimum",
					Threshold:   &Threshold{Value: 1000, Unit: "amount", Operator: "lt"}},
			},
			References: []string{"BIA s.158(d)", "BIA s.49(2)"},
		},
		{
			FormNumber:  "3",
			Title:       "Statement of Affairs (Non-Business Bankruptcy)",
			Category:    "bankruptcy",
			Subcategory: "statement_of_affairs",
			RequiredFields: []RequiredField{
				req("clientName", TypeText, "BIA s.158(d) — full disclosure of affairs"),
				req("trusteeName", TypeText, "BIA s.16 — trustee of record"),
				req("totalAssets", TypeCurrency, "BIA s.158(d) — asset disclosure"),
				req("totalLiabilities", TypeCurrency, "BIA s.158(d) — liability disclosure"),
				req("dateSigned", TypeDate, "BIA s.158(d) — sworn date"),
				opt("monthlyIncome", TypeCurrency, "OSB Directive 11R2 — surplus income baseline"),
			},
			DateFields:     []string{"dateSigned"},
			MonetaryFields: []string{"totalAssets", "totalLiabilities", "monthlyIncome"},
			RiskIndicators: []RiskIndicator{
				{Field: "totalAssets", RiskType: "financial", Severity: findings.SeverityHigh,
					Description: "Assets materially exceeding liabilities is atypical for a bankruptcy filing",
					Threshold:   &Threshold{Value: 1.2, Unit: "ratio", Operator: "gt", Baseline: "totalLiabilities"}},
			},
			References: []string{"BIA s.158(d)"},
		},
		{
			FormNumber:  "4",
			Title:       "Report of Trustee on Bankrupt's Application for Discharge",
			Category:    "bankruptcy",
			Subcategory: "discharge",
			RequiredFields: []RequiredField{
				req("clientName", TypeText, "BIA s.170(1) — bankrupt under report"),
				req("trusteeName", TypeText, "BIA s.170(1) — reporting trustee"),
				req("estateNumber", TypeText, "OSB Directive 16R — estate reference"),
				req("dateSigned", TypeDate, "BIA s.170(2) — report date"),
			},
			DateFields: []string{"dateSigned"},
			References: []string{"BIA s.170"},
		},
		{
			FormNumber:  "5",
			Title:       "Notice of Bankruptcy and First Meeting of Creditors",
			Category:    "bankruptcy",
			Subcategory: "notice",
			RequiredFields: []RequiredField{
				req("clientName", TypeText, "BIA s.102(1) — identity of the bankrupt"),
				req("trusteeName", TypeText, "BIA s.102(1) — convening trustee"),
				req("meetingInfo", TypeText, "BIA s.102(1) — time and place of first meeting"),
				req("dateOfBankruptcy", TypeDate, "BIA s.2 — date of the initial bankruptcy event"),
				opt("officialReceiver", TypeText, "BIA s.105 — chair of the first meeting"),
			},
			DateFields: []string{"dateOfBankruptcy"},
			RiskIndicators: []RiskIndicator{
				{Field: "meetingInfo", RiskType: "compliance", Severity: findings.SeverityHigh,
					Description: "First meeting must be convened within 21 days of bankruptcy",
					Threshold:   &Threshold{Value: 21, Unit: "days", Operator: "gt"}},
			},
			References: []string{"BIA s.102"},
		},
		{
			FormNumber:  "6",
			Title:       "Notice of Impending Automatic Discharge of First-Time Bankrupt",
			Category:    "bankruptcy",
			Subcategory: "discharge",
			RequiredFields: []RequiredField{
				req("clientName", TypeText, "BIA s.168.1 — bankrupt eligible for automatic discharge"),
				req("trusteeName", TypeText, "BIA s.168.1 — administering trustee"),
				req("dateOfBankruptcy", TypeDate, "BIA s.168.1(1) — discharge clock start"),
			},
			DateFields: []string{"dateOfBankruptcy"},
			References: []string{"BIA s.168.1"},
		},
		{
			FormNumber:  "8",
			Title:       "Notice of Stay of Proceedings",
			Category:    "bankruptcy",
			Subcategory: "notice",
			RequiredFields: []RequiredField{
				req("clientName", TypeText, "BIA s.69 — debtor protected by the stay"),
				req("trusteeName", TypeText, "BIA s.69 — issuing trustee"),
				req("dateOfFiling", TypeDate, "BIA s.69(1) — stay effective date"),
			},
			DateFields: []string{"dateOfFiling"},
			References: []string{"BIA s.69"},
		},
		{
			FormNumber:  "9",
			Title:       "Certificate of Appointment of Trustee",
			Category:    "bankruptcy",
			Subcategory: "appointment",
			RequiredFields: []RequiredField{
				req("trusteeName", TypeText, "BIA s.13 — licence holder appointed"),
				req("clientName", TypeText, "estate to which the trustee is appointed"),
				req("estateNumber", TypeText, "OSB Directive 16R — estate reference"),
				req("dateSigned", TypeDate, "date of the official receiver's certificate"),
				opt("officialReceiver", TypeText, "issuing official receiver"),
			},
			DateFields: []string{"dateSigned"},
			References: []string{"BIA s.13", "BIA s.49(4)"},
		},
		{
			FormNumber:  "11",
			Title:       "Notice of First Meeting of Creditors (Ordinary Administration)",
			Category:    "bankruptcy",
			Subcategory: "meeting",
			RequiredFields: []RequiredField{
				req("clientName", TypeText, "BIA s.102 — estate under administration"),
				req("meetingInfo", TypeText, "BIA s.102(1) — time and place"),
				req("chairInfo", TypeText, "BIA s.105(1) — meeting chair"),
			},
			References: []string{"BIA s.102", "BIA s.105"},
		},
		{
			FormNumber:  "12",
			Title:       "Minutes of the First Meeting of Creditors",
			Category:    "bankruptcy",
			Subcategory: "meeting",
			RequiredFields: []RequiredField{
				req("clientName", TypeText, "estate under administration"),
				req("chairInfo", TypeText, "BIA s.105(4) — chair certifying the minutes"),
				req("dateSigned", TypeDate, "date the minutes were settled"),
			},
			DateFields: []string{"dateSigned"},
			References: []string{"BIA s.105"},
		},
		{
			FormNumber:  "14",
			Title:       "General Proxy",
			Category:    "bankruptcy",
			Subcategory: "meeting",
			RequiredFields: []RequiredField{
				req("clientName", TypeText, "estate in which the proxy is granted"),
				req("dateSigned", TypeDate, "BIA s.102(2) — execution date"),
			},
			DateFields: []string{"dateSigned"},
			References: []string{"BIA s.102(2)"},
		},
		{
			FormNumber:  "15",
			Title:       "Notice of Final Dividend and Application for Discharge of Trustee",
			Category:    "bankruptcy",
			Subcategory: "dividend",
			RequiredFields: []RequiredField{
				req("clientName", TypeText, "estate being closed"),
				req("trusteeName", TypeText, "BIA s.152 — trustee seeking discharge"),
				req("dateSigned", TypeDate, "notice date"),
			},
			DateFields: []string{"dateSigned"},
			References: []string{"BIA s.148", "BIA s.152"},
		},
		{
			FormNumber:  "16",
			Title:       "Statement of Receipts and Disbursements",
			Category:    "bankruptcy",
			Subcategory: "accounting",
			RequiredFields: []RequiredField{
				req("clientName", TypeText, "estate under administration"),
				req("trusteeName", TypeText, "BIA s.152(1) — accounting trustee"),
				req("totalAssets", TypeCurrency, "BIA s.152(1)(a) — realized property"),
				req("dateSigned", TypeDate, "statement date"),
			},
			DateFields:     []string{"dateSigned"},
			MonetaryFields: []string{"totalAssets"},
			RiskIndicators: []RiskIndicator{
				{Field: "totalAssets", RiskType: "financial", Severity: findings.SeverityMedium,
					Description: "Zero realizations reported against a funded estate"},
			},
			References: []string{"BIA s.152"},
		},
		{
			FormNumber:  "17",
			Title:       "Dividend Sheet",
			Category:    "bankruptcy",
			Subcategory: "dividend",
			RequiredFields: []RequiredField{
				req("clientName", TypeText, "estate being distributed"),
				req("totalAssets", TypeCurrency, "funds available for distribution"),
				req("dateSigned", TypeDate, "distribution date"),
			},
			DateFields:     []string{"dateSigned"},
			MonetaryFields: []string{"totalAssets"},
			References:     []string{"BIA s.148"},
		},
		{
			FormNumber:  "19",
			Title:       "Notice of Bankruptcy (Summary Administration)",
			Category:    "bankruptcy",
			Subcategory: "notice",
			RequiredFields: []RequiredField{
				req("clientName", TypeText, "BIA s.155 — summary administration estate"),
				req("trusteeName", TypeText, "administering trustee"),
				req("dateOfBankruptcy", TypeDate, "BIA s.2 — date of bankruptcy"),
				opt("estateNumber", TypeText, "OSB Directive 16R — estate reference"),
			},
			DateFields: []string{"dateOfBankruptcy"},
			References: []string{"BIA s.155"},
		},
		{
			FormNumber:  "21",
			Title:       "Assignment (by Officer of Corporation or Firm)",
			Category:    "bankruptcy",
			Subcategory: "assignment",
			RequiredFields: []RequiredField{
				req("clientName", TypeText, "BIA s.49(1) — corporate debtor"),
				req("trusteeName", TypeText, "appointed trustee"),
				req("dateSigned", TypeDate, "execution date"),
				req("businessNumber", TypeText, "CRA registration of the corporation"),
			},
			DateFields: []string{"dateSigned"},
			References: []string{"BIA s.49"},
		},
		{
			FormNumber:  "22",
			Title:       "Notice of Disclaimer of Lease",
			Category:    "bankruptcy",
			Subcategory: "notice",
			RequiredFields: []RequiredField{
				req("clientName", TypeText, "estate disclaiming the lease"),
				req("trusteeName", TypeText, "disclaiming trustee"),
				req("dateSigned", TypeDate, "disclaimer date"),
			},
			DateFields: []string{"dateSigned"},
			References: []string{"BIA s.30(1)(k)"},
		},
		{
			FormNumber:  "24",
			Title:       "Notice of Intended Sale of Assets",
			Category:    "bankruptcy",
			Subcategory: "notice",
			RequiredFields: []RequiredField{
				req("clientName", TypeText, "estate whose assets are sold"),
				req("trusteeName", TypeText, "selling trustee"),
				req("totalAssets", TypeCurrency, "appraised value of the assets"),
				req("dateSigned", TypeDate, "notice date"),
			},
			DateFields:     []string{"dateSigned"},
			MonetaryFields: []string{"totalAssets"},
			RiskIndicators: []RiskIndicator{
				{Field: "totalAssets", RiskType: "legal", Severity: findings.SeverityMedium,
					Description: "Sale below appraised value requires inspector approval"},
			},
			References: []string{"BIA s.30(1)(a)"},
		},
		{
			FormNumber:  "27",
			Title:       "Trustee's Preliminary Report to Creditors",
			Category:    "bankruptcy",
			Subcategory: "report",
			RequiredFields: []RequiredField{
				req("clientName", TypeText, "estate under report"),
				req("trusteeName", TypeText, "reporting trustee"),
				req("totalAssets", TypeCurrency, "estimated realizable value"),
				req("totalLiabilities", TypeCurrency, "proven and estimated claims"),
				req("dateSigned", TypeDate, "report date"),
			},
			DateFields:     []string{"dateSigned"},
			MonetaryFields: []string{"totalAssets", "totalLiabilities"},
			References:     []string{"BIA s.102(5)"},
		},
		{
			FormNumber:  "29",
			Title:       "Order of Discharge of Bankrupt",
			Category:    "bankruptcy",
			Subcategory: "discharge",
			RequiredFields: []RequiredField{
				req("clientName", TypeText, "bankrupt being discharged"),
				req("courtNumber", TypeText, "court file reference"),
				req("dateSigned", TypeDate, "order date"),
			},
			DateFields: []string{"dateSigned"},
			References: []string{"BIA s.172"},
		},
		{
			FormNumber:  "30",
			Title:       "Conditional Order of Discharge",
			Category:    "bankruptcy",
			Subcategory: "discharge",
			RequiredFields: []RequiredField{
				req("clientName", TypeText, "bankrupt subject to conditions"),
				req("courtNumber", TypeText, "court file reference"),
				req("monthlyPayment", TypeCurrency, "BIA s.172(2) — conditional payment ordered"),
				req("dateSigned", TypeDate, "order date"),
			},
			DateFields:     []string{"dateSigned"},
			MonetaryFields: []string{"monthlyPayment"},
			References:     []string{"BIA s.172(2)"},
		},
		{
			FormNumber:  "31",
			Title:       "Proof of Claim",
			Category:    "bankruptcy",
			Subcategory: "claims",
			RequiredFields: []RequiredField{
				req("clientName", TypeText, "BIA s.124 — debtor against whom the claim is made"),
				req("totalDebt", TypeCurrency, "BIA s.124(2) — amount of the claim"),
				req("dateSigned", TypeDate, "BIA s.124(2) — date the claim was sworn"),
				opt("securityInfo", TypeText, "BIA s.127 — particulars of any security held"),
			},
			DateFields:     []string{"dateSigned"},
			MonetaryFields: []string{"totalDebt"},
			RiskIndicators: []RiskIndicator{
				{Field: "securityInfo", RiskType: "legal", Severity: findings.SeverityMedium,
					Description: "Secured claim filed without valuation of security"},
			},
			References: []string{"BIA s.124", "BIA s.127"},
		},
		{
			FormNumber:  "32",
			Title:       "Proof of Claim (Wage Earner)",
			Category:    "bankruptcy",
			Subcategory: "claims",
			RequiredFields: []RequiredField{
				req("clientName", TypeText, "employer estate"),
				req("totalDebt", TypeCurrency, "BIA s.136(1)(d) — preferred wage claim"),
				req("dateSigned", TypeDate, "sworn date"),
			},
			DateFields:     []string{"dateSigned"},
			MonetaryFields: []string{"totalDebt"},
			RiskIndicators: []RiskIndicator{
				{Field: "totalDebt", RiskType: "compliance", Severity: findings.SeverityMedium,
					Description: "Wage claim above the preferred-claim ceiling",
					Threshold:   &Threshold{Value: 2000, Unit: "amount", Operator: "gt"}},
			},
			References: []string{"BIA s.136(1)(d)", "WEPPA s.5"},
		},
		{
			FormNumber:  "33",
			Title:       "Notice of Disallowance of Claim",
			Category:    "bankruptcy",
			Subcategory: "claims",
			RequiredFields: []RequiredField{
				req("clientName", TypeText, "estate disallowing the claim"),
				req("trusteeName", TypeText, "BIA s.135(3) — disallowing trustee"),
				req("dateSigned", TypeDate, "BIA s.135(4) — appeal clock start"),
			},
			DateFields: []string{"dateSigned"},
			References: []string{"BIA s.135"},
		},
		{
			FormNumber:  "34",
			Title:       "Notice of Taxation of Trustee's Accounts",
			Category:    "bankruptcy",
			Subcategory: "accounting",
			RequiredFields: []RequiredField{
				req("trusteeName", TypeText, "trustee whose accounts are taxed"),
				req("clientName", TypeText, "estate under taxation"),
				req("dateSigned", TypeDate, "notice date"),
			},
			DateFields: []string{"dateSigned"},
			References: []string{"BIA s.152(4)"},
		},
		{
			FormNumber:  "36",
			Title:       "Redemption of Security Notice",
			Category:    "bankruptcy",
			Subcategory: "security",
			RequiredFields: []RequiredField{
				req("clientName", TypeText, "estate redeeming the security"),
				req("securityInfo", TypeText, "BIA s.128(3) — security being redeemed"),
				req("totalAssets", TypeCurrency, "redemption value"),
				req("dateSigned", TypeDate, "notice date"),
			},
			DateFields:     []string{"dateSigned"},
			MonetaryFields: []string{"totalAssets"},
			References:     []string{"BIA s.128"},
		},
		{
			FormNumber:  "65",
			Title:       "Monthly Income and Expense Statement of the Bankrupt",
			Category:    "bankruptcy",
			Subcategory: "surplus_income",
			RequiredFields: []RequiredField{
				req("clientName", TypeText, "reporting bankrupt"),
				req("monthlyIncome", TypeCurrency, "OSB Directive 11R2 — total monthly income"),
				req("monthlyExpenses", TypeCurrency, "OSB Directive 11R2 — non-discretionary expenses"),
				req("dateSigned", TypeDate, "statement month"),
			},
			DateFields:     []string{"dateSigned"},
			MonetaryFields: []string{"monthlyIncome", "monthlyExpenses"},
			RiskIndicators: []RiskIndicator{
				{Field: "monthlyExpenses", RiskType: "financial", Severity: findings.SeverityMedium,
					Description: "Expenses exceeding reported income requires surplus income review",
					Threshold:   &Threshold{Value: 1.0, Unit: "ratio", Operator: "gt", Baseline: "monthlyIncome"}},
			},
			References: []string{"BIA s.68", "OSB Directive 11R2"},
		},
		{
			FormNumber:  "78",
			Title:       "Statement of Affairs (Ordinary Administration)",
			Category:    "bankruptcy",
			Subcategory: "statement_of_affairs",
			RequiredFields: []RequiredField{
				req("clientName", TypeText, "BIA s.158(d) — full disclosure of affairs"),
				req("trusteeName", TypeText, "trustee of record"),
				req("totalAssets", TypeCurrency, "asset disclosure"),
				req("totalLiabilities", TypeCurrency, "liability disclosure"),
				req("securedDebt", TypeCurrency, "claims of secured creditors"),
				req("dateSigned", TypeDate, "sworn date"),
			},
			DateFields:     []string{"dateSigned"},
			MonetaryFields: []string{"totalAssets", "totalLiabilities", "securedDebt"},
			RiskIndicators: []RiskIndicator{
				{Field: "totalAssets", RiskType: "financial", Severity: findings.SeverityHigh,
					Description: "Assets materially exceeding liabilities is atypical for a bankruptcy filing",
					Threshold:   &Threshold{Value: 1.2, Unit: "ratio", Operator: "gt", Baseline: "totalLiabilities"}},
				{Field: "securedDebt", RiskType: "legal", Severity: findings.SeverityMedium,
					Description: "Secured claims approaching total liabilities leaves no unsecured recovery",
					Threshold:   &Threshold{Value: 0.9, Unit: "ratio", Operator: "gt", Baseline: "totalLiabilities"}},
			},
			References: []string{"BIA s.158(d)"},
		},
		{
			FormNumber:  "79",
			Title:       "Statement of Affairs (Summary Administration)",
			Category:    "bankruptcy",
			Subcategory: "statement_of_affairs",
			RequiredFields: []RequiredField{
				req("clientName", TypeText, "BIA s.158(d) — full disclosure of affairs"),
				req("trusteeName", TypeText, "trustee of record"),
				req("totalAssets", TypeCurrency, "asset disclosure"),
				req("totalLiabilities", TypeCurrency, "liability disclosure"),
				req("dateSigned", TypeDate, "sworn date"),
				opt("monthlyIncome", TypeCurrency, "surplus income baseline"),
			},
			DateFields:     []string{"dateSigned"},
			MonetaryFields: []string{"totalAssets", "totalLiabilities", "monthlyIncome"},
			RiskIndicators: []RiskIndicator{
				{Field: "totalAssets", RiskType: "financial", Severity: findings.SeverityHigh,
					Description: "Assets materially exceeding liabilities is atypical for a bankruptcy filing",
					Threshold:   &Threshold{Value: 1.2, Unit: "ratio", Operator: "gt", Baseline: "totalLiabilities"}},
			},
			References: []string{"BIA s.158(d)", "BIA s.155"},
		},
		{
			FormNumber:  "80",
			Title:       "Application for Bankruptcy Order",
			Category:    "bankruptcy",
			Subcategory: "petition",
			RequiredFields: []RequiredField{
				req("clientName", TypeText, "BIA s.43(1) — debtor named in the application"),
				req("totalDebt", TypeCurrency, "BIA s.43(1)(a) — debt owed to the applicant"),
				req("courtNumber", TypeText, "court file reference"),
				req("dateOfFiling", TypeDate, "filing date"),
			},
			DateFields:     []string{"dateOfFiling"},
			MonetaryFields: []string{"totalDebt"},
			RiskIndicators: []RiskIndicator{
				{Field: "totalDebt", RiskType: "compliance", Severity: findings.SeverityHigh,
					Description: "Application debt below the thousand-dollar statutory minimum",
					Threshold:   &Threshold{Value: 1000, Unit: "amount", Operator: "lt"}},
			},
			References: []string{"BIA s.43(1)"},
		},
	}
}
