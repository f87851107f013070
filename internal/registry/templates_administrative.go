// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package registry

import "formscan/internal/findings"

// administrativeForms covers the notices, affidavits, and procedural filings
// that accompany every estate regardless of its track.
func administrativeForms() []FormTemplate {
	return []FormTemplate{
		{
			FormNumber: "7", Title: "Affidavit of Verification", Category: "administrative", Subcategory: "affidavit",
			RequiredFields: []RequiredField{
				req("clientName", TypeText, "deponent"),
				req("dateSigned", TypeDate, "sworn date"),
			},
			DateFields: []string{"dateSigned"},
			References: []string{"BIA General Rules r.14"},
		},
		{
			FormNumber: "10", Title: "Notice of Substitution of Trustee", Category: "administrative", Subcategory: "appointment",
			RequiredFields: []RequiredField{
				req("clientName", TypeText, "estate affected"),
				req("trusteeName", TypeText, "BIA s.14 — substituted trustee"),
				req("dateSigned", TypeDate, "substitution date"),
			},
			DateFields: []string{"dateSigned"},
			References: []string{"BIA s.14"},
		},
		{
			FormNumber: "13", Title: "Special Resolution of Creditors", Category: "administrative", Subcategory: "meeting",
			RequiredFields: []RequiredField{
				req("clientName", TypeText, "estate passing the resolution"),
				req("chairInfo", TypeText, "BIA s.115 — chair recording the vote"),
				req("dateSigned", TypeDate, "resolution date"),
			},
			DateFields: []string{"dateSigned"},
			References: []string{"BIA s.115"},
		},
		{
			FormNumber: "18", Title: "Notice of Appointment of Inspectors", Category: "administrative", Subcategory: "appointment",
			RequiredFields: []RequiredField{
				req("clientName", TypeText, "estate appointing inspectors"),
				req("dateSigned", TypeDate, "appointment date"),
			},
			DateFields: []string{"dateSigned"},
			References: []string{"BIA s.116"},
		},
		{
			FormNumber: "20", Title: "Notice of Motion (Bankruptcy Court)", Category: "administrative", Subcategory: "court",
			RequiredFields: []RequiredField{
				req("clientName", TypeText, "moving party"),
				req("courtNumber", TypeText, "court file reference"),
				req("dateOfFiling", TypeDate, "return date"),
			},
			DateFields: []string{"dateOfFiling"},
			References: []string{"BIA General Rules r.11"},
		},
		{
			FormNumber: "23", Title: "Affidavit of Mailing", Category: "administrative", Subcategory: "affidavit",
			RequiredFields: []RequiredField{
				req("clientName", TypeText, "estate to which the mailing relates"),
				req("dateSigned", TypeDate, "mailing date"),
			},
			DateFields: []string{"dateSigned"},
			References: []string{"BIA General Rules r.6"},
		},
		{
			FormNumber: "25", Title: "Notice of Examination of the Bankrupt", Category: "administrative", Subcategory: "examination",
			RequiredFields: []RequiredField{
				req("clientName", TypeText, "BIA s.161 — bankrupt to be examined"),
				req("officialReceiver", TypeText, "examining official receiver"),
				req("dateSigned", TypeDate, "examination date"),
			},
			DateFields: []string{"dateSigned"},
			RiskIndicators: []RiskIndicator{
				{Field: "officialReceiver", RiskType: "compliance", Severity: findings.SeverityMedium,
					Description: "Examination notice issued without an official receiver assigned"},
			},
			References: []string{"BIA s.161"},
		},
		{
			FormNumber: "26", Title: "Transcript of Examination under Section 163", Category: "administrative", Subcategory: "examination",
			RequiredFields: []RequiredField{
				req("clientName", TypeText, "person examined"),
				req("dateSigned", TypeDate, "examination date"),
			},
			DateFields: []string{"dateSigned"},
			References: []string{"BIA s.163"},
		},
		{
			FormNumber: "28", Title: "Notice of Opposition to Discharge", Category: "administrative", Subcategory: "discharge",
			RequiredFields: []RequiredField{
				req("clientName", TypeText, "bankrupt whose discharge is opposed"),
				req("dateOfFiling", TypeDate, "BIA s.168.2 — opposition filing date"),
			},
			DateFields: []string{"dateOfFiling"},
			References: []string{"BIA s.168.2", "BIA s.173"},
		},
		{
			FormNumber: "35", Title: "Trustee's Final Statement and Dividend Notice", Category: "administrative", Subcategory: "dividend",
			RequiredFields: []RequiredField{
				req("clientName", TypeText, "estate being closed"),
				req("trusteeName", TypeText, "reporting trustee"),
				req("totalAssets", TypeCurrency, "final realizations"),
				req("dateSigned", TypeDate, "statement date"),
			},
			DateFields:     []string{"dateSigned"},
			MonetaryFields: []string{"totalAssets"},
			References:     []string{"BIA s.151", "BIA s.152"},
		},
		{
			FormNumber: "37", Title: "Notice of Hearing for Taxation of Accounts", Category: "administrative", Subcategory: "court",
			RequiredFields: []RequiredField{
				req("trusteeName", TypeText, "trustee whose accounts are heard"),
				req("courtNumber", TypeText, "taxation hearing file"),
				req("dateSigned", TypeDate, "hearing date"),
			},
			DateFields: []string{"dateSigned"},
			References: []string{"BIA s.152(4)"},
		},
		{
			FormNumber: "38", Title: "Certificate of Compliance (Counselling)", Category: "administrative", Subcategory: "counselling",
			RequiredFields: []RequiredField{
				req("clientName", TypeText, "debtor counselled"),
				req("trusteeName", TypeText, "OSB Directive 1R6 — counselling provider"),
				req("dateSigned", TypeDate, "second counselling session date"),
			},
			DateFields: []string{"dateSigned"},
			RiskIndicators: []RiskIndicator{
				{Field: "dateSigned", RiskType: "compliance", Severity: findings.SeverityMedium,
					Description: "Counselling not completed before discharge eligibility"},
			},
			References: []string{"BIA s.157.1", "OSB Directive 1R6"},
		},
		{
			FormNumber: "39", Title: "Statement of Trustee Remuneration", Category: "administrative", Subcategory: "accounting",
			RequiredFields: []RequiredField{
				req("trusteeName", TypeText, "remunerated trustee"),
				req("totalAssets", TypeCurrency, "BIA s.39 — receipts on which fees are based"),
				req("dateSigned", TypeDate, "statement date"),
			},
			DateFields:     []string{"dateSigned"},
			MonetaryFields: []string{"totalAssets"},
			References:     []string{"BIA s.39"},
		},
		{
			FormNumber: "41", Title: "Notice of Deemed Annulment", Category: "administrative", Subcategory: "notice",
			RequiredFields: []RequiredField{
				req("clientName", TypeText, "debtor affected"),
				req("trusteeName", TypeText, "notifying trustee"),
				req("dateSigned", TypeDate, "annulment effective date"),
			},
			DateFields: []string{"dateSigned"},
			References: []string{"BIA s.66.31"},
		},
		{
			FormNumber: "42", Title: "Request for Mediation (Surplus Income)", Category: "administrative", Subcategory: "mediation",
			RequiredFields: []RequiredField{
				req("clientName", TypeText, "bankrupt requesting mediation"),
				req("trusteeName", TypeText, "BIA s.68(6) — referring trustee"),
				req("monthlyIncome", TypeCurrency, "disputed surplus income"),
				req("dateOfFiling", TypeDate, "request date"),
			},
			DateFields:     []string{"dateOfFiling"},
			MonetaryFields: []string{"monthlyIncome"},
			References:     []string{"BIA s.68(6)", "OSB Directive 11R2"},
		},
		{
			FormNumber: "43", Title: "Mediation Settlement Agreement", Category: "administrative", Subcategory: "mediation",
			RequiredFields: []RequiredField{
				req("clientName", TypeText, "settling bankrupt"),
				req("monthlyPayment", TypeCurrency, "agreed surplus income payment"),
				req("dateSigned", TypeDate, "settlement date"),
			},
			DateFields:     []string{"dateSigned"},
			MonetaryFields: []string{"monthlyPayment"},
			References:     []string{"BIA s.68(8)"},
		},
		{
			FormNumber: "53", Title: "Notice of Change of Address", Category: "administrative", Subcategory: "notice",
			RequiredFields: []RequiredField{
				req("clientName", TypeText, "debtor reporting the change"),
				req("clientAddress", TypeText, "new address of record"),
				req("dateSigned", TypeDate, "notice date"),
			},
			DateFields: []string{"dateSigned"},
			References: []string{"BIA s.158(c)"},
		},
		{
			FormNumber: "54", Title: "Affidavit of Service", Category: "administrative", Subcategory: "affidavit",
			RequiredFields: []RequiredField{
				req("clientName", TypeText, "party served"),
				req("dateSigned", TypeDate, "service date"),
			},
			DateFields: []string{"dateSigned"},
			References: []string{"BIA General Rules r.6"},
		},
		{
			FormNumber: "59", Title: "Order of Discharge of Trustee", Category: "administrative", Subcategory: "discharge",
			RequiredFields: []RequiredField{
				req("trusteeName", TypeText, "BIA s.41 — trustee discharged"),
				req("clientName", TypeText, "estate administered"),
				req("courtNumber", TypeText, "court file reference"),
				req("dateSigned", TypeDate, "order date"),
			},
			DateFields: []string{"dateSigned"},
			References: []string{"BIA s.41"},
		},
		{
			FormNumber: "63", Title: "Notice to Official Receiver of Estate Transfer", Category: "administrative", Subcategory: "notice",
			RequiredFields: []RequiredField{
				req("clientName", TypeText, "estate transferred"),
				req("trusteeName", TypeText, "receiving trustee"),
				req("officialReceiver", TypeText, "notified official receiver"),
				req("dateSigned", TypeDate, "transfer date"),
			},
			DateFields: []string{"dateSigned"},
			References: []string{"BIA s.14.06"},
		},
		{
			FormNumber: "64", Title: "Notice of Intention to Act as Trustee (Conflict Disclosure)", Category: "administrative", Subcategory: "appointment",
			RequiredFields: []RequiredField{
				req("trusteeName", TypeText, "BIA s.13.3 — trustee disclosing a relationship"),
				req("clientName", TypeText, "estate concerned"),
				req("dateSigned", TypeDate, "disclosure date"),
			},
			DateFields: []string{"dateSigned"},
			RiskIndicators: []RiskIndicator{
				{Field: "trusteeName", RiskType: "legal", Severity: findings.SeverityMedium,
					Description: "Undisclosed related-party engagement contravenes trustee conduct rules"},
			},
			References: []string{"BIA s.13.3"},
		},
		{
			FormNumber: "66", Title: "Notice of Hearing of Application for Discharge", Category: "administrative", Subcategory: "discharge",
			RequiredFields: []RequiredField{
				req("clientName", TypeText, "applicant bankrupt"),
				req("courtNumber", TypeText, "hearing file"),
				req("dateSigned", TypeDate, "hearing date"),
			},
			DateFields: []string{"dateSigned"},
			References: []string{"BIA s.169"},
		},
		{
			FormNumber: "67", Title: "Request for Proof of Claim Package", Category: "administrative", Subcategory: "claims",
			RequiredFields: []RequiredField{
				req("clientName", TypeText, "estate concerned"),
				req("dateSigned", TypeDate, "request date"),
			},
			DateFields: []string{"dateSigned"},
			References: []string{"BIA s.124"},
		},
		{
			FormNumber: "68", Title: "Notice of Revival of Consumer Proposal", Category: "administrative", Subcategory: "notice",
			RequiredFields: []RequiredField{
				req("clientName", TypeText, "consumer debtor"),
				req("trusteeName", TypeText, "administrator giving notice"),
				req("dateSigned", TypeDate, "revival date"),
			},
			DateFields: []string{"dateSigned"},
			References: []string{"BIA s.66.31(6)"},
		},
		{
			FormNumber: "69", Title: "Annual Banking and Estate Summary", Category: "administrative", Subcategory: "accounting",
			RequiredFields: []RequiredField{
				req("trusteeName", TypeText, "reporting trustee"),
				req("totalAssets", TypeCurrency, "funds held in trust"),
				req("dateSigned", TypeDate, "reporting period end"),
			},
			DateFields:     []string{"dateSigned"},
			MonetaryFields: []string{"totalAssets"},
			References:     []string{"OSB Directive 5R5"},
		},
		{
			FormNumber: "75", Title: "Application for Licence as Insolvency Trustee", Category: "administrative", Subcategory: "licensing",
			RequiredFields: []RequiredField{
				req("trusteeName", TypeText, "OSB Directive 13R7 — applicant"),
				req("dateOfFiling", TypeDate, "application date"),
			},
			DateFields: []string{"dateOfFiling"},
			References: []string{"BIA s.13", "OSB Directive 13R7"},
		},
	}
}
