// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package patterns holds the compiled matching patterns shared by the field
// extractor and the validators. All patterns are compiled once at package
// initialization; a pattern that fails to compile is a programming error and
// panics at startup rather than degrading at analysis time.
package patterns

import "regexp"

// FieldPattern is one named extraction pattern. Group identifies which
// capture group carries the field value.
type FieldPattern struct {
	Field string
	Regex *regexp.Regexp
	Group int
}

// Shared scalar patterns reused across extractor and validators.
var (
	// ISODate matches 2024-03-15 style dates.
	ISODate = regexp.MustCompile(`\b(\d{4}-\d{2}-\d{2})\b`)

	// WrittenDate matches "March 15, 2024" style dates.
	WrittenDate = regexp.MustCompile(`\b((?:January|February|March|April|May|June|July|August|September|October|November|December)\s+\d{1,2},\s+\d{4})\b`)

	// Currency matches dollar figures with optional separators and cents.
	Currency = regexp.MustCompile(`\$\s?\d{1,3}(?:,\d{3})*(?:\.\d{2})?|\$\s?\d+(?:\.\d{2})?`)

	// EstateNumber matches OSB estate numbers such as 31-123456.
	EstateNumber = regexp.MustCompile(`\b(\d{2}-\d{6,7})\b`)

	// CourtNumber matches court file numbers such as T-1234-24 or 500-11-012345-246.
	CourtNumber = regexp.MustCompile(`\b([A-Z]{1,2}-\d{3,5}-\d{2}|\d{3}-\d{2}-\d{6}-\d{3})\b`)

	// PostalCode matches Canadian postal codes.
	PostalCode = regexp.MustCompile(`\b([A-Za-z]\d[A-Za-z]\s?\d[A-Za-z]\d)\b`)

	// SIN matches social insurance numbers in grouped form.
	SIN = regexp.MustCompile(`\b(\d{3}[- ]\d{3}[- ]\d{3})\b`)

	// BusinessNumber matches CRA business numbers (9 digits + program account).
	BusinessNumber = regexp.MustCompile(`\b(\d{9}\s?(?:RC|RT|RP)\d{4})\b`)

	// FormNumber matches a declared OSB form number in the document header,
	// e.g. "Form 47" or "FORM 78 -- Statement of Affairs".
	FormNumber = regexp.MustCompile(`(?i)\bform\s+(\d{1,2}(?:\.\d)?)\b`)

	// PersonName matches two or more capitalized words, used after a
	// labelled prefix such as "Debtor:" or "Trustee:".
	personName = `([A-Z][A-Za-z'\-]+(?:\s+[A-Z][A-Za-z'\-\.]+)+)`
)

// ExtractionPatterns is the ordered set of named patterns the extractor
// applies. Each pattern either matches and contributes one field or is
// silently skipped. Order matters only for readability; patterns are
// independent of one another.
var ExtractionPatterns = []FieldPattern{
	{Field: "clientName", Regex: regexp.MustCompile(`(?i)(?:debtor|client|consumer|insolvent person)(?:\s+name)?\s*[:\-]\s*` + personName), Group: 1},
	{Field: "clientAddress", Regex: regexp.MustCompile(`(?i)(?:debtor|client)?\s*address\s*[:\-]\s*([^\n]{5,120})`), Group: 1},
	{Field: "clientPhone", Regex: regexp.MustCompile(`(?i)(?:telephone|phone|tel)\.?\s*[:\-]?\s*(\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4})`), Group: 1},
	{Field: "trusteeName", Regex: regexp.MustCompile(`(?i)(?:licensed insolvency trustee|trustee|administrator)(?:\s+name)?\s*[:\-]\s*` + personName), Group: 1},
	{Field: "trusteeFirm", Regex: regexp.MustCompile(`(?i)trustee firm\s*[:\-]\s*([^\n]{3,80})`), Group: 1},
	{Field: "dateSigned", Regex: regexp.MustCompile(`(?i)(?:dated|date signed|signed)(?:\s+at\s+\S+)?(?:\s+this)?\s*[:\-]?\s*(\d{4}-\d{2}-\d{2})`), Group: 1},
	{Field: "dateOfBankruptcy", Regex: regexp.MustCompile(`(?i)date of (?:bankruptcy|initial bankruptcy event)\s*[:\-]?\s*(\d{4}-\d{2}-\d{2})`), Group: 1},
	{Field: "dateOfFiling", Regex: regexp.MustCompile(`(?i)(?:date of filing|filing date|filed on)\s*[:\-]?\s*(\d{4}-\d{2}-\d{2})`), Group: 1},
	{Field: "estateNumber", Regex: regexp.MustCompile(`(?i)estate\s*(?:no\.?|number)\s*[:\-]?\s*(\d{2}-\d{6,7})`), Group: 1},
	{Field: "divisionNumber", Regex: regexp.MustCompile(`(?i)division\s*(?:no\.?|number)\s*[:\-]?\s*(\d{2})\b`), Group: 1},
	{Field: "courtNumber", Regex: regexp.MustCompile(`(?i)court\s*(?:file)?\s*(?:no\.?|number)\s*[:\-]?\s*([A-Z0-9][A-Z0-9\-]{3,20})`), Group: 1},
	{Field: "districtOf", Regex: regexp.MustCompile(`(?i)(?:in the (?:bankruptcy )?district of|district of)\s+([A-Z][A-Za-z ]{2,40})`), Group: 1},
	{Field: "officialReceiver", Regex: regexp.MustCompile(`(?i)official receiver\s*[:\-]?\s*` + personName), Group: 1},
	{Field: "meetingInfo", Regex: regexp.MustCompile(`(?i)(meeting of creditors[^\n]{0,160})`), Group: 1},
	{Field: "chairInfo", Regex: regexp.MustCompile(`(?i)(?:chair(?:person)?)\s*[:\-]\s*([^\n]{3,80})`), Group: 1},
	{Field: "securityInfo", Regex: regexp.MustCompile(`(?i)(security (?:held|valued|interest)[^\n]{0,160})`), Group: 1},
	{Field: "totalAssets", Regex: regexp.MustCompile(`(?i)total assets\s*[:\-]?\s*(\$?\s?[\d,]+(?:\.\d{2})?)`), Group: 1},
	{Field: "totalLiabilities", Regex: regexp.MustCompile(`(?i)total liabilit(?:y|ies)\s*[:\-]?\s*(\$?\s?[\d,]+(?:\.\d{2})?)`), Group: 1},
	{Field: "totalDebt", Regex: regexp.MustCompile(`(?i)total (?:debt|indebtedness)\s*[:\-]?\s*(\$?\s?[\d,]+(?:\.\d{2})?)`), Group: 1},
	{Field: "securedDebt", Regex: regexp.MustCompile(`(?i)\bsecured (?:debt|claims?)\s*[:\-]?\s*(\$?\s?[\d,]+(?:\.\d{2})?)`), Group: 1},
	{Field: "unsecuredDebt", Regex: regexp.MustCompile(`(?i)unsecured (?:debt|claims?)\s*[:\-]?\s*(\$?\s?[\d,]+(?:\.\d{2})?)`), Group: 1},
	{Field: "proposalAmount", Regex: regexp.MustCompile(`(?i)proposal amount\s*[:\-]?\s*(\$?\s?[\d,]+(?:\.\d{2})?)`), Group: 1},
	{Field: "monthlyPayment", Regex: regexp.MustCompile(`(?i)monthly payment\s*[:\-]?\s*(\$?\s?[\d,]+(?:\.\d{2})?)`), Group: 1},
	{Field: "proposalTerm", Regex: regexp.MustCompile(`(?i)(?:proposal term|term of proposal|term)\s*[:\-]?\s*(\d{1,3})\s*(?:months?)?\b`), Group: 1},
	{Field: "employerContributions", Regex: regexp.MustCompile(`(?i)employer contributions(?:\s+(?:remitted|paid))?\s*[:\-]?\s*(\$?\s?[\d,]+(?:\.\d{2})?)`), Group: 1},
	{Field: "requiredContributions", Regex: regexp.MustCompile(`(?i)(?:required contributions|current service cost)\s*[:\-]?\s*(\$?\s?[\d,]+(?:\.\d{2})?)`), Group: 1},
	{Field: "operatingCapital", Regex: regexp.MustCompile(`(?i)(?:risk.adjusted )?operating capital\s*[:\-]?\s*(\$?\s?[\d,]+(?:\.\d{2})?)`), Group: 1},
	{Field: "customerAssets", Regex: regexp.MustCompile(`(?i)customer assets(?:\s+held)?\s*[:\-]?\s*(\$?\s?[\d,]+(?:\.\d{2})?)`), Group: 1},
	{Field: "segregatedFunds", Regex: regexp.MustCompile(`(?i)segregated (?:customer )?funds\s*[:\-]?\s*(\$?\s?[\d,]+(?:\.\d{2})?)`), Group: 1},
	{Field: "monthlyIncome", Regex: regexp.MustCompile(`(?i)(?:total )?monthly income\s*[:\-]?\s*(\$?\s?[\d,]+(?:\.\d{2})?)`), Group: 1},
	{Field: "monthlyExpenses", Regex: regexp.MustCompile(`(?i)(?:total )?monthly expenses\s*[:\-]?\s*(\$?\s?[\d,]+(?:\.\d{2})?)`), Group: 1},
	{Field: "postalCode", Regex: PostalCode, Group: 1},
	{Field: "sin", Regex: SIN, Group: 1},
	{Field: "businessNumber", Regex: BusinessNumber, Group: 1},
}

// classificationRule pairs a document type with its trigger keywords.
type classificationRule struct {
	Type     string
	Keywords []string
}

// ClassificationRules is the priority-ordered keyword test used for document
// classification: first rule with any keyword present wins. Ties resolve by
// this fixed order, not by longest match or frequency.
var ClassificationRules = []classificationRule{
	{Type: "bankruptcy", Keywords: []string{"bankruptcy", "bankrupt", "assignment for the general benefit of creditors"}},
	{Type: "proposal", Keywords: []string{"proposal", "consumer proposal", "division i proposal"}},
	{Type: "court", Keywords: []string{"court", "registrar", "justice", "superior court"}},
	{Type: "meeting", Keywords: []string{"meeting of creditors", "meeting", "quorum"}},
	{Type: "security", Keywords: []string{"secured creditor", "security interest", "security"}},
}

// Section presence patterns used by the document-integrity risk sweep.
var (
	SectionPersonalInfo       = regexp.MustCompile(`(?i)(?:personal information|debtor information|identification of (?:the )?debtor)`)
	SectionFinancialStatement = regexp.MustCompile(`(?i)(?:statement of affairs|financial statements?|assets and liabilit(?:y|ies)|balance sheet)`)
	SectionCreditorInfo       = regexp.MustCompile(`(?i)(?:list of creditors|creditor information|creditors? (?:holding|claims?))`)
)

// Legal risk keywords swept by the legal analyzer.
var LegalRiskTerms = regexp.MustCompile(`(?i)\b(fraud(?:ulent)?|misrepresent(?:ation|ed)?|conceal(?:ment|ed)?|undisclosed assets?|false statement|preference payment)\b`)
