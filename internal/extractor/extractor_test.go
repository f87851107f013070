// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package extractor

import (
	"testing"

	"formscan/internal/findings"
)

func TestExtract_BasicDocument(t *testing.T) {
	text := "Client Name: Jane Doe\nDated: 2024-03-15\n"

	e := New()
	fields, docType := e.Extract(text)

	if got := fields["clientName"]; got != "Jane Doe" {
		t.Errorf("clientName = %q, want Jane Doe", got)
	}
	if got := fields["dateSigned"]; got != "2024-03-15" {
		t.Errorf("dateSigned = %q, want 2024-03-15", got)
	}
	if _, ok := fields["trusteeName"]; ok {
		t.Error("trusteeName should be absent when no trustee block exists")
	}
	if docType != findings.DocOther {
		t.Errorf("document type = %q, want other", docType)
	}
}

func TestExtract_MissingFieldsAreAbsentKeys(t *testing.T) {
	e := New()
	fields, docType := e.Extract("completely unrelated text with no labels")

	for name, v := range fields {
		if v == "" {
			t.Errorf("field %q present with empty value; missing fields must be absent keys", name)
		}
	}
	if docType != findings.DocOther {
		t.Errorf("document type = %q, want other", docType)
	}
}

func TestExtract_FullStatementOfAffairs(t *testing.T) {
	text := `FORM 79 - Statement of Affairs
In the matter of the bankruptcy of
Debtor: John Q Smith
Licensed Insolvency Trustee: Mary A Jones
Estate Number: 31-123456
Total Assets: $45,000.00
Total Liabilities: $120,000.00
Dated: 2024-02-01`

	e := New()
	fields, docType := e.Extract(text)

	want := map[string]string{
		"formNumber":       "79",
		"clientName":       "John Q Smith",
		"trusteeName":      "Mary A Jones",
		"estateNumber":     "31-123456",
		"totalAssets":      "$45,000.00",
		"totalLiabilities": "$120,000.00",
		"dateSigned":       "2024-02-01",
	}
	for k, v := range want {
		if got := fields[k]; got != v {
			t.Errorf("field %q = %q, want %q", k, got, v)
		}
	}
	if docType != findings.DocBankruptcy {
		t.Errorf("document type = %q, want bankruptcy", docType)
	}
}

func TestExtract_ProposalFields(t *testing.T) {
	text := `Form 47 - Consumer Proposal
Consumer: Alice B Carter
Administrator: Robert T Lee
Proposal Amount: $10,000
Total Debt: $100,000
Secured Debt: $20,000
Monthly Payment: $500
Proposal Term: 24 months`

	e := New()
	fields, docType := e.Extract(text)

	if docType != findings.DocProposal {
		t.Errorf("document type = %q, want proposal", docType)
	}
	if got := fields["proposalAmount"]; got != "$10,000" {
		t.Errorf("proposalAmount = %q, want $10,000", got)
	}
	if got := fields["proposalTerm"]; got != "24" {
		t.Errorf("proposalTerm = %q, want 24", got)
	}
	if got := fields["formNumber"]; got != "47" {
		t.Errorf("formNumber = %q, want 47", got)
	}
}

func TestExtract_PensionAndSecuritiesFields(t *testing.T) {
	text := `Form 61 - Statement of Unremitted Pension Contributions
Employer Contributions Remitted: $30,000.00
Required Contributions: $42,000.00
Risk-Adjusted Operating Capital: $300,000.00
Customer Assets Held: $1,000,000.00
Segregated Customer Funds: $800,000.00`

	e := New()
	fields, _ := e.Extract(text)

	want := map[string]string{
		"employerContributions": "$30,000.00",
		"requiredContributions": "$42,000.00",
		"operatingCapital":      "$300,000.00",
		"customerAssets":        "$1,000,000.00",
		"segregatedFunds":       "$800,000.00",
	}
	for name, value := range want {
		if got := fields[name]; got != value {
			t.Errorf("%s = %q, want %q", name, got, value)
		}
	}
}

func TestClassify_PriorityOrder(t *testing.T) {
	cases := []struct {
		name string
		text string
		want findings.DocumentType
	}{
		{"bankruptcy wins over proposal", "bankruptcy proposal", findings.DocBankruptcy},
		{"proposal wins over court", "a proposal before the court", findings.DocProposal},
		{"court wins over meeting", "court ordered meeting of creditors", findings.DocCourt},
		{"meeting wins over security", "meeting of creditors regarding security", findings.DocMeeting},
		{"security alone", "secured creditor holds a security interest", findings.DocSecurity},
		{"nothing matches", "plain correspondence", findings.DocOther},
		{"case insensitive", "NOTICE OF BANKRUPTCY", findings.DocBankruptcy},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Classify(tc.text); got != tc.want {
				t.Errorf("Classify(%q) = %q, want %q", tc.text, got, tc.want)
			}
		})
	}
}

func TestExtract_IsPure(t *testing.T) {
	text := "Debtor: Sam T Brown\nTotal Debt: $5,000\nbankruptcy notice"
	e := New()

	first, firstType := e.Extract(text)
	second, secondType := e.Extract(text)

	if firstType != secondType {
		t.Fatalf("classification differs across identical calls: %q vs %q", firstType, secondType)
	}
	if len(first) != len(second) {
		t.Fatalf("field counts differ: %d vs %d", len(first), len(second))
	}
	for k, v := range first {
		if second[k] != v {
			t.Errorf("field %q differs: %q vs %q", k, v, second[k])
		}
	}
}
