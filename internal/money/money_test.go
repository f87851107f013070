// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package money

import (
	"testing"

	"formscan/internal/findings"
)

func TestParse_AcceptedGrammar(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"plain integer", "1000", "1000"},
		{"dollar sign", "$1000", "1000"},
		{"thousands separators", "1,234,567", "1234567"},
		{"separators with cents", "$1,234.56", "1234.56"},
		{"cents only", "10.50", "10.5"},
		{"negative", "-$500.00", "-500"},
		{"leading whitespace", "  $25,000  ", "25000"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Parse(tc.input)
			if err != nil {
				t.Fatalf("Parse(%q) returned error: %v", tc.input, err)
			}
			if got.String() != tc.want {
				t.Errorf("Parse(%q) = %s, want %s", tc.input, got.String(), tc.want)
			}
		})
	}
}

func TestParse_RejectedFormats(t *testing.T) {
	cases := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"one decimal place", "10.5"},
		{"three decimal places", "10.500"},
		{"misplaced separator", "12,34.56"},
		{"separator without grouping", "1,23"},
		{"letters", "ten dollars"},
		{"trailing symbol", "1000$"},
		{"double sign", "--100"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Parse(tc.input); err == nil {
				t.Errorf("Parse(%q) should have failed", tc.input)
			}
		})
	}
}

func TestParse_RoundTripsIgnoreFormatting(t *testing.T) {
	// Same value under every accepted spelling.
	variants := []string{"12345.67", "$12345.67", "12,345.67", "$12,345.67"}
	for _, v := range variants {
		got, err := Parse(v)
		if err != nil {
			t.Fatalf("Parse(%q) returned error: %v", v, err)
		}
		if got.String() != "12345.67" {
			t.Errorf("Parse(%q) = %s, want 12345.67", v, got.String())
		}
	}
}

func TestAmount_DefaultsToZero(t *testing.T) {
	fields := findings.ExtractedFields{
		"totalDebt": "$100,000",
		"badValue":  "not-a-number",
	}

	if got := Amount(fields, "totalDebt"); got.String() != "100000" {
		t.Errorf("Amount(totalDebt) = %s, want 100000", got.String())
	}
	if got := Amount(fields, "missing"); !got.IsZero() {
		t.Errorf("Amount(missing) = %s, want 0", got.String())
	}
	if got := Amount(fields, "badValue"); !got.IsZero() {
		t.Errorf("Amount(badValue) = %s, want 0", got.String())
	}
}

func TestNumber(t *testing.T) {
	fields := findings.ExtractedFields{"proposalTerm": "24"}
	if got := Number(fields, "proposalTerm"); got.String() != "24" {
		t.Errorf("Number(proposalTerm) = %s, want 24", got.String())
	}
	if got := Number(fields, "absent"); !got.IsZero() {
		t.Errorf("Number(absent) = %s, want 0", got.String())
	}
}

func TestFormat(t *testing.T) {
	d, _ := Parse("$1,234.50")
	if got := Format(d); got != "$1234.50" {
		t.Errorf("Format = %q, want $1234.50", got)
	}
}
