// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package money parses and compares the monetary values found on insolvency
// forms. The accepted grammar is deliberately narrow: an optional dollar sign,
// optional comma thousands separators, and either no decimal point or exactly
// two decimal places. Anything else is rejected so that malformed figures
// surface as validation findings instead of silently parsing to zero.
package money

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"formscan/internal/findings"
)

// currencyPattern accepts $1,234.56, 1234.56, $1234 and negatives thereof.
// Separators must group digits in threes when present.
var currencyPattern = regexp.MustCompile(`^-?\$?(?:\d{1,3}(?:,\d{3})+|\d+)(?:\.\d{2})?$`)

// Zero is the additive identity used when an operand is absent.
var Zero = decimal.Zero

// Parse converts a currency string to a decimal value. The input is trimmed
// but otherwise must match the accepted grammar exactly.
func Parse(s string) (decimal.Decimal, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return decimal.Zero, fmt.Errorf("empty amount")
	}
	if !currencyPattern.MatchString(trimmed) {
		return decimal.Zero, fmt.Errorf("invalid currency format: %q", s)
	}

	normalized := strings.NewReplacer("$", "", ",", "").Replace(trimmed)
	d, err := decimal.NewFromString(normalized)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return d, nil
}

// IsValid reports whether s matches the accepted currency grammar.
func IsValid(s string) bool {
	_, err := Parse(s)
	return err == nil
}

// Amount reads a field as currency, defaulting to zero when the field is
// absent or unparseable. Cross-field rules rely on this so they can still
// surface a deficiency when a figure was never supplied.
func Amount(fields findings.ExtractedFields, name string) decimal.Decimal {
	v, ok := fields[name]
	if !ok {
		return decimal.Zero
	}
	d, err := Parse(v)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// Number reads a field as a plain decimal number (no currency symbols),
// defaulting to zero. Used for counts and terms such as proposalTerm.
func Number(fields findings.ExtractedFields, name string) decimal.Decimal {
	v, ok := fields[name]
	if !ok {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(strings.TrimSpace(v))
	if err != nil {
		return decimal.Zero
	}
	return d
}

// Format renders a decimal as a display amount with two decimal places.
func Format(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}
