// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package corporate implements the cross-field rules for corporate
// restructuring filings under the CCAA and BIA Division I.
package corporate

import (
	"fmt"

	"github.com/shopspring/decimal"

	"formscan/internal/findings"
	"formscan/internal/money"
)

const (
	CodeCCAAThreshold          = "CCAA_THRESHOLD"
	CodeRestructuringViability = "RESTRUCTURING_VIABILITY"
)

var (
	// ccaaMinimumClaims is the aggregate-claims floor for CCAA eligibility.
	ccaaMinimumClaims = decimal.NewFromInt(5_000_000)

	// securedCeiling is the secured-to-total debt ratio above which a
	// restructuring leaves essentially nothing for unsecured creditors.
	securedCeiling = decimal.NewFromFloat(0.9)
)

// Validator evaluates corporate restructuring cross-field rules. Stateless
// and safe for concurrent use.
type Validator struct{}

func New() *Validator {
	return &Validator{}
}

func (v *Validator) Category() string {
	return "corporate"
}

// Evaluate runs the corporate restructuring rules. Missing operands are
// treated as zero, so an application with no declared claims is flagged as
// below the CCAA threshold.
func (v *Validator) Evaluate(fields findings.ExtractedFields) []findings.ValidationError {
	var errs []findings.ValidationError

	totalDebt := money.Amount(fields, "totalDebt")
	securedDebt := money.Amount(fields, "securedDebt")

	if totalDebt.LessThan(ccaaMinimumClaims) {
		errs = append(errs, findings.ValidationError{
			Field:   "totalDebt",
			Kind:    findings.KindRegulatory,
			Code:    CodeCCAAThreshold,
			Message: fmt.Sprintf("aggregate claims of %s are below the %s CCAA eligibility threshold", money.Format(totalDebt), money.Format(ccaaMinimumClaims)),
			Context: map[string]string{
				"current":  money.Format(totalDebt),
				"required": money.Format(ccaaMinimumClaims),
			},
			Regulation: &findings.Regulation{Framework: "CCAA", Section: "s.3(1)"},
		})
	}

	// A debtor whose claims are almost entirely secured has nothing to
	// compromise; the plan mechanism serves no one.
	if totalDebt.IsPositive() {
		ratio := securedDebt.Div(totalDebt)
		if ratio.GreaterThan(securedCeiling) {
			errs = append(errs, findings.ValidationError{
				Field:   "securedDebt",
				Kind:    findings.KindWarning,
				Code:    CodeRestructuringViability,
				Message: fmt.Sprintf("secured claims are %s%% of total debt; a plan of arrangement has almost no unsecured pool to compromise", ratio.Mul(decimal.NewFromInt(100)).StringFixed(1)),
				Context: map[string]string{
					"securedDebt":  money.Format(securedDebt),
					"totalDebt":    money.Format(totalDebt),
					"securedRatio": ratio.StringFixed(4),
				},
				Regulation: &findings.Regulation{Framework: "CCAA", Section: "s.4"},
			})
		}
	}

	return errs
}
