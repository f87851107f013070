// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package securities implements the cross-field rules for insolvent
// securities-firm filings under BIA Part XII.
package securities

import (
	"fmt"

	"github.com/shopspring/decimal"

	"formscan/internal/findings"
	"formscan/internal/money"
)

const (
	CodeCapitalAdequacy      = "CAPITAL_ADEQUACY"
	CodeSegregationViolation = "SEGREGATION_VIOLATION"
)

// minimumCapital is the regulatory floor for a firm's risk-adjusted
// operating capital.
var minimumCapital = decimal.NewFromInt(250_000)

// Validator evaluates securities-firm cross-field rules. Stateless and safe
// for concurrent use.
type Validator struct{}

func New() *Validator {
	return &Validator{}
}

func (v *Validator) Category() string {
	return "securities"
}

// Evaluate runs the securities rules over the firm's three declared
// positions: its own risk-adjusted operating capital, the customer assets it
// holds, and the funds it segregated against them. Missing operands default
// to zero, so a firm that never declares its capital is flagged as below the
// minimum.
func (v *Validator) Evaluate(fields findings.ExtractedFields) []findings.ValidationError {
	var errs []findings.ValidationError

	capital := money.Amount(fields, "operatingCapital")
	customerAssets := money.Amount(fields, "customerAssets")
	segregated := money.Amount(fields, "segregatedFunds")

	if capital.LessThan(minimumCapital) {
		errs = append(errs, findings.ValidationError{
			Field:   "operatingCapital",
			Kind:    findings.KindRegulatory,
			Code:    CodeCapitalAdequacy,
			Message: fmt.Sprintf("operating capital of %s is below the %s regulatory minimum", money.Format(capital), money.Format(minimumCapital)),
			Context: map[string]string{
				"current":  money.Format(capital),
				"required": money.Format(minimumCapital),
			},
			Regulation: &findings.Regulation{Framework: "CIRO", Section: "Rule 4100"},
		})
	}

	// Customer assets must be fully segregated from the firm's own funds.
	// A shortfall is a direct compliance breach, not an advisory finding.
	if segregated.LessThan(customerAssets) && customerAssets.IsPositive() {
		errs = append(errs, findings.ValidationError{
			Field:   "segregatedFunds",
			Kind:    findings.KindError,
			Code:    CodeSegregationViolation,
			Message: fmt.Sprintf("segregated funds of %s do not cover %s of customer assets held", money.Format(segregated), money.Format(customerAssets)),
			Context: map[string]string{
				"segregated":     money.Format(segregated),
				"customerAssets": money.Format(customerAssets),
			},
			Regulation: &findings.Regulation{Framework: "BIA", Section: "s.261"},
		})
	}

	return errs
}
