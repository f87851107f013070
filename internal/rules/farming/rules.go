// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package farming implements the cross-field rules for farm debt mediation
// filings under the Farm Debt Mediation Act.
package farming

import (
	"fmt"

	"github.com/shopspring/decimal"

	"formscan/internal/findings"
	"formscan/internal/money"
)

const CodeFDMAThreshold = "FDMA_THRESHOLD"

// fdmaMinimumDebt is the aggregate farm debt below which mediation is not
// available.
var fdmaMinimumDebt = decimal.NewFromInt(15_000)

// Validator evaluates farm debt mediation cross-field rules. Stateless and
// safe for concurrent use.
type Validator struct{}

func New() *Validator {
	return &Validator{}
}

func (v *Validator) Category() string {
	return "farming"
}

// Evaluate runs the farming rules. A missing totalDebt defaults to zero, so
// an application that never declares its debt is flagged as below the
// mediation minimum.
func (v *Validator) Evaluate(fields findings.ExtractedFields) []findings.ValidationError {
	var errs []findings.ValidationError

	totalDebt := money.Amount(fields, "totalDebt")

	if totalDebt.LessThan(fdmaMinimumDebt) {
		errs = append(errs, findings.ValidationError{
			Field:   "totalDebt",
			Kind:    findings.KindRegulatory,
			Code:    CodeFDMAThreshold,
			Message: fmt.Sprintf("declared farm debt of %s is below the %s mediation eligibility minimum", money.Format(totalDebt), money.Format(fdmaMinimumDebt)),
			Context: map[string]string{
				"current":  money.Format(totalDebt),
				"required": money.Format(fdmaMinimumDebt),
			},
			Regulation: &findings.Regulation{Framework: "FDMA", Section: "s.6"},
		})
	}

	return errs
}
