// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package bankruptcy implements the cross-field rules for bankruptcy filings
// under the Bankruptcy and Insolvency Act.
package bankruptcy

import (
	"fmt"

	"github.com/shopspring/decimal"

	"formscan/internal/findings"
	"formscan/internal/money"
)

const CodeSolvencyCheck = "SOLVENCY_CHECK"

// solvencyMargin is the asset-to-liability ratio above which a bankruptcy
// filing looks solvent and merits review.
var solvencyMargin = decimal.NewFromFloat(1.2)

// Validator evaluates bankruptcy cross-field rules. Stateless and safe for
// concurrent use.
type Validator struct{}

func New() *Validator {
	return &Validator{}
}

func (v *Validator) Category() string {
	return "bankruptcy"
}

// Evaluate runs the bankruptcy rules against an extracted field set. Missing
// operands are treated as zero so a rule can still surface a deficiency when
// a figure was never supplied.
func (v *Validator) Evaluate(fields findings.ExtractedFields) []findings.ValidationError {
	var errs []findings.ValidationError

	assets := money.Amount(fields, "totalAssets")
	liabilities := money.Amount(fields, "totalLiabilities")

	// Assets substantially exceeding liabilities is atypical for a
	// bankruptcy filing. A review trigger, not a rejection.
	if assets.GreaterThan(liabilities.Mul(solvencyMargin)) {
		errs = append(errs, findings.ValidationError{
			Field:   "totalAssets",
			Kind:    findings.KindWarning,
			Code:    CodeSolvencyCheck,
			Message: fmt.Sprintf("declared assets %s exceed liabilities %s by more than 20%%; filing may not be insolvent", money.Format(assets), money.Format(liabilities)),
			Context: map[string]string{
				"totalAssets":      money.Format(assets),
				"totalLiabilities": money.Format(liabilities),
			},
			Regulation: &findings.Regulation{Framework: "BIA", Section: "s.43(7)"},
		})
	}

	return errs
}
