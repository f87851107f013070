// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package pension implements the cross-field rules for pension plan wind-up
// filings by insolvent employers.
package pension

import (
	"fmt"

	"github.com/shopspring/decimal"

	"formscan/internal/findings"
	"formscan/internal/money"
)

const (
	CodeFundingRatio         = "FUNDING_RATIO"
	CodeEmployerContribution = "EMPLOYER_CONTRIBUTION"
)

// minimumFundingRatio is the solvency funding level below which a wind-up
// report triggers regulatory attention.
var minimumFundingRatio = decimal.NewFromFloat(0.80)

// Validator evaluates pension wind-up cross-field rules. Stateless and safe
// for concurrent use.
type Validator struct{}

func New() *Validator {
	return &Validator{}
}

func (v *Validator) Category() string {
	return "pension"
}

// Evaluate runs the pension rules. Plan assets and benefit liabilities come
// from the wind-up report; the contribution statement declares what the
// employer remitted against the plan's required current service cost.
// Missing operands default to zero, so a statement that never declares its
// remittances still errors.
func (v *Validator) Evaluate(fields findings.ExtractedFields) []findings.ValidationError {
	var errs []findings.ValidationError

	assets := money.Amount(fields, "totalAssets")
	liabilities := money.Amount(fields, "totalLiabilities")
	remitted := money.Amount(fields, "employerContributions")
	required := money.Amount(fields, "requiredContributions")

	// Funding ratio is assets over accrued benefit liabilities. With no
	// declared liabilities the ratio is undefined and the check does not
	// apply.
	if liabilities.IsPositive() {
		ratio := assets.Div(liabilities)
		if ratio.LessThan(minimumFundingRatio) {
			errs = append(errs, findings.ValidationError{
				Field:   "totalAssets",
				Kind:    findings.KindRegulatory,
				Code:    CodeFundingRatio,
				Message: fmt.Sprintf("plan is funded at %s%% of accrued benefits, below the %s%% regulatory minimum", ratio.Mul(decimal.NewFromInt(100)).StringFixed(1), minimumFundingRatio.Mul(decimal.NewFromInt(100)).StringFixed(0)),
				Context: map[string]string{
					"fundingRatio": ratio.StringFixed(4),
					"required":     minimumFundingRatio.String(),
				},
				Regulation: &findings.Regulation{Framework: "PBSA", Section: "s.29"},
			})
		}
	}

	// Contributions not remitted in full rank as a super-priority charge
	// on the employer's estate; a shortfall is a breach, not a risk. A
	// statement with no declared remittance fails the same way, since an
	// undeclared remittance cannot cover any required amount.
	if !remitted.IsPositive() || remitted.LessThan(required) {
		errs = append(errs, findings.ValidationError{
			Field:   "employerContributions",
			Kind:    findings.KindError,
			Code:    CodeEmployerContribution,
			Message: fmt.Sprintf("employer contributions of %s fall short of the %s required current service cost", money.Format(remitted), money.Format(required)),
			Context: map[string]string{
				"remitted": money.Format(remitted),
				"required": money.Format(required),
			},
			Regulation: &findings.Regulation{Framework: "BIA", Section: "s.81.5"},
		})
	}

	return errs
}
