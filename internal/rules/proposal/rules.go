// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package proposal implements the cross-field rules for Division I and
// consumer proposals.
package proposal

import (
	"fmt"

	"github.com/shopspring/decimal"

	"formscan/internal/findings"
	"formscan/internal/money"
)

const (
	CodeLowProposalRatio     = "LOW_PROPOSAL_RATIO"
	CodeInsufficientPayments = "INSUFFICIENT_PAYMENTS"
)

// minimumRatio is the fraction of unsecured debt a proposal is expected to
// offer before creditor acceptance becomes unlikely.
var minimumRatio = decimal.NewFromFloat(0.3)

// Validator evaluates proposal cross-field rules. Stateless and safe for
// concurrent use.
type Validator struct{}

func New() *Validator {
	return &Validator{}
}

func (v *Validator) Category() string {
	return "proposal"
}

// Evaluate runs the proposal viability rules. Missing operands are treated
// as zero so a deficient proposal is flagged even when a figure was never
// supplied.
func (v *Validator) Evaluate(fields findings.ExtractedFields) []findings.ValidationError {
	var errs []findings.ValidationError

	proposalAmount := money.Amount(fields, "proposalAmount")
	totalDebt := money.Amount(fields, "totalDebt")
	securedDebt := money.Amount(fields, "securedDebt")
	monthlyPayment := money.Amount(fields, "monthlyPayment")
	term := money.Number(fields, "proposalTerm")

	// Creditors vote on the return against their unsecured claims; secured
	// claims sit outside the proposal.
	unsecured := totalDebt.Sub(securedDebt)

	if proposalAmount.LessThan(unsecured.Mul(minimumRatio)) {
		errs = append(errs, findings.ValidationError{
			Field:   "proposalAmount",
			Kind:    findings.KindWarning,
			Code:    CodeLowProposalRatio,
			Message: fmt.Sprintf("proposal offers %s against %s of unsecured debt, below the 30%% return creditors typically accept", money.Format(proposalAmount), money.Format(unsecured)),
			Context: map[string]string{
				"proposalAmount": money.Format(proposalAmount),
				"unsecuredDebt":  money.Format(unsecured),
				"minimumRatio":   minimumRatio.String(),
			},
			Regulation: &findings.Regulation{Framework: "BIA", Section: "s.54"},
		})
	}

	// The payment schedule must fund the proposal in full. This is a hard
	// arithmetic constraint, so it is an error rather than a warning.
	scheduled := monthlyPayment.Mul(term)
	if scheduled.LessThan(proposalAmount) {
		errs = append(errs, findings.ValidationError{
			Field:   "monthlyPayment",
			Kind:    findings.KindError,
			Code:    CodeInsufficientPayments,
			Message: fmt.Sprintf("scheduled payments total %s over the term but the proposal promises %s", money.Format(scheduled), money.Format(proposalAmount)),
			Context: map[string]string{
				"scheduledTotal": money.Format(scheduled),
				"proposalAmount": money.Format(proposalAmount),
				"monthlyPayment": money.Format(monthlyPayment),
				"proposalTerm":   term.String(),
			},
			Regulation: &findings.Regulation{Framework: "BIA", Section: "s.66.12(6)"},
		})
	}

	return errs
}
