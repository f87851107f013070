// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package fieldval checks a resolved template's fields against the extracted
// values. Every check is local to one field — no cross-field reasoning — so
// the validator stays template-agnostic and testable in isolation.
package fieldval

import (
	"fmt"
	"time"

	"formscan/internal/findings"
	"formscan/internal/money"
	"formscan/internal/registry"
)

// Validation finding codes.
const (
	CodeRequiredField = "REQUIRED_FIELD"
	CodeInvalidDate   = "INVALID_DATE"
	CodeInvalidAmount = "INVALID_AMOUNT"
)

// dateLayouts are the formats accepted for key-date fields, tried in order.
var dateLayouts = []string{
	"2006-01-02",
	"January 2, 2006",
	"02/01/2006",
}

// Validate checks each of the template's required fields, date fields, and
// monetary fields against the extracted values. Exactly one REQUIRED_FIELD
// finding is emitted per missing required field; date and monetary checks
// apply only to fields that are present.
func Validate(template *registry.FormTemplate, fields findings.ExtractedFields) []findings.ValidationError {
	var errs []findings.ValidationError

	for _, rf := range template.RequiredFields {
		if !rf.Required {
			continue
		}
		if fields.Has(rf.Name) {
			continue
		}
		errs = append(errs, findings.ValidationError{
			Field:   rf.Name,
			Kind:    findings.KindError,
			Code:    CodeRequiredField,
			Message: fmt.Sprintf("required field %q is missing", rf.Name),
			Context: map[string]string{"reference": rf.Reference},
		})
	}

	for _, name := range template.DateFields {
		v, ok := fields[name]
		if !ok {
			continue
		}
		if !parseableDate(v) {
			errs = append(errs, findings.ValidationError{
				Field:   name,
				Kind:    findings.KindError,
				Code:    CodeInvalidDate,
				Message: fmt.Sprintf("field %q does not contain a parseable date", name),
				Context: map[string]string{"value": v},
			})
		}
	}

	for _, name := range template.MonetaryFields {
		v, ok := fields[name]
		if !ok {
			continue
		}
		amount, err := money.Parse(v)
		if err != nil {
			errs = append(errs, findings.ValidationError{
				Field:   name,
				Kind:    findings.KindError,
				Code:    CodeInvalidAmount,
				Message: fmt.Sprintf("field %q does not contain a parseable amount", name),
				Context: map[string]string{"value": v},
			})
			continue
		}
		if amount.IsNegative() {
			errs = append(errs, findings.ValidationError{
				Field:   name,
				Kind:    findings.KindError,
				Code:    CodeInvalidAmount,
				Message: fmt.Sprintf("field %q must not be negative", name),
				Context: map[string]string{"value": v},
			})
		}
	}

	return errs
}

func parseableDate(v string) bool {
	for _, layout := range dateLayouts {
		if _, err := time.Parse(layout, v); err == nil {
			return true
		}
	}
	return false
}
