// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package fieldval

import (
	"testing"

	"formscan/internal/findings"
	"formscan/internal/registry"
)

func statementTemplate() *registry.FormTemplate {
	reg := registry.MustLoad()
	return reg.Lookup("79")
}

func TestValidate_OneFindingPerMissingRequiredField(t *testing.T) {
	tpl := statementTemplate()

	errs := Validate(tpl, findings.ExtractedFields{})

	counts := map[string]int{}
	for _, e := range errs {
		if e.Code != CodeRequiredField {
			t.Errorf("unexpected code %q for empty field set", e.Code)
		}
		counts[e.Field]++
	}
	for field, n := range counts {
		if n != 1 {
			t.Errorf("field %q reported %d times, want exactly once", field, n)
		}
	}

	required := 0
	for _, rf := range tpl.RequiredFields {
		if rf.Required {
			required++
		}
	}
	if len(errs) != required {
		t.Errorf("got %d findings, want one per required field (%d)", len(errs), required)
	}
}

func TestValidate_DateFields(t *testing.T) {
	tpl := statementTemplate()

	cases := []struct {
		name  string
		value string
		valid bool
	}{
		{"iso date", "2024-03-15", true},
		{"written date", "March 15, 2024", true},
		{"day month year", "15/03/2024", true},
		{"impossible month", "2024-13-01", false},
		{"prose", "sometime last spring", false},
		{"partial", "2024-03", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fields := findings.ExtractedFields{"dateSigned": tc.value}
			var got *findings.ValidationError
			for _, e := range Validate(tpl, fields) {
				if e.Code == CodeInvalidDate && e.Field == "dateSigned" {
					got = &e
					break
				}
			}
			if tc.valid && got != nil {
				t.Errorf("value %q flagged invalid: %s", tc.value, got.Message)
			}
			if !tc.valid && got == nil {
				t.Errorf("value %q not flagged, want INVALID_DATE", tc.value)
			}
		})
	}
}

func TestValidate_MonetaryFields(t *testing.T) {
	tpl := statementTemplate()

	cases := []struct {
		name  string
		value string
		valid bool
	}{
		{"plain", "45000", true},
		{"grouped with cents", "$45,000.00", true},
		{"no symbol", "45,000.00", true},
		{"negative", "-$500.00", false},
		{"one decimal", "$45.5", false},
		{"prose", "forty-five thousand", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fields := findings.ExtractedFields{"totalAssets": tc.value}
			var got *findings.ValidationError
			for _, e := range Validate(tpl, fields) {
				if e.Code == CodeInvalidAmount && e.Field == "totalAssets" {
					got = &e
					break
				}
			}
			if tc.valid && got != nil {
				t.Errorf("value %q flagged invalid: %s", tc.value, got.Message)
			}
			if !tc.valid && got == nil {
				t.Errorf("value %q not flagged, want INVALID_AMOUNT", tc.value)
			}
		})
	}
}

func TestValidate_AbsentTypedFieldsNotChecked(t *testing.T) {
	tpl := statementTemplate()

	// dateSigned is required, so its absence yields REQUIRED_FIELD — but
	// never INVALID_DATE on top of it.
	errs := Validate(tpl, findings.ExtractedFields{"clientName": "Jane Doe"})
	for _, e := range errs {
		if e.Code == CodeInvalidDate || e.Code == CodeInvalidAmount {
			t.Errorf("absent field %q produced format finding %q", e.Field, e.Code)
		}
	}
}

func TestValidate_CompleteDocumentIsClean(t *testing.T) {
	tpl := statementTemplate()

	fields := findings.ExtractedFields{}
	for _, rf := range tpl.RequiredFields {
		switch rf.Type {
		case registry.TypeDate:
			fields[rf.Name] = "2024-03-15"
		case registry.TypeCurrency:
			fields[rf.Name] = "$10,000.00"
		case registry.TypeNumber:
			fields[rf.Name] = "12"
		default:
			fields[rf.Name] = "placeholder value"
		}
	}

	if errs := Validate(tpl, fields); len(errs) != 0 {
		t.Errorf("complete document produced %d findings: %+v", len(errs), errs)
	}
}
