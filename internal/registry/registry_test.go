// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_CatalogIsValid(t *testing.T) {
	r, err := Load()
	require.NoError(t, err, "catalog must load without validation errors")
	require.NotNil(t, r)

	if r.Count() < 90 {
		t.Errorf("catalog has %d templates, want at least 90", r.Count())
	}
}

func TestLookup_EveryTemplateRoundTrips(t *testing.T) {
	r := MustLoad()
	for _, tmpl := range r.All() {
		got := r.Lookup(tmpl.FormNumber)
		require.NotNil(t, got, "Lookup(%q) returned nil", tmpl.FormNumber)
		assert.Equal(t, tmpl, got, "Lookup(%q) returned a different template", tmpl.FormNumber)
	}
}

func TestLookup_MissReturnsNil(t *testing.T) {
	r := MustLoad()
	if got := r.Lookup("999"); got != nil {
		t.Errorf("Lookup(999) = %v, want nil", got)
	}
}

func TestGeneric_HasNoRequiredFields(t *testing.T) {
	r := MustLoad()
	g := r.Generic()
	require.NotNil(t, g)
	assert.Empty(t, g.RequiredFields, "generic template must not require fields")
	assert.Empty(t, g.FormNumber)
}

func TestCatalog_RiskIndicatorsReferenceKnownFields(t *testing.T) {
	// Every risk indicator must name a field the template itself declares,
	// so downstream findings always reference template fields.
	r := MustLoad()
	for _, tmpl := range r.All() {
		declared := make(map[string]bool, len(tmpl.RequiredFields))
		for _, f := range tmpl.RequiredFields {
			declared[f.Name] = true
		}
		for _, ind := range tmpl.RiskIndicators {
			assert.True(t, declared[ind.Field],
				"form %s: risk indicator references undeclared field %q", tmpl.FormNumber, ind.Field)
			if ind.Threshold != nil && ind.Threshold.Baseline != "" {
				assert.True(t, declared[ind.Threshold.Baseline],
					"form %s: threshold baseline references undeclared field %q", tmpl.FormNumber, ind.Threshold.Baseline)
			}
		}
	}
}

func TestCatalog_DateAndMonetaryFieldsAreTyped(t *testing.T) {
	r := MustLoad()
	for _, tmpl := range r.All() {
		types := make(map[string]FieldType, len(tmpl.RequiredFields))
		for _, f := range tmpl.RequiredFields {
			types[f.Name] = f.Type
		}
		for _, name := range tmpl.DateFields {
			if ft, ok := types[name]; ok {
				assert.Equal(t, TypeDate, ft, "form %s: date field %q declared as %s", tmpl.FormNumber, name, ft)
			}
		}
		for _, name := range tmpl.MonetaryFields {
			if ft, ok := types[name]; ok {
				assert.Equal(t, TypeCurrency, ft, "form %s: monetary field %q declared as %s", tmpl.FormNumber, name, ft)
			}
		}
	}
}

func TestAll_ReturnsCopy(t *testing.T) {
	r := MustLoad()
	a := r.All()
	a[0] = nil
	require.NotNil(t, r.All()[0], "mutating the returned slice must not affect the registry")
}
