// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package registry is the static catalog of regulatory form definitions.
// The catalog is declared as structured literals in the templates_*.go
// files, validated once at load, and never mutated afterward. It may be
// shared across concurrent analyses without locking.
package registry

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"formscan/internal/findings"
)

// FieldType declares how a required field's value is interpreted.
type FieldType string

const (
	TypeText     FieldType = "text"
	TypeDate     FieldType = "date"
	TypeCurrency FieldType = "currency"
	TypeNumber   FieldType = "number"
)

// RequiredField is one field a form must (or may) carry, with the statutory
// reference that requires it.
type RequiredField struct {
	Name      string    `validate:"required"`
	Type      FieldType `validate:"required,oneof=text date currency number"`
	Required  bool
	Reference string
}

// Threshold is an optional numeric bound attached to a risk indicator.
// Baseline, when set, names the field the indicator value is compared
// against as a ratio.
type Threshold struct {
	Value    float64
	Unit     string `validate:"omitempty,oneof=amount percent days ratio"`
	Operator string `validate:"required,oneof=lt gt lte gte"`
	Baseline string
}

// RiskIndicator declares a field-level risk trigger carried by a template.
type RiskIndicator struct {
	Field       string            `validate:"required"`
	RiskType    string            `validate:"required,oneof=financial compliance legal document"`
	Severity    findings.Severity `validate:"required,oneof=low medium high"`
	Description string            `validate:"required"`
	Threshold   *Threshold
}

// FormTemplate identifies one regulatory form. Immutable after load.
type FormTemplate struct {
	FormNumber     string `validate:"required"`
	Title          string `validate:"required"`
	Category       string `validate:"required,oneof=bankruptcy proposal corporate farming pension securities administrative"`
	Subcategory    string
	RequiredFields []RequiredField `validate:"dive"`
	DateFields     []string
	MonetaryFields []string
	RiskIndicators []RiskIndicator `validate:"dive"`
	References     []string
}

// Registry owns all form templates for the process lifetime. Validators and
// the extractor hold only read references into it.
type Registry struct {
	templates map[string]*FormTemplate
	ordered   []*FormTemplate
	generic   *FormTemplate
}

// Load assembles and validates the catalog. A malformed template definition
// is a startup failure, never a runtime error.
func Load() (*Registry, error) {
	validate := validator.New()

	catalog := make([]FormTemplate, 0, 96)
	catalog = append(catalog, bankruptcyForms()...)
	catalog = append(catalog, proposalForms()...)
	catalog = append(catalog, corporateForms()...)
	catalog = append(catalog, specializedForms()...)
	catalog = append(catalog, administrativeForms()...)

	r := &Registry{
		templates: make(map[string]*FormTemplate, len(catalog)),
		ordered:   make([]*FormTemplate, 0, len(catalog)),
	}

	for i := range catalog {
		t := &catalog[i]
		if err := validate.Struct(t); err != nil {
			return nil, fmt.Errorf("invalid template definition for form %q: %w", t.FormNumber, err)
		}
		if _, exists := r.templates[t.FormNumber]; exists {
			return nil, fmt.Errorf("duplicate form number %q in catalog", t.FormNumber)
		}
		r.templates[t.FormNumber] = t
		r.ordered = append(r.ordered, t)
	}

	// The generic fallback template has no required fields so downstream
	// validation degrades gracefully when a form cannot be identified.
	r.generic = &FormTemplate{
		FormNumber:  "",
		Title:       "Unclassified Document",
		Category:    "administrative",
		Subcategory: "unclassified",
	}

	return r, nil
}

// MustLoad is the startup entry point: a catalog that fails validation
// aborts initialization since every subsequent analysis depends on it.
func MustLoad() *Registry {
	r, err := Load()
	if err != nil {
		panic(fmt.Sprintf("form template catalog failed to load: %v", err))
	}
	return r
}

// Lookup returns the template for a form number, or nil when no template
// exists. Lookup is O(1) and safe for concurrent use.
func (r *Registry) Lookup(formNumber string) *FormTemplate {
	return r.templates[formNumber]
}

// All returns every template in catalog order, for diagnostics and testing.
func (r *Registry) All() []*FormTemplate {
	out := make([]*FormTemplate, len(r.ordered))
	copy(out, r.ordered)
	return out
}

// Generic returns the fallback template used when resolution fails.
func (r *Registry) Generic() *FormTemplate {
	return r.generic
}

// Count returns the number of catalogued templates.
func (r *Registry) Count() int {
	return len(r.ordered)
}

// req declares a mandatory field.
func req(name string, t FieldType, ref string) RequiredField {
	return RequiredField{Name: name, Type: t, Required: true, Reference: ref}
}

// opt declares an optional field.
func opt(name string, t FieldType, ref string) RequiredField {
	return RequiredField{Name: name, Type: t, Required: false, Reference: ref}
}
