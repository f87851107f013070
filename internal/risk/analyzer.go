// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package risk scores a document's raw text and extracted fields against
// four independent sweeps: financial ratios, regulatory content
// requirements, legal red-flag language, and structural completeness.
// Each sweep appends into the same risk list; the aggregate score reflects
// average severity, not count.
package risk

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"formscan/internal/findings"
	"formscan/internal/money"
	"formscan/internal/patterns"
	"formscan/internal/registry"
)

// debtServiceCeiling is the expense-to-income ratio above which household
// finances are treated as distressed.
var debtServiceCeiling = decimal.NewFromFloat(0.8)

// contentRequirement is one regulatory must-appear pattern for a category
// of filings.
type contentRequirement struct {
	Category    string
	Framework   string
	Section     string
	Pattern     *regexp.Regexp
	Description string
}

// frameworkRequirements lists the content each regulatory framework expects
// to find in a filing of the given category. An empty Category applies to
// every document.
var frameworkRequirements = []contentRequirement{
	{
		Category:    "bankruptcy",
		Framework:   "BIA",
		Section:     "s.158(d)",
		Pattern:     regexp.MustCompile(`(?i)(sworn|solemnly declare|affirm|oath)`),
		Description: "statement of affairs must be sworn or solemnly declared",
	},
	{
		Category:    "bankruptcy",
		Framework:   "BIA",
		Section:     "s.13.3",
		Pattern:     regexp.MustCompile(`(?i)(licensed insolvency trustee|trustee)`),
		Description: "filing must identify the licensed insolvency trustee of record",
	},
	{
		Category:    "proposal",
		Framework:   "BIA",
		Section:     "s.66.13(2)",
		Pattern:     regexp.MustCompile(`(?i)(administrator|trustee)`),
		Description: "consumer proposal must name the administrator",
	},
	{
		Category:    "proposal",
		Framework:   "BIA",
		Section:     "s.66.14",
		Pattern:     regexp.MustCompile(`(?i)(creditor)`),
		Description: "proposal must address the creditors it binds",
	},
	{
		Category:    "corporate",
		Framework:   "CCAA",
		Section:     "s.10(2)",
		Pattern:     regexp.MustCompile(`(?i)(financial statements?|cash.?flow)`),
		Description: "application must attach or reference financial statements",
	},
	{
		Category:    "farming",
		Framework:   "FDMA",
		Section:     "s.5",
		Pattern:     regexp.MustCompile(`(?i)(farm|farming operation)`),
		Description: "application must describe the farming operation",
	},
	{
		Category:    "pension",
		Framework:   "PBSA",
		Section:     "s.29",
		Pattern:     regexp.MustCompile(`(?i)(pension plan|plan member)`),
		Description: "wind-up filing must identify the plan and its members",
	},
	{
		Category:    "securities",
		Framework:   "BIA",
		Section:     "s.256",
		Pattern:     regexp.MustCompile(`(?i)(customer|client account)`),
		Description: "filing must account for customer property",
	},
}

// structuralSections are the document-integrity presence checks. One medium
// risk per missing section.
var structuralSections = []struct {
	Name    string
	Pattern *regexp.Regexp
}{
	{"personal information", patterns.SectionPersonalInfo},
	{"financial statements", patterns.SectionFinancialStatement},
	{"creditor information", patterns.SectionCreditorInfo},
}

// Analysis is the risk analyzer's output for one document.
type Analysis struct {
	Risks           []findings.RiskAssessment
	Score           float64
	Recommendations []string
}

// Analyzer runs the risk sweeps. Stateless and safe for concurrent use.
type Analyzer struct{}

func NewAnalyzer() *Analyzer {
	return &Analyzer{}
}

// Analyze produces the risk assessment for a document. The per-form
// override table is consulted first: forms with a stable, well-known risk
// profile bypass the sweeps entirely and return their pre-authored set.
func (a *Analyzer) Analyze(rawText string, fields findings.ExtractedFields, template *registry.FormTemplate) Analysis {
	if risks, ok := Override(template.FormNumber); ok {
		return Analysis{
			Risks:           risks,
			Score:           Score(risks),
			Recommendations: Recommendations(risks),
		}
	}

	var risks []findings.RiskAssessment
	risks = append(risks, a.sweepFinancial(fields, template)...)
	risks = append(risks, a.sweepCompliance(rawText, fields, template)...)
	risks = append(risks, a.sweepLegal(rawText, fields, template)...)
	risks = append(risks, a.sweepDocumentIntegrity(rawText)...)

	return Analysis{
		Risks:           risks,
		Score:           Score(risks),
		Recommendations: Recommendations(risks),
	}
}

// sweepFinancial checks the debt-service ratio and evaluates the template's
// financial risk indicators against the extracted figures.
func (a *Analyzer) sweepFinancial(fields findings.ExtractedFields, template *registry.FormTemplate) []findings.RiskAssessment {
	var risks []findings.RiskAssessment

	income := money.Amount(fields, "monthlyIncome")
	expenses := money.Amount(fields, "monthlyExpenses")
	if income.IsPositive() {
		ratio := expenses.Div(income)
		if ratio.GreaterThan(debtServiceCeiling) {
			risks = append(risks, findings.RiskAssessment{
				Category:    "financial",
				Severity:    findings.SeverityHigh,
				Description: fmt.Sprintf("monthly expenses consume %s%% of income, above the 80%% distress ceiling", ratio.Mul(decimal.NewFromInt(100)).StringFixed(1)),
				Impact:      "surplus income obligations may be unserviceable",
				References: []findings.LegalReference{
					{Source: "OSB", Reference: "Directive 11R2", Title: "Surplus Income"},
				},
			})
		}
	}

	for _, ind := range template.RiskIndicators {
		if ind.RiskType != "financial" {
			continue
		}
		if r, ok := a.evaluateIndicator(ind, fields); ok {
			risks = append(risks, r)
		}
	}

	return risks
}

// sweepCompliance tests the raw text against each framework requirement for
// the template's category and evaluates compliance-typed indicators.
func (a *Analyzer) sweepCompliance(rawText string, fields findings.ExtractedFields, template *registry.FormTemplate) []findings.RiskAssessment {
	var risks []findings.RiskAssessment

	for _, req := range frameworkRequirements {
		if req.Category != "" && req.Category != template.Category {
			continue
		}
		if req.Pattern.MatchString(rawText) {
			continue
		}
		risks = append(risks, findings.RiskAssessment{
			Category:    "compliance",
			Severity:    findings.SeverityHigh,
			Description: fmt.Sprintf("%s %s: %s", req.Framework, req.Section, req.Description),
			Impact:      "filing may be rejected by the official receiver",
			References: []findings.LegalReference{
				{Source: req.Framework, Reference: req.Section, Title: req.Description},
			},
		})
	}

	for _, ind := range template.RiskIndicators {
		if ind.RiskType != "compliance" {
			continue
		}
		if r, ok := a.evaluateIndicator(ind, fields); ok {
			risks = append(risks, r)
		}
	}

	return risks
}

// sweepLegal scans for fraud, misrepresentation, concealment, and
// undisclosed-asset language. One risk per distinct matched term.
func (a *Analyzer) sweepLegal(rawText string, fields findings.ExtractedFields, template *registry.FormTemplate) []findings.RiskAssessment {
	var risks []findings.RiskAssessment

	seen := map[string]bool{}
	for _, m := range patterns.LegalRiskTerms.FindAllString(rawText, -1) {
		term := strings.ToLower(m)
		if seen[term] {
			continue
		}
		seen[term] = true
		risks = append(risks, findings.RiskAssessment{
			Category:    "legal",
			Severity:    findings.SeverityHigh,
			Description: fmt.Sprintf("document contains %q language", term),
			Impact:      "potential offence under the BIA examination provisions",
			References: []findings.LegalReference{
				{Source: "BIA", Reference: "s.198", Title: "Bankruptcy Offences"},
			},
		})
	}

	for _, ind := range template.RiskIndicators {
		if ind.RiskType != "legal" {
			continue
		}
		if r, ok := a.evaluateIndicator(ind, fields); ok {
			risks = append(risks, r)
		}
	}

	return risks
}

// sweepDocumentIntegrity checks for the structural sections every complete
// filing carries. One medium risk per missing section.
func (a *Analyzer) sweepDocumentIntegrity(rawText string) []findings.RiskAssessment {
	var risks []findings.RiskAssessment

	for _, s := range structuralSections {
		if s.Pattern.MatchString(rawText) {
			continue
		}
		risks = append(risks, findings.RiskAssessment{
			Category:    "document",
			Severity:    findings.SeverityMedium,
			Description: fmt.Sprintf("required %s section not found", s.Name),
			Impact:      "document may be an incomplete or partial filing",
		})
	}

	return risks
}

// evaluateIndicator applies one template risk indicator to the extracted
// figures. Indicators without thresholds fire on field absence.
func (a *Analyzer) evaluateIndicator(ind registry.RiskIndicator, fields findings.ExtractedFields) (findings.RiskAssessment, bool) {
	if ind.Threshold == nil {
		if fields.Has(ind.Field) {
			return findings.RiskAssessment{}, false
		}
		return findings.RiskAssessment{
			Category:    ind.RiskType,
			Severity:    ind.Severity,
			Description: ind.Description,
			Impact:      fmt.Sprintf("field %q was not found in the document", ind.Field),
		}, true
	}

	value := money.Amount(fields, ind.Field)
	bound := decimal.NewFromFloat(ind.Threshold.Value)
	if ind.Threshold.Baseline != "" {
		baseline := money.Amount(fields, ind.Threshold.Baseline)
		if !baseline.IsPositive() {
			return findings.RiskAssessment{}, false
		}
		bound = bound.Mul(baseline)
	}

	var breached bool
	switch ind.Threshold.Operator {
	case "lt":
		breached = value.LessThan(bound)
	case "lte":
		breached = value.LessThanOrEqual(bound)
	case "gt":
		breached = value.GreaterThan(bound)
	case "gte":
		breached = value.GreaterThanOrEqual(bound)
	}
	if !breached {
		return findings.RiskAssessment{}, false
	}

	return findings.RiskAssessment{
		Category:    ind.RiskType,
		Severity:    ind.Severity,
		Description: ind.Description,
		Impact:      fmt.Sprintf("%s is %s against a bound of %s", ind.Field, money.Format(value), money.Format(bound)),
	}, true
}
