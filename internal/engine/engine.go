// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package engine orchestrates one document analysis: extraction, template
// resolution, field and cross-field validation, risk analysis, and the
// compliance verdict. The engine is stateless per invocation; the only
// shared state is the read-only template registry, so one engine may serve
// concurrent callers without locking.
package engine

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"formscan/internal/compliance"
	"formscan/internal/extractor"
	"formscan/internal/fieldval"
	"formscan/internal/findings"
	"formscan/internal/observability"
	"formscan/internal/registry"
	"formscan/internal/resolver"
	"formscan/internal/risk"
)

// AnalysisRequest is the engine's sole input.
type AnalysisRequest struct {
	// DocumentText is the raw extracted text of the document. Text
	// extraction from binary formats happens upstream in the
	// preprocessors, not here.
	DocumentText string

	// FormNumberHint, when set, overrides the form number detected in the
	// document header.
	FormNumberHint string

	// IncludeRegulatory controls whether regulatory findings count toward
	// the compliance verdict. NewRequest defaults it to true.
	IncludeRegulatory bool
}

// NewRequest returns a request for the given text with default options.
func NewRequest(documentText string) AnalysisRequest {
	return AnalysisRequest{DocumentText: documentText, IncludeRegulatory: true}
}

// Engine wires the analysis pipeline together.
type Engine struct {
	registry  *registry.Registry
	extractor *extractor.Extractor
	resolver  *resolver.Resolver
	analyzer  *risk.Analyzer
	ruleSets  map[string]findings.RuleSet
	observer  *observability.StandardObserver
}

// New builds an engine over a loaded registry and the given rule sets.
// Pass nil for observer to disable instrumentation.
func New(reg *registry.Registry, ruleSets map[string]findings.RuleSet, observer *observability.StandardObserver) *Engine {
	return &Engine{
		registry:  reg,
		extractor: extractor.New(),
		resolver:  resolver.New(reg),
		analyzer:  risk.NewAnalyzer(),
		ruleSets:  ruleSets,
		observer:  observer,
	}
}

// Registry exposes the template catalog for callers that list or inspect
// forms.
func (e *Engine) Registry() *registry.Registry {
	return e.registry
}

// Analyze runs the full pipeline over one document. It never returns an
// error: malformed or incomplete input is represented in the result
// (validation findings, fallback template, status) rather than as
// control flow.
func (e *Engine) Analyze(req AnalysisRequest) *findings.AnalysisResult {
	var finish func(success bool, metadata map[string]interface{})
	if e.observer != nil {
		finish = e.observer.StartTiming("engine", "analyze", "")
	}

	fields, docType := e.extractor.Extract(req.DocumentText)

	hint := req.FormNumberHint
	if hint == "" {
		hint = fields["formNumber"]
	}
	template := e.resolver.Resolve(hint, docType)

	errs := fieldval.Validate(template, fields)
	if ruleSet, ok := e.ruleSets[template.Category]; ok {
		errs = append(errs, ruleSet.Evaluate(fields)...)
	}
	if errs == nil {
		errs = []findings.ValidationError{}
	}

	analysis := e.analyzer.Analyze(req.DocumentText, fields, template)
	if analysis.Risks == nil {
		analysis.Risks = []findings.RiskAssessment{}
	}
	if analysis.Recommendations == nil {
		analysis.Recommendations = []string{}
	}
	verdict := compliance.Aggregate(errs, analysis.Risks, req.IncludeRegulatory)

	missing := missingRequired(template, fields)
	confidence := coverage(template, missing)
	status := statusOf(fields, docType, missing)

	result := &findings.AnalysisResult{
		ID:               resultID(req),
		FormNumber:       template.FormNumber,
		DocumentType:     docType,
		Fields:           fields,
		ValidationErrors: errs,
		Risks:            analysis.Risks,
		RiskScore:        analysis.Score,
		Recommendations:  analysis.Recommendations,
		Compliance:       verdict,
		Summary:          summarize(template, docType, fields, errs, analysis, verdict),
		Confidence:       confidence,
		Status:           status,
		AnalyzedAt:       time.Now().UTC(),
	}

	if finish != nil {
		finish(true, map[string]interface{}{
			"form_number": template.FormNumber,
			"fields":      len(fields),
			"findings":    len(errs),
			"risks":       len(analysis.Risks),
			"verdict":     string(verdict.State),
		})
	}

	return result
}

// resultID derives a stable identifier from the request content, so the
// same input always produces the same result identity.
func resultID(req AnalysisRequest) string {
	seed := req.FormNumberHint + "\x00" + req.DocumentText
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(seed)).String()
}

// missingRequired lists the template's required fields absent from the
// extraction, in template order.
func missingRequired(template *registry.FormTemplate, fields findings.ExtractedFields) []string {
	var missing []string
	for _, rf := range template.RequiredFields {
		if rf.Required && !fields.Has(rf.Name) {
			missing = append(missing, rf.Name)
		}
	}
	return missing
}

// coverage is the fraction of required fields the extraction satisfied.
// Templates with no required fields (the generic fallback) score 0 since
// nothing was verified against them.
func coverage(template *registry.FormTemplate, missing []string) float64 {
	required := 0
	for _, rf := range template.RequiredFields {
		if rf.Required {
			required++
		}
	}
	if required == 0 {
		return 0
	}
	return float64(required-len(missing)) / float64(required)
}

// statusOf distinguishes fully analyzed, analyzed with gaps, and unusable
// extractions.
func statusOf(fields findings.ExtractedFields, docType findings.DocumentType, missing []string) findings.AnalysisStatus {
	if len(fields) < 2 && docType == findings.DocOther {
		return findings.StatusFailed
	}
	if len(missing) > 0 {
		return findings.StatusPartial
	}
	return findings.StatusSuccess
}

func summarize(template *registry.FormTemplate, docType findings.DocumentType, fields findings.ExtractedFields, errs []findings.ValidationError, analysis risk.Analysis, verdict findings.ComplianceStatus) string {
	name := template.Title
	if template.FormNumber != "" {
		name = fmt.Sprintf("Form %s (%s)", template.FormNumber, template.Title)
	}
	return fmt.Sprintf("%s classified as %s: %d fields extracted, %d validation findings, %d risks (score %.1f), verdict %s",
		name, docType, len(fields), len(errs), len(analysis.Risks), analysis.Score, verdict.State)
}
