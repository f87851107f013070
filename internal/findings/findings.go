// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package findings

import "time"

// DocumentType is the coarse classification assigned by the extractor.
type DocumentType string

const (
	DocBankruptcy DocumentType = "bankruptcy"
	DocProposal   DocumentType = "proposal"
	DocCourt      DocumentType = "court"
	DocMeeting    DocumentType = "meeting"
	DocSecurity   DocumentType = "security"
	DocOther      DocumentType = "other"
)

// ExtractedFields maps field names to the raw values pulled from document
// text. A field that did not match is absent from the map — never present
// with an empty value.
type ExtractedFields map[string]string

// Has reports whether the field is present with a non-empty value.
func (f ExtractedFields) Has(name string) bool {
	v, ok := f[name]
	return ok && v != ""
}

// Clone returns an independent copy of the field map.
func (f ExtractedFields) Clone() ExtractedFields {
	out := make(ExtractedFields, len(f))
	for k, v := range f {
		out[k] = v
	}
	return out
}

// Kind classifies a validation finding.
type Kind string

const (
	// KindError is a hard validation failure that blocks compliance.
	KindError Kind = "error"
	// KindWarning is advisory and reviewable.
	KindWarning Kind = "warning"
	// KindRegulatory marks a specific statutory threshold that is unmet.
	// It always escalates the document to at least needs_review.
	KindRegulatory Kind = "regulatory"
)

// Regulation cites the statute that justifies a finding.
type Regulation struct {
	Framework string `json:"framework"`
	Section   string `json:"section"`
}

// ValidationError is one finding emitted by the field or cross-field
// validators. Immutable once created.
type ValidationError struct {
	Field      string            `json:"field"`
	Kind       Kind              `json:"kind"`
	Code       string            `json:"code"`
	Message    string            `json:"message"`
	Context    map[string]string `json:"context,omitempty"`
	Regulation *Regulation       `json:"regulation,omitempty"`
}

// Severity is the ordinal risk classification.
type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// Weight returns the scoring weight for a severity (high=3, medium=2, low=1).
func (s Severity) Weight() int {
	switch s {
	case SeverityHigh:
		return 3
	case SeverityMedium:
		return 2
	default:
		return 1
	}
}

// LegalReference points at the statutory basis for a risk record.
type LegalReference struct {
	Source      string   `json:"source"`
	Reference   string   `json:"reference"`
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Sections    []string `json:"sections,omitempty"`
}

// RiskAssessment is one risk record produced by the risk analyzer.
type RiskAssessment struct {
	Category         string           `json:"category"`
	Severity         Severity         `json:"severity"`
	Description      string           `json:"description"`
	References       []LegalReference `json:"references,omitempty"`
	Impact           string           `json:"impact,omitempty"`
	RequiredAction   string           `json:"required_action,omitempty"`
	ComplianceStatus string           `json:"compliance_status,omitempty"`
	Deadline         string           `json:"deadline,omitempty"`
}

// ComplianceState is the final verdict for a document.
type ComplianceState string

const (
	Compliant    ComplianceState = "compliant"
	NonCompliant ComplianceState = "non_compliant"
	NeedsReview  ComplianceState = "needs_review"
)

// ComplianceStatus carries the verdict plus its supporting detail lines.
type ComplianceStatus struct {
	State   ComplianceState `json:"state"`
	Details []string        `json:"details,omitempty"`
}

// AnalysisStatus distinguishes how much of the document was usable.
type AnalysisStatus string

const (
	// StatusSuccess means the document was fully analyzed.
	StatusSuccess AnalysisStatus = "success"
	// StatusPartial means fields were extracted but with gaps against the
	// resolved template.
	StatusPartial AnalysisStatus = "partial"
	// StatusFailed means extraction yielded nothing useful.
	StatusFailed AnalysisStatus = "failed"
)

// AnalysisResult is the engine's sole output. Created once per invocation
// and never mutated afterward.
type AnalysisResult struct {
	ID               string            `json:"id"`
	FormNumber       string            `json:"form_number,omitempty"`
	DocumentType     DocumentType      `json:"document_type"`
	Fields           ExtractedFields   `json:"fields"`
	ValidationErrors []ValidationError `json:"validation_errors"`
	Risks            []RiskAssessment  `json:"risks"`
	RiskScore        float64           `json:"risk_score"`
	Recommendations  []string          `json:"recommendations"`
	Compliance       ComplianceStatus  `json:"compliance"`
	Summary          string            `json:"summary"`
	Confidence       float64           `json:"confidence"`
	Status           AnalysisStatus    `json:"status"`
	AnalyzedAt       time.Time         `json:"analyzed_at"`
}

// RuleSet is one domain category's cross-field rule collection. Implementations
// are pure: the same field map always yields the same findings.
type RuleSet interface {
	// Category returns the domain category this rule set covers
	// (bankruptcy, proposal, corporate, farming, pension, securities).
	Category() string

	// Evaluate runs every rule in the set against the field map. Missing
	// operands are treated as zero so a rule can still surface a deficiency
	// when a field was never supplied.
	Evaluate(fields ExtractedFields) []ValidationError
}
