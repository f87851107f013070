// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package text

import (
	"fmt"
	"sort"
	"strings"

	"github.com/fatih/color"

	"formscan/internal/findings"
	"formscan/internal/formatters"
)

// Formatter implements human-readable text output
type Formatter struct{}

// NewFormatter creates a new text formatter
func NewFormatter() *Formatter {
	return &Formatter{}
}

func (f *Formatter) Name() string {
	return "text"
}

func (f *Formatter) Description() string {
	return "Human-readable report grouped by severity"
}

func (f *Formatter) FileExtension() string {
	return ".txt"
}

func (f *Formatter) Format(result *findings.AnalysisResult, options formatters.FormatterOptions) (string, error) {
	if options.NoColor {
		color.NoColor = true
	}

	var b strings.Builder

	title := color.New(color.FgWhite, color.Bold)
	header := color.New(color.FgBlue, color.Bold)

	title.Fprintln(&b, "Formscan Analysis Report")
	fmt.Fprintln(&b, "========================")
	fmt.Fprintln(&b)

	if result.FormNumber != "" {
		fmt.Fprintf(&b, "Form:           %s\n", result.FormNumber)
	}
	fmt.Fprintf(&b, "Classification: %s\n", result.DocumentType)
	fmt.Fprintf(&b, "Status:         %s\n", result.Status)
	fmt.Fprintf(&b, "Confidence:     %.0f%%\n", result.Confidence*100)
	fmt.Fprintf(&b, "Risk score:     %.1f\n", result.RiskScore)
	fmt.Fprintf(&b, "Verdict:        %s\n", f.verdict(result.Compliance.State))
	fmt.Fprintln(&b)

	if len(result.ValidationErrors) > 0 {
		header.Fprintln(&b, "VALIDATION FINDINGS:")
		for _, e := range result.ValidationErrors {
			fmt.Fprintf(&b, "  %s %s: %s\n", f.kind(e.Kind), e.Code, e.Message)
			if options.Verbose && e.Regulation != nil {
				fmt.Fprintf(&b, "      regulation: %s %s\n", e.Regulation.Framework, e.Regulation.Section)
			}
			if options.Verbose {
				for _, k := range sortedKeys(e.Context) {
					fmt.Fprintf(&b, "      %s: %s\n", k, e.Context[k])
				}
			}
		}
		fmt.Fprintln(&b)
	}

	if len(result.Risks) > 0 {
		header.Fprintln(&b, "RISKS:")
		for _, severity := range []findings.Severity{findings.SeverityHigh, findings.SeverityMedium, findings.SeverityLow} {
			for _, r := range result.Risks {
				if r.Severity != severity {
					continue
				}
				fmt.Fprintf(&b, "  %s [%s] %s\n", f.severity(r.Severity), r.Category, r.Description)
				if options.Verbose {
					if r.Impact != "" {
						fmt.Fprintf(&b, "      impact: %s\n", r.Impact)
					}
					for _, ref := range r.References {
						fmt.Fprintf(&b, "      reference: %s %s\n", ref.Source, ref.Reference)
					}
				}
			}
		}
		fmt.Fprintln(&b)
	}

	if len(result.Recommendations) > 0 {
		header.Fprintln(&b, "RECOMMENDATIONS:")
		for _, rec := range result.Recommendations {
			fmt.Fprintf(&b, "  - %s\n", rec)
		}
		fmt.Fprintln(&b)
	}

	if options.Verbose && len(result.Fields) > 0 {
		header.Fprintln(&b, "EXTRACTED FIELDS:")
		for _, k := range sortedKeys(result.Fields) {
			fmt.Fprintf(&b, "  %-18s %s\n", k+":", result.Fields[k])
		}
		fmt.Fprintln(&b)
	}

	fmt.Fprintln(&b, result.Summary)

	return b.String(), nil
}

func (f *Formatter) verdict(state findings.ComplianceState) string {
	switch state {
	case findings.Compliant:
		return color.GreenString(string(state))
	case findings.NonCompliant:
		return color.RedString(string(state))
	default:
		return color.YellowString(string(state))
	}
}

func (f *Formatter) kind(k findings.Kind) string {
	switch k {
	case findings.KindError:
		return color.RedString("[error]")
	case findings.KindRegulatory:
		return color.YellowString("[regulatory]")
	default:
		return color.YellowString("[warning]")
	}
}

func (f *Formatter) severity(s findings.Severity) string {
	switch s {
	case findings.SeverityHigh:
		return color.RedString("HIGH")
	case findings.SeverityMedium:
		return color.YellowString("MEDIUM")
	default:
		return color.GreenString("LOW")
	}
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Register the formatter during package initialization
func init() {
	formatters.Register(NewFormatter())
}
