// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package csv

import (
	"encoding/csv"
	"fmt"
	"strings"

	"formscan/internal/findings"
	"formscan/internal/formatters"
)

// Formatter implements CSV output formatting. Each finding and risk becomes
// one row so results from many documents concatenate into one spreadsheet.
type Formatter struct{}

// NewFormatter creates a new CSV formatter
func NewFormatter() *Formatter {
	return &Formatter{}
}

func (f *Formatter) Name() string {
	return "csv"
}

func (f *Formatter) Description() string {
	return "Comma-separated values for spreadsheet import"
}

func (f *Formatter) FileExtension() string {
	return ".csv"
}

func (f *Formatter) Format(result *findings.AnalysisResult, options formatters.FormatterOptions) (string, error) {
	var b strings.Builder
	w := csv.NewWriter(&b)

	headers := []string{"Result ID", "Form", "Record Type", "Code", "Severity", "Field", "Description", "Verdict"}
	if err := w.Write(headers); err != nil {
		return "", fmt.Errorf("error writing CSV: %w", err)
	}

	for _, e := range result.ValidationErrors {
		row := []string{
			result.ID,
			result.FormNumber,
			"validation",
			e.Code,
			string(e.Kind),
			e.Field,
			e.Message,
			string(result.Compliance.State),
		}
		if err := w.Write(row); err != nil {
			return "", fmt.Errorf("error writing CSV: %w", err)
		}
	}

	for _, r := range result.Risks {
		row := []string{
			result.ID,
			result.FormNumber,
			"risk",
			r.Category,
			string(r.Severity),
			"",
			r.Description,
			string(result.Compliance.State),
		}
		if err := w.Write(row); err != nil {
			return "", fmt.Errorf("error writing CSV: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("error writing CSV: %w", err)
	}
	return b.String(), nil
}

// Register the formatter during package initialization
func init() {
	formatters.Register(NewFormatter())
}
