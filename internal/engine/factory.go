// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package engine

import (
	"fmt"
	"strings"

	"formscan/internal/findings"
	"formscan/internal/rules/bankruptcy"
	"formscan/internal/rules/corporate"
	"formscan/internal/rules/farming"
	"formscan/internal/rules/pension"
	"formscan/internal/rules/proposal"
	"formscan/internal/rules/securities"
)

// AllCategories lists every domain rule-set category in display order.
var AllCategories = []string{"bankruptcy", "proposal", "corporate", "farming", "pension", "securities"}

// BuildRuleSets constructs the cross-field rule sets filtered by the enabled
// categories map. Dispatch at analysis time is a single map lookup on the
// resolved template's category.
func BuildRuleSets(enabled map[string]bool) map[string]findings.RuleSet {
	result := make(map[string]findings.RuleSet)

	if enabled["bankruptcy"] {
		result["bankruptcy"] = bankruptcy.New()
	}
	if enabled["proposal"] {
		result["proposal"] = proposal.New()
	}
	if enabled["corporate"] {
		result["corporate"] = corporate.New()
	}
	if enabled["farming"] {
		result["farming"] = farming.New()
	}
	if enabled["pension"] {
		result["pension"] = pension.New()
	}
	if enabled["securities"] {
		result["securities"] = securities.New()
	}

	return result
}

// ParseCategories parses a comma-separated category list into an enabled
// map. "all" (or an empty string) enables every category.
func ParseCategories(s string) (map[string]bool, error) {
	enabled := make(map[string]bool)

	trimmed := strings.TrimSpace(s)
	if trimmed == "" || strings.EqualFold(trimmed, "all") {
		for _, c := range AllCategories {
			enabled[c] = true
		}
		return enabled, nil
	}

	known := make(map[string]bool, len(AllCategories))
	for _, c := range AllCategories {
		known[c] = true
	}

	for _, part := range strings.Split(trimmed, ",") {
		c := strings.ToLower(strings.TrimSpace(part))
		if c == "" {
			continue
		}
		if c == "all" {
			for _, k := range AllCategories {
				enabled[k] = true
			}
			continue
		}
		if !known[c] {
			return nil, fmt.Errorf("unknown rule category %q (valid: %s, all)", c, strings.Join(AllCategories, ", "))
		}
		enabled[c] = true
	}

	return enabled, nil
}
