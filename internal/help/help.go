// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package help

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
)

// RuleInfo contains standardized information about a rule set
type RuleInfo struct {
	Name                string   // Name of the rule set (e.g., "PROPOSAL")
	ShortDescription    string   // Short description for the rules list
	DetailedDescription string   // Detailed description of what the rule set checks
	Rules               []Rule   // Individual rules within the set
	Frameworks          []string // Regulatory frameworks the rules derive from
	FieldsConsulted     []string // Extracted fields the rules read
	Examples            []string // Usage examples
}

// Rule describes one named check within a rule set
type Rule struct {
	Code        string // Stable rule code (e.g., "LOW_PROPOSAL_RATIO")
	Kind        string // error, warning, or regulatory
	Description string // What the rule checks and when it fires
}

// Provider defines the interface for help content providers
type Provider interface {
	GetRuleInfo() RuleInfo
}

// System manages help content for the application
type System struct {
	providers map[string]Provider
	noColor   bool
	colors    map[string]*color.Color
}

// NewSystem creates a new help system
func NewSystem(noColor bool) *System {
	if noColor {
		color.NoColor = true
	}

	return &System{
		providers: make(map[string]Provider),
		noColor:   noColor,
		colors: map[string]*color.Color{
			"title":    color.New(color.FgWhite, color.Bold),
			"subtitle": color.New(color.FgCyan, color.Bold),
			"header":   color.New(color.FgBlue, color.Bold),
			"item":     color.New(color.FgCyan),
			"emphasis": color.New(color.FgWhite, color.Bold),
			"positive": color.New(color.FgGreen),
			"negative": color.New(color.FgRed),
			"warning":  color.New(color.FgYellow),
			"example":  color.New(color.FgMagenta),
		},
	}
}

// RegisterProvider adds a help provider to the system
func (h *System) RegisterProvider(provider Provider) {
	info := provider.GetRuleInfo()
	h.providers[strings.ToLower(info.Name)] = provider
}

// ShowGeneralHelp displays general help information
func (h *System) ShowGeneralHelp() {
	h.colors["title"].Println("Formscan - Insolvency Form Analysis & Compliance Risk Engine")
	fmt.Println("============================================================")
	fmt.Println()
	h.colors["header"].Println("USAGE:")
	fmt.Println("  formscan --file <path-to-document> [options]")
	fmt.Println("  formscan --serve [--port <port>]  # Web server mode")
	fmt.Println()

	h.colors["header"].Println("OPTIONS:")

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "  --file\t<path>\tPath to the document to analyze (required unless --serve)")
	fmt.Fprintln(w, "  --form\t<number>\tDeclared form number, overrides header detection (e.g., 47)")
	fmt.Fprintln(w, "  --config\t<path>\tPath to configuration file (YAML)")
	fmt.Fprintln(w, "  --profile\t<name>\tProfile name to use from config file")
	fmt.Fprintln(w, "  --list-profiles\t\tList available profiles in config file")
	fmt.Fprintln(w, "  --format\t<format>\tOutput format: text, json, csv, yaml (default: text)")
	fmt.Fprintln(w, "  --categories\t<list>\tRule categories to run: bankruptcy,proposal,corporate,farming,pension,securities,all (default: all)")
	fmt.Fprintln(w, "  --include-regulatory\t\tInclude regulatory findings in the compliance verdict (default: true)")
	fmt.Fprintln(w, "  --verbose\t\tDisplay detailed information for each finding")
	fmt.Fprintln(w, "  --output\t<path>\tPath to output file (if not specified, output to stdout)")
	fmt.Fprintln(w, "  --no-color\t\tDisable colored output")
	fmt.Fprintln(w, "  --list-forms\t\tList every catalogued form template and exit")
	fmt.Fprintln(w, "  --serve\t\tStart web server mode instead of CLI analysis")
	fmt.Fprintln(w, "  --port\t<port>\tPort for web server (default: 8080, only used with --serve)")
	fmt.Fprintln(w, "  --quiet\t\tSuppress progress output (useful for scripts)")
	fmt.Fprintln(w, "  --version\t\tShow version information")
	fmt.Fprintln(w, "  --help\t\tShow this help message")
	fmt.Fprintln(w, "  --help rules\t\tList all available rule sets")
	fmt.Fprintln(w, "  --help <rule-set>\tShow detailed help for a specific rule set")
	w.Flush()

	fmt.Println()
	h.colors["header"].Println("EXAMPLES:")
	fmt.Println("  Basic Usage:")
	h.colors["example"].Println("    formscan --file statement-of-affairs.pdf")
	h.colors["example"].Println("    formscan --file proposal.txt --form 47 --verbose")
	fmt.Println("  Configuration and Profiles:")
	h.colors["example"].Println("    formscan --file estate.pdf --config formscan.yaml --profile trustee-review")
	h.colors["example"].Println("    formscan --list-profiles --config formscan.yaml")

	fmt.Println()
	h.colors["header"].Println("Web Server Examples:")
	h.colors["example"].Println("  formscan --serve  # Start web server on default port")
	h.colors["example"].Println("  formscan --serve --port 9000")

	fmt.Println()
	h.colors["header"].Println("CONFIGURATION:")
	fmt.Println("  Default config: ~/.formscan/config.yaml")
	fmt.Println("  Project config: formscan.yaml or .formscan.yaml (in current directory)")
	fmt.Println("  Environment: FORMSCAN_CONFIG_DIR - Override config directory")
}

// ShowRulesHelp displays information about all available rule sets
func (h *System) ShowRulesHelp() {
	h.colors["title"].Println("Available Rule Sets in Formscan")
	fmt.Println("===============================")
	fmt.Println()
	fmt.Println("The following rule sets are available for cross-field validation:")
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	h.colors["header"].Fprintln(w, "  RULE SET\tDESCRIPTION")
	h.colors["header"].Fprintln(w, "  --------\t-----------")

	var names []string
	for _, provider := range h.providers {
		names = append(names, provider.GetRuleInfo().Name)
	}
	sort.Strings(names)

	for _, name := range names {
		provider := h.providers[strings.ToLower(name)]
		info := provider.GetRuleInfo()
		fmt.Fprintf(w, "  ")
		h.colors["emphasis"].Fprintf(w, "%s", info.Name)
		fmt.Fprintf(w, "\t%s\n", info.ShortDescription)
	}
	w.Flush()

	fmt.Println()
	fmt.Println("For detailed information about a specific rule set, use:")
	h.colors["example"].Println("  formscan --help <rule-set>")
}

// ShowRuleHelp displays detailed help for a specific rule set
func (h *System) ShowRuleHelp(name string) bool {
	provider, exists := h.providers[strings.ToLower(name)]
	if !exists {
		h.colors["negative"].Printf("Error: Rule set '%s' not found.\n", name)
		fmt.Println("Use 'formscan --help rules' to see a list of available rule sets.")
		return false
	}

	info := provider.GetRuleInfo()

	h.colors["title"].Printf("%s Rules\n", info.Name)
	fmt.Println(strings.Repeat("=", len(info.Name)+6))
	fmt.Println()
	fmt.Println(info.DetailedDescription)
	fmt.Println()

	if len(info.Rules) > 0 {
		h.colors["header"].Println("RULES:")
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		for _, r := range info.Rules {
			fmt.Fprintf(w, "  ")
			h.colors["emphasis"].Fprintf(w, "%s", r.Code)
			fmt.Fprintf(w, "\t[%s]\t%s\n", h.kindLabel(r.Kind), r.Description)
		}
		w.Flush()
		fmt.Println()
	}

	if len(info.FieldsConsulted) > 0 {
		h.colors["header"].Println("FIELDS CONSULTED:")
		for _, f := range info.FieldsConsulted {
			fmt.Print("  - ")
			h.colors["item"].Println(f)
		}
		fmt.Println()
	}

	if len(info.Frameworks) > 0 {
		h.colors["header"].Println("REGULATORY FRAMEWORKS:")
		for _, fw := range info.Frameworks {
			fmt.Print("  - ")
			h.colors["item"].Println(fw)
		}
		fmt.Println()
	}

	if len(info.Examples) > 0 {
		h.colors["header"].Println("EXAMPLES:")
		for _, example := range info.Examples {
			fmt.Print("  ")
			h.colors["example"].Println(example)
		}
	}

	return true
}

func (h *System) kindLabel(kind string) string {
	switch kind {
	case "error":
		return h.colors["negative"].Sprint("error")
	case "regulatory":
		return h.colors["warning"].Sprint("regulatory")
	default:
		return h.colors["positive"].Sprint(kind)
	}
}
