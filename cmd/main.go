// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
	"text/tabwriter"

	"golang.org/x/term"

	"formscan/internal/config"
	"formscan/internal/engine"
	"formscan/internal/formatters"
	"formscan/internal/help"
	"formscan/internal/observability"
	"formscan/internal/preprocessors"
	"formscan/internal/registry"
	"formscan/internal/web"

	// Import formatters to register them
	_ "formscan/internal/formatters/csv"
	_ "formscan/internal/formatters/json"
	_ "formscan/internal/formatters/text"
	_ "formscan/internal/formatters/yaml"

	"formscan/internal/version"
)

// configFlags holds command line flag values
type configFlags struct {
	outputFormat      string
	categories        string
	includeRegulatory bool
	verbose           bool
	noColor           bool
	quiet             bool
}

// finalConfiguration holds resolved configuration values
type finalConfiguration struct {
	format            string
	categories        string
	includeRegulatory bool
	verbose           bool
	noColor           bool
	quiet             bool
	port              string
}

func main() {
	inputFile := flag.String("file", "", "Path to the document to analyze (text or PDF)")
	formNumber := flag.String("form", "", "Declared form number, overrides header detection (e.g., 47)")
	configFile := flag.String("config", "", "Path to configuration file (YAML)")
	profileName := flag.String("profile", "", "Profile name to use from config file")
	listProfiles := flag.Bool("list-profiles", false, "List available profiles in config file")
	outputFormat := flag.String("format", "", "Output format: text, json, csv, yaml (default: text)")
	categories := flag.String("categories", "", "Rule categories to run: bankruptcy,proposal,corporate,farming,pension,securities or 'all'")
	includeRegulatory := flag.Bool("include-regulatory", true, "Include regulatory findings in the compliance verdict")
	verbose := flag.Bool("verbose", false, "Display detailed information for each finding")
	outputFile := flag.String("output", "", "Path to output file (if not specified, output to stdout)")
	noColor := flag.Bool("no-color", false, "Disable colored output")
	listForms := flag.Bool("list-forms", false, "List every catalogued form template and exit")
	serveMode := flag.Bool("serve", false, "Start web server mode instead of CLI analysis")
	webPort := flag.String("port", "", "Port for web server (default: 8080)")
	quiet := flag.Bool("quiet", false, "Suppress progress output (useful for scripts)")
	showVersion := flag.Bool("version", false, "Show version information")
	showHelp := flag.Bool("help", false, "Show help information")

	flag.Parse()

	if *showVersion {
		fmt.Println(version.Info())
		return
	}

	cfg := config.LoadConfigOrDefault(*configFile)
	activeProfile := handleProfiles(cfg, *listProfiles, *profileName, *configFile)

	flags := &configFlags{
		outputFormat:      *outputFormat,
		categories:        *categories,
		includeRegulatory: *includeRegulatory,
		verbose:           *verbose,
		noColor:           *noColor,
		quiet:             *quiet,
	}
	finalConfig := resolveConfiguration(cfg, activeProfile, flags)
	if *webPort != "" {
		finalConfig.port = *webPort
	}

	// Piped output never gets ANSI codes
	if !isTerminal(os.Stdout) {
		finalConfig.noColor = true
	}

	reg, err := registry.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: form catalog failed to load: %v\n", err)
		os.Exit(1)
	}

	helpSystem := buildHelpSystem(finalConfig.noColor)
	if *showHelp || (flag.NArg() > 0 && flag.Arg(0) == "help") {
		handleHelp(helpSystem, flag.Args())
		return
	}

	if *listForms {
		printFormCatalog(reg)
		return
	}

	enabled, err := engine.ParseCategories(finalConfig.categories)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	level := observability.ObservabilityOff
	if finalConfig.verbose {
		level = observability.ObservabilityDebug
	}
	observer := observability.NewStandardObserver(level, os.Stderr)
	eng := engine.New(reg, engine.BuildRuleSets(enabled), observer)

	if *serveMode {
		if err := web.NewServer(finalConfig.port, eng).Start(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if *inputFile == "" {
		fmt.Fprintln(os.Stderr, "Error: --file is required (or use --serve for web mode)")
		fmt.Fprintln(os.Stderr, "Run 'formscan --help' for usage")
		os.Exit(1)
	}

	doc, err := preprocessors.NewRouter(observer).Process(*inputFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if !finalConfig.quiet && isTerminal(os.Stderr) {
		fmt.Fprintf(os.Stderr, "Analyzing %s (%d page(s), %s)\n", doc.Filename, doc.PageCount, doc.ProcessorType)
	}

	req := engine.NewRequest(doc.Text)
	req.FormNumberHint = *formNumber
	req.IncludeRegulatory = finalConfig.includeRegulatory
	result := eng.Analyze(req)

	output, err := formatters.Export(finalConfig.format, result, formatters.FormatterOptions{
		Verbose: finalConfig.verbose,
		NoColor: finalConfig.noColor || *outputFile != "",
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *outputFile != "" {
		if err := os.WriteFile(*outputFile, []byte(output), 0o600); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing output file: %v\n", err)
			os.Exit(1)
		}
		if !finalConfig.quiet {
			fmt.Fprintf(os.Stderr, "Results written to %s\n", *outputFile)
		}
	} else {
		fmt.Print(output)
		if !strings.HasSuffix(output, "\n") {
			fmt.Println()
		}
	}
}

// handleProfiles lists or selects a configuration profile
func handleProfiles(cfg *config.Config, listProfiles bool, profileName, configFile string) *config.Profile {
	if listProfiles {
		profiles := cfg.ListProfiles()
		if len(profiles) == 0 {
			fmt.Println("No profiles defined in configuration file.")
		} else {
			fmt.Println("Available profiles:")
			for _, name := range profiles {
				profile := cfg.GetProfile(name)
				if profile != nil && profile.Description != "" {
					fmt.Printf("  - %s: %s\n", name, profile.Description)
				} else {
					fmt.Printf("  - %s\n", name)
				}
			}
		}
		os.Exit(0)
	}

	var activeProfile *config.Profile
	if profileName != "" {
		activeProfile = cfg.GetProfile(profileName)
		if activeProfile == nil {
			fmt.Fprintf(os.Stderr, "Error: Profile '%s' not found in config file\n", profileName)
			fmt.Fprintf(os.Stderr, "Check available profiles with --list-profiles\n")
			os.Exit(1)
		}
	}
	return activeProfile
}

// resolveConfiguration resolves final values from config file, profile, and
// command line flags, in ascending precedence.
func resolveConfiguration(cfg *config.Config, activeProfile *config.Profile, flags *configFlags) *finalConfiguration {
	final := &finalConfiguration{}

	final.format = "text"
	if cfg.Defaults.Format != "" {
		final.format = cfg.Defaults.Format
	}
	if activeProfile != nil && activeProfile.Format != "" {
		final.format = activeProfile.Format
	}
	if isFlagSet("format") && flags.outputFormat != "" {
		final.format = flags.outputFormat
	}

	final.categories = "all"
	if cfg.Defaults.Categories != "" {
		final.categories = cfg.Defaults.Categories
	}
	if activeProfile != nil && activeProfile.Categories != "" {
		final.categories = activeProfile.Categories
	}
	if isFlagSet("categories") && flags.categories != "" {
		final.categories = flags.categories
	}

	final.includeRegulatory = cfg.Defaults.IncludeRegulatory
	if activeProfile != nil {
		final.includeRegulatory = activeProfile.IncludeRegulatory
	}
	if isFlagSet("include-regulatory") {
		final.includeRegulatory = flags.includeRegulatory
	}

	final.verbose = cfg.Defaults.Verbose
	if activeProfile != nil {
		final.verbose = activeProfile.Verbose
	}
	if isFlagSet("verbose") {
		final.verbose = flags.verbose
	}

	final.noColor = cfg.Defaults.NoColor
	if activeProfile != nil {
		final.noColor = activeProfile.NoColor
	}
	if isFlagSet("no-color") {
		final.noColor = flags.noColor
	}

	final.quiet = cfg.Defaults.Quiet
	if activeProfile != nil {
		final.quiet = activeProfile.Quiet
	}
	if isFlagSet("quiet") {
		final.quiet = flags.quiet
	}

	final.port = strconv.Itoa(cfg.Server.Port)

	return final
}

// buildHelpSystem registers every rule set's help provider
func buildHelpSystem(noColor bool) *help.System {
	system := help.NewSystem(noColor)
	for _, ruleSet := range engine.BuildRuleSets(mustAllCategories()) {
		if provider, ok := ruleSet.(help.Provider); ok {
			system.RegisterProvider(provider)
		}
	}
	return system
}

func mustAllCategories() map[string]bool {
	enabled, _ := engine.ParseCategories("all")
	return enabled
}

func handleHelp(system *help.System, args []string) {
	// `--help rules` lists rule sets; `--help BANKRUPTCY` drills into one
	topic := ""
	for _, arg := range args {
		if arg != "help" {
			topic = arg
			break
		}
	}

	switch {
	case topic == "":
		system.ShowGeneralHelp()
	case strings.EqualFold(topic, "rules"):
		system.ShowRulesHelp()
	default:
		if !system.ShowRuleHelp(topic) {
			fmt.Fprintf(os.Stderr, "Unknown rule set %q. Run 'formscan --help rules' for the list.\n", topic)
			os.Exit(1)
		}
	}
}

// printFormCatalog lists every template grouped by category
func printFormCatalog(reg *registry.Registry) {
	templates := reg.All()
	sort.Slice(templates, func(i, j int) bool {
		if templates[i].Category != templates[j].Category {
			return templates[i].Category < templates[j].Category
		}
		return templates[i].FormNumber < templates[j].FormNumber
	})

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "FORM\tCATEGORY\tTITLE")
	for _, t := range templates {
		fmt.Fprintf(w, "%s\t%s\t%s\n", t.FormNumber, t.Category, t.Title)
	}
	w.Flush()
	fmt.Printf("\n%d form templates catalogued\n", len(templates))
}

// isFlagSet checks whether a flag was explicitly provided on the command line
func isFlagSet(name string) bool {
	found := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}

// isTerminal checks if the file descriptor is a terminal
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
