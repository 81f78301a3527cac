package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/benoitkugler/svgadapt"
	"golang.org/x/term"
)

const helpBanner = `
┌─┐┬  ┬┌─┐┌─┐┌┬┐┌─┐┌─┐┌┬┐
└─┐└┐┌┘│ ┬├─┤ ││├─┤├─┘ │
└─┘ └┘ └─┘┴ ┴─┴┘┴ ┴┴   ┴

Adapts hand-drawn SVG artwork into colorable drawings.
    Version: %s

`

// Version indicates the current build version.
var Version string

var (
	source      = flag.String("in", "", "Source SVG file")
	destination = flag.String("out", "", "Destination file (default: <source>-adapted.svg)")
	validate    = flag.Bool("validate", false, "Audit the adapted document and report findings")
	interactive = flag.Bool("interactive", false, "Reserved; manual reclassification is not implemented")
	rulesFile   = flag.String("rules", "", "YAML file overriding the classification rules")
)

// messageType selects the color a message is decorated with.
type messageType int

const (
	defaultMessage messageType = iota
	successMessage
	errorMessage
	statusMessage
)

// Colors used across the CLI output.
const (
	defaultColor = "\x1b[0m"
	statusColor  = "\x1b[36m"
	successColor = "\x1b[32m"
	errorColor   = "\x1b[31m"
)

var useColor = term.IsTerminal(int(os.Stdout.Fd()))

// decorate shows the message types in different colors on terminals.
func decorate(s string, msgType messageType) string {
	if !useColor {
		return s
	}
	switch msgType {
	case defaultMessage:
		s = defaultColor + s
	case statusMessage:
		s = statusColor + s
	case successMessage:
		s = successColor + s
	case errorMessage:
		s = errorColor + s
	default:
		return s
	}
	return s + defaultColor
}

func main() {
	log.SetFlags(0)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, helpBanner, Version)
		flag.PrintDefaults()
	}
	flag.Parse()

	if *source == "" && flag.NArg() > 0 {
		*source = flag.Arg(0)
	}
	if *source == "" {
		flag.Usage()
		os.Exit(2)
	}

	opts := svgadapt.Options{
		InputPath:   *source,
		OutputPath:  *destination,
		Validate:    *validate,
		Interactive: *interactive,
	}
	if *rulesFile != "" {
		rules, err := svgadapt.LoadRules(*rulesFile)
		if err != nil {
			log.Fatal(decorate(err.Error(), errorMessage))
		}
		opts.Rules = &rules
	}

	result, err := svgadapt.Adapt(opts)
	if err != nil {
		log.Fatal(decorate(err.Error(), errorMessage))
	}

	fmt.Printf("%s %s\n",
		decorate("✓ adapted", successMessage),
		decorate(result.OutputPath, defaultMessage))
	fmt.Printf("  colorable areas:      %d\n", result.ColorableCount)
	fmt.Printf("  decorative elements:  %d\n", result.DecorativeCount)
	fmt.Printf("  ids assigned:         %d\n", result.Stats.IDsAssigned)
	fmt.Printf("  strokes adjusted:     %d\n", result.Stats.StrokesAdjusted)
	fmt.Printf("  fills cleared:        %d\n", result.Stats.FillsCleared)
	fmt.Printf("  pointer-events added: %d\n", result.Stats.PointerEventsAdded)

	if v := result.Validation; v != nil {
		printValidation(v)
		if !v.Valid {
			os.Exit(1)
		}
	}
}

func printValidation(v *svgadapt.ValidationResult) {
	if v.Valid && len(v.Warnings) == 0 {
		fmt.Println(decorate("validation passed", successMessage))
		return
	}
	for _, e := range v.Errors {
		fmt.Printf("%s %s\n", decorate("error:", errorMessage), e)
	}
	for _, w := range v.Warnings {
		fmt.Printf("%s %s\n", decorate("warning:", statusMessage), w)
	}
	for _, s := range v.Suggestions {
		fmt.Printf("%s %s\n", decorate("suggestion:", statusMessage), s)
	}
}
