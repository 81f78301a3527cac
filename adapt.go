package svgadapt

import (
	"log/slog"
	"path/filepath"
	"strings"
)

// Options configures one adaptation run.
type Options struct {
	// InputPath is the SVG file to adapt.
	InputPath string
	// OutputPath is where the adapted file is written. Empty means the
	// default path next to the input (see DefaultOutputPath).
	OutputPath string
	// Validate runs the structural audit on the transformed tree.
	Validate bool
	// Interactive is accepted for interface compatibility; manual
	// reclassification is not part of the batch pipeline.
	Interactive bool
	// Rules overrides the classification parameters.
	Rules *Rules
	// Logger receives debug-level stage progress.
	Logger *slog.Logger
}

func (o *Options) defaults() {
	if o.OutputPath == "" {
		o.OutputPath = DefaultOutputPath(o.InputPath)
	}
	if o.Rules == nil {
		rules := DefaultRules()
		o.Rules = &rules
	}
	if o.Logger == nil {
		o.Logger = slog.Default()
	}
}

// AdaptationResult is the outcome of a full pipeline run.
// Validation is nil when the audit stage was skipped.
type AdaptationResult struct {
	Success         bool
	OutputPath      string
	ColorableCount  int
	DecorativeCount int
	Stats           Stats
	Validation      *ValidationResult
}

// DefaultOutputPath derives the output location from the input path:
// same directory, "-adapted" inserted before the extension.
func DefaultOutputPath(inputPath string) string {
	ext := filepath.Ext(inputPath)
	base := strings.TrimSuffix(inputPath, ext)
	return base + "-adapted" + ext
}

// Adapt runs the full pipeline over one file: parse, classify, transform,
// optionally validate, generate. Validation findings never abort the run;
// parse and generate failures do.
func Adapt(opts Options) (*AdaptationResult, error) {
	opts.defaults()
	logger := opts.Logger

	parsed, err := ParseFile(opts.InputPath)
	if err != nil {
		return nil, err
	}
	logger.Debug("parsed input", "path", opts.InputPath, "elements", len(parsed.Elements))

	cls := Classify(parsed.Elements, *opts.Rules)
	logger.Debug("classified elements",
		"colorable", len(cls.Colorable), "decorative", len(cls.Decorative))

	transformed := Transform(parsed.Root, cls, *opts.Rules)

	var validation *ValidationResult
	if opts.Validate {
		validation = Validate(parsed.Root)
		logger.Debug("validated document",
			"valid", validation.Valid,
			"errors", len(validation.Errors), "warnings", len(validation.Warnings))
	}

	generated, err := Generate(parsed.Root, opts.OutputPath, transformed)
	if err != nil {
		return nil, err
	}
	logger.Debug("generated output", "path", generated.OutputPath)

	return &AdaptationResult{
		Success:         true,
		OutputPath:      generated.OutputPath,
		ColorableCount:  transformed.ColorableCount,
		DecorativeCount: transformed.DecorativeCount,
		Stats:           transformed.Stats,
		Validation:      validation,
	}, nil
}
