package svgadapt

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/benoitkugler/svgadapt/svgdom"
)

const (
	svgNamespace   = "http://www.w3.org/2000/svg"
	xmlDeclaration = `<?xml version="1.0" encoding="UTF-8"?>`
)

// GenerateError reports a failure to serialize or persist the output
// document: missing output directory, permission problems, or a low-level
// write failure.
type GenerateError struct {
	Msg   string
	Cause error
}

func (e *GenerateError) Error() string { return e.Msg }

func (e *GenerateError) Unwrap() error { return e.Cause }

// GenerateStats is the summary handed back to the caller, a pass-through of
// the transform bookkeeping.
type GenerateStats struct {
	ColorableAreas     int
	DecorativeElements int
	IDsAssigned        int
	StrokesAdjusted    int
	FillsCleared       int
	PointerEventsAdded int
}

// GenerateResult reports a successful generation.
type GenerateResult struct {
	OutputPath string
	Stats      GenerateStats
}

// Generate serializes the transformed tree to outputPath: SVG namespace
// guaranteed on the root, XML declaration prepended, one tag per line with
// two-space indentation.
func Generate(root *svgdom.Node, outputPath string, result *TransformResult) (*GenerateResult, error) {
	if _, ok := root.Attr("xmlns"); !ok {
		root.SetAttr("xmlns", svgNamespace)
	}

	// the serializer never emits a prolog, so the declaration always goes first
	var buf bytes.Buffer
	buf.WriteString(xmlDeclaration)
	buf.WriteByte('\n')
	buf.WriteString(root.String())

	if err := os.WriteFile(outputPath, buf.Bytes(), 0o644); err != nil {
		switch {
		case os.IsNotExist(err):
			return nil, &GenerateError{
				Msg:   fmt.Sprintf("output directory does not exist: %s", filepath.Dir(outputPath)),
				Cause: err,
			}
		case os.IsPermission(err):
			return nil, &GenerateError{
				Msg:   fmt.Sprintf("permission denied: %s", outputPath),
				Cause: err,
			}
		}
		return nil, &GenerateError{
			Msg:   fmt.Sprintf("writing %s: %v", outputPath, err),
			Cause: err,
		}
	}

	return &GenerateResult{
		OutputPath: outputPath,
		Stats: GenerateStats{
			ColorableAreas:     result.ColorableCount,
			DecorativeElements: result.DecorativeCount,
			IDsAssigned:        result.Stats.IDsAssigned,
			StrokesAdjusted:    result.Stats.StrokesAdjusted,
			FillsCleared:       result.Stats.FillsCleared,
			PointerEventsAdded: result.Stats.PointerEventsAdded,
		},
	}, nil
}
