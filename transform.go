package svgadapt

import (
	"strconv"

	"github.com/benoitkugler/svgadapt/svgdom"
)

// Stats counts the attribute writes performed by the transform stage.
type Stats struct {
	IDsAssigned        int
	StrokesAdjusted    int
	FillsCleared       int
	PointerEventsAdded int
}

// TransformResult reports the outcome of the transform stage. The tree is
// mutated in place; Root is the same node that was passed in.
type TransformResult struct {
	Root            *svgdom.Node
	ColorableCount  int
	DecorativeCount int
	Stats           Stats
}

// Transform rewrites the document tree according to the classification:
// colorable elements receive sequential area-N ids and outline conventions,
// decorative elements are made inert to pointer interaction. Colorable
// elements are processed in classification order, which is document order,
// so ids follow paint z-order.
func Transform(root *svgdom.Node, cls Classification, rules Rules) *TransformResult {
	result := &TransformResult{
		Root:            root,
		ColorableCount:  len(cls.Colorable),
		DecorativeCount: len(cls.Decorative),
	}
	for i, el := range cls.Colorable {
		transformColorable(el, i+1, rules.StrokeFloor, &result.Stats)
	}
	for _, el := range cls.Decorative {
		transformDecorative(el, &result.Stats)
	}
	return result
}

// transformColorable normalizes one paintable region, as sequence number seq.
func transformColorable(el *ElementInfo, seq int, strokeFloor float64, stats *Stats) {
	// a pre-existing id is overwritten: area ids must be dense and sequential
	id := "area-" + strconv.Itoa(seq)
	el.Node.SetAttr("id", id)
	el.ID = id
	stats.IDsAssigned++

	if el.HasFill && el.Fill != "none" {
		el.Node.SetAttr("fill", "none")
		el.Fill = "none"
		stats.FillsCleared++
	}

	if !el.HasStrokeWidth || parseLength(el.StrokeWidth) < strokeFloor {
		width := strconv.FormatFloat(strokeFloor, 'f', -1, 64)
		el.Node.SetAttr("stroke-width", width)
		el.StrokeWidth = width
		el.HasStrokeWidth = true
		stats.StrokesAdjusted++
	}

	// paintable regions must always be clickable
	el.Node.RemoveAttr("pointer-events")
}

// transformDecorative marks one decorative element inert. The write is
// idempotent on the tree, but the counter measures writes, not state
// changes: calling this twice counts twice.
func transformDecorative(el *ElementInfo, stats *Stats) {
	el.Node.SetAttr("pointer-events", "none")
	stats.PointerEventsAdded++
}
