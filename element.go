// Package svgadapt converts arbitrary SVG artwork into a colorable form:
// every paintable region receives a stable sequential id, predictable
// fill/stroke conventions, and decorative artwork is made inert to pointer
// interaction. The pipeline is Parse -> Classify -> Transform -> Validate
// (optional) -> Generate; Adapt runs the whole chain over a file.
package svgadapt

import (
	"math"
	"strconv"
	"strings"

	"github.com/benoitkugler/svgadapt/svgdom"
)

// shapeTags lists the graphic elements the pipeline operates on. Containers
// (g, defs) and metadata elements are traversed but never classified.
var shapeTags = map[string]bool{
	"path":    true,
	"rect":    true,
	"circle":  true,
	"ellipse": true,
	"polygon": true,
	"line":    true,
}

// Bounds is the axis-aligned extent of a shape, in user units.
type Bounds struct {
	X, Y          float64
	Width, Height float64
	Area          float64
}

// ElementInfo describes one graphic element found in the document.
// The struct mirrors the attributes relevant to classification; Node points
// into the live document tree, so mutations through it are reflected in the
// serialized output.
type ElementInfo struct {
	Node *svgdom.Node

	Tag string
	ID  string

	Fill, Stroke, StrokeWidth string
	HasFill, HasStroke        bool
	HasStrokeWidth            bool

	Bounds Bounds
}

// newElementInfo snapshots the classification-relevant attributes of node.
func newElementInfo(node *svgdom.Node) *ElementInfo {
	el := &ElementInfo{Node: node, Tag: node.Tag}
	el.ID, _ = node.Attr("id")
	el.Fill, el.HasFill = node.Attr("fill")
	el.Stroke, el.HasStroke = node.Attr("stroke")
	el.StrokeWidth, el.HasStrokeWidth = node.Attr("stroke-width")
	el.Bounds = shapeBounds(node)
	return el
}

// parseLength reads a numeric attribute value, tolerating a px suffix and
// surrounding space. Missing or unparsable values yield 0.
func parseLength(v string) float64 {
	v = strings.TrimSpace(v)
	v = strings.TrimSuffix(v, "px")
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0
	}
	return f
}

func lengthAttr(node *svgdom.Node, name string) float64 {
	v, _ := node.Attr(name)
	return parseLength(v)
}

// fallbackSide is the side length of the placeholder box used for shapes
// whose extent cannot be derived from attributes alone. Computing true path
// bounds would need a full path compiler and would reclassify small
// decorative paths, so the placeholder is kept deliberately large.
const fallbackSide = 100

// shapeBounds derives the bounding box of a graphic element from its
// geometric attributes. path and polygon fall back to a fixed nonzero box so
// the area heuristic never mistakes a complex shape for a tiny accent.
func shapeBounds(node *svgdom.Node) Bounds {
	switch node.Tag {
	case "rect":
		w := lengthAttr(node, "width")
		h := lengthAttr(node, "height")
		return Bounds{
			X: lengthAttr(node, "x"), Y: lengthAttr(node, "y"),
			Width: w, Height: h, Area: w * h,
		}
	case "circle":
		cx, cy := lengthAttr(node, "cx"), lengthAttr(node, "cy")
		r := lengthAttr(node, "r")
		return Bounds{
			X: cx - r, Y: cy - r,
			Width: 2 * r, Height: 2 * r, Area: math.Pi * r * r,
		}
	case "ellipse":
		cx, cy := lengthAttr(node, "cx"), lengthAttr(node, "cy")
		rx, ry := lengthAttr(node, "rx"), lengthAttr(node, "ry")
		return Bounds{
			X: cx - rx, Y: cy - ry,
			Width: 2 * rx, Height: 2 * ry, Area: math.Pi * rx * ry,
		}
	case "line":
		x1, y1 := lengthAttr(node, "x1"), lengthAttr(node, "y1")
		x2, y2 := lengthAttr(node, "x2"), lengthAttr(node, "y2")
		w := math.Abs(x2 - x1)
		h := math.Abs(y2 - y1)
		return Bounds{
			X: math.Min(x1, x2), Y: math.Min(y1, y2),
			Width: w, Height: h, Area: w * h,
		}
	}
	// path, polygon
	return Bounds{Width: fallbackSide, Height: fallbackSide, Area: fallbackSide * fallbackSide}
}
