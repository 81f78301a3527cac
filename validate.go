package svgadapt

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/benoitkugler/svgadapt/svgdom"
)

var areaIDPattern = regexp.MustCompile(`^area-\d+$`)

// ValidationResult is the outcome of the structural audit. Errors make the
// document invalid; warnings are advisory. Suggestions give one remediation
// per distinct problem category.
type ValidationResult struct {
	Valid              bool
	Errors             []string
	Warnings           []string
	ColorableAreas     []string
	DecorativeElements []string
	Suggestions        []string
}

// Validate audits the transformed tree without trusting the transform
// stage's bookkeeping. It re-derives decorativeness from structure alone:
// an element is decorative when it is inert to pointer events or its fill
// comes from the decorative palette. The check is deliberately simpler than
// the classifier so the two stay independent.
func Validate(root *svgdom.Node) *ValidationResult {
	result := &ValidationResult{}
	decorative := newColorSet(defaultDecorativeColors)

	seen := make(map[string]bool)
	index := 0
	root.Walk(func(node *svgdom.Node) {
		if !shapeTags[node.Tag] {
			return
		}
		index++

		id, _ := node.Attr("id")
		if areaIDPattern.MatchString(id) {
			if seen[id] {
				result.Errors = append(result.Errors, fmt.Sprintf("duplicate ID: %s", id))
			}
			seen[id] = true
		}

		label := id
		if label == "" {
			label = fmt.Sprintf("%s[%d]", node.Tag, index)
		}

		pointerEvents, _ := node.Attr("pointer-events")
		fill, _ := node.Attr("fill")
		byColor := decorative.contains(fill)
		switch {
		case pointerEvents == "none" || byColor:
			result.DecorativeElements = append(result.DecorativeElements, label)
			if byColor && pointerEvents != "none" {
				result.Warnings = append(result.Warnings,
					fmt.Sprintf("decorative element %s missing pointer-events=none", label))
			}
		case areaIDPattern.MatchString(id):
			result.ColorableAreas = append(result.ColorableAreas, id)
		}
	})

	if len(result.ColorableAreas) == 0 {
		result.Warnings = append(result.Warnings, "no colorable areas found")
	}

	result.Suggestions = suggestions(result)
	result.Valid = len(result.Errors) == 0
	return result
}

// suggestions maps each distinct problem category to one actionable
// remediation.
func suggestions(result *ValidationResult) []string {
	var out []string
	if containsPrefix(result.Errors, "duplicate ID") {
		out = append(out, "fix duplicate IDs so every colorable area is uniquely addressable")
	}
	if containsPrefix(result.Warnings, "decorative element") {
		out = append(out, `add pointer-events="none" to decorative elements`)
	}
	if containsPrefix(result.Warnings, "no colorable areas") {
		out = append(out, "check that the drawing has outline shapes left to paint")
	}
	return out
}

func containsPrefix(findings []string, prefix string) bool {
	for _, f := range findings {
		if strings.HasPrefix(f, prefix) {
			return true
		}
	}
	return false
}
