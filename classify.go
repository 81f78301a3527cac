package svgadapt

// Label is the binary classification assigned to a graphic element.
type Label uint8

const (
	// Colorable marks a blank region meant to be paint-filled by the user.
	Colorable Label = iota
	// Decorative marks pre-rendered artwork that must stay inert.
	Decorative
)

func (l Label) String() string {
	if l == Decorative {
		return "decorative"
	}
	return "colorable"
}

// defaultDecorativeColors are fills that mark an element as pre-rendered
// artwork: pure black/white line art and the neutral grays drawings use for
// shading.
var defaultDecorativeColors = []string{
	"#000000", "#222221", "#B5B5B5", "#FFFFFF",
	"black", "white", "gray", "grey",
}

// Rules parameterizes the classification heuristic. The rule order itself is
// fixed; only thresholds and the decorative color set are data.
type Rules struct {
	// MinArea is the area (square user units) under which a shape is
	// always decoration.
	MinArea float64 `yaml:"min_area"`
	// StrokeFloor is the minimum stroke-width enforced on colorable
	// elements by the transform stage.
	StrokeFloor float64 `yaml:"stroke_floor"`
	// DecorativeColors are fill values treated as pre-rendered artwork.
	DecorativeColors []string `yaml:"decorative_colors"`
}

// DefaultRules returns the standard heuristic parameters.
func DefaultRules() Rules {
	return Rules{
		MinArea:          100,
		StrokeFloor:      2,
		DecorativeColors: defaultDecorativeColors,
	}
}

// Classification partitions the parsed elements: every element appears in
// exactly one of the two lists, each list in document order.
type Classification struct {
	Colorable  []*ElementInfo
	Decorative []*ElementInfo
}

// Total returns the number of classified elements.
func (c Classification) Total() int {
	return len(c.Colorable) + len(c.Decorative)
}

// Classify partitions elements into colorable regions and decorative
// artwork. Pure function: no I/O, deterministic, and it never inspects a
// pre-existing id.
func Classify(elements []*ElementInfo, rules Rules) Classification {
	decorative := newColorSet(rules.DecorativeColors)
	var cls Classification
	for _, el := range elements {
		switch classifyElement(el, rules.MinArea, decorative) {
		case Colorable:
			cls.Colorable = append(cls.Colorable, el)
		case Decorative:
			cls.Decorative = append(cls.Decorative, el)
		}
	}
	return cls
}

// classifyElement applies the ordered heuristic, first match wins. The order
// is load-bearing: an outline shape (fill none + stroke) must be recognized
// before the filled-and-outlined rule sees its stroke.
func classifyElement(el *ElementInfo, minArea float64, decorative colorSet) Label {
	// 1. outline-only shapes are the canonical paintable region
	if el.HasFill && el.Fill == "none" && el.HasStroke {
		return Colorable
	}
	// 2. tiny dots and accents are never meant to be painted
	if el.Bounds.Area < minArea {
		return Decorative
	}
	// 3. fills from the decorative palette mark pre-rendered artwork
	if el.HasFill && decorative.contains(el.Fill) {
		return Decorative
	}
	// 4. filled and outlined means finished artwork, not a blank region
	if el.HasFill && el.Fill != "none" && el.HasStroke {
		return Decorative
	}
	// 5. everything else is paintable
	return Colorable
}
