package svgadapt

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func transformString(t *testing.T, src string) (*Parsed, *TransformResult) {
	t.Helper()
	parsed := parseString(t, src)
	cls := Classify(parsed.Elements, DefaultRules())
	return parsed, Transform(parsed.Root, cls, DefaultRules())
}

func TestTransformOutlineRect(t *testing.T) {
	parsed, result := transformString(t,
		`<svg><rect width="80" height="80" fill="none" stroke="black" stroke-width="1"/></svg>`)

	assert.Equal(t, 1, result.ColorableCount)
	assert.Equal(t, 0, result.DecorativeCount)

	rect := parsed.Elements[0].Node
	id, _ := rect.Attr("id")
	assert.Equal(t, "area-1", id)
	fill, _ := rect.Attr("fill")
	assert.Equal(t, "none", fill)
	width, _ := rect.Attr("stroke-width")
	assert.Equal(t, "2", width)
}

func TestTransformSequentialIDs(t *testing.T) {
	parsed, result := transformString(t, `<svg>
		<rect width="50" height="50" fill="none" stroke="black"/>
		<circle cx="20" cy="20" r="10" fill="none" stroke="black"/>
		<rect width="30" height="30" fill="none" stroke="black"/>
	</svg>`)

	assert.Equal(t, 3, result.ColorableCount)
	assert.Equal(t, 3, result.Stats.IDsAssigned)
	for i, el := range parsed.Elements {
		id, _ := el.Node.Attr("id")
		assert.Equal(t, fmt.Sprintf("area-%d", i+1), id)
	}
}

func TestTransformOverwritesExistingIDs(t *testing.T) {
	// two pre-existing colliding ids resolve to distinct sequential ones
	parsed, _ := transformString(t, `<svg>
		<rect id="area-1" width="50" height="50" fill="none" stroke="black"/>
		<rect id="area-1" width="30" height="30" fill="none" stroke="black"/>
	</svg>`)

	first, _ := parsed.Elements[0].Node.Attr("id")
	second, _ := parsed.Elements[1].Node.Attr("id")
	assert.Equal(t, "area-1", first)
	assert.Equal(t, "area-2", second)
}

func TestTransformFillClearing(t *testing.T) {
	parsed, result := transformString(t, `<svg>
		<rect width="50" height="50" fill="#ffd5e5"/>
		<rect width="50" height="50" fill="none" stroke="black"/>
	</svg>`)

	assert.Equal(t, 1, result.Stats.FillsCleared)
	fill, _ := parsed.Elements[0].Node.Attr("fill")
	assert.Equal(t, "none", fill)
}

func TestTransformStrokeWidthFloor(t *testing.T) {
	parsed, result := transformString(t, `<svg>
		<rect width="50" height="50" fill="none" stroke="black"/>
		<rect width="50" height="50" fill="none" stroke="black" stroke-width="0.5"/>
		<rect width="50" height="50" fill="none" stroke="black" stroke-width="3.5"/>
	</svg>`)

	assert.Equal(t, 2, result.Stats.StrokesAdjusted)

	for _, el := range parsed.Elements {
		width, ok := el.Node.Attr("stroke-width")
		require.True(t, ok)
		assert.GreaterOrEqual(t, parseLength(width), 2.0)
	}
	// values already at or above the floor are preserved verbatim
	width, _ := parsed.Elements[2].Node.Attr("stroke-width")
	assert.Equal(t, "3.5", width)
}

func TestTransformRemovesPointerEventsOnColorable(t *testing.T) {
	parsed, _ := transformString(t,
		`<svg><rect width="50" height="50" fill="none" stroke="black" pointer-events="none"/></svg>`)

	_, ok := parsed.Elements[0].Node.Attr("pointer-events")
	assert.False(t, ok)
}

func TestTransformDecorative(t *testing.T) {
	parsed, result := transformString(t,
		`<svg><circle id="dot" r="1" fill="black"/></svg>`)

	assert.Equal(t, 1, result.DecorativeCount)
	assert.Equal(t, 1, result.Stats.PointerEventsAdded)
	assert.Equal(t, 0, result.Stats.IDsAssigned)

	dot := parsed.Elements[0].Node
	pe, _ := dot.Attr("pointer-events")
	assert.Equal(t, "none", pe)
	// decorative attributes are left untouched
	id, _ := dot.Attr("id")
	assert.Equal(t, "dot", id)
	fill, _ := dot.Attr("fill")
	assert.Equal(t, "black", fill)
}

func TestTransformDecorativeIdempotentWrites(t *testing.T) {
	parsed := parseString(t, `<svg><circle r="1" fill="black"/></svg>`)
	el := parsed.Elements[0]

	var stats Stats
	transformDecorative(el, &stats)
	transformDecorative(el, &stats)

	pe, _ := el.Node.Attr("pointer-events")
	assert.Equal(t, "none", pe)
	require.Len(t, el.Node.Attrs, 3) // r + fill + pointer-events, no accumulation
	// the counter measures writes, so it moves on every call
	assert.Equal(t, 2, stats.PointerEventsAdded)
}

func TestTransformConservation(t *testing.T) {
	parsed, err := ParseFile("testdata/butterfly.svg")
	require.NoError(t, err)
	cls := Classify(parsed.Elements, DefaultRules())
	result := Transform(parsed.Root, cls, DefaultRules())

	assert.Equal(t, len(parsed.Elements), result.ColorableCount+result.DecorativeCount)
}
