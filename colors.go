package svgadapt

import (
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// resolveColor normalizes a fill/stroke attribute value to an RGBA color.
// Hex literals (#RGB and #RRGGBB) are parsed directly, CSS color names are
// resolved through the SVG 1.1 color table, case-insensitively. Paint values
// outside those forms (none, url(...), rgb(...)) do not resolve.
func resolveColor(v string) (color.RGBA, bool) {
	v = strings.ToLower(strings.TrimSpace(v))
	if v == "" || v == "none" {
		return color.RGBA{}, false
	}
	if strings.HasPrefix(v, "#") {
		return parseHexColor(v[1:])
	}
	c, ok := colornames.Map[v]
	return c, ok
}

func parseHexColor(hex string) (color.RGBA, bool) {
	switch len(hex) {
	case 3:
		var expanded [6]byte
		for i := 0; i < 3; i++ {
			expanded[2*i] = hex[i]
			expanded[2*i+1] = hex[i]
		}
		hex = string(expanded[:])
	case 6:
	default:
		return color.RGBA{}, false
	}
	n, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, false
	}
	return color.RGBA{
		R: uint8(n >> 16),
		G: uint8(n >> 8),
		B: uint8(n),
		A: 0xff,
	}, true
}

// colorSet is a resolved set of colors, compared by value so that case
// variants and #RGB/#RRGGBB aliases of a member match.
type colorSet map[color.RGBA]struct{}

func newColorSet(values []string) colorSet {
	set := make(colorSet, len(values))
	for _, v := range values {
		if c, ok := resolveColor(v); ok {
			set[c] = struct{}{}
		}
	}
	return set
}

func (s colorSet) contains(v string) bool {
	c, ok := resolveColor(v)
	if !ok {
		return false
	}
	_, in := s[c]
	return in
}
