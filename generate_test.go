package svgadapt

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/benoitkugler/svgadapt/svgdom"
)

func generateString(t *testing.T, src string) (string, *GenerateResult) {
	t.Helper()
	parsed := parseString(t, src)
	cls := Classify(parsed.Elements, DefaultRules())
	result := Transform(parsed.Root, cls, DefaultRules())

	path := filepath.Join(t.TempDir(), "out.svg")
	generated, err := Generate(parsed.Root, path, result)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data), generated
}

func TestGenerateDeclarationAndNamespace(t *testing.T) {
	out, _ := generateString(t, `<svg><rect width="50" height="50" fill="none" stroke="black"/></svg>`)

	assert.True(t, strings.HasPrefix(out, `<?xml version="1.0" encoding="UTF-8"?>`))
	assert.Contains(t, out, `xmlns="http://www.w3.org/2000/svg"`)
}

func TestGenerateKeepsExistingNamespace(t *testing.T) {
	out, _ := generateString(t, `<svg xmlns="http://www.w3.org/2000/svg"><rect width="50" height="50"/></svg>`)
	assert.Equal(t, 1, strings.Count(out, "xmlns="))
}

func TestGenerateIndentation(t *testing.T) {
	out, _ := generateString(t, `<svg><g><rect width="50" height="50" fill="none" stroke="black"/></g></svg>`)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 6)
	assert.Equal(t, `  <g>`, lines[2])
	assert.True(t, strings.HasPrefix(lines[3], `    <rect`))
}

func TestGenerateStatsPassThrough(t *testing.T) {
	_, generated := generateString(t, `<svg>
		<rect width="50" height="50" fill="none" stroke="black"/>
		<circle r="1" fill="black"/>
	</svg>`)

	assert.Equal(t, 1, generated.Stats.ColorableAreas)
	assert.Equal(t, 1, generated.Stats.DecorativeElements)
	assert.Equal(t, 1, generated.Stats.IDsAssigned)
	assert.Equal(t, 1, generated.Stats.PointerEventsAdded)
}

func TestGenerateMissingDirectory(t *testing.T) {
	parsed := parseString(t, `<svg><rect width="50" height="50"/></svg>`)
	cls := Classify(parsed.Elements, DefaultRules())
	result := Transform(parsed.Root, cls, DefaultRules())

	_, err := Generate(parsed.Root, filepath.Join(t.TempDir(), "nope", "out.svg"), result)
	var gerr *GenerateError
	require.True(t, errors.As(err, &gerr))
	assert.Contains(t, gerr.Error(), "output directory does not exist")
}

func TestGenerateInkscapeRootStaysWellFormed(t *testing.T) {
	out, _ := generateString(t, `<svg xmlns="http://www.w3.org/2000/svg" xmlns:inkscape="http://www.inkscape.org/namespaces/inkscape" version="1.1" inkscape:version="0.92.4">
		<rect width="80" height="80" fill="none" stroke="black"/>
	</svg>`)

	assert.Equal(t, 1, strings.Count(out, "<?xml"))
	assert.Contains(t, out, `version="1.1"`)
	assert.Contains(t, out, `inkscape:version="0.92.4"`)

	reparsed, err := svgdom.Decode(strings.NewReader(out))
	require.NoError(t, err)
	seen := make(map[string]bool)
	for _, a := range reparsed.Attrs {
		require.False(t, seen[a.Name], "duplicate attribute %s", a.Name)
		seen[a.Name] = true
	}
}

func TestGenerateRoundTrip(t *testing.T) {
	out, _ := generateString(t, `<svg viewBox="0 0 200 200">
		<g><rect width="50" height="50" fill="none" stroke="black"/></g>
		<circle cx="100" cy="100" r="40" fill="#ffd5e5"/>
		<circle r="1" fill="black"/>
	</svg>`)

	reparsed, err := Parse(strings.NewReader(out))
	require.NoError(t, err)
	assert.Len(t, reparsed.Elements, 3)
}
