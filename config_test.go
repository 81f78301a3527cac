package svgadapt

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadRulesOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"min_area: 50\ndecorative_colors: [\"#101010\", \"navy\"]\n"), 0o644))

	rules, err := LoadRules(path)
	require.NoError(t, err)
	assert.Equal(t, 50.0, rules.MinArea)
	assert.Equal(t, []string{"#101010", "navy"}, rules.DecorativeColors)
	// untouched fields keep their defaults
	assert.Equal(t, DefaultRules().StrokeFloor, rules.StrokeFloor)
}

func TestLoadRulesMissingFile(t *testing.T) {
	_, err := LoadRules(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadRulesInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.yaml")
	require.NoError(t, os.WriteFile(path, []byte("min_area: [\n"), 0o644))

	_, err := LoadRules(path)
	assert.Error(t, err)
}
