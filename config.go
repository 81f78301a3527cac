package svgadapt

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadRules reads classification parameters from a YAML file. Missing fields
// keep their default value, so a rules file only needs to name what it
// overrides:
//
//	min_area: 50
//	decorative_colors: ["#000000", "white", "#ffe0e0"]
func LoadRules(path string) (Rules, error) {
	rules := DefaultRules()
	data, err := os.ReadFile(path)
	if err != nil {
		return rules, fmt.Errorf("reading rules file: %w", err)
	}
	if err := yaml.Unmarshal(data, &rules); err != nil {
		return rules, fmt.Errorf("parsing rules file %s: %w", path, err)
	}
	if rules.MinArea <= 0 {
		rules.MinArea = DefaultRules().MinArea
	}
	if rules.StrokeFloor <= 0 {
		rules.StrokeFloor = DefaultRules().StrokeFloor
	}
	if len(rules.DecorativeColors) == 0 {
		rules.DecorativeColors = DefaultRules().DecorativeColors
	}
	return rules, nil
}
