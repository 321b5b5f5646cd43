package units

import (
	"fmt"

	"github.com/goccy/go-yaml"

	"github.com/unitful-go/unitful/internal/quantity"
)

// unitDefinition is one entry of a YAML definition table:
//
//	units:
//	  - name: furlong
//	    dimensions: {length: 1}
//	    scale: 201.168
//	  - name: degF
//	    dimensions: {temperature: 1}
//	    scale: 0.5555555555555556
//	    offset: 255.37222222222223
//
// Scale defaults to 1 when omitted.
type unitDefinition struct {
	Name       string          `yaml:"name"`
	Dimensions map[string]int8 `yaml:"dimensions"`
	Scale      *float64        `yaml:"scale"`
	Offset     float64         `yaml:"offset"`
}

type definitionFile struct {
	Units []unitDefinition `yaml:"units"`
}

// dimensionByName maps YAML dimension keys to base dimensions.
var dimensionByName = map[string]quantity.Dimension{
	"length":      quantity.Length,
	"mass":        quantity.Mass,
	"time":        quantity.Time,
	"current":     quantity.Current,
	"temperature": quantity.Temperature,
	"amount":      quantity.Amount,
	"luminosity":  quantity.Luminosity,
	"angle":       quantity.Angle,
}

// LoadDefinitions registers every unit from a YAML definition table.
// Definitions are data only: there is no unit-expression parsing.
func (r *Registry) LoadDefinitions(data []byte) error {
	var file definitionFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("parse unit definitions: %w", err)
	}

	for i, def := range file.Units {
		var dims quantity.Dimensions
		for name, exp := range def.Dimensions {
			d, ok := dimensionByName[name]
			if !ok {
				return fmt.Errorf("unit definition %d (%q): unknown dimension %q", i, def.Name, name)
			}
			dims[d] = exp
		}
		scale := 1.0
		if def.Scale != nil {
			scale = *def.Scale
		}
		if _, err := r.Define(def.Name, dims, scale, def.Offset); err != nil {
			return fmt.Errorf("unit definition %d: %w", i, err)
		}
	}
	return nil
}
