// internal/defs/materials.go
package defs

import "image/color"

// MaterialDefinition holds the static data for one block material.
type MaterialDefinition struct {
	Material  Material
	MaxHealth int
	Color     color.RGBA
}

// MaterialLibrary maps every material to its definition.
var MaterialLibrary = map[Material]MaterialDefinition{
	MaterialWood:      {Material: MaterialWood, MaxHealth: 100, Color: color.RGBA{139, 69, 19, 255}},
	MaterialStone:     {Material: MaterialStone, MaxHealth: 200, Color: color.RGBA{128, 128, 128, 255}},
	MaterialExplosive: {Material: MaterialExplosive, MaxHealth: 50, Color: color.RGBA{0, 255, 0, 255}},
}

// MaxHealthFor returns the starting health of a block made of m.
func MaxHealthFor(m Material) int {
	return MaterialLibrary[m].MaxHealth
}

// MaterialColor returns the render color of m.
func MaterialColor(m Material) color.RGBA {
	return MaterialLibrary[m].Color
}
