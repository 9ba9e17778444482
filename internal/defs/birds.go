// internal/defs/birds.go
package defs

import "image/color"

// BirdDefinition holds the static data for one bird kind.
type BirdDefinition struct {
	Kind  BirdKind
	Name  string
	Color color.RGBA
}

// BirdLibrary maps every bird kind to its definition.
var BirdLibrary = map[BirdKind]BirdDefinition{
	BirdStandard:   {Kind: BirdStandard, Name: "Red", Color: color.RGBA{255, 0, 0, 255}},
	BirdSpeedBoost: {Kind: BirdSpeedBoost, Name: "Yellow", Color: color.RGBA{255, 255, 0, 255}},
	BirdSplitter:   {Kind: BirdSplitter, Name: "Blue", Color: color.RGBA{0, 0, 255, 255}},
	BirdAreaDamage: {Kind: BirdAreaDamage, Name: "Black", Color: color.RGBA{0, 0, 0, 255}},
}

// BirdColor returns the render color of a kind.
func BirdColor(kind BirdKind) color.RGBA {
	return BirdLibrary[kind].Color
}
