// internal/defs/levels.go
package defs

import (
	"errors"
	"fmt"
	"sort"
)

// ErrInvalidConfiguration is returned when a level has no usable layout.
var ErrInvalidConfiguration = errors.New("invalid configuration")

// BlockSpec places one block, by its center.
type BlockSpec struct {
	X        float64  `json:"x"`
	Y        float64  `json:"y"`
	Material Material `json:"material"`
}

// LevelLayout is everything a level starts with.
type LevelLayout struct {
	Blocks []BlockSpec `json:"blocks"`
	Roster []BirdKind  `json:"roster,omitempty"` // birds handed out in order, cycling
}

// LevelTable maps a level number to its layout.
type LevelTable map[int]LevelLayout

// Layout returns the layout for level. A missing or empty layout is an ErrInvalidConfiguration,
// since an empty block set would count as instantly completed.
func (t LevelTable) Layout(level int) (LevelLayout, error) {
	layout, ok := t[level]
	if !ok {
		return LevelLayout{}, fmt.Errorf("%w: no layout for level %d", ErrInvalidConfiguration, level)
	}
	if len(layout.Blocks) == 0 {
		return LevelLayout{}, fmt.Errorf("%w: level %d has no blocks", ErrInvalidConfiguration, level)
	}
	return layout, nil
}

// Levels returns the defined level numbers in ascending order.
func (t LevelTable) Levels() []int {
	levels := make([]int, 0, len(t))
	for n := range t {
		levels = append(levels, n)
	}
	sort.Ints(levels)
	return levels
}

// Validate checks every entry of the table.
func (t LevelTable) Validate() error {
	if len(t) == 0 {
		return fmt.Errorf("%w: empty level table", ErrInvalidConfiguration)
	}
	for _, n := range t.Levels() {
		if n < 1 {
			return fmt.Errorf("%w: level number %d", ErrInvalidConfiguration, n)
		}
		if _, err := t.Layout(n); err != nil {
			return err
		}
	}
	return nil
}

// RosterKind returns the kind of the n-th bird handed out on a level.
func (l LevelLayout) RosterKind(n int) BirdKind {
	if len(l.Roster) == 0 {
		return BirdStandard
	}
	return l.Roster[n%len(l.Roster)]
}

// DefaultLevels returns the built-in campaign. Y coordinates assume a 600 unit tall field.
func DefaultLevels() LevelTable {
	return LevelTable{
		1: {
			Blocks: []BlockSpec{
				{X: 600, Y: 500, Material: MaterialWood},
				{X: 700, Y: 500, Material: MaterialWood},
				{X: 650, Y: 400, Material: MaterialWood},
			},
			Roster: []BirdKind{BirdStandard},
		},
		2: {
			Blocks: []BlockSpec{
				{X: 600, Y: 500, Material: MaterialStone},
				{X: 700, Y: 500, Material: MaterialWood},
				{X: 650, Y: 400, Material: MaterialWood},
				{X: 600, Y: 300, Material: MaterialWood},
			},
			Roster: []BirdKind{BirdStandard, BirdSpeedBoost},
		},
		3: {
			Blocks: []BlockSpec{
				{X: 560, Y: 500, Material: MaterialWood},
				{X: 640, Y: 500, Material: MaterialExplosive},
				{X: 720, Y: 500, Material: MaterialWood},
				{X: 600, Y: 380, Material: MaterialStone},
				{X: 680, Y: 380, Material: MaterialStone},
			},
			Roster: []BirdKind{BirdSplitter, BirdStandard},
		},
		4: {
			Blocks: []BlockSpec{
				{X: 580, Y: 500, Material: MaterialStone},
				{X: 660, Y: 500, Material: MaterialExplosive},
				{X: 740, Y: 500, Material: MaterialStone},
				{X: 620, Y: 360, Material: MaterialWood},
				{X: 700, Y: 360, Material: MaterialWood},
				{X: 660, Y: 240, Material: MaterialExplosive},
			},
			Roster: []BirdKind{BirdAreaDamage, BirdSpeedBoost, BirdSplitter},
		},
		5: {
			Blocks: []BlockSpec{
				{X: 540, Y: 500, Material: MaterialStone},
				{X: 620, Y: 500, Material: MaterialStone},
				{X: 700, Y: 500, Material: MaterialStone},
				{X: 580, Y: 360, Material: MaterialExplosive},
				{X: 660, Y: 360, Material: MaterialWood},
				{X: 620, Y: 240, Material: MaterialWood},
				{X: 740, Y: 360, Material: MaterialExplosive},
			},
			Roster: []BirdKind{BirdAreaDamage, BirdSplitter, BirdSpeedBoost, BirdStandard},
		},
	}
}
