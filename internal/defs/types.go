// internal/defs/types.go
package defs

import "fmt"

// BirdKind selects a bird's special ability.
type BirdKind int

const (
	BirdStandard BirdKind = iota
	BirdSpeedBoost
	BirdSplitter
	BirdAreaDamage
	birdKindCount
)

// BirdKinds lists every bird kind in declaration order.
func BirdKinds() []BirdKind {
	kinds := make([]BirdKind, 0, birdKindCount)
	for k := BirdStandard; k < birdKindCount; k++ {
		kinds = append(kinds, k)
	}
	return kinds
}

var birdKindNames = [...]string{
	BirdStandard:   "standard",
	BirdSpeedBoost: "speed_boost",
	BirdSplitter:   "splitter",
	BirdAreaDamage: "area_damage",
}

func (k BirdKind) String() string {
	if k < 0 || k >= birdKindCount {
		return fmt.Sprintf("BirdKind(%d)", int(k))
	}
	return birdKindNames[k]
}

// MarshalText implements encoding.TextMarshaler.
func (k BirdKind) MarshalText() ([]byte, error) {
	if k < 0 || k >= birdKindCount {
		return nil, fmt.Errorf("unknown bird kind %d", int(k))
	}
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *BirdKind) UnmarshalText(text []byte) error {
	for i, name := range birdKindNames {
		if name == string(text) {
			*k = BirdKind(i)
			return nil
		}
	}
	return fmt.Errorf("unknown bird kind %q", text)
}

// Material determines a block's durability and color.
type Material int

const (
	MaterialWood Material = iota
	MaterialStone
	MaterialExplosive
	materialCount
)

var materialNames = [...]string{
	MaterialWood:      "wood",
	MaterialStone:     "stone",
	MaterialExplosive: "explosive",
}

func (m Material) String() string {
	if m < 0 || m >= materialCount {
		return fmt.Sprintf("Material(%d)", int(m))
	}
	return materialNames[m]
}

// MarshalText implements encoding.TextMarshaler.
func (m Material) MarshalText() ([]byte, error) {
	if m < 0 || m >= materialCount {
		return nil, fmt.Errorf("unknown material %d", int(m))
	}
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Material) UnmarshalText(text []byte) error {
	for i, name := range materialNames {
		if name == string(text) {
			*m = Material(i)
			return nil
		}
	}
	return fmt.Errorf("unknown material %q", text)
}
