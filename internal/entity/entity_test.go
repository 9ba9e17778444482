package entity

import (
	"testing"

	"go-slingshot/internal/component"
	"go-slingshot/internal/defs"
	"go-slingshot/pkg/vmath"
)

func TestParticleBufferOverwritesWhenFull(t *testing.T) {
	pb := NewParticleBuffer(3)
	for i := 0; i < 5; i++ {
		pb.Add(component.Particle{Size: float64(i)})
	}
	if pb.Len() != 3 {
		t.Fatalf("Expected 3 particles, got %d", pb.Len())
	}
	sizes := map[float64]bool{}
	for _, p := range pb.Items() {
		sizes[p.Size] = true
	}
	if !sizes[3] || !sizes[4] || !sizes[2] {
		t.Errorf("Expected the newest particles to survive, got %v", sizes)
	}
}

func TestParticleBufferCompact(t *testing.T) {
	pb := NewParticleBuffer(10)
	for i := 0; i < 6; i++ {
		pb.Add(component.Particle{Life: float64(i%2) - 0.5})
	}
	pb.Compact(func(p *component.Particle) bool { return p.Life > 0 })
	if pb.Len() != 3 {
		t.Errorf("Expected 3 survivors, got %d", pb.Len())
	}
	pb.Clear()
	if pb.Len() != 0 {
		t.Errorf("Expected empty buffer, got %d", pb.Len())
	}
}

func TestWorldQueue(t *testing.T) {
	w := NewWorld("test")
	if w.CurrentBird() != nil || w.AimableBird() != nil {
		t.Fatal("Empty world has no current bird")
	}
	first := w.AddBird(vmath.Vec2{X: 1}, defs.BirdStandard)
	second := w.AddBird(vmath.Vec2{X: 2}, defs.BirdSplitter)
	if first.ID == second.ID {
		t.Error("Bird IDs must be unique")
	}
	if w.CurrentBird() != first || w.AimableBird() != first {
		t.Error("Front of the queue must be current")
	}
	first.Launched = true
	if w.AimableBird() != nil {
		t.Error("Launched bird is not aimable")
	}
}

func TestWorldInstallLayout(t *testing.T) {
	w := NewWorld("test")
	layout, err := defs.DefaultLevels().Layout(1)
	if err != nil {
		t.Fatal(err)
	}
	w.InstallLayout(1, layout)
	if w.Level != 1 || len(w.Blocks) != 3 || w.LiveBlocks() != 3 {
		t.Fatalf("Unexpected world after install: level=%d blocks=%d", w.Level, len(w.Blocks))
	}
	if w.AllBlocksDestroyed() {
		t.Error("Fresh level must not be complete")
	}
	for _, b := range w.Blocks {
		b.Destroyed = true
	}
	if !w.AllBlocksDestroyed() || w.LiveBlocks() != 0 {
		t.Error("Expected all blocks destroyed")
	}
}
