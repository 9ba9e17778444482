package config

import "testing"

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("SLINGSHOT_SEED", "42")
	t.Setenv("SLINGSHOT_LEVEL", "2")
	t.Setenv("SLINGSHOT_LEVELS", "levels.json")
	t.Setenv("SLINGSHOT_SPECTATE", ":9000")
	t.Setenv("SLINGSHOT_MUTE", "1")

	s := FromEnv()
	if s.Seed != 42 {
		t.Errorf("Expected seed 42, got %d", s.Seed)
	}
	if s.StartLevel != 2 {
		t.Errorf("Expected start level 2, got %d", s.StartLevel)
	}
	if s.LevelFile != "levels.json" || s.SpectateAddr != ":9000" || !s.Mute {
		t.Errorf("Unexpected settings: %+v", s)
	}
}

func TestFromEnvIgnoresGarbage(t *testing.T) {
	t.Setenv("SLINGSHOT_SEED", "abc")
	t.Setenv("SLINGSHOT_LEVEL", "-3")

	s := FromEnv()
	if s != DefaultSettings() {
		t.Errorf("Expected defaults, got %+v", s)
	}
}

func TestRestPosition(t *testing.T) {
	x, y := RestPosition()
	if x != 250 || y != 540 {
		t.Errorf("Expected rest point (250, 540), got (%v, %v)", x, y)
	}
}
