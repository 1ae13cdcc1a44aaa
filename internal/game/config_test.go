package game

import (
	"errors"
	"testing"
)

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("LOS_SEED", "42")
	t.Setenv("LOS_RADIUS", "5.5")
	t.Setenv("LOS_SCENARIO", "pillar")
	t.Setenv("LOS_WIDTH", "30")
	t.Setenv("LOS_HEIGHT", "")

	cfg, err := ConfigFromEnv()
	if err != nil {
		t.Fatalf("ConfigFromEnv failed: %v", err)
	}

	if cfg.Seed != 42 {
		t.Errorf("Seed = %d, want 42", cfg.Seed)
	}
	if cfg.Radius != 5.5 {
		t.Errorf("Radius = %v, want 5.5", cfg.Radius)
	}
	if cfg.Scenario != "pillar" {
		t.Errorf("Scenario = %q, want pillar", cfg.Scenario)
	}
	if cfg.Width != 30 || cfg.Height != DefaultConfig().Height {
		t.Errorf("Size = %dx%d, want 30x%d", cfg.Width, cfg.Height, DefaultConfig().Height)
	}
}

func TestConfigFromEnvInvalid(t *testing.T) {
	for _, name := range []string{"LOS_SEED", "LOS_RADIUS", "LOS_WIDTH", "LOS_HEIGHT"} {
		t.Run(name, func(t *testing.T) {
			t.Setenv(name, "not-a-number")
			if _, err := ConfigFromEnv(); err == nil {
				t.Errorf("Expected error for invalid %s", name)
			}
		})
	}
}

func TestStateString(t *testing.T) {
	if StateExplore.String() != "explore" || StateEdit.String() != "edit" || State(9).String() != "unknown" {
		t.Error("Unexpected state names")
	}
}

func TestConfigFromEnvRejectsSmallDimensions(t *testing.T) {
	for _, v := range []string{"0", "-5"} {
		for _, name := range []string{"LOS_WIDTH", "LOS_HEIGHT"} {
			t.Run(name+"="+v, func(t *testing.T) {
				t.Setenv(name, v)
				if _, err := ConfigFromEnv(); !errors.Is(err, ErrInvalidDimension) {
					t.Errorf("Expected ErrInvalidDimension, got %v", err)
				}
			})
		}
	}
}
