package game

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/tropical32/line-of-sight/internal/world"
)

// ErrInvalidDimension is returned for a dungeon width or height below 1.
var ErrInvalidDimension = errors.New("dimension must be at least 1")

// DefaultRadius is the sight radius used on generated dungeons.
const DefaultRadius float32 = 8

// Config holds session configuration options.
type Config struct {
	// Seed for dungeon generation. A seed of 0 means a random seed will be generated.
	Seed int64
	// Radius is the sight radius. Negative means the scenario's own radius,
	// or DefaultRadius on a generated dungeon.
	Radius float32
	// Scenario selects an embedded scenario by ID. Empty means generate a dungeon.
	Scenario string
	// Dungeon dimensions when no scenario is selected.
	Width, Height int
}

// DefaultConfig returns the configuration used when nothing is overridden.
func DefaultConfig() Config {
	return Config{
		Radius: -1,
		Width:  world.DefaultWidth,
		Height: world.DefaultHeight,
	}
}

// ConfigFromEnv starts from DefaultConfig and applies LOS_* environment variables.
func ConfigFromEnv() (Config, error) {
	cfg := DefaultConfig()

	if v := os.Getenv("LOS_SEED"); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return cfg, fmt.Errorf("invalid LOS_SEED %q: %w", v, err)
		}
		cfg.Seed = seed
	}

	if v := os.Getenv("LOS_RADIUS"); v != "" {
		radius, err := strconv.ParseFloat(v, 32)
		if err != nil {
			return cfg, fmt.Errorf("invalid LOS_RADIUS %q: %w", v, err)
		}
		cfg.Radius = float32(radius)
	}

	if v := os.Getenv("LOS_SCENARIO"); v != "" {
		cfg.Scenario = v
	}

	for name, dst := range map[string]*int{"LOS_WIDTH": &cfg.Width, "LOS_HEIGHT": &cfg.Height} {
		v := os.Getenv(name)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return cfg, fmt.Errorf("invalid %s %q: %w", name, v, err)
		}
		if n < 1 {
			return cfg, fmt.Errorf("invalid %s %q: %w", name, v, ErrInvalidDimension)
		}
		*dst = n
	}

	return cfg, nil
}
