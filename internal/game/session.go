package game

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/tropical32/line-of-sight/internal/entity"
	"github.com/tropical32/line-of-sight/internal/fov"
	"github.com/tropical32/line-of-sight/internal/scenario"
	"github.com/tropical32/line-of-sight/internal/telemetry"
	"github.com/tropical32/line-of-sight/internal/world"
)

// Session owns one grid, the viewer standing on it and the engine scanning it.
// It has no terminal dependency.
type Session struct {
	name   string
	grid   *fov.GridMap
	engine *fov.Engine
	viewer *entity.Viewer
	radius float32
	logger *zap.Logger
}

// NewSession builds a session from the configured scenario, or from a freshly
// generated dungeon when no scenario is set. The first scan has already run.
func NewSession(ctx context.Context, cfg Config, registry *scenario.Registry, logger *zap.Logger) (*Session, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	ctx, span := telemetry.Tracer("game").Start(ctx, "session.init")
	defer span.End()

	s := &Session{logger: logger}

	if cfg.Scenario != "" {
		def, err := registry.Lookup(cfg.Scenario)
		if err != nil {
			return nil, err
		}
		grid, err := def.Build()
		if err != nil {
			return nil, err
		}
		s.name = def.Name
		s.grid = grid
		s.viewer = entity.NewViewer(def.OriginCell())
		s.radius = def.Radius
	} else {
		seed := cfg.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		d := world.NewDungeon(cfg.Width, cfg.Height, rand.New(rand.NewSource(seed)))
		d.Generate(ctx)

		s.name = fmt.Sprintf("dungeon #%d", seed)
		s.grid = d.GridMap()
		if len(d.Rooms) > 0 {
			s.viewer = entity.NewViewer(d.RandomPointInRoom(0))
			span.SetAttributes(attribute.Int("viewer.room", d.RoomIndexAt(s.viewer.Position())))
		} else {
			span.SetAttributes(attribute.String("warning", "no rooms generated, using fallback position"))
			s.viewer = entity.NewViewer(d.Width/2, d.Height/2)
		}
		s.radius = DefaultRadius
	}

	if cfg.Radius >= 0 {
		s.radius = cfg.Radius
	}
	s.engine = fov.NewEngine(s.grid)

	span.SetAttributes(
		attribute.String("session.name", s.name),
		attribute.Int("viewer.x", s.viewer.X),
		attribute.Int("viewer.y", s.viewer.Y),
	)

	s.Recompute(ctx)
	return s, nil
}

// Name returns the scenario or dungeon name.
func (s *Session) Name() string { return s.name }

// Grid returns the session grid.
func (s *Session) Grid() *fov.GridMap { return s.grid }

// Viewer returns the viewer.
func (s *Session) Viewer() *entity.Viewer { return s.viewer }

// Radius returns the current sight radius.
func (s *Session) Radius() float32 { return s.radius }

// Recompute clears the previous scan, rescans from the viewer and marks the
// viewer cell.
func (s *Session) Recompute(ctx context.Context) {
	s.grid.ClearVisible()
	s.engine.FullScanContext(ctx, s.viewer.Origin(), s.radius)

	x, y := s.viewer.Position()
	if s.grid.Get(x, y) != fov.Blocking {
		s.grid.Set(x, y, fov.Viewer)
	}

	s.logger.Debug("scan complete",
		zap.Int("x", x),
		zap.Int("y", y),
		zap.Float32("radius", s.radius),
		zap.Int("visible", s.grid.Count(fov.Visible)),
	)
}

// TryMove moves the viewer if the destination is on the grid and not blocking.
func (s *Session) TryMove(ctx context.Context, dx, dy int) bool {
	nx, ny := s.viewer.X+dx, s.viewer.Y+dy
	if !s.grid.InBounds(nx, ny) || s.grid.Get(nx, ny) == fov.Blocking {
		return false
	}

	s.viewer.Move(dx, dy)
	s.Recompute(ctx)
	return true
}

// AdjustRadius changes the sight radius, never going below zero, and rescans.
func (s *Session) AdjustRadius(ctx context.Context, delta float32) {
	s.radius = max(s.radius+delta, 0)
	s.Recompute(ctx)
}

// ToggleWall flips a cell between Blocking and Empty and rescans.
// The viewer's own cell and positions off the grid are left alone.
func (s *Session) ToggleWall(ctx context.Context, x, y int) bool {
	if !s.grid.InBounds(x, y) {
		return false
	}
	if vx, vy := s.viewer.Position(); vx == x && vy == y {
		return false
	}

	if s.grid.Get(x, y) == fov.Blocking {
		s.grid.Set(x, y, fov.Empty)
	} else {
		s.grid.Set(x, y, fov.Blocking)
	}

	s.logger.Info("wall toggled", zap.Int("x", x), zap.Int("y", y), zap.Stringer("cell", s.grid.Get(x, y)))
	s.Recompute(ctx)
	return true
}

// Status returns a one-line summary for display.
func (s *Session) Status() string {
	return fmt.Sprintf("%s | pos (%d,%d) | radius %.0f | visible %d",
		s.name, s.viewer.X, s.viewer.Y, s.radius, s.grid.Count(fov.Visible))
}
