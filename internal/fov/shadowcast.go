package fov

import (
	"context"
	"math"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
)

const tracerName = "lineofsight/fov"

// Point is a scan origin in grid space.
type Point struct {
	X, Y float32
}

// Engine runs recursive shadowcasting scans over a borrowed GridMap.
// Scans write into the grid without locking; callers must not scan the same
// grid from two goroutines at once.
type Engine struct {
	grid *GridMap
}

// NewEngine creates an engine that scans the given grid.
func NewEngine(grid *GridMap) *Engine {
	return &Engine{grid: grid}
}

// Grid returns the grid the engine writes into.
func (e *Engine) Grid() *GridMap {
	return e.grid
}

// FullScan marks every cell in line of sight of origin, up to radius, as Visible.
// Blocking cells keep their state. Running it twice gives the same grid as once.
func (e *Engine) FullScan(origin Point, radius float32) {
	for _, t := range Transforms {
		e.scanArc(origin, 0, -1, 1, t, radius)
	}
}

// FullScanContext runs FullScan inside a trace span.
func (e *Engine) FullScanContext(ctx context.Context, origin Point, radius float32) {
	_, span := otel.Tracer(tracerName).Start(ctx, "fov.full_scan")
	defer span.End()

	e.FullScan(origin, radius)

	span.SetAttributes(
		attribute.Float64("fov.origin_x", float64(origin.X)),
		attribute.Float64("fov.origin_y", float64(origin.Y)),
		attribute.Float64("fov.radius", float64(radius)),
		attribute.Int("fov.width", e.grid.Width()),
		attribute.Int("fov.height", e.grid.Height()),
		attribute.Int("fov.visible_count", e.grid.Count(Visible)),
	)
}

// scanArc walks one row of the quadrant at the given distance, between the
// two slopes, and recurses outward. A blocking cell splits the slice: the part
// before it is finished by a deeper call, and the current row resumes past it.
//
// All arithmetic stays in float32; the explicit conversions keep products
// from being fused so rounding matches single-precision evaluation.
func (e *Engine) scanArc(origin Point, distance, minSlope, maxSlope float32, t Transform, radius float32) {
	if distance != 0 && distance > radius {
		return
	}
	if minSlope >= maxSlope {
		return
	}

	start := float32(math.Ceil(float64(float32(distance * minSlope))))
	for i := start; i <= float32(distance*maxSlope); i++ {
		dx, dy := t.Apply(distance, i)
		x := int(float32(origin.X + dx))
		y := int(float32(origin.Y + dy))

		if e.grid.Get(x, y) == Blocking {
			e.scanArc(origin, distance+1, minSlope, float32(i-0.5)/distance, t, radius)
			minSlope = float32(i+0.5) / distance
			continue
		}

		e.grid.Set(x, y, Visible)
	}

	e.scanArc(origin, distance+1, minSlope, maxSlope, t, radius)
}
