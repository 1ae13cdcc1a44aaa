package game

import (
	"context"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/tropical32/line-of-sight/internal/fov"
	"github.com/tropical32/line-of-sight/internal/scenario"
	"github.com/tropical32/line-of-sight/internal/ui"
)

func newTestGame(t *testing.T) *Game {
	t.Helper()
	screen, err := ui.NewScreenFrom(tcell.NewSimulationScreen("UTF-8"))
	if err != nil {
		t.Fatalf("Failed to init simulation screen: %v", err)
	}
	t.Cleanup(screen.Close)

	palette, err := scenario.LoadPalette()
	if err != nil {
		t.Fatalf("Failed to load palette: %v", err)
	}
	return newGame(screen, newScenarioSession(t, "pillar", -1), palette, nil)
}

func TestGameEditMode(t *testing.T) {
	ctx := context.Background()
	g := newTestGame(t)

	g.handleRune(ctx, 'e')
	if g.state != StateEdit {
		t.Fatalf("State = %v, want edit", g.state)
	}

	// The cursor moves, the viewer stays.
	g.move(ctx, 1, 0)
	if g.cursor.X != 6 || g.session.Viewer().X != 5 {
		t.Errorf("Cursor x = %d, viewer x = %d; want 6 and 5", g.cursor.X, g.session.Viewer().X)
	}

	g.handleRune(ctx, ' ')
	if g.session.Grid().Get(6, 5) != fov.Empty {
		t.Errorf("Space should remove the pillar, got %v", g.session.Grid().Get(6, 5))
	}

	g.render()

	g.handleRune(ctx, 'e')
	g.move(ctx, 1, 0)
	if g.session.Viewer().X != 6 {
		t.Errorf("Viewer should move in explore mode, x = %d", g.session.Viewer().X)
	}
}

func TestGameRadiusAndQuit(t *testing.T) {
	ctx := context.Background()
	g := newTestGame(t)

	g.handleRune(ctx, '-')
	if g.session.Radius() != 19 {
		t.Errorf("Radius = %v, want 19", g.session.Radius())
	}
	g.handleRune(ctx, '+')
	if g.session.Radius() != 20 {
		t.Errorf("Radius = %v, want 20", g.session.Radius())
	}

	g.handleRune(ctx, 'q')
	if g.running {
		t.Error("q should stop the game")
	}
}
