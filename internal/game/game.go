package game

import (
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/tropical32/line-of-sight/internal/entity"
	"github.com/tropical32/line-of-sight/internal/scenario"
	"github.com/tropical32/line-of-sight/internal/ui"
)

// Game is the interactive terminal front end over a Session.
type Game struct {
	screen   *ui.Screen
	renderer *ui.Renderer
	session  *Session
	cursor   *entity.Viewer
	state    State
	running  bool
	logger   *zap.Logger
}

// New creates a game over an already built session and opens the terminal.
func New(session *Session, palette scenario.Palette, logger *zap.Logger) (*Game, error) {
	screen, err := ui.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("failed to open terminal: %w", err)
	}
	return newGame(screen, session, palette, logger), nil
}

func newGame(screen *ui.Screen, session *Session, palette scenario.Palette, logger *zap.Logger) *Game {
	if logger == nil {
		logger = zap.NewNop()
	}
	x, y := session.Viewer().Position()
	return &Game{
		screen:   screen,
		renderer: ui.NewRenderer(screen, palette),
		session:  session,
		cursor:   entity.NewViewer(x, y),
		state:    StateExplore,
		running:  true,
		logger:   logger,
	}
}

// Run executes the main loop until the user quits.
func (g *Game) Run(ctx context.Context) error {
	defer g.screen.Close()

	for g.running {
		g.render()
		g.handleInput(ctx)
	}
	return nil
}

func (g *Game) render() {
	frame := ui.Frame{
		Grid:   g.session.Grid(),
		Viewer: g.session.Viewer(),
		Status: fmt.Sprintf("[%s] %s | arrows move, e edit, +/- radius, q quit", g.state, g.session.Status()),
	}
	if g.state == StateEdit {
		frame.Cursor = g.cursor
	}
	g.renderer.Render(frame)
}

// handleInput processes a single input event.
func (g *Game) handleInput(ctx context.Context) {
	switch ev := g.screen.PollEvent().(type) {
	case *tcell.EventKey:
		g.handleKeyEvent(ctx, ev)
	case *tcell.EventResize:
		g.screen.Sync()
	}
}

// handleKeyEvent processes keyboard input.
func (g *Game) handleKeyEvent(ctx context.Context, ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		g.running = false
	case tcell.KeyUp:
		g.move(ctx, 0, -1)
	case tcell.KeyDown:
		g.move(ctx, 0, 1)
	case tcell.KeyLeft:
		g.move(ctx, -1, 0)
	case tcell.KeyRight:
		g.move(ctx, 1, 0)
	case tcell.KeyRune:
		g.handleRune(ctx, ev.Rune())
	}
}

func (g *Game) handleRune(ctx context.Context, r rune) {
	switch r {
	case 'q', 'Q':
		g.running = false
	case 'e', 'E':
		g.toggleState()
	case '+', '=':
		g.session.AdjustRadius(ctx, 1)
	case '-', '_':
		g.session.AdjustRadius(ctx, -1)
	case ' ':
		if g.state == StateEdit {
			g.session.ToggleWall(ctx, g.cursor.X, g.cursor.Y)
		}
	}
}

func (g *Game) toggleState() {
	if g.state == StateExplore {
		g.state = StateEdit
		g.cursor.X, g.cursor.Y = g.session.Viewer().Position()
	} else {
		g.state = StateExplore
	}
	g.logger.Debug("mode changed", zap.Stringer("state", g.state))
}

// move steps the viewer in explore mode or the cursor in edit mode.
func (g *Game) move(ctx context.Context, dx, dy int) {
	if g.state == StateExplore {
		g.session.TryMove(ctx, dx, dy)
		return
	}

	nx, ny := g.cursor.X+dx, g.cursor.Y+dy
	if g.session.Grid().InBounds(nx, ny) {
		g.cursor.Move(dx, dy)
	}
}
