//go:build ebiten

package app

import (
	"image/color"
	"time"

	"microcity/internal/render"
	"microcity/internal/sim"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts the city world to the ebiten.Game interface. It is the UI
// collaborator shell: all simulation math stays in the engine, the Game
// only feeds tool requests between ticks and blits the display buffer.
type Game struct {
	world   *sim.World
	painter *render.GridPainter
	palette []color.RGBA

	scale    int
	paused   bool
	tickOnce bool
	seed     int64
	tool     sim.ToolKind
}

// New constructs a Game for the provided world.
func New(world *sim.World, scale int, seed int64) *Game {
	size := world.Size()
	return &Game{
		world:   world,
		painter: render.NewGridPainter(size.W, size.H),
		palette: world.Palette(),
		scale:   scale,
		seed:    seed,
		tool:    sim.ToolRoad,
	}
}

// Reset reinitializes the world state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.world.Reset(seed)
	g.tickOnce = false
}

// toolKeys maps number-row keys to the building tools.
var toolKeys = map[ebiten.Key]sim.ToolKind{
	ebiten.Key1: sim.ToolRoad,
	ebiten.Key2: sim.ToolRail,
	ebiten.Key3: sim.ToolWire,
	ebiten.Key4: sim.ToolResidential,
	ebiten.Key5: sim.ToolCommercial,
	ebiten.Key6: sim.ToolIndustrial,
	ebiten.Key7: sim.ToolCoal,
	ebiten.Key8: sim.ToolNuclear,
	ebiten.Key9: sim.ToolPark,
	ebiten.Key0: sim.ToolBulldoze,
}

// Update handles per-frame input and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	for key, tool := range toolKeys {
		if inpututil.IsKeyJustPressed(key) {
			g.tool = tool
		}
	}

	// Tool application happens here, between ticks, which is the only
	// mutation window the engine's ownership model allows.
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		x, y := mx/g.scale, my/g.scale
		size := g.world.Size()
		if x >= 0 && x < size.W && y >= 0 && y < size.H {
			g.world.Scheduler().ApplyTool(x, y, g.tool)
		}
	}

	if (!g.paused) || g.tickOnce {
		g.world.Step()
		g.tickOnce = false
	}
	return nil
}

// Draw renders the current world state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.world.Cells(), g.palette, g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.world.Size()
	return s.W * g.scale, s.H * g.scale
}
