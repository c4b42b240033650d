package game

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

const (
	cellSize  = 32
	hudHeight = 48
)

var ghostColors = [ghostKindCount]color.RGBA{
	GhostChaser:   {R: 235, G: 60, B: 60, A: 255},  // red
	GhostAmbusher: {R: 255, G: 150, B: 200, A: 255}, // pink
	GhostFlanker:  {R: 80, G: 200, B: 235, A: 255},  // cyan
	GhostShy:      {R: 245, G: 170, B: 60, A: 255},  // orange
}

var scatterGhostColor = color.RGBA{R: 70, G: 80, B: 230, A: 255}

// Game is the windowed front end: it translates keyboard input into player
// intent, steps the simulation once per frame and renders the interpolated
// output surface.
type Game struct {
	state  *State
	simLog *SimLog
	events *EventLog

	prevKeys  map[ebiten.Key]bool
	held      Direction // last cardinal key seen, fed to Step each frame
	logCursor int       // SimLog entries already mirrored into the HUD log

	highScore  int
	scoreSaved bool // best score persisted for the finished session
}

// New creates a windowed game over the built-in maze.
func New() *Game {
	g := &Game{
		prevKeys: make(map[ebiten.Key]bool),
		events:   NewEventLog(),
	}
	g.highScore, _ = LoadHighScore(HighScoreFile)
	g.reset()
	return g
}

func (g *Game) reset() {
	g.state = NewState(DefaultLevel())
	g.simLog = NewSimLog(false)
	g.state.AttachLog(g.simLog)
	g.held = DirNone
	g.logCursor = 0
	g.scoreSaved = false
}

func (g *Game) keyJustPressed(k ebiten.Key) bool {
	pressed := ebiten.IsKeyPressed(k)
	was := g.prevKeys[k]
	g.prevKeys[k] = pressed
	return pressed && !was
}

// Update implements ebiten.Game. One simulation tick per frame.
func (g *Game) Update() error {
	// Directional intent: the last key registered this frame wins.
	for _, bind := range []struct {
		key ebiten.Key
		dir Direction
	}{
		{ebiten.KeyArrowUp, DirUp},
		{ebiten.KeyArrowDown, DirDown},
		{ebiten.KeyArrowLeft, DirLeft},
		{ebiten.KeyArrowRight, DirRight},
	} {
		if g.keyJustPressed(bind.key) {
			g.held = bind.dir
		}
	}
	if g.keyJustPressed(ebiten.KeyF9) {
		if err := g.state.CopyDebugReport(240); err != nil {
			g.events.Add(g.state.Tick, "clipboard: %v", err)
		} else {
			g.events.Add(g.state.Tick, "debug report copied")
		}
	}
	if g.keyJustPressed(ebiten.KeyR) && (g.state.Won || g.state.GameOver) {
		g.reset()
		return nil
	}

	g.state.Step(g.held)

	// Mirror new sim events into the HUD ring buffer.
	entries := g.simLog.Entries()
	for ; g.logCursor < len(entries); g.logCursor++ {
		e := entries[g.logCursor]
		g.events.Add(e.Tick, "%s %s %s", e.Actor, e.Key, e.Value)
	}

	if g.state.Score > g.highScore {
		g.highScore = g.state.Score
	}
	if (g.state.Won || g.state.GameOver) && !g.scoreSaved {
		g.scoreSaved = true
		if err := SaveHighScore(HighScoreFile, g.highScore); err != nil {
			g.events.Add(g.state.Tick, "high score: %v", err)
		}
	}
	return nil
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 12, G: 12, B: 20, A: 255})

	g.drawGrid(screen)
	g.drawPellets(screen)
	for _, gh := range g.state.Ghosts {
		g.drawGhost(screen, gh)
	}
	g.drawPlayer(screen)
	g.drawHUD(screen)
}

func (g *Game) drawGrid(screen *ebiten.Image) {
	wallFill := color.RGBA{R: 40, G: 50, B: 150, A: 255}
	wallEdge := color.RGBA{R: 70, G: 90, B: 220, A: 255}
	for y := 0; y < g.state.Grid.Height(); y++ {
		for x := 0; x < g.state.Grid.Width(); x++ {
			if g.state.Grid.IsWalkable(x, y) {
				continue
			}
			px := float32(x * cellSize)
			py := float32(y * cellSize)
			vector.FillRect(screen, px, py, cellSize, cellSize, wallFill, false)
			vector.StrokeRect(screen, px+1, py+1, cellSize-2, cellSize-2, 1.0, wallEdge, false)
		}
	}
}

func (g *Game) drawPellets(screen *ebiten.Image) {
	pelletCol := color.RGBA{R: 250, G: 220, B: 160, A: 255}
	for _, p := range g.state.Pellets {
		if !p.Active {
			continue
		}
		cx := float32(p.Pos.X*cellSize + cellSize/2)
		cy := float32(p.Pos.Y*cellSize + cellSize/2)
		r := float32(3)
		if p.Power {
			r = 8
		}
		vector.FillCircle(screen, cx, cy, r, pelletCol, true)
	}
}

func (g *Game) drawPlayer(screen *ebiten.Image) {
	x, y := g.state.Player.RenderPos()
	cx := float32(x*cellSize + cellSize/2)
	cy := float32(y*cellSize + cellSize/2)
	body := color.RGBA{R: 250, G: 230, B: 60, A: 255}
	vector.FillCircle(screen, cx, cy, cellSize/2-3, body, true)

	// Facing notch: a short line toward the travel direction.
	rad := g.state.Player.Facing * math.Pi / 180
	nx := cx + float32(math.Cos(rad))*(cellSize/2-3)
	ny := cy + float32(math.Sin(rad))*(cellSize/2-3)
	vector.StrokeLine(screen, cx, cy, nx, ny, 2.0, color.RGBA{R: 40, G: 40, B: 10, A: 255}, true)
}

func (g *Game) drawGhost(screen *ebiten.Image, gh *Ghost) {
	x, y := gh.RenderPos()
	px := float32(x*cellSize) + 3
	py := float32(y*cellSize) + 3
	size := float32(cellSize - 6)

	col := ghostColors[gh.Kind]
	if g.state.ScatterActive() {
		col = scatterGhostColor
		// Flash white as the mode runs out.
		if g.state.ScatterTimer < scatterDuration/5 && (g.state.ScatterTimer/15)%2 == 0 {
			col = color.RGBA{R: 230, G: 230, B: 230, A: 255}
		}
	}
	vector.FillRect(screen, px, py, size, size, col, false)
	vector.FillCircle(screen, px+size/2, py+size/3, size/2, col, true)

	// Eyes.
	eye := color.RGBA{R: 250, G: 250, B: 250, A: 255}
	vector.FillCircle(screen, px+size/3, py+size/3, 3, eye, true)
	vector.FillCircle(screen, px+2*size/3, py+size/3, 3, eye, true)
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	gridH := g.state.Grid.Height() * cellSize
	face := basicfont.Face7x13

	hud := fmt.Sprintf("SCORE %d   HI %d   LIVES %d", g.state.Score, g.highScore, g.state.Lives)
	if g.state.ScatterActive() {
		hud += fmt.Sprintf("   SCATTER %d", g.state.ScatterTimer)
	}
	text.Draw(screen, hud, face, 8, gridH+18, color.White)

	switch {
	case g.state.Won:
		text.Draw(screen, "YOU WIN - press R to restart", face, 8, gridH+36,
			color.RGBA{R: 120, G: 240, B: 120, A: 255})
	case g.state.GameOver:
		text.Draw(screen, "GAME OVER - press R to restart", face, 8, gridH+36,
			color.RGBA{R: 240, G: 120, B: 120, A: 255})
	default:
		// Most recent gameplay event in faint text.
		if recent := g.events.Recent(1); len(recent) == 1 {
			text.Draw(screen, recent[0].String(), face, 8, gridH+36,
				color.RGBA{R: 140, G: 140, B: 150, A: 255})
		}
	}

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("tick %d", g.state.Tick),
		g.state.Grid.Width()*cellSize-80, gridH+4)
}

// Layout implements ebiten.Game with a fixed logical resolution.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.state.Grid.Width() * cellSize, g.state.Grid.Height()*cellSize + hudHeight
}
