package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"time"

	"github.com/gdamore/tcell/v2"

	"gridchase/internal/game"
)

var ghostStyles = map[game.GhostKind]tcell.Style{
	game.GhostChaser:   tcell.StyleDefault.Foreground(tcell.ColorRed),
	game.GhostAmbusher: tcell.StyleDefault.Foreground(tcell.ColorHotPink),
	game.GhostFlanker:  tcell.StyleDefault.Foreground(tcell.ColorAqua),
	game.GhostShy:      tcell.StyleDefault.Foreground(tcell.ColorOrange),
}

func main() {
	tick := flag.Duration("tick", 50*time.Millisecond, "simulation tick interval")
	flag.Parse()

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatal(err)
	}
	if err := screen.Init(); err != nil {
		log.Fatal(err)
	}
	defer screen.Fini()
	screen.HideCursor()

	st := game.NewState(game.DefaultLevel())

	events := make(chan tcell.Event, 8)
	quit := make(chan struct{})
	go screen.ChannelEvents(events, quit)

	ticker := time.NewTicker(*tick)
	defer ticker.Stop()

	intent := game.DirNone
	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				switch ev.Key() {
				case tcell.KeyUp:
					intent = game.DirUp
				case tcell.KeyDown:
					intent = game.DirDown
				case tcell.KeyLeft:
					intent = game.DirLeft
				case tcell.KeyRight:
					intent = game.DirRight
				case tcell.KeyEscape, tcell.KeyCtrlC:
					close(quit)
					return
				case tcell.KeyRune:
					if ev.Rune() == 'q' {
						close(quit)
						return
					}
				}
			case *tcell.EventResize:
				screen.Sync()
			}
		case <-ticker.C:
			st.Step(intent)
			intent = game.DirNone // queued intent persists inside the core
			draw(screen, st)
		}
	}
}

func draw(screen tcell.Screen, st *game.State) {
	screen.Clear()

	wall := tcell.StyleDefault.Foreground(tcell.ColorBlue)
	pellet := tcell.StyleDefault.Foreground(tcell.ColorLightYellow)
	for y := 0; y < st.Grid.Height(); y++ {
		for x := 0; x < st.Grid.Width(); x++ {
			if !st.Grid.IsWalkable(x, y) {
				screen.SetContent(x, y, '█', nil, wall)
			}
		}
	}
	for _, p := range st.Pellets {
		if !p.Active {
			continue
		}
		ch := '·'
		if p.Power {
			ch = '●'
		}
		screen.SetContent(p.Pos.X, p.Pos.Y, ch, nil, pellet)
	}

	scatter := tcell.StyleDefault.Foreground(tcell.ColorNavy).Bold(true)
	for _, gh := range st.Ghosts {
		gx, gy := gh.RenderPos()
		style := ghostStyles[gh.Kind]
		if st.ScatterActive() {
			style = scatter
		}
		screen.SetContent(round(gx), round(gy), 'M', nil, style)
	}

	px, py := st.Player.RenderPos()
	screen.SetContent(round(px), round(py), 'C', nil,
		tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true))

	status := fmt.Sprintf("score %d  lives %d  pellets %d", st.Score, st.Lives, st.PelletsRemaining)
	if st.ScatterActive() {
		status += fmt.Sprintf("  scatter %d", st.ScatterTimer)
	}
	switch {
	case st.Won:
		status = "YOU WIN - q to quit"
	case st.GameOver:
		status = "GAME OVER - q to quit"
	}
	drawText(screen, 0, st.Grid.Height()+1, status, tcell.StyleDefault)

	screen.Show()
}

func drawText(screen tcell.Screen, x, y int, s string, style tcell.Style) {
	for i, r := range s {
		screen.SetContent(x+i, y, r, nil, style)
	}
}

func round(f float64) int {
	return int(math.Round(f))
}
