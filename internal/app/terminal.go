package app

import (
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/scm/internal/input/hostkey"
)

var (
	titleStyle     = tcell.StyleDefault.Bold(true)
	dimStyle       = tcell.StyleDefault.Foreground(tcell.ColorGray)
	handledStyle   = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	unhandledStyle = tcell.StyleDefault.Foreground(tcell.ColorRed)
)

// NewScreen creates the terminal screen for Run.
func NewScreen() (tcell.Screen, error) {
	return tcell.NewScreen()
}

// Run drives the application from a tcell screen until Quit is called or
// ctx is done. Run initializes and finalizes the screen.
func (app *Application) Run(ctx context.Context, screen tcell.Screen) error {
	if !app.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer app.running.Store(false)

	if err := screen.Init(); err != nil {
		return &InitError{Component: "screen", Err: err}
	}
	defer screen.Fini()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	events := make(chan tcell.Event)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	app.startOnce.Do(func() { close(app.started) })
	app.logger.Info("terminal host started")
	app.draw(screen)

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-app.quit:
			app.logger.Info("terminal host stopped")
			return nil
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if kev, ok := hostkey.FromTcell(ev); ok {
					app.HandleKey(kev)
				}
			case *tcell.EventResize:
				screen.Sync()
			}
			app.draw(screen)
		}
	}
}

func (app *Application) draw(screen tcell.Screen) {
	v := app.Snapshot()
	screen.Clear()

	drawText(screen, 0, 0, titleStyle, "scm")
	drawText(screen, 5, 0, tcell.StyleDefault, v.LayerLine())
	drawText(screen, 0, 1, dimStyle, v.StatsLine())
	drawText(screen, 0, 2, tcell.StyleDefault, v.Status)

	y := 4
	for i := len(v.History) - 1; i >= 0; i-- {
		e := v.History[i]
		style := unhandledStyle
		if e.Handled {
			style = handledStyle
		}
		drawText(screen, 0, y, tcell.StyleDefault, fmt.Sprintf("%-20s", e.Shortcut))
		drawText(screen, 21, y, style, fmt.Sprintf("%-10s", e.Outcome()))
		drawText(screen, 32, y, dimStyle, e.Layer)
		y++
	}
	screen.Show()
}

func drawText(screen tcell.Screen, x, y int, style tcell.Style, text string) {
	for _, r := range text {
		screen.SetContent(x, y, r, nil, style)
		x++
	}
}
