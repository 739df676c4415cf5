package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"

	"github.com/tomz197/meteors/internal/config"
	"github.com/tomz197/meteors/internal/draw"
	"github.com/tomz197/meteors/internal/input"
	"github.com/tomz197/meteors/internal/loop"
)

// backend bundles the terminal front end: where frames go and where keys
// come from.
type backend struct {
	renderer loop.Renderer
	input    loop.InputSource
	close    func()
}

func openBackend(cfg config.Config) (*backend, error) {
	w := float64(cfg.Screen.Width)
	h := float64(cfg.Screen.Height)

	switch cfg.Backend {
	case config.BackendANSI:
		return openANSI(w, h)
	default:
		return openTcell(w, h)
	}
}

func openTcell(w, h float64) (*backend, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}

	return &backend{
		renderer: draw.NewScreen(screen, w, h),
		input:    input.StartScreenSource(screen),
		close:    screen.Fini,
	}, nil
}

func openANSI(w, h float64) (*backend, error) {
	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("enable raw mode: %w", err)
	}

	t := draw.NewTerminal(os.Stdout, draw.DefaultTermSizeFunc, w, h)
	if err := t.Start(); err != nil {
		_ = term.Restore(fd, oldState)
		return nil, fmt.Errorf("prepare terminal: %w", err)
	}

	return &backend{
		renderer: t,
		input:    input.StartStream(bufio.NewReader(os.Stdin)),
		close: func() {
			_ = t.Stop()
			_ = term.Restore(fd, oldState)
		},
	}, nil
}
