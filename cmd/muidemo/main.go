// Command muidemo is a small smoke-test/demo binary for the field-handler
// engine: it builds a two-form demo (§4.15 ambient stack) and drives it
// either headlessly against the software framebuffer or in a real window
// via the glfw backend.
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"

	"github.com/go-theft-auto/muiengine/backend/glfwdisplay"
	"github.com/go-theft-auto/muiengine/internal/muilog"
	"github.com/go-theft-auto/muiengine/mui"
	"github.com/go-theft-auto/muiengine/softdisplay"
)

func init() {
	// GLFW must run on the main thread, same constraint as the teacher's
	// example/main.go.
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "muidemo.toml", "path to an optional TOML config file")
	windowed := flag.Bool("windowed", false, "open a real window instead of running headless")
	verbose := flag.Bool("verbose", false, "enable debug logging")
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		return fmt.Errorf("muidemo: load config: %w", err)
	}
	if *windowed {
		cfg.Windowed = true
	}
	if *verbose {
		cfg.Verbose = true
	}
	muilog.SetVerbose(cfg.Verbose)

	st := &demoState{volume: 5, brightness: 50}
	it := mui.NewInterpreter(nil, mui.DefaultStyle())
	buildForms(it, st)
	it.GotoForm(cfg.StartForm, 0)

	if cfg.Windowed {
		return runWindowed(it, cfg)
	}
	return runHeadless(it, cfg)
}

func runWindowed(it *mui.Interpreter, cfg config) error {
	win, err := glfwdisplay.New(cfg.Width*4, cfg.Height*4, "mui demo")
	if err != nil {
		return fmt.Errorf("muidemo: open window: %w", err)
	}
	defer win.Close()

	fb := softdisplay.New(cfg.Width, cfg.Height)
	for !win.ShouldClose() {
		for _, msg := range win.Keys().Poll() {
			it.Dispatch(msg)
		}
		fb.Clear()
		it.Draw(fb)
		win.Present(fb)
	}
	return nil
}

// runHeadless drives a short canned event sequence against the software
// framebuffer, redrawing after each event, and dumps the final frame as
// ASCII art, the scripted smoke-test
// path useful for verifying the engine with no display attached.
func runHeadless(it *mui.Interpreter, cfg config) error {
	fb := softdisplay.New(cfg.Width, cfg.Height)
	script := []mui.Message{
		mui.MsgDraw,
		mui.MsgValueIncrement,
		mui.MsgEventNext,
		mui.MsgValueIncrement,
		mui.MsgEventNext,
		mui.MsgCursorSelect,
	}

	for _, msg := range script {
		if msg != mui.MsgDraw {
			it.Dispatch(msg)
		}
		fb.Clear()
		it.Draw(fb)
	}

	dumpFramebuffer(fb)
	return nil
}

func dumpFramebuffer(fb *softdisplay.Display) {
	for y := 0; y < fb.DisplayHeight(); y++ {
		row := make([]byte, fb.DisplayWidth())
		for x := 0; x < fb.DisplayWidth(); x++ {
			if fb.Pixel(x, y) {
				row[x] = '#'
			} else {
				row[x] = '.'
			}
		}
		fmt.Println(string(row))
	}
}
