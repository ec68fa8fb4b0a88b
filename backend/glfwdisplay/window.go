// Package glfwdisplay is the optional windowed backend: it opens a real
// window via go-gl/glfw and blits a softdisplay.Display framebuffer into it
// each frame as a single magnified texture, directly reusing the teacher's
// go-gl/gl + go-gl/glfw/v3.3/glfw dependency pair (backend/opengl/*.go).
package glfwdisplay

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/muiengine/softdisplay"
)

// Window owns a GLFW window and the blit renderer painting a
// softdisplay.Display into it.
type Window struct {
	win      *glfw.Window
	renderer *blitRenderer
	keys     *KeyInput
}

// New creates a width x height window titled title, grounded on
// example/main.go's glfw.Init/WindowHint/CreateWindow sequence.
func New(width, height int, title string) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfwdisplay: init glfw: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.False)

	win, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("glfwdisplay: create window: %w", err)
	}
	win.MakeContextCurrent()
	glfw.SwapInterval(1)

	if err := gl.Init(); err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("glfwdisplay: init gl: %w", err)
	}

	renderer, err := newBlitRenderer()
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("glfwdisplay: renderer: %w", err)
	}

	w := &Window{win: win, renderer: renderer}
	w.keys = NewKeyInput(win)
	return w, nil
}

// ShouldClose reports whether the user has asked to close the window.
func (w *Window) ShouldClose() bool {
	return w.win.ShouldClose()
}

// Present uploads d's framebuffer and draws it filling the window,
// magnified to the window's current pixel size, then swaps buffers and
// polls GLFW events.
func (w *Window) Present(d *softdisplay.Display) {
	w.renderer.upload(d)
	fbw, fbh := w.win.GetFramebufferSize()
	w.renderer.draw(fbw, fbh)
	w.win.SwapBuffers()
	glfw.PollEvents()
}

// Keys returns the key-input adapter driving this window.
func (w *Window) Keys() *KeyInput {
	return w.keys
}

// Close releases the window, renderer and GLFW itself.
func (w *Window) Close() {
	w.renderer.delete()
	w.win.Destroy()
	glfw.Terminate()
}
