package glfwdisplay

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/muiengine/mui"
)

// KeyInput adapts GLFW key events to mui.Message values, directly modeled
// on backend/opengl/glfw.go's GLFWInputAdapter key-callback table, pared
// down to the five keys the engine's event alphabet needs: Left/Right =
// PREV/NEXT, Enter = SELECT, Up/Down = INCREMENT/DECREMENT.
type KeyInput struct {
	win   *glfw.Window
	queue []mui.Message
}

// NewKeyInput installs a key callback on win and starts queuing mapped
// key-press/repeat events.
func NewKeyInput(win *glfw.Window) *KeyInput {
	k := &KeyInput{win: win}
	win.SetKeyCallback(k.keyCallback)
	return k
}

func (k *KeyInput) keyCallback(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	if action != glfw.Press && action != glfw.Repeat {
		return
	}
	msg, ok := keyToMessage(key)
	if !ok {
		return
	}
	k.queue = append(k.queue, msg)
}

// keyToMessage is the total function over the five mapped keys plus
// "unmapped -> no event", mirroring glfwKeyToGUIKey's default: gui.KeyNone
// fallthrough.
func keyToMessage(key glfw.Key) (mui.Message, bool) {
	switch key {
	case glfw.KeyLeft:
		return mui.MsgEventPrev, true
	case glfw.KeyRight:
		return mui.MsgEventNext, true
	case glfw.KeyEnter, glfw.KeyKPEnter:
		return mui.MsgCursorSelect, true
	case glfw.KeyUp:
		return mui.MsgValueIncrement, true
	case glfw.KeyDown:
		return mui.MsgValueDecrement, true
	default:
		return 0, false
	}
}

// Poll drains and returns every message queued since the last call.
func (k *KeyInput) Poll() []mui.Message {
	if len(k.queue) == 0 {
		return nil
	}
	out := k.queue
	k.queue = nil
	return out
}
