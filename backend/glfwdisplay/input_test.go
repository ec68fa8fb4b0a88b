package glfwdisplay

import (
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/muiengine/mui"
)

func TestKeyToMessageMapsTheFiveBoundKeys(t *testing.T) {
	cases := []struct {
		key  glfw.Key
		want mui.Message
	}{
		{glfw.KeyLeft, mui.MsgEventPrev},
		{glfw.KeyRight, mui.MsgEventNext},
		{glfw.KeyEnter, mui.MsgCursorSelect},
		{glfw.KeyKPEnter, mui.MsgCursorSelect},
		{glfw.KeyUp, mui.MsgValueIncrement},
		{glfw.KeyDown, mui.MsgValueDecrement},
	}
	for _, c := range cases {
		got, ok := keyToMessage(c.key)
		if !ok {
			t.Errorf("expected key %v to be mapped", c.key)
			continue
		}
		if got != c.want {
			t.Errorf("key %v: expected %v, got %v", c.key, c.want, got)
		}
	}
}

func TestKeyToMessageIgnoresUnmappedKeys(t *testing.T) {
	if _, ok := keyToMessage(glfw.KeySpace); ok {
		t.Error("expected an unbound key to report ok=false")
	}
}
