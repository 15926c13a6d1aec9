package ui

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"tsnes/snes"
)

// keyHandler turns held keys into single press events.
type keyHandler struct {
	prev map[glfw.Key]bool
}

func newKeyHandler() *keyHandler {
	return &keyHandler{prev: map[glfw.Key]bool{}}
}

func (k *keyHandler) pressed(window *glfw.Window, key glfw.Key) bool {
	down := window.GetKey(key) == glfw.Press
	was := k.prev[key]
	k.prev[key] = down
	return down && !was
}

// apply maps the keyboard to lifecycle controls: Space toggles run/pause,
// N steps one frame while paused, R resets, Escape closes the window.
func (k *keyHandler) apply(window *glfw.Window, scheduler *snes.Scheduler) {
	if k.pressed(window, glfw.KeySpace) {
		if scheduler.Running() {
			scheduler.Stop()
		} else {
			scheduler.Start()
		}
	}
	if k.pressed(window, glfw.KeyN) && !scheduler.Running() {
		scheduler.StepFrame()
	}
	if k.pressed(window, glfw.KeyR) {
		scheduler.Reset()
	}
	if k.pressed(window, glfw.KeyEscape) {
		window.SetShouldClose(true)
	}
}
