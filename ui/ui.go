package ui

import (
	"fmt"
	"image"
	"time"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/golang/glog"

	"tsnes/snes"
)

// mainLoop flips frames onto the window and forwards key presses. The
// scheduler ticks on its own goroutine; frames and register snapshots
// arrive over channels that drop when the UI falls behind.
func mainLoop(window *glfw.Window, scheduler *snes.Scheduler, screen *screen) {
	frames := make(chan *image.RGBA, 1)
	states := make(chan snes.Registers, 1)
	scheduler.SetOnFrame(func(f *image.RGBA) {
		// The PPU reuses its framebuffer, so copy before it crosses
		// goroutines.
		c := image.NewRGBA(f.Rect)
		copy(c.Pix, f.Pix)
		select {
		case frames <- c:
		default:
		}
	})
	scheduler.SetOnState(func(r snes.Registers) {
		select {
		case states <- r:
		default:
		}
	})
	scheduler.Start()
	keys := newKeyHandler()
	for !window.ShouldClose() {
		glfw.PollEvents()
		keys.apply(window, scheduler)
		select {
		case r := <-states:
			window.SetTitle(fmt.Sprintf("TSNES  [%s]", r))
		default:
		}
		select {
		case f := <-frames:
			screen.update(f)
			window.SwapBuffers()
		default:
			time.Sleep(time.Millisecond)
		}
	}
	scheduler.Stop()
}

// Start is the main entrypoint.
func Start(scheduler *snes.Scheduler, width int, height int) {
	err := glfw.Init()
	if err != nil {
		glog.Fatalln(err)
	}
	defer glfw.Terminate()
	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.False)
	window, err := glfw.CreateWindow(width, height, "TSNES", nil, nil)
	if err != nil {
		glog.Fatalln(err)
	}
	window.MakeContextCurrent()
	if err := gl.Init(); err != nil {
		glog.Fatalln(err)
	}
	screen, err := newScreen()
	if err != nil {
		glog.Fatalln(err)
	}
	mainLoop(window, scheduler, screen)
}
