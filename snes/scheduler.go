package snes

import (
	"image"
	"sync"
	"time"

	"github.com/golang/glog"
)

// cyclesPerFrame is the CPU budget per rendered frame, approximating a
// 60Hz refresh for the emulated clock rate.
const cyclesPerFrame = 1364

// Scheduler interleaves CPU execution and PPU rendering: each tick runs the
// CPU up to the cycle budget, renders one frame, notifies the presentation
// layer, and paces itself to the target frame rate. All emulation happens
// on the scheduler's tick loop; Start, Stop and Reset only flip run state,
// which the loop observes at tick boundaries.
type Scheduler struct {
	mu       sync.Mutex
	console  *Console
	fps      int
	running  bool
	gen      int
	lastTime time.Time
	load     func(*Console)
	onFrame  func(*image.RGBA)
	onState  func(Registers)
}

// NewScheduler builds a scheduler around a fresh console populated by load.
// load runs again on every Reset to rebuild the machine image.
func NewScheduler(fps int, load func(*Console)) *Scheduler {
	if fps <= 0 {
		fps = 60
	}
	s := &Scheduler{fps: fps, load: load}
	s.console = s.build()
	return s
}

func (s *Scheduler) build() *Console {
	console := NewConsole()
	if s.load != nil {
		s.load(console)
	}
	return console
}

// Console returns the current machine. Reset replaces it.
func (s *Scheduler) Console() *Console {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.console
}

// SetOnFrame registers the per-tick frame callback. The image is the PPU's
// own framebuffer and is redrawn by the next tick; copy it before handing
// it to another goroutine.
func (s *Scheduler) SetOnFrame(f func(*image.RGBA)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onFrame = f
}

// SetOnState registers the per-tick register snapshot callback.
func (s *Scheduler) SetOnState(f func(Registers)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onState = f
}

// Running reports whether the tick loop is active.
func (s *Scheduler) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

// Start begins frame ticking. Starting a halted machine is a no-op: BRK is
// terminal until Reset rebuilds the CPU.
func (s *Scheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running || s.console.CPU.halted {
		return
	}
	s.running = true
	s.gen++
	s.lastTime = time.Now()
	go s.run(s.gen)
	glog.Infoln("scheduler started")
}

// Stop pauses ticking. It takes effect at the next tick boundary, never
// inside a budget loop.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.running = false
}

// StepFrame runs a single tick while paused, for frame stepping from the
// UI or the debugger. No-op while the scheduler is running.
func (s *Scheduler) StepFrame() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		return
	}
	s.tick()
}

// Reset stops ticking and rebuilds the machine from its initial image.
func (s *Scheduler) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.running = false
	s.console = s.build()
	if s.onState != nil {
		s.onState(s.console.Snapshot())
	}
	glog.Infoln("system reset")
}

// run is the tick loop. gen guards against a stale loop surviving a quick
// Stop/Start or Reset/Start sequence.
func (s *Scheduler) run(gen int) {
	for {
		s.mu.Lock()
		if !s.running || s.gen != gen {
			s.mu.Unlock()
			return
		}
		delay := s.tick()
		stopped := !s.running
		s.mu.Unlock()
		if stopped {
			return
		}
		time.Sleep(delay)
	}
}

// tick runs one frame: budgeted CPU execution, one render, notification.
// It returns the delay that keeps the configured frame rate, clamped to a
// 1ms minimum; pacing is best-effort and skipped frames are never caught
// up. Callers hold s.mu.
func (s *Scheduler) tick() time.Duration {
	cycles := 0
	for cycles < cyclesPerFrame && !s.console.CPU.halted {
		cycles += s.console.CPU.Step()
	}
	frame := s.console.PPU.RenderFrame()
	if s.onFrame != nil {
		s.onFrame(frame)
	}
	if s.onState != nil {
		s.onState(s.console.Snapshot())
	}
	if s.console.CPU.halted && s.running {
		s.running = false
		glog.Infoln("CPU halted, scheduler stopped")
	}
	now := time.Now()
	elapsed := now.Sub(s.lastTime)
	s.lastTime = now
	delay := time.Second/time.Duration(s.fps) - elapsed
	if delay < time.Millisecond {
		delay = time.Millisecond
	}
	return delay
}
