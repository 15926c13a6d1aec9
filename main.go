package main

import (
	"flag"
	"os"
	"runtime"
	"runtime/pprof"

	"github.com/golang/glog"

	"tsnes/snes"
	"tsnes/ui"
)

var (
	width      = flag.Int("width", snes.Width*3, "window width")
	height     = flag.Int("height", snes.Height*3, "window height")
	fps        = flag.Int("fps", 60, "target frame rate")
	cpuprofile = flag.String("cpuprofile", "", "write cpu profile to file")
	debug      = flag.Bool("debug", false, "run the stdin debugger instead of the window")
)

func init() {
	runtime.LockOSThread()
}

func main() {
	flag.Parse()
	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			glog.Fatal("Failed to create CPU profile: ", err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			glog.Fatal("Failed to start CPU profile: ", err)
		}
		defer pprof.StopCPUProfile()
	}
	scheduler := snes.NewScheduler(*fps, snes.LoadDemo)
	if *debug {
		if err := snes.NewDebugConsole(scheduler).Run(); err != nil {
			glog.Fatalln(err)
		}
		return
	}
	ui.Start(scheduler, *width, *height)
}
