package snes

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// DebugConsole drives the machine from stdin instead of the frame
// scheduler.
// commands:
//   s [n]:
//     execute n instructions (default 1).
//   f:
//     run one frame tick (cycle budget + render).
//   p:
//     print CPU state and the raw bytes around PC.
//   br 0xNNNN:
//     set a break point.
//   r:
//     reset.
//   q:
//     quit.
type DebugConsole struct {
	scheduler   *Scheduler
	breakpoints []uint16
}

// NewDebugConsole creates a debugger over the scheduler's machine.
func NewDebugConsole(scheduler *Scheduler) *DebugConsole {
	return &DebugConsole{scheduler: scheduler}
}

func (d *DebugConsole) console() *Console {
	return d.scheduler.Console()
}

func (d *DebugConsole) basePrint() {
	c := d.console()
	fmt.Println("--------------------------------------------------")
	fmt.Printf("Executed cycles: %d\n", c.CPU.cycles)
	fmt.Println("Last: " + c.CPU.lastExecution)
	fmt.Println("CPU: " + c.Snapshot().String())
	for _, row := range c.DisassembleWindow(c.CPU.pc, 5) {
		marker := " "
		if row.Address == c.CPU.pc {
			marker = ">"
		}
		fmt.Printf("%s 0x%04x: 0x%02x\n", marker, row.Address, row.Data)
	}
}

func (d *DebugConsole) checkBreak() bool {
	for _, bp := range d.breakpoints {
		if bp == d.console().CPU.pc {
			fmt.Printf("Break at: 0x%04x\n", bp)
			return true
		}
	}
	return false
}

func (d *DebugConsole) stepCommand(args []string) {
	n := 1
	if 1 < len(args) {
		if v, err := strconv.Atoi(args[1]); err == nil {
			n = v
		}
	}
	c := d.console()
	for i := 0; i < n; i++ {
		if c.CPU.halted {
			fmt.Println("CPU halted, reset to continue.")
			return
		}
		c.CPU.Step()
		if d.checkBreak() {
			return
		}
	}
}

func (d *DebugConsole) breakPointCommand(args []string) {
	if len(args) < 2 {
		fmt.Println("Usage: br 0xNNNN")
		return
	}
	var i int
	fmt.Sscanf(args[1], "0x%x", &i)
	d.breakpoints = append(d.breakpoints, uint16(i))
}

// Run reads and executes commands until q or EOF.
func (d *DebugConsole) Run() error {
	in := bufio.NewReader(os.Stdin)
	for {
		fmt.Printf("Debugger mode, 'q' to quit\n>> ")
		line, err := in.ReadString('\n')
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		args := strings.Split(strings.TrimSuffix(line, "\n"), " ")
		switch args[0] {
		case "s", "step":
			d.stepCommand(args)
			d.basePrint()
		case "f", "frame":
			d.scheduler.StepFrame()
			d.basePrint()
		case "p", "print":
			d.basePrint()
		case "br", "breakpoint":
			d.breakPointCommand(args)
		case "r", "reset":
			d.scheduler.Reset()
			d.basePrint()
		case "q", "quit":
			fmt.Println("Quitting.")
			return nil
		default:
			fmt.Printf("Unknown command %s\n", args[0])
		}
	}
}
