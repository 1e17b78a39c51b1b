package lang

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/golang/glog"
	"github.com/mousetail/painrose-go/value"
)

// DebugSession drives a ProgramState interactively from a command stream:
// step N cells, print the current IP/mode/stack, set breakpoints on an
// address key, quit.
//
// commands:
//
//	s [n]: step n cells (default 1)
//	p:     print the current IP, direction, mode and stack
//	br a:  break when the IP's Key() equals a
//	q:     quit
type DebugSession struct {
	p           *ProgramState
	steps       uint64
	breakpoints []string
	out         io.Writer
}

// NewDebugSession wraps p for interactive stepping, writing prompts and
// state dumps to out.
func NewDebugSession(p *ProgramState, out io.Writer) *DebugSession {
	return &DebugSession{p: p, out: out}
}

func (d *DebugSession) basePrint() {
	ip, dir := d.p.IP()
	fmt.Fprintln(d.out, "--------------------------------------------------")
	fmt.Fprintf(d.out, "Executed cells: %d\n", d.steps)
	fmt.Fprintf(d.out, "IP: %s facing %s\n", ip.Key(), dir)
	fmt.Fprintf(d.out, "Mode: %s\n", d.p.Mode().Kind)
	fmt.Fprintf(d.out, "Stack: %s\n", formatStack(d.p.Stack().Snapshot()))
}

func formatStack(vs []value.Value) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = v.String()
	}
	return "[" + strings.Join(parts, " ") + "]"
}

func (d *DebugSession) checkBreak() bool {
	ip, _ := d.p.IP()
	key := ip.Key()
	for _, bp := range d.breakpoints {
		if bp == key {
			fmt.Fprintf(d.out, "Break at: %s\n", key)
			return true
		}
	}
	return false
}

func (d *DebugSession) stepCommand(args []string) {
	n := 1
	if len(args) >= 2 {
		if v, err := strconv.Atoi(args[1]); err == nil {
			n = v
		}
	}
	for i := 0; i < n && d.p.IsRunning(); i++ {
		d.p.Step()
		d.steps++
		if d.checkBreak() {
			break
		}
	}
}

func (d *DebugSession) breakpointCommand(args []string) {
	if len(args) < 2 {
		return
	}
	d.breakpoints = append(d.breakpoints, args[1])
}

// RunCommand executes one debug-console command line. It reports whether
// the session should keep reading commands.
func (d *DebugSession) RunCommand(line string) bool {
	args := strings.Fields(line)
	if len(args) == 0 {
		return true
	}
	switch args[0] {
	case "p", "print":
		d.basePrint()
	case "s", "step":
		d.stepCommand(args)
		if !d.p.IsRunning() {
			fmt.Fprintln(d.out, "Program stopped.")
		}
	case "br", "breakpoint":
		d.breakpointCommand(args)
	case "q", "quit":
		fmt.Fprintln(d.out, "Quitting.")
		return false
	default:
		glog.Infof("debug: unknown command %q", line)
	}
	return true
}

// Run reads commands from r, one per line, until RunCommand reports a
// quit or the program stops running.
func (d *DebugSession) Run(r io.Reader) {
	in := bufio.NewScanner(r)
	for d.p.IsRunning() {
		fmt.Fprint(d.out, "debug, 'q' to quit\n>> ")
		if !in.Scan() {
			return
		}
		if !d.RunCommand(in.Text()) {
			return
		}
	}
}
