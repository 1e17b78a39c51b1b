// Command painrose loads and runs a program written against the Penrose
// rhomb tiling described in package tiling/rhomb, stepping it to
// completion against stdin/stdout.
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"

	"github.com/golang/glog"

	"github.com/mousetail/painrose-go/lang"
	"github.com/mousetail/painrose-go/render"
)

var (
	steps = flag.Int("steps", 0, "maximum number of steps to run, 0 for unbounded")
	svg   = flag.String("svg", "", "write one SVG snapshot of the loaded program to this path before running")
	view  = flag.Bool("view", false, "open a live OpenGL view of the program as it steps")
	seq   = flag.Bool("seq", false, "use the historical sequential loader instead of the line-grammar loader")
	debug = flag.Bool("debug", false, "drive the program from an interactive debug console on stdin instead of free-running it")
)

func main() {
	flag.Parse()
	defer glog.Flush()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: painrose [flags] <source-file>")
		os.Exit(1)
	}

	os.Exit(run(flag.Arg(0)))
}

// run loads and executes one program, returning the process exit code:
// 0 on a clean stop, 1 on a load failure.
func run(path string) int {
	source, err := os.ReadFile(path)
	if err != nil {
		glog.Errorf("painrose: reading %s: %v", path, err)
		return 1
	}

	io := lang.NewStdIO(os.Stdin, os.Stdout)
	load := lang.Load
	if *seq {
		load = lang.LoadSequential
	}
	p, err := load(string(source), io, io)
	if err != nil {
		glog.Errorf("painrose: loading %s: %v", path, err)
		return 1
	}

	if *svg != "" {
		if err := writeSVGSnapshot(p, *svg); err != nil {
			glog.Errorf("painrose: writing SVG snapshot: %v", err)
		}
	}

	if *debug {
		runDebug(p)
		return 0
	}

	var live *render.View
	if *view {
		runtime.LockOSThread()
		v, err := render.NewView(800, 800)
		if err != nil {
			glog.Errorf("painrose: opening live view: %v", err)
		} else {
			live = v
			defer live.Close()
		}
	}

	runFree(p, live)
	return 0
}

func runFree(p *lang.ProgramState, live *render.View) {
	for i := 0; (*steps == 0 || i < *steps) && p.IsRunning(); i++ {
		p.Step()
		if live != nil {
			live.Draw(render.Frame(p))
			if live.ShouldClose() {
				return
			}
		}
	}
}

func runDebug(p *lang.ProgramState) {
	session := lang.NewDebugSession(p, os.Stdout)
	session.Run(os.Stdin)
}

func writeSVGSnapshot(p *lang.ProgramState, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	render.WriteSVG(f, render.Frame(p))
	return nil
}
