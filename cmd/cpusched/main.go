// Command cpusched simulates CPU scheduling algorithms over a CSV process file
// and prints each schedule as a Gantt strip and a results table.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/nikitbisht/CPU-Scheduling-Visualizer/internal/loader"
	"github.com/nikitbisht/CPU-Scheduling-Visualizer/internal/logging"
	"github.com/nikitbisht/CPU-Scheduling-Visualizer/internal/render"
	"github.com/nikitbisht/CPU-Scheduling-Visualizer/internal/schedulers"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("cpusched", flag.ContinueOnError)
	fs.SetOutput(stderr)
	algorithm := fs.String("algorithm", "all", "fcfs, sjf, srtf, rr, priority or all")
	quantum := fs.Int("quantum", schedulers.DefaultTimeQuantum, "round robin time quantum")
	logLevel := fs.String("log-level", "warn", "debug, info, warn or error")
	logFormat := fs.String("log-format", "text", "text or json")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "usage: cpusched [flags] <processes.csv>\n\nCSV rows are id,arrival,burst[,priority].\n\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return 2
	}

	logger := logging.NewLoggerWithWriter(stderr, *logFormat, *logLevel)

	processes, err := loader.LoadFile(fs.Arg(0))
	if err != nil {
		logger.Error("load_failed", "path", fs.Arg(0), "error", err)
		return 1
	}
	logger.Debug("processes_loaded", "path", fs.Arg(0), "count", len(processes))

	if strings.EqualFold(*algorithm, "all") {
		schedules, err := schedulers.ComputeAll(processes, *quantum)
		if err != nil {
			logger.Error("schedule_failed", "algorithm", "all", "error", err)
			return 1
		}
		for _, s := range schedules {
			render.Schedule(stdout, s)
		}
		render.Title(stdout, "Comparison")
		render.Comparison(stdout, schedules)
		return 0
	}

	a, err := schedulers.ParseAlgorithm(*algorithm)
	if err != nil {
		logger.Error("schedule_failed", "algorithm", *algorithm, "error", err)
		return 2
	}
	s, err := schedulers.ComputeSchedule(a, processes, *quantum)
	if err != nil {
		logger.Error("schedule_failed", "algorithm", a, "error", err)
		return 1
	}
	render.Schedule(stdout, s)
	return 0
}
