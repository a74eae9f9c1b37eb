package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"os-scheduler-simulator/config"
	"os-scheduler-simulator/internal/report"
	"os-scheduler-simulator/internal/requests"
	"os-scheduler-simulator/internal/schedulers"
)

var ErrInvalidArgs = errors.New("invalid args")

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func run(args []string, w io.Writer) error {
	flags := flag.NewFlagSet("schedsim", flag.ContinueOnError)
	configPath := flags.String("config", "", "path to a config file (default ./config.yaml)")
	algorithm := flags.String("algorithm", "", "policy id or alias, or \"all\" (default from config)")
	quantum := flags.Int("quantum", 0, "time quantum for RR and MLFQ (default from config)")
	trace := flags.Bool("trace", false, "log every scheduling decision")
	if err := flags.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	schedulers.SetTrace(cfg.Trace || *trace)

	f, closeFile, err := openProcessingFile(flags.Args()...)
	if err != nil {
		return err
	}
	defer closeFile()

	processes, err := requests.LoadCSV(f)
	if err != nil {
		return err
	}

	name := *algorithm
	if name == "" {
		name = cfg.DefaultAlgorithm
	}
	algorithms := schedulers.Policies()
	if !strings.EqualFold(name, "all") {
		id, err := schedulers.ParsePolicy(name)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidArgs, err)
		}
		algorithms = []schedulers.PolicyID{id}
	}

	// an explicit -quantum, even 0, overrides the config and is validated
	request := requests.ScheduleRequest{Processes: processes}
	flags.Visit(func(f *flag.Flag) {
		if f.Name == "quantum" {
			request.TimeQuantum = quantum
		}
	})
	for _, id := range algorithms {
		fallback := 0
		switch id {
		case schedulers.RoundRobin:
			fallback = cfg.RoundRobinTimeQuantum
		case schedulers.MLFQ:
			fallback = cfg.MultilevelFeedbackQueueBaseTimeQuantum
		}
		q := request.Quantum(fallback)

		result, err := schedulers.Simulate(processes, id, q)
		if err != nil {
			return err
		}
		report.Render(w, id.Name(), schedulers.GenerateResponse(id, q.OrElse(0), result))
	}
	return nil
}

func openProcessingFile(args ...string) (*os.File, func(), error) {
	if len(args) != 1 {
		return nil, nil, fmt.Errorf("%w: must give a scheduling file to process", ErrInvalidArgs)
	}
	// Read in CSV process CSV file
	f, err := os.Open(args[0])
	if err != nil {
		return nil, nil, fmt.Errorf("%v: error opening scheduling file", err)
	}
	closeFn := func() {
		if err := f.Close(); err != nil {
			log.Printf("%v: error closing scheduling file", err)
		}
	}

	return f, closeFn, nil
}
