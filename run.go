package main

import (
	"log"
	"strings"
)

// A Result holds what a program produced: its printed lines
// and its trace of executed instructions, both in execution order.
// Trace is Code rendered as text.
type Result struct {
	Output []string
	Trace  []string
	Code   []Instr
}

// Run parses and evaluates src, feeding input statements from inputs
// in order. Every call starts from nothing.
//
// If evaluation fails, the Result holds whatever was produced before
// the failing statement.
func Run(src string, inputs []string) (*Result, error) {
	return runLogged(src, inputs, nil)
}

func runLogged(src string, inputs []string, logger *log.Logger) (*Result, error) {
	prog, err := parse(strings.NewReader(src))
	if err != nil {
		return &Result{}, err
	}
	return runProg(prog, inputs, logger)
}

func runProg(prog []Stmt, inputs []string, logger *log.Logger) (*Result, error) {
	ev := newEvaluator(inputs)
	ev.log = logger
	err := ev.run(prog)
	return &Result{Output: ev.output, Trace: listing(ev.code), Code: ev.code}, err
}

// splitInputs turns a comma-separated list of raw inputs into the
// input queue: each item is trimmed and empty items are dropped.
func splitInputs(raw string) []string {
	var out []string
	for _, item := range strings.Split(raw, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		out = append(out, item)
	}
	return out
}
