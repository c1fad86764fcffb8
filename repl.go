package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/peterh/liner"
)

const (
	promptMain = "pumpkin> "
	helpText   = `
Each line is a complete program, run from a clean slate.
  :inputs a, b, c   set the inputs every run starts with
  :trace on|off     show or hide the trace
  :help             show this text
  :quit             exit
`
)

// session is the REPL state that survives between runs.
// Variables don't; each line starts with an empty environment.
type session struct {
	cfg *Config
	out io.Writer
}

func repl(cfg *Config) int {
	fmt.Println("pumpkin REPL. Ctrl+D exits, :help for commands.")

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if f, err := os.Open(cfg.History); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}
	defer func() {
		if f, err := os.Create(cfg.History); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	s := &session{cfg: cfg, out: os.Stdout}
	for {
		line, err := ln.Prompt(promptMain)
		if errors.Is(err, liner.ErrPromptAborted) {
			continue
		}
		if err != nil {
			// io.EOF or a dead terminal
			fmt.Println()
			return 0
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		ln.AppendHistory(line)
		if !s.handle(line) {
			return 0
		}
	}
}

// handle runs one REPL line. It returns false when the session should end.
func (s *session) handle(line string) bool {
	line = strings.TrimSpace(line)
	if strings.HasPrefix(line, ":") {
		cmd, arg, _ := strings.Cut(line, " ")
		arg = strings.TrimSpace(arg)
		switch strings.ToLower(cmd) {
		case ":quit", ":q":
			return false
		case ":help":
			fmt.Fprint(s.out, helpText)
		case ":inputs":
			s.cfg.Inputs = splitInputs(arg)
			fmt.Fprintf(s.out, "inputs: %q\n", s.cfg.Inputs)
		case ":trace":
			switch strings.ToLower(arg) {
			case "on":
				s.cfg.Trace = true
			case "off":
				s.cfg.Trace = false
			default:
				fmt.Fprintln(s.out, "usage: :trace on|off")
			}
		default:
			fmt.Fprintln(s.out, "unknown command. Type :help for help.")
		}
		return true
	}

	res, err := Run(line, s.cfg.Inputs)
	writeResult(s.out, s.cfg, res)
	if err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
	}
	return true
}
