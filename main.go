package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
)

const usage = `usage: pumpkin [flags] [file]

Runs a program read from file, or from stdin if no file is given.
Flags:
`

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("pumpkin", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprint(stderr, usage)
		fs.PrintDefaults()
	}
	var (
		configPath  = fs.String("config", "", "read settings from this YAML `file`")
		inputs      = fs.String("inputs", "", "comma-separated `list` of inputs for input statements")
		trace       = fs.Bool("trace", true, "print the instruction trace after the output")
		verbose     = fs.Bool("v", false, "log each instruction to stderr as it runs")
		interactive = fs.Bool("i", false, "start an interactive session")
		showTokens  = fs.Bool("tokens", false, "print the tokens and exit")
		showAST     = fs.Bool("ast", false, "print the syntax tree and exit")
		format      = fs.Bool("fmt", false, "print the program in canonical form and exit")
		check       = fs.Bool("check", false, "report every error found without running the program")
	)
	if err := fs.Parse(args); err != nil {
		return 2
	}

	cfg := defaultConfig()
	if *configPath != "" {
		var err error
		cfg, err = loadConfig(*configPath)
		if err != nil {
			fmt.Fprintln(stderr, err)
			return 1
		}
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "inputs":
			cfg.Inputs = splitInputs(*inputs)
		case "trace":
			cfg.Trace = *trace
		case "v":
			cfg.Verbose = *verbose
		}
	})

	if *interactive {
		return repl(cfg)
	}

	var src []byte
	var err error
	switch fs.NArg() {
	case 0:
		src, err = io.ReadAll(stdin)
	case 1:
		src, err = os.ReadFile(fs.Arg(0))
	default:
		fs.Usage()
		return 2
	}
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	if *showTokens {
		printTokens(stdout, tokenize(string(src)))
		return 0
	}

	prog, err := parse(strings.NewReader(string(src)))
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	switch {
	case *showAST:
		printProg(stdout, prog)
		dumpProg(stdout, prog)
		return 0
	case *format:
		fmt.Fprint(stdout, formatProg(prog))
		return 0
	case *check:
		if err := typecheck(prog, cfg.Inputs); err != nil {
			fmt.Fprintln(stderr, err)
			return 1
		}
		return 0
	}

	var logger *log.Logger
	if cfg.Verbose {
		logger = log.New(stderr, "pumpkin: ", 0)
	}
	res, err := runProg(prog, cfg.Inputs, logger)
	writeResult(stdout, cfg, res)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// writeResult prints the output lines and then, if enabled, the trace.
func writeResult(w io.Writer, cfg *Config, res *Result) {
	if cfg.Output {
		for _, line := range res.Output {
			fmt.Fprintln(w, line)
		}
	}
	if cfg.Trace && len(res.Trace) > 0 {
		fmt.Fprintln(w, "--- trace ---")
		for _, line := range res.Trace {
			fmt.Fprintln(w, line)
		}
	}
}
