package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/havrydotdev/lox/config"
	"github.com/havrydotdev/lox/lox"
)

const (
	exitUsage   = 64
	exitData    = 65
	exitRuntime = 70
	exitIO      = 74
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet("lox", flag.ContinueOnError)
	flags.SetOutput(stderr)
	configPath := flags.String("config", config.DefaultPath, "path to the YAML settings file")
	printAST := flags.Bool("ast", false, "print the syntax tree of each statement before running it")
	verbose := flags.Bool("v", false, "log driver events at debug level")

	if err := flags.Parse(args); err != nil {
		return exitUsage
	}

	if flags.NArg() > 1 {
		fmt.Fprintln(stderr, "Usage: lox [flags] [script]")
		return exitUsage
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitUsage
	}

	level := cfg.Level()
	if *verbose {
		level = slog.LevelDebug
	}

	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	logger.Debug("config loaded", "path", *configPath, "prompt", cfg.Prompt, "print_ast", cfg.PrintAST)

	session := lox.NewSession(stdout, stderr)
	session.PrintAST = cfg.PrintAST || *printAST

	if flags.NArg() == 1 {
		return runFile(flags.Arg(0), session, logger)
	}

	return runPrompt(stdin, stdout, cfg.Prompt, session, logger)
}

func runFile(path string, session *lox.Session, logger *slog.Logger) int {
	text, err := os.ReadFile(path)
	if err != nil {
		logger.Error("cannot read script", "path", path, "err", err)
		return exitIO
	}

	logger.Debug("running script", "path", path, "bytes", len(text))
	session.Run(string(text))

	switch {
	case session.HadError():
		logger.Debug("script not executed", "path", path, "diagnostics", len(session.Diagnostics()))
		return exitData
	case session.HadRuntimeError():
		return exitRuntime
	}

	return 0
}

func runPrompt(stdin io.Reader, stdout io.Writer, prompt string, session *lox.Session, logger *slog.Logger) int {
	reader := bufio.NewReader(stdin)
	for {
		fmt.Fprint(stdout, prompt)

		line, err := reader.ReadString('\n')
		if line != "" {
			session.Run(line)
			session.Reset()
		}

		if errors.Is(err, io.EOF) {
			return 0
		}

		if err != nil {
			logger.Error("cannot read input", "err", err)
			return exitIO
		}
	}
}
