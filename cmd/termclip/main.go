// Command termclip copies stdin to the system clipboard and pastes it back.
//
// Usage:
//
//	termclip [OPTIONS] < input
//	termclip --paste > output
//
// It walks the transports available to the environment in a fixed order: the
// tmux paste buffer, the platform clipboard command, the in-process clipboard
// bindings, and finally an OSC 52 escape sequence written straight to the
// terminal, which carries the selection across SSH.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"termclip/internal/clipboard"
	"termclip/internal/tty"
	"termclip/pkg/probe"
	"termclip/pkg/termclip"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:])
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string) int {
	cfg, err := termclip.ParseArgs(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "termclip: %v\n", err)
		termclip.Usage(os.Stderr)
		return 2
	}
	if cfg.ShowHelp {
		termclip.Usage(os.Stderr)
		return 0
	}
	if cfg.ShowVersion {
		fmt.Println("termclip " + termclip.Version)
		return 0
	}

	app := &termclip.App{
		Config:  cfg,
		Env:     probe.Detect(runtime.GOOS, os.Getenv),
		In:      os.Stdin,
		Out:     os.Stdout,
		Err:     os.Stderr,
		Sink:    tty.Writer,
		Timeout: clipboard.DefaultTimeout,
	}
	if err := app.Run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "termclip: %v\n", err)
		return 1
	}
	return 0
}
