package termclip

import (
	"context"
	"fmt"
	"io"
	"time"

	"termclip/internal/clipboard"
	"termclip/internal/diag"
	"termclip/pkg/probe"
)

// App wires one invocation's environment and streams together. Every
// dependency is injected so the whole flow runs against in-memory stand-ins.
type App struct {
	Config  *Config
	Env     probe.Context
	In      io.Reader
	Out     io.Writer
	Err     io.Writer
	Sink    clipboard.SinkFunc
	Timeout time.Duration
}

// Run executes the copy or paste the Config asks for. Success is silent on
// stdout; pipelines stay clean.
func (a *App) Run(ctx context.Context) error {
	var log *diag.Logger
	if a.Config.Verbose || a.Env.Debug {
		log = diag.New(a.Err)
	}
	log.Debugf("environment: os=%s mux=%s", a.Env.OS, a.Env.Mux)

	sel := &clipboard.Selector{
		Env:     a.Env,
		Sink:    a.Sink,
		Timeout: a.Timeout,
		Log:     log,
	}

	if a.Config.Paste {
		out, res, err := sel.Paste(ctx)
		if err != nil {
			return err
		}
		log.Debugf("pasted %d bytes via %s", res.Bytes, res.Transport)
		if _, err := a.Out.Write(out); err != nil {
			return fmt.Errorf("writing clipboard contents: %w", err)
		}
		return nil
	}

	payload, err := io.ReadAll(a.In)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}
	if len(payload) == 0 {
		log.Debugf("empty input, nothing to copy")
		return nil
	}

	res, err := sel.Copy(ctx, payload)
	if err != nil {
		return err
	}
	log.Debugf("copied %d bytes via %s", res.Bytes, res.Transport)
	return nil
}
