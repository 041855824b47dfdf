package clipboard

import "context"

// commandTransport drives one external clipboard tool. An empty argv for a
// direction means the tool cannot serve it.
type commandTransport struct {
	name      string
	copyArgv  []string
	pasteArgv []string
	run       runner
}

var _ Transport = (*commandTransport)(nil)

func (c *commandTransport) Name() string   { return c.name }
func (c *commandTransport) CanCopy() bool  { return len(c.copyArgv) > 0 }
func (c *commandTransport) CanPaste() bool { return len(c.pasteArgv) > 0 }

func (c *commandTransport) Copy(ctx context.Context, payload []byte) error {
	_, err := c.run.run(ctx, c.copyArgv, payload)
	return err
}

func (c *commandTransport) Paste(ctx context.Context) ([]byte, error) {
	return c.run.run(ctx, c.pasteArgv, nil)
}

// newTmux targets the tmux paste buffer. load-buffer -w also forwards the
// buffer to the attached client's system clipboard.
func newTmux(run runner) *commandTransport {
	return &commandTransport{
		name:      "tmux",
		copyArgv:  []string{"tmux", "load-buffer", "-w", "-"},
		pasteArgv: []string{"tmux", "show-buffer"},
		run:       run,
	}
}

// macOS
func newPbcopy(run runner) *commandTransport {
	return &commandTransport{
		name:      "pbcopy",
		copyArgv:  []string{"pbcopy"},
		pasteArgv: []string{"pbpaste"},
		run:       run,
	}
}

// Windows. clip.exe is write-only; paste goes through powershell.
func newClip(run runner) *commandTransport {
	return &commandTransport{
		name:     "clip",
		copyArgv: []string{"clip.exe"},
		run:      run,
	}
}

func newPowershell(run runner) *commandTransport {
	return &commandTransport{
		name:      "powershell",
		copyArgv:  []string{"powershell", "-NoProfile", "-Command", "Set-Clipboard -Value ([Console]::In.ReadToEnd())"},
		pasteArgv: []string{"powershell", "-NoProfile", "-Command", "Get-Clipboard -Raw"},
		run:       run,
	}
}

// Wayland
func newWlCopy(run runner) *commandTransport {
	return &commandTransport{
		name:      "wl-copy",
		copyArgv:  []string{"wl-copy"},
		pasteArgv: []string{"wl-paste", "-n"},
		run:       run,
	}
}

// X11
func newXclip(run runner) *commandTransport {
	return &commandTransport{
		name:      "xclip",
		copyArgv:  []string{"xclip", "-selection", "clipboard", "-in"},
		pasteArgv: []string{"xclip", "-selection", "clipboard", "-o"},
		run:       run,
	}
}

func newXsel(run runner) *commandTransport {
	return &commandTransport{
		name:      "xsel",
		copyArgv:  []string{"xsel", "--clipboard", "--input"},
		pasteArgv: []string{"xsel", "--clipboard", "--output"},
		run:       run,
	}
}
