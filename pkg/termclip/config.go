package termclip

import (
	"fmt"
	"io"
	"strings"
)

// Config holds the parsed command line.
type Config struct {
	Paste       bool
	Verbose     bool
	ShowHelp    bool
	ShowVersion bool
}

// ParseArgs parses the command line, excluding the program name. The command
// takes no positional arguments; input arrives on stdin.
func ParseArgs(args []string) (*Config, error) {
	cfg := &Config{}

	for _, arg := range args {
		switch arg {
		case "-h", "--help":
			cfg.ShowHelp = true
		case "--version":
			cfg.ShowVersion = true
		case "-p", "--paste":
			cfg.Paste = true
		case "-v", "--verbose":
			cfg.Verbose = true
		default:
			if strings.HasPrefix(arg, "-") {
				return nil, fmt.Errorf("unknown option: %s", arg)
			}
			return nil, fmt.Errorf("unexpected argument: %s (input is read from stdin)", arg)
		}
	}

	return cfg, nil
}

// Usage writes the command help text to w.
func Usage(w io.Writer) {
	fmt.Fprintf(w, `Usage: termclip [OPTIONS] < input
       termclip --paste > output

Description:
  - Reads stdin and places it on the system clipboard.
  - Picks the best transport for the environment: the platform clipboard
    command, the tmux paste buffer, or an OSC 52 escape sequence written to
    the terminal (works across SSH).
  - With --paste, writes the current clipboard contents to stdout.

Options:
  -p, --paste      Paste the clipboard to stdout instead of copying
  -v, --verbose    Log transport selection to stderr
      --version    Print the version and exit
  -h, --help       Show help

Environment:
  TERMCLIP_FORCE_OSC52    Use only the OSC 52 transport
  TERMCLIP_FORCE_NATIVE   Use only native transports
  TERMCLIP_OSC52_MAX_B64  Max base64 bytes for OSC 52 (default 75000)
  TERMCLIP_DEBUG          Same as --verbose

Examples:
  echo hello | termclip
  git diff | termclip
  termclip --paste > patch.diff
  make 2>&1 | TERMCLIP_FORCE_OSC52=1 termclip
`)
}
