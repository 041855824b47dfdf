// Package probe inspects the process environment and produces the immutable
// context that drives transport selection: the operating-system family, the
// terminal multiplexer in the way (if any), and the TERMCLIP_* overrides.
//
// Detect is a pure function of its inputs. The environment is read exactly
// once per invocation; nothing in the rest of the program consults it again.
package probe

import (
	"strconv"
	"strings"
)

// OS is the detected operating-system family. It decides which native
// clipboard tools are worth trying; it never affects OSC52 availability.
type OS int

const (
	// OSUnknown covers unsupported platforms and headless Linux/BSD
	// sessions (no display server). OSC52 still applies there.
	OSUnknown OS = iota
	OSMac
	OSWindows
	OSLinuxX11
	OSLinuxWayland
)

func (o OS) String() string {
	switch o {
	case OSMac:
		return "macos"
	case OSWindows:
		return "windows"
	case OSLinuxX11:
		return "linux/x11"
	case OSLinuxWayland:
		return "linux/wayland"
	default:
		return "unknown"
	}
}

// Multiplexer is the detected terminal multiplexer. Inside tmux the buffer
// leads the native candidate order; under both tmux and screen the OSC52
// sequence needs passthrough framing.
type Multiplexer int

const (
	MuxNone Multiplexer = iota
	MuxTmux
	MuxScreen
)

func (m Multiplexer) String() string {
	switch m {
	case MuxTmux:
		return "tmux"
	case MuxScreen:
		return "screen"
	default:
		return "none"
	}
}

// Recognized environment variables.
const (
	EnvForceOSC52  = "TERMCLIP_FORCE_OSC52"
	EnvForceNative = "TERMCLIP_FORCE_NATIVE"
	EnvMaxEncoded  = "TERMCLIP_OSC52_MAX_B64"
	EnvDebug       = "TERMCLIP_DEBUG"
)

// Context is the environment snapshot for one invocation. Built once by
// Detect and immutable afterwards.
type Context struct {
	OS  OS
	Mux Multiplexer

	// ForceOSC52 restricts the candidate list to OSC52; ForceNative
	// restricts it to native adapters. When both are set, ForceOSC52 wins.
	ForceOSC52  bool
	ForceNative bool

	// MaxEncoded overrides the OSC52 encoded-size ceiling. Zero means the
	// encoder default. Unset, malformed, and non-positive values all map
	// to zero rather than aborting the run.
	MaxEncoded int

	// Debug enables diagnostic logging, same as the -v flag.
	Debug bool
}

// Detect builds a Context from an operating-system identity (runtime.GOOS)
// and an environment lookup (os.Getenv). Both are injected so tests never
// mutate the process environment.
func Detect(goos string, getenv func(string) string) Context {
	return Context{
		OS:          detectOS(goos, getenv),
		Mux:         detectMux(getenv),
		ForceOSC52:  boolVar(getenv(EnvForceOSC52)),
		ForceNative: boolVar(getenv(EnvForceNative)),
		MaxEncoded:  intVar(getenv(EnvMaxEncoded)),
		Debug:       boolVar(getenv(EnvDebug)),
	}
}

func detectOS(goos string, getenv func(string) string) OS {
	switch goos {
	case "darwin":
		return OSMac
	case "windows":
		return OSWindows
	default:
		// Linux and the BSDs: the display-server variables decide which
		// clipboard tooling can work at all. Sessions usually carry both
		// WAYLAND_DISPLAY and an XWayland DISPLAY; Wayland wins and the
		// selector falls through to the X11 tools on its own.
		if getenv("WAYLAND_DISPLAY") != "" {
			return OSLinuxWayland
		}
		if getenv("DISPLAY") != "" {
			return OSLinuxX11
		}
		return OSUnknown
	}
}

func detectMux(getenv func(string) string) Multiplexer {
	// TMUX is a control variable set only inside tmux. It wins over a
	// leftover screen STY when sessions are nested.
	if getenv("TMUX") != "" {
		return MuxTmux
	}
	if getenv("STY") != "" && strings.HasPrefix(getenv("TERM"), "screen") {
		return MuxScreen
	}
	return MuxNone
}

// boolVar treats any non-empty value except "0" and "false" as enabled.
func boolVar(v string) bool {
	return v != "" && v != "0" && v != "false"
}

// intVar parses a positive integer; anything else means "use the default".
func intVar(v string) int {
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return 0
	}
	return n
}
