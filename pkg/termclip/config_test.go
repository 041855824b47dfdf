package termclip

import (
	"strings"
	"testing"
)

func TestParseArgs(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want Config
	}{
		{"no args", nil, Config{}},
		{"paste long", []string{"--paste"}, Config{Paste: true}},
		{"paste short", []string{"-p"}, Config{Paste: true}},
		{"verbose", []string{"-v"}, Config{Verbose: true}},
		{"help", []string{"--help"}, Config{ShowHelp: true}},
		{"version", []string{"--version"}, Config{ShowVersion: true}},
		{"combined", []string{"--paste", "--verbose"}, Config{Paste: true, Verbose: true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseArgs(tt.args)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if *got != tt.want {
				t.Errorf("got %+v, want %+v", *got, tt.want)
			}
		})
	}
}

func TestParseArgsRejectsUnknownOptions(t *testing.T) {
	if _, err := ParseArgs([]string{"--frobnicate"}); err == nil {
		t.Error("expected an error for an unknown option")
	}
	if _, err := ParseArgs([]string{"file.txt"}); err == nil {
		t.Error("expected an error for a positional argument")
	}
}

func TestUsageMentionsEveryKnob(t *testing.T) {
	var sb strings.Builder
	Usage(&sb)

	for _, want := range []string{
		"--paste",
		"--verbose",
		"--version",
		"--help",
		"TERMCLIP_FORCE_OSC52",
		"TERMCLIP_FORCE_NATIVE",
		"TERMCLIP_OSC52_MAX_B64",
		"TERMCLIP_DEBUG",
	} {
		if !strings.Contains(sb.String(), want) {
			t.Errorf("usage text is missing %s", want)
		}
	}
}
