package browser

import (
	"context"
	"fmt"
	"log/slog"
	"os/exec"

	"github.com/AveryLindqvistMarsh/drivermatch/internal/platform"
)

// ExecProbe detects the browser version by invoking candidate executables
// with --version and parsing their output. It is used on every host family
// except Windows, where installed browsers are not usually on PATH.
type ExecProbe struct {
	commands []string
	logger   *slog.Logger
}

// NewExecProbe creates a probe that tries the given executables in order.
func NewExecProbe(commands []string, logger *slog.Logger) *ExecProbe {
	if logger == nil {
		logger = slog.Default()
	}
	return &ExecProbe{commands: commands, logger: logger}
}

// DefaultCommands returns the candidate browser executables for the
// detected platform, most likely install first. Arch and Alpine ship
// Chromium rather than Google Chrome, so their ordering is reversed.
func DefaultCommands(info *platform.Info) []string {
	if info != nil && info.IsMacOS() {
		return []string{
			"/Applications/Google Chrome.app/Contents/MacOS/Google Chrome",
			"/Applications/Chromium.app/Contents/MacOS/Chromium",
			"google-chrome",
			"chromium",
		}
	}

	chromeFirst := []string{
		"google-chrome",
		"google-chrome-stable",
		"chromium-browser",
		"chromium",
	}
	chromiumFirst := []string{
		"chromium",
		"chromium-browser",
		"google-chrome",
		"google-chrome-stable",
	}

	if info != nil {
		switch info.Family {
		case platform.FamilyArch, platform.FamilyAlpine, platform.FamilyGentoo:
			return chromiumFirst
		}
	}
	return chromeFirst
}

// DetectVersion runs each candidate executable with --version and returns
// the version parsed from the first command that succeeds.
func (p *ExecProbe) DetectVersion(ctx context.Context) (string, error) {
	for _, command := range p.commands {
		out, err := exec.CommandContext(ctx, command, "--version").Output()
		if err != nil {
			if ctx.Err() != nil {
				return "", fmt.Errorf("browser detection cancelled: %w", ctx.Err())
			}
			p.logger.Debug("browser candidate not usable", "command", command, "error", err)
			continue
		}

		version := parseVersionOutput(string(out))
		if version == "" {
			p.logger.Debug("browser candidate produced no version", "command", command)
			continue
		}

		p.logger.Debug("detected browser version", "command", command, "version", version)
		return version, nil
	}

	return "", fmt.Errorf("tried %d candidate commands: %w", len(p.commands), ErrNotFound)
}
