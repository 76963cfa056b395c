// Package browser detects the version of the locally installed Chrome or
// Chromium browser.
//
// One Probe interface covers both host families. On Unix hosts the probe
// shells out to a list of candidate browser executables with --version and
// parses the output of the first one that runs. On Windows the probe reads
// the file version resource of chrome.exe at the well-known installation
// paths. The concrete implementation is selected at startup from the
// detected platform; callers never branch on the host OS themselves.
package browser

import (
	"context"
	"errors"
	"log/slog"
)

// ErrNotFound indicates that no Chrome or Chromium installation could be
// detected via any known path or command.
var ErrNotFound = errors.New("no Chrome or Chromium installation found")

// Probe detects the full version string of the installed browser.
type Probe interface {
	// DetectVersion returns the full dotted version string of the first
	// browser installation found, or an error wrapping ErrNotFound when
	// none is detectable.
	DetectVersion(ctx context.Context) (string, error)
}

// Options configures probe construction. Zero values select platform
// defaults.
type Options struct {
	// Commands overrides the candidate executable names tried on Unix
	// hosts.
	Commands []string
	// Paths overrides the candidate chrome.exe paths inspected on Windows
	// hosts.
	Paths []string
	// Logger receives debug output. Nil means slog.Default().
	Logger *slog.Logger
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.Default()
}
