//go:build !windows

package browser

import (
	"github.com/AveryLindqvistMarsh/drivermatch/internal/platform"
)

// New creates the browser probe for the current host: an ExecProbe on
// every non-Windows platform.
func New(info *platform.Info, opts Options) Probe {
	commands := opts.Commands
	if len(commands) == 0 {
		commands = DefaultCommands(info)
	}
	return NewExecProbe(commands, opts.logger())
}
