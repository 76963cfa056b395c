//go:build windows

package browser

import (
	"context"
	"fmt"
	"log/slog"
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/AveryLindqvistMarsh/drivermatch/internal/platform"
)

// defaultChromePaths are the well-known Chrome installation paths on
// Windows, checked in order.
var defaultChromePaths = []string{
	`C:\Program Files\Google\Chrome\Application\chrome.exe`,
	`C:\Program Files (x86)\Google\Chrome\Application\chrome.exe`,
}

// FileVersionProbe detects the browser version by reading the file version
// resource of chrome.exe at a fixed list of installation paths.
type FileVersionProbe struct {
	paths  []string
	logger *slog.Logger
}

// NewFileVersionProbe creates a probe that inspects the given executable
// paths in order.
func NewFileVersionProbe(paths []string, logger *slog.Logger) *FileVersionProbe {
	if logger == nil {
		logger = slog.Default()
	}
	return &FileVersionProbe{paths: paths, logger: logger}
}

// New creates the browser probe for the current host: a FileVersionProbe
// on Windows.
func New(info *platform.Info, opts Options) Probe {
	paths := opts.Paths
	if len(paths) == 0 {
		paths = defaultChromePaths
	}
	return NewFileVersionProbe(paths, opts.logger())
}

// DetectVersion returns the file version of the first path that exists and
// carries a readable version resource.
func (p *FileVersionProbe) DetectVersion(ctx context.Context) (string, error) {
	for _, path := range p.paths {
		if ctx.Err() != nil {
			return "", fmt.Errorf("browser detection cancelled: %w", ctx.Err())
		}

		version, err := fileVersion(path)
		if err != nil {
			p.logger.Debug("no readable version resource", "path", path, "error", err)
			continue
		}

		p.logger.Debug("detected browser version", "path", path, "version", version)
		return version, nil
	}

	return "", fmt.Errorf("tried %d installation paths: %w", len(p.paths), ErrNotFound)
}

// fileVersion reads the fixed file version from a PE version resource.
func fileVersion(path string) (string, error) {
	size, err := windows.GetFileVersionInfoSize(path, nil)
	if err != nil {
		return "", fmt.Errorf("version info size: %w", err)
	}

	data := make([]byte, size)
	if err := windows.GetFileVersionInfo(path, 0, size, unsafe.Pointer(&data[0])); err != nil {
		return "", fmt.Errorf("version info: %w", err)
	}

	var fixed *windows.VS_FIXEDFILEINFO
	var fixedLen uint32
	if err := windows.VerQueryValue(unsafe.Pointer(&data[0]), `\`, unsafe.Pointer(&fixed), &fixedLen); err != nil {
		return "", fmt.Errorf("query version value: %w", err)
	}
	if fixed == nil || fixedLen == 0 {
		return "", fmt.Errorf("empty fixed file info")
	}

	return fmt.Sprintf("%d.%d.%d.%d",
		fixed.FileVersionMS>>16, fixed.FileVersionMS&0xffff,
		fixed.FileVersionLS>>16, fixed.FileVersionLS&0xffff), nil
}
