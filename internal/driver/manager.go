package driver

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/AveryLindqvistMarsh/drivermatch/internal/browser"
	"github.com/AveryLindqvistMarsh/drivermatch/internal/catalog"
	"github.com/AveryLindqvistMarsh/drivermatch/internal/platform"
)

// archiveName is the temporary archive filename created in the target
// directory during an install and removed afterwards.
const archiveName = "chromedriver.zip"

// CatalogClient fetches the version catalog.
type CatalogClient interface {
	Fetch(ctx context.Context) (*catalog.Catalog, error)
}

// Manager orchestrates the check-probe-resolve-install sequence.
type Manager struct {
	dir           string
	platformInfo  *platform.Info
	probe         browser.Probe
	catalogClient CatalogClient
	downloader    *Downloader
	extractor     *Extractor
	strict        bool
	logger        *slog.Logger
}

// Config holds configuration for the driver manager.
type Config struct {
	// Dir is the directory the driver is installed into. Empty means the
	// current working directory.
	Dir string
	// Platform contains OS and architecture information.
	Platform *platform.Info
	// Probe detects the installed browser version.
	Probe browser.Probe
	// Catalog fetches the version catalog. Nil means the default client
	// for the public endpoint.
	Catalog CatalogClient
	// Strict makes a failed resolution an error instead of a logged no-op.
	Strict bool
	// Logger receives progress output. Nil means slog.Default().
	Logger *slog.Logger
}

// NewManager creates a new driver manager.
func NewManager(config Config) (*Manager, error) {
	if config.Platform == nil {
		return nil, fmt.Errorf("Platform is required")
	}
	if config.Probe == nil {
		return nil, fmt.Errorf("Probe is required")
	}

	dir := config.Dir
	if dir == "" {
		dir = "."
	}

	catalogClient := config.Catalog
	if catalogClient == nil {
		catalogClient = catalog.NewClient("")
	}

	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Manager{
		dir:           dir,
		platformInfo:  config.Platform,
		probe:         config.Probe,
		catalogClient: catalogClient,
		downloader:    NewDownloader(),
		extractor:     NewExtractor(),
		strict:        config.Strict,
		logger:        logger,
	}, nil
}

// DriverPath returns the filesystem path the driver is installed at.
func (m *Manager) DriverPath() string {
	return filepath.Join(m.dir, m.platformInfo.DriverFilename())
}

// IsInstalled checks whether the driver executable already exists. The
// existing file is trusted as-is; its version is not checked.
func (m *Manager) IsInstalled() (bool, error) {
	info, err := os.Stat(m.DriverPath())
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("stat driver: %w", err)
	}
	return info.Mode().IsRegular(), nil
}

// Ensure makes a matching chromedriver executable present in the target
// directory. It is idempotent: when the driver already exists the call
// returns immediately without any network access or filesystem writes.
func (m *Manager) Ensure(ctx context.Context) error {
	installed, err := m.IsInstalled()
	if err != nil {
		return fmt.Errorf("check if installed: %w", err)
	}
	if installed {
		m.logger.Debug("driver already present", "path", m.DriverPath())
		return nil
	}

	// Browser detection happens before any network access.
	version, err := m.probe.DetectVersion(ctx)
	if err != nil {
		return fmt.Errorf("detect browser: %w", err)
	}
	major := browser.MajorVersion(version)

	driverPlatform, err := m.platformInfo.DriverPlatform()
	if err != nil {
		return err
	}

	m.logger.Info("resolving driver",
		"browser_version", version,
		"major", major,
		"platform", driverPlatform)

	cat, err := m.catalogClient.Fetch(ctx)
	if err != nil {
		return fmt.Errorf("fetch catalog: %w", err)
	}

	artifact, err := cat.Resolve(major, driverPlatform, m.platformInfo.DriverFilename())
	if err != nil {
		if errors.Is(err, catalog.ErrNoMatch) && !m.strict {
			// Preserved behavior: an unmatched browser version completes
			// the run without installing anything. Strict mode makes it
			// fatal.
			m.logger.Warn("no driver build matches the installed browser; nothing installed",
				"major", major,
				"platform", driverPlatform)
			return nil
		}
		return fmt.Errorf("resolve driver for major %s on %s: %w", major, driverPlatform, err)
	}

	return m.install(ctx, artifact, driverPlatform)
}

// install materializes a resolved artifact as the driver executable.
func (m *Manager) install(ctx context.Context, artifact *catalog.ResolvedArtifact, driverPlatform string) error {
	archivePath := filepath.Join(m.dir, archiveName)

	m.logger.Info("downloading driver", "url", artifact.URL)
	if err := m.downloader.DownloadToFile(ctx, artifact.URL, archivePath); err != nil {
		return fmt.Errorf("download driver: %w", err)
	}

	if err := m.extractor.ExtractZip(archivePath, m.dir); err != nil {
		return fmt.Errorf("extract driver: %w", err)
	}

	// The archive contains a single platform-named directory, e.g.
	// chromedriver-linux64/chromedriver.
	extractedPath := filepath.Join(m.dir, "chromedriver-"+driverPlatform, artifact.ExecutableName)
	if _, err := os.Stat(extractedPath); err != nil {
		return fmt.Errorf("driver executable missing from archive layout: %w", err)
	}

	if err := os.Rename(extractedPath, m.DriverPath()); err != nil {
		return fmt.Errorf("move driver into place: %w", err)
	}

	if err := os.Remove(archivePath); err != nil {
		return fmt.Errorf("remove archive: %w", err)
	}

	if !m.platformInfo.IsWindows() {
		if err := SetExecutable(m.DriverPath()); err != nil {
			return fmt.Errorf("set executable: %w", err)
		}
	}

	m.logger.Info("driver installed", "path", m.DriverPath())
	return nil
}

// SetExecutable sets executable permissions on a file.
func SetExecutable(path string) error {
	// 0755 (rwxr-xr-x)
	if err := os.Chmod(path, 0755); err != nil {
		return fmt.Errorf("set executable: %w", err)
	}
	return nil
}
