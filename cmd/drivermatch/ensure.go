package main

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/AveryLindqvistMarsh/drivermatch/internal/browser"
	"github.com/AveryLindqvistMarsh/drivermatch/internal/catalog"
	"github.com/AveryLindqvistMarsh/drivermatch/internal/config"
	"github.com/AveryLindqvistMarsh/drivermatch/internal/driver"
	"github.com/AveryLindqvistMarsh/drivermatch/internal/platform"
)

// ensureTimeout bounds the whole run, dominated by the artifact download.
const ensureTimeout = 10 * time.Minute

// runEnsure handles the `drivermatch ensure` subcommand (and the default
// no-argument invocation).
func runEnsure(args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("usage: drivermatch ensure")
	}

	ctx, cancel := context.WithTimeout(context.Background(), ensureTimeout)
	defer cancel()

	logger := slog.Default()

	detector := platform.NewDetector()
	platformInfo, err := detector.Detect(ctx)
	if err != nil {
		return fmt.Errorf("detect platform: %w", err)
	}
	logger.Debug("detected platform",
		"os", platformInfo.OS,
		"arch", platformInfo.Arch,
		"distro", platformInfo.Platform)

	parser := config.NewParser(detector)
	cfg, err := parser.Load(ctx, config.Filename)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	probe := browser.New(platformInfo, browser.Options{
		Commands: cfg.BrowserCommands,
		Paths:    cfg.BrowserPaths,
		Logger:   logger,
	})

	mgr, err := driver.NewManager(driver.Config{
		Dir:      filepath.Clean(cfg.Dir),
		Platform: platformInfo,
		Probe:    probe,
		Catalog:  catalog.NewClient(cfg.CatalogURL),
		Strict:   cfg.Strict,
		Logger:   logger,
	})
	if err != nil {
		return fmt.Errorf("create driver manager: %w", err)
	}

	return mgr.Ensure(ctx)
}
