// Package driver downloads and installs the chromedriver binary matching
// the locally installed browser.
//
// # Workflow
//
// The Manager runs one strictly sequential pass per invocation:
//
//  1. If the driver executable already exists in the target directory the
//     run is a no-op: no network access, no writes.
//  2. The browser probe detects the installed browser's full version; the
//     run aborts before any network access when no browser is found.
//  3. The catalog client fetches the known-good-versions document and the
//     resolver picks the download URL for (major version, platform).
//  4. The installer downloads the zip next to the target, extracts it,
//     moves the executable out of the platform-named subdirectory, removes
//     the archive, and marks the binary executable on non-Windows hosts.
//
// A failed resolution is not fatal by default: the run logs a warning and
// completes without installing anything. Strict mode turns it into an
// error.
//
// Downloaded artifacts are not verified beyond transport trust, the
// catalog is refetched on every non-no-op run, and concurrent invocations
// against the same directory are unsupported.
//
// # Usage
//
//	mgr, err := driver.NewManager(driver.Config{
//	    Platform: platformInfo,
//	    Probe:    probe,
//	})
//	if err != nil {
//	    return err
//	}
//	if err := mgr.Ensure(ctx); err != nil {
//	    return err
//	}
package driver
