package catalog

import (
	"errors"
	"strings"
)

// componentDriver is the catalog component whose downloads we resolve.
const componentDriver = "chromedriver"

// ErrNoMatch indicates that no catalog entry matches the requested major
// version and platform.
var ErrNoMatch = errors.New("no matching driver build in catalog")

// Resolve selects the download URL for the given browser major version and
// catalog platform identifier.
//
// The scan is a single pass in catalog order. Each entry whose full
// version string has major as a string prefix is inspected in turn; the
// first chromedriver download whose platform equals the request wins, and
// scanning stops immediately. Later entries are never consulted for a
// "better" match, which keeps selection deterministic for a given catalog.
// A matching entry without a download for the platform does not end the
// scan; later matching entries may still provide one.
func (c *Catalog) Resolve(major, platform, executableName string) (*ResolvedArtifact, error) {
	for _, entry := range c.Versions {
		if !strings.HasPrefix(entry.Version, major) {
			continue
		}
		for _, download := range entry.Downloads[componentDriver] {
			if download.Platform == platform {
				return &ResolvedArtifact{
					URL:            download.URL,
					ExecutableName: executableName,
				}, nil
			}
		}
	}
	return nil, ErrNoMatch
}
