// Package catalog fetches the Chrome-for-Testing known-good-versions
// catalog and resolves a download URL for a browser major version and
// platform.
//
// The catalog is an ordered document; resolution is a single forward pass
// with first-match-wins semantics. Matching a browser major version against
// a catalog entry is a string-prefix check on the entry's full version
// string, not a numeric comparison: major "1" matches a "10.x" entry that
// appears before any "1.x" entry. Known limitation, kept for parity with
// the catalog's established consumers.
package catalog

// PlatformDownload is one downloadable build of a component for a specific
// platform identifier.
type PlatformDownload struct {
	Platform string `json:"platform"`
	URL      string `json:"url"`
}

// VersionEntry describes one known-good browser version and the downloads
// available for each bundled component, keyed by component name
// ("chromedriver", "chrome", ...).
type VersionEntry struct {
	Version   string                        `json:"version"`
	Downloads map[string][]PlatformDownload `json:"downloads"`
}

// Catalog is the ordered list of known-good versions. Order is meaningful:
// the resolver stops at the first matching entry.
type Catalog struct {
	Versions []VersionEntry `json:"versions"`
}

// ResolvedArtifact is the outcome of resolution: a single download URL plus
// the executable name expected inside the archive. It is constructed fresh
// per run and never persisted.
type ResolvedArtifact struct {
	URL            string
	ExecutableName string
}
