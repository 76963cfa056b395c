package browser

import "strings"

// MajorVersion returns the leading dot-separated component of a full
// version string. A version without dots is returned unchanged.
func MajorVersion(full string) string {
	if i := strings.IndexByte(full, '.'); i >= 0 {
		return full[:i]
	}
	return full
}

// parseVersionOutput extracts the version from a browser's --version
// output. Typical output is "Google Chrome 116.0.5845.96"; the version is
// the last whitespace-separated token.
func parseVersionOutput(out string) string {
	fields := strings.Fields(out)
	if len(fields) == 0 {
		return ""
	}
	return fields[len(fields)-1]
}
