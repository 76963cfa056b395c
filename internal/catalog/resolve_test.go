package catalog

import (
	"errors"
	"testing"
)

func entry(version string, downloads ...PlatformDownload) VersionEntry {
	return VersionEntry{
		Version: version,
		Downloads: map[string][]PlatformDownload{
			componentDriver: downloads,
		},
	}
}

func TestResolveFirstMatchWins(t *testing.T) {
	cat := &Catalog{Versions: []VersionEntry{
		entry("115.0.5790.98", PlatformDownload{Platform: "linux64", URL: "old"}),
		entry("116.0.5845.96", PlatformDownload{Platform: "linux64", URL: "first"}),
		entry("116.0.5845.110", PlatformDownload{Platform: "linux64", URL: "second"}),
	}}

	artifact, err := cat.Resolve("116", "linux64", "chromedriver")
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if artifact.URL != "first" {
		t.Errorf("URL = %q, want %q (first matching entry in catalog order)", artifact.URL, "first")
	}
	if artifact.ExecutableName != "chromedriver" {
		t.Errorf("ExecutableName = %q, want chromedriver", artifact.ExecutableName)
	}
}

func TestResolveFirstDownloadWithinEntryWins(t *testing.T) {
	cat := &Catalog{Versions: []VersionEntry{
		entry("116.0.5845.96",
			PlatformDownload{Platform: "win64", URL: "windows"},
			PlatformDownload{Platform: "linux64", URL: "linux-a"},
			PlatformDownload{Platform: "linux64", URL: "linux-b"},
		),
	}}

	artifact, err := cat.Resolve("116", "linux64", "chromedriver")
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if artifact.URL != "linux-a" {
		t.Errorf("URL = %q, want linux-a (first download in entry order)", artifact.URL)
	}
}

// Resolution matches the major version as a string prefix, not numerically.
// Given entries for 10.x before 1.x, major "1" picks the 10.x entry. This
// is a documented sharp edge of the catalog format, not a bug.
func TestResolvePrefixAmbiguity(t *testing.T) {
	cat := &Catalog{Versions: []VersionEntry{
		entry("10.0.0.0", PlatformDownload{Platform: "linux64", URL: "ten"}),
		entry("1.2.3.4", PlatformDownload{Platform: "linux64", URL: "one"}),
	}}

	artifact, err := cat.Resolve("1", "linux64", "chromedriver")
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if artifact.URL != "ten" {
		t.Errorf("URL = %q, want %q (string-prefix match is first-match-wins)", artifact.URL, "ten")
	}
}

func TestResolveSkipsMatchingEntryWithoutPlatform(t *testing.T) {
	cat := &Catalog{Versions: []VersionEntry{
		entry("116.0.5845.96", PlatformDownload{Platform: "win64", URL: "windows-only"}),
		entry("116.0.5845.110", PlatformDownload{Platform: "linux64", URL: "linux"}),
	}}

	artifact, err := cat.Resolve("116", "linux64", "chromedriver")
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if artifact.URL != "linux" {
		t.Errorf("URL = %q, want linux (later matching entry provides the platform)", artifact.URL)
	}
}

func TestResolveNoMatch(t *testing.T) {
	tests := []struct {
		name     string
		catalog  *Catalog
		major    string
		platform string
	}{
		{
			name: "no version match",
			catalog: &Catalog{Versions: []VersionEntry{
				entry("115.0.5790.98", PlatformDownload{Platform: "linux64", URL: "u"}),
			}},
			major:    "116",
			platform: "linux64",
		},
		{
			name: "version matches but platform missing everywhere",
			catalog: &Catalog{Versions: []VersionEntry{
				entry("116.0.5845.96", PlatformDownload{Platform: "win64", URL: "u"}),
				entry("116.0.5845.110", PlatformDownload{Platform: "mac-x64", URL: "u"}),
			}},
			major:    "116",
			platform: "linux64",
		},
		{
			name:     "empty catalog",
			catalog:  &Catalog{},
			major:    "116",
			platform: "linux64",
		},
		{
			name: "entry without chromedriver component",
			catalog: &Catalog{Versions: []VersionEntry{
				{
					Version: "116.0.5845.96",
					Downloads: map[string][]PlatformDownload{
						"chrome": {{Platform: "linux64", URL: "u"}},
					},
				},
			}},
			major:    "116",
			platform: "linux64",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.catalog.Resolve(tt.major, tt.platform, "chromedriver")
			if !errors.Is(err, ErrNoMatch) {
				t.Errorf("Resolve() error = %v, want ErrNoMatch", err)
			}
		})
	}
}
