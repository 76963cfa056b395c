// Package testutil provides helpers for testing drivermatch in isolation.
package testutil

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/klauspost/compress/zip"
)

// BuildDriverArchive builds an in-memory zip archive with the layout of a
// real chromedriver release: a single platform-named directory containing
// the driver executable.
//
//	chromedriver-linux64/chromedriver
func BuildDriverArchive(t *testing.T, platformID, executableName string, contents []byte) []byte {
	t.Helper()

	var buf bytes.Buffer
	writer := zip.NewWriter(&buf)

	header := &zip.FileHeader{
		Name:   "chromedriver-" + platformID + "/" + executableName,
		Method: zip.Deflate,
	}
	header.SetMode(0755)

	file, err := writer.CreateHeader(header)
	if err != nil {
		t.Fatalf("create archive member: %v", err)
	}
	if _, err := file.Write(contents); err != nil {
		t.Fatalf("write archive member: %v", err)
	}

	// Releases also ship a license file next to the binary.
	license, err := writer.Create("chromedriver-" + platformID + "/LICENSE.chromedriver")
	if err != nil {
		t.Fatalf("create license member: %v", err)
	}
	if _, err := license.Write([]byte("license text\n")); err != nil {
		t.Fatalf("write license member: %v", err)
	}

	if err := writer.Close(); err != nil {
		t.Fatalf("close archive: %v", err)
	}

	return buf.Bytes()
}

// CatalogEntry is one version entry for CatalogJSON, mirroring the wire
// schema.
type CatalogEntry struct {
	Version   string
	Downloads map[string]string // platform ID -> URL
}

// CatalogJSON builds the known-good-versions JSON document from ordered
// entries.
func CatalogJSON(t *testing.T, entries []CatalogEntry) []byte {
	t.Helper()

	type download struct {
		Platform string `json:"platform"`
		URL      string `json:"url"`
	}
	type version struct {
		Version   string                `json:"version"`
		Downloads map[string][]download `json:"downloads"`
	}
	type document struct {
		Versions []version `json:"versions"`
	}

	doc := document{}
	for _, entry := range entries {
		v := version{
			Version:   entry.Version,
			Downloads: map[string][]download{},
		}
		for platformID, url := range entry.Downloads {
			v.Downloads["chromedriver"] = append(v.Downloads["chromedriver"], download{
				Platform: platformID,
				URL:      url,
			})
		}
		doc.Versions = append(doc.Versions, v)
	}

	data, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("marshal catalog: %v", err)
	}
	return data
}
