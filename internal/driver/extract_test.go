package driver

import (
	"bytes"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/klauspost/compress/zip"

	"github.com/AveryLindqvistMarsh/drivermatch/internal/testutil"
)

func TestExtractZip(t *testing.T) {
	tmpDir := t.TempDir()
	archive := testutil.BuildDriverArchive(t, "linux64", "chromedriver", []byte("driver binary"))

	archivePath := filepath.Join(tmpDir, "chromedriver.zip")
	if err := os.WriteFile(archivePath, archive, 0644); err != nil {
		t.Fatalf("write archive: %v", err)
	}

	extractor := NewExtractor()
	if err := extractor.ExtractZip(archivePath, tmpDir); err != nil {
		t.Fatalf("ExtractZip() error = %v", err)
	}

	extracted := filepath.Join(tmpDir, "chromedriver-linux64", "chromedriver")
	content, err := os.ReadFile(extracted)
	if err != nil {
		t.Fatalf("read extracted file: %v", err)
	}
	if string(content) != "driver binary" {
		t.Errorf("content = %q, want %q", string(content), "driver binary")
	}

	// Archive modes are preserved.
	if runtime.GOOS != "windows" {
		info, err := os.Stat(extracted)
		if err != nil {
			t.Fatalf("stat extracted file: %v", err)
		}
		if info.Mode().Perm()&0111 == 0 {
			t.Errorf("extracted file mode = %v, want executable bits set", info.Mode())
		}
	}

	// The license member is extracted alongside the binary.
	if _, err := os.Stat(filepath.Join(tmpDir, "chromedriver-linux64", "LICENSE.chromedriver")); err != nil {
		t.Errorf("license member not extracted: %v", err)
	}
}

func TestExtractZipIntoWorkingDirectory(t *testing.T) {
	// The default install target is the working directory; relative
	// destinations must pass the traversal guard.
	testutil.Chdir(t, t.TempDir())

	archive := testutil.BuildDriverArchive(t, "linux64", "chromedriver", []byte("driver binary"))
	if err := os.WriteFile("chromedriver.zip", archive, 0644); err != nil {
		t.Fatalf("write archive: %v", err)
	}

	extractor := NewExtractor()
	if err := extractor.ExtractZip("chromedriver.zip", "."); err != nil {
		t.Fatalf("ExtractZip() error = %v", err)
	}

	content, err := os.ReadFile(filepath.Join("chromedriver-linux64", "chromedriver"))
	if err != nil {
		t.Fatalf("read extracted file: %v", err)
	}
	if string(content) != "driver binary" {
		t.Errorf("content = %q, want %q", string(content), "driver binary")
	}
}

func TestExtractZipRejectsPathTraversal(t *testing.T) {
	var buf bytes.Buffer
	writer := zip.NewWriter(&buf)
	file, err := writer.Create("../evil")
	if err != nil {
		t.Fatalf("create archive member: %v", err)
	}
	if _, err := file.Write([]byte("escape attempt")); err != nil {
		t.Fatalf("write archive member: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close archive: %v", err)
	}

	tmpDir := t.TempDir()
	archivePath := filepath.Join(tmpDir, "evil.zip")
	if err := os.WriteFile(archivePath, buf.Bytes(), 0644); err != nil {
		t.Fatalf("write archive: %v", err)
	}

	extractor := NewExtractor()
	destDir := filepath.Join(tmpDir, "dest")
	if err := extractor.ExtractZip(archivePath, destDir); err == nil {
		t.Error("expected error for path traversal entry")
	}

	if _, err := os.Stat(filepath.Join(tmpDir, "evil")); err == nil {
		t.Error("traversal entry was written outside the destination")
	}
}

func TestExtractZipInvalidArchive(t *testing.T) {
	tmpDir := t.TempDir()
	archivePath := filepath.Join(tmpDir, "bad.zip")
	if err := os.WriteFile(archivePath, []byte("this is not a zip"), 0644); err != nil {
		t.Fatalf("write archive: %v", err)
	}

	extractor := NewExtractor()
	if err := extractor.ExtractZip(archivePath, tmpDir); err == nil {
		t.Error("expected error for invalid archive")
	}
}
