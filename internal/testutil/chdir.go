package testutil

import (
	"os"
	"testing"
)

// Chdir changes the working directory for the duration of the test and
// restores the previous directory when the test ends. It matches the
// behavior of testing.T.Chdir, which requires Go 1.24.
func Chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(wd); err != nil {
			t.Fatalf("restore working directory: %v", err)
		}
	})
}
