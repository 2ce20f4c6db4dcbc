package testutil

import (
	"bytes"
	"context"
	"io"
	"os"
	"testing"

	"codebird/internal/repo"
	"codebird/pkg/models"
)

// TestHelper provides common test utilities
type TestHelper struct {
	t *testing.T
}

// NewTestHelper creates a new test helper
func NewTestHelper(t *testing.T) *TestHelper {
	return &TestHelper{t: t}
}

// InitRepository initializes an empty repository in dir
func (h *TestHelper) InitRepository(dir string) {
	r, err := repo.Init(dir)
	if err != nil {
		h.t.Fatalf("Failed to init repository: %v", err)
	}
	if err := r.Close(); err != nil {
		h.t.Fatalf("Failed to close repository: %v", err)
	}
}

// SeedRepository initializes a repository in dir with tracked files, a
// commit on main, and a feature branch carrying one commit. Returns the
// commits in creation order.
func (h *TestHelper) SeedRepository(dir string) []models.Commit {
	r, err := repo.Init(dir)
	if err != nil {
		h.t.Fatalf("Failed to init repository: %v", err)
	}
	defer func() {
		if err := r.Close(); err != nil {
			h.t.Fatalf("Failed to close repository: %v", err)
		}
	}()

	ctx := context.Background()
	for _, path := range []string{"main.go", "docs/readme.md"} {
		if _, err := r.AddFile(ctx, path); err != nil {
			h.t.Fatalf("Failed to track %s: %v", path, err)
		}
	}

	onMain, err := r.Commit(ctx, []string{"main.go"})
	if err != nil {
		h.t.Fatalf("Failed to commit on main: %v", err)
	}

	if err := r.CreateBranch(ctx, "feature"); err != nil {
		h.t.Fatalf("Failed to create branch: %v", err)
	}
	if err := r.SwitchBranch(ctx, "feature"); err != nil {
		h.t.Fatalf("Failed to switch branch: %v", err)
	}
	onFeature, err := r.Commit(ctx, []string{"docs/readme.md"})
	if err != nil {
		h.t.Fatalf("Failed to commit on feature: %v", err)
	}
	if err := r.SwitchBranch(ctx, "main"); err != nil {
		h.t.Fatalf("Failed to switch back: %v", err)
	}

	return []models.Commit{onMain, onFeature}
}

// CaptureOutput captures stdout and stderr during function execution
func (h *TestHelper) CaptureOutput(f func()) (stdout, stderr string) {
	// Capture stdout
	oldStdout := os.Stdout
	rOut, wOut, _ := os.Pipe()
	os.Stdout = wOut

	// Capture stderr
	oldStderr := os.Stderr
	rErr, wErr, _ := os.Pipe()
	os.Stderr = wErr

	// Execute function
	f()

	// Restore and read stdout
	wOut.Close()
	os.Stdout = oldStdout
	outBytes, _ := io.ReadAll(rOut)
	stdout = string(outBytes)

	// Restore and read stderr
	wErr.Close()
	os.Stderr = oldStderr
	errBytes, _ := io.ReadAll(rErr)
	stderr = string(errBytes)

	return stdout, stderr
}

// AssertContains checks if a string contains a substring
func (h *TestHelper) AssertContains(haystack, needle string) {
	if !bytes.Contains([]byte(haystack), []byte(needle)) {
		h.t.Errorf("Expected to contain '%s', but got: %s", needle, haystack)
	}
}

// AssertNotContains checks if a string does not contain a substring
func (h *TestHelper) AssertNotContains(haystack, needle string) {
	if bytes.Contains([]byte(haystack), []byte(needle)) {
		h.t.Errorf("Expected not to contain '%s', but got: %s", needle, haystack)
	}
}
