package git

import (
	"os"
	"os/exec"
	"testing"
)

// SetupTestRepo creates a temporary git repository for testing and returns
// its path together with a cleanup function.
func SetupTestRepo(t *testing.T) (string, func()) {
	t.Helper()

	tmpDir, err := os.MkdirTemp("", "mm-git-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp directory: %v", err)
	}

	cleanup := func() {
		_ = os.RemoveAll(tmpDir)
	}

	runTestGit(t, tmpDir, cleanup, "init")
	runTestGit(t, tmpDir, cleanup, "config", "user.name", "Test User")
	runTestGit(t, tmpDir, cleanup, "config", "user.email", "test@example.com")
	runTestGit(t, tmpDir, cleanup, "commit", "--allow-empty", "-m", "Initial commit")

	return tmpDir, cleanup
}

func runTestGit(t *testing.T, dir string, cleanup func(), args ...string) {
	t.Helper()

	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	if output, err := cmd.CombinedOutput(); err != nil {
		cleanup()
		t.Fatalf("git %v failed: %v (output: %s)", args, err, string(output))
	}
}
