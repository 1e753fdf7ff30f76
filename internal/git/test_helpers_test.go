package git

import (
	"bytes"
	"context"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
	"time"

	clog "github.com/charmbracelet/log"
	"github.com/jmcampanini/authorcheck/internal/process"
	"github.com/stretchr/testify/require"
)

const testTimeout = 30 * time.Second

// recordingRunner records commands and returns canned output.
type recordingRunner struct {
	commands []process.Command
	deadline []bool
	output   []byte
	err      error
}

func (r *recordingRunner) Run(ctx context.Context, cmd process.Command) ([]byte, error) {
	r.commands = append(r.commands, cmd)
	_, hasDeadline := ctx.Deadline()
	r.deadline = append(r.deadline, hasDeadline)
	return r.output, r.err
}

// newTestGitCli creates a GitCli suitable for unit testing.
// The logger discards output and commands go to the given runner.
func newTestGitCli(runner process.Runner, timeout time.Duration) *GitCli {
	return &GitCli{
		log:     clog.New(io.Discard),
		runner:  runner,
		timeout: timeout,
	}
}

// testRepo provides a temporary git repository for integration tests.
type testRepo struct {
	Git     *GitCli
	rootDir string
	t       *testing.T
}

// newTestRepo creates an initialized git repository in a temp directory.
func newTestRepo(t *testing.T) *testRepo {
	t.Helper()
	skipIfGitNotAvailable(t)

	dir := t.TempDir()

	runGit(t, dir, "init", "-b", "main")
	runGit(t, dir, "config", "user.email", "test@example.com")
	runGit(t, dir, "config", "user.name", "Test User")

	return &testRepo{
		Git:     newTestGitCli(process.NewOSRunner("git"), testTimeout),
		rootDir: dir,
		t:       t,
	}
}

// commitAs creates a new commit authored by the given name.
func (r *testRepo) commitAs(author, message string) {
	r.t.Helper()
	filename := filepath.Join(r.rootDir, "file.txt")
	appendToFile(r.t, filename, message+"\n")
	runGit(r.t, r.rootDir, "add", "-A")
	runGit(r.t, r.rootDir, "-c", "user.name="+author, "-c", "user.email=author@example.com", "commit", "-m", message)
}

// runGit executes a git command and returns stdout.
func runGit(t *testing.T, dir string, args ...string) string {
	t.Helper()
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	require.NoError(t, err, "git %v failed: %s", args, stderr.String())
	return stdout.String()
}

// appendToFile appends content to a file, creating it if necessary.
func appendToFile(t *testing.T, path, content string) {
	t.Helper()
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	require.NoError(t, err)
	defer func() {
		require.NoError(t, f.Close())
	}()
	_, err = f.WriteString(content)
	require.NoError(t, err)
}

// skipIfGitNotAvailable skips the test if the git executable is not installed.
func skipIfGitNotAvailable(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not available")
	}
}
