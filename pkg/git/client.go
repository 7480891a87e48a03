// Package git runs the git CLI to keep a history of the notes data file.
package git

import (
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"
)

const (
	// LockFile is created next to the data file while a commit is in progress.
	LockFile = ".noteapp.lock"

	defaultAuthorName  = "noteapp"
	defaultAuthorEmail = "noteapp@localhost"
)

// Client wraps git command execution with a file-based lock for process safety.
type Client struct {
	WorkDir     string
	Logger      *slog.Logger
	LockTimeout time.Duration
	lockPath    string
}

// NewClient creates a new git client for the given working directory.
func NewClient(workDir string, logger *slog.Logger) *Client {
	return &Client{
		WorkDir:     workDir,
		Logger:      logger,
		LockTimeout: 10 * time.Second,
		lockPath:    LockFile,
	}
}

// IsInstalled reports whether a git binary is on PATH.
func IsInstalled() bool {
	_, err := exec.LookPath("git")
	return err == nil
}

// Lock acquires the file lock, polling until LockTimeout elapses.
func (c *Client) Lock() (func(), error) {
	fullLockPath := filepath.Join(c.WorkDir, c.lockPath)
	deadline := time.Now().Add(c.LockTimeout)

	for {
		f, err := os.OpenFile(fullLockPath, os.O_CREATE|os.O_EXCL, 0666)
		if err == nil {
			f.Close()
			return func() {
				os.Remove(fullLockPath)
			}, nil
		}

		if !os.IsExist(err) {
			return nil, fmt.Errorf("failed to acquire lock: %w", err)
		}
		if time.Now().After(deadline) {
			return nil, fmt.Errorf("failed to acquire lock: %s held for more than %s", fullLockPath, c.LockTimeout)
		}
		time.Sleep(10 * time.Millisecond)
	}
}

// Run executes a raw git command in the working directory.
// NOTE: It does NOT acquire the lock. Callers that write must hold Client.Lock().
func (c *Client) Run(args ...string) (string, error) {
	if c.Logger != nil {
		c.Logger.Debug("executing git", "args", args, "dir", c.WorkDir)
	}

	cmd := exec.Command("git", args...)
	cmd.Dir = c.WorkDir

	out, err := cmd.CombinedOutput()
	output := string(out)

	if err != nil {
		return output, fmt.Errorf("git %s failed: %w\nOutput: %s", args[0], err, output)
	}

	return strings.TrimSpace(output), nil
}

// IsRepo reports whether WorkDir is inside a git work tree.
func (c *Client) IsRepo() bool {
	out, err := c.Run("rev-parse", "--is-inside-work-tree")
	return err == nil && out == "true"
}

// Init initializes a new git repository. Re-running it is harmless.
func (c *Client) Init() error {
	_, err := c.Run("init")
	return err
}

// Add adds files to the stage.
func (c *Client) Add(files ...string) error {
	if len(files) == 0 {
		return nil
	}
	args := append([]string{"add", "--"}, files...)
	_, err := c.Run(args...)
	return err
}

// Commit records staged changes. Repositories without a configured identity
// commit as noteapp.
func (c *Client) Commit(msg string) error {
	args := []string{"commit", "-m", msg}
	if email, err := c.Run("config", "user.email"); err != nil || email == "" {
		args = append([]string{
			"-c", "user.name=" + defaultAuthorName,
			"-c", "user.email=" + defaultAuthorEmail,
		}, args...)
	}
	_, err := c.Run(args...)
	return err
}

// Status returns the porcelain status, limited to paths when given.
func (c *Client) Status(paths ...string) (string, error) {
	args := []string{"status", "--porcelain"}
	if len(paths) > 0 {
		args = append(append(args, "--"), paths...)
	}
	return c.Run(args...)
}

// History returns up to limit one-line commit summaries touching paths,
// newest first.
func (c *Client) History(limit int, paths ...string) ([]string, error) {
	args := []string{"log", "--oneline", fmt.Sprintf("-n%d", limit)}
	if len(paths) > 0 {
		args = append(append(args, "--"), paths...)
	}
	out, err := c.Run(args...)
	if err != nil {
		return nil, err
	}
	if out == "" {
		return nil, nil
	}
	return strings.Split(out, "\n"), nil
}
