// Package source reads raw metric text from the local host.
//
// Every call is best-effort: a missing file, a missing binary, an I/O error
// or a non-zero exit all yield an empty string. Nothing is retried and no
// error ever reaches the caller; failures are only visible in the debug log.
// Calls are synchronous and carry no timeout.
package source

import (
	"bytes"
	"errors"
	"os"
	"os/exec"
	"strings"

	"github.com/rileyhilliard/pidash/internal/logger"
)

// Source is the opaque provider of raw metric text.
type Source interface {
	// ReadFile returns the contents of a (pseudo-)file, or "" if it can't be read.
	ReadFile(path string) string
	// Run executes a utility and returns its trimmed stdout, or "" on any failure.
	Run(name string, args ...string) string
}

// Local reads from the filesystem and runs utilities on this host.
type Local struct {
	log logger.Logger
}

// NewLocal creates a Source backed by the local host. A nil log uses
// logger.Default().
func NewLocal(log logger.Logger) *Local {
	if log == nil {
		log = logger.Default()
	}
	return &Local{log: log}
}

// ReadFile implements Source.
func (l *Local) ReadFile(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		l.log.Debug("read %s: %v", path, err)
		return ""
	}
	return string(data)
}

// Run implements Source.
func (l *Local) Run(name string, args ...string) string {
	command := exec.Command(name, args...)

	var stdout, stderr bytes.Buffer
	command.Stdout = &stdout
	command.Stderr = &stderr

	if err := command.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			l.log.Debug("%s exited with code %d: %s", name, exitErr.ExitCode(), strings.TrimSpace(stderr.String()))
		} else {
			l.log.Debug("run %s: %v", name, err)
		}
		return ""
	}

	return strings.TrimSpace(stdout.String())
}
