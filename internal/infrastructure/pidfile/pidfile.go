package pidfile

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"syscall"
	"time"
)

// ErrAlreadyRunning is returned by Acquire when a live process owns the file
var ErrAlreadyRunning = errors.New("shipfix-api is already running")

// writeGrace is how long an unreadable PID file is assumed to be mid-write by
// another starting process rather than left behind by a crash
const writeGrace = 2 * time.Second

// PIDFile keeps a single shipfix-api process per PID file path
type PIDFile struct {
	path string
}

// New creates a PIDFile for the given path
func New(path string) *PIDFile {
	return &PIDFile{path: path}
}

// Path returns the file location
func (p *PIDFile) Path() string {
	return p.path
}

// Acquire creates the file exclusively and writes the current PID to it.
// A file whose process is gone, or an old file that does not hold a PID, is
// removed and creation is retried once.
func (p *PIDFile) Acquire() error {
	for attempt := 0; attempt < 2; attempt++ {
		err := p.create()
		if err == nil {
			return nil
		}
		if !errors.Is(err, fs.ErrExist) {
			return err
		}

		if err := p.checkStale(); err != nil {
			return err
		}
		if err := os.Remove(p.path); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to remove stale PID file: %w", err)
		}
	}
	return fmt.Errorf("%w (%s was recreated while starting)", ErrAlreadyRunning, p.path)
}

// Release removes the file. A missing file is not an error.
func (p *PIDFile) Release() error {
	if err := os.Remove(p.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove PID file: %w", err)
	}
	return nil
}

// create writes the PID only if no file exists; O_EXCL makes the check and the
// creation one step
func (p *PIDFile) create() error {
	f, err := os.OpenFile(p.path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return err
		}
		return fmt.Errorf("failed to create PID file: %w", err)
	}

	_, writeErr := f.WriteString(strconv.Itoa(os.Getpid()) + "\n")
	closeErr := f.Close()
	if err := errors.Join(writeErr, closeErr); err != nil {
		_ = os.Remove(p.path)
		return fmt.Errorf("failed to write PID file: %w", err)
	}
	return nil
}

// checkStale returns nil when the existing file may be replaced
func (p *PIDFile) checkStale() error {
	info, err := os.Stat(p.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to inspect PID file: %w", err)
	}

	pid, ok := p.readPID()
	if !ok {
		if time.Since(info.ModTime()) < writeGrace {
			return fmt.Errorf("%w (%s is being written by another process)", ErrAlreadyRunning, p.path)
		}
		return nil
	}
	if isProcessRunning(pid) {
		return fmt.Errorf("%w (PID %d, %s)", ErrAlreadyRunning, pid, p.path)
	}
	return nil
}

func (p *PIDFile) readPID() (int, bool) {
	data, err := os.ReadFile(p.path)
	if err != nil {
		return 0, false
	}
	pid, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil || pid <= 0 {
		return 0, false
	}
	return pid, true
}

// isProcessRunning probes the pid with signal 0
func isProcessRunning(pid int) bool {
	process, err := os.FindProcess(pid)
	if err != nil {
		return false
	}

	err = process.Signal(syscall.Signal(0))
	switch {
	case err == nil:
		return true
	case errors.Is(err, syscall.EPERM):
		// exists, owned by another user
		return true
	default:
		return false
	}
}
