// Package nodelaunch starts a local execution node process and turns a
// failed launch or connection attempt into a typed diagnostic.
package nodelaunch

import (
	"bytes"
	"os/exec"
	"sync"
)

// Process is the snapshot view of a spawned node process needed to
// produce a connection-failure diagnostic.
//
// ExitCode must be a non-blocking poll. The stream accessors return the
// output accumulated so far and must never block: the launcher tees the
// child's output into in-memory buffers for exactly this reason, rather
// than reading the pipes at diagnosis time.
type Process interface {
	// ExitCode returns the process exit status. exited is false while
	// the process is still running or has not been reaped yet.
	ExitCode() (code int, exited bool)

	StdoutBytes() []byte
	StderrBytes() []byte
}

// lockedBuffer is a write destination for exec.Cmd that can be read
// concurrently with the copier goroutine still writing to it.
type lockedBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *lockedBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *lockedBuffer) Bytes() []byte {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]byte(nil), b.buf.Bytes()...)
}

// osProcess adapts an exec.Cmd to the Process interface.
//
// A single reaper goroutine owns cmd.Wait; the exit status it records is
// what ExitCode reports, which keeps the poll non-blocking.
type osProcess struct {
	cmd    *exec.Cmd
	stdout *lockedBuffer
	stderr *lockedBuffer

	mu     sync.Mutex
	code   int
	exited bool
}

func newOSProcess(cmd *exec.Cmd) *osProcess {
	return &osProcess{
		cmd:    cmd,
		stdout: &lockedBuffer{},
		stderr: &lockedBuffer{},
	}
}

// reap waits for the process to terminate and records its exit status.
// Must be started as a goroutine once, right after cmd.Start succeeds.
func (p *osProcess) reap() {
	_ = p.cmd.Wait()

	p.mu.Lock()
	defer p.mu.Unlock()
	p.exited = true
	if state := p.cmd.ProcessState; state != nil {
		p.code = state.ExitCode()
	}
}

func (p *osProcess) ExitCode() (int, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.code, p.exited
}

func (p *osProcess) StdoutBytes() []byte {
	return p.stdout.Bytes()
}

func (p *osProcess) StderrBytes() []byte {
	return p.stderr.Bytes()
}
