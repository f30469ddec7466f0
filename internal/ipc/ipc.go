// Package ipc implements the single-instance guard. The history file is
// written whole-file with no locking and assumes exactly one writer, so the
// interactive browser and every mutating subcommand claim a Unix socket for
// the lifetime of the process; a second instance fails fast instead of
// silently corrupting the store with last-write-wins overwrites.
package ipc

import (
	"fmt"
	"net"
	"os"
	"path/filepath"
	"runtime"
)

// SocketPath returns the platform-appropriate path for the instance socket.
//
//   - Linux / macOS: $TMPDIR/copycat.sock  (override with $COPYCAT_SOCKET)
//   - Windows:       \\.\pipe\copycat      (named pipe — not yet implemented)
func SocketPath() string {
	if s := os.Getenv("COPYCAT_SOCKET"); s != "" {
		return s
	}
	if runtime.GOOS == "windows" {
		return `\\.\pipe\copycat`
	}
	return filepath.Join(os.TempDir(), "copycat.sock")
}

// IsRunning reports whether another copycat process appears to hold the
// instance socket. It does a cheap dial-and-close; no data is exchanged.
func IsRunning() bool {
	c, err := net.Dial("unix", SocketPath())
	if err != nil {
		return false
	}
	_ = c.Close()
	return true
}

// Acquire claims the instance socket, removing a stale socket file left by a
// crashed run first. It fails when another live instance already listens.
// Close the returned listener on exit.
func Acquire() (net.Listener, error) {
	path := SocketPath()
	if IsRunning() {
		return nil, fmt.Errorf("another copycat instance is running (socket %s)", path)
	}
	_ = os.Remove(path)
	return net.Listen("unix", path)
}
