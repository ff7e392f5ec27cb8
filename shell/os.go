// Copyright (c) 2024 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package shell implements the interactive command interpreter over
// the virtual filesystem: a tiny operating-system shim holding the
// working directory, environment and store handle, plus the commands
// that drive path resolution.
package shell

import (
	"io"

	"github.com/thejohnfreeman/xrplorer/fsys"
	"github.com/thejohnfreeman/xrplorer/nodestore"
)

// OperatingSystem the state a resolution mutates: working directory,
// environment, hostname, the node store and the output sink.
type OperatingSystem struct {
	cwd      string
	env      map[string]string
	hostname string
	db       *nodestore.Store
	out      io.Writer
}

// NewOS creates a shim rooted at / over the given store.
func NewOS(db *nodestore.Store, out io.Writer) *OperatingSystem {
	return &OperatingSystem{
		cwd: "/",
		env: make(map[string]string),
		db:  db,
		out: out,
	}
}

// Getcwd returns the current working directory.
func (os *OperatingSystem) Getcwd() string {
	return os.cwd
}

// Chdir moves the working directory to path, resolved against the
// current one and lexically normalized.
func (os *OperatingSystem) Chdir(path string) {
	os.cwd = fsys.Normalize(os.cwd, path)
}

// Getenv returns the value for name, or "".
func (os *OperatingSystem) Getenv(name string) string {
	return os.env[name]
}

// Setenv sets name to value.
func (os *OperatingSystem) Setenv(name, value string) {
	os.env[name] = value
}

// Unsetenv removes name.
func (os *OperatingSystem) Unsetenv(name string) {
	delete(os.env, name)
}

// Hostname returns the hostname.
func (os *OperatingSystem) Hostname() string {
	return os.hostname
}

// SetHostname sets the hostname.
func (os *OperatingSystem) SetHostname(hostname string) {
	os.hostname = hostname
}

// DB returns the node store.
func (os *OperatingSystem) DB() *nodestore.Store {
	return os.db
}

// Out returns the output sink.
func (os *OperatingSystem) Out() io.Writer {
	return os.out
}
