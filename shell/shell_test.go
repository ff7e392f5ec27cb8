// Copyright (c) 2024 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package shell

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thejohnfreeman/xrplorer/lvldb"
	"github.com/thejohnfreeman/xrplorer/nodestore"
)

func newTestShell(t *testing.T) (*Shell, *OperatingSystem, *bytes.Buffer) {
	db, err := lvldb.NewMem()
	require.Nil(t, err)
	store, err := nodestore.New(db, 16)
	require.Nil(t, err)
	var out bytes.Buffer
	os := NewOS(store, &out)
	os.SetHostname("test")
	return New(os), os, &out
}

func TestShellEcho(t *testing.T) {
	sh, _, out := newTestShell(t)
	status, exit := sh.Exec("echo hello world")
	assert.Equal(t, 0, status)
	assert.False(t, exit)
	assert.Equal(t, "hello world\n", out.String())
}

func TestShellQuoting(t *testing.T) {
	sh, _, out := newTestShell(t)
	sh.Exec(`echo "a b" c`)
	assert.Equal(t, "a b c\n", out.String())
}

func TestShellPwdAndCd(t *testing.T) {
	sh, os, out := newTestShell(t)

	sh.Exec("pwd")
	assert.Equal(t, "/\n", out.String())
	out.Reset()

	status, _ := sh.Exec("cd nodes")
	assert.Equal(t, 0, status)
	assert.Equal(t, "/nodes", os.Getcwd())
	assert.Equal(t, "/nodes", os.Getenv("PWD"))

	sh.Exec("pwd")
	assert.Equal(t, "/nodes\n", out.String())
	out.Reset()

	// cd with no argument returns to the root
	sh.Exec("cd")
	assert.Equal(t, "/", os.Getcwd())
}

func TestShellLs(t *testing.T) {
	sh, _, out := newTestShell(t)

	status, _ := sh.Exec("ls")
	assert.Equal(t, 0, status)
	assert.Equal(t, "nodes\n", out.String())
	out.Reset()

	status, _ = sh.Exec("ls /nodes/xyz")
	assert.Equal(t, 4, status) // NotADigest ordinal
	assert.Equal(t, "ls: /nodes/xyz: not a digest\n", out.String())
}

func TestShellCat(t *testing.T) {
	sh, _, out := newTestShell(t)
	status, _ := sh.Exec("cat /nodes")
	assert.Equal(t, 2, status) // NotAFile ordinal
	assert.Equal(t, "cat: /nodes: not a file\n", out.String())
}

func TestShellExit(t *testing.T) {
	sh, _, out := newTestShell(t)

	status, exit := sh.Exec("exit")
	assert.True(t, exit)
	assert.Equal(t, 0, status)

	status, exit = sh.Exec("exit 3")
	assert.True(t, exit)
	assert.Equal(t, 3, status)

	status, exit = sh.Exec("exit abc")
	assert.True(t, exit)
	assert.Equal(t, 2, status)
	assert.Equal(t, "exit: abc: numeric argument required\n", out.String())
	out.Reset()

	status, exit = sh.Exec("exit 1 2")
	assert.True(t, exit)
	assert.Equal(t, 1, status)
	assert.Equal(t, "exit: too many arguments\n", out.String())
}

func TestShellHostname(t *testing.T) {
	sh, _, out := newTestShell(t)

	sh.Exec("hostname")
	assert.Equal(t, "test\n", out.String())
	out.Reset()

	sh.Exec("hostname other")
	assert.Equal(t, "hostname: changing hostname not yet implemented\ntest\n", out.String())
}

func TestShellUnknownCommand(t *testing.T) {
	sh, _, out := newTestShell(t)
	status, exit := sh.Exec("frobnicate")
	assert.False(t, exit)
	assert.Equal(t, 127, status)
	assert.Equal(t, "frobnicate: command not found\n", out.String())
}

func TestShellHelp(t *testing.T) {
	sh, _, out := newTestShell(t)
	status, _ := sh.Exec("help")
	assert.Equal(t, 0, status)
	assert.Contains(t, out.String(), "cat [file]")
	assert.Contains(t, out.String(), "pwd")
}
