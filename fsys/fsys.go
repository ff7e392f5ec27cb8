// Copyright (c) 2024 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package fsys resolves virtual filesystem paths over the node store.
// A path is walked component by component across the node kinds the
// store holds (ledger headers, inner and leaf trie nodes, transactions
// with metadata, ledger entries, scalar fields) and ends in one of
// three terminal actions: change directory, list, or stream.
package fsys

import (
	"io"

	"github.com/inconshreveable/log15"

	"github.com/thejohnfreeman/xrplorer/nodestore"
)

var log = log15.New("pkg", "fsys")

// Action the terminal operation performed when the path is fully
// resolved.
type Action int

const (
	// CD change the working directory.
	CD Action = iota
	// LS list the children.
	LS
	// CAT stream the contents.
	CAT
)

// OS the surface the resolver needs from the shell's operating-system
// shim.
type OS interface {
	Getcwd() string
	Chdir(path string)
	Setenv(name, value string)
	DB() *nodestore.Store
	Out() io.Writer
}

// Resolve normalizes argument against the current working directory
// and walks it, performing action at the end. On failure it returns a
// *Error carrying the path walked so far.
func Resolve(os OS, argument string, action Action) error {
	p := Normalize(os.Getcwd(), argument)
	r := &resolver{
		os:     os,
		path:   p,
		names:  splitPath(p),
		action: action,
	}
	return r.rootDirectory()
}
