// Copyright (c) 2024 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package fsys

import (
	"fmt"
	"strings"

	"github.com/thejohnfreeman/xrplorer/nodestore"
	"github.com/thejohnfreeman/xrplorer/st"
	"github.com/thejohnfreeman/xrplorer/xrp"
)

// trieDepthLimit one-past-end depth of the state trie: 256 bits / 4
// bits per branch.
const trieDepthLimit = 64

// resolver carries the state of one resolution: the normalized path,
// the component cursor, the terminal action and the nearest enclosing
// state-trie root, if any.
type resolver struct {
	os     OS
	path   string
	names  []string
	pos    int
	action Action
	// root the nearest SHAMap root, set while inside a state subtree.
	root *nodestore.NodeObject
}

// walked returns the path up to the cursor, attached to errors.
func (r *resolver) walked() string {
	return "/" + strings.Join(r.names[:r.pos], "/")
}

func (r *resolver) fail(code ErrorCode, message string) error {
	return &Error{Code: code, Path: r.walked(), Message: message}
}

func (r *resolver) notFile() error {
	return r.fail(NotAFile, "not a file")
}

func (r *resolver) notDirectory() error {
	return r.fail(NotADirectory, "not a directory")
}

func (r *resolver) notExists() error {
	return r.fail(DoesNotExist, "no such file or directory")
}

func (r *resolver) notImplemented() error {
	return r.fail(NotImplemented, "not implemented")
}

// skipEmpty advances the cursor over empty and "." components left by
// normalization artifacts.
func (r *resolver) skipEmpty() {
	for r.pos < len(r.names) && (r.names[r.pos] == "" || r.names[r.pos] == ".") {
		r.pos++
	}
}

// next pops the next unresolved component, if any.
func (r *resolver) next() (string, bool) {
	if r.pos >= len(r.names) {
		return "", false
	}
	name := r.names[r.pos]
	r.pos++
	return name, true
}

func (r *resolver) chdir() {
	r.os.Chdir(r.path)
	r.os.Setenv("PWD", r.path)
}

func (r *resolver) print(format string, args ...interface{}) {
	fmt.Fprintf(r.os.Out(), format, args...)
}

// withRoot runs fn with the ambient trie root rebound to object,
// restoring the previous binding on every exit path.
func (r *resolver) withRoot(object *nodestore.NodeObject, fn func() error) error {
	prev := r.root
	r.root = object
	defer func() { r.root = prev }()
	return fn()
}

func (r *resolver) rootDirectory() error {
	r.skipEmpty()
	if name, ok := r.next(); ok {
		if name == "nodes" {
			return r.nodesDirectory()
		}
		return r.notExists()
	}
	switch r.action {
	case CD:
		r.chdir()
		return nil
	case LS:
		r.print("nodes\n")
		return nil
	default:
		return r.notFile()
	}
}

func (r *resolver) nodesDirectory() error {
	r.skipEmpty()
	if name, ok := r.next(); ok {
		digest, err := xrp.ParseHash256(name)
		if err != nil {
			return r.fail(NotADigest, "not a digest")
		}
		return r.nodeBranch(digest)
	}
	switch r.action {
	case CD:
		r.chdir()
		return nil
	case LS:
		// The full index is not enumerable.
		r.print("<node ID>\n")
		return nil
	default:
		return r.notFile()
	}
}

// nodeBranch fetches the blob named by digest and dispatches on its
// hash-prefix tag. This is the only place the tag is interpreted.
func (r *resolver) nodeBranch(digest xrp.Hash256) error {
	object, err := r.os.DB().Fetch(digest)
	if err != nil {
		return r.fail(NodeMissing, "node missing")
	}
	prefix, err := st.DecodePrefix(object.Data())
	if err != nil {
		return r.fail(TypeUnknown, "type unknown")
	}
	switch prefix {
	case xrp.LedgerMaster:
		return r.headerDirectory(object)
	case xrp.TxNode:
		return r.txmDirectory(object)
	case xrp.InnerNode:
		return r.innerDirectory(object)
	case xrp.LeafNode:
		return r.leafDirectory(object)
	}
	log.Error("type unknown", "prefix", prefix)
	return r.fail(TypeUnknown, "type unknown")
}

func (r *resolver) headerDirectory(object *nodestore.NodeObject) error {
	r.skipEmpty()
	header, err := st.DecodeHeader(object.Data())
	if err != nil {
		return r.fail(TypeUnknown, "malformed ledger header")
	}
	if name, ok := r.next(); ok {
		switch name {
		case "sequence":
			return r.valueFile(fmt.Sprintf("%d", header.Sequence))
		case "parent":
			return r.nodeBranch(header.ParentHash)
		case "txns":
			return r.nodeBranch(header.TxHash)
		case "state":
			return r.stateDirectory(header.AccountHash)
		}
		return r.notExists()
	}
	switch r.action {
	case CD:
		r.chdir()
		return nil
	case LS:
		r.print("sequence\n")
		r.print("parent -> /nodes/%v\n", header.ParentHash)
		r.print("txns -> /nodes/%v\n", header.TxHash)
		r.print("state -> /nodes/%v\n", header.AccountHash)
		return nil
	default:
		return r.notFile()
	}
}

func (r *resolver) stateDirectory(digest xrp.Hash256) error {
	r.skipEmpty()
	if name, ok := r.next(); ok {
		switch name {
		case "root":
			return r.nodeBranch(digest)
		case "accounts":
			root, err := r.os.DB().Fetch(digest)
			if err != nil {
				return r.notExists()
			}
			return r.withRoot(root, r.accountsDirectory)
		}
		// Other state namespaces are a known gap.
		return r.notImplemented()
	}
	switch r.action {
	case CD:
		r.chdir()
		return nil
	case LS:
		r.print("accounts\n")
		r.print("root -> /nodes/%v\n", digest)
		return nil
	default:
		return r.notFile()
	}
}

func (r *resolver) innerDirectory(object *nodestore.NodeObject) error {
	r.skipEmpty()
	if name, ok := r.next(); ok {
		// Child names are one hexadecimal character from 0 to F.
		if len(name) != 1 {
			return r.notExists()
		}
		var i int
		switch c := name[0]; {
		case c >= '0' && c <= '9':
			i = int(c - '0')
		case c >= 'A' && c <= 'F':
			i = 10 + int(c-'A')
		default:
			return r.notExists()
		}
		child, err := st.InnerChild(object.Data(), i)
		if err != nil {
			return r.fail(TypeUnknown, "malformed inner node")
		}
		if child.IsZero() {
			return r.notExists()
		}
		return r.nodeBranch(child)
	}
	switch r.action {
	case CD:
		r.chdir()
		return nil
	case LS:
		children, err := st.InnerChildren(object.Data())
		if err != nil {
			return r.fail(TypeUnknown, "malformed inner node")
		}
		for i, child := range children {
			if child.IsZero() {
				continue
			}
			r.print("%X\n", i)
		}
		return nil
	default:
		return r.notFile()
	}
}

func (r *resolver) accountsDirectory() error {
	r.skipEmpty()
	if name, ok := r.next(); ok {
		account, err := xrp.ParseAccountID(name)
		if err != nil {
			return r.notExists()
		}
		keylet := xrp.AccountKeylet(*account)
		object := r.load(keylet)
		if object == nil {
			return r.notExists()
		}
		entry, err := st.DecodeLedgerEntry(object.Data())
		if err != nil {
			return r.fail(TypeUnknown, "malformed ledger entry")
		}
		return r.sleDirectory(entry)
	}
	switch r.action {
	case CD:
		r.chdir()
		return nil
	case LS:
		r.print("<base58 address, e.g. rHb9CJAWyB4rj91VRWn96DkukG4bwdtyTh>\n")
		return nil
	default:
		return r.notFile()
	}
}

// load walks the trie under the ambient root towards key and returns
// the leaf, or nil when any step of the descent dead-ends. The walk is
// iterative and bounded by the trie depth.
func (r *resolver) load(key xrp.Hash256) *nodestore.NodeObject {
	object := r.root
	for depth := 0; depth < trieDepthLimit; depth++ {
		prefix, err := st.DecodePrefix(object.Data())
		if err != nil {
			return nil
		}
		if prefix == xrp.LeafNode {
			break
		}
		if prefix != xrp.InnerNode {
			return nil
		}
		branch := xrp.SelectBranch(key, depth)
		child, err := st.InnerChild(object.Data(), branch)
		if err != nil || child.IsZero() {
			return nil
		}
		if object, err = r.os.DB().Fetch(child); err != nil {
			return nil
		}
	}
	if prefix, err := st.DecodePrefix(object.Data()); err != nil || prefix != xrp.LeafNode {
		return nil
	}
	return object
}

func (r *resolver) leafDirectory(object *nodestore.NodeObject) error {
	entry, err := st.DecodeLedgerEntry(object.Data())
	if err != nil {
		return r.fail(TypeUnknown, "malformed ledger entry")
	}
	return r.sleDirectory(entry)
}

func (r *resolver) sleDirectory(entry *st.LedgerEntry) error {
	r.skipEmpty()
	if name, ok := r.next(); ok {
		if name == ".key" {
			return r.valueFile(strings.ToUpper(entry.Key().String()))
		}
		for _, field := range entry.Fields() {
			if field.Name() == name {
				return r.sfieldFile(field)
			}
		}
		return r.notExists()
	}
	switch r.action {
	case CD:
		r.chdir()
		return nil
	case LS:
		r.print(".key\n")
		r.listFields(entry.Fields())
		return nil
	default:
		return r.notFile()
	}
}

func (r *resolver) txmDirectory(object *nodestore.NodeObject) error {
	r.skipEmpty()
	txm, err := st.DecodeTxWithMeta(object.Data())
	if err != nil {
		return r.fail(TypeUnknown, "malformed transaction node")
	}
	if name, ok := r.next(); ok {
		for _, field := range txm.Fields() {
			if field.Name() == name {
				return r.sfieldFile(field)
			}
		}
		return r.notExists()
	}
	switch r.action {
	case CD:
		r.chdir()
		return nil
	case LS:
		r.listFields(txm.Fields())
		return nil
	default:
		return r.notFile()
	}
}

// listFields prints field names, skipping fields that are both
// default and render to empty text.
func (r *resolver) listFields(fields []*st.Field) {
	for _, field := range fields {
		if field.IsDefault() && field.Text() == "" {
			continue
		}
		r.print("%s\n", field.Name())
	}
}

func (r *resolver) sfieldFile(field *st.Field) error {
	return r.fileEntry(field.Text())
}

func (r *resolver) valueFile(value string) error {
	return r.fileEntry(value)
}

// fileEntry the common terminal for field and value files.
func (r *resolver) fileEntry(content string) error {
	if _, ok := r.next(); ok {
		return r.notDirectory()
	}
	switch r.action {
	case CD:
		return r.notDirectory()
	case LS:
		r.print("%s\n", r.path)
		return nil
	default:
		r.print("%s\n", content)
		return nil
	}
}
