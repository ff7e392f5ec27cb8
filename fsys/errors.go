// Copyright (c) 2024 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package fsys

// ErrorCode the kind of a resolution failure. The ordinal doubles as
// the shell's exit status.
type ErrorCode int

const (
	NotImplemented ErrorCode = iota
	// DoesNotExist path is not an entry in its parent directory.
	DoesNotExist
	NotAFile
	NotADirectory
	NotADigest
	// NodeMissing path is an entry in its parent directory, but its
	// contents are missing from the store.
	NodeMissing
	TypeUnknown
)

// Error a resolution failure. Path is the path walked so far: the
// deepest successful point plus the failing component.
type Error struct {
	Code    ErrorCode
	Path    string
	Message string
}

func (e *Error) Error() string {
	return e.Path + ": " + e.Message
}
