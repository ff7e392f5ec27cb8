// Copyright (c) 2024 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package fsys

import (
	"path"
	"strings"
)

// Normalize resolves argument against cwd into an absolute,
// lexically cleaned path. Links are textual and never followed.
func Normalize(cwd, argument string) string {
	if !strings.HasPrefix(argument, "/") {
		argument = path.Join(cwd, argument)
	}
	return path.Clean(argument)
}

// splitPath breaks an absolute normalized path into its components
// after the root.
func splitPath(p string) []string {
	if p == "/" {
		return nil
	}
	return strings.Split(strings.TrimPrefix(p, "/"), "/")
}
