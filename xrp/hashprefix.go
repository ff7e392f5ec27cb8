// Copyright (c) 2024 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package xrp

import "fmt"

// HashPrefix the 4-byte tag at the head of every stored blob,
// identifying the node kind. Three ASCII characters packed into the
// high bytes of a big-endian uint32.
type HashPrefix uint32

const (
	// LedgerMaster 'LWR' - a ledger header.
	LedgerMaster HashPrefix = 0x4C575200
	// TxNode 'SND' - a transaction plus metadata.
	TxNode HashPrefix = 0x534E4400
	// InnerNode 'MIN' - a SHAMap inner node.
	InnerNode HashPrefix = 0x4D494E00
	// LeafNode 'MLN' - a SHAMap leaf holding a ledger entry.
	LeafNode HashPrefix = 0x4D4C4E00
)

// String implements the stringer interface.
func (p HashPrefix) String() string {
	i := uint32(p)
	a := byte(i >> 24)
	b := byte(i >> 16)
	c := byte(i >> 8)
	return fmt.Sprintf("0x%X (%c%c%c)", i, a, b, c)
}
