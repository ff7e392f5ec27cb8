// Copyright (c) 2024 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package xrp

import (
	"crypto/sha512"
	"encoding/hex"

	"github.com/pkg/errors"
)

const (
	// HashLength length of a node digest in bytes.
	HashLength = 32
)

// Hash256 the 256-bit digest naming a blob in the node store.
// It doubles as a SHAMap trie key.
type Hash256 [HashLength]byte

// Bytes returns the digest as a byte slice.
func (h Hash256) Bytes() []byte {
	return h[:]
}

// IsZero tells whether all bytes are zero. The all-zero digest marks
// an empty inner-node branch.
func (h Hash256) IsZero() bool {
	return h == Hash256{}
}

// String implements the stringer interface. Lowercase hex, no prefix,
// so it can be spliced directly into /nodes/<digest> paths.
func (h Hash256) String() string {
	return hex.EncodeToString(h[:])
}

// ParseHash256 converts a 64-char hex string into Hash256 type.
// Case-insensitive.
func ParseHash256(s string) (Hash256, error) {
	var h Hash256
	if len(s) != HashLength*2 {
		return Hash256{}, errors.New("invalid length")
	}
	if _, err := hex.Decode(h[:], []byte(s)); err != nil {
		return Hash256{}, err
	}
	return h, nil
}

// BytesToHash256 copies b into a Hash256. Panics on length mismatch.
func BytesToHash256(b []byte) Hash256 {
	var h Hash256
	if len(b) != HashLength {
		panic("hash length mismatch")
	}
	copy(h[:], b)
	return h
}

// Sha512Half computes the first 256 bits of SHA-512 over data,
// the hash the protocol uses everywhere.
func Sha512Half(data ...[]byte) Hash256 {
	hw := sha512.New()
	for _, d := range data {
		hw.Write(d)
	}
	return BytesToHash256(hw.Sum(nil)[:HashLength])
}

// SelectBranch picks the inner-node branch for key at the given trie
// depth: the byte at depth/2, high nibble at even depths, low nibble
// at odd ones.
func SelectBranch(key Hash256, depth int) int {
	b := key[depth/2]
	if depth&1 == 1 {
		return int(b & 0x0f)
	}
	return int(b >> 4)
}
