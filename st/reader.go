// Copyright (c) 2024 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package st decodes the serialized types stored in the node store:
// ledger headers, SHAMap inner nodes, and the field-structured objects
// carried by leaf and transaction nodes.
package st

import (
	"encoding/binary"

	"github.com/pkg/errors"

	"github.com/thejohnfreeman/xrplorer/xrp"
)

// errShortRead reported when a blob ends before a read completes.
var errShortRead = errors.New("unexpected end of data")

// Reader a cursor over a serialized blob. All integers are big-endian.
type Reader struct {
	data []byte
	pos  int
}

// NewReader creates a reader over data.
func NewReader(data []byte) *Reader {
	return &Reader{data: data}
}

// Remaining returns the count of unread bytes.
func (r *Reader) Remaining() int {
	return len(r.data) - r.pos
}

// Empty tells whether the reader is exhausted.
func (r *Reader) Empty() bool {
	return r.pos >= len(r.data)
}

// Skip advances the cursor n bytes.
func (r *Reader) Skip(n int) error {
	if r.Remaining() < n {
		return errShortRead
	}
	r.pos += n
	return nil
}

// ReadBytes consumes and returns the next n bytes.
func (r *Reader) ReadBytes(n int) ([]byte, error) {
	if r.Remaining() < n {
		return nil, errShortRead
	}
	b := r.data[r.pos : r.pos+n]
	r.pos += n
	return b, nil
}

// ReadU8 consumes one byte.
func (r *Reader) ReadU8() (uint8, error) {
	b, err := r.ReadBytes(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

// ReadU16 consumes a big-endian uint16.
func (r *Reader) ReadU16() (uint16, error) {
	b, err := r.ReadBytes(2)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(b), nil
}

// ReadU32 consumes a big-endian uint32.
func (r *Reader) ReadU32() (uint32, error) {
	b, err := r.ReadBytes(4)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(b), nil
}

// ReadU64 consumes a big-endian uint64.
func (r *Reader) ReadU64() (uint64, error) {
	b, err := r.ReadBytes(8)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint64(b), nil
}

// ReadHash256 consumes a 256-bit value.
func (r *Reader) ReadHash256() (xrp.Hash256, error) {
	b, err := r.ReadBytes(xrp.HashLength)
	if err != nil {
		return xrp.Hash256{}, err
	}
	return xrp.BytesToHash256(b), nil
}

// ReadVL consumes a variable-length blob: a 1-3 byte length prefix
// followed by that many bytes.
func (r *Reader) ReadVL() ([]byte, error) {
	n, err := r.readVLLength()
	if err != nil {
		return nil, err
	}
	return r.ReadBytes(n)
}

func (r *Reader) readVLLength() (int, error) {
	b1, err := r.ReadU8()
	if err != nil {
		return 0, err
	}
	switch {
	case b1 <= 192:
		return int(b1), nil
	case b1 <= 240:
		b2, err := r.ReadU8()
		if err != nil {
			return 0, err
		}
		return 193 + (int(b1)-193)*256 + int(b2), nil
	case b1 <= 254:
		b2, err := r.ReadU8()
		if err != nil {
			return 0, err
		}
		b3, err := r.ReadU8()
		if err != nil {
			return 0, err
		}
		return 12481 + (int(b1)-241)*65536 + int(b2)*256 + int(b3), nil
	default:
		return 0, errors.New("invalid length prefix")
	}
}

// DecodePrefix reads the hash-prefix tag off the head of a blob.
func DecodePrefix(data []byte) (xrp.HashPrefix, error) {
	if len(data) < 4 {
		return 0, errShortRead
	}
	return xrp.HashPrefix(binary.BigEndian.Uint32(data)), nil
}
