// Copyright (c) 2024 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>
package st

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/thejohnfreeman/xrplorer/xrp"
)

func TestReaderInts(t *testing.T) {
	r := NewReader([]byte{
		0x01,
		0x02, 0x03,
		0x04, 0x05, 0x06, 0x07,
		0x08, 0x09, 0x0a, 0x0b, 0x0c, 0x0d, 0x0e, 0x0f,
	})

	v8, err := r.ReadU8()
	assert.Nil(t, err)
	assert.Equal(t, uint8(0x01), v8)

	v16, err := r.ReadU16()
	assert.Nil(t, err)
	assert.Equal(t, uint16(0x0203), v16)

	v32, err := r.ReadU32()
	assert.Nil(t, err)
	assert.Equal(t, uint32(0x04050607), v32)

	v64, err := r.ReadU64()
	assert.Nil(t, err)
	assert.Equal(t, uint64(0x08090a0b0c0d0e0f), v64)

	assert.True(t, r.Empty())
	_, err = r.ReadU8()
	assert.Error(t, err)
}

func TestReaderHash256(t *testing.T) {
	data := make([]byte, 32)
	data[0] = 0xff
	r := NewReader(data)
	h, err := r.ReadHash256()
	assert.Nil(t, err)
	assert.Equal(t, xrp.BytesToHash256(data), h)

	_, err = NewReader(data[:31]).ReadHash256()
	assert.Error(t, err)
}

func encodeVL(t *testing.T, n int) []byte {
	switch {
	case n <= 192:
		return []byte{byte(n)}
	case n <= 12480:
		n -= 193
		return []byte{byte(193 + n/256), byte(n % 256)}
	default:
		n -= 12481
		return []byte{byte(241 + n/65536), byte(n / 256 % 256), byte(n % 256)}
	}
}

func TestReaderVL(t *testing.T) {
	for _, n := range []int{0, 1, 192, 193, 300, 12480, 12481, 20000} {
		data := append(encodeVL(t, n), make([]byte, n)...)
		b, err := NewReader(data).ReadVL()
		assert.Nil(t, err, n)
		assert.Equal(t, n, len(b), n)
	}

	// length prefix claims more than available
	_, err := NewReader([]byte{5, 1, 2}).ReadVL()
	assert.Error(t, err)
}

func TestDecodePrefix(t *testing.T) {
	p, err := DecodePrefix([]byte{0x4d, 0x49, 0x4e, 0x00, 0xff})
	assert.Nil(t, err)
	assert.Equal(t, xrp.InnerNode, p)

	_, err = DecodePrefix([]byte{0x4d, 0x49})
	assert.Error(t, err)
}
