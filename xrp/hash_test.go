// Copyright (c) 2024 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>
package xrp

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseHash256(t *testing.T) {
	upper := strings.Repeat("AB", 32)
	h, err := ParseHash256(upper)
	assert.Nil(t, err)
	assert.Equal(t, strings.ToLower(upper), h.String())

	lower := strings.Repeat("cd", 32)
	h, err = ParseHash256(lower)
	assert.Nil(t, err)
	assert.Equal(t, lower, h.String())

	tests := []string{
		"",
		"DEADBEEF",
		strings.Repeat("A", 63),
		strings.Repeat("A", 65),
		strings.Repeat("G", 64),
	}
	for _, tt := range tests {
		_, err := ParseHash256(tt)
		assert.Error(t, err, tt)
	}
}

func TestHash256IsZero(t *testing.T) {
	var h Hash256
	assert.True(t, h.IsZero())
	h[31] = 1
	assert.False(t, h.IsZero())
}

func TestSha512Half(t *testing.T) {
	a := Sha512Half([]byte("abc"))
	b := Sha512Half([]byte("ab"), []byte("c"))
	assert.Equal(t, a, b)
	assert.False(t, a.IsZero())
	assert.NotEqual(t, a, Sha512Half([]byte("abd")))
}

func TestSelectBranch(t *testing.T) {
	var key Hash256
	key[0] = 0x5A
	key[1] = 0xF0
	key[31] = 0x07

	tests := []struct {
		depth int
		want  int
	}{
		{0, 0x5},
		{1, 0xA},
		{2, 0xF},
		{3, 0x0},
		{62, 0x0},
		{63, 0x7},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, SelectBranch(key, tt.depth))
	}
}
