package xrp

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAccountIDString(t *testing.T) {
	// the well-known genesis account
	raw, _ := hex.DecodeString("b5f762798a53d543a014caf8b297cff8f2f937e8")
	var id AccountID
	copy(id[:], raw)
	assert.Equal(t, "rHb9CJAWyB4rj91VRWn96DkukG4bwdtyTh", id.String())

	// the zero account
	var zero AccountID
	assert.Equal(t, "rrrrrrrrrrrrrrrrrrrrrhoLvTp", zero.String())
}

func TestParseAccountID(t *testing.T) {
	var id AccountID
	for i := range id {
		id[i] = byte(i * 7)
	}
	parsed, err := ParseAccountID(id.String())
	assert.Nil(t, err)
	assert.Equal(t, id, *parsed)

	tests := []string{
		"",
		"not an address",
		"rHb9CJAWyB4rj91VRWn96DkukG4bwdtyTi", // checksum broken
		"0Hb9CJAWyB4rj91VRWn96DkukG4bwdtyTh", // invalid character
	}
	for _, tt := range tests {
		_, err := ParseAccountID(tt)
		assert.Error(t, err, tt)
	}
}

func TestAccountKeylet(t *testing.T) {
	var a, b AccountID
	b[19] = 1

	ka := AccountKeylet(a)
	kb := AccountKeylet(b)
	assert.False(t, ka.IsZero())
	assert.NotEqual(t, ka, kb)
	// deterministic
	assert.Equal(t, ka, AccountKeylet(a))
}
