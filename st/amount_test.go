package st

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func issued(positive bool, mantissa uint64, exponent int) []byte {
	v := uint64(1) << 63
	if positive {
		v |= 1 << 62
	}
	v |= uint64(exponent+issuedExponentBias) << 54
	v |= mantissa
	b := appendU64(nil, v)
	return append(b, make([]byte, issuedSuffix)...)
}

func TestReadAmountNative(t *testing.T) {
	tests := []struct {
		value uint64
		text  string
		def   bool
	}{
		{1<<62 | 25000000, "25000000", false},
		{25, "-25", false},
		{1 << 62, "0", true},
		{0, "0", true},
	}
	for _, tt := range tests {
		text, def, err := readAmount(NewReader(appendU64(nil, tt.value)))
		assert.Nil(t, err)
		assert.Equal(t, tt.text, text)
		assert.Equal(t, tt.def, def)
	}
}

func TestReadAmountIssued(t *testing.T) {
	tests := []struct {
		blob []byte
		text string
	}{
		{issued(true, 1234500000000000, -14), "12.345"},
		{issued(true, 1234500000000000, -15), "1.2345"},
		{issued(true, 1234500000000000, -16), "0.12345"},
		{issued(false, 1000000000000000, -15), "-1"},
		{issued(true, 5000000000000000, -13), "500"},
	}
	for _, tt := range tests {
		text, def, err := readAmount(NewReader(tt.blob))
		assert.Nil(t, err)
		assert.False(t, def)
		assert.Equal(t, tt.text, text, tt.text)
	}

	// zero issued amount short-circuits before sign and exponent
	text, def, err := readAmount(NewReader(issued(true, 0, 0)))
	assert.Nil(t, err)
	assert.True(t, def)
	assert.Equal(t, "0", text)

	// issued amounts are 48 bytes; a bare value word is an error
	_, _, err = readAmount(NewReader(appendU64(nil, 1<<63)))
	assert.Error(t, err)
}
