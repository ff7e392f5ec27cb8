package xrp

import (
	"bytes"
	"crypto/sha256"
	"math/big"
	"strings"

	"github.com/pkg/errors"
)

const (
	// AddressLength length of an account ID in bytes.
	AddressLength = 20

	// tokenAccountID type prefix for account addresses.
	tokenAccountID = 0x00

	checkLength = 4
)

// alphabet the protocol's base58 dictionary. Note it differs from the
// Bitcoin one: it starts with 'r'.
const alphabet = "rpshnaf39wBUDNEGHJKLM4PQRST7VWXYZ2bcdeCg65jkm8oFqi1tuvAxyz"

// AccountID the 160-bit identifier of an account.
type AccountID [AddressLength]byte

// String implements the stringer interface. Returns the base58check
// address form, e.g. rHb9CJAWyB4rj91VRWn96DkukG4bwdtyTh.
func (a AccountID) String() string {
	payload := make([]byte, 0, 1+AddressLength+checkLength)
	payload = append(payload, tokenAccountID)
	payload = append(payload, a[:]...)
	check := sha256d(payload)
	payload = append(payload, check[:checkLength]...)
	return encodeBase58(payload)
}

// ParseAccountID converts a base58check address into AccountID type.
// The type prefix and checksum must both match.
func ParseAccountID(s string) (*AccountID, error) {
	payload, err := decodeBase58(s)
	if err != nil {
		return nil, err
	}
	if len(payload) != 1+AddressLength+checkLength {
		return nil, errors.New("invalid length")
	}
	if payload[0] != tokenAccountID {
		return nil, errors.New("invalid type prefix")
	}
	body, check := payload[:1+AddressLength], payload[1+AddressLength:]
	if want := sha256d(body); !bytes.Equal(check, want[:checkLength]) {
		return nil, errors.New("checksum mismatch")
	}
	var id AccountID
	copy(id[:], body[1:])
	return &id, nil
}

// AccountKeylet computes the state-trie key of the account's root
// entry: sha512half over the 'a' ledger namespace and the account ID.
func AccountKeylet(id AccountID) Hash256 {
	space := []byte{0x00, 'a'}
	return Sha512Half(space, id[:])
}

func sha256d(data []byte) [sha256.Size]byte {
	first := sha256.Sum256(data)
	return sha256.Sum256(first[:])
}

func encodeBase58(data []byte) string {
	base := big.NewInt(int64(len(alphabet)))
	num := new(big.Int).SetBytes(data)
	mod := new(big.Int)
	var out []byte
	for num.Sign() > 0 {
		num.DivMod(num, base, mod)
		out = append(out, alphabet[mod.Int64()])
	}
	for _, b := range data {
		if b != 0 {
			break
		}
		out = append(out, alphabet[0])
	}
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return string(out)
}

func decodeBase58(s string) ([]byte, error) {
	base := big.NewInt(int64(len(alphabet)))
	num := new(big.Int)
	for _, r := range s {
		i := strings.IndexRune(alphabet, r)
		if i < 0 {
			return nil, errors.Errorf("invalid character %q", r)
		}
		num.Mul(num, base)
		num.Add(num, big.NewInt(int64(i)))
	}
	body := num.Bytes()
	var zeros int
	for zeros = 0; zeros < len(s) && s[zeros] == alphabet[0]; zeros++ {
	}
	out := make([]byte, zeros+len(body))
	copy(out[zeros:], body)
	return out, nil
}
