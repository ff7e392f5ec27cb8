// Copyright (c) 2024 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package st

import (
	"github.com/thejohnfreeman/xrplorer/xrp"
)

// LedgerEntry a typed state object stored at a SHAMap leaf, together
// with its trie key.
type LedgerEntry struct {
	*Object
	key xrp.Hash256
}

// Key returns the entry's trie key.
func (e *LedgerEntry) Key() xrp.Hash256 { return e.key }

// DecodeLedgerEntry decodes a prefixed leaf-node blob. The layout is
// the 4-byte prefix, the serialized object body, and a 32-byte trie
// key suffix.
func DecodeLedgerEntry(data []byte) (*LedgerEntry, error) {
	body, key, err := splitLeafPayload(data)
	if err != nil {
		return nil, err
	}
	obj, err := DecodeObject(body)
	if err != nil {
		return nil, err
	}
	return &LedgerEntry{Object: obj, key: key}, nil
}

// TxWithMeta a transaction body paired with the metadata the ledger
// recorded for it. The wrapping node's digest is the transaction
// identity.
type TxWithMeta struct {
	Tx   *Object
	Meta *Object
}

// Fields returns the transaction's fields followed by the metadata's.
func (t *TxWithMeta) Fields() []*Field {
	fields := make([]*Field, 0, len(t.Tx.fields)+len(t.Meta.fields))
	fields = append(fields, t.Tx.fields...)
	fields = append(fields, t.Meta.fields...)
	return fields
}

// Field returns the first field with the given name across the
// transaction then the metadata, or nil.
func (t *TxWithMeta) Field(name string) *Field {
	if f := t.Tx.Field(name); f != nil {
		return f
	}
	return t.Meta.Field(name)
}

// DecodeTxWithMeta decodes a prefixed transaction node blob: prefix,
// then two length-prefixed blobs (transaction, metadata), then the
// 32-byte key suffix.
func DecodeTxWithMeta(data []byte) (*TxWithMeta, error) {
	body, _, err := splitLeafPayload(data)
	if err != nil {
		return nil, err
	}
	r := NewReader(body)
	txBlob, err := r.ReadVL()
	if err != nil {
		return nil, err
	}
	metaBlob, err := r.ReadVL()
	if err != nil {
		return nil, err
	}
	tx, err := DecodeObject(txBlob)
	if err != nil {
		return nil, err
	}
	meta, err := DecodeObject(metaBlob)
	if err != nil {
		return nil, err
	}
	return &TxWithMeta{Tx: tx, Meta: meta}, nil
}

// splitLeafPayload strips the 4-byte prefix and the 32-byte key
// suffix common to leaf and transaction nodes.
func splitLeafPayload(data []byte) ([]byte, xrp.Hash256, error) {
	if len(data) < 4+xrp.HashLength {
		return nil, xrp.Hash256{}, errShortRead
	}
	body := data[4 : len(data)-xrp.HashLength]
	key := xrp.BytesToHash256(data[len(data)-xrp.HashLength:])
	return body, key, nil
}
