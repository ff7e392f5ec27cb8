package st

import (
	"encoding/binary"

	"github.com/thejohnfreeman/xrplorer/xrp"
)

// test-side blob builders mirroring the on-disk layouts

func appendU32(b []byte, v uint32) []byte {
	var buf [4]byte
	binary.BigEndian.PutUint32(buf[:], v)
	return append(b, buf[:]...)
}

func appendU64(b []byte, v uint64) []byte {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], v)
	return append(b, buf[:]...)
}

func appendVL(b, data []byte) []byte {
	// test data stays under the one-byte length form
	b = append(b, byte(len(data)))
	return append(b, data...)
}

func buildHeaderBlob(seq uint32, parent, tx, state xrp.Hash256) []byte {
	b := appendU32(nil, uint32(xrp.LedgerMaster))
	b = appendU32(b, seq)
	b = appendU64(b, 99999999999)
	b = append(b, parent[:]...)
	b = append(b, tx[:]...)
	b = append(b, state[:]...)
	b = appendU32(b, 1000)
	b = appendU32(b, 1010)
	b = append(b, 10, 0)
	return b
}

func buildInnerBlob(children map[int]xrp.Hash256) []byte {
	b := appendU32(nil, uint32(xrp.InnerNode))
	for i := 0; i < BranchFactor; i++ {
		child := children[i]
		b = append(b, child[:]...)
	}
	return b
}

func buildLeafBlob(body []byte, key xrp.Hash256) []byte {
	b := appendU32(nil, uint32(xrp.LeafNode))
	b = append(b, body...)
	return append(b, key[:]...)
}

func buildTxBlob(tx, meta []byte, key xrp.Hash256) []byte {
	b := appendU32(nil, uint32(xrp.TxNode))
	b = appendVL(b, tx)
	b = appendVL(b, meta)
	return append(b, key[:]...)
}
