// Copyright (c) 2024 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package st

import "github.com/thejohnfreeman/xrplorer/xrp"

// LedgerHeader the decoded header of a closed ledger.
type LedgerHeader struct {
	Sequence        uint32
	Drops           uint64
	ParentHash      xrp.Hash256
	TxHash          xrp.Hash256
	AccountHash     xrp.Hash256
	ParentCloseTime uint32
	CloseTime       uint32
	CloseResolution uint8
	CloseFlags      uint8
}

// DecodeHeader decodes a prefixed ledger-header blob. The caller has
// already checked that the prefix tag is LedgerMaster.
func DecodeHeader(data []byte) (*LedgerHeader, error) {
	r := NewReader(data)
	if err := r.Skip(4); err != nil {
		return nil, err
	}
	var h LedgerHeader
	var err error
	if h.Sequence, err = r.ReadU32(); err != nil {
		return nil, err
	}
	if h.Drops, err = r.ReadU64(); err != nil {
		return nil, err
	}
	if h.ParentHash, err = r.ReadHash256(); err != nil {
		return nil, err
	}
	if h.TxHash, err = r.ReadHash256(); err != nil {
		return nil, err
	}
	if h.AccountHash, err = r.ReadHash256(); err != nil {
		return nil, err
	}
	if h.ParentCloseTime, err = r.ReadU32(); err != nil {
		return nil, err
	}
	if h.CloseTime, err = r.ReadU32(); err != nil {
		return nil, err
	}
	if h.CloseResolution, err = r.ReadU8(); err != nil {
		return nil, err
	}
	if h.CloseFlags, err = r.ReadU8(); err != nil {
		return nil, err
	}
	return &h, nil
}
