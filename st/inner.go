// Copyright (c) 2024 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package st

import "github.com/thejohnfreeman/xrplorer/xrp"

// BranchFactor the radix of the SHAMap.
const BranchFactor = 16

// InnerChild reads the i-th child digest of a prefixed inner-node
// blob. The on-disk layout is the 4-byte prefix followed by 16 child
// digests in fixed order; an all-zero digest marks an empty branch.
func InnerChild(data []byte, i int) (xrp.Hash256, error) {
	r := NewReader(data)
	if err := r.Skip(4 + xrp.HashLength*i); err != nil {
		return xrp.Hash256{}, err
	}
	return r.ReadHash256()
}

// InnerChildren reads all 16 child digests of a prefixed inner-node
// blob.
func InnerChildren(data []byte) (children [BranchFactor]xrp.Hash256, err error) {
	r := NewReader(data)
	if err = r.Skip(4); err != nil {
		return
	}
	for i := 0; i < BranchFactor; i++ {
		if children[i], err = r.ReadHash256(); err != nil {
			return
		}
	}
	return
}
