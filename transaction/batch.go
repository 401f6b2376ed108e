// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transaction

import (
	"github.com/bitmark-inc/hbytes/fault"
)

// PackAll - pack a list of transactions, stops at the first error
func (c *Codec) PackAll(txs []Transaction) ([]string, error) {
	result := make([]string, len(txs))
	for i := range txs {
		s, err := c.Pack(&txs[i])
		if nil != err {
			return nil, err
		}
		result[i] = s
	}
	return result, nil
}

// FinalHBytes - packed bundle in attachment order (last index first)
func (c *Codec) FinalHBytes(txs []Transaction) ([]string, error) {
	packed, err := c.PackAll(txs)
	if nil != err {
		return nil, err
	}
	for i, j := 0, len(packed)-1; i < j; i, j = i+1, j-1 {
		packed[i], packed[j] = packed[j], packed[i]
	}
	return packed, nil
}

// UnpackAll - unpack a list of bodies
//
// hashes may be nil to compute every hash, otherwise it must match
// hbytes one to one; an empty entry is computed
func (c *Codec) UnpackAll(hbytes []string, hashes []string) ([]*Transaction, error) {
	if nil != hashes && len(hashes) != len(hbytes) {
		return nil, fault.ErrHashCountMismatch
	}

	result := make([]*Transaction, len(hbytes))
	for i, s := range hbytes {
		hash := ""
		if nil != hashes {
			hash = hashes[i]
		}
		tx, err := c.Unpack(s, hash)
		if nil != err {
			return nil, err
		}
		result[i] = tx
	}
	return result, nil
}
