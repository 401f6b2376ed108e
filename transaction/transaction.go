// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transaction

import (
	"bytes"
	"encoding/json"

	"github.com/bitmark-inc/hbytes/fault"
)

// Transaction - the unpacked transaction structure
type Transaction struct {
	Hash                          string `json:"hash,omitempty"`                // derived: not part of the body
	SignatureMessageFragment      string `json:"signatureMessageFragment"`      // hbytes
	Address                       string `json:"address"`                       // hbytes
	Value                         int64  `json:"value"`                         // signed
	ObsoleteTag                   string `json:"obsoleteTag"`                   // hbytes
	Timestamp                     uint64 `json:"timestamp"`                     // seconds
	CurrentIndex                  uint64 `json:"currentIndex"`                  // position in bundle
	LastIndex                     uint64 `json:"lastIndex"`                     // bundle size - 1
	Bundle                        string `json:"bundle"`                        // hbytes
	TrunkTransaction              string `json:"trunkTransaction"`              // hbytes
	BranchTransaction             string `json:"branchTransaction"`             // hbytes
	Tag                           string `json:"tag"`                           // hbytes, empty: use ObsoleteTag
	AttachmentTimestamp           uint64 `json:"attachmentTimestamp"`           // unsigned
	AttachmentTimestampLowerBound uint64 `json:"attachmentTimestampLowerBound"` // unsigned
	AttachmentTimestampUpperBound uint64 `json:"attachmentTimestampUpperBound"` // unsigned
	Nonce                         string `json:"nonce"`                         // hbytes
}

// FromJSON - decode a transaction, unknown fields are rejected
func FromJSON(data []byte) (*Transaction, error) {
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()

	var tx Transaction
	if err := decoder.Decode(&tx); nil != err {
		return nil, err
	}
	return &tx, nil
}

// hbytes valued fields
func (tx *Transaction) hbytesField(f Field) *string {
	switch f {
	case SignatureMessageFragmentField:
		return &tx.SignatureMessageFragment
	case AddressField:
		return &tx.Address
	case ObsoleteTagField:
		return &tx.ObsoleteTag
	case BundleField:
		return &tx.Bundle
	case TrunkTransactionField:
		return &tx.TrunkTransaction
	case BranchTransactionField:
		return &tx.BranchTransaction
	case TagField:
		return &tx.Tag
	case NonceField:
		return &tx.Nonce
	}
	fault.Panicf("field: %s is not hbytes", f)
	return nil
}

// unsigned integer fields
func (tx *Transaction) unsignedField(f Field) *uint64 {
	switch f {
	case TimestampField:
		return &tx.Timestamp
	case CurrentIndexField:
		return &tx.CurrentIndex
	case LastIndexField:
		return &tx.LastIndex
	case AttachmentTimestampField:
		return &tx.AttachmentTimestamp
	case AttachmentTimestampLowerBoundField:
		return &tx.AttachmentTimestampLowerBound
	case AttachmentTimestampUpperBoundField:
		return &tx.AttachmentTimestampUpperBound
	}
	fault.Panicf("field: %s is not unsigned", f)
	return nil
}

// signed integer fields
func (tx *Transaction) signedField(f Field) *int64 {
	if ValueField == f {
		return &tx.Value
	}
	fault.Panicf("field: %s is not signed", f)
	return nil
}
