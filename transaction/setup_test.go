// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transaction_test

import (
	"strings"

	"github.com/bitmark-inc/hbytes/constants"
	"github.com/bitmark-inc/hbytes/transaction"
)

func repeat(c string, n int) string {
	return strings.Repeat(c, n)
}

// all hash and tag fields unset, all numbers zero
func nullTransaction() transaction.Transaction {
	return transaction.Transaction{
		SignatureMessageFragment: constants.NullSignatureMessageFragmentHBytes,
		Address:                  constants.NullHashHBytes,
		ObsoleteTag:              constants.NullTagHBytes,
		Bundle:                   constants.NullHashHBytes,
		TrunkTransaction:         constants.NullHashHBytes,
		BranchTransaction:        constants.NullHashHBytes,
		Tag:                      constants.NullTagHBytes,
		Nonce:                    constants.NullTagHBytes,
	}
}

// a transaction with every field in use
func sampleTransaction() transaction.Transaction {
	return transaction.Transaction{
		SignatureMessageFragment:      repeat("0123456789abcdef", 136) + "0123456789a",
		Address:                       "03f549072c534a49f125cd9229eab76748478158ee7097c6a8dcdd3a84000596db" + repeat("9", 15),
		Value:                         -6473274,
		ObsoleteTag:                   "aaaaaaaaaaaaaaaa" + repeat("9", 11),
		Timestamp:                     1563378693,
		CurrentIndex:                  2,
		LastIndex:                     3,
		Bundle:                        repeat("b", 64) + repeat("9", 17),
		TrunkTransaction:              repeat("c", 81),
		BranchTransaction:             repeat("d", 81),
		Tag:                           "bbbbbbbbbbbbbbbb" + repeat("9", 11),
		AttachmentTimestamp:           1563378700,
		AttachmentTimestampLowerBound: 0,
		AttachmentTimestampUpperBound: 34359738367,
		Nonce:                         "0000000000000000000000abcde",
	}
}
