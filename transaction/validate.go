// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transaction

import (
	"github.com/bitmark-inc/hbytes/constants"
	"github.com/bitmark-inc/hbytes/converter"
)

// IsHBytesOfExactLength - valid hbytes of a specific length
func IsHBytesOfExactLength(s string, length int) bool {
	return len(s) == length && converter.IsHBytes(s)
}

// IsHash - a computed digest or a full width hash field
func IsHash(s string) bool {
	return IsHBytesOfExactLength(s, constants.DigestHBytesSize) ||
		IsHBytesOfExactLength(s, constants.HashHBytesSize)
}

// IsTag - tag that fits in the tag field
func IsTag(s string) bool {
	return len(s) <= constants.TagHBytesSize && converter.IsHBytes(s)
}

// IsTransactionHBytes - a complete body for the standard layout
func IsTransactionHBytes(s string) bool {
	return IsHBytesOfExactLength(s, standardLayout.total)
}

// IsNullHBytes - non-empty and entirely null filler
func IsNullHBytes(s string) bool {
	if 0 == len(s) {
		return false
	}
	for i := 0; i < len(s); i += 1 {
		if constants.NullFiller != s[i] {
			return false
		}
	}
	return true
}
