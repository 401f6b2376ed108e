// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package converter

import (
	"encoding/hex"
	"unicode/utf8"

	"github.com/bitmark-inc/hbytes/fault"
)

// ASCIIToHBytes - encode each ASCII character as two hbytes
func ASCIIToHBytes(s string) (string, error) {
	for i := 0; i < len(s); i += 1 {
		if s[i] >= utf8.RuneSelf {
			return "", fault.ErrInvalidASCII
		}
	}
	return hex.EncodeToString([]byte(s)), nil
}

// HBytesToASCII - inverse of ASCIIToHBytes
func HBytesToASCII(hbytes string) (string, error) {
	if !IsHBytes(hbytes) {
		return "", fault.ErrInvalidTxHex
	}
	if 0 != len(hbytes)%2 {
		return "", fault.ErrInvalidOddLength
	}
	b, err := hex.DecodeString(hbytes)
	if nil != err {
		return "", fault.ErrInvalidTxHex
	}
	return string(b), nil
}
