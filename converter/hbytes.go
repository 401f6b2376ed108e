// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package converter

import (
	"strings"

	"github.com/bitmark-inc/hbytes/constants"
	"github.com/bitmark-inc/hbytes/fault"
)

// canonical hbytes alphabet, lower case only
const alphabet = "0123456789abcdef"

// BitsToHBytes - pack each 4 bit window (most significant first) into a hex digit
func BitsToHBytes(bits Bits) (string, error) {
	if 0 != len(bits)%constants.BitsPerHByte {
		return "", fault.ErrInvalidLength
	}
	if err := bits.Check(); nil != err {
		return "", err
	}

	var sb strings.Builder
	sb.Grow(len(bits) / constants.BitsPerHByte)
	for i := 0; i < len(bits); i += constants.BitsPerHByte {
		nibble := bits[i]<<3 | bits[i+1]<<2 | bits[i+2]<<1 | bits[i+3]
		sb.WriteByte(alphabet[nibble])
	}
	return sb.String(), nil
}

// HBytesToBits - expand each hex digit into 4 bits
func HBytesToBits(hbytes string) (Bits, error) {
	bits := make(Bits, 0, len(hbytes)*constants.BitsPerHByte)
	for i := 0; i < len(hbytes); i += 1 {
		nibble := strings.IndexByte(alphabet, hbytes[i])
		if nibble < 0 {
			return nil, fault.ErrInvalidCharacter
		}
		bits = append(bits,
			int8(nibble>>3&1),
			int8(nibble>>2&1),
			int8(nibble>>1&1),
			int8(nibble&1),
		)
	}
	return bits, nil
}

// IsHBytes - true if every character is in the hbytes alphabet
func IsHBytes(s string) bool {
	for i := 0; i < len(s); i += 1 {
		if strings.IndexByte(alphabet, s[i]) < 0 {
			return false
		}
	}
	return true
}
