// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package pad - align values to their fixed field widths
//
// padding never truncates: an input wider than the field is an error
package pad

import (
	"strings"

	"github.com/bitmark-inc/hbytes/converter"
	"github.com/bitmark-inc/hbytes/fault"
)

// Bits - prepend zero bits until length is reached
//
// for unsigned fields (timestamps, indices)
func Bits(bits converter.Bits, length int) (converter.Bits, error) {
	return fill(bits, length, 0)
}

// SignedBits - prepend copies of the sign bit until length is reached
//
// for the signed value field: keeps the decoded value unchanged
func SignedBits(bits converter.Bits, length int) (converter.Bits, error) {
	if 0 == len(bits) {
		return fill(bits, length, 0)
	}
	return fill(bits, length, bits[0])
}

// HBytes - append the fill digit until length is reached
//
// for hash and tag fields the fill is constants.NullFiller
func HBytes(hbytes string, length int, fill byte) (string, error) {
	if len(hbytes) > length {
		return "", fault.ErrFieldTooLarge
	}
	if len(hbytes) == length {
		return hbytes, nil
	}
	return hbytes + strings.Repeat(string(fill), length-len(hbytes)), nil
}

func fill(bits converter.Bits, length int, bit int8) (converter.Bits, error) {
	if len(bits) > length {
		return nil, fault.ErrFieldTooLarge
	}
	result := make(converter.Bits, length)
	n := length - len(bits)
	for i := 0; i < n; i += 1 {
		result[i] = bit
	}
	copy(result[n:], bits)
	return result, nil
}
