// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package converter

import (
	"strings"

	"github.com/bitmark-inc/hbytes/fault"
)

// maximum number of bits in a native integer
const maximumValueBits = 64

// Bits - sequence of 0/1 digits, index 0 is the most significant
type Bits []int8

// FromValue - convert an integer to the shortest two's complement
// sequence that decodes back to the same value
//
// negative values always start with 1, positive values with 0
func FromValue(value int64) Bits {
	width := 1
	for ; width < maximumValueBits; width += 1 {
		limit := int64(1) << uint(width-1)
		if value >= -limit && value < limit {
			break
		}
	}

	bits := make(Bits, width)
	u := uint64(value)
	for i := width - 1; i >= 0; i -= 1 {
		bits[i] = int8(u & 1)
		u >>= 1
	}
	return bits
}

// Value - decode a two's complement bit sequence
//
// sequences longer than 64 bits are accepted only if the extra
// leading bits are copies of the sign bit
func Value(bits Bits) (int64, error) {
	n := len(bits)
	if 0 == n {
		return 0, fault.ErrInvalidLength
	}
	if err := bits.Check(); nil != err {
		return 0, err
	}

	if n > maximumValueBits {
		sign := bits[0]
		for _, b := range bits[:n-maximumValueBits+1] {
			if b != sign {
				return 0, fault.ErrFieldTooLarge
			}
		}
		bits = bits[n-maximumValueBits:]
		n = maximumValueBits
	}

	v := uint64(0)
	for _, b := range bits {
		v = v<<1 | uint64(b)
	}
	if 1 == bits[0] && n < maximumValueBits {
		v |= ^uint64(0) << uint(n)
	}
	return int64(v), nil
}

// Check - every element must be 0 or 1
func (bits Bits) Check() error {
	for _, b := range bits {
		if 0 != b && 1 != b {
			return fault.ErrInvalidBit
		}
	}
	return nil
}

// Equal - compare two sequences
func (bits Bits) Equal(other Bits) bool {
	if len(bits) != len(other) {
		return false
	}
	for i, b := range bits {
		if other[i] != b {
			return false
		}
	}
	return true
}

// String - digits as text for the fmt package (for %s)
func (bits Bits) String() string {
	var sb strings.Builder
	sb.Grow(len(bits))
	for _, b := range bits {
		sb.WriteByte('0' + byte(b))
	}
	return sb.String()
}
