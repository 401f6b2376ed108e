// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package digest - transaction hash primitive
//
// reduces a bit sequence to a fixed SHA3-256 digest; bits are packed
// into bytes most significant first with a trailing partial byte
// zero filled
package digest

import (
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/hbytes/converter"
	"github.com/bitmark-inc/hbytes/fault"
)

// Length - number of bytes in the digest
const Length = 32

// Bits - number of bits in the digest
const Bits = 8 * Length

// Digest - type for a digest
// to convert to bytes just use d[:]
type Digest [Length]byte

// NewDigest - create a digest from a bit sequence
func NewDigest(bits converter.Bits) Digest {
	return sha3.Sum256(pack(bits))
}

// Sum - hash primitive: bit sequence in, Bits long bit sequence out
func Sum(bits converter.Bits) converter.Bits {
	d := NewDigest(bits)
	return d.Bits()
}

// FromHBytes - convert hbytes representation back to a digest
func FromHBytes(s string) (Digest, error) {
	var d Digest
	if len(s) != hex.EncodedLen(Length) || !converter.IsHBytes(s) {
		return d, fault.ErrInvalidHash
	}
	if _, err := hex.Decode(d[:], []byte(s)); nil != err {
		return d, fault.ErrInvalidHash
	}
	return d, nil
}

// Bits - expand digest to bit sequence, most significant first
func (digest Digest) Bits() converter.Bits {
	bits := make(converter.Bits, 0, Bits)
	for _, b := range digest {
		for shift := uint(8); shift > 0; shift -= 1 {
			bits = append(bits, int8(b>>(shift-1)&1))
		}
	}
	return bits
}

// String - digest as hbytes for the fmt package (for %s)
func (digest Digest) String() string {
	return hex.EncodeToString(digest[:])
}

// GoString - for the fmt package (for %#v)
func (digest Digest) GoString() string {
	return "<SHA3-256:" + hex.EncodeToString(digest[:]) + ">"
}

// MarshalText - convert digest to hbytes text for JSON
func (digest Digest) MarshalText() ([]byte, error) {
	buffer := make([]byte, hex.EncodedLen(Length))
	hex.Encode(buffer, digest[:])
	return buffer, nil
}

// UnmarshalText - convert hbytes text to digest
func (digest *Digest) UnmarshalText(s []byte) error {
	d, err := FromHBytes(string(s))
	if nil != err {
		return err
	}
	*digest = d
	return nil
}

// Format - so %x works the same as %s
func (digest Digest) Format(f fmt.State, verb rune) {
	switch verb {
	case 'v':
		if f.Flag('#') {
			fmt.Fprint(f, digest.GoString())
			return
		}
		fallthrough
	default:
		fmt.Fprint(f, digest.String())
	}
}

// pack bits into bytes, a trailing partial byte is zero filled
func pack(bits converter.Bits) []byte {
	buffer := make([]byte, (len(bits)+7)/8)
	for i, b := range bits {
		if 0 != b {
			buffer[i/8] |= 0x80 >> uint(i%8)
		}
	}
	return buffer
}
