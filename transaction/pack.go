// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transaction

import (
	"math"
	"strings"

	"github.com/bitmark-inc/hbytes/constants"
	"github.com/bitmark-inc/hbytes/converter"
	"github.com/bitmark-inc/hbytes/fault"
	"github.com/bitmark-inc/hbytes/pad"
)

// Pack - serialise a transaction into a single body of hbytes
//
// fields are concatenated in layout order:
//   numeric: minimal bits → padded to field width → hbytes
//   hbytes:  copied, right filled with null filler if short
//
// the hash is never included and no hashing is done here
func (c *Codec) Pack(tx *Transaction) (string, error) {
	var body strings.Builder
	body.Grow(c.layout.total)

	for _, field := range c.layout.fields {
		var s string
		var err error

		switch field.Field.Kind() {
		case SignedKind:
			s, err = c.packSigned(*tx.signedField(field.Field), field)
		case UnsignedKind:
			s, err = c.packUnsigned(*tx.unsignedField(field.Field), field)
		default:
			s, err = c.packHBytes(tx.hbytesFor(field.Field), field)
		}
		if nil != err {
			return "", err
		}
		body.WriteString(s)
	}

	if body.Len() != c.layout.total {
		fault.Panicf("packed length: %d  expected: %d", body.Len(), c.layout.total)
	}
	return body.String(), nil
}

// an empty tag is replaced by the obsolete tag
func (tx *Transaction) hbytesFor(f Field) string {
	if TagField == f && "" == tx.Tag {
		return tx.ObsoleteTag
	}
	return *tx.hbytesField(f)
}

func (c *Codec) packHBytes(s string, field FieldLayout) (string, error) {
	if !converter.IsHBytes(s) {
		return "", fault.ErrInvalidCharacter
	}
	return pad.HBytes(s, field.Width, c.layout.filler)
}

func (c *Codec) packUnsigned(value uint64, field FieldLayout) (string, error) {
	if value > math.MaxInt64 {
		return "", fault.ErrFieldTooLarge
	}
	bits, err := pad.Bits(converter.FromValue(int64(value)), field.Width*constants.BitsPerHByte)
	if nil != err {
		return "", err
	}
	return converter.BitsToHBytes(bits)
}

// value is sign extended over the useful part, the rest is filler
func (c *Codec) packSigned(value int64, field FieldLayout) (string, error) {
	bits, err := pad.SignedBits(converter.FromValue(value), field.Useful*constants.BitsPerHByte)
	if nil != err {
		return "", err
	}
	s, err := converter.BitsToHBytes(bits)
	if nil != err {
		return "", err
	}
	return pad.HBytes(s, field.Width, c.layout.filler)
}
