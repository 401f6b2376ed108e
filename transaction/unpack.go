// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transaction

import (
	"github.com/bitmark-inc/hbytes/constants"
	"github.com/bitmark-inc/hbytes/converter"
	"github.com/bitmark-inc/hbytes/fault"
)

// Unpack - parse a body of hbytes into a transaction
//
// if hash is empty it is computed from the body bits; a malformed
// body is rejected without any partial result
//
// unsigned fields are decoded as two's complement, a body produced by
// Pack never has their top bit set
func (c *Codec) Unpack(hbytes string, hash string) (*Transaction, error) {
	if len(hbytes) != c.layout.total {
		return nil, fault.ErrInvalidHBytes
	}

	bits, err := converter.HBytesToBits(hbytes)
	if nil != err {
		return nil, err
	}

	tx := &Transaction{}
	for _, field := range c.layout.fields {

		switch field.Field.Kind() {
		case SignedKind:
			for i := field.Offset + field.Useful; i < field.End(); i += 1 {
				if hbytes[i] != c.layout.filler {
					return nil, fault.ErrInvalidHBytes
				}
			}
			v, err := converter.Value(fieldBits(bits, field.Offset, field.Offset+field.Useful))
			if nil != err {
				return nil, err
			}
			*tx.signedField(field.Field) = v

		case UnsignedKind:
			v, err := converter.Value(fieldBits(bits, field.Offset, field.End()))
			if nil != err {
				return nil, err
			}
			*tx.unsignedField(field.Field) = uint64(v)

		default:
			*tx.hbytesField(field.Field) = hbytes[field.Offset:field.End()]
		}
	}

	if "" == hash {
		hash, err = converter.BitsToHBytes(c.hasher(bits))
		if nil != err {
			return nil, err
		}
	}
	tx.Hash = hash

	return tx, nil
}

// bits for the hbytes range [start, end)
func fieldBits(bits converter.Bits, start int, end int) converter.Bits {
	return bits[start*constants.BitsPerHByte : end*constants.BitsPerHByte]
}
