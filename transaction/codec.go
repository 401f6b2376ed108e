// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transaction

import (
	"github.com/bitmark-inc/hbytes/converter"
	"github.com/bitmark-inc/hbytes/digest"
)

// Hasher - reduces the bits of a body to the bits of its hash
type Hasher func(converter.Bits) converter.Bits

// Codec - packs and unpacks transaction bodies for one layout
//
// a Codec holds no mutable state and may be shared between goroutines
type Codec struct {
	layout *Layout
	hasher Hasher
}

var defaultCodec = NewCodec(nil, nil)

// NewCodec - create a codec, nil arguments select the standard
// layout and the SHA3 digest
func NewCodec(layout *Layout, hasher Hasher) *Codec {
	if nil == layout {
		layout = StandardLayout()
	}
	if nil == hasher {
		hasher = digest.Sum
	}
	return &Codec{
		layout: layout,
		hasher: hasher,
	}
}

// Layout - the layout used by this codec
func (c *Codec) Layout() *Layout {
	return c.layout
}

// Pack - serialise using the standard layout
func Pack(tx *Transaction) (string, error) {
	return defaultCodec.Pack(tx)
}

// Unpack - parse using the standard layout, an empty hash is computed
func Unpack(hbytes string, hash string) (*Transaction, error) {
	return defaultCodec.Unpack(hbytes, hash)
}

// Hash - compute the hash of a packed body
func (c *Codec) Hash(hbytes string) (string, error) {
	bits, err := converter.HBytesToBits(hbytes)
	if nil != err {
		return "", err
	}
	return converter.BitsToHBytes(c.hasher(bits))
}
