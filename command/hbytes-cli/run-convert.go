// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/hbytes/constants"
	"github.com/bitmark-inc/hbytes/converter"
	"github.com/bitmark-inc/hbytes/pad"
)

type bitsReply struct {
	Value  int64  `json:"value"`
	Bits   string `json:"bits"`
	HBytes string `json:"hbytes,omitempty"`
}

func runBits(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	value := c.Int64("value")
	width := c.Int("width")

	bits := converter.FromValue(value)
	if width > 0 {
		var err error
		bits, err = pad.SignedBits(bits, width)
		if nil != err {
			return err
		}
	}

	reply := bitsReply{
		Value: value,
		Bits:  bits.String(),
	}
	if 0 == len(bits)%constants.BitsPerHByte {
		s, err := converter.BitsToHBytes(bits)
		if nil != err {
			return err
		}
		reply.HBytes = s
	}
	return printJson(m.w, reply)
}

func runValue(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	hbytes := c.String("hbytes")
	digits := c.String("bits")

	var bits converter.Bits
	switch {
	case "" != hbytes && "" == digits:
		b, err := converter.HBytesToBits(hbytes)
		if nil != err {
			return err
		}
		bits = b
	case "" == hbytes && "" != digits:
		b, err := bitsFromDigits(digits)
		if nil != err {
			return err
		}
		bits = b
	default:
		return ErrSelectOne
	}

	value, err := converter.Value(bits)
	if nil != err {
		return err
	}
	return printJson(m.w, bitsReply{
		Value: value,
		Bits:  bits.String(),
	})
}

type asciiReply struct {
	Text   string `json:"text"`
	HBytes string `json:"hbytes"`
}

func runASCII(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	text := c.String("text")
	hbytes := c.String("hbytes")

	switch {
	case "" != text && "" == hbytes:
		s, err := converter.ASCIIToHBytes(text)
		if nil != err {
			return err
		}
		hbytes = s
	case "" == text && "" != hbytes:
		s, err := converter.HBytesToASCII(hbytes)
		if nil != err {
			return err
		}
		text = s
	default:
		return ErrSelectOne
	}
	return printJson(m.w, asciiReply{
		Text:   text,
		HBytes: hbytes,
	})
}

// parse a string of 0/1 characters
func bitsFromDigits(s string) (converter.Bits, error) {
	bits := make(converter.Bits, len(s))
	for i := 0; i < len(s); i += 1 {
		bits[i] = int8(s[i]) - '0'
	}
	if err := bits.Check(); nil != err {
		return nil, err
	}
	return bits, nil
}
