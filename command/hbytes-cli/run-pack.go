// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/hbytes/transaction"
)

type packReply struct {
	HBytes string `json:"hbytes"`
	Hash   string `json:"hash"`
}

func runPack(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	data, err := readInput(c.String("file"))
	if nil != err {
		return err
	}

	tx, err := transaction.FromJSON(data)
	if nil != err {
		return err
	}

	packed, err := transaction.Pack(tx)
	if nil != err {
		return err
	}

	hash, err := transaction.NewCodec(nil, nil).Hash(packed)
	if nil != err {
		return err
	}

	return printJson(m.w, packReply{
		HBytes: packed,
		Hash:   hash,
	})
}

func runUnpack(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	hbytes, err := readArgument(c.String("hbytes"))
	if nil != err {
		return err
	}

	tx, err := transaction.Unpack(hbytes, c.String("hash"))
	if nil != err {
		return err
	}
	return printJson(m.w, tx)
}
