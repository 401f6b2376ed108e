// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"encoding/json"
	"time"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/hbytes/rpccalls"
	"github.com/bitmark-inc/hbytes/storage"
)

// connect to the configured node with the local store attached
func newClient(m *metadata) (*rpccalls.Client, *storage.Store, error) {
	if nil == m.config {
		return nil, nil, ErrMissingConfiguration
	}

	store, err := storage.Open(m.config.Database.Name, storage.ReadWrite)
	if nil != err {
		return nil, nil, err
	}

	client, err := rpccalls.NewClient(&m.config.Node, nil, store)
	if nil != err {
		store.Close()
		return nil, nil, err
	}
	return client, store, nil
}

// a context bounded by the configured node timeout
func requestContext(m *metadata) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), time.Duration(m.config.Node.Timeout)*time.Second)
}

func runInfo(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	client, store, err := newClient(m)
	if nil != err {
		return err
	}
	defer store.Close()

	ctx, cancel := requestContext(m)
	defer cancel()

	info, err := client.GetNodeInfo(ctx)
	if nil != err {
		return err
	}
	return printJson(m.w, info)
}

func runFetch(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	hashes := c.StringSlice("hash")
	if 0 == len(hashes) {
		return ErrNoHashes
	}

	client, store, err := newClient(m)
	if nil != err {
		return err
	}
	defer store.Close()

	ctx, cancel := requestContext(m)
	defer cancel()

	txs, err := client.GetTransactionObjects(ctx, hashes)
	if nil != err {
		return err
	}
	return printJson(m.w, txs)
}

func runFind(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	query := rpccalls.FindQuery{
		Addresses: c.StringSlice("address"),
		Bundles:   c.StringSlice("bundle"),
		Tags:      c.StringSlice("tag"),
		Approvees: c.StringSlice("approvee"),
	}

	client, store, err := newClient(m)
	if nil != err {
		return err
	}
	defer store.Close()

	ctx, cancel := requestContext(m)
	defer cancel()

	if c.Bool("objects") {
		txs, err := client.FindTransactionObjects(ctx, query)
		if nil != err {
			return err
		}
		return printJson(m.w, txs)
	}

	hashes, err := client.FindTransactions(ctx, query)
	if nil != err {
		return err
	}
	return printJson(m.w, hashes)
}

func runBroadcast(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	data, err := readInput(c.String("file"))
	if nil != err {
		return err
	}

	var hbytes []string
	if err := json.Unmarshal(data, &hbytes); nil != err {
		return err
	}

	client, store, err := newClient(m)
	if nil != err {
		return err
	}
	defer store.Close()

	ctx, cancel := requestContext(m)
	defer cancel()

	if c.Bool("store-only") {
		err = client.StoreTransactions(ctx, hbytes)
	} else {
		err = client.StoreAndBroadcast(ctx, hbytes)
	}
	if nil != err {
		return err
	}

	if m.verbose {
		printJson(m.e, map[string]int{"sent": len(hbytes)})
	}
	return nil
}
