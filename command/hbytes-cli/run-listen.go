// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/hbytes/background"
	"github.com/bitmark-inc/hbytes/feed"
	"github.com/bitmark-inc/hbytes/storage"
	"github.com/bitmark-inc/hbytes/transaction"
)

func runListen(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)
	if nil == m.config {
		return ErrMissingConfiguration
	}

	log := logger.New("main")

	store, err := storage.Open(m.config.Database.Name, storage.ReadWrite)
	if nil != err {
		return err
	}
	defer store.Close()

	subscriber, err := feed.New(&m.config.Feed, func(tx *transaction.Transaction, hbytes string) {
		if err := store.Put(tx.Hash, hbytes); nil != err {
			log.Errorf("store: %s  error: %s", tx.Hash, err)
			return
		}
		fmt.Fprintf(m.w, "%s %d/%d %s\n", tx.Hash, tx.CurrentIndex, tx.LastIndex, tx.Bundle)
	})
	if nil != err {
		return err
	}

	processes := background.Start(background.Processes{subscriber}, nil)

	// wait for CTRL-C SIGINT or SIGTERM
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	sig := <-ch
	log.Infof("received signal: %v", sig)
	if m.verbose {
		fmt.Fprintf(m.e, "\nreceived signal: %v\n", sig)
	}

	processes.Stop()

	received, rejected := subscriber.Counts()
	log.Infof("received: %d  rejected: %d", received, rejected)
	if m.verbose {
		fmt.Fprintf(m.e, "received: %d  rejected: %d\n", received, rejected)
	}
	return nil
}
