// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"context"

	"github.com/bitmark-inc/hbytes/fault"
	"github.com/bitmark-inc/hbytes/transaction"
)

// HBytesCommand - arguments for storeTransactions and broadcastTransactions
type HBytesCommand struct {
	Command string   `json:"command"`
	HBytes  []string `json:"hbytes"`
}

// StoreTransactions - ask the node to persist attached bodies
func (client *Client) StoreTransactions(ctx context.Context, hbytes []string) error {
	return client.sendHBytes(ctx, storeTransactionsCommand, hbytes)
}

// BroadcastTransactions - ask the node to relay attached bodies
func (client *Client) BroadcastTransactions(ctx context.Context, hbytes []string) error {
	return client.sendHBytes(ctx, broadcastTransactionsCommand, hbytes)
}

// StoreAndBroadcast - store then broadcast, nothing is broadcast if the store fails
func (client *Client) StoreAndBroadcast(ctx context.Context, hbytes []string) error {
	if err := client.StoreTransactions(ctx, hbytes); nil != err {
		return err
	}
	return client.BroadcastTransactions(ctx, hbytes)
}

func (client *Client) sendHBytes(ctx context.Context, name string, hbytes []string) error {
	if err := checkCount(len(hbytes)); nil != err {
		return err
	}
	for _, s := range hbytes {
		if !transaction.IsTransactionHBytes(s) {
			return fault.ErrInvalidHBytes
		}
	}

	command := HBytesCommand{
		Command: name,
		HBytes:  hbytes,
	}
	if err := client.Send(ctx, command, nil); nil != err {
		return err
	}
	client.log.Infof("%s: %d transactions", name, len(hbytes))
	return nil
}
