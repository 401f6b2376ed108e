// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"context"

	"github.com/bitmark-inc/hbytes/constants"
	"github.com/bitmark-inc/hbytes/converter"
	"github.com/bitmark-inc/hbytes/fault"
	"github.com/bitmark-inc/hbytes/transaction"
)

// FindQuery - search terms, a transaction matches if it matches all given lists
type FindQuery struct {
	Addresses []string `json:"addresses,omitempty"`
	Bundles   []string `json:"bundles,omitempty"`
	Tags      []string `json:"tags,omitempty"`
	Approvees []string `json:"approvees,omitempty"`
}

// FindTransactionsCommand - arguments for findTransactions
type FindTransactionsCommand struct {
	Command string `json:"command"`
	FindQuery
}

// FindTransactionsReply - result of findTransactions
type FindTransactionsReply struct {
	Hashes []string `json:"hashes"`
}

// FindTransactions - hashes of transactions matching a query
func (client *Client) FindTransactions(ctx context.Context, query FindQuery) ([]string, error) {
	if err := query.check(); nil != err {
		return nil, err
	}

	command := FindTransactionsCommand{
		Command:   findTransactionsCommand,
		FindQuery: query,
	}
	var reply FindTransactionsReply
	if err := client.Send(ctx, command, &reply); nil != err {
		return nil, err
	}
	if nil == reply.Hashes {
		reply.Hashes = []string{}
	}
	return reply.Hashes, nil
}

// FindTransactionObjects - find then fetch the matching transactions
func (client *Client) FindTransactionObjects(ctx context.Context, query FindQuery) ([]*transaction.Transaction, error) {
	hashes, err := client.FindTransactions(ctx, query)
	if nil != err {
		return nil, err
	}
	if 0 == len(hashes) {
		return []*transaction.Transaction{}, nil
	}
	return client.GetTransactionObjects(ctx, hashes)
}

func (query *FindQuery) check() error {
	n := len(query.Addresses) + len(query.Bundles) + len(query.Tags) + len(query.Approvees)
	if 0 == n {
		return fault.ErrInvalidCommand
	}
	if n > constants.MaxRequestBatchSize {
		return fault.ErrInvalidCount
	}

	for _, list := range [][]string{query.Addresses, query.Bundles, query.Approvees} {
		for _, s := range list {
			if len(s) > constants.HashHBytesSize || !converter.IsHBytes(s) {
				return fault.ErrInvalidHash
			}
		}
	}
	for _, tag := range query.Tags {
		if !transaction.IsTag(tag) {
			return fault.ErrInvalidTag
		}
	}
	return nil
}
