// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"context"

	"github.com/bitmark-inc/hbytes/constants"
	"github.com/bitmark-inc/hbytes/fault"
	"github.com/bitmark-inc/hbytes/transaction"
)

// GetHBytesCommand - arguments for getHBytes
type GetHBytesCommand struct {
	Command string   `json:"command"`
	Hashes  []string `json:"hashes"`
}

// GetHBytesReply - result of getHBytes
type GetHBytesReply struct {
	HBytes []string `json:"hbytes"`
}

// GetHBytes - fetch the bodies of a list of transactions from the node
func (client *Client) GetHBytes(ctx context.Context, hashes []string) ([]string, error) {
	if err := checkCount(len(hashes)); nil != err {
		return nil, err
	}
	for _, h := range hashes {
		if !transaction.IsHash(h) {
			return nil, fault.ErrInvalidHash
		}
	}

	command := GetHBytesCommand{
		Command: getHBytesCommand,
		Hashes:  hashes,
	}
	var reply GetHBytesReply
	if err := client.Send(ctx, command, &reply); nil != err {
		return nil, err
	}

	if len(reply.HBytes) != len(hashes) {
		client.log.Warnf("getHBytes: requested: %d  received: %d", len(hashes), len(reply.HBytes))
		return nil, fault.ErrInvalidResponse
	}
	return reply.HBytes, nil
}

// GetTransactionObjects - fetch and unpack transactions in the order given
//
// each hash is looked up in the cache, then the store, and only the
// remainder is requested from the node; new results are cached and
// written to the store
func (client *Client) GetTransactionObjects(ctx context.Context, hashes []string) ([]*transaction.Transaction, error) {
	if err := checkCount(len(hashes)); nil != err {
		return nil, err
	}

	result := make([]*transaction.Transaction, len(hashes))
	missing := make([]string, 0, len(hashes))
	missingIndex := make([]int, 0, len(hashes))

	for i, hash := range hashes {
		if !transaction.IsHash(hash) {
			return nil, fault.ErrInvalidHash
		}
		if tx, ok := client.cached(hash); ok {
			result[i] = tx
			continue
		}
		if tx, ok := client.stored(hash); ok {
			result[i] = tx
			continue
		}
		missing = append(missing, hash)
		missingIndex = append(missingIndex, i)
	}

	if 0 == len(missing) {
		return result, nil
	}

	bodies, err := client.GetHBytes(ctx, missing)
	if nil != err {
		return nil, err
	}

	txs, err := client.codec.UnpackAll(bodies, missing)
	if nil != err {
		client.log.Warnf("node returned invalid transaction: %s", err)
		return nil, err
	}

	for i, tx := range txs {
		hash := missing[i]
		client.cache.SetDefault(hash, *tx)
		if nil != client.store {
			if err := client.store.Put(hash, bodies[i]); nil != err {
				client.log.Warnf("store: %s  error: %s", hash, err)
			}
		}
		result[missingIndex[i]] = tx
	}
	return result, nil
}

// a copy of a cached transaction
func (client *Client) cached(hash string) (*transaction.Transaction, bool) {
	item, ok := client.cache.Get(hash)
	if !ok {
		return nil, false
	}
	tx := item.(transaction.Transaction)
	return &tx, true
}

// a transaction from the store, also added to the cache
func (client *Client) stored(hash string) (*transaction.Transaction, bool) {
	if nil == client.store {
		return nil, false
	}
	body, err := client.store.Get(hash)
	if nil != err {
		if !fault.IsErrNotFound(err) {
			client.log.Warnf("store: %s  error: %s", hash, err)
		}
		return nil, false
	}
	tx, err := client.codec.Unpack(body, hash)
	if nil != err {
		client.log.Warnf("store: %s  invalid body: %s", hash, err)
		return nil, false
	}
	client.cache.SetDefault(hash, *tx)
	return tx, true
}

// request size limits
func checkCount(count int) error {
	if count <= 0 || count > constants.MaxRequestBatchSize {
		return fault.ErrInvalidCount
	}
	return nil
}
