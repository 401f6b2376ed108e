// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"github.com/syndtr/goleveldb/leveldb"

	"github.com/bitmark-inc/hbytes/fault"
	"github.com/bitmark-inc/hbytes/pad"
	"github.com/bitmark-inc/hbytes/transaction"
)

// Put - store a transaction body under its hash
//
// the body must be a complete transaction, it is also indexed by bundle
func (s *Store) Put(hash string, hbytes string) error {
	if !transaction.IsHash(hash) {
		return fault.ErrInvalidHash
	}
	if !transaction.IsTransactionHBytes(hbytes) {
		return fault.ErrInvalidHBytes
	}

	bundle := s.codec.Layout().Field(transaction.BundleField)

	batch := new(leveldb.Batch)
	batch.Put(s.transactions.prefixKey([]byte(hash)), []byte(hbytes))
	batch.Put(s.bundles.prefixKey([]byte(hbytes[bundle.Offset:bundle.End()]+hash)), []byte{})

	s.RLock()
	defer s.RUnlock()

	if nil == s.db {
		return fault.ErrNotInitialised
	}
	if s.readOnly {
		return fault.ErrReadOnly
	}
	if err := s.db.Write(batch, nil); nil != err {
		s.log.Errorf("put: %s  error: %s", hash, err)
		return err
	}
	s.log.Debugf("put: %s", hash)
	return nil
}

// Get - fetch the body stored for a hash
func (s *Store) Get(hash string) (string, error) {
	value, err := s.transactions.get([]byte(hash))
	if nil != err {
		return "", err
	}
	if nil == value {
		return "", fault.ErrTransactionNotFound
	}
	return string(value), nil
}

// Has - check if a hash is stored
func (s *Store) Has(hash string) (bool, error) {
	return s.transactions.has([]byte(hash))
}

// Transaction - fetch and unpack, the stored hash is used verbatim
func (s *Store) Transaction(hash string) (*transaction.Transaction, error) {
	hbytes, err := s.Get(hash)
	if nil != err {
		return nil, err
	}
	return s.codec.Unpack(hbytes, hash)
}

// Each - call f for every stored transaction in hash order
//
// an error from f stops the scan and is returned
func (s *Store) Each(f func(hash string, hbytes string) error) error {
	return s.transactions.NewFetchCursor().Map(func(key []byte, value []byte) error {
		return f(string(key), string(value))
	})
}

// Bundle - hashes of all stored transactions with the given bundle field
func (s *Store) Bundle(bundle string) ([]string, error) {
	width := s.codec.Layout().Field(transaction.BundleField).Width
	if !transaction.IsHBytesOfExactLength(bundle, len(bundle)) {
		return nil, fault.ErrInvalidHash
	}
	bundle, err := pad.HBytes(bundle, width, s.codec.Layout().Filler())
	if nil != err {
		return nil, err
	}

	hashes := make([]string, 0, 4)
	err = s.bundles.newPrefixCursor([]byte(bundle)).Map(func(key []byte, value []byte) error {
		hashes = append(hashes, string(key[width:]))
		return nil
	})
	return hashes, err
}

// Transactions - fetch a page of stored transactions
//
// start is the hash to resume from (empty for the first page)
func (s *Store) Transactions(start string, count int) ([]Element, error) {
	cursor := s.transactions.NewFetchCursor()
	if "" != start {
		cursor.Seek([]byte(start))
	}
	return cursor.Fetch(count)
}
