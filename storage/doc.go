// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the on-disk transaction store
//
// a single LevelDB database split into tables by a one byte prefix
//
// Notes:
// 1. ++     = concatenation of byte data
// 2. hash   = transaction hash as lower case hbytes text
// 3. bundle = bundle field as stored in the transaction body
//
// Transactions:
//
//   T ++ hash              - transaction body
//                            data: hbytes text (2673 characters)
//
// Bundles:
//
//   B ++ bundle ++ hash    - bundle membership
//                            data: empty
//
// Version:
//
//   0x00 ++ "VERSION"      - database version (big endian uint32)
package storage
