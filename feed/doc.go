// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package feed - subscribe to the node's live transaction stream
//
// the node publishes one message per new transaction:
//
//   tx_hbytes <hbytes> <hash>
//
// either as a single space separated frame or as three frames
package feed
