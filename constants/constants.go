// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package constants

import (
	"strings"
	"time"
)

// number of bits carried by a single hbyte (hex digit)
const BitsPerHByte = 4

// NullFiller - marks an unset hash or tag position
const NullFiller = '9'

// field sizes in hbytes
const (
	HashHBytesSize                     = 81
	TagHBytesSize                      = 27
	SignatureMessageFragmentHBytesSize = 2187
	ValueHBytesSize                    = 27
	ValueUsefulHBytesSize              = 11 // remainder of value is NullFiller
	NumericHBytesSize                  = 9  // timestamps and indices
	NonceHBytesSize                    = 27
	TransactionHBytesSize              = 2673
)

// DigestHBytesSize - length of a computed transaction hash
const DigestHBytesSize = 64

// limits imposed by the node's command API
const (
	MaxIndexDiff        = 1000
	MaxRequestBatchSize = 1000
)

// node client defaults
const (
	DefaultURI        = "http://localhost:14265"
	APIVersion        = "1"
	APIVersionHeader  = "X-HELIX-API-Version"
	DefaultTimeout    = 30 * time.Second
	DefaultRateLimit  = 20 // requests per second
	DefaultCacheTTL   = 10 * time.Minute
	DefaultFeedTopic  = "tx_hbytes"
	DefaultFeedWait   = 500 * time.Millisecond
	DefaultFeedBuffer = 100
)

// null values for whole fields
var (
	NullHashHBytes                     = strings.Repeat(string(NullFiller), HashHBytesSize)
	NullTagHBytes                      = strings.Repeat(string(NullFiller), TagHBytesSize)
	NullSignatureMessageFragmentHBytes = strings.Repeat(string(NullFiller), SignatureMessageFragmentHBytesSize)
	NullTransactionHBytes              = strings.Repeat(string(NullFiller), TransactionHBytesSize)
)
