// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/bitmark-inc/hbytes/fault"
)

// common errors - keep in alphabetic order
const (
	ErrMissingConfiguration = fault.InvalidError("configuration file is required for this command")
	ErrNoHashes             = fault.InvalidError("at least one hash is required")
	ErrSelectOne            = fault.InvalidError("exactly one input option is required")
)
