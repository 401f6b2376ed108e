// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package rpccalls - client for the node JSON command API
//
// every command is a single HTTP POST of a JSON object with a
// "command" member; requests are rate limited and honour the
// context deadline
//
// parsed transactions are cached by hash and, if a store is given,
// written through to it
package rpccalls
