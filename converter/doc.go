// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package converter - numeral and hbytes conversions
//
// A Bits value is a sequence of binary digits, most significant first.
// Integers are stored as minimal length two's complement and hbytes
// are lower case hex digits each carrying four bits:
//
//   FromValue(12)                      → [0 1 1 0 0]
//   BitsToHBytes([0 1 1 1 1 0 0 1 1 1 1 0]) → "79e"
//
// all functions are pure and safe for concurrent use
package converter
