// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package transaction - fixed layout transaction wire format
//
// A transaction body is a single string of constants.TransactionHBytesSize
// hbytes.  Each field occupies a fixed range described by a Layout:
//
//   signatureMessageFragment   2187
//   address                      81
//   value                        27  (11 signed + 16 null filler)
//   obsoleteTag                  27
//   timestamp                     9
//   currentIndex                  9
//   lastIndex                     9
//   bundle                       81
//   trunkTransaction             81
//   branchTransaction            81
//   tag                          27
//   attachmentTimestamp           9
//   attachmentTimestampLower      9
//   attachmentTimestampUpper      9
//   nonce                        27
//
// The hash is not part of the body, it is either supplied by the caller
// or computed from the body bits by the codec's Hasher.
package transaction
