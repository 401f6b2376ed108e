// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fault - error instances
//
// Provides a single instance of each codec and client error so that
// callers compare by identity or by class (IsErrLength, IsErrRecord...)
// without resorting to partial string matches
package fault
