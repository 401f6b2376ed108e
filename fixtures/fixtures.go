// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fixtures - shared helpers for package tests
package fixtures

import (
	"fmt"
	"os"
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/hbytes/constants"
	"github.com/bitmark-inc/hbytes/fault"
	"github.com/bitmark-inc/hbytes/transaction"
)

const (
	dir         = "testing"
	LogCategory = "testing"
)

// SetupTestLogger - start a file logger in a scratch directory
func SetupTestLogger() {
	removeFiles()
	_ = os.Mkdir(dir, 0700)

	logging := logger.Configuration{
		Directory: dir,
		File:      fmt.Sprintf("%s.log", LogCategory),
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	_ = logger.Initialise(logging)
	_ = fault.Initialise()
}

// TeardownTestLogger - stop logging and remove the scratch directory
func TeardownTestLogger() {
	fault.Finalise()
	logger.Finalise()
	removeFiles()
}

func removeFiles() {
	err := os.RemoveAll(dir)
	if nil != err {
		fmt.Println("remove dir with error: ", err)
	}
}

// Transaction - a distinct bundle member with its packed body and hash
func Transaction(index uint64) (*transaction.Transaction, string) {
	tx := &transaction.Transaction{
		SignatureMessageFragment: constants.NullSignatureMessageFragmentHBytes,
		Address:                  "0270af6513000abc87fbb1cb413d27bb06826461b1968f644ab9224b28f89b044f",
		Value:                    int64(index) - 1,
		ObsoleteTag:              strings.Repeat("a", 16),
		Timestamp:                1563378693,
		CurrentIndex:             index,
		LastIndex:                3,
		Bundle:                   strings.Repeat("b", 64),
		TrunkTransaction:         strings.Repeat("c", 64),
		BranchTransaction:        strings.Repeat("d", 64),
		Tag:                      strings.Repeat("e", 16),
		Nonce:                    strings.Repeat("0", 27),
	}

	packed, err := transaction.Pack(tx)
	fault.PanicIfError("fixture pack", err)

	// reload to pick up padding and the computed hash
	tx, err = transaction.Unpack(packed, "")
	fault.PanicIfError("fixture unpack", err)

	return tx, packed
}
