// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"strings"
)

func printJson(handle io.Writer, message interface{}) error {

	b, err := json.MarshalIndent(message, "", "  ")
	if nil != err {
		return err
	}

	fmt.Fprintf(handle, "%s\n", b)
	return nil
}

// read a whole file, "-" is stdin
func readInput(fileName string) ([]byte, error) {
	if "-" == fileName {
		return ioutil.ReadAll(os.Stdin)
	}
	return ioutil.ReadFile(fileName)
}

// read a single token argument, "-" is stdin
func readArgument(s string) (string, error) {
	if "-" != s {
		return s, nil
	}
	b, err := ioutil.ReadAll(os.Stdin)
	if nil != err {
		return "", err
	}
	return strings.TrimSpace(string(b)), nil
}
