// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/hbytes/fault"
	"github.com/bitmark-inc/hbytes/storage"
	"github.com/bitmark-inc/hbytes/transaction"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// colours
const (
	keyColour = "\033[1;36m"
	endColour = "\033[0m"
)

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "colour", HasArg: getoptions.NO_ARGUMENT, Short: 'g'},
		{Long: "raw", HasArg: getoptions.NO_ARGUMENT, Short: 'r'},
		{Long: "file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'f'},
		{Long: "count", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
		{Long: "start", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 's'},
		{Long: "bundle", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'b'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		exitwithstatus.Message("%s: version: %s", program, version)
	}

	if len(options["help"]) > 0 || 0 != len(arguments) || 1 != len(options["file"]) {
		exitwithstatus.Message("usage: %s [--help] [--verbose] [--colour] [--raw] [--count=N] [--start=HASH] [--bundle=BUNDLE] --file=DATABASE", program)
	}

	colour := len(options["colour"]) > 0
	raw := len(options["raw"]) > 0
	verbose := len(options["verbose"]) > 0

	count := 10
	if len(options["count"]) > 0 {
		count, err = strconv.Atoi(options["count"][0])
		if nil != err {
			exitwithstatus.Message("%s: convert count error: %s", program, err)
		}
		if count < 1 {
			exitwithstatus.Message("%s: invalid count: %d", program, count)
		}
	}

	start := ""
	if len(options["start"]) > 0 {
		start = options["start"][0]
	}

	filename := options["file"][0]
	if verbose {
		fmt.Printf("read database: %q\n", filename)
	}

	logging := logger.Configuration{
		Directory: ".",
		File:      "hbytes-dump.log",
		Size:      1048576,
		Count:     10,
		Console:   verbose,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	if err = logger.Initialise(logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	if err = fault.Initialise(); nil != err {
		exitwithstatus.Message("%s: fault setup failed with error: %s", program, err)
	}
	defer fault.Finalise()

	// start of main processing
	store, err := storage.Open(filename, storage.ReadOnly)
	if nil != err {
		exitwithstatus.Message("%s: storage setup failed with error: %s", program, err)
	}
	defer store.Close()

	d := &dumper{
		store:  store,
		colour: colour,
		raw:    raw,
	}

	if len(options["bundle"]) > 0 {
		err = d.bundle(options["bundle"][0])
	} else {
		err = d.page(start, count)
	}
	if nil != err {
		exitwithstatus.Message("%s: dump failed with error: %s", program, err)
	}
}

type dumper struct {
	store  *storage.Store
	colour bool
	raw    bool
}

// print one page of transactions in hash order
func (d *dumper) page(start string, count int) error {
	elements, err := d.store.Transactions(start, count)
	if nil != err {
		return err
	}
	for _, e := range elements {
		if err := d.print(string(e.Key), string(e.Value)); nil != err {
			return err
		}
	}
	return nil
}

// print all stored members of a bundle
func (d *dumper) bundle(bundle string) error {
	hashes, err := d.store.Bundle(bundle)
	if nil != err {
		return err
	}
	for _, hash := range hashes {
		hbytes, err := d.store.Get(hash)
		if nil != err {
			return err
		}
		if err := d.print(hash, hbytes); nil != err {
			return err
		}
	}
	return nil
}

func (d *dumper) print(hash string, hbytes string) error {
	if d.colour {
		fmt.Printf("%s%s%s\n", keyColour, hash, endColour)
	} else {
		fmt.Printf("%s\n", hash)
	}

	if d.raw {
		fmt.Printf("%s\n", hbytes)
		return nil
	}

	tx, err := transaction.Unpack(hbytes, hash)
	if nil != err {
		return err
	}
	b, err := json.MarshalIndent(tx, "", "  ")
	if nil != err {
		return err
	}
	_, err = os.Stdout.Write(append(b, '\n'))
	return err
}
