// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/hbytes/configuration"
	"github.com/bitmark-inc/hbytes/fault"
)

type metadata struct {
	file    string
	config  *configuration.Configuration
	verbose bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {
	app := newApp(os.Stdout, os.Stderr)

	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}

func newApp(w io.Writer, e io.Writer) *cli.App {

	app := cli.NewApp()
	app.Name = "hbytes-cli"
	app.Usage = "convert, pack and exchange hbytes transactions"
	app.Version = version
	app.HideVersion = true

	app.Writer = w
	app.ErrWriter = e

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "config, c",
			Value: "",
			Usage: " configuration `FILE` (required for node commands)",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "bits",
			Usage:     "show the two's complement bits and hbytes of an integer",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.Int64Flag{
					Name:  "value, n",
					Usage: "*integer `VALUE`",
				},
				cli.IntFlag{
					Name:  "width, w",
					Value: 0,
					Usage: " sign extend to `BITS` (multiple of 4 for hbytes)",
				},
			},
			Action: runBits,
		},
		{
			Name:      "value",
			Usage:     "decode hbytes or bits to an integer",
			ArgsUsage: "\n   (+ = select one)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "hbytes, x",
					Value: "",
					Usage: "+hbytes `HEX`",
				},
				cli.StringFlag{
					Name:  "bits, b",
					Value: "",
					Usage: "+bit `DIGITS`",
				},
			},
			Action: runValue,
		},
		{
			Name:      "ascii",
			Usage:     "convert between ascii text and hbytes",
			ArgsUsage: "\n   (+ = select one)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "text, t",
					Value: "",
					Usage: "+ascii `TEXT`",
				},
				cli.StringFlag{
					Name:  "hbytes, x",
					Value: "",
					Usage: "+hbytes `HEX`",
				},
			},
			Action: runASCII,
		},
		{
			Name:      "pack",
			Usage:     "pack a JSON transaction into hbytes",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "file, f",
					Value: "-",
					Usage: "*JSON transaction `FILE` (- for stdin)",
				},
			},
			Action: runPack,
		},
		{
			Name:      "unpack",
			Usage:     "unpack hbytes into a JSON transaction",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "hbytes, x",
					Value: "",
					Usage: "*transaction `HEX` (- for stdin)",
				},
				cli.StringFlag{
					Name:  "hash, H",
					Value: "",
					Usage: " known `HASH` (default: computed)",
				},
			},
			Action: runUnpack,
		},
		{
			Name:   "info",
			Usage:  "display node information",
			Action: runInfo,
		},
		{
			Name:      "fetch",
			Usage:     "fetch transactions by hash",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringSliceFlag{
					Name:  "hash, H",
					Usage: "*transaction `HASH` (repeatable)",
				},
			},
			Action: runFetch,
		},
		{
			Name:      "find",
			Usage:     "find transactions on the node",
			ArgsUsage: "\n   (+ = at least one)",
			Flags: []cli.Flag{
				cli.StringSliceFlag{
					Name:  "address, a",
					Usage: "+`ADDRESS` (repeatable)",
				},
				cli.StringSliceFlag{
					Name:  "bundle, b",
					Usage: "+`BUNDLE` (repeatable)",
				},
				cli.StringSliceFlag{
					Name:  "tag, t",
					Usage: "+`TAG` (repeatable)",
				},
				cli.StringSliceFlag{
					Name:  "approvee, p",
					Usage: "+approved transaction `HASH` (repeatable)",
				},
				cli.BoolFlag{
					Name:  "objects, o",
					Usage: " fetch the transactions instead of hashes",
				},
			},
			Action: runFind,
		},
		{
			Name:      "broadcast",
			Usage:     "store and broadcast attached transactions",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "file, f",
					Value: "-",
					Usage: "*JSON array of hbytes `FILE` (- for stdin)",
				},
				cli.BoolFlag{
					Name:  "store-only, s",
					Usage: " only ask the node to store",
				},
			},
			Action: runBroadcast,
		},
		{
			Name:   "listen",
			Usage:  "record transactions from the node feed until interrupted",
			Action: runListen,
		},
	}

	app.Before = func(c *cli.Context) error {

		m := &metadata{
			file:    c.GlobalString("config"),
			verbose: c.GlobalBool("verbose"),
			e:       c.App.ErrWriter,
			w:       c.App.Writer,
		}
		c.App.Metadata["config"] = m

		// conversion commands run without a configuration
		if "" == m.file {
			return nil
		}

		if m.verbose {
			fmt.Fprintf(m.e, "file: %q\n", m.file)
		}

		config, err := configuration.GetConfiguration(m.file, nil)
		if nil != err {
			return err
		}
		m.config = config

		if err := logger.Initialise(config.Logging); nil != err {
			return err
		}
		return fault.Initialise()
	}

	app.After = func(c *cli.Context) error {
		m, ok := c.App.Metadata["config"].(*metadata)
		if ok && nil != m.config {
			fault.Finalise()
			logger.Finalise()
		}
		return nil
	}

	return app
}
