// Copyright (c) 2024 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package main

import (
	"fmt"
	"os"

	"github.com/inconshreveable/log15"
	isatty "github.com/mattn/go-isatty"
	cli "gopkg.in/urfave/cli.v1"

	"github.com/thejohnfreeman/xrplorer/lvldb"
	"github.com/thejohnfreeman/xrplorer/nodestore"
)

// nodeCacheCapacity count of decoded node objects the store keeps
// in memory.
const nodeCacheCapacity = 8192

func fatal(args ...interface{}) {
	fmt.Fprint(os.Stderr, "Fatal: ")
	fmt.Fprintln(os.Stderr, args...)
	os.Exit(1)
}

func initLogger(ctx *cli.Context) {
	logLevel := ctx.Int(verbosityFlag.Name)
	format := log15.LogfmtFormat()
	if isatty.IsTerminal(os.Stderr.Fd()) {
		format = log15.TerminalFormat()
	}
	handler := log15.LvlFilterHandler(
		log15.Lvl(logLevel),
		log15.StreamHandler(os.Stderr, format),
	)
	log15.Root().SetHandler(handler)
}

func openBackend(ctx *cli.Context) nodestore.Backend {
	dir := ctx.String(dbDirFlag.Name)
	if dir == "" {
		log.Warn("no -db-dir given, using empty in-memory store")
		db, err := lvldb.NewMem()
		if err != nil {
			fatal(fmt.Sprintf("open memory store: %v", err))
		}
		return db
	}
	db, err := lvldb.New(dir, lvldb.Options{
		CacheSize:              ctx.Int(cacheFlag.Name),
		OpenFilesCacheCapacity: 512,
	})
	if err != nil {
		fatal(fmt.Sprintf("open node store [%v]: %v", dir, err))
	}
	return db
}
