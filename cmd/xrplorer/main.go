// Copyright (c) 2024 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package main

import (
	"fmt"
	"os"

	"github.com/inconshreveable/log15"
	cli "gopkg.in/urfave/cli.v1"

	"github.com/thejohnfreeman/xrplorer/nodestore"
	"github.com/thejohnfreeman/xrplorer/shell"
)

var (
	version   string
	gitCommit string
	gitTag    string
	log       = log15.New()
)

func fullVersion() string {
	versionMeta := "release"
	if gitTag == "" {
		versionMeta = "dev"
	}
	return fmt.Sprintf("%s-%s-%s", version, gitCommit, versionMeta)
}

func main() {
	app := cli.App{
		Version:   fullVersion(),
		Name:      "xrplorer",
		Usage:     "browse the node store of an XRP Ledger node like a filesystem",
		Copyright: "2024 John Freeman",
		Flags: []cli.Flag{
			dbDirFlag,
			cacheFlag,
			verbosityFlag,
		},
		Action: defaultAction,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func defaultAction(ctx *cli.Context) error {
	initLogger(ctx)

	store := openStore(ctx)
	defer func() { log.Info("closing node store..."); store.Close() }()

	osShim := shell.NewOS(store, os.Stdout)
	osShim.SetHostname(storeName(ctx))

	if status := shell.New(osShim).Run(); status != 0 {
		os.Exit(status)
	}
	return nil
}

func storeName(ctx *cli.Context) string {
	if dir := ctx.String(dbDirFlag.Name); dir != "" {
		return dir
	}
	return "memory"
}

func openStore(ctx *cli.Context) *nodestore.Store {
	backend := openBackend(ctx)
	store, err := nodestore.New(backend, nodeCacheCapacity)
	if err != nil {
		fatal(fmt.Sprintf("create node store: %v", err))
	}
	return store
}
