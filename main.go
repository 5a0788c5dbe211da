/*
 * Copyright 2025 WellPulse Authors
 * SPDX-License-Identifier: Apache-2.0
 */
package main

import (
	"context"
	"log"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/wellpulse/wellpulse/cmd"
	"github.com/wellpulse/wellpulse/logging"
)

func main() {
	logging.Init()

	app := &cli.Command{
		Name:  "wellpulse",
		Usage: "WellPulse - Health Scoring Engine",
		Commands: []*cli.Command{
			cmd.CmdStart,
			cmd.CmdMigrate,
			cmd.CmdReport,
			cmd.CmdLoad,
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}
