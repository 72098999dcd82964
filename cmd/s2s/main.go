// Copyright 2025 Robert Bosch GmbH
//
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/boschglobal/dse.s2s/internal/app/command"
	"github.com/boschglobal/dse.s2s/internal/app/layout"
	"github.com/boschglobal/dse.s2s/internal/app/loopback"
	"github.com/boschglobal/dse.s2s/internal/app/validate"
)

var cmds = []command.CommandRunner{
	command.NewHelpCommand("help"),
	validate.NewValidateCommand("validate"),
	layout.NewLayoutCommand("layout"),
	loopback.NewLoopbackCommand("loopback"),
}

var usage = `
Signal-to-Service translation tools.

Usage:

	s2s [-logger N] <command> [option] <yaml files...>

	s2s validate <yaml files...>
	s2s layout -pdu <name> <yaml files...>
	s2s loopback -event <service:instance:event> [-count N] [-transport stub|stream|redis] [-uri URL] <yaml files...>

`

func printUsage() {
	command.PrintUsage(usage[1:], cmds)
}

func main() {
	os.Exit(main_())
}

func main_() int {
	flag.Usage = printUsage
	logLevel := flag.Int("logger", 3, "log level (select between 0..4)")
	flag.Parse()
	slog.SetDefault(NewLogger(os.Stderr, *logLevel))
	slog.Debug(fmt.Sprintf("Log level: %d", *logLevel))

	if flag.NArg() == 0 {
		printUsage()
		return 1
	}
	if err := command.DispatchCommand(flag.Arg(0), flag.Args()[1:], cmds); err != nil {
		slog.Error(err.Error())
		return 2
	}

	return 0
}
