// Copyright 2025 Robert Bosch GmbH
//
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"flag"
	"fmt"
)

type CommandRunner interface {
	Name() string
	FlagSet() *flag.FlagSet
	Parse([]string) error
	Run() error
}

type Command struct {
	Name    string
	FlagSet *flag.FlagSet
}

// PrintUsage writes usage followed by the options of each command.
func PrintUsage(usage string, cmds []CommandRunner) {
	out := flag.CommandLine.Output()
	fmt.Fprint(out, usage)
	for _, cmd := range cmds {
		if cmd.Name() == "help" {
			continue
		}
		fmt.Fprintf(out, "%s:\n", cmd.Name())
		cmd.FlagSet().SetOutput(out)
		cmd.FlagSet().PrintDefaults()
	}
}

// DispatchCommand parses args with the named command and runs it.
func DispatchCommand(name string, args []string, cmds []CommandRunner) error {
	var cmd CommandRunner
	for _, c := range cmds {
		if c.Name() == name {
			cmd = c
			break
		}
	}
	if cmd == nil {
		return fmt.Errorf("unknown command: %s", name)
	}

	if err := cmd.Parse(args); err != nil {
		return err
	}
	return cmd.Run()
}

type HelpCommand struct {
	Command
}

func NewHelpCommand(name string) *HelpCommand {
	c := &HelpCommand{
		Command: Command{
			Name:    name,
			FlagSet: flag.NewFlagSet(name, flag.ContinueOnError),
		},
	}
	return c
}

func (c HelpCommand) Name() string {
	return c.Command.Name
}

func (c HelpCommand) FlagSet() *flag.FlagSet {
	return c.Command.FlagSet
}

func (c *HelpCommand) Parse(args []string) error {
	return c.FlagSet().Parse(args)
}

func (c *HelpCommand) Run() error {
	flag.Usage()
	return nil
}
