// Copyright 2025 Robert Bosch GmbH
//
// SPDX-License-Identifier: Apache-2.0

package validate

import (
	"cmp"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"os"
	"slices"

	"github.com/boschglobal/dse.s2s/internal/app/command"
	"github.com/boschglobal/dse.s2s/pkg/config"
	"github.com/boschglobal/dse.s2s/pkg/config/kind"
)

type ValidateCommand struct {
	command.Command

	Out   io.Writer
	files []string
}

func NewValidateCommand(name string) *ValidateCommand {
	c := &ValidateCommand{
		Command: command.Command{
			Name:    name,
			FlagSet: flag.NewFlagSet(name, flag.ContinueOnError),
		},
		Out: os.Stdout,
	}
	return c
}

func (c ValidateCommand) Name() string {
	return c.Command.Name
}

func (c ValidateCommand) FlagSet() *flag.FlagSet {
	return c.Command.FlagSet
}

func (c *ValidateCommand) Parse(args []string) error {
	err := c.FlagSet().Parse(args)
	if err != nil {
		return err
	}
	if c.FlagSet().NArg() == 0 {
		return fmt.Errorf("configuration file not specified")
	}
	c.files = c.FlagSet().Args()
	return nil
}

// SortedEvents returns the configured events ordered by service, instance
// and event id.
func SortedEvents(t *config.Tables) []config.EventKey {
	return slices.SortedFunc(maps.Keys(t.ServiceInstances), func(a, b config.EventKey) int {
		return cmp.Or(
			cmp.Compare(a.ServiceId, b.ServiceId),
			cmp.Compare(a.InstanceId, b.InstanceId),
			cmp.Compare(a.EventId, b.EventId),
		)
	})
}

func (c *ValidateCommand) Run() error {
	tables, err := kind.Load(c.files...)
	if err != nil {
		return err
	}

	invalid := 0
	for _, key := range SortedEvents(tables) {
		cfg, err := tables.EventConfig(key)
		if err != nil {
			invalid++
			fmt.Fprintf(c.Out, "%s INVALID %v\n", key, err)
			continue
		}
		fmt.Fprintf(c.Out, "%s OK pdu=%s length=%d signals=%d e2e=%d\n",
			key, cfg.PduName, cfg.PduLength, len(cfg.Signals), len(cfg.E2E))
	}
	slog.Debug(fmt.Sprintf("Validated %d events, %d invalid", len(tables.ServiceInstances), invalid))
	if invalid > 0 {
		return fmt.Errorf("%d of %d events invalid", invalid, len(tables.ServiceInstances))
	}
	return nil
}
