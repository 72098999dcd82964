// Copyright 2025 Robert Bosch GmbH
//
// SPDX-License-Identifier: Apache-2.0

package layout

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/boschglobal/dse.s2s/internal/app/command"
	"github.com/boschglobal/dse.s2s/pkg/byteorder"
	"github.com/boschglobal/dse.s2s/pkg/config"
	"github.com/boschglobal/dse.s2s/pkg/config/kind"
)

type LayoutCommand struct {
	command.Command

	Out   io.Writer
	pdu   string
	files []string
}

func NewLayoutCommand(name string) *LayoutCommand {
	c := &LayoutCommand{
		Command: command.Command{
			Name:    name,
			FlagSet: flag.NewFlagSet(name, flag.ContinueOnError),
		},
		Out: os.Stdout,
	}
	c.FlagSet().StringVar(&c.pdu, "pdu", "", "name of the PDU")
	return c
}

func (c LayoutCommand) Name() string {
	return c.Command.Name
}

func (c LayoutCommand) FlagSet() *flag.FlagSet {
	return c.Command.FlagSet
}

func (c *LayoutCommand) Parse(args []string) error {
	err := c.FlagSet().Parse(args)
	if err != nil {
		return err
	}
	if c.pdu == "" {
		return fmt.Errorf("pdu not specified")
	}
	if c.FlagSet().NArg() == 0 {
		return fmt.Errorf("configuration file not specified")
	}
	c.files = c.FlagSet().Args()
	return nil
}

// ByteMap describes which signal (or fill) owns each byte of a PDU, and which
// E2E ranges cover it.
type ByteMap struct {
	Owner []string
	E2E   [][]string
}

func NewByteMap(pdu config.IPdu, signals config.SignalTable) (*ByteMap, error) {
	m := &ByteMap{
		Owner: make([]string, pdu.Length),
		E2E:   make([][]string, pdu.Length),
	}
	for _, mapping := range pdu.Mappings {
		s, ok := signals[mapping.Signal]
		if !ok {
			return nil, fmt.Errorf("signal %q not defined", mapping.Signal)
		}
		for _, i := range byteorder.FieldBytes(byteorder.PositionOf(mapping.StartPosition), s.Length, mapping.ByteOrder) {
			if i >= len(m.Owner) {
				return nil, fmt.Errorf("signal %q exceeds pdu %q", s.Name, pdu.Name)
			}
			if m.Owner[i] != "" {
				m.Owner[i] += "|"
			}
			m.Owner[i] += s.Name
		}
	}
	for _, e := range pdu.E2EConfigs {
		for i := e.StartPosition; i < e.StartPosition+e.Length && i < pdu.Length; i++ {
			m.E2E[i] = append(m.E2E[i], fmt.Sprintf("%s(%s)", e.SignalGroup, e.Profile.Profile))
		}
	}
	return m, nil
}

func (m *ByteMap) Write(w io.Writer) {
	for i, owner := range m.Owner {
		if owner == "" {
			owner = "fill"
		}
		line := fmt.Sprintf("%3d  %-20s", i, owner)
		if len(m.E2E[i]) > 0 {
			line += " e2e:" + strings.Join(m.E2E[i], ",")
		}
		fmt.Fprintln(w, strings.TrimRight(line, " "))
	}
}

func (c *LayoutCommand) Run() error {
	tables, err := kind.Load(c.files...)
	if err != nil {
		return err
	}
	pdu, ok := tables.Pdus.Get(c.pdu)
	if !ok {
		return fmt.Errorf("pdu %q not found", c.pdu)
	}
	m, err := NewByteMap(pdu, tables.Signals)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.Out, "%s id=0x%x length=%d fill=0x%02x\n", pdu.Name, pdu.Id, pdu.Length, pdu.UnusedBitPattern)
	m.Write(c.Out)
	return nil
}
