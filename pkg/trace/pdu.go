// Copyright 2025 Robert Bosch GmbH
//
// SPDX-License-Identifier: Apache-2.0

package trace

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/boschglobal/dse.s2s/pkg/message"
)

type PduTraceData struct {
	Name       string
	Identifier string
	Wildcard   bool
	Filter     map[uint32]bool
	Out        io.Writer
}

// NewPduTrace returns a trace for the named PDU when the environment variable
// S2S_TRACE_PDU_<NAME> is set, otherwise nil.
func NewPduTrace(name string, identifier string) *PduTraceData {
	env := TraceEnvPrefix + strings.ReplaceAll(name, "-", "_")
	slog.Debug(fmt.Sprintf("Trace env: %s", strings.ToUpper(env)))
	wildcard, filter := GetTraceEnv(env)
	if !wildcard && len(filter) == 0 {
		return nil
	}
	return &PduTraceData{
		Name:       name,
		Identifier: identifier,
		Wildcard:   wildcard,
		Filter:     filter,
		Out:        os.Stdout,
	}
}

func (t *PduTraceData) TraceRX(msg message.PduMessage) {
	t.tracePdu("RX", msg)
}

func (t *PduTraceData) TraceTX(msg message.PduMessage) {
	t.tracePdu("TX", msg)
}

func (t *PduTraceData) tracePdu(direction string, pdu message.PduMessage) {
	if !t.Wildcard {
		if !t.Filter[pdu.Id] {
			return
		}
	}
	_len := len(pdu.Payload)
	var b strings.Builder
	if _len <= 16 {
		for _, byte := range pdu.Payload {
			fmt.Fprintf(&b, "%02x ", byte)
		}
	} else {
		for i, byte := range pdu.Payload {
			if i%32 == 0 {
				b.WriteString(" ")
			}
			if i%8 == 0 {
				b.WriteString(" ")
			}
			fmt.Fprintf(&b, "%02x ", byte)
		}
	}

	identifier := t.Identifier
	if direction == "RX" {
		identifier = fmt.Sprintf("%d:%d", pdu.Swc_id, pdu.Ecu_id)
	}
	fmt.Fprintf(t.Out, "(%s) [%s] %s %02x %d :%s\n", t.Name, identifier, direction, pdu.Id, _len,
		strings.TrimRight(b.String(), " "))
}
