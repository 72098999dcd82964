// Copyright 2025 Robert Bosch GmbH
//
// SPDX-License-Identifier: Apache-2.0

package trace

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/boschglobal/dse.s2s/pkg/message"
)

const TraceEnvPrefix = "S2S_TRACE_PDU_"

type Trace interface {
	TraceRX(msg message.PduMessage)
	TraceTX(msg message.PduMessage)
}

// GetTraceEnv reads a trace filter from the environment. The value is either
// "*" (all PDUs) or a comma separated list of PDU ids.
func GetTraceEnv(envName string) (bool, map[uint32]bool) {
	envName = strings.ToUpper(envName)
	filter := os.Getenv(envName)
	if filter == "" {
		return false, nil
	}

	if filter == "*" {
		slog.Debug(fmt.Sprintf("    <wildcard> (all pdus)"))
		return true, nil
	}

	Filter := make(map[uint32]bool)
	ids := strings.Split(filter, ",")
	for _, idStr := range ids {
		id, err := strconv.ParseInt(strings.TrimSpace(idStr), 0, 64)
		if err == nil && id > 0 && id <= 0xffffffff {
			id32 := uint32(id)
			Filter[id32] = true
			slog.Debug(fmt.Sprintf("    %02x", id32))
		}
	}
	return false, Filter
}
