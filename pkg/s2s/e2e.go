// Copyright 2025 Robert Bosch GmbH
//
// SPDX-License-Identifier: Apache-2.0

package s2s

import (
	"fmt"
	"log/slog"

	"github.com/boschglobal/dse.s2s/pkg/config"
	"github.com/boschglobal/dse.s2s/pkg/e2e"
	"github.com/boschglobal/dse.s2s/pkg/errors"
)

// E2EProtectorConfig binds a protector to a byte range of the PDU.
type E2EProtectorConfig struct {
	StartPosition uint32
	Length        uint32
	Protector     e2e.Protector
}

// E2ECheckerConfig binds a checker to a byte range of the PDU.
type E2ECheckerConfig struct {
	StartPosition uint32
	Length        uint32
	Checker       e2e.Checker
}

// NewE2EProtectorConfigs creates one protector per E2E range of the event,
// in declaration order.
func NewE2EProtectorConfigs(cfg config.S2SEventConfig) ([]E2EProtectorConfig, error) {
	list := make([]E2EProtectorConfig, 0, len(cfg.E2E))
	for _, e := range cfg.E2E {
		p, err := e2e.NewProtector(e.Profile)
		if err != nil {
			return nil, err
		}
		list = append(list, E2EProtectorConfig{StartPosition: e.StartPosition, Length: e.Length, Protector: p})
	}
	return list, nil
}

// NewE2ECheckerConfigs creates one checker per E2E range of the event, in
// declaration order.
func NewE2ECheckerConfigs(cfg config.S2SEventConfig) ([]E2ECheckerConfig, error) {
	list := make([]E2ECheckerConfig, 0, len(cfg.E2E))
	for _, e := range cfg.E2E {
		c, err := e2e.NewChecker(e.Profile)
		if err != nil {
			return nil, err
		}
		list = append(list, E2ECheckerConfig{StartPosition: e.StartPosition, Length: e.Length, Checker: c})
	}
	return list, nil
}

func inRange(pdu []byte, start uint32, length uint32) bool {
	return uint64(start)+uint64(length) <= uint64(len(pdu))
}

// protectAll stamps every range. The first failing protector aborts.
func protectAll(pdu []byte, protectors []E2EProtectorConfig) error {
	for _, p := range protectors {
		if !inRange(pdu, p.StartPosition, p.Length) {
			return errors.ErrE2ERange(p.StartPosition, p.Length, len(pdu))
		}
		status := p.Protector.Protect(pdu[p.StartPosition : p.StartPosition+p.Length])
		if status != e2e.ProtectOk && status != e2e.ProtectDisabled {
			return errors.ErrE2EProtect(status, p.StartPosition, p.Length)
		}
	}
	return nil
}

// checkAll checks every range and returns the result of the first range with
// a status other than OK. When all ranges are OK the state of the first range
// not in VALID is reported.
func checkAll(pdu []byte, checkers []E2ECheckerConfig) (e2e.CheckResult, []e2e.CheckResult) {
	if len(checkers) == 0 {
		return e2e.CheckResult{Status: e2e.CheckDisabled, State: e2e.StateMDisabled}, nil
	}
	results := make([]e2e.CheckResult, 0, len(checkers))
	for _, c := range checkers {
		var r e2e.CheckResult
		if inRange(pdu, c.StartPosition, c.Length) {
			r = c.Checker.Check(pdu[c.StartPosition : c.StartPosition+c.Length])
		} else {
			r = e2e.CheckResult{Status: e2e.CheckError, State: e2e.StateInvalid}
		}
		results = append(results, r)
	}

	result := e2e.CheckResult{Status: e2e.CheckOk, State: e2e.StateValid}
	for _, r := range results {
		if r.Status != e2e.CheckOk && r.Status != e2e.CheckDisabled {
			return r, results
		}
	}
	for _, r := range results {
		if r.State != e2e.StateValid && r.State != e2e.StateMDisabled {
			result.State = r.State
			break
		}
	}
	return result, results
}

// checkNoData informs every checker that no new data was received.
func checkNoData(checkers []E2ECheckerConfig) {
	for i, c := range checkers {
		r := c.Checker.Check(nil)
		slog.Debug(fmt.Sprintf("E2E no data: range=%d status=%s state=%s", i, r.Status, r.State))
	}
}
