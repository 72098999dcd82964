// Copyright 2025 Robert Bosch GmbH
//
// SPDX-License-Identifier: Apache-2.0

package e2e

// StateMachine evaluates a sliding window of profile check results.
type StateMachine struct {
	cfg    ProfileConfig
	state  SMState
	window []ProfileCheckStatus
	next   int
	filled int
}

func NewStateMachine(cfg ProfileConfig) *StateMachine {
	cfg = cfg.normalized()
	sm := &StateMachine{cfg: cfg, window: make([]ProfileCheckStatus, cfg.WindowSize)}
	sm.Reset()
	return sm
}

func (sm *StateMachine) Reset() {
	sm.state = StateNoData
	sm.next = 0
	sm.filled = 0
}

func (sm *StateMachine) State() SMState {
	return sm.state
}

func (sm *StateMachine) add(status ProfileCheckStatus) {
	sm.window[sm.next] = status
	sm.next = (sm.next + 1) % len(sm.window)
	if sm.filled < len(sm.window) {
		sm.filled++
	}
}

func (sm *StateMachine) counts() (ok uint32, errs uint32) {
	for i := range sm.filled {
		switch sm.window[i] {
		case CheckOk:
			ok++
		case CheckError:
			errs++
		}
	}
	return ok, errs
}

// Check feeds one profile check status and returns the resulting state.
func (sm *StateMachine) Check(status ProfileCheckStatus) SMState {
	switch sm.state {
	case StateNoData:
		if status != CheckError && status != CheckNoNewData {
			sm.state = StateInit
		}
	case StateInit:
		sm.add(status)
		ok, errs := sm.counts()
		if errs <= sm.cfg.MaxErrorStateInit && ok >= sm.cfg.MinOkStateInit {
			sm.state = StateValid
		} else if errs > sm.cfg.MaxErrorStateInit {
			sm.state = StateInvalid
		}
	case StateValid:
		sm.add(status)
		ok, errs := sm.counts()
		if !(errs <= sm.cfg.MaxErrorStateValid && ok >= sm.cfg.MinOkStateValid) {
			sm.state = StateInvalid
		}
	case StateInvalid:
		sm.add(status)
		ok, errs := sm.counts()
		if errs <= sm.cfg.MaxErrorStateInvalid && ok >= sm.cfg.MinOkStateInvalid {
			sm.state = StateValid
		}
	}
	return sm.state
}
