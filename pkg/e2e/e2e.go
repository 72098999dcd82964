// Copyright 2025 Robert Bosch GmbH
//
// SPDX-License-Identifier: Apache-2.0

package e2e

import (
	"fmt"
	"strings"

	"github.com/boschglobal/dse.s2s/pkg/errors"
)

type ProtectStatus int

const (
	ProtectOk ProtectStatus = iota
	ProtectDisabled
	ProtectInputError
	ProtectError
)

func (s ProtectStatus) String() string {
	switch s {
	case ProtectOk:
		return "OK"
	case ProtectDisabled:
		return "DISABLED"
	case ProtectInputError:
		return "INPUTERROR"
	case ProtectError:
		return "ERROR"
	}
	return fmt.Sprintf("ProtectStatus(%d)", int(s))
}

// ProfileCheckStatus is the result of checking a single received range.
type ProfileCheckStatus int

const (
	CheckOk ProfileCheckStatus = iota
	CheckRepeated
	CheckWrongSequence
	CheckError
	CheckNotAvailable
	CheckNoNewData
	CheckDisabled
)

func (s ProfileCheckStatus) String() string {
	switch s {
	case CheckOk:
		return "P_OK"
	case CheckRepeated:
		return "P_REPEATED"
	case CheckWrongSequence:
		return "P_WRONGSEQUENCE"
	case CheckError:
		return "P_ERROR"
	case CheckNotAvailable:
		return "P_NOTAVAILABLE"
	case CheckNoNewData:
		return "P_NONEWDATA"
	case CheckDisabled:
		return "P_CHECKDISABLED"
	}
	return fmt.Sprintf("ProfileCheckStatus(%d)", int(s))
}

type SMState int

const (
	StateValid SMState = iota
	StateNoData
	StateInit
	StateInvalid
	StateDeinit
	StateMDisabled
)

func (s SMState) String() string {
	switch s {
	case StateValid:
		return "VALID"
	case StateNoData:
		return "NODATA"
	case StateInit:
		return "INIT"
	case StateInvalid:
		return "INVALID"
	case StateDeinit:
		return "DEINIT"
	case StateMDisabled:
		return "STATEMDISABLED"
	}
	return fmt.Sprintf("SMState(%d)", int(s))
}

type CheckResult struct {
	Status ProfileCheckStatus
	State  SMState
}

// Protector stamps the E2E header of a byte range in place.
type Protector interface {
	Protect(data []byte) ProtectStatus
}

// Checker verifies a received byte range. A nil range indicates that no new
// data was received.
type Checker interface {
	Check(data []byte) CheckResult
}

type Profile string

const (
	Profile04 Profile = "PROFILE_04"
	Profile11 Profile = "PROFILE_11"
)

func ParseProfile(s string) (Profile, error) {
	switch strings.ToUpper(strings.ReplaceAll(s, "-", "_")) {
	case "PROFILE_04", "PROFILE_4", "P04", "4":
		return Profile04, nil
	case "PROFILE_11", "P11", "11":
		return Profile11, nil
	}
	return "", errors.ErrE2EUnknownProfile(s)
}

type ProfileBehavior int

const (
	BehaviorR4_2 ProfileBehavior = iota
	BehaviorPreR4_2
)

type DataIDMode int

const (
	DataIDModeBoth DataIDMode = iota
	DataIDModeNibble
)

type ProfileConfig struct {
	Profile    Profile
	Behavior   ProfileBehavior
	DataID     uint32
	DataIDMode DataIDMode
	// Offset of the E2E header within the protected range, in bytes.
	Offset          uint32
	MaxDeltaCounter uint32
	Disabled        bool

	WindowSize           uint32
	MinOkStateInit       uint32
	MaxErrorStateInit    uint32
	MinOkStateValid      uint32
	MaxErrorStateValid   uint32
	MinOkStateInvalid    uint32
	MaxErrorStateInvalid uint32
}

func (c ProfileConfig) normalized() ProfileConfig {
	if c.MaxDeltaCounter == 0 {
		c.MaxDeltaCounter = 1
	}
	if c.WindowSize == 0 {
		c.WindowSize = 1
	}
	return c
}

func NewProtector(cfg ProfileConfig) (Protector, error) {
	if cfg.Disabled {
		return disabled{}, nil
	}
	cfg = cfg.normalized()
	switch cfg.Profile {
	case Profile04:
		return newProfile04(cfg), nil
	case Profile11:
		if err := validateProfile11(cfg); err != nil {
			return nil, err
		}
		return newProfile11(cfg), nil
	}
	return nil, errors.ErrE2EUnknownProfile(string(cfg.Profile))
}

func NewChecker(cfg ProfileConfig) (Checker, error) {
	if cfg.Disabled {
		return disabled{}, nil
	}
	cfg = cfg.normalized()
	switch cfg.Profile {
	case Profile04:
		return newProfile04(cfg), nil
	case Profile11:
		if err := validateProfile11(cfg); err != nil {
			return nil, err
		}
		return newProfile11(cfg), nil
	}
	return nil, errors.ErrE2EUnknownProfile(string(cfg.Profile))
}

type disabled struct{}

func (disabled) Protect([]byte) ProtectStatus {
	return ProtectDisabled
}

func (disabled) Check([]byte) CheckResult {
	return CheckResult{Status: CheckDisabled, State: StateMDisabled}
}

//go:generate mockgen -destination=mock_e2e/e2e.go -package=mock_e2e github.com/boschglobal/dse.s2s/pkg/e2e Checker,Protector
