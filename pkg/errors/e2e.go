// Copyright 2025 Robert Bosch GmbH
//
// SPDX-License-Identifier: Apache-2.0

package errors

import "fmt"

var (
	ErrE2EUnknownProfile = func(profile string) error {
		return NewE2EError(nil, fmt.Sprintf("unsupported profile: %q", profile))
	}
	ErrE2EProfileConfig = func(m string) error { return NewE2EError(nil, m) }
	ErrE2EProtect       = func(status fmt.Stringer, start uint32, length uint32) error {
		return NewE2EError(nil, fmt.Sprintf("protect failed (%s) on range [%d,%d)", status, start, start+length))
	}
	ErrE2ERange = func(start uint32, length uint32, pduLength int) error {
		return NewE2EError(nil, fmt.Sprintf("range [%d,%d) outside pdu of length %d", start, start+length, pduLength))
	}
)

type E2EError struct {
	msg string
	err error
}

func NewE2EError(e error, msg string) *E2EError {
	return &E2EError{msg: msg, err: e}
}

func (e *E2EError) Error() string {
	if e.err != nil {
		return fmt.Sprintf("e2e: %q - %v", e.msg, e.err)
	} else {
		return fmt.Sprintf("e2e: %q", e.msg)
	}
}

func (e *E2EError) Unwrap() error {
	return e.err
}
