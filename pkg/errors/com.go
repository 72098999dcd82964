// Copyright 2025 Robert Bosch GmbH
//
// SPDX-License-Identifier: Apache-2.0

package errors

import "fmt"

// ComErrc is the error code reported by publishers and subscribers.
type ComErrc int

const (
	ComErrcCommunicationStackError ComErrc = iota + 1
	ComErrcMaxSamplesReached
	ComErrcSampleAllocationFailure
	ComErrcMaxSampleSizeExceeded
	ComErrcCommunicationLinkError
)

func (c ComErrc) String() string {
	switch c {
	case ComErrcCommunicationStackError:
		return "communication stack error"
	case ComErrcMaxSamplesReached:
		return "max samples reached"
	case ComErrcSampleAllocationFailure:
		return "sample allocation failure"
	case ComErrcMaxSampleSizeExceeded:
		return "max sample size exceeded"
	case ComErrcCommunicationLinkError:
		return "communication link error"
	}
	return fmt.Sprintf("ComErrc(%d)", int(c))
}

// Sentinels for errors.Is comparisons, matched by code only.
var (
	ErrCommunicationStack    = &ComError{code: ComErrcCommunicationStackError}
	ErrMaxSamplesReached     = &ComError{code: ComErrcMaxSamplesReached}
	ErrSampleAllocation      = &ComError{code: ComErrcSampleAllocationFailure}
	ErrMaxSampleSizeExceeded = &ComError{code: ComErrcMaxSampleSizeExceeded}
	ErrCommunicationLink     = &ComError{code: ComErrcCommunicationLinkError}
)

type ComError struct {
	code ComErrc
	msg  string
	err  error
}

func NewComError(code ComErrc, e error, msg string) *ComError {
	return &ComError{code: code, msg: msg, err: e}
}

func (e *ComError) Code() ComErrc {
	return e.code
}

func (e *ComError) Error() string {
	if e.err != nil {
		return fmt.Sprintf("com: %s: %q - %v", e.code, e.msg, e.err)
	} else {
		return fmt.Sprintf("com: %s: %q", e.code, e.msg)
	}
}

func (e *ComError) Unwrap() error {
	return e.err
}

func (e *ComError) Is(target error) bool {
	t, ok := target.(*ComError)
	if !ok {
		return false
	}
	return t.code == e.code
}
