// Copyright 2025 Robert Bosch GmbH
//
// SPDX-License-Identifier: Apache-2.0

package errors

import (
	goerrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComError_Is(t *testing.T) {
	cause := NewTransportError(ErrTransportFull, "send failed")
	err := NewComError(ComErrcCommunicationLinkError, cause, "publisher send")

	assert.True(t, goerrors.Is(err, ErrCommunicationLink))
	assert.False(t, goerrors.Is(err, ErrCommunicationStack))
	assert.True(t, goerrors.Is(err, ErrTransportFull))

	var te *TransportError
	assert.True(t, goerrors.As(err, &te))
	assert.Equal(t, ComErrcCommunicationLinkError, err.Code())
}

func TestComError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "no cause",
			err:  NewComError(ComErrcMaxSamplesReached, nil, "subscriber"),
			want: `com: max samples reached: "subscriber"`,
		},
		{
			name: "with cause",
			err:  NewComError(ComErrcCommunicationStackError, ErrConfigurationInvalid, "send"),
			want: `com: communication stack error: "send" - configuration invalid`,
		},
		{
			name: "config error",
			err:  ErrConfigDuplicateSignal("foo"),
			want: `config: "duplicate signal: \"foo\""`,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.err.Error())
		})
	}
}
