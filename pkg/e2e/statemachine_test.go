// Copyright 2025 Robert Bosch GmbH
//
// SPDX-License-Identifier: Apache-2.0

package e2e

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStateMachine(t *testing.T) {
	cfg := ProfileConfig{
		WindowSize:           3,
		MinOkStateInit:       2,
		MaxErrorStateInit:    1,
		MinOkStateValid:      1,
		MaxErrorStateValid:   1,
		MinOkStateInvalid:    3,
		MaxErrorStateInvalid: 0,
	}
	tests := []struct {
		name   string
		inputs []ProfileCheckStatus
		want   []SMState
	}{
		{
			name:   "no data stays",
			inputs: []ProfileCheckStatus{CheckNoNewData, CheckError},
			want:   []SMState{StateNoData, StateNoData},
		},
		{
			name:   "init to valid",
			inputs: []ProfileCheckStatus{CheckOk, CheckOk, CheckOk},
			want:   []SMState{StateInit, StateInit, StateValid},
		},
		{
			name:   "init to invalid",
			inputs: []ProfileCheckStatus{CheckRepeated, CheckError, CheckError},
			want:   []SMState{StateInit, StateInit, StateInvalid},
		},
		{
			name: "valid to invalid and back",
			inputs: []ProfileCheckStatus{
				CheckOk, CheckOk, CheckOk, // NODATA -> INIT -> INIT -> VALID
				CheckError, CheckError, // VALID then INVALID
				CheckOk, CheckOk, CheckOk,
			},
			want: []SMState{
				StateInit, StateInit, StateValid,
				StateValid, StateInvalid,
				StateInvalid, StateInvalid, StateValid,
			},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			sm := NewStateMachine(cfg)
			assert.Equal(t, StateNoData, sm.State())
			for i, s := range tc.inputs {
				assert.Equal(t, tc.want[i], sm.Check(s), "step %d", i)
			}
			sm.Reset()
			assert.Equal(t, StateNoData, sm.State())
		})
	}
}
