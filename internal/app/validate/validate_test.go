// Copyright 2025 Robert Bosch GmbH
//
// SPDX-License-Identifier: Apache-2.0

package validate

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testYaml = "../../../pkg/config/kind/testdata/s2s.yaml"

func TestValidateCommand(t *testing.T) {
	var out bytes.Buffer
	c := NewValidateCommand("validate")
	c.Out = &out

	require.NoError(t, c.Parse([]string{testYaml}))
	err := c.Run()
	assert.EqualError(t, err, "1 of 3 events invalid")

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "1234:0001:8001 OK pdu=DrivePdu length=8 signals=2 e2e=1", lines[0])
	assert.Equal(t, "1234:0001:8002 OK pdu=BodyPdu length=24 signals=2 e2e=1", lines[1])
	assert.True(t, strings.HasPrefix(lines[2], "1234:0001:8003 INVALID "), lines[2])
}

func TestValidateCommand_NoFile(t *testing.T) {
	c := NewValidateCommand("validate")
	assert.EqualError(t, c.Parse(nil), "configuration file not specified")
}
