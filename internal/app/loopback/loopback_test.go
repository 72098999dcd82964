// Copyright 2025 Robert Bosch GmbH
//
// SPDX-License-Identifier: Apache-2.0

package loopback

import (
	"bytes"
	"strings"
	"testing"

	"github.com/boschglobal/dse.s2s/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testYaml = "../../../pkg/config/kind/testdata/s2s.yaml"

func TestParseEventKey(t *testing.T) {
	key, err := ParseEventKey("0x1234:1:0x8001")
	require.NoError(t, err)
	assert.Equal(t, config.EventKey{ServiceId: 0x1234, InstanceId: 1, EventId: 0x8001}, key)

	_, err = ParseEventKey("1:2")
	assert.EqualError(t, err, `malformed event key: "1:2"`)
	_, err = ParseEventKey("1:2:0x10000")
	assert.Error(t, err)
}

func TestGenerateSample(t *testing.T) {
	cfg := config.S2SEventConfig{Signals: []config.S2SSignalConfig{
		{Name: "a", Length: 4},
		{Name: "b", Length: 64},
	}}
	v := GenerateSample(cfg, 17)
	assert.Equal(t, uint64(1), v["a"])
	assert.Equal(t, uint64(17), v["b"])
}

func runLoopback(t *testing.T, args ...string) (string, error) {
	var out bytes.Buffer
	c := NewLoopbackCommand("loopback")
	c.Out = &out
	require.NoError(t, c.Parse(append(args, testYaml)))
	err := c.Run()
	return out.String(), err
}

func TestLoopbackCommand(t *testing.T) {
	for _, tr := range []string{"stub", "stream"} {
		t.Run(tr, func(t *testing.T) {
			out, err := runLoopback(t, "-event", "0x1234:1:0x8001", "-count", "3", "-transport", tr)
			require.NoError(t, err)
			lines := strings.Split(strings.TrimSpace(out), "\n")
			assert.Equal(t, []string{
				"[0] P_OK INIT Gear=0 VehicleSpeed=0",
				"[1] P_OK VALID Gear=1 VehicleSpeed=1",
				"[2] P_OK VALID Gear=2 VehicleSpeed=2",
			}, lines)
		})
	}
}

func TestLoopbackCommand_Profile04(t *testing.T) {
	out, err := runLoopback(t, "-event", "0x1234:1:0x8002", "-count", "2", "-metrics")
	require.NoError(t, err)
	assert.Contains(t, out, "[1] P_OK VALID Temperature=1 Vin=1\n")
	assert.Contains(t, out, `s2s_samples_sent_total{pdu="BodyPdu"} 2`)
	assert.Contains(t, out, `s2s_e2e_checks_total{pdu="BodyPdu",status="P_OK"} 2`)
}

func TestLoopbackCommand_Trace(t *testing.T) {
	t.Setenv("S2S_TRACE_PDU_DRIVEPDU", "*")
	out, err := runLoopback(t, "-event", "0x1234:1:0x8001", "-count", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "(DrivePdu) [loopback] TX 101 8 :")
	assert.Contains(t, out, "(DrivePdu) [0:0] RX 101 8 :")
}

func TestLoopbackCommand_Errors(t *testing.T) {
	_, err := runLoopback(t, "-event", "0x1234:1:0x8003")
	assert.Error(t, err)

	_, err = runLoopback(t, "-event", "0x1234:1:0x8001", "-transport", "can")
	assert.EqualError(t, err, "unknown transport: can")

	t.Setenv(RedisUrlEnv, "")
	_, err = runLoopback(t, "-event", "0x1234:1:0x8001", "-transport", "redis")
	assert.EqualError(t, err, "redis url not specified (use -uri or S2S_REDIS_URL)")

	c := NewLoopbackCommand("loopback")
	assert.EqualError(t, c.Parse([]string{testYaml}), "event not specified")
}
