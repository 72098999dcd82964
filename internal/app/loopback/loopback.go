// Copyright 2025 Robert Bosch GmbH
//
// SPDX-License-Identifier: Apache-2.0

package loopback

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/boschglobal/dse.s2s/internal/app/command"
	"github.com/boschglobal/dse.s2s/pkg/config"
	"github.com/boschglobal/dse.s2s/pkg/config/kind"
	"github.com/boschglobal/dse.s2s/pkg/metrics"
	"github.com/boschglobal/dse.s2s/pkg/s2s"
	"github.com/boschglobal/dse.s2s/pkg/trace"
	"github.com/boschglobal/dse.s2s/pkg/transport"
	"github.com/prometheus/client_golang/prometheus"
)

const RedisUrlEnv = "S2S_REDIS_URL"

type LoopbackCommand struct {
	command.Command

	Out       io.Writer
	event     string
	count     int
	transport string
	uri       string
	metrics   bool
	files     []string
}

func NewLoopbackCommand(name string) *LoopbackCommand {
	c := &LoopbackCommand{
		Command: command.Command{
			Name:    name,
			FlagSet: flag.NewFlagSet(name, flag.ContinueOnError),
		},
		Out: os.Stdout,
	}
	c.FlagSet().StringVar(&c.event, "event", "", "event key (service:instance:event)")
	c.FlagSet().IntVar(&c.count, "count", 3, "number of samples to send")
	c.FlagSet().StringVar(&c.transport, "transport", "stub", "transport (stub, stream or redis)")
	c.FlagSet().StringVar(&c.uri, "uri", "", "redis url (default from "+RedisUrlEnv+")")
	c.FlagSet().BoolVar(&c.metrics, "metrics", false, "print metrics after the run")
	return c
}

func (c LoopbackCommand) Name() string {
	return c.Command.Name
}

func (c LoopbackCommand) FlagSet() *flag.FlagSet {
	return c.Command.FlagSet
}

func (c *LoopbackCommand) Parse(args []string) error {
	err := c.FlagSet().Parse(args)
	if err != nil {
		return err
	}
	if c.event == "" {
		return fmt.Errorf("event not specified")
	}
	if c.FlagSet().NArg() == 0 {
		return fmt.Errorf("configuration file not specified")
	}
	if c.uri == "" {
		c.uri = os.Getenv(RedisUrlEnv)
	}
	c.files = c.FlagSet().Args()
	return nil
}

// ParseEventKey parses "service:instance:event", each part decimal or
// prefixed hex.
func ParseEventKey(s string) (config.EventKey, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 3 {
		return config.EventKey{}, fmt.Errorf("malformed event key: %q", s)
	}
	var ids [3]uint16
	for i, p := range parts {
		v, err := strconv.ParseUint(strings.TrimSpace(p), 0, 16)
		if err != nil {
			return config.EventKey{}, fmt.Errorf("malformed event key: %q (%v)", s, err)
		}
		ids[i] = uint16(v)
	}
	return config.EventKey{ServiceId: ids[0], InstanceId: ids[1], EventId: ids[2]}, nil
}

// Endpoints holds the transports of the publishing and subscribing side.
type Endpoints struct {
	Tx    transport.Transport
	Rx    transport.Transport
	close func()
}

func (e *Endpoints) Close() {
	if e.close != nil {
		e.close()
	}
}

func (c *LoopbackCommand) endpoints(ctx context.Context, cfg config.S2SEventConfig) (*Endpoints, error) {
	switch c.transport {
	case "stub":
		stub := &transport.StubTransport{SendToStack: true}
		return &Endpoints{Tx: stub, Rx: stub}, nil
	case "stream":
		buf := []byte{}
		tx, err := transport.NewStreamTransport(&buf, cfg.PduId, 1, 0)
		if err != nil {
			return nil, err
		}
		rx, err := transport.NewStreamTransport(&buf, cfg.PduId, 2, 0)
		if err != nil {
			return nil, err
		}
		return &Endpoints{Tx: tx, Rx: rx}, nil
	case "redis":
		if c.uri == "" {
			return nil, fmt.Errorf("redis url not specified (use -uri or %s)", RedisUrlEnv)
		}
		r := &transport.RedisTransport{Url: c.uri, Channel: cfg.PduName}
		if err := r.Connect(ctx); err != nil {
			return nil, err
		}
		return &Endpoints{Tx: r, Rx: r, close: r.Disconnect}, nil
	}
	return nil, fmt.Errorf("unknown transport: %s", c.transport)
}

// GenerateSample sets every signal to the sample index, truncated to the
// signal length.
func GenerateSample(cfg config.S2SEventConfig, index int) s2s.Values {
	v := s2s.Values{}
	for _, s := range cfg.Signals {
		mask := ^uint64(0)
		if s.Length < 64 {
			mask = uint64(1)<<s.Length - 1
		}
		v[s.Name] = uint64(index) & mask
	}
	return v
}

func formatValues(v s2s.Values) string {
	names := slices.Sorted(maps.Keys(v))
	parts := make([]string, 0, len(names))
	for _, n := range names {
		parts = append(parts, fmt.Sprintf("%s=%d", n, v[n]))
	}
	return strings.Join(parts, " ")
}

func (c *LoopbackCommand) Run() error {
	key, err := ParseEventKey(c.event)
	if err != nil {
		return err
	}
	tables, err := kind.Load(c.files...)
	if err != nil {
		return err
	}
	cfg, err := tables.EventConfig(key)
	if err != nil {
		return err
	}

	ep, err := c.endpoints(context.Background(), cfg)
	if err != nil {
		return err
	}
	defer ep.Close()

	reg := prometheus.NewRegistry()
	opts := []s2s.Option{s2s.WithMetrics(metrics.NewMetrics(reg))}
	if t := trace.NewPduTrace(cfg.PduName, c.Name()); t != nil {
		t.Out = c.Out
		opts = append(opts, s2s.WithTrace(t))
	}
	pub, err := s2s.NewPublisher[s2s.Values](cfg, ep.Tx, s2s.ValuesCodec{}, opts...)
	if err != nil {
		return err
	}
	sub, err := s2s.NewSubscriber[s2s.Values](cfg, ep.Rx, s2s.ValuesCodec{}, opts...)
	if err != nil {
		return err
	}

	slog.Info(fmt.Sprintf("Loopback: event=%s pdu=%s transport=%s count=%d", key, cfg.PduName, c.transport, c.count))
	for i := range c.count {
		if err := pub.Send(GenerateSample(cfg, i)); err != nil {
			return err
		}
		_, err := sub.GetNewSamples(func(s *s2s.SamplePtr[s2s.Values]) {
			defer s.Release()
			fmt.Fprintf(c.Out, "[%d] %s %s %s\n", i, s.ProfileCheckStatus, s.SMState, formatValues(s.Value))
		}, 1)
		if err != nil {
			return err
		}
	}

	if c.metrics {
		return writeMetrics(c.Out, reg)
	}
	return nil
}

func writeMetrics(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return err
	}
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			labels := []string{}
			for _, l := range m.GetLabel() {
				labels = append(labels, fmt.Sprintf("%s=%q", l.GetName(), l.GetValue()))
			}
			fmt.Fprintf(w, "%s{%s} %g\n", mf.GetName(), strings.Join(labels, ","), m.GetCounter().GetValue())
		}
	}
	return nil
}
