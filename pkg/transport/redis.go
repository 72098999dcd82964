// Copyright 2025 Robert Bosch GmbH
//
// SPDX-License-Identifier: Apache-2.0

package transport

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"

	"github.com/boschglobal/dse.s2s/pkg/errors"
	red "github.com/redis/go-redis/v9"
	"github.com/vmihailenco/msgpack/v5"
)

const redisIndicator = "S2S"

// RedisTransport exchanges PDUs through a Redis list. Senders LPUSH and
// receivers RPOP, so each PDU is received once.
type RedisTransport struct {
	Url     string
	Channel string
	MaxSize int

	key     string
	ctx     context.Context
	client  *red.Client
	version string
}

func (r *RedisTransport) Connect(ctx context.Context) error {
	slog.Info(fmt.Sprintf("Redis: Connect: %s", r.Url))
	if r.Channel == "" {
		return errors.ErrTransportConnect(fmt.Errorf("channel not configured"))
	}
	r.key = fmt.Sprintf("dse.s2s.%s", r.Channel)
	slog.Debug(fmt.Sprintf("Redis: KEY: %s", r.key))

	r.ctx = ctx
	opt, err := red.ParseURL(r.Url)
	if err != nil {
		return errors.ErrTransportConnect(err)
	}
	r.client = red.NewClient(opt)

	c := r.client.InfoMap(r.ctx, "server")
	if c.Err() != nil {
		r.client.Close()
		r.client = nil
		return errors.ErrTransportConnect(c.Err())
	}
	r.version = c.Item("Server", "redis_version")
	slog.Info(fmt.Sprintf("Redis: Version: %s", r.version))
	return nil
}

func (r *RedisTransport) Disconnect() {
	slog.Info(fmt.Sprintf("Redis: Disconnect:"))
	if r.client != nil {
		r.client.Close()
		r.client = nil
	}
}

func (r *RedisTransport) MaxSampleSize() int {
	if r.MaxSize == 0 {
		return DefaultMaxSampleSize
	}
	return r.MaxSize
}

func (r *RedisTransport) Allocate(size int) ([]byte, error) {
	if r.client == nil {
		return nil, errors.ErrNotConnected
	}
	return make([]byte, size), nil
}

func encodeEnvelope(channel string, msg []byte) []byte {
	buf := new(bytes.Buffer)
	enc := msgpack.NewEncoder(buf)
	enc.EncodeString(redisIndicator)
	enc.EncodeString(channel)
	enc.EncodeBytes(msg)
	return buf.Bytes()
}

func decodeEnvelope(buf []byte) (channel string, msg []byte, err error) {
	dec := msgpack.NewDecoder(bytes.NewReader(buf))
	indicator, err := dec.DecodeString()
	if err != nil {
		return "", nil, err
	}
	if indicator != redisIndicator {
		return "", nil, errors.ErrTransportDecode(fmt.Sprintf("unexpected message indicator: %q", indicator))
	}
	if channel, err = dec.DecodeString(); err != nil {
		return "", nil, err
	}
	msg, err = dec.DecodeBytes()
	return channel, msg, err
}

func (r *RedisTransport) Send(buf []byte) error {
	if r.client == nil {
		return errors.ErrNotConnected
	}
	d := encodeEnvelope(r.Channel, buf)
	slog.Debug(fmt.Sprintf("Redis: LPUSH -> %s (%d bytes)", r.key, len(d)))
	if err := r.client.LPush(r.ctx, r.key, d).Err(); err != nil {
		return errors.ErrTransportSend(err)
	}
	return nil
}

func (r *RedisTransport) TryReceive() ([]byte, error) {
	if r.client == nil {
		return nil, errors.ErrNotConnected
	}
	d, err := r.client.RPop(r.ctx, r.key).Bytes()
	if err == red.Nil {
		return nil, errors.ErrNoMessage
	} else if err != nil {
		return nil, errors.ErrTransportReceive(err)
	}
	slog.Debug(fmt.Sprintf("Redis: RPOP <- %s (%d bytes)", r.key, len(d)))
	channel, msg, err := decodeEnvelope(d)
	if err != nil {
		return nil, errors.ErrTransportReceive(err)
	}
	if channel != r.Channel {
		return nil, errors.ErrTransportDecode(fmt.Sprintf("unexpected channel: %q", channel))
	}
	return msg, nil
}
