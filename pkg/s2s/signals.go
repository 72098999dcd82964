// Copyright 2025 Robert Bosch GmbH
//
// SPDX-License-Identifier: Apache-2.0

package s2s

import (
	"github.com/boschglobal/dse.s2s/pkg/codec"
	"github.com/boschglobal/dse.s2s/pkg/config"
	"github.com/boschglobal/dse.s2s/pkg/errors"
)

// SampleEncoder writes the signals of a sample.
type SampleEncoder[T any] interface {
	EncodeSample(sample T, w *SignalWriter) error
}

// SampleDecoder builds a sample from received signals.
type SampleDecoder[T any] interface {
	DecodeSample(r *SignalReader) (T, error)
}

type EncoderFunc[T any] func(sample T, w *SignalWriter) error

func (f EncoderFunc[T]) EncodeSample(sample T, w *SignalWriter) error {
	return f(sample, w)
}

type DecoderFunc[T any] func(r *SignalReader) (T, error)

func (f DecoderFunc[T]) DecodeSample(r *SignalReader) (T, error) {
	return f(r)
}

// SignalWriter collects the encoded signals of one sample. Signals which are
// not set are packed as zero.
type SignalWriter struct {
	cfg    *config.S2SEventConfig
	values map[string][]byte
}

func newSignalWriter(cfg *config.S2SEventConfig) *SignalWriter {
	return &SignalWriter{cfg: cfg, values: make(map[string][]byte, len(cfg.Signals))}
}

func (w *SignalWriter) signal(name string) (config.S2SSignalConfig, error) {
	s, ok := w.cfg.Signal(name)
	if !ok {
		return s, errors.ErrCodecUnknownSignal(name)
	}
	return s, nil
}

func (w *SignalWriter) SetUnsigned(name string, v uint64) error {
	s, err := w.signal(name)
	if err != nil {
		return err
	}
	w.values[name] = codec.EncodeUnsigned(v, s.Length)
	return nil
}

func (w *SignalWriter) SetSigned(name string, v int64) error {
	s, err := w.signal(name)
	if err != nil {
		return err
	}
	w.values[name] = codec.EncodeSigned(v, s.Length)
	return nil
}

func (w *SignalWriter) SetFloat32(name string, v float32) error {
	s, err := w.signal(name)
	if err != nil {
		return err
	}
	if s.Length != 32 {
		return errors.ErrCodecSignalSize(name, 4, s.ByteLength())
	}
	w.values[name] = codec.EncodeFloat32(v)
	return nil
}

func (w *SignalWriter) SetFloat64(name string, v float64) error {
	s, err := w.signal(name)
	if err != nil {
		return err
	}
	if s.Length != 64 {
		return errors.ErrCodecSignalSize(name, 8, s.ByteLength())
	}
	w.values[name] = codec.EncodeFloat64(v)
	return nil
}

// SetBytes sets the raw vector of a signal, in host order or in PDU order for
// opaque signals.
func (w *SignalWriter) SetBytes(name string, b []byte) error {
	s, err := w.signal(name)
	if err != nil {
		return err
	}
	if uint32(len(b)) != s.ByteLength() {
		return errors.ErrCodecSignalSize(name, len(b), s.ByteLength())
	}
	_b := make([]byte, len(b))
	copy(_b, b)
	w.values[name] = _b
	return nil
}

func (w *SignalWriter) pack(pdu []byte) error {
	for _, s := range w.cfg.Signals {
		v, ok := w.values[s.Name]
		if !ok {
			v = make([]byte, s.ByteLength())
		}
		if err := codec.PackSignal(pdu, v, s); err != nil {
			return err
		}
	}
	return nil
}

// SignalReader gives access to the unpacked signals of one sample.
type SignalReader struct {
	cfg    *config.S2SEventConfig
	values map[string][]byte
}

func unpackSignals(pdu []byte, cfg *config.S2SEventConfig) (*SignalReader, error) {
	r := &SignalReader{cfg: cfg, values: make(map[string][]byte, len(cfg.Signals))}
	for _, s := range cfg.Signals {
		v, err := codec.UnpackSignal(pdu, s)
		if err != nil {
			return nil, err
		}
		r.values[s.Name] = v
	}
	return r, nil
}

func (r *SignalReader) get(name string) (config.S2SSignalConfig, []byte, error) {
	s, ok := r.cfg.Signal(name)
	if !ok {
		return s, nil, errors.ErrCodecUnknownSignal(name)
	}
	return s, r.values[name], nil
}

func (r *SignalReader) Unsigned(name string) (uint64, error) {
	s, v, err := r.get(name)
	if err != nil {
		return 0, err
	}
	return codec.ConvertUnsigned[uint64](v, min(s.Length, 64)), nil
}

func (r *SignalReader) Signed(name string) (int64, error) {
	s, v, err := r.get(name)
	if err != nil {
		return 0, err
	}
	return codec.ConvertSigned[int64](v, min(s.Length, 64)), nil
}

func (r *SignalReader) Float32(name string) (float32, error) {
	s, v, err := r.get(name)
	if err != nil {
		return 0, err
	}
	if s.Length != 32 {
		return 0, errors.ErrCodecSignalSize(name, 4, s.ByteLength())
	}
	return codec.ConvertFloat32(v), nil
}

func (r *SignalReader) Float64(name string) (float64, error) {
	s, v, err := r.get(name)
	if err != nil {
		return 0, err
	}
	if s.Length != 64 {
		return 0, errors.ErrCodecSignalSize(name, 8, s.ByteLength())
	}
	return codec.ConvertFloat64(v), nil
}

func (r *SignalReader) Bytes(name string) ([]byte, error) {
	_, v, err := r.get(name)
	if err != nil {
		return nil, err
	}
	_v := make([]byte, len(v))
	copy(_v, v)
	return _v, nil
}

// Values is a generic sample holding every signal as an unsigned integer.
// Array signals carry the value in their low order bytes.
type Values map[string]uint64

type ValuesCodec struct{}

func (ValuesCodec) EncodeSample(sample Values, w *SignalWriter) error {
	for name, v := range sample {
		s, err := w.signal(name)
		if err != nil {
			return err
		}
		if s.Type == config.Array {
			if err := w.SetBytes(name, codec.EncodeUnsigned(v, s.Length)); err != nil {
				return err
			}
			continue
		}
		if err := w.SetUnsigned(name, v); err != nil {
			return err
		}
	}
	return nil
}

func (ValuesCodec) DecodeSample(r *SignalReader) (Values, error) {
	sample := make(Values, len(r.cfg.Signals))
	for _, s := range r.cfg.Signals {
		v, err := r.Unsigned(s.Name)
		if err != nil {
			return nil, err
		}
		sample[s.Name] = v
	}
	return sample, nil
}
