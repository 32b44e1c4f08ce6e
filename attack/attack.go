// Package attack recovers secrets from encryption oracles without access
// to their keys. Every attack treats the oracle as a black box and learns
// only from the ciphertext it returns.
package attack

import (
	"fmt"
	"io"
	"log/slog"

	"jayconrod.com/cryptanalysis/crypto"
)

var (
	ErrNoMatchForByte       = fmt.Errorf("%w: no dictionary match for byte", crypto.ErrAttackFailed)
	ErrBlockSizeNotDetected = fmt.Errorf("%w: block size not detected", crypto.ErrAttackFailed)
	ErrAlignmentNotFound    = fmt.Errorf("%w: block alignment not found", crypto.ErrAttackFailed)
)

const (
	defaultMaxBlockSize = 32
	defaultFiller       = 'e'
)

type config struct {
	maxBlockSize int
	filler       byte
	log          *slog.Logger
}

// An Option configures an attack.
type Option func(*config)

// WithMaxBlockSize bounds block size discovery. The default is 32.
func WithMaxBlockSize(n int) Option {
	return func(c *config) { c.maxBlockSize = n }
}

// WithFiller sets the byte used for probe padding. The default is 'e'.
// It should not be a metacharacter of the oracle's record format.
func WithFiller(b byte) Option {
	return func(c *config) { c.filler = b }
}

// WithLogger enables debug logging of attack progress.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) { c.log = l }
}

func newConfig(opts []Option) config {
	cfg := config{
		maxBlockSize: defaultMaxBlockSize,
		filler:       defaultFiller,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.log == nil {
		cfg.log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return cfg
}

func fill(b byte, n int) []byte {
	buf := make([]byte, n)
	for i := range buf {
		buf[i] = b
	}
	return buf
}
