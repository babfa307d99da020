// Copyright 2026 Blink Labs Software
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package solana

import (
	"log/slog"

	"github.com/btcsuite/btcd/btcutil/base58"
)

// EncoderConfig holds configuration for an Encoder
type EncoderConfig struct {
	// Logger receives debug output about encoded messages and transactions.
	// Defaults to slog.Default().
	Logger *slog.Logger
	// MaxTransactionSize limits the size of an encoded transaction in bytes.
	// Zero disables the check.
	MaxTransactionSize int
}

// EncoderOption is a functional option for configuring an Encoder
type EncoderOption func(*EncoderConfig)

// WithLogger sets the logger. A nil logger is ignored.
func WithLogger(logger *slog.Logger) EncoderOption {
	return func(c *EncoderConfig) {
		if logger != nil {
			c.Logger = logger
		}
	}
}

// WithMaxTransactionSize limits the encoded transaction size. Use PacketDataSize to reject
// transactions the network would not accept. Zero disables the limit and a negative size is
// ignored.
func WithMaxTransactionSize(size int) EncoderOption {
	return func(c *EncoderConfig) {
		if size >= 0 {
			c.MaxTransactionSize = size
		}
	}
}

// Encoder encodes messages and transactions with a fixed configuration. It holds no mutable
// state and is safe for concurrent use.
type Encoder struct {
	config EncoderConfig
}

// NewEncoder returns an Encoder configured with the provided options
func NewEncoder(opts ...EncoderOption) *Encoder {
	e := &Encoder{}
	for _, opt := range opts {
		opt(&e.config)
	}
	if e.config.Logger == nil {
		e.config.Logger = slog.Default()
	}
	return e
}

// Config returns a copy of the encoder configuration
func (e *Encoder) Config() EncoderConfig {
	return e.config
}

// EncodeMessage returns the wire encoding of m
func (e *Encoder) EncodeMessage(m *Message) ([]byte, error) {
	msgBytes, err := m.Encode()
	if err != nil {
		return nil, err
	}
	e.config.Logger.Debug(
		"encoded message",
		"accounts",
		len(m.AccountKeys),
		"instructions",
		len(m.Instructions),
		"size",
		len(msgBytes),
	)
	return msgBytes, nil
}

// EncodeTransaction returns the wire encoding of tx, enforcing the configured size limit
func (e *Encoder) EncodeTransaction(tx *Transaction) ([]byte, error) {
	txBytes, err := tx.Encode()
	if err != nil {
		return nil, err
	}
	if e.config.MaxTransactionSize > 0 &&
		len(txBytes) > e.config.MaxTransactionSize {
		return nil, TransactionTooLargeError{
			Size:  len(txBytes),
			Limit: e.config.MaxTransactionSize,
		}
	}
	e.config.Logger.Debug(
		"encoded transaction",
		"signatures",
		len(tx.Signatures),
		"accounts",
		len(tx.Message.AccountKeys),
		"instructions",
		len(tx.Message.Instructions),
		"size",
		len(txBytes),
	)
	return txBytes, nil
}

// Serialize returns the base58-encoded wire encoding of tx
func (e *Encoder) Serialize(tx *Transaction) (string, error) {
	txBytes, err := e.EncodeTransaction(tx)
	if err != nil {
		return "", err
	}
	return base58.Encode(txBytes), nil
}

// Serialize returns the base58-encoded wire encoding of tx using a default Encoder
func Serialize(tx *Transaction) (string, error) {
	return NewEncoder().Serialize(tx)
}

// EncodeMessage returns the wire encoding of m using a default Encoder
func EncodeMessage(m *Message) ([]byte, error) {
	return NewEncoder().EncodeMessage(m)
}
