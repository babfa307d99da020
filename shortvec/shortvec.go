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

// Package shortvec implements the compact-u16 length prefix used in front of
// every array in the Solana wire format.
//
// Each byte carries 7 bits of the value, lowest group first. The high bit of a
// byte is set when another byte follows. A value never needs more than
// MaxEncodedSize bytes since lengths are capped at MaxLength.
package shortvec

import (
	"errors"
	"fmt"
)

const (
	// MaxLength is the largest length that can be prefixed
	MaxLength = 0xffff
	// MaxEncodedSize is the number of bytes needed to encode MaxLength
	MaxEncodedSize = 3

	continuationBit = 0x80
	payloadMask     = 0x7f
)

var (
	ErrLengthOutOfRange = errors.New("shortvec: length out of range")
	ErrTruncated        = errors.New("shortvec: truncated length prefix")
	ErrNonMinimal       = errors.New("shortvec: non-minimal length encoding")
)

// EncodeLength returns the compact encoding of n
func EncodeLength(n int) ([]byte, error) {
	return AppendLength(make([]byte, 0, MaxEncodedSize), n)
}

// AppendLength appends the compact encoding of n to buf and returns the
// extended buffer. buf is returned unchanged on error.
func AppendLength(buf []byte, n int) ([]byte, error) {
	if n < 0 || n > MaxLength {
		return buf, fmt.Errorf("%w: %d", ErrLengthOutOfRange, n)
	}
	rem := uint(n)
	for {
		b := byte(rem & payloadMask)
		rem >>= 7
		if rem == 0 {
			return append(buf, b), nil
		}
		buf = append(buf, b|continuationBit)
	}
}

// EncodedSize returns the number of bytes EncodeLength produces for n, or 0
// when n is out of range
func EncodedSize(n int) int {
	switch {
	case n < 0 || n > MaxLength:
		return 0
	case n < 1<<7:
		return 1
	case n < 1<<14:
		return 2
	default:
		return 3
	}
}

// DecodeLength reads a compact length from the start of data. It returns the
// decoded length and the number of bytes consumed.
func DecodeLength(data []byte) (int, int, error) {
	var length uint
	for i := 0; i < MaxEncodedSize; i++ {
		if i >= len(data) {
			return 0, 0, ErrTruncated
		}
		b := data[i]
		// A zero final group after the first byte could have been omitted
		if i > 0 && b == 0 {
			return 0, 0, ErrNonMinimal
		}
		length |= uint(b&payloadMask) << (7 * i)
		if b&continuationBit == 0 {
			if length > MaxLength {
				return 0, 0, fmt.Errorf("%w: %d", ErrLengthOutOfRange, length)
			}
			return int(length), i + 1, nil
		}
	}
	return 0, 0, fmt.Errorf(
		"%w: continuation past %d bytes",
		ErrLengthOutOfRange,
		MaxEncodedSize,
	)
}
