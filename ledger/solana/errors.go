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
	"errors"
	"fmt"

	"github.com/LaroTayoGaming/wallet-core/ledger/common"
)

// Sentinel errors so callers can use errors.Is against the typed errors below
var (
	ErrAddressNotFound        = errors.New("address not found in account list")
	ErrIndexOverflow          = errors.New("account index does not fit in a single byte")
	ErrSignatureCountMismatch = errors.New("signature count does not match message header")
	ErrTransactionTooLarge    = errors.New("transaction too large")
	ErrAccountIndexOutOfRange = errors.New("account index out of range")
)

var (
	ErrInvalidHeader    = errors.New("invalid message header")
	ErrDuplicateAccount = errors.New("duplicate account key")
	ErrNoSignatures     = errors.New("transaction has no signatures")
	ErrInvalidSignature = errors.New("invalid signature")
	ErrTrailingData     = errors.New("trailing data after transaction")
)

// AddressNotFoundError indicates a program or instruction account that is missing from the
// message account list
type AddressNotFoundError struct {
	Address common.Address
}

func (e AddressNotFoundError) Error() string {
	return fmt.Sprintf("address %s not found in account list", e.Address)
}

func (AddressNotFoundError) Is(target error) bool {
	return target == ErrAddressNotFound
}

// IndexOverflowError indicates an account whose position in the account list cannot be
// represented by a one-byte compiled index
type IndexOverflowError struct {
	Address common.Address
	Index   int
}

func (e IndexOverflowError) Error() string {
	return fmt.Sprintf(
		"address %s at index %d does not fit in a single byte (max %d)",
		e.Address,
		e.Index,
		MaxAccountIndex,
	)
}

func (IndexOverflowError) Is(target error) bool {
	return target == ErrIndexOverflow
}

// SignatureCountMismatchError indicates a signature list whose length differs from the
// number of required signatures declared in the message header
type SignatureCountMismatchError struct {
	Expected int
	Actual   int
}

func (e SignatureCountMismatchError) Error() string {
	return fmt.Sprintf(
		"signature count mismatch: header requires %d, got %d",
		e.Expected,
		e.Actual,
	)
}

func (SignatureCountMismatchError) Is(target error) bool {
	return target == ErrSignatureCountMismatch
}

type TransactionTooLargeError struct {
	Size  int
	Limit int
}

func (e TransactionTooLargeError) Error() string {
	return fmt.Sprintf(
		"transaction too large: %d bytes exceeds limit of %d",
		e.Size,
		e.Limit,
	)
}

func (TransactionTooLargeError) Is(target error) bool {
	return target == ErrTransactionTooLarge
}

// AccountIndexOutOfRangeError indicates a compiled index that points past the end of the
// account list while decoding
type AccountIndexOutOfRangeError struct {
	Index       uint8
	NumAccounts int
}

func (e AccountIndexOutOfRangeError) Error() string {
	return fmt.Sprintf(
		"account index %d out of range for %d accounts",
		e.Index,
		e.NumAccounts,
	)
}

func (AccountIndexOutOfRangeError) Is(target error) bool {
	return target == ErrAccountIndexOutOfRange
}
