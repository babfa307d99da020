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

package common

import (
	"bytes"
	"encoding/json"
	"fmt"

	"filippo.io/edwards25519"
	"github.com/LaroTayoGaming/wallet-core/cbor"
)

const AddressSize = 32

// Address is an ed25519 public key identifying an account or a program
type Address [AddressSize]byte

// NewAddress returns an Address from the raw key bytes provided
func NewAddress(data []byte) (Address, error) {
	var a Address
	if len(data) != AddressSize {
		return a, InvalidLengthError{
			Type:     "address",
			Expected: AddressSize,
			Actual:   len(data),
		}
	}
	copy(a[:], data)
	return a, nil
}

// NewAddressFromBase58 returns an Address based on the provided base58 string
func NewAddressFromBase58(addr string) (Address, error) {
	var a Address
	if err := decodeBase58Fixed(addr, "address", a[:]); err != nil {
		return Address{}, err
	}
	return a, nil
}

// MustAddressFromBase58 is like NewAddressFromBase58 but panics on error. It is intended
// for well-known program IDs and test fixtures.
func MustAddressFromBase58(addr string) Address {
	a, err := NewAddressFromBase58(addr)
	if err != nil {
		panic(fmt.Sprintf("invalid address %q: %s", addr, err))
	}
	return a
}

// String returns the base58-encoded version of the address
func (a Address) String() string {
	return encodeBase58(a[:])
}

func (a Address) Bytes() []byte {
	return a[:]
}

func (a Address) Equal(other Address) bool {
	return a == other
}

func (a Address) IsZero() bool {
	return a == Address{}
}

// IsOnCurve reports whether the address is a valid compressed ed25519 point. Keys that
// sign transactions are always on the curve, while program derived addresses never are.
func (a Address) IsOnCurve() bool {
	_, err := new(edwards25519.Point).SetBytes(a[:])
	return err == nil
}

func (a Address) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.String())
}

func (a *Address) UnmarshalJSON(data []byte) error {
	var tmp string
	if err := json.Unmarshal(data, &tmp); err != nil {
		return err
	}
	tmpAddr, err := NewAddressFromBase58(tmp)
	if err != nil {
		return err
	}
	*a = tmpAddr
	return nil
}

func (a Address) MarshalCBOR() ([]byte, error) {
	return cbor.Encode(a[:])
}

func (a *Address) UnmarshalCBOR(data []byte) error {
	return unmarshalCborFixed(data, "address", a[:])
}

// AddressSlice is an ordered list of addresses
type AddressSlice []Address

// Contains reports whether the list holds the address
func (s AddressSlice) Contains(a Address) bool {
	return s.Index(a) >= 0
}

// Index returns the position of the first occurrence of the address, or -1
func (s AddressSlice) Index(a Address) int {
	for idx, item := range s {
		if bytes.Equal(item[:], a[:]) {
			return idx
		}
	}
	return -1
}

// UniqueAppend appends the address only if it is not already present and reports
// whether it was added
func (s *AddressSlice) UniqueAppend(a Address) bool {
	if s.Contains(a) {
		return false
	}
	*s = append(*s, a)
	return true
}
