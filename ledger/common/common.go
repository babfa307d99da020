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
	"encoding/json"
	"fmt"

	"github.com/LaroTayoGaming/wallet-core/cbor"
	"github.com/btcsuite/btcd/btcutil/base58"
)

const (
	SignatureSize = 64
	BlockHashSize = 32
)

// Signature is an ed25519 signature over a serialized message
type Signature [SignatureSize]byte

func NewSignature(data []byte) (Signature, error) {
	var s Signature
	if len(data) != SignatureSize {
		return s, InvalidLengthError{
			Type:     "signature",
			Expected: SignatureSize,
			Actual:   len(data),
		}
	}
	copy(s[:], data)
	return s, nil
}

func NewSignatureFromBase58(sig string) (Signature, error) {
	var s Signature
	if err := decodeBase58Fixed(sig, "signature", s[:]); err != nil {
		return Signature{}, err
	}
	return s, nil
}

func (s Signature) String() string {
	return encodeBase58(s[:])
}

func (s Signature) Bytes() []byte {
	return s[:]
}

func (s Signature) IsZero() bool {
	return s == Signature{}
}

func (s Signature) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *Signature) UnmarshalJSON(data []byte) error {
	var tmp string
	if err := json.Unmarshal(data, &tmp); err != nil {
		return err
	}
	tmpSig, err := NewSignatureFromBase58(tmp)
	if err != nil {
		return err
	}
	*s = tmpSig
	return nil
}

func (s Signature) MarshalCBOR() ([]byte, error) {
	return cbor.Encode(s[:])
}

func (s *Signature) UnmarshalCBOR(data []byte) error {
	return unmarshalCborFixed(data, "signature", s[:])
}

// BlockHash identifies a recent block. Transactions reference one to limit their lifetime.
type BlockHash [BlockHashSize]byte

func NewBlockHash(data []byte) (BlockHash, error) {
	var b BlockHash
	if len(data) != BlockHashSize {
		return b, InvalidLengthError{
			Type:     "block hash",
			Expected: BlockHashSize,
			Actual:   len(data),
		}
	}
	copy(b[:], data)
	return b, nil
}

func NewBlockHashFromBase58(hash string) (BlockHash, error) {
	var b BlockHash
	if err := decodeBase58Fixed(hash, "block hash", b[:]); err != nil {
		return BlockHash{}, err
	}
	return b, nil
}

func (b BlockHash) String() string {
	return encodeBase58(b[:])
}

func (b BlockHash) Bytes() []byte {
	return b[:]
}

func (b BlockHash) MarshalJSON() ([]byte, error) {
	return json.Marshal(b.String())
}

func (b *BlockHash) UnmarshalJSON(data []byte) error {
	var tmp string
	if err := json.Unmarshal(data, &tmp); err != nil {
		return err
	}
	tmpHash, err := NewBlockHashFromBase58(tmp)
	if err != nil {
		return err
	}
	*b = tmpHash
	return nil
}

func (b BlockHash) MarshalCBOR() ([]byte, error) {
	return cbor.Encode(b[:])
}

func (b *BlockHash) UnmarshalCBOR(data []byte) error {
	return unmarshalCborFixed(data, "block hash", b[:])
}

// EncodeBase58 encodes arbitrary data with the bitcoin base58 alphabet
func EncodeBase58(data []byte) string {
	return encodeBase58(data)
}

// DecodeBase58 decodes a bitcoin base58 string. The empty string decodes to an empty slice.
func DecodeBase58(s string) ([]byte, error) {
	decoded := base58.Decode(s)
	// The base58 library signals invalid input by returning an empty result
	if len(decoded) == 0 && s != "" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidBase58, s)
	}
	return decoded, nil
}

func encodeBase58(data []byte) string {
	return base58.Encode(data)
}

func decodeBase58Fixed(s string, typeName string, dest []byte) error {
	decoded, err := DecodeBase58(s)
	if err != nil {
		return err
	}
	if len(decoded) != len(dest) {
		return InvalidLengthError{
			Type:     typeName,
			Expected: len(dest),
			Actual:   len(decoded),
		}
	}
	copy(dest, decoded)
	return nil
}

func unmarshalCborFixed(data []byte, typeName string, dest []byte) error {
	var tmp []byte
	if _, err := cbor.Decode(data, &tmp); err != nil {
		return err
	}
	if len(tmp) != len(dest) {
		return InvalidLengthError{
			Type:     typeName,
			Expected: len(dest),
			Actual:   len(tmp),
		}
	}
	copy(dest, tmp)
	return nil
}
