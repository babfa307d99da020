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
	"crypto/ed25519"
	"fmt"

	"github.com/LaroTayoGaming/wallet-core/ledger/common"
	"github.com/LaroTayoGaming/wallet-core/shortvec"
	"github.com/btcsuite/btcd/btcutil/base58"
)

// Transaction is a message together with the signatures of its signer accounts. Signature i
// belongs to account key i.
type Transaction struct {
	Signatures []common.Signature `json:"signatures"`
	Message    Message            `json:"message"`
}

// Encode returns the wire encoding of the transaction. The number of signatures must match
// the number of required signatures in the message header.
func (tx *Transaction) Encode() ([]byte, error) {
	return appendTransaction(nil, tx)
}

// Serialize returns the base58-encoded wire encoding of the transaction, ready for broadcast
func (tx *Transaction) Serialize() (string, error) {
	txBytes, err := tx.Encode()
	if err != nil {
		return "", err
	}
	return base58.Encode(txBytes), nil
}

func appendTransaction(buf []byte, tx *Transaction) ([]byte, error) {
	expected := int(tx.Message.Header.NumRequiredSignatures)
	if len(tx.Signatures) != expected {
		return nil, SignatureCountMismatchError{
			Expected: expected,
			Actual:   len(tx.Signatures),
		}
	}
	buf, err := shortvec.AppendLength(buf, len(tx.Signatures))
	if err != nil {
		return nil, fmt.Errorf("signatures: %w", err)
	}
	for _, sig := range tx.Signatures {
		buf = append(buf, sig[:]...)
	}
	return appendMessage(buf, &tx.Message)
}

// ID returns the first signature, which the network uses to identify the transaction
func (tx *Transaction) ID() (common.Signature, error) {
	if len(tx.Signatures) == 0 {
		return common.Signature{}, ErrNoSignatures
	}
	return tx.Signatures[0], nil
}

// VerifySignatures checks every signature against its signer key over the encoded message
func (tx *Transaction) VerifySignatures() error {
	signers := tx.Message.Signers()
	if len(signers) != len(tx.Signatures) {
		return SignatureCountMismatchError{
			Expected: len(signers),
			Actual:   len(tx.Signatures),
		}
	}
	msgBytes, err := tx.Message.Encode()
	if err != nil {
		return err
	}
	for i, sig := range tx.Signatures {
		if !ed25519.Verify(ed25519.PublicKey(signers[i][:]), msgBytes, sig[:]) {
			return fmt.Errorf("%w: signer %s", ErrInvalidSignature, signers[i])
		}
	}
	return nil
}
