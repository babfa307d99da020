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
	"fmt"

	"github.com/LaroTayoGaming/wallet-core/ledger/common"
	"github.com/LaroTayoGaming/wallet-core/shortvec"
)

// MessageHeader splits the account list into four consecutive segments:
// signed+writable, signed+read-only, unsigned+writable and unsigned+read-only.
// "Credit-only" is the older name for read-only.
type MessageHeader struct {
	// The total number of signatures required to make the transaction valid.
	// The signatures must match the first NumRequiredSignatures account keys.
	NumRequiredSignatures uint8 `json:"numRequiredSignatures"`

	// The last NumCreditOnlySignedAccounts of the signed keys are read-only
	NumCreditOnlySignedAccounts uint8 `json:"numReadonlySignedAccounts"`

	// The last NumCreditOnlyUnsignedAccounts of the unsigned keys are read-only
	NumCreditOnlyUnsignedAccounts uint8 `json:"numReadonlyUnsignedAccounts"`
}

// Message is the signed part of a transaction
type Message struct {
	Header MessageHeader `json:"header"`
	// Account keys in header segment order. The encoder does not reorder them.
	AccountKeys     []common.Address `json:"accountKeys"`
	RecentBlockhash common.BlockHash `json:"recentBlockhash"`
	Instructions    []Instruction    `json:"instructions"`
}

// AccountIndex returns the position of account in the message account list
func (m *Message) AccountIndex(account common.Address) (uint8, error) {
	return AccountIndex(m.AccountKeys, account)
}

// CompileInstructions compiles every instruction against the message account list
func (m *Message) CompileInstructions() ([]CompiledInstruction, error) {
	ret := make([]CompiledInstruction, 0, len(m.Instructions))
	for i, ix := range m.Instructions {
		compiled, err := CompileInstruction(ix, m.AccountKeys)
		if err != nil {
			return nil, fmt.Errorf("compile instruction %d: %w", i, err)
		}
		ret = append(ret, compiled)
	}
	return ret, nil
}

// Encode returns the wire encoding of the message. This is the payload that signers sign.
func (m *Message) Encode() ([]byte, error) {
	return appendMessage(nil, m)
}

// appendMessage appends the encoded message to buf. On error it returns nil and buf is not
// to be used, so that callers never observe partial output.
func appendMessage(buf []byte, m *Message) ([]byte, error) {
	if err := checkAccountCount(m.AccountKeys); err != nil {
		return nil, err
	}
	// Compile up front so that a missing account fails before anything is written
	compiled, err := m.CompileInstructions()
	if err != nil {
		return nil, err
	}
	buf = append(
		buf,
		m.Header.NumRequiredSignatures,
		m.Header.NumCreditOnlySignedAccounts,
		m.Header.NumCreditOnlyUnsignedAccounts,
	)
	buf, err = shortvec.AppendLength(buf, len(m.AccountKeys))
	if err != nil {
		return nil, fmt.Errorf("account keys: %w", err)
	}
	for _, key := range m.AccountKeys {
		buf = append(buf, key[:]...)
	}
	buf = append(buf, m.RecentBlockhash[:]...)
	buf, err = shortvec.AppendLength(buf, len(compiled))
	if err != nil {
		return nil, fmt.Errorf("instructions: %w", err)
	}
	for i, ix := range compiled {
		buf = append(buf, ix.ProgramIDIndex)
		buf, err = shortvec.AppendLength(buf, len(ix.Accounts))
		if err != nil {
			return nil, fmt.Errorf("instruction %d accounts: %w", i, err)
		}
		buf = append(buf, ix.Accounts...)
		buf, err = shortvec.AppendLength(buf, len(ix.Data))
		if err != nil {
			return nil, fmt.Errorf("instruction %d data: %w", i, err)
		}
		buf = append(buf, ix.Data...)
	}
	return buf, nil
}

// checkAccountCount rejects account lists with entries that no compiled index can reach
func checkAccountCount(accounts []common.Address) error {
	if len(accounts) > MaxAccountIndex+1 {
		return IndexOverflowError{
			Address: accounts[MaxAccountIndex+1],
			Index:   MaxAccountIndex + 1,
		}
	}
	return nil
}

// Validate checks that every account is addressable, that the header segments fit the
// account list and that no account key appears twice. Encoding does not require a valid
// message beyond the account list length.
func (m *Message) Validate() error {
	if err := checkAccountCount(m.AccountKeys); err != nil {
		return err
	}
	numAccounts := len(m.AccountKeys)
	h := m.Header
	if int(h.NumRequiredSignatures) > numAccounts {
		return fmt.Errorf(
			"%w: %d required signatures but only %d accounts",
			ErrInvalidHeader,
			h.NumRequiredSignatures,
			numAccounts,
		)
	}
	if h.NumCreditOnlySignedAccounts > h.NumRequiredSignatures {
		return fmt.Errorf(
			"%w: %d read-only signed accounts but only %d signers",
			ErrInvalidHeader,
			h.NumCreditOnlySignedAccounts,
			h.NumRequiredSignatures,
		)
	}
	numUnsigned := numAccounts - int(h.NumRequiredSignatures)
	if int(h.NumCreditOnlyUnsignedAccounts) > numUnsigned {
		return fmt.Errorf(
			"%w: %d read-only unsigned accounts but only %d unsigned accounts",
			ErrInvalidHeader,
			h.NumCreditOnlyUnsignedAccounts,
			numUnsigned,
		)
	}
	seen := make(map[common.Address]struct{}, numAccounts)
	for _, key := range m.AccountKeys {
		if _, ok := seen[key]; ok {
			return fmt.Errorf("%w: %s", ErrDuplicateAccount, key)
		}
		seen[key] = struct{}{}
	}
	return nil
}

// Signers returns the account keys that must sign the message
func (m *Message) Signers() common.AddressSlice {
	numSigners := min(int(m.Header.NumRequiredSignatures), len(m.AccountKeys))
	ret := make(common.AddressSlice, numSigners)
	copy(ret, m.AccountKeys[:numSigners])
	return ret
}

// IsSigner reports whether account is in the signer segment of the account list
func (m *Message) IsSigner(account common.Address) bool {
	idx := common.AddressSlice(m.AccountKeys).Index(account)
	if idx < 0 {
		return false
	}
	return idx < int(m.Header.NumRequiredSignatures)
}

// IsWritable reports whether account is in one of the writable segments of the account list
func (m *Message) IsWritable(account common.Address) bool {
	idx := common.AddressSlice(m.AccountKeys).Index(account)
	if idx < 0 {
		return false
	}
	h := m.Header
	numSigners := int(h.NumRequiredSignatures)
	if idx < numSigners {
		return idx < numSigners-int(h.NumCreditOnlySignedAccounts)
	}
	numWritableUnsigned := len(m.AccountKeys) - numSigners - int(h.NumCreditOnlyUnsignedAccounts)
	return idx-numSigners < numWritableUnsigned
}
