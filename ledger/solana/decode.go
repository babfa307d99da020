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

// DecodeTransaction parses the wire encoding of a transaction. Compiled instructions are
// mapped back to account addresses. The input must contain exactly one transaction.
func DecodeTransaction(data []byte) (*Transaction, error) {
	d := &decoder{data: data}
	tx := &Transaction{}
	numSignatures, err := d.readLength("signature count")
	if err != nil {
		return nil, err
	}
	if numSignatures > d.remaining()/common.SignatureSize {
		return nil, fmt.Errorf(
			"signature count %d is too large for remaining %d bytes",
			numSignatures,
			d.remaining(),
		)
	}
	if numSignatures > 0 {
		tx.Signatures = make([]common.Signature, numSignatures)
	}
	for i := range tx.Signatures {
		if err := d.readInto(tx.Signatures[i][:], fmt.Sprintf("signature %d", i)); err != nil {
			return nil, err
		}
	}
	if err := d.readMessage(&tx.Message); err != nil {
		return nil, err
	}
	if d.remaining() > 0 {
		return nil, fmt.Errorf("%w: %d bytes", ErrTrailingData, d.remaining())
	}
	return tx, nil
}

// DecodeTransactionBase58 parses a base58-encoded transaction as produced by Serialize
func DecodeTransactionBase58(s string) (*Transaction, error) {
	data, err := common.DecodeBase58(s)
	if err != nil {
		return nil, err
	}
	return DecodeTransaction(data)
}

type decoder struct {
	data []byte
	pos  int
}

func (d *decoder) remaining() int {
	return len(d.data) - d.pos
}

func (d *decoder) readLength(what string) (int, error) {
	length, size, err := shortvec.DecodeLength(d.data[d.pos:])
	if err != nil {
		return 0, fmt.Errorf("read %s: %w", what, err)
	}
	d.pos += size
	return length, nil
}

func (d *decoder) readByte(what string) (byte, error) {
	if d.remaining() < 1 {
		return 0, fmt.Errorf("read %s: unexpected end of data", what)
	}
	b := d.data[d.pos]
	d.pos++
	return b, nil
}

func (d *decoder) readInto(dest []byte, what string) error {
	if d.remaining() < len(dest) {
		return fmt.Errorf(
			"read %s: need %d bytes, have %d",
			what,
			len(dest),
			d.remaining(),
		)
	}
	copy(dest, d.data[d.pos:])
	d.pos += len(dest)
	return nil
}

// readBytes reads a length-prefixed byte string. A zero length yields nil.
func (d *decoder) readBytes(what string) ([]byte, error) {
	length, err := d.readLength(what + " length")
	if err != nil {
		return nil, err
	}
	if length == 0 {
		return nil, nil
	}
	ret := make([]byte, length)
	if err := d.readInto(ret, what); err != nil {
		return nil, err
	}
	return ret, nil
}

func (d *decoder) readMessage(m *Message) error {
	var header [headerSize]byte
	if err := d.readInto(header[:], "message header"); err != nil {
		return err
	}
	m.Header = MessageHeader{
		NumRequiredSignatures:         header[0],
		NumCreditOnlySignedAccounts:   header[1],
		NumCreditOnlyUnsignedAccounts: header[2],
	}
	numAccounts, err := d.readLength("account count")
	if err != nil {
		return err
	}
	if numAccounts > d.remaining()/common.AddressSize {
		return fmt.Errorf(
			"account count %d is too large for remaining %d bytes",
			numAccounts,
			d.remaining(),
		)
	}
	if numAccounts > 0 {
		m.AccountKeys = make([]common.Address, numAccounts)
	}
	for i := range m.AccountKeys {
		if err := d.readInto(m.AccountKeys[i][:], fmt.Sprintf("account key %d", i)); err != nil {
			return err
		}
	}
	if err := checkAccountCount(m.AccountKeys); err != nil {
		return err
	}
	if err := d.readInto(m.RecentBlockhash[:], "recent blockhash"); err != nil {
		return err
	}
	numInstructions, err := d.readLength("instruction count")
	if err != nil {
		return err
	}
	// Every instruction takes at least 3 bytes
	if numInstructions > d.remaining()/3 {
		return fmt.Errorf(
			"instruction count %d is too large for remaining %d bytes",
			numInstructions,
			d.remaining(),
		)
	}
	if numInstructions > 0 {
		m.Instructions = make([]Instruction, numInstructions)
	}
	for i := range m.Instructions {
		compiled, err := d.readCompiledInstruction(i)
		if err != nil {
			return err
		}
		ix, err := compiled.Decompile(m.AccountKeys)
		if err != nil {
			return fmt.Errorf("instruction %d: %w", i, err)
		}
		m.Instructions[i] = ix
	}
	return nil
}

func (d *decoder) readCompiledInstruction(idx int) (CompiledInstruction, error) {
	var ret CompiledInstruction
	var err error
	ret.ProgramIDIndex, err = d.readByte(fmt.Sprintf("instruction %d program index", idx))
	if err != nil {
		return ret, err
	}
	accounts, err := d.readBytes(fmt.Sprintf("instruction %d accounts", idx))
	if err != nil {
		return ret, err
	}
	ret.Accounts = accounts
	data, err := d.readBytes(fmt.Sprintf("instruction %d data", idx))
	if err != nil {
		return ret, err
	}
	ret.Data = data
	return ret, nil
}
