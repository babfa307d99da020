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
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/LaroTayoGaming/wallet-core/ledger/common"
)

// Instruction is a program invocation that references its accounts by address
type Instruction struct {
	ProgramID common.Address   `json:"programId"`
	Accounts  []common.Address `json:"accounts"`
	Data      []byte           `json:"data"`
}

// MarshalJSON renders the instruction data as base58, which is what the RPC API uses
func (i Instruction) MarshalJSON() ([]byte, error) {
	type tInstruction Instruction
	tmp := struct {
		tInstruction
		Data string `json:"data"`
	}{
		tInstruction: tInstruction(i),
		Data:         common.EncodeBase58(i.Data),
	}
	return json.Marshal(tmp)
}

func (i *Instruction) UnmarshalJSON(data []byte) error {
	type tInstruction Instruction
	var tmp struct {
		tInstruction
		Data string `json:"data"`
	}
	if err := json.Unmarshal(data, &tmp); err != nil {
		return err
	}
	ixData, err := common.DecodeBase58(tmp.Data)
	if err != nil {
		return fmt.Errorf("instruction data: %w", err)
	}
	*i = Instruction(tmp.tInstruction)
	i.Data = ixData
	return nil
}

// CompiledInstruction is an Instruction rewritten to use positions in the message account
// list instead of addresses
type CompiledInstruction struct {
	ProgramIDIndex uint8
	Accounts       []uint8
	Data           []byte
}

// AccountIndex returns the position of the first occurrence of target in accounts. It fails
// if the address is absent or if its position cannot be encoded in a single byte.
func AccountIndex(accounts []common.Address, target common.Address) (uint8, error) {
	for idx, account := range accounts {
		if account != target {
			continue
		}
		if idx > MaxAccountIndex {
			return 0, IndexOverflowError{
				Address: target,
				Index:   idx,
			}
		}
		return uint8(idx), nil
	}
	return 0, AddressNotFoundError{Address: target}
}

// CompileInstruction resolves the program and every referenced account of ix against accounts.
// Duplicate references resolve independently and keep their order. The data is copied.
func CompileInstruction(
	ix Instruction,
	accounts []common.Address,
) (CompiledInstruction, error) {
	programIdx, err := AccountIndex(accounts, ix.ProgramID)
	if err != nil {
		return CompiledInstruction{}, fmt.Errorf("program: %w", err)
	}
	var accountIdxs []uint8
	if len(ix.Accounts) > 0 {
		accountIdxs = make([]uint8, len(ix.Accounts))
	}
	for i, account := range ix.Accounts {
		accountIdx, err := AccountIndex(accounts, account)
		if err != nil {
			return CompiledInstruction{}, fmt.Errorf("account[%d]: %w", i, err)
		}
		accountIdxs[i] = accountIdx
	}
	return CompiledInstruction{
		ProgramIDIndex: programIdx,
		Accounts:       accountIdxs,
		Data:           bytes.Clone(ix.Data),
	}, nil
}

// Decompile maps the compiled indices back to addresses
func (c CompiledInstruction) Decompile(accounts []common.Address) (Instruction, error) {
	lookup := func(idx uint8) (common.Address, error) {
		if int(idx) >= len(accounts) {
			return common.Address{}, AccountIndexOutOfRangeError{
				Index:       idx,
				NumAccounts: len(accounts),
			}
		}
		return accounts[idx], nil
	}
	programID, err := lookup(c.ProgramIDIndex)
	if err != nil {
		return Instruction{}, fmt.Errorf("program: %w", err)
	}
	ret := Instruction{
		ProgramID: programID,
		Data:      bytes.Clone(c.Data),
	}
	if len(c.Accounts) > 0 {
		ret.Accounts = make([]common.Address, len(c.Accounts))
	}
	for i, idx := range c.Accounts {
		account, err := lookup(idx)
		if err != nil {
			return Instruction{}, fmt.Errorf("account[%d]: %w", i, err)
		}
		ret.Accounts[i] = account
	}
	return ret, nil
}
