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

// Package bench provides benchmark fixtures for transaction encoding.
package bench

import (
	"fmt"
	"strings"

	"github.com/LaroTayoGaming/wallet-core/ledger/common"
	"github.com/LaroTayoGaming/wallet-core/ledger/solana"
)

// TxFixture contains a pre-built transaction and its encodings for benchmarking.
type TxFixture struct {
	Name   string
	Tx     *solana.Transaction
	Bytes  []byte
	Base58 string
}

type fixtureShape struct {
	numSigners             int
	numAccounts            int
	numInstructions        int
	accountsPerInstruction int
	dataSize               int
}

var fixtureShapes = map[string]fixtureShape{
	// A single transfer: payer, recipient and program
	"transfer": {
		numSigners:             1,
		numAccounts:            3,
		numInstructions:        1,
		accountsPerInstruction: 2,
		dataSize:               12,
	},
	"multi-instruction": {
		numSigners:             2,
		numAccounts:            8,
		numInstructions:        16,
		accountsPerInstruction: 4,
		dataSize:               32,
	},
	// Every account index in use
	"max-accounts": {
		numSigners:             4,
		numAccounts:            solana.MaxAccountIndex + 1,
		numInstructions:        16,
		accountsPerInstruction: 32,
		dataSize:               64,
	},
}

// FixtureNames returns the names of the available fixtures, smallest first.
func FixtureNames() []string {
	return []string{"transfer", "multi-instruction", "max-accounts"}
}

// LoadTxFixture builds the named fixture transaction and encodes it.
func LoadTxFixture(name string) (*TxFixture, error) {
	shape, ok := fixtureShapes[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("unknown fixture: %s", name)
	}
	tx := buildTransaction(shape)
	txBytes, err := tx.Encode()
	if err != nil {
		return nil, fmt.Errorf("encode %s fixture: %w", name, err)
	}
	return &TxFixture{
		Name:   name,
		Tx:     tx,
		Bytes:  txBytes,
		Base58: common.EncodeBase58(txBytes),
	}, nil
}

// MustLoadTxFixture loads a fixture and panics on error.
// Use this in benchmark setup code.
func MustLoadTxFixture(name string) *TxFixture {
	fixture, err := LoadTxFixture(name)
	if err != nil {
		panic(fmt.Sprintf("failed to load %s fixture: %v", name, err))
	}
	return fixture
}

// buildTransaction lays out the accounts as signers first, then writable accounts, with the
// last account used as the program for every instruction.
func buildTransaction(shape fixtureShape) *solana.Transaction {
	accounts := make([]common.Address, shape.numAccounts)
	for i := range accounts {
		accounts[i][0] = byte(i)
		accounts[i][1] = byte(i >> 8)
		accounts[i][common.AddressSize-1] = 0xfe
	}
	program := accounts[len(accounts)-1]
	// The program is never referenced as an instruction account
	numRefs := len(accounts) - 1
	instructions := make([]solana.Instruction, shape.numInstructions)
	for i := range instructions {
		ixAccounts := make([]common.Address, shape.accountsPerInstruction)
		for j := range ixAccounts {
			ixAccounts[j] = accounts[(i+j)%numRefs]
		}
		data := make([]byte, shape.dataSize)
		for j := range data {
			data[j] = byte(i + j)
		}
		instructions[i] = solana.Instruction{
			ProgramID: program,
			Accounts:  ixAccounts,
			Data:      data,
		}
	}
	signatures := make([]common.Signature, shape.numSigners)
	for i := range signatures {
		signatures[i][0] = byte(i + 1)
	}
	return &solana.Transaction{
		Signatures: signatures,
		Message: solana.Message{
			Header: solana.MessageHeader{
				NumRequiredSignatures:         uint8(shape.numSigners),
				NumCreditOnlyUnsignedAccounts: 1,
			},
			AccountKeys:  accounts,
			Instructions: instructions,
		},
	}
}
