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

package solana_test

import (
	"testing"

	"github.com/LaroTayoGaming/wallet-core/internal/test"
	"github.com/LaroTayoGaming/wallet-core/ledger/common"
	"github.com/LaroTayoGaming/wallet-core/ledger/solana"
	"github.com/LaroTayoGaming/wallet-core/shortvec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeTransactionBase58(t *testing.T) {
	tx, err := solana.DecodeTransactionBase58(scenarioTxBase58)
	require.NoError(t, err)
	assert.Equal(t, scenarioTransaction(), tx)
}

func TestDecodeTransactionRoundTrip(t *testing.T) {
	accounts := testAddresses(solana.MaxAccountIndex + 1)
	blockhash, err := common.NewBlockHash(test.SequentialBytes(9, common.BlockHashSize))
	require.NoError(t, err)
	sigs := make([]common.Signature, 3)
	for i := range sigs {
		copy(sigs[i][:], test.SequentialBytes(byte(i*64), common.SignatureSize))
	}
	tx := &solana.Transaction{
		Signatures: sigs,
		Message: solana.Message{
			Header: solana.MessageHeader{
				NumRequiredSignatures:         3,
				NumCreditOnlySignedAccounts:   1,
				NumCreditOnlyUnsignedAccounts: 100,
			},
			// Every addressable account, which needs a 2-byte count prefix
			AccountKeys:     accounts,
			RecentBlockhash: blockhash,
			Instructions: []solana.Instruction{
				{
					ProgramID: accounts[255],
					Accounts:  []common.Address{accounts[0], accounts[0], accounts[200]},
					Data:      test.SequentialBytes(0, 300),
				},
				{
					ProgramID: accounts[4],
				},
			},
		},
	}
	txBytes, err := tx.Encode()
	require.NoError(t, err)
	decoded, err := solana.DecodeTransaction(txBytes)
	require.NoError(t, err)
	assert.Equal(t, tx, decoded)

	// Decoding copies; modifying the input afterwards has no effect
	for i := range txBytes {
		txBytes[i] = 0
	}
	assert.Equal(t, tx, decoded)
}

func TestDecodeTransactionErrors(t *testing.T) {
	valid, err := scenarioTransaction().Encode()
	require.NoError(t, err)
	testDefs := []struct {
		name        string
		data        []byte
		expectedErr error
		errContains string
	}{
		{
			name:        "empty",
			data:        nil,
			expectedErr: shortvec.ErrTruncated,
		},
		{
			name:        "truncated signature",
			data:        valid[:40],
			errContains: "signature count 1 is too large",
		},
		{
			name:        "truncated message",
			data:        valid[:len(valid)-1],
			errContains: "instruction 0 data length",
		},
		{
			name:        "trailing data",
			data:        append(append([]byte{}, valid...), 0x00),
			expectedErr: solana.ErrTrailingData,
		},
		{
			name: "program index out of range",
			data: func() []byte {
				tmp := append([]byte{}, valid...)
				// Program index of the only instruction
				tmp[len(tmp)-4] = 2
				return tmp
			}(),
			expectedErr: solana.ErrAccountIndexOutOfRange,
		},
		{
			name: "account index out of range",
			data: func() []byte {
				tmp := append([]byte{}, valid...)
				tmp[len(tmp)-2] = 0xff
				return tmp
			}(),
			expectedErr: solana.ErrAccountIndexOutOfRange,
		},
		{
			name: "non-minimal length",
			data: func() []byte {
				tmp := append([]byte{}, valid[:1]...)
				tmp[0] = 0x81
				return append(append(tmp, 0x00), valid[1:]...)
			}(),
			expectedErr: shortvec.ErrNonMinimal,
		},
	}
	for _, testDef := range testDefs {
		t.Run(testDef.name, func(t *testing.T) {
			tx, err := solana.DecodeTransaction(testDef.data)
			require.Error(t, err)
			assert.Nil(t, tx)
			if testDef.expectedErr != nil {
				assert.ErrorIs(t, err, testDef.expectedErr)
			}
			if testDef.errContains != "" {
				assert.ErrorContains(t, err, testDef.errContains)
			}
		})
	}
}

func TestDecodeTransactionBase58Invalid(t *testing.T) {
	_, err := solana.DecodeTransactionBase58("0OIl")
	assert.ErrorIs(t, err, common.ErrInvalidBase58)
}

func TestDecodeTransactionAccountListTooLong(t *testing.T) {
	// Hand-built wire bytes with 257 account keys, which the encoder refuses to produce
	numAccounts := solana.MaxAccountIndex + 2
	data := []byte{0x01}
	data = append(data, make([]byte, common.SignatureSize)...)
	data = append(data, 0x01, 0x00, 0x00)
	data, err := shortvec.AppendLength(data, numAccounts)
	require.NoError(t, err)
	for _, account := range testAddresses(numAccounts) {
		data = append(data, account[:]...)
	}
	data = append(data, make([]byte, common.BlockHashSize)...)
	data = append(data, 0x01, 0x00, 0x00, 0x00)
	tx, err := solana.DecodeTransaction(data)
	assert.ErrorIs(t, err, solana.ErrIndexOverflow)
	assert.Nil(t, tx)
}
