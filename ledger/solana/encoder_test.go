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
	"bytes"
	"fmt"
	"log/slog"
	"sync"
	"testing"

	"github.com/LaroTayoGaming/wallet-core/ledger/common"
	"github.com/LaroTayoGaming/wallet-core/ledger/solana"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncoderDefaults(t *testing.T) {
	e := solana.NewEncoder()
	config := e.Config()
	assert.Equal(t, slog.Default(), config.Logger)
	assert.Zero(t, config.MaxTransactionSize)

	e = solana.NewEncoder(
		solana.WithLogger(nil),
		solana.WithMaxTransactionSize(-1),
	)
	config = e.Config()
	assert.NotNil(t, config.Logger)
	assert.Zero(t, config.MaxTransactionSize)
}

func TestEncoderNegativeMaxTransactionSizeIgnored(t *testing.T) {
	e := solana.NewEncoder(
		solana.WithMaxTransactionSize(169),
		solana.WithMaxTransactionSize(-1),
	)
	assert.Equal(t, 169, e.Config().MaxTransactionSize)
	_, err := e.EncodeTransaction(scenarioTransaction())
	assert.ErrorIs(t, err, solana.ErrTransactionTooLarge)

	e = solana.NewEncoder(
		solana.WithMaxTransactionSize(169),
		solana.WithMaxTransactionSize(0),
	)
	_, err = e.EncodeTransaction(scenarioTransaction())
	assert.NoError(t, err)
}

func TestEncoderLogging(t *testing.T) {
	var logBuf bytes.Buffer
	logger := slog.New(
		slog.NewTextHandler(&logBuf, &slog.HandlerOptions{Level: slog.LevelDebug}),
	)
	e := solana.NewEncoder(solana.WithLogger(logger))
	serialized, err := e.Serialize(scenarioTransaction())
	require.NoError(t, err)
	assert.Equal(t, scenarioTxBase58, serialized)
	assert.Contains(t, logBuf.String(), "encoded transaction")
	assert.Contains(t, logBuf.String(), "size=170")

	logBuf.Reset()
	msg := scenarioMessage()
	msgBytes, err := e.EncodeMessage(&msg)
	require.NoError(t, err)
	assert.Len(t, msgBytes, 105)
	assert.Contains(t, logBuf.String(), "encoded message")
}

func TestEncoderMaxTransactionSize(t *testing.T) {
	tx := scenarioTransaction()
	e := solana.NewEncoder(solana.WithMaxTransactionSize(170))
	_, err := e.EncodeTransaction(tx)
	require.NoError(t, err)

	e = solana.NewEncoder(solana.WithMaxTransactionSize(169))
	serialized, err := e.Serialize(tx)
	require.ErrorIs(t, err, solana.ErrTransactionTooLarge)
	assert.Empty(t, serialized)
	var tooLarge solana.TransactionTooLargeError
	require.ErrorAs(t, err, &tooLarge)
	assert.Equal(t, 170, tooLarge.Size)
	assert.Equal(t, 169, tooLarge.Limit)
}

func TestEncoderPacketDataSize(t *testing.T) {
	tx := scenarioTransaction()
	tx.Message.Instructions[0].Data = make([]byte, solana.PacketDataSize)
	e := solana.NewEncoder(solana.WithMaxTransactionSize(solana.PacketDataSize))
	_, err := e.EncodeTransaction(tx)
	assert.ErrorIs(t, err, solana.ErrTransactionTooLarge)
	// Without a limit the same transaction encodes fine
	_, err = solana.NewEncoder().EncodeTransaction(tx)
	assert.NoError(t, err)
}

func TestEncoderErrorsPropagate(t *testing.T) {
	e := solana.NewEncoder()
	tx := scenarioTransaction()
	tx.Signatures = append(tx.Signatures, common.Signature{})
	_, err := e.EncodeTransaction(tx)
	assert.ErrorIs(t, err, solana.ErrSignatureCountMismatch)

	msg := scenarioMessage()
	msg.AccountKeys = msg.AccountKeys[:1]
	_, err = e.EncodeMessage(&msg)
	assert.ErrorIs(t, err, solana.ErrAddressNotFound)
}

func TestEncoderConcurrent(t *testing.T) {
	e := solana.NewEncoder()
	shared := scenarioTransaction()
	var wg sync.WaitGroup
	errs := make(chan error, 64)
	for i := range 32 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			// Alternate between a shared read-only transaction and a private one
			tx := shared
			if i%2 == 1 {
				tx = scenarioTransaction()
			}
			serialized, err := e.Serialize(tx)
			if err != nil {
				errs <- err
				return
			}
			if serialized != scenarioTxBase58 {
				errs <- fmt.Errorf("goroutine %d got unexpected output %s", i, serialized)
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Error(err)
	}
}

func TestPackageEncoder(t *testing.T) {
	msg := scenarioMessage()
	fromPackage, err := solana.EncodeMessage(&msg)
	require.NoError(t, err)
	fromMethod, err := msg.Encode()
	require.NoError(t, err)
	assert.Equal(t, fromMethod, fromPackage)

	serialized, err := solana.Serialize(scenarioTransaction())
	require.NoError(t, err)
	assert.Equal(t, scenarioTxBase58, serialized)
}
