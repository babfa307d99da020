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

package bench

import (
	"testing"

	"github.com/LaroTayoGaming/wallet-core/ledger/solana"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadTxFixture(t *testing.T) {
	prevSize := 0
	for _, name := range FixtureNames() {
		t.Run(name, func(t *testing.T) {
			fixture, err := LoadTxFixture(name)
			require.NoError(t, err)
			require.NotNil(t, fixture)
			assert.Equal(t, name, fixture.Name)
			require.NoError(t, fixture.Tx.Message.Validate())
			assert.Greater(t, len(fixture.Bytes), prevSize)
			prevSize = len(fixture.Bytes)

			decoded, err := solana.DecodeTransactionBase58(fixture.Base58)
			require.NoError(t, err)
			assert.Equal(t, fixture.Tx, decoded)
		})
	}
}

func TestTransferFixtureFitsPacket(t *testing.T) {
	fixture := MustLoadTxFixture("transfer")
	assert.LessOrEqual(t, len(fixture.Bytes), solana.PacketDataSize)
}

func TestLoadTxFixture_Unknown(t *testing.T) {
	_, err := LoadTxFixture("unknown")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown fixture")
}

func TestMustLoadTxFixture_Panics(t *testing.T) {
	assert.Panics(t, func() {
		MustLoadTxFixture("unknown")
	})
}
