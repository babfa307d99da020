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

package cbor_test

import (
	"encoding/hex"
	"reflect"
	"testing"

	"github.com/LaroTayoGaming/wallet-core/cbor"
	"github.com/stretchr/testify/assert"
)

type decodeTestDefinition struct {
	CborHex   string
	Object    any
	BytesRead int
}

var decodeTests = []decodeTestDefinition{
	// Simple list of numbers
	{
		CborHex: "83010203",
		Object:  []any{uint64(1), uint64(2), uint64(3)},
	},
	// Multiple CBOR objects
	{
		CborHex:   "81018102",
		Object:    []any{uint64(1)},
		BytesRead: 2,
	},
}

func TestDecode(t *testing.T) {
	for _, test := range decodeTests {
		cborData, err := hex.DecodeString(test.CborHex)
		if err != nil {
			t.Fatalf("failed to decode CBOR hex: %s", err)
		}
		var dest any
		bytesRead, err := cbor.Decode(cborData, &dest)
		if err != nil {
			t.Fatalf("failed to decode CBOR: %s", err)
		}
		if test.BytesRead > 0 {
			if bytesRead != test.BytesRead {
				t.Fatalf("expected to read %d bytes, read %d instead", test.BytesRead, bytesRead)
			}
		}
		if !reflect.DeepEqual(dest, test.Object) {
			t.Fatalf(
				"CBOR did not decode to expected object\n  got: %#v\n  wanted: %#v",
				dest,
				test.Object,
			)
		}
	}
}

func TestDecodeFullTrailingData(t *testing.T) {
	var dest []uint64
	err := cbor.DecodeFull([]byte{0x81, 0x01, 0x81, 0x02}, &dest)
	assert.ErrorContains(t, err, "2 trailing bytes")
	assert.NoError(t, cbor.DecodeFull([]byte{0x81, 0x01}, &dest))
	assert.Equal(t, []uint64{1}, dest)
}

func TestDecodeRejectsUnknownFields(t *testing.T) {
	type tmpObj struct {
		A uint64 `cbor:"a"`
	}
	var dest tmpObj
	// {"a": 1, "z": 2}
	_, err := cbor.Decode([]byte{0xa2, 0x61, 0x61, 0x01, 0x61, 0x7a, 0x02}, &dest)
	assert.Error(t, err)
}

func TestDecodeRejectsDuplicateKeys(t *testing.T) {
	var dest map[string]uint64
	// {"a": 1, "a": 2}
	_, err := cbor.Decode([]byte{0xa2, 0x61, 0x61, 0x01, 0x61, 0x61, 0x02}, &dest)
	assert.Error(t, err)
}
