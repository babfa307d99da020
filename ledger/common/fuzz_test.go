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

import "testing"

func FuzzNewAddressFromBase58(f *testing.F) {
	f.Add("11111111111111111111111111111111")
	f.Add("TokenkegQfeZyiNwAJbNbGKPFXCWuBvf9Ss623VQ5DA")
	f.Add("")
	f.Add("0OIl")

	f.Fuzz(func(t *testing.T, s string) {
		addr, err := NewAddressFromBase58(s)
		if err != nil {
			return
		}
		reparsed, err := NewAddressFromBase58(addr.String())
		if err != nil {
			t.Fatalf("failed to parse %s: %s", addr, err)
		}
		if reparsed != addr {
			t.Fatalf("round trip of %s produced %s", addr, reparsed)
		}
	})
}
