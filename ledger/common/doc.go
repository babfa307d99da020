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

// Package common provides the fixed-size ledger primitives shared by the
// transaction encoder.
//
// # Key Types
//
//   - Address: 32-byte ed25519 public key (accounts and programs)
//   - Signature: 64-byte ed25519 signature
//   - BlockHash: 32-byte recent block reference
//
// All three are plain byte arrays compared by value. Their text form is
// base58 with the bitcoin alphabet, which is also what JSON uses. In CBOR they
// are always full-length bytestrings, and decoding rejects any other length.
package common
