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

// Package cbor provides CBOR encoding/decoding utilities.
//
// This package wraps github.com/fxamacker/cbor/v2 with a cached, deterministic
// encoding mode (core deterministic map key ordering) and a strict decoding mode
// that rejects unknown struct fields and duplicate map keys.
//
// It is used for the binary form of transaction description files and for the
// CBOR representation of the fixed-size ledger primitives, which always encode
// as full-length bytestrings.
package cbor
