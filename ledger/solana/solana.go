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

// Package solana encodes legacy Solana transactions for broadcast.
//
// A Transaction holds already-computed signatures and a Message. The message
// references accounts by address; encoding compiles each instruction into
// one-byte indices into the message's account list and lays everything out in
// the wire format:
//
//	shortvec(len(signatures)) || signatures
//	header (3 bytes) || shortvec(len(accounts)) || accounts
//	recent blockhash
//	shortvec(len(instructions)) || compiled instructions
//
// The serialized bytes are rendered as base58 (bitcoin alphabet) for transport.
// Encoding never mutates its input, and the same input always produces the same
// output.
package solana

const (
	// PacketDataSize is the largest serialized transaction the network accepts
	PacketDataSize = 1232

	// MaxAccountIndex is the highest account position a compiled instruction can reference
	MaxAccountIndex = 0xff

	headerSize = 3
)
