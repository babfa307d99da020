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
	"encoding/hex"
	"fmt"

	"github.com/LaroTayoGaming/wallet-core/ledger/common"
	"github.com/gagliardetto/treeout"
)

// String renders the transaction as a human readable tree
func (tx *Transaction) String() string {
	tree := treeout.New("Transaction")
	tx.EncodeToTree(tree)
	return tree.String()
}

// EncodeToTree adds the signatures and message of the transaction to parent
func (tx *Transaction) EncodeToTree(parent treeout.Branches) {
	parent.Child(fmt.Sprintf("Signatures[len=%d]", len(tx.Signatures))).
		ParentFunc(func(sigBranch treeout.Branches) {
			for _, sig := range tx.Signatures {
				sigBranch.Child(sig.String())
			}
		})
	parent.Child("Message").ParentFunc(func(msgBranch treeout.Branches) {
		tx.Message.EncodeToTree(msgBranch)
	})
}

// EncodeToTree adds the header, account keys, blockhash and instructions of the message to parent
func (m *Message) EncodeToTree(parent treeout.Branches) {
	parent.Child("Header").ParentFunc(func(headerBranch treeout.Branches) {
		headerBranch.Child(
			fmt.Sprintf("NumRequiredSignatures: %d", m.Header.NumRequiredSignatures),
		)
		headerBranch.Child(
			fmt.Sprintf("NumReadonlySignedAccounts: %d", m.Header.NumCreditOnlySignedAccounts),
		)
		headerBranch.Child(
			fmt.Sprintf("NumReadonlyUnsignedAccounts: %d", m.Header.NumCreditOnlyUnsignedAccounts),
		)
	})
	parent.Child(fmt.Sprintf("AccountKeys[len=%d]", len(m.AccountKeys))).
		ParentFunc(func(keysBranch treeout.Branches) {
			for _, key := range m.AccountKeys {
				keysBranch.Child(
					fmt.Sprintf("%s %s", key, accountFlags(m, key)),
				)
			}
		})
	parent.Child(fmt.Sprintf("RecentBlockhash: %s", m.RecentBlockhash))
	parent.Child(fmt.Sprintf("Instructions[len=%d]", len(m.Instructions))).
		ParentFunc(func(ixsBranch treeout.Branches) {
			for i, ix := range m.Instructions {
				ixsBranch.Child(fmt.Sprintf("Instruction %d", i)).
					ParentFunc(func(ixBranch treeout.Branches) {
						ixBranch.Child(fmt.Sprintf("Program: %s", ix.ProgramID))
						ixBranch.Child(fmt.Sprintf("Accounts[len=%d]", len(ix.Accounts))).
							ParentFunc(func(accountsBranch treeout.Branches) {
								for _, account := range ix.Accounts {
									accountsBranch.Child(account.String())
								}
							})
						ixBranch.Child(
							fmt.Sprintf("Data[len=%d]: %s", len(ix.Data), hex.EncodeToString(ix.Data)),
						)
					})
			}
		})
}

func accountFlags(m *Message, account common.Address) string {
	flags := []byte("[--]")
	if m.IsSigner(account) {
		flags[1] = 'S'
	}
	if m.IsWritable(account) {
		flags[2] = 'W'
	}
	return string(flags)
}
