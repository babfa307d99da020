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

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/LaroTayoGaming/wallet-core/ledger/solana"
)

type decodeFlags struct {
	flagset *flag.FlagSet
	tx      string
	verify  bool
}

func newDecodeFlags() *decodeFlags {
	f := &decodeFlags{
		flagset: flag.NewFlagSet("decode", flag.ContinueOnError),
	}
	f.flagset.StringVar(&f.tx, "tx", "", "base58-encoded transaction")
	f.flagset.BoolVar(
		&f.verify,
		"verify",
		false,
		"verify the transaction signatures",
	)
	return f
}

func runDecode(args []string, out io.Writer) error {
	f := newDecodeFlags()
	if err := f.flagset.Parse(args); err != nil {
		return fmt.Errorf("failed to parse subcommand args: %w", err)
	}
	if f.tx == "" {
		return errors.New("you must specify -tx")
	}
	tx, err := solana.DecodeTransactionBase58(f.tx)
	if err != nil {
		return fmt.Errorf("failed to decode transaction: %w", err)
	}
	if f.verify {
		if err := tx.VerifySignatures(); err != nil {
			return err
		}
	}
	if id, err := tx.ID(); err == nil {
		fmt.Fprintf(out, "ID: %s\n", id)
	}
	_, err = fmt.Fprint(out, tx.String())
	return err
}
