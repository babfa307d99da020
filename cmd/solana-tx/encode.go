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
	"encoding/hex"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/LaroTayoGaming/wallet-core/cbor"
	"github.com/LaroTayoGaming/wallet-core/ledger/common"
	"github.com/LaroTayoGaming/wallet-core/ledger/solana"
)

type encodeFlags struct {
	flagset *flag.FlagSet
	txFile  string
	format  string
	maxSize int
	output  string
}

func newEncodeFlags() *encodeFlags {
	f := &encodeFlags{
		flagset: flag.NewFlagSet("encode", flag.ContinueOnError),
	}
	f.flagset.StringVar(
		&f.txFile,
		"tx-file",
		"",
		"path to the transaction description file",
	)
	f.flagset.StringVar(
		&f.format,
		"format",
		"json",
		"format of the transaction file (json or cbor)",
	)
	f.flagset.IntVar(
		&f.maxSize,
		"max-size",
		solana.PacketDataSize,
		"maximum encoded transaction size in bytes (0 disables the check)",
	)
	f.flagset.StringVar(
		&f.output,
		"output",
		"base58",
		"output encoding (base58 or hex)",
	)
	return f
}

func runEncode(args []string, logger *slog.Logger, out io.Writer) error {
	f := newEncodeFlags()
	if err := f.flagset.Parse(args); err != nil {
		return fmt.Errorf("failed to parse subcommand args: %w", err)
	}
	if f.txFile == "" {
		return errors.New("you must specify -tx-file")
	}
	if f.output != "base58" && f.output != "hex" {
		return fmt.Errorf("unknown output encoding: %s", f.output)
	}
	txData, err := os.ReadFile(f.txFile)
	if err != nil {
		return fmt.Errorf("failed to load transaction file: %w", err)
	}
	tx, err := parseTransaction(txData, f.format)
	if err != nil {
		return err
	}
	if err := tx.Message.Validate(); err != nil {
		return fmt.Errorf("invalid message: %w", err)
	}
	for _, signer := range tx.Message.Signers() {
		if !signer.IsOnCurve() {
			logger.Warn(
				"signer key is not a valid ed25519 public key",
				"address",
				signer.String(),
			)
		}
	}
	e := solana.NewEncoder(
		solana.WithLogger(logger),
		solana.WithMaxTransactionSize(f.maxSize),
	)
	txBytes, err := e.EncodeTransaction(tx)
	if err != nil {
		return fmt.Errorf("failed to encode transaction: %w", err)
	}
	if f.output == "hex" {
		_, err = fmt.Fprintln(out, hex.EncodeToString(txBytes))
	} else {
		_, err = fmt.Fprintln(out, common.EncodeBase58(txBytes))
	}
	return err
}

func parseTransaction(data []byte, format string) (*solana.Transaction, error) {
	tx := &solana.Transaction{}
	switch format {
	case "json":
		if err := json.Unmarshal(data, tx); err != nil {
			return nil, fmt.Errorf("failed to parse transaction file: %w", err)
		}
	case "cbor":
		if err := cbor.DecodeFull(data, tx); err != nil {
			return nil, fmt.Errorf("failed to parse transaction file: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown transaction file format: %s", format)
	}
	return tx, nil
}
