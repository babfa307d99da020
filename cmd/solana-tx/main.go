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
	"fmt"
	"os"

	"github.com/LaroTayoGaming/wallet-core/cmd/common"
)

func main() {
	f := common.NewGlobalFlags()
	f.Parse()
	logger := f.NewLogger(os.Stderr)

	if len(f.Flagset.Args()) == 0 {
		fmt.Printf("You must specify a subcommand (encode or decode)\n")
		os.Exit(1)
	}
	var err error
	switch f.Flagset.Arg(0) {
	case "encode":
		err = runEncode(f.Flagset.Args()[1:], logger, os.Stdout)
	case "decode":
		err = runDecode(f.Flagset.Args()[1:], os.Stdout)
	default:
		fmt.Printf("Unknown subcommand: %s\n", f.Flagset.Arg(0))
		os.Exit(1)
	}
	if err != nil {
		fmt.Printf("ERROR: %s\n", err)
		os.Exit(1)
	}
}
