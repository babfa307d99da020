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

import (
	"errors"
	"fmt"
)

var ErrInvalidBase58 = errors.New("invalid base58 string")

// ErrInvalidLength is matched by every InvalidLengthError via errors.Is
var ErrInvalidLength = errors.New("invalid length")

// InvalidLengthError indicates raw or decoded bytes of the wrong size for a fixed-size type
type InvalidLengthError struct {
	Type     string
	Expected int
	Actual   int
}

func (e InvalidLengthError) Error() string {
	return fmt.Sprintf(
		"invalid %s length: expected %d bytes, got %d",
		e.Type,
		e.Expected,
		e.Actual,
	)
}

func (InvalidLengthError) Is(target error) bool {
	return target == ErrInvalidLength
}
