// Copyright 2025 go-fastfloat Authors
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

package fast

import (
	"os"
	"strconv"
)

// hasFMA is the detected hardware fused multiply-add support.
// Set by init() from detectFMA in dispatch_*.go files.
var hasFMA bool

// contracting reports whether MulAdd fuses. Set once by init() and never
// written afterwards.
var contracting bool

func init() {
	hasFMA = detectFMA()
	contracting = hasFMA && !NoFMAEnv()
}

// HasFMA reports whether the CPU has a fused multiply-add instruction.
func HasFMA() bool {
	return hasFMA
}

// Contracting reports whether MulAdd uses a fused multiply-add.
// It is HasFMA unless FASTFLOAT_NO_FMA disables contraction.
func Contracting() bool {
	return contracting
}

// NoFMAEnv checks if the FASTFLOAT_NO_FMA environment variable is set.
// When set, MulAdd computes the product and sum separately regardless of
// CPU capabilities. This is useful for testing and debugging.
func NoFMAEnv() bool {
	val := os.Getenv("FASTFLOAT_NO_FMA")
	if val == "" {
		return false
	}
	// Any non-empty value is considered true, but also parse as bool
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}
