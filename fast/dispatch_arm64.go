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

//go:build arm64

package fast

import "golang.org/x/sys/cpu"

// detectFMA reports scalar FMADD support.
//
// FMADD is part of the ARMv8-A base floating-point unit. We still check the
// cpu package for consistency with the feature bits it reports.
func detectFMA() bool {
	return cpu.ARM64.HasFP || cpu.ARM64.HasASIMD
}
