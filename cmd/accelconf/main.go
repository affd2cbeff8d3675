// Copyright 2025 go-accel Authors
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

// Command accelconf runs the accel conformance suite and reports the result
// of every case.
//
// Usage:
//
//	accelconf run                          # all cases, text report
//	accelconf run --revision 1             # behave as revision 1, vdsp cases skipped
//	accelconf run --run 'vDSP/' --format json
//	accelconf list                         # case names and minimum revisions
//	accelconf info                         # dispatch level and revision
//
// The exit status is 1 if any case failed or crashed.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
