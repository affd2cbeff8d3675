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

// Package conformance is a small named-case test harness for checking that
// the API generations of the accel packages agree.
//
// A Suite holds named cases, optionally grouped behind a minimum
// accel.Revision. Run executes every case in registration order on the
// calling goroutine and returns a Report with one Result per case:
//
//	s := conformance.NewSuite("Accelerate")
//	s.Group(accel.Revision2, func(g *conformance.Group) {
//	    g.Test("vDSP/Downsample", func(t *conformance.T) {
//	        t.ExpectEqual(highLevel(), legacy())
//	    })
//	})
//	report := s.Run()
//
// # Expected Faults
//
// Some cases pass only if an operation aborts. T.ExpectFault runs exactly
// one function and passes if it panics; a normal return is a failure. A
// panic anywhere else in a case marks that case Crashed and the suite moves
// on to the next case.
//
// AccelerateSuite returns the full case set for the bnns and vdsp packages.
package conformance
