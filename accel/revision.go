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

package accel

import (
	"os"
	"strconv"
	"sync/atomic"
)

// Revision identifies a generation of the public API. Routines introduced
// in a later revision are only reported as available when the running
// library (or the emulated platform) is at least that revision.
type Revision int

const (
	// Revision1 introduced the bnns descriptors and activations.
	Revision1 Revision = 1 + iota

	// Revision2 introduced the high-level vdsp filter and downsample
	// routines alongside their legacy forms.
	Revision2
)

// CurrentRevision is the newest revision implemented by this module.
const CurrentRevision = Revision2

// RevisionEnv is the environment variable that caps the reported revision.
const RevisionEnv = "ACCEL_REVISION"

// SupportedRevision returns the revision this process should behave as.
// A revision pinned with SetSupportedRevision wins. Otherwise it is
// CurrentRevision unless ACCEL_REVISION holds a lower non-negative integer;
// values above CurrentRevision or unparsable values are ignored.
func SupportedRevision() Revision {
	if p := pinnedRevision.Load(); p != nil {
		return *p
	}
	return envRevision()
}

// Available reports whether routines introduced in min can be used.
func Available(min Revision) bool {
	return SupportedRevision() >= min
}

var pinnedRevision atomic.Pointer[Revision]

// SetSupportedRevision pins the revision reported by SupportedRevision and
// checked by every gated routine, overriding ACCEL_REVISION. It returns a
// function that restores the previous setting. The pin is process-wide.
func SetSupportedRevision(rev Revision) (restore func()) {
	prev := pinnedRevision.Swap(&rev)
	return func() { pinnedRevision.Store(prev) }
}

type parsedRevision struct {
	raw string
	rev Revision
}

// lastEnvRevision caches the parse of the last ACCEL_REVISION value seen, so
// a bad value is reported once rather than on every gated call.
var lastEnvRevision atomic.Pointer[parsedRevision]

func envRevision() Revision {
	val := os.Getenv(RevisionEnv)
	if p := lastEnvRevision.Load(); p != nil && p.raw == val {
		return p.rev
	}
	rev := parseRevision(val)
	lastEnvRevision.Store(&parsedRevision{raw: val, rev: rev})
	return rev
}

func parseRevision(val string) Revision {
	if val == "" {
		return CurrentRevision
	}
	n, err := strconv.Atoi(val)
	if err != nil || n < 0 || Revision(n) > CurrentRevision {
		logger().Warn("ignoring revision override", "env", RevisionEnv, "value", val)
		return CurrentRevision
	}
	return Revision(n)
}

// String returns the revision in "rN" form.
func (r Revision) String() string {
	return "r" + strconv.Itoa(int(r))
}
