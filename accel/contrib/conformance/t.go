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

package conformance

import (
	"fmt"
	"log/slog"
	stdmath "math"

	"github.com/google/go-cmp/cmp"
)

// T is passed to a case function to record check results.
type T struct {
	name     string
	failures []string
	faults   int // faults caught by ExpectFault
	log      *slog.Logger
}

func newT(name string, log *slog.Logger) *T {
	return &T{name: name, log: log.With("case", name)}
}

// Name returns the full case name.
func (t *T) Name() string {
	return t.name
}

// Errorf records a failure. The case keeps running.
func (t *T) Errorf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	t.failures = append(t.failures, msg)
	t.log.Debug("check failed", "failure", msg)
}

// Logf writes a debug message to the run logger.
func (t *T) Logf(format string, args ...any) {
	t.log.Debug(fmt.Sprintf(format, args...))
}

// Failed reports whether any check has failed.
func (t *T) Failed() bool {
	return len(t.failures) > 0
}

// ExpectEqual checks got == want using cmp.Equal. Floating-point values,
// including slice elements, are compared exactly. On mismatch the failure
// holds a cmp.Diff (-want +got).
func (t *T) ExpectEqual(got, want any, msgAndArgs ...any) bool {
	if cmp.Equal(got, want) {
		return true
	}
	t.Errorf("%snot equal (-want +got):\n%s", prefix(msgAndArgs), cmp.Diff(want, got))
	return false
}

// ExpectTrue checks that cond holds.
func (t *T) ExpectTrue(cond bool, msgAndArgs ...any) bool {
	if cond {
		return true
	}
	t.Errorf("%sexpected true", prefix(msgAndArgs))
	return false
}

// ExpectNaN checks that v is NaN.
func (t *T) ExpectNaN(v float64, msgAndArgs ...any) bool {
	if stdmath.IsNaN(v) {
		return true
	}
	t.Errorf("%sgot %v, want NaN", prefix(msgAndArgs), v)
	return false
}

// ExpectNoError checks that err is nil.
func (t *T) ExpectNoError(err error, msgAndArgs ...any) bool {
	if err == nil {
		return true
	}
	t.Errorf("%sunexpected error: %v", prefix(msgAndArgs), err)
	return false
}

// ExpectFault runs fn, which is expected to abort with a panic. The panic is
// contained and counts as a passing check. If fn returns normally the check
// fails. Only fn is covered: a panic after ExpectFault returns crashes the
// case as usual.
func (t *T) ExpectFault(fn func(), msgAndArgs ...any) (faulted bool) {
	defer func() {
		if r := recover(); r != nil {
			faulted = true
			t.faults++
			t.log.Debug("expected fault", "fault", fmt.Sprint(r))
		}
	}()
	fn()
	t.Errorf("%sexpected a fatal fault, operation returned normally", prefix(msgAndArgs))
	return false
}

func prefix(msgAndArgs []any) string {
	if len(msgAndArgs) == 0 {
		return ""
	}
	if format, ok := msgAndArgs[0].(string); ok {
		return fmt.Sprintf(format, msgAndArgs[1:]...) + ": "
	}
	return fmt.Sprint(msgAndArgs...) + ": "
}
