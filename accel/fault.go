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
	"errors"
	"fmt"
)

// Fault is the panic payload raised when a caller breaks a precondition that
// the routine does not report through an error return.
type Fault struct {
	Op      string
	Message string
	Cause   error // the validation error that triggered the fault, if any
}

// Error implements the error interface so a recovered Fault can be handled
// like any other error.
func (f *Fault) Error() string {
	return fmt.Sprintf("fatal fault in %s: %s", f.Op, f.Message)
}

// Unwrap returns the validation error that triggered the fault.
func (f *Fault) Unwrap() error {
	return f.Cause
}

// Faultf panics with a *Fault.
func Faultf(op, format string, args ...any) {
	f := &Fault{Op: op, Message: fmt.Sprintf(format, args...)}
	logger().Debug("fault", "op", op, "message", f.Message)
	panic(f)
}

// FaultOn panics with a *Fault wrapping err when err is non-nil.
func FaultOn(op string, err error) {
	if err == nil {
		return
	}
	var e *Error
	msg := err.Error()
	if errors.As(err, &e) {
		msg = e.Message
	}
	logger().Debug("fault", "op", op, "message", msg)
	panic(&Fault{Op: op, Message: msg, Cause: err})
}

// CatchFault runs fn and returns the *Fault it panicked with, or nil if fn
// returned normally. Panics that do not carry a *Fault are re-raised.
func CatchFault(fn func()) (fault *Fault) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		if f, ok := r.(*Fault); ok {
			fault = f
			return
		}
		panic(r)
	}()
	fn()
	return nil
}
