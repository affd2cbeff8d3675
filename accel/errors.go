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

// ErrorKind categorizes errors returned by the high-level APIs.
type ErrorKind int

const (
	// KindInvalidArgument covers parameters outside their allowed set,
	// such as a disallowed data type or a non-positive decimation factor.
	KindInvalidArgument ErrorKind = iota

	// KindLength covers buffers that are too short for the requested work.
	KindLength

	// KindUnavailable covers routines gated behind a newer revision.
	KindUnavailable
)

// String returns the kind name.
func (k ErrorKind) String() string {
	switch k {
	case KindInvalidArgument:
		return "InvalidArgument"
	case KindLength:
		return "Length"
	case KindUnavailable:
		return "Unavailable"
	default:
		return "Unknown"
	}
}

// Sentinels for errors.Is. An *Error matches the sentinel of its Kind.
var (
	ErrInvalidArgument = errors.New("accel: invalid argument")
	ErrLength          = errors.New("accel: buffer length")
	ErrUnavailable     = errors.New("accel: unavailable in this revision")
)

// Error is the structured error returned by the high-level APIs.
type Error struct {
	Kind    ErrorKind
	Op      string // operation that failed, e.g. "vdsp.Downsample"
	Message string
	Err     error // underlying cause, if any
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s error: %s: %v", e.Op, e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s error: %s", e.Op, e.Kind, e.Message)
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches the sentinel error for e.Kind.
func (e *Error) Is(target error) bool {
	switch target {
	case ErrInvalidArgument:
		return e.Kind == KindInvalidArgument
	case ErrLength:
		return e.Kind == KindLength
	case ErrUnavailable:
		return e.Kind == KindUnavailable
	}
	return false
}

// NewInvalidArgError creates a KindInvalidArgument error.
func NewInvalidArgError(op, format string, args ...any) error {
	return &Error{Kind: KindInvalidArgument, Op: op, Message: fmt.Sprintf(format, args...)}
}

// NewLengthError creates a KindLength error.
func NewLengthError(op string, got, want int, what string) error {
	return &Error{
		Kind:    KindLength,
		Op:      op,
		Message: fmt.Sprintf("%s has %d elements, need at least %d", what, got, want),
	}
}

// NewUnavailableError creates a KindUnavailable error for a routine that
// needs revision min.
func NewUnavailableError(op string, min Revision) error {
	return &Error{
		Kind:    KindUnavailable,
		Op:      op,
		Message: fmt.Sprintf("requires %s, running as %s", min, SupportedRevision()),
	}
}
