/*
BSD License

Copyright (c) 2024, the shlesha-go contributors

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of this software nor the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.
*/

// Package core holds types shared across every engine package, chiefly
// the error-kind taxonomy that every fallible operation in shlesha-go
// returns through.
package core

import (
	"errors"
	"fmt"
)

// Kind identifies one of the exhaustive error kinds a caller may need to
// branch on.
type Kind int

// The error kinds of the transliteration engine. The matching sentinel
// below carries a short description of each kind's condition.
const (
	NoError Kind = iota
	KindUnknownScript
	KindSchemaParse
	KindSchemaInvalid
	KindAmbiguousCanonical
	KindHubKeyUnknown
	KindWrongHubSide
	KindMalformedInput
)

func (k Kind) String() string {
	switch k {
	case NoError:
		return "ok"
	case KindUnknownScript:
		return "unknown-script"
	case KindSchemaParse:
		return "schema-parse"
	case KindSchemaInvalid:
		return "schema-invalid"
	case KindAmbiguousCanonical:
		return "ambiguous-canonical"
	case KindHubKeyUnknown:
		return "hub-key-unknown"
	case KindWrongHubSide:
		return "wrong-hub-side"
	case KindMalformedInput:
		return "malformed-input"
	}
	return "undefined-error"
}

// AppError is an error with an associated Kind and a caller-facing
// message, in addition to the wrapped cause.
type AppError interface {
	error
	ErrorKind() Kind
	UserMessage() string
}

type engineError struct {
	cause error
	kind  Kind
	msg   string
}

func (e engineError) Unwrap() error { return e.cause }

func (e engineError) Error() string {
	if e.cause == nil {
		return fmt.Sprintf("[%s] %s", e.kind, e.msg)
	}
	return fmt.Sprintf("[%s] %s: %v", e.kind, e.msg, e.cause)
}

func (e engineError) ErrorKind() Kind { return e.kind }

func (e engineError) UserMessage() string { return e.msg }

var _ AppError = engineError{}

// Sentinels usable with errors.Is for callers that only care whether an
// error is of a given kind, not its message or cause.
var (
	ErrUnknownScript     = engineError{kind: KindUnknownScript, msg: "script not registered"}
	ErrSchemaParse       = engineError{kind: KindSchemaParse, msg: "malformed schema text"}
	ErrSchemaInvalid     = engineError{kind: KindSchemaInvalid, msg: "schema violates an invariant"}
	ErrAmbiguousCanonical = engineError{kind: KindAmbiguousCanonical, msg: "two reverse entries collide with no preference"}
	ErrHubKeyUnknown     = engineError{kind: KindHubKeyUnknown, msg: "canonical value has no hub-side interpretation"}
	ErrWrongHubSide      = engineError{kind: KindWrongHubSide, msg: "hub variant does not match converter's hub side"}
	ErrMalformedInput    = engineError{kind: KindMalformedInput, msg: "orthographically impossible input"}
)

func (e engineError) Is(target error) bool {
	t, ok := target.(engineError)
	if !ok {
		return false
	}
	return e.kind == t.kind
}

// Wrap wraps cause in an engineError of the given kind, with a formatted
// user message. If cause is nil, a sentinel error for kind is
// synthesized so callers always get a non-nil error chain.
func Wrap(kind Kind, cause error, format string, v ...interface{}) error {
	if cause == nil {
		cause = errors.New(kind.String())
	}
	return engineError{cause: cause, kind: kind, msg: fmt.Sprintf(format, v...)}
}

// New creates an error of the given kind carrying only a message, no
// wrapped cause.
func New(kind Kind, format string, v ...interface{}) error {
	return engineError{kind: kind, msg: fmt.Sprintf(format, v...)}
}

// KindOf returns the Kind carried by err, NoError if err is nil, and
// Kind(-1) if err does not carry a Kind.
func KindOf(err error) Kind {
	if err == nil {
		return NoError
	}
	var ae AppError
	if errors.As(err, &ae) {
		return ae.ErrorKind()
	}
	return Kind(-1)
}

// UserMessage extracts the caller-facing message from err, falling back
// to err.Error() if err does not carry one.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	var ae AppError
	if errors.As(err, &ae) {
		return ae.UserMessage()
	}
	return err.Error()
}
