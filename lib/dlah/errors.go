// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package dlah

import (
	"errors"
	"fmt"
)

// Code identifies the kind of failure an [Error] represents. Each code
// carries a distinct recovery posture: callers can branch on it with
// [IsInvalidConfig] and friends instead of matching on message text.
type Code int

const (
	// CodeInvalidConfig means a [Config] field is outside its documented
	// range. Raised by [Config.Validate] and by [Generate] before any
	// hashing work begins.
	CodeInvalidConfig Code = iota

	// CodeInvalidInput means the input exceeds an implementation maximum.
	// Raised only by [Generate].
	CodeInvalidInput

	// CodeBadMagic means the first byte of a serialized fingerprint is
	// not the fixed magic value. Raised only by [Deserialize].
	CodeBadMagic

	// CodeUnsupportedVersion means the second byte of a serialized
	// fingerprint names a version this build does not support. Raised
	// only by [Deserialize].
	CodeUnsupportedVersion

	// CodeTruncatedStruct means the buffer is too short for the fixed
	// header or the bloom section, or the declared structural-data length
	// exceeds what remains in the buffer. Raised only by [Deserialize].
	CodeTruncatedStruct
)

// String returns a short, stable, lowercase name for the code, suitable
// for log fields and error messages.
func (c Code) String() string {
	switch c {
	case CodeInvalidConfig:
		return "invalid_config"
	case CodeInvalidInput:
		return "invalid_input"
	case CodeBadMagic:
		return "bad_magic"
	case CodeUnsupportedVersion:
		return "unsupported_version"
	case CodeTruncatedStruct:
		return "truncated_struct"
	default:
		return "unknown"
	}
}

// Error is the single structured error type raised anywhere in this
// package. Callers that need to branch on failure kind should use
// errors.As to recover the Code, or one of the Is* helpers below.
type Error struct {
	Code    Code
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("dlah: %s: %s", e.Code, e.Message)
}

func newError(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// IsInvalidConfig reports whether err is a [*Error] with CodeInvalidConfig.
func IsInvalidConfig(err error) bool { return hasCode(err, CodeInvalidConfig) }

// IsInvalidInput reports whether err is a [*Error] with CodeInvalidInput.
func IsInvalidInput(err error) bool { return hasCode(err, CodeInvalidInput) }

// IsBadMagic reports whether err is a [*Error] with CodeBadMagic.
func IsBadMagic(err error) bool { return hasCode(err, CodeBadMagic) }

// IsUnsupportedVersion reports whether err is a [*Error] with
// CodeUnsupportedVersion.
func IsUnsupportedVersion(err error) bool { return hasCode(err, CodeUnsupportedVersion) }

// IsTruncatedStruct reports whether err is a [*Error] with
// CodeTruncatedStruct.
func IsTruncatedStruct(err error) bool { return hasCode(err, CodeTruncatedStruct) }

func hasCode(err error, code Code) bool {
	var derr *Error
	if errors.As(err, &derr) {
		return derr.Code == code
	}
	return false
}
