/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package bbskeys

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedKey is returned by PublicKey.Validate when a key component is an identity element.
	ErrMalformedKey = errors.New("malformed public key")

	// ErrTruncated reports input that ends before a field boundary or holds fewer generators
	// than its length prefix claims.
	ErrTruncated = errors.New("truncated input")

	// ErrTrailingBytes reports input that continues past the last generator.
	ErrTrailingBytes = errors.New("unexpected trailing bytes")

	// ErrUnknownFormat reports a versioned encoding with an unknown magic or version.
	ErrUnknownFormat = errors.New("unknown public key format")

	// ErrInvalidMessageCount is returned when a negative message count is requested.
	ErrInvalidMessageCount = errors.New("invalid message count")

	// ErrInvalidSeed is returned by GenerateFromSeed for seeds shorter than 32 bytes.
	ErrInvalidSeed = errors.New("invalid size of seed")
)

// DecodeError is returned by ParsePublicKey. Err is one of ErrTruncated, ErrTrailingBytes,
// ErrUnknownFormat or the error returned by the group provider, untouched.
type DecodeError struct {
	Field  string
	Offset int
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode public key %s at offset %d: %v", e.Field, e.Offset, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
