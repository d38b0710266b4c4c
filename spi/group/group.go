/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package group defines the arithmetic a pairing-friendly curve library must expose to
// build BBS+ key material: two source groups of fixed encoding width and their scalar field.
//
// Implementations own point validity. FromBytes must reject encodings that are off the curve
// or outside the prime order subgroup and must return an error rather than panic; callers
// above this interface only screen for identity elements.
package group

import "io"

// Element is a point of one of the provider's groups.
type Element interface {
	// Bytes returns the canonical encoding, always Group.ElementSize() bytes long.
	Bytes() []byte
	IsIdentity() bool
	// Equal reports false for elements of another group or provider.
	Equal(other Element) bool
}

// Scalar is an element of the scalar field shared by both groups.
type Scalar interface {
	Bytes() []byte
	// Zeroize overwrites the scalar with zero.
	Zeroize()
}

// Group is one source group of the pairing.
type Group interface {
	Name() string
	ElementSize() int
	Generator() Element
	Identity() Element
	Random(rng io.Reader) (Element, error)
	Mul(e Element, s Scalar) (Element, error)
	FromBytes(b []byte) (Element, error)
}

// Field is the scalar field of the groups.
type Field interface {
	ScalarSize() int
	Random(rng io.Reader) (Scalar, error)
	FromBytes(b []byte) (Scalar, error)
}

// Provider binds a concrete curve library.
type Provider interface {
	Name() string
	// G1 is the group of message generators and the blinding base.
	G1() Group
	// G2 is the group holding the commitment to the secret key.
	G2() Group
	Zr() Field
}
