/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package bbskeys

import (
	"io"

	"github.com/hyperledger/aries-bbskeys/spi/group"
)

// Encoding selects the binary layout written and read by a KeyMaterial.
type Encoding int

const (
	// EncodingLegacy is the positional layout w || h0 || len(h) || h with no header.
	EncodingLegacy Encoding = iota
	// EncodingVersioned prefixes the legacy layout with the magic "bbs" and a version byte.
	EncodingVersioned
)

func (e Encoding) String() string {
	switch e {
	case EncodingLegacy:
		return "legacy"
	case EncodingVersioned:
		return "versioned"
	default:
		return "unknown"
	}
}

type options struct {
	rng        io.Reader
	generator  group.Element
	encoding   Encoding
	cacheSize  int
	cacheIsSet bool
}

// Opt configures a KeyMaterial.
type Opt func(opts *options)

// WithRandom sets the randomness source for Generate. It must be safe for concurrent use
// when the KeyMaterial is shared. Defaults to crypto/rand.Reader.
func WithRandom(rng io.Reader) Opt {
	return func(opts *options) {
		opts.rng = rng
	}
}

// WithCommitmentGenerator sets the G2 base used to commit to the secret key (w = g * sk).
// It is a setup parameter: every party signing or verifying with the keys must agree on it.
// Defaults to the provider's G2 generator.
func WithCommitmentGenerator(g group.Element) Opt {
	return func(opts *options) {
		opts.generator = g
	}
}

// WithEncoding sets the binary layout, EncodingLegacy by default.
func WithEncoding(e Encoding) Opt {
	return func(opts *options) {
		opts.encoding = e
	}
}

// WithDecodeCache keeps up to size parsed public keys in an LRU cache keyed by their encoding.
func WithDecodeCache(size int) Opt {
	return func(opts *options) {
		opts.cacheSize = size
		opts.cacheIsSet = true
	}
}
