/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package kilic binds github.com/kilic/bls12-381 to the group.Provider interface.
//
// kilic group handles keep scratch buffers, so a fresh handle is created per operation and
// the Provider stays safe for concurrent use.
package kilic

import (
	"errors"
	"fmt"
	"io"

	bls12381 "github.com/kilic/bls12-381"

	"github.com/hyperledger/aries-bbskeys/spi/group"
)

const (
	frSize                 = 32
	g1CompressedSize       = 48
	g1UncompressedSize     = 96
	g2CompressedSize       = 96
	g2UncompressedSize     = 192
	providerName           = "kilic/bls12-381"
	errNotInSubgroupFormat = "%s point is not in the correct subgroup"
)

var (
	errForeignElement = errors.New("element does not belong to this group")
	errForeignScalar  = errors.New("scalar does not belong to this field")
)

// Provider implements group.Provider over BLS12-381.
type Provider struct {
	g1 *g1Group
	g2 *g2Group
	zr *field
}

// Opt configures a Provider.
type Opt func(opts *options)

type options struct {
	compressed bool
}

// WithCompression selects compressed (default) or uncompressed point encodings.
func WithCompression(compressed bool) Opt {
	return func(opts *options) {
		opts.compressed = compressed
	}
}

// New creates a Provider.
func New(opts ...Opt) *Provider {
	o := &options{compressed: true}

	for _, opt := range opts {
		opt(o)
	}

	return &Provider{
		g1: &g1Group{compressed: o.compressed},
		g2: &g2Group{compressed: o.compressed},
		zr: &field{},
	}
}

// Name returns the provider name.
func (p *Provider) Name() string {
	return providerName
}

// G1 returns Group-A.
func (p *Provider) G1() group.Group {
	return p.g1
}

// G2 returns Group-B.
func (p *Provider) G2() group.Group {
	return p.g2
}

// Zr returns the scalar field.
func (p *Provider) Zr() group.Field {
	return p.zr
}

type field struct{}

func (f *field) ScalarSize() int {
	return frSize
}

func (f *field) Random(rng io.Reader) (group.Scalar, error) {
	fr, err := bls12381.NewFr().Rand(rng)
	if err != nil {
		return nil, fmt.Errorf("random scalar: %w", err)
	}

	return &scalar{fr: fr}, nil
}

func (f *field) FromBytes(b []byte) (group.Scalar, error) {
	if len(b) != frSize {
		return nil, fmt.Errorf("invalid scalar size %d, expected %d", len(b), frSize)
	}

	return &scalar{fr: bls12381.NewFr().FromBytes(b)}, nil
}

type scalar struct {
	fr *bls12381.Fr
}

func (s *scalar) Bytes() []byte {
	return s.fr.ToBytes()
}

func (s *scalar) Zeroize() {
	*s.fr = bls12381.Fr{}
}

func toFr(s group.Scalar) (*bls12381.Fr, error) {
	sc, ok := s.(*scalar)
	if !ok {
		return nil, errForeignScalar
	}

	return sc.fr, nil
}
