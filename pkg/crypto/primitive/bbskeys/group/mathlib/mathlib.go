/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package mathlib binds github.com/IBM/mathlib curves to the group.Provider interface.
// The default curve is BLS12_381_BBS with compressed point encodings.
package mathlib

import (
	"errors"
	"fmt"
	"io"

	ml "github.com/IBM/mathlib"

	"github.com/hyperledger/aries-bbskeys/spi/group"
)

var (
	errForeignElement = errors.New("element does not belong to this group")
	errForeignScalar  = errors.New("scalar does not belong to this field")
)

// Provider implements group.Provider over an IBM/mathlib curve.
type Provider struct {
	curveID    ml.CurveID
	curve      *ml.Curve
	compressed bool

	g1 *g1Group
	g2 *g2Group
	zr *field
}

// Opt configures a Provider.
type Opt func(p *Provider)

// WithCurve selects the mathlib curve.
func WithCurve(id ml.CurveID) Opt {
	return func(p *Provider) {
		p.curveID = id
	}
}

// WithCompression selects compressed (default) or uncompressed point encodings.
func WithCompression(compressed bool) Opt {
	return func(p *Provider) {
		p.compressed = compressed
	}
}

// New creates a Provider.
func New(opts ...Opt) (*Provider, error) {
	p := &Provider{
		curveID:    ml.BLS12_381_BBS,
		compressed: true,
	}

	for _, opt := range opts {
		opt(p)
	}

	if int(p.curveID) < 0 || int(p.curveID) >= len(ml.Curves) {
		return nil, fmt.Errorf("unsupported mathlib curve %d", p.curveID)
	}

	p.curve = ml.Curves[p.curveID]
	p.zr = &field{curve: p.curve}
	p.g1 = &g1Group{curve: p.curve, compressed: p.compressed}
	p.g2 = &g2Group{
		curve:      p.curve,
		compressed: p.compressed,
		identity:   p.curve.GenG2.Mul(p.curve.NewZrFromInt(0)),
	}

	return p, nil
}

// Name returns the provider name including the curve id.
func (p *Provider) Name() string {
	return fmt.Sprintf("IBM/mathlib curve %d", p.curveID)
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

type field struct {
	curve *ml.Curve
}

func (f *field) ScalarSize() int {
	return f.curve.ScalarByteSize
}

func (f *field) Random(rng io.Reader) (group.Scalar, error) {
	var z *ml.Zr

	err := recoverInto(func() {
		z = f.curve.NewRandomZr(rng)
	})
	if err != nil {
		return nil, fmt.Errorf("random scalar: %w", err)
	}

	return &scalar{z: z, curve: f.curve}, nil
}

func (f *field) FromBytes(b []byte) (group.Scalar, error) {
	if len(b) != f.curve.ScalarByteSize {
		return nil, fmt.Errorf("invalid scalar size %d, expected %d", len(b), f.curve.ScalarByteSize)
	}

	var z *ml.Zr

	err := recoverInto(func() {
		z = f.curve.NewZrFromBytes(b)
	})
	if err != nil {
		return nil, fmt.Errorf("decode scalar: %w", err)
	}

	return &scalar{z: z, curve: f.curve}, nil
}

type scalar struct {
	z     *ml.Zr
	curve *ml.Curve
}

func (s *scalar) Bytes() []byte {
	return s.z.Bytes()
}

func (s *scalar) Zeroize() {
	s.z.Clone(s.curve.NewZrFromInt(0))
}

func toZr(curve *ml.Curve, s group.Scalar) (*ml.Zr, error) {
	sc, ok := s.(*scalar)
	if !ok || sc.curve != curve {
		return nil, errForeignScalar
	}

	return sc.z, nil
}

// recoverInto runs fn and turns a backend panic into an error.
func recoverInto(fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(error); ok {
				err = fmt.Errorf("mathlib: %w", e)

				return
			}

			err = fmt.Errorf("mathlib: %v", r)
		}
	}()

	fn()

	return nil
}
