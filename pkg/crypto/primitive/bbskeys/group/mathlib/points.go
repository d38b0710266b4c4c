/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package mathlib

import (
	"fmt"
	"io"

	ml "github.com/IBM/mathlib"

	"github.com/hyperledger/aries-bbskeys/spi/group"
)

type g1Group struct {
	curve      *ml.Curve
	compressed bool
}

func (g *g1Group) Name() string {
	return "G1"
}

func (g *g1Group) ElementSize() int {
	if g.compressed {
		return g.curve.CompressedG1ByteSize
	}

	return g.curve.G1ByteSize
}

func (g *g1Group) wrap(p *ml.G1) *g1Element {
	return &g1Element{p: p, g: g}
}

func (g *g1Group) Generator() group.Element {
	return g.wrap(g.curve.GenG1.Copy())
}

func (g *g1Group) Identity() group.Element {
	return g.wrap(g.curve.GenG1.Mul(g.curve.NewZrFromInt(0)))
}

func (g *g1Group) Random(rng io.Reader) (group.Element, error) {
	var p *ml.G1

	err := recoverInto(func() {
		p = g.curve.GenG1.Mul(g.curve.NewRandomZr(rng))
	})
	if err != nil {
		return nil, fmt.Errorf("random G1 point: %w", err)
	}

	return g.wrap(p), nil
}

func (g *g1Group) Mul(e group.Element, s group.Scalar) (group.Element, error) {
	el, ok := e.(*g1Element)
	if !ok || el.g.curve != g.curve {
		return nil, errForeignElement
	}

	z, err := toZr(g.curve, s)
	if err != nil {
		return nil, err
	}

	return g.wrap(el.p.Mul(z)), nil
}

func (g *g1Group) FromBytes(b []byte) (group.Element, error) {
	if len(b) != g.ElementSize() {
		return nil, fmt.Errorf("invalid G1 point size %d, expected %d", len(b), g.ElementSize())
	}

	var (
		p      *ml.G1
		decErr error
	)

	err := recoverInto(func() {
		if g.compressed {
			p, decErr = g.curve.NewG1FromCompressed(b)
		} else {
			p, decErr = g.curve.NewG1FromBytes(b)
		}
	})
	if err == nil {
		err = decErr
	}

	if err != nil {
		return nil, fmt.Errorf("deserialize G1 point: %w", err)
	}

	return g.wrap(p), nil
}

type g1Element struct {
	p *ml.G1
	g *g1Group
}

func (e *g1Element) Bytes() []byte {
	if e.g.compressed {
		return e.p.Compressed()
	}

	return e.p.Bytes()
}

func (e *g1Element) IsIdentity() bool {
	return e.p.IsInfinity()
}

func (e *g1Element) Equal(other group.Element) bool {
	o, ok := other.(*g1Element)

	return ok && o.g.curve == e.g.curve && e.p.Equals(o.p)
}

type g2Group struct {
	curve      *ml.Curve
	compressed bool
	identity   *ml.G2
}

func (g *g2Group) Name() string {
	return "G2"
}

func (g *g2Group) ElementSize() int {
	if g.compressed {
		return g.curve.CompressedG2ByteSize
	}

	return g.curve.G2ByteSize
}

func (g *g2Group) wrap(p *ml.G2) *g2Element {
	return &g2Element{p: p, g: g}
}

func (g *g2Group) Generator() group.Element {
	return g.wrap(g.curve.GenG2.Copy())
}

func (g *g2Group) Identity() group.Element {
	return g.wrap(g.identity.Copy())
}

func (g *g2Group) Random(rng io.Reader) (group.Element, error) {
	var p *ml.G2

	err := recoverInto(func() {
		p = g.curve.GenG2.Mul(g.curve.NewRandomZr(rng))
	})
	if err != nil {
		return nil, fmt.Errorf("random G2 point: %w", err)
	}

	return g.wrap(p), nil
}

func (g *g2Group) Mul(e group.Element, s group.Scalar) (group.Element, error) {
	el, ok := e.(*g2Element)
	if !ok || el.g.curve != g.curve {
		return nil, errForeignElement
	}

	z, err := toZr(g.curve, s)
	if err != nil {
		return nil, err
	}

	return g.wrap(el.p.Mul(z)), nil
}

func (g *g2Group) FromBytes(b []byte) (group.Element, error) {
	if len(b) != g.ElementSize() {
		return nil, fmt.Errorf("invalid G2 point size %d, expected %d", len(b), g.ElementSize())
	}

	var (
		p      *ml.G2
		decErr error
	)

	err := recoverInto(func() {
		if g.compressed {
			p, decErr = g.curve.NewG2FromCompressed(b)
		} else {
			p, decErr = g.curve.NewG2FromBytes(b)
		}
	})
	if err == nil {
		err = decErr
	}

	if err != nil {
		return nil, fmt.Errorf("deserialize G2 point: %w", err)
	}

	return g.wrap(p), nil
}

type g2Element struct {
	p *ml.G2
	g *g2Group
}

func (e *g2Element) Bytes() []byte {
	if e.g.compressed {
		return e.p.Compressed()
	}

	return e.p.Bytes()
}

func (e *g2Element) IsIdentity() bool {
	return e.p.Equals(e.g.identity)
}

func (e *g2Element) Equal(other group.Element) bool {
	o, ok := other.(*g2Element)

	return ok && o.g.curve == e.g.curve && e.p.Equals(o.p)
}
