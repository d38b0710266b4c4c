/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package kilic

import (
	"fmt"
	"io"

	bls12381 "github.com/kilic/bls12-381"

	"github.com/hyperledger/aries-bbskeys/spi/group"
)

type g1Group struct {
	compressed bool
}

func (g *g1Group) Name() string {
	return "G1"
}

func (g *g1Group) ElementSize() int {
	if g.compressed {
		return g1CompressedSize
	}

	return g1UncompressedSize
}

func (g *g1Group) wrap(p *bls12381.PointG1) *g1Element {
	return &g1Element{p: p, compressed: g.compressed}
}

func (g *g1Group) Generator() group.Element {
	return g.wrap(bls12381.NewG1().One())
}

func (g *g1Group) Identity() group.Element {
	return g.wrap(bls12381.NewG1().Zero())
}

func (g *g1Group) Random(rng io.Reader) (group.Element, error) {
	fr, err := bls12381.NewFr().Rand(rng)
	if err != nil {
		return nil, fmt.Errorf("random G1 point: %w", err)
	}

	g1 := bls12381.NewG1()

	return g.wrap(g1.MulScalar(g1.New(), g1.One(), fr)), nil
}

func (g *g1Group) Mul(e group.Element, s group.Scalar) (group.Element, error) {
	el, ok := e.(*g1Element)
	if !ok {
		return nil, errForeignElement
	}

	fr, err := toFr(s)
	if err != nil {
		return nil, err
	}

	g1 := bls12381.NewG1()

	return g.wrap(g1.MulScalar(g1.New(), el.p, fr)), nil
}

func (g *g1Group) FromBytes(b []byte) (group.Element, error) {
	if len(b) != g.ElementSize() {
		return nil, fmt.Errorf("invalid G1 point size %d, expected %d", len(b), g.ElementSize())
	}

	var (
		g1  = bls12381.NewG1()
		p   *bls12381.PointG1
		err error
	)

	if g.compressed {
		p, err = g1.FromCompressed(b)
	} else {
		p, err = g1.FromBytes(b)
	}

	if err != nil {
		return nil, fmt.Errorf("deserialize G1 point: %w", err)
	}

	if !g1.InCorrectSubgroup(p) {
		return nil, fmt.Errorf(errNotInSubgroupFormat, "G1")
	}

	return g.wrap(p), nil
}

type g1Element struct {
	p          *bls12381.PointG1
	compressed bool
}

func (e *g1Element) Bytes() []byte {
	if e.compressed {
		return bls12381.NewG1().ToCompressed(e.p)
	}

	return bls12381.NewG1().ToBytes(e.p)
}

func (e *g1Element) IsIdentity() bool {
	return bls12381.NewG1().IsZero(e.p)
}

func (e *g1Element) Equal(other group.Element) bool {
	o, ok := other.(*g1Element)

	return ok && bls12381.NewG1().Equal(e.p, o.p)
}

type g2Group struct {
	compressed bool
}

func (g *g2Group) Name() string {
	return "G2"
}

func (g *g2Group) ElementSize() int {
	if g.compressed {
		return g2CompressedSize
	}

	return g2UncompressedSize
}

func (g *g2Group) wrap(p *bls12381.PointG2) *g2Element {
	return &g2Element{p: p, compressed: g.compressed}
}

func (g *g2Group) Generator() group.Element {
	return g.wrap(bls12381.NewG2().One())
}

func (g *g2Group) Identity() group.Element {
	return g.wrap(bls12381.NewG2().Zero())
}

func (g *g2Group) Random(rng io.Reader) (group.Element, error) {
	fr, err := bls12381.NewFr().Rand(rng)
	if err != nil {
		return nil, fmt.Errorf("random G2 point: %w", err)
	}

	g2 := bls12381.NewG2()

	return g.wrap(g2.MulScalar(g2.New(), g2.One(), fr)), nil
}

func (g *g2Group) Mul(e group.Element, s group.Scalar) (group.Element, error) {
	el, ok := e.(*g2Element)
	if !ok {
		return nil, errForeignElement
	}

	fr, err := toFr(s)
	if err != nil {
		return nil, err
	}

	g2 := bls12381.NewG2()

	return g.wrap(g2.MulScalar(g2.New(), el.p, fr)), nil
}

func (g *g2Group) FromBytes(b []byte) (group.Element, error) {
	if len(b) != g.ElementSize() {
		return nil, fmt.Errorf("invalid G2 point size %d, expected %d", len(b), g.ElementSize())
	}

	var (
		g2  = bls12381.NewG2()
		p   *bls12381.PointG2
		err error
	)

	if g.compressed {
		p, err = g2.FromCompressed(b)
	} else {
		p, err = g2.FromBytes(b)
	}

	if err != nil {
		return nil, fmt.Errorf("deserialize G2 point: %w", err)
	}

	if !g2.InCorrectSubgroup(p) {
		return nil, fmt.Errorf(errNotInSubgroupFormat, "G2")
	}

	return g.wrap(p), nil
}

type g2Element struct {
	p          *bls12381.PointG2
	compressed bool
}

func (e *g2Element) Bytes() []byte {
	if e.compressed {
		return bls12381.NewG2().ToCompressed(e.p)
	}

	return bls12381.NewG2().ToBytes(e.p)
}

func (e *g2Element) IsIdentity() bool {
	return bls12381.NewG2().IsZero(e.p)
}

func (e *g2Element) Equal(other group.Element) bool {
	o, ok := other.(*g2Element)

	return ok && bls12381.NewG2().Equal(e.p, o.p)
}
