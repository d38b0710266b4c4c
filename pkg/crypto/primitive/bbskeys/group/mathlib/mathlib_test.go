/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package mathlib_test

import (
	"crypto/rand"
	"errors"
	"testing"

	ml "github.com/IBM/mathlib"
	"github.com/stretchr/testify/require"

	"github.com/hyperledger/aries-bbskeys/pkg/crypto/primitive/bbskeys/group/mathlib"
	"github.com/hyperledger/aries-bbskeys/spi/group"
)

func TestNew(t *testing.T) {
	p, err := mathlib.New()
	require.NoError(t, err)
	require.Equal(t, 48, p.G1().ElementSize())
	require.Equal(t, 96, p.G2().ElementSize())
	require.Equal(t, 32, p.Zr().ScalarSize())
	require.Contains(t, p.Name(), "IBM/mathlib")

	p, err = mathlib.New(mathlib.WithCompression(false))
	require.NoError(t, err)
	require.Equal(t, 96, p.G1().ElementSize())
	require.Equal(t, 192, p.G2().ElementSize())

	_, err = mathlib.New(mathlib.WithCurve(ml.CurveID(1000)))
	require.EqualError(t, err, "unsupported mathlib curve 1000")
}

func TestGroups(t *testing.T) {
	for _, compressed := range []bool{true, false} {
		p, err := mathlib.New(mathlib.WithCompression(compressed))
		require.NoError(t, err)

		for _, g := range []group.Group{p.G1(), p.G2()} {
			g := g

			t.Run(g.Name(), func(t *testing.T) {
				require.True(t, g.Identity().IsIdentity())
				require.False(t, g.Generator().IsIdentity())
				require.Len(t, g.Generator().Bytes(), g.ElementSize())

				e, err := g.Random(rand.Reader)
				require.NoError(t, err)
				require.False(t, e.IsIdentity())

				decoded, err := g.FromBytes(e.Bytes())
				require.NoError(t, err)
				require.True(t, decoded.Equal(e))
				require.False(t, decoded.Equal(g.Generator()))

				_, err = g.FromBytes(e.Bytes()[1:])
				require.Error(t, err)
				require.Contains(t, err.Error(), "invalid "+g.Name()+" point size")

				garbage := make([]byte, g.ElementSize())
				for i := range garbage {
					garbage[i] = 0xff
				}

				_, err = g.FromBytes(garbage)
				require.Error(t, err)
				require.Contains(t, err.Error(), "deserialize "+g.Name()+" point")
			})
		}
	}
}

func TestMul(t *testing.T) {
	p, err := mathlib.New()
	require.NoError(t, err)

	s, err := p.Zr().Random(rand.Reader)
	require.NoError(t, err)

	w1, err := p.G2().Mul(p.G2().Generator(), s)
	require.NoError(t, err)

	sDecoded, err := p.Zr().FromBytes(s.Bytes())
	require.NoError(t, err)

	w2, err := p.G2().Mul(p.G2().Generator(), sDecoded)
	require.NoError(t, err)
	require.True(t, w1.Equal(w2))

	s.Zeroize()

	zero, err := p.G2().Mul(p.G2().Generator(), s)
	require.NoError(t, err)
	require.True(t, zero.IsIdentity())

	_, err = p.G1().Mul(p.G2().Generator(), s)
	require.EqualError(t, err, "element does not belong to this group")

	_, err = p.Zr().FromBytes([]byte{1, 2, 3})
	require.EqualError(t, err, "invalid scalar size 3, expected 32")
}

func TestFailingRandomness(t *testing.T) {
	rngErr := errors.New("entropy exhausted")

	p, err := mathlib.New()
	require.NoError(t, err)

	_, err = p.Zr().Random(failingReader{rngErr})
	require.ErrorIs(t, err, rngErr)

	_, err = p.G1().Random(failingReader{rngErr})
	require.ErrorIs(t, err, rngErr)

	_, err = p.G2().Random(failingReader{rngErr})
	require.ErrorIs(t, err, rngErr)
}

type failingReader struct {
	err error
}

func (r failingReader) Read([]byte) (int, error) {
	return 0, r.err
}
