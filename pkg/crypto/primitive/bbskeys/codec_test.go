/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package bbskeys_test

import (
	"encoding/binary"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/hyperledger/aries-bbskeys/pkg/crypto/primitive/bbskeys"
	"github.com/hyperledger/aries-bbskeys/pkg/crypto/primitive/bbskeys/group/kilic"
	"github.com/hyperledger/aries-bbskeys/pkg/crypto/primitive/bbskeys/group/mathlib"
	mockgroup "github.com/hyperledger/aries-bbskeys/pkg/internal/gomocks/spi/group"
)

func TestParsePublicKey_Truncated(t *testing.T) {
	for _, np := range providers(t) {
		for _, encoding := range []bbskeys.Encoding{bbskeys.EncodingLegacy, bbskeys.EncodingVersioned} {
			t.Run(np.name+"/"+encoding.String(), func(t *testing.T) {
				km := newKeyMaterial(t, np.provider, bbskeys.WithEncoding(encoding))

				pubKey, _, err := km.Generate(5)
				require.NoError(t, err)

				pubKeyBytes := km.MarshalPublicKey(pubKey)
				require.Len(t, pubKeyBytes, km.EncodedSize(5))

				for cut := 0; cut < len(pubKeyBytes); cut++ {
					parsed, err := km.ParsePublicKey(pubKeyBytes[:cut])
					require.Nil(t, parsed, "cut at %d", cut)
					require.ErrorIs(t, err, bbskeys.ErrTruncated, "cut at %d", cut)

					var decodeErr *bbskeys.DecodeError
					require.True(t, errors.As(err, &decodeErr), "cut at %d", cut)
					require.LessOrEqual(t, decodeErr.Offset, cut)
				}
			})
		}
	}
}

func TestParsePublicKey_TruncationFields(t *testing.T) {
	p, err := mathlib.New()
	require.NoError(t, err)

	km := newKeyMaterial(t, p)

	pubKey, _, err := km.Generate(2)
	require.NoError(t, err)

	pubKeyBytes := pubKey.Bytes()

	tests := []struct {
		name   string
		cut    int
		field  string
		offset int
	}{
		{name: "empty", cut: 0, field: "w", offset: 0},
		{name: "inside w", cut: 95, field: "w", offset: 0},
		{name: "inside h0", cut: 96 + 10, field: "h0", offset: 96},
		{name: "inside length prefix", cut: 96 + 48 + 2, field: "h length", offset: 96 + 48},
		{name: "missing generators", cut: 96 + 48 + 4, field: "h length", offset: 96 + 48},
		{name: "short last generator", cut: len(pubKeyBytes) - 1, field: "h length", offset: 96 + 48},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := km.ParsePublicKey(pubKeyBytes[:tc.cut])
			require.ErrorIs(t, err, bbskeys.ErrTruncated)

			var decodeErr *bbskeys.DecodeError
			require.True(t, errors.As(err, &decodeErr))
			require.Equal(t, tc.field, decodeErr.Field)
			require.Equal(t, tc.offset, decodeErr.Offset)
		})
	}
}

func TestParsePublicKey_OversizedLengthPrefix(t *testing.T) {
	km := newKeyMaterial(t, kilic.New())

	pubKey, _, err := km.Generate(1)
	require.NoError(t, err)

	pubKeyBytes := pubKey.Bytes()
	binary.BigEndian.PutUint32(pubKeyBytes[96+48:], 0xFFFFFFFF)

	parsed, err := km.ParsePublicKey(pubKeyBytes)
	require.Nil(t, parsed)
	require.ErrorIs(t, err, bbskeys.ErrTruncated)
	require.EqualError(t, err,
		"decode public key h length at offset 144: truncated input: 4294967295 generators announced, 48 bytes left")
}

func TestParsePublicKey_TrailingBytes(t *testing.T) {
	km := newKeyMaterial(t, kilic.New())

	pubKey, _, err := km.Generate(2)
	require.NoError(t, err)

	pubKeyBytes := append(pubKey.Bytes(), 0x00)

	parsed, err := km.ParsePublicKey(pubKeyBytes)
	require.Nil(t, parsed)
	require.ErrorIs(t, err, bbskeys.ErrTrailingBytes)

	var decodeErr *bbskeys.DecodeError
	require.True(t, errors.As(err, &decodeErr))
	require.Equal(t, "end", decodeErr.Field)
	require.Equal(t, len(pubKeyBytes)-1, decodeErr.Offset)

	// a legacy key is not a valid versioned key and vice versa
	versioned := newKeyMaterial(t, kilic.New(), bbskeys.WithEncoding(bbskeys.EncodingVersioned))

	_, err = versioned.ParsePublicKey(pubKey.Bytes())
	require.Error(t, err)

	_, err = km.ParsePublicKey(versioned.MarshalPublicKey(pubKey))
	require.Error(t, err)
}

func TestParsePublicKey_InvalidPoint(t *testing.T) {
	for _, np := range providers(t) {
		t.Run(np.name, func(t *testing.T) {
			km := newKeyMaterial(t, np.provider)

			pubKey, _, err := km.Generate(1)
			require.NoError(t, err)

			pubKeyBytes := pubKey.Bytes()
			sizeB := np.provider.G2().ElementSize()
			sizeA := np.provider.G1().ElementSize()

			garbage := func(offset, size int) []byte {
				b := append([]byte(nil), pubKeyBytes...)
				for i := offset; i < offset+size; i++ {
					b[i] = 0xFF
				}

				return b
			}

			tests := []struct {
				field  string
				offset int
				size   int
			}{
				{"w", 0, sizeB},
				{"h0", sizeB, sizeA},
				{"h[0]", sizeB + sizeA + 4, sizeA},
			}

			for _, tc := range tests {
				parsed, err := km.ParsePublicKey(garbage(tc.offset, tc.size))
				require.Nil(t, parsed)
				require.Error(t, err)

				var decodeErr *bbskeys.DecodeError
				require.True(t, errors.As(err, &decodeErr), tc.field)
				require.Equal(t, tc.field, decodeErr.Field)
				require.Equal(t, tc.offset, decodeErr.Offset)
				require.NotErrorIs(t, err, bbskeys.ErrTruncated)
			}
		})
	}
}

func TestParsePublicKey_Versioned(t *testing.T) {
	km := newKeyMaterial(t, kilic.New(), bbskeys.WithEncoding(bbskeys.EncodingVersioned))

	pubKey, _, err := km.Generate(3)
	require.NoError(t, err)

	pubKeyBytes := km.MarshalPublicKey(pubKey)
	require.Equal(t, []byte{'b', 'b', 's', 1}, pubKeyBytes[:4])
	require.Equal(t, pubKey.Bytes(), pubKeyBytes[4:])

	parsed, err := km.ParsePublicKey(pubKeyBytes)
	require.NoError(t, err)
	require.True(t, pubKey.Equal(parsed))

	for _, header := range [][]byte{{'b', 'b', 's', 2}, {'x', 'b', 's', 1}} {
		tampered := append(append([]byte(nil), header...), pubKeyBytes[4:]...)

		_, err = km.ParsePublicKey(tampered)
		require.ErrorIs(t, err, bbskeys.ErrUnknownFormat)

		var decodeErr *bbskeys.DecodeError
		require.True(t, errors.As(err, &decodeErr))
		require.Equal(t, "header", decodeErr.Field)
	}
}

func TestParsePublicKey_ProviderErrors(t *testing.T) {
	errDecode := errors.New("point not on curve")

	const (
		sizeA = 2
		sizeB = 4
	)

	setup := func(t *testing.T) (*gomock.Controller, *mockgroup.MockGroup, *mockgroup.MockGroup, *bbskeys.KeyMaterial) {
		t.Helper()

		ctrl := gomock.NewController(t)

		g1 := mockgroup.NewMockGroup(ctrl)
		g1.EXPECT().Name().Return("G1").AnyTimes()
		g1.EXPECT().ElementSize().Return(sizeA).AnyTimes()

		g2 := mockgroup.NewMockGroup(ctrl)
		g2.EXPECT().Name().Return("G2").AnyTimes()
		g2.EXPECT().ElementSize().Return(sizeB).AnyTimes()

		provider := mockgroup.NewMockProvider(ctrl)
		provider.EXPECT().Name().Return("mock").AnyTimes()
		provider.EXPECT().G1().Return(g1).AnyTimes()
		provider.EXPECT().G2().Return(g2).AnyTimes()

		generatorBytes := []byte{1, 1, 1, 1}
		generator := mockgroup.NewMockElement(ctrl)
		generator.EXPECT().IsIdentity().Return(false)
		generator.EXPECT().Bytes().Return(generatorBytes).AnyTimes()
		generator.EXPECT().Equal(generator).Return(true)
		g2.EXPECT().FromBytes(generatorBytes).Return(generator, nil)

		km, err := bbskeys.New(provider, bbskeys.WithCommitmentGenerator(generator))
		require.NoError(t, err)

		return ctrl, g1, g2, km
	}

	t.Run("w", func(t *testing.T) {
		ctrl, _, g2, km := setup(t)
		defer ctrl.Finish()

		data := []byte{9, 9, 9, 9, 2, 2, 0, 0, 0, 0}
		g2.EXPECT().FromBytes(data[:4]).Return(nil, errDecode)

		_, err := km.ParsePublicKey(data)
		require.ErrorIs(t, err, errDecode)

		var decodeErr *bbskeys.DecodeError
		require.True(t, errors.As(err, &decodeErr))
		require.Equal(t, "w", decodeErr.Field)
		require.Equal(t, 0, decodeErr.Offset)
		require.Equal(t, errDecode, decodeErr.Err)
		require.EqualError(t, err, "decode public key w at offset 0: point not on curve")
	})

	t.Run("h[1]", func(t *testing.T) {
		ctrl, g1, g2, km := setup(t)
		defer ctrl.Finish()

		data := []byte{9, 9, 9, 9, 2, 2, 0, 0, 0, 2, 3, 3, 4, 4}
		element := mockgroup.NewMockElement(ctrl)

		g2.EXPECT().FromBytes(data[:4]).Return(element, nil)
		g1.EXPECT().FromBytes([]byte{2, 2}).Return(element, nil)
		g1.EXPECT().FromBytes([]byte{3, 3}).Return(element, nil)
		g1.EXPECT().FromBytes([]byte{4, 4}).Return(nil, errDecode)

		_, err := km.ParsePublicKey(data)
		require.ErrorIs(t, err, errDecode)

		var decodeErr *bbskeys.DecodeError
		require.True(t, errors.As(err, &decodeErr))
		require.Equal(t, "h[1]", decodeErr.Field)
		require.Equal(t, 12, decodeErr.Offset)
		require.Equal(t, errDecode, decodeErr.Err)
	})
}

func TestParsePublicKey_DecodeCache(t *testing.T) {
	km := newKeyMaterial(t, kilic.New(), bbskeys.WithDecodeCache(2))

	pubKey, _, err := km.Generate(2)
	require.NoError(t, err)

	pubKeyBytes := pubKey.Bytes()

	first, err := km.ParsePublicKey(pubKeyBytes)
	require.NoError(t, err)

	second, err := km.ParsePublicKey(pubKeyBytes)
	require.NoError(t, err)
	require.Same(t, first, second)

	// failures are not cached
	_, err = km.ParsePublicKey(pubKeyBytes[:10])
	require.ErrorIs(t, err, bbskeys.ErrTruncated)

	_, err = km.ParsePublicKey(pubKeyBytes[:10])
	require.ErrorIs(t, err, bbskeys.ErrTruncated)

	uncached := newKeyMaterial(t, kilic.New())

	first, err = uncached.ParsePublicKey(pubKeyBytes)
	require.NoError(t, err)

	second, err = uncached.ParsePublicKey(pubKeyBytes)
	require.NoError(t, err)
	require.NotSame(t, first, second)
	require.True(t, first.Equal(second))
}

func TestEncodedSize(t *testing.T) {
	p, err := mathlib.New()
	require.NoError(t, err)

	legacy := newKeyMaterial(t, p)
	require.Equal(t, 148, legacy.EncodedSize(0))
	require.Equal(t, 388, legacy.EncodedSize(5))

	versioned := newKeyMaterial(t, p, bbskeys.WithEncoding(bbskeys.EncodingVersioned))
	require.Equal(t, 152, versioned.EncodedSize(0))

	uncompressed, err := mathlib.New(mathlib.WithCompression(false))
	require.NoError(t, err)

	km := newKeyMaterial(t, uncompressed)
	require.Equal(t, 192+96+4, km.EncodedSize(0))
}
