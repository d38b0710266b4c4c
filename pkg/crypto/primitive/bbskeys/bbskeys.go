/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package bbskeys contains BBS+ key material: key pair generation sized to a number of
// messages, the fixed-width public key encoding and structural validation of public keys.
// Pairing arithmetic is supplied by a group.Provider, such as the one in the group/mathlib package.
//
// Signing, verification and proofs of knowledge are built on top of these keys elsewhere.
package bbskeys

import (
	"crypto/rand"
	"crypto/sha256"
	"errors"
	"fmt"
	"hash"
	"io"

	"github.com/bluele/gcache"
	"golang.org/x/crypto/chacha20"
	"golang.org/x/crypto/hkdf"

	"github.com/hyperledger/aries-bbskeys/component/log"
	"github.com/hyperledger/aries-bbskeys/spi/group"
)

const (
	seedSize        = 32
	generateKeySalt = "BBS-SIG-KEYGEN-SALT-"
)

// nolint:gochecknoglobals
var logger = log.New("bbskeys")

// KeyMaterial generates, encodes and decodes BBS+ keys over one group provider.
// It is safe for concurrent use.
type KeyMaterial struct {
	provider  group.Provider
	rng       io.Reader
	generator group.Element
	encoding  Encoding
	cache     gcache.Cache
}

// New creates a KeyMaterial for the given provider.
func New(provider group.Provider, opts ...Opt) (*KeyMaterial, error) {
	if provider == nil {
		return nil, errors.New("group provider is required")
	}

	o := &options{
		rng:      rand.Reader,
		encoding: EncodingLegacy,
	}

	for _, opt := range opts {
		opt(o)
	}

	if o.rng == nil {
		return nil, errors.New("randomness source is nil")
	}

	if o.encoding != EncodingLegacy && o.encoding != EncodingVersioned {
		return nil, fmt.Errorf("unsupported encoding %d", o.encoding)
	}

	if o.generator == nil {
		logger.Warnf("no commitment generator configured, using the fixed %s generator of %s;"+
			" agree on a setup generator for production use", provider.G2().Name(), provider.Name())

		o.generator = provider.G2().Generator()
	}

	if err := checkGenerator(provider, o.generator); err != nil {
		return nil, err
	}

	km := &KeyMaterial{
		provider:  provider,
		rng:       o.rng,
		generator: o.generator,
		encoding:  o.encoding,
	}

	if o.cacheIsSet {
		if o.cacheSize <= 0 {
			return nil, fmt.Errorf("invalid decode cache size %d", o.cacheSize)
		}

		km.cache = gcache.New(o.cacheSize).LRU().Build()
	}

	return km, nil
}

func checkGenerator(provider group.Provider, g group.Element) error {
	if g.IsIdentity() {
		return errors.New("commitment generator is the identity element")
	}

	// g must decode as a G2 element of this provider.
	decoded, err := provider.G2().FromBytes(g.Bytes())
	if err != nil {
		return fmt.Errorf("commitment generator: %w", err)
	}

	if !decoded.Equal(g) {
		return errors.New("commitment generator does not belong to the provider's G2 group")
	}

	return nil
}

// Provider returns the group provider the keys are built on.
func (k *KeyMaterial) Provider() group.Provider {
	return k.provider
}

// Generate creates a key pair able to sign messageCount messages.
// It fails only for a negative count or a failing randomness source.
func (k *KeyMaterial) Generate(messageCount int) (*PublicKey, *SecretKey, error) {
	return k.generate(messageCount, k.rng)
}

// GenerateFromSeed deterministically derives a key pair from seed, which must be at least 32 bytes.
// HKDF over h (SHA-256 when nil) expands the seed into a ChaCha20 key whose keystream replaces the
// randomness source. Keys derived from one seed share sk, w and h0, and the generators of a
// smaller key are a prefix of those of a larger one.
func (k *KeyMaterial) GenerateFromSeed(messageCount int, h func() hash.Hash,
	seed []byte) (*PublicKey, *SecretKey, error) {
	if len(seed) < seedSize {
		return nil, nil, ErrInvalidSeed
	}

	if h == nil {
		h = sha256.New
	}

	rng, err := newSeededReader(h, seed)
	if err != nil {
		return nil, nil, err
	}

	return k.generate(messageCount, rng)
}

func (k *KeyMaterial) generate(messageCount int, rng io.Reader) (*PublicKey, *SecretKey, error) {
	if messageCount < 0 {
		return nil, nil, fmt.Errorf("%w: %d", ErrInvalidMessageCount, messageCount)
	}

	secret, err := k.provider.Zr().Random(rng)
	if err != nil {
		return nil, nil, fmt.Errorf("generate secret key: %w", err)
	}

	sk := &SecretKey{scalar: secret}

	pk, err := k.derivePublicKey(sk, messageCount, rng)
	if err != nil {
		sk.Zeroize()

		return nil, nil, err
	}

	logger.Debugf("generated %s key pair for %d messages", k.provider.Name(), messageCount)

	return pk, sk, nil
}

func (k *KeyMaterial) derivePublicKey(sk *SecretKey, messageCount int, rng io.Reader) (*PublicKey, error) {
	g1 := k.provider.G1()

	w, err := k.provider.G2().Mul(k.generator, sk.scalar)
	if err != nil {
		return nil, fmt.Errorf("commit to secret key: %w", err)
	}

	h0, err := g1.Random(rng)
	if err != nil {
		return nil, fmt.Errorf("generate h0: %w", err)
	}

	h := make([]group.Element, messageCount)

	for i := range h {
		h[i], err = g1.Random(rng)
		if err != nil {
			return nil, fmt.Errorf("generate h[%d]: %w", i, err)
		}
	}

	return &PublicKey{w: w, h0: h0, h: h}, nil
}

// keystreamReader serves the ChaCha20 keystream as random bytes. Not safe for concurrent use.
type keystreamReader struct {
	stream *chacha20.Cipher
}

func newSeededReader(h func() hash.Hash, seed []byte) (*keystreamReader, error) {
	key := make([]byte, chacha20.KeySize)

	_, err := io.ReadFull(hkdf.New(h, seed, []byte(generateKeySalt), make([]byte, 2)), key)
	if err != nil {
		return nil, fmt.Errorf("derive seed key: %w", err)
	}

	stream, err := chacha20.NewUnauthenticatedCipher(key, make([]byte, chacha20.NonceSize))
	if err != nil {
		return nil, fmt.Errorf("init seeded stream: %w", err)
	}

	return &keystreamReader{stream: stream}, nil
}

func (r *keystreamReader) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = 0
	}

	r.stream.XORKeyStream(p, p)

	return len(p), nil
}
