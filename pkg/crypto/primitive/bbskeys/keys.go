/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package bbskeys

import (
	"encoding/binary"
	"fmt"

	"golang.org/x/exp/slices"

	"github.com/hyperledger/aries-bbskeys/spi/group"
)

const lenPrefixSize = 4

// SecretKey is the private signing exponent.
// It has no encoding of its own: persist it, if needed, through Scalar().Bytes().
type SecretKey struct {
	scalar group.Scalar
}

// Scalar returns the underlying field element.
func (sk *SecretKey) Scalar() group.Scalar {
	return sk.scalar
}

// Zeroize overwrites the secret in place. The key is unusable afterwards.
func (sk *SecretKey) Zeroize() {
	if sk.scalar != nil {
		sk.scalar.Zeroize()
	}
}

// String keeps the secret out of formatted output.
func (sk *SecretKey) String() string {
	return "bbskeys.SecretKey{REDACTED}"
}

// GoString keeps the secret out of %#v output.
func (sk *SecretKey) GoString() string {
	return sk.String()
}

// PublicKey is a BBS+ public key: the commitment w in G2, the blinding base h0 in G1 and one
// G1 generator per message slot. It is immutable and safe to share between goroutines.
type PublicKey struct {
	w  group.Element
	h0 group.Element
	h  []group.Element
}

// NewPublicKey assembles a PublicKey from its components. h is copied.
// No validation happens here; call Validate on keys from untrusted sources.
func NewPublicKey(w, h0 group.Element, h []group.Element) *PublicKey {
	return &PublicKey{
		w:  w,
		h0: h0,
		h:  slices.Clone(h),
	}
}

// W returns the commitment to the secret key.
func (pk *PublicKey) W() group.Element {
	return pk.w
}

// H0 returns the blinding factor base.
func (pk *PublicKey) H0() group.Element {
	return pk.h0
}

// H returns a copy of the per-message generators, in message order.
func (pk *PublicKey) H() []group.Element {
	return slices.Clone(pk.h)
}

// MessageCount returns the number of messages the key can sign.
func (pk *PublicKey) MessageCount() int {
	return len(pk.h)
}

// Validate rejects keys where w, h0 or any message generator is missing or the identity element.
// Point validity itself is guaranteed by the group provider's decoder.
func (pk *PublicKey) Validate() error {
	if pk.h0 == nil {
		return fmt.Errorf("%w: h0 is missing", ErrMalformedKey)
	}

	if pk.h0.IsIdentity() {
		return fmt.Errorf("%w: h0 is the identity element", ErrMalformedKey)
	}

	if pk.w == nil {
		return fmt.Errorf("%w: w is missing", ErrMalformedKey)
	}

	if pk.w.IsIdentity() {
		return fmt.Errorf("%w: w is the identity element", ErrMalformedKey)
	}

	for i, h := range pk.h {
		if h == nil {
			return fmt.Errorf("%w: h[%d] is missing", ErrMalformedKey, i)
		}

		if h.IsIdentity() {
			return fmt.Errorf("%w: h[%d] is the identity element", ErrMalformedKey, i)
		}
	}

	return nil
}

func (pk *PublicKey) complete() bool {
	if pk.w == nil || pk.h0 == nil {
		return false
	}

	for _, h := range pk.h {
		if h == nil {
			return false
		}
	}

	return true
}

// Equal reports whether both keys hold the same w, h0 and generators in the same order.
// Keys with missing components are equal to nothing.
func (pk *PublicKey) Equal(other *PublicKey) bool {
	if other == nil || !pk.complete() || !other.complete() {
		return false
	}

	if !pk.w.Equal(other.w) || !pk.h0.Equal(other.h0) {
		return false
	}

	return slices.EqualFunc(pk.h, other.h, func(a, b group.Element) bool {
		return a.Equal(b)
	})
}

// Bytes returns the legacy encoding w || h0 || uint32be(len(h)) || h[0] .. h[n-1].
// It returns nil for a key with missing components.
func (pk *PublicKey) Bytes() []byte {
	if !pk.complete() {
		return nil
	}

	w := pk.w.Bytes()
	h0 := pk.h0.Bytes()

	out := make([]byte, 0, len(w)+len(h0)*(len(pk.h)+1)+lenPrefixSize)
	out = append(out, w...)
	out = append(out, h0...)
	out = binary.BigEndian.AppendUint32(out, uint32(len(pk.h)))

	for _, h := range pk.h {
		out = append(out, h.Bytes()...)
	}

	return out
}
