/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package bbskeys

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/hyperledger/aries-bbskeys/spi/group"
)

const formatVersion = 1

// nolint:gochecknoglobals
var versionedHeader = []byte{'b', 'b', 's', formatVersion}

// MarshalPublicKey encodes pk with the configured Encoding.
// It returns nil for a key with missing components.
func (k *KeyMaterial) MarshalPublicKey(pk *PublicKey) []byte {
	legacy := pk.Bytes()
	if legacy == nil || k.encoding != EncodingVersioned {
		return legacy
	}

	return append(append([]byte(nil), versionedHeader...), legacy...)
}

// EncodedSize returns the length of an encoded public key with messageCount generators.
func (k *KeyMaterial) EncodedSize(messageCount int) int {
	size := k.provider.G2().ElementSize() + k.provider.G1().ElementSize()*(messageCount+1) + lenPrefixSize

	if k.encoding == EncodingVersioned {
		size += len(versionedHeader)
	}

	return size
}

// ParsePublicKey decodes a public key written with the configured Encoding. Any failure is a
// *DecodeError. The key is not validated: call Validate before using keys from untrusted sources.
func (k *KeyMaterial) ParsePublicKey(data []byte) (*PublicKey, error) {
	if k.cache != nil {
		if v, err := k.cache.Get(string(data)); err == nil {
			if pk, ok := v.(*PublicKey); ok {
				return pk, nil
			}
		}
	}

	pk, err := k.parse(data)
	if err != nil {
		logger.Debugf("parse %s public key of %d bytes: %v", k.encoding, len(data), err)

		return nil, err
	}

	if k.cache != nil {
		_ = k.cache.Set(string(data), pk) //nolint:errcheck
	}

	return pk, nil
}

func (k *KeyMaterial) parse(data []byte) (*PublicKey, error) {
	c := &cursor{data: data}

	if k.encoding == EncodingVersioned {
		header, err := c.next("header", len(versionedHeader))
		if err != nil {
			return nil, err
		}

		if !bytes.Equal(header, versionedHeader) {
			return nil, &DecodeError{Field: "header", Offset: 0, Err: ErrUnknownFormat}
		}
	}

	w, err := c.element("w", k.provider.G2())
	if err != nil {
		return nil, err
	}

	g1 := k.provider.G1()

	h0, err := c.element("h0", g1)
	if err != nil {
		return nil, err
	}

	prefixOffset := c.offset

	prefix, err := c.next("h length", lenPrefixSize)
	if err != nil {
		return nil, err
	}

	n := uint64(binary.BigEndian.Uint32(prefix))

	// bound the allocation by what is actually left in the buffer
	if n*uint64(g1.ElementSize()) > uint64(c.remaining()) {
		return nil, &DecodeError{
			Field:  "h length",
			Offset: prefixOffset,
			Err:    fmt.Errorf("%w: %d generators announced, %d bytes left", ErrTruncated, n, c.remaining()),
		}
	}

	h := make([]group.Element, n)

	for i := range h {
		h[i], err = c.element(fmt.Sprintf("h[%d]", i), g1)
		if err != nil {
			return nil, err
		}
	}

	if c.remaining() != 0 {
		return nil, &DecodeError{Field: "end", Offset: c.offset, Err: ErrTrailingBytes}
	}

	return &PublicKey{w: w, h0: h0, h: h}, nil
}

type cursor struct {
	data   []byte
	offset int
}

func (c *cursor) remaining() int {
	return len(c.data) - c.offset
}

func (c *cursor) next(field string, size int) ([]byte, error) {
	if c.remaining() < size {
		return nil, &DecodeError{Field: field, Offset: c.offset, Err: ErrTruncated}
	}

	chunk := c.data[c.offset : c.offset+size]
	c.offset += size

	return chunk, nil
}

func (c *cursor) element(field string, g group.Group) (group.Element, error) {
	offset := c.offset

	chunk, err := c.next(field, g.ElementSize())
	if err != nil {
		return nil, err
	}

	e, err := g.FromBytes(chunk)
	if err != nil {
		return nil, &DecodeError{Field: field, Offset: offset, Err: err}
	}

	return e, nil
}
