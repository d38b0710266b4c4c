/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package bbskeys

import (
	"fmt"

	"github.com/multiformats/go-multibase"
)

// EncodeMultibase returns the base58btc multibase form of MarshalPublicKey(pk).
func (k *KeyMaterial) EncodeMultibase(pk *PublicKey) (string, error) {
	s, err := multibase.Encode(multibase.Base58BTC, k.MarshalPublicKey(pk))
	if err != nil {
		return "", fmt.Errorf("multibase encode public key: %w", err)
	}

	return s, nil
}

// DecodeMultibase parses a public key from any multibase string.
func (k *KeyMaterial) DecodeMultibase(s string) (*PublicKey, error) {
	_, data, err := multibase.Decode(s)
	if err != nil {
		return nil, fmt.Errorf("multibase decode public key: %w", err)
	}

	return k.ParsePublicKey(data)
}
