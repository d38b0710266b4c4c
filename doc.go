/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package bbskeys is the root of the BBS+ key material module.
//
// Packages for end developer usage
//
// pkg/crypto/primitive/bbskeys: key pair generation, public key encoding and validation.
//
// pkg/crypto/primitive/bbskeys/group/mathlib: group provider backed by IBM/mathlib (default).
//
// pkg/crypto/primitive/bbskeys/group/kilic: group provider backed by kilic/bls12-381.
//
// spi/group: the interfaces a group provider implements.
//
// component/log: module-scoped logging with a zap backend.
//
// Basic workflow
//
//      1) Create a group provider, e.g. mathlib.New().
//      2) Create a KeyMaterial with bbskeys.New, passing the provider and options.
//      3) Generate key pairs, encode public keys with MarshalPublicKey or EncodeMultibase.
//      4) Parse received keys with ParsePublicKey and call Validate before use.
package bbskeys
