// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"bytes"
	"crypto/rand"

	"github.com/mr-tron/base58"
	"golang.org/x/crypto/ed25519"
	"golang.org/x/crypto/nacl/secretbox"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/blogledger/fault"
)

// seed parameters
var (
	seedHeader = []byte{0x5a, 0xfe, 0x01}
	seedNonce  = [24]byte{}
	authIndex  = [16]byte{
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x03, 0xe7,
	}
)

const (
	seedPrefixLength   = 1
	secretKeyLength    = 32
	seedChecksumLength = 4
	seedLength         = 3 + seedPrefixLength + secretKeyLength + seedChecksumLength
)

// NewBase58Seed - generate a random base58 seed
//
// a seed is: header ++ network byte ++ 32 byte secret ++ checksum
func NewBase58Seed(test bool) (string, error) {
	secret := make([]byte, secretKeyLength)
	if _, err := rand.Read(secret); nil != err {
		return "", err
	}
	network := byte(0x00)
	if test {
		network = 0x01
	}
	seed := append(append([]byte{}, seedHeader...), network)
	seed = append(seed, secret...)
	checksum := sha3.Sum256(seed)
	return base58.Encode(append(seed, checksum[:seedChecksumLength]...)), nil
}

// PrivateKeyFromBase58Seed - expand a seed into its signing key
//
// the secret is sealed over a fixed index and the sealed bytes feed
// ed25519 key generation, so the same seed always yields the same key
func PrivateKeyFromBase58Seed(seedBase58Encoded string) (*PrivateKey, error) {
	seed, err := base58.Decode(seedBase58Encoded)
	if nil != err || seedLength != len(seed) {
		return nil, fault.ErrInvalidSeedLength
	}

	checksumStart := seedLength - seedChecksumLength
	digest := sha3.Sum256(seed[:checksumStart])
	if !bytes.Equal(digest[:seedChecksumLength], seed[checksumStart:]) {
		return nil, fault.ErrChecksumMismatch
	}

	if !bytes.Equal(seedHeader, seed[:len(seedHeader)]) {
		return nil, fault.ErrInvalidSeedHeader
	}

	secretStart := len(seedHeader) + seedPrefixLength
	var secret [secretKeyLength]byte
	copy(secret[:], seed[secretStart:checksumStart])

	sealed := secretbox.Seal([]byte{}, authIndex[:], &seedNonce, &secret)

	_, priv, err := ed25519.GenerateKey(bytes.NewBuffer(sealed))
	if nil != err {
		return nil, err
	}

	return &PrivateKey{
		Test:       0x01 == seed[len(seedHeader)],
		PrivateKey: priv,
	}, nil
}
