// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"bytes"

	"github.com/mr-tron/base58"
	"golang.org/x/crypto/ed25519"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/blogledger/fault"
	"github.com/bitmark-inc/blogledger/util"
)

// enumeration of supported key algorithms
const (
	ED25519 = 1
)

// miscellaneous constants
const (
	checksumLength = 4

	// bits in key code starting from LSB
	publicKeyCode = 0x01
	testKeyCode   = 0x02

	algorithmShift = 4 // shift 4 bits to get algorithm

	// IdentityLength - bytes of a raw public key as stored in records
	IdentityLength = ed25519.PublicKeySize
)

// Identity - the raw public key of a signer
//
// this is the form stored inside blog and post records and used as a
// seed for address derivation
type Identity [IdentityLength]byte

// String - base58 of the raw key (no network flag or checksum)
func (identity Identity) String() string {
	return base58.Encode(identity[:])
}

// MarshalText - JSON form of an identity
func (identity Identity) MarshalText() ([]byte, error) {
	return []byte(identity.String()), nil
}

// UnmarshalText - accept either a raw base58 key or a full account string
func (identity *Identity) UnmarshalText(s []byte) error {
	if a, err := AccountFromBase58(string(s)); nil == err {
		*identity = a.Identity()
		return nil
	}
	b, err := base58.Decode(string(s))
	if nil != err || IdentityLength != len(b) {
		return fault.ErrCannotDecodeAccount
	}
	copy(identity[:], b)
	return nil
}

// Account - an ed25519 public key with its network flag
type Account struct {
	Test      bool
	PublicKey []byte
}

// NewAccount - account for a raw identity
func NewAccount(identity Identity, test bool) *Account {
	return &Account{
		Test:      test,
		PublicKey: append([]byte{}, identity[:]...),
	}
}

// AccountFromBase58 - decode the checksummed base58 text form
func AccountFromBase58(accountBase58Encoded string) (*Account, error) {
	accountDecoded, err := base58.Decode(accountBase58Encoded)
	if nil != err || len(accountDecoded) <= checksumLength {
		return nil, fault.ErrCannotDecodeAccount
	}

	checksumStart := len(accountDecoded) - checksumLength
	checksum := sha3.Sum256(accountDecoded[:checksumStart])
	if !bytes.Equal(checksum[:checksumLength], accountDecoded[checksumStart:]) {
		return nil, fault.ErrChecksumMismatch
	}
	return AccountFromBytes(accountDecoded[:checksumStart])
}

// AccountFromBytes - decode key variant followed by the public key
func AccountFromBytes(accountBytes []byte) (*Account, error) {
	keyVariant, keyVariantLength := util.FromVarint64(accountBytes)
	if 0 == keyVariantLength || keyVariant&publicKeyCode != publicKeyCode {
		return nil, fault.ErrNotPublicKey
	}

	if ED25519 != keyVariant>>algorithmShift {
		return nil, fault.ErrInvalidKeyType
	}

	publicKey := accountBytes[keyVariantLength:]
	if ed25519.PublicKeySize != len(publicKey) {
		return nil, fault.ErrInvalidKeyLength
	}

	return &Account{
		Test:      0 != keyVariant&testKeyCode,
		PublicKey: append([]byte{}, publicKey...),
	}, nil
}

// Identity - the raw public key
func (account *Account) Identity() Identity {
	var identity Identity
	copy(identity[:], account.PublicKey)
	return identity
}

// IsTesting - true for test network accounts
func (account *Account) IsTesting() bool {
	return account.Test
}

// CheckSignature - verify an ed25519 signature of a message
func (account *Account) CheckSignature(message []byte, signature Signature) error {
	if ed25519.SignatureSize != len(signature) {
		return fault.ErrInvalidSignature
	}
	if !ed25519.Verify(account.PublicKey, message, signature) {
		return fault.ErrInvalidSignature
	}
	return nil
}

// Bytes - key variant followed by the public key
func (account *Account) Bytes() []byte {
	keyVariant := byte(ED25519<<algorithmShift) | publicKeyCode
	if account.Test {
		keyVariant |= testKeyCode
	}
	return append([]byte{keyVariant}, account.PublicKey...)
}

// String - checksummed base58 text form
func (account *Account) String() string {
	buffer := account.Bytes()
	checksum := sha3.Sum256(buffer)
	return base58.Encode(append(buffer, checksum[:checksumLength]...))
}

// MarshalText - convert an account to its base58 JSON form
func (account Account) MarshalText() ([]byte, error) {
	return []byte(account.String()), nil
}

// UnmarshalText - convert a base58 JSON string to an account
func (account *Account) UnmarshalText(s []byte) error {
	a, err := AccountFromBase58(string(s))
	if nil != err {
		return err
	}
	*account = *a
	return nil
}
