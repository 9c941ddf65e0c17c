// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package address

import (
	"filippo.io/edwards25519"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/blogledger/account"
	"github.com/bitmark-inc/blogledger/fault"
)

// limits on seed tuples
const (
	MaximumSeeds      = 16
	MaximumSeedLength = 32

	// MaximumSequence - highest sequence number a single seed byte can carry
	MaximumSequence = 255
)

// seed tags
var (
	blogTag = []byte("blog")
	postTag = []byte("post")

	// appended after the program so derived digests cannot collide
	// with any other use of SHA3-256 over the same bytes
	marker = []byte("ProgramDerivedAddress")
)

// Derive - find the address and salt for a seed tuple
//
// salts are tried from 255 downwards and the first digest that is not
// a point on the ed25519 curve is taken; the result depends only on
// the program and the seeds
func Derive(program Address, seeds [][]byte) (Address, byte, error) {
	if err := checkSeeds(seeds); nil != err {
		return Address{}, 0, err
	}
	for salt := MaximumSequence; salt >= 0; salt -= 1 {
		a := digest(program, seeds, byte(salt))
		if !onCurve(a) {
			return a, byte(salt), nil
		}
	}
	return Address{}, 0, fault.ErrNoValidSalt
}

// Verify - confirm that a claimed address and salt belong to the seeds
func Verify(program Address, claimed Address, salt byte, seeds [][]byte) error {
	if err := checkSeeds(seeds); nil != err {
		return err
	}
	a := digest(program, seeds, salt)
	if a != claimed || onCurve(a) {
		return fault.ErrAddressMismatch
	}
	return nil
}

// BlogSeeds - seed tuple of the blog belonging to owner
func BlogSeeds(owner account.Identity) [][]byte {
	return [][]byte{blogTag, owner[:]}
}

// PostSeeds - seed tuple of post number sequence within a blog
//
// the sequence occupies a single byte; anything above 255 is refused
// rather than truncated
func PostSeeds(blog Address, sequence uint64) ([][]byte, error) {
	if sequence > MaximumSequence {
		return nil, fault.ErrAddressSpaceExhausted
	}
	return [][]byte{postTag, blog[:], {byte(sequence)}}, nil
}

// ProgramFromSeed - the program address used as domain separation tag
//
// the digest of an operator chosen phrase, so separate deployments
// derive disjoint address spaces
func ProgramFromSeed(seed string) Address {
	return sha3.Sum256([]byte(seed))
}

func checkSeeds(seeds [][]byte) error {
	if len(seeds) > MaximumSeeds {
		return fault.ErrTooManySeeds
	}
	for _, s := range seeds {
		if len(s) > MaximumSeedLength {
			return fault.ErrSeedTooLong
		}
	}
	return nil
}

func digest(program Address, seeds [][]byte, salt byte) Address {
	h := sha3.New256()
	for _, s := range seeds {
		h.Write(s)
	}
	h.Write([]byte{salt})
	h.Write(program[:])
	h.Write(marker)

	var a Address
	copy(a[:], h.Sum(nil))
	return a
}

// a valid compressed point could have a private key
func onCurve(a Address) bool {
	_, err := new(edwards25519.Point).SetBytes(a[:])
	return nil == err
}
