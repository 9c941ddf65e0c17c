// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package guard

import (
	"github.com/bitmark-inc/blogledger/account"
	"github.com/bitmark-inc/blogledger/fault"
)

// Signer - the identity an instruction was signed by
//
// Verified is only set by code that has checked the signature
type Signer struct {
	Identity account.Identity
	Verified bool
}

// NewSigner - check a signature over message and return a verified signer
func NewSigner(a *account.Account, message []byte, signature account.Signature) (Signer, error) {
	err := a.CheckSignature(message, signature)
	if nil != err {
		return Signer{}, err
	}
	return Signer{
		Identity: a.Identity(),
		Verified: true,
	}, nil
}

// Authorise - signer may mutate a record belonging to owner
func Authorise(signer Signer, owner account.Identity) error {
	if !signer.Verified || signer.Identity != owner {
		return fault.ErrUnauthorised
	}
	return nil
}

// AuthoriseCreation - signer may create a record whose address was
// derived from seedIdentity
func AuthoriseCreation(signer Signer, seedIdentity account.Identity) error {
	return Authorise(signer, seedIdentity)
}
