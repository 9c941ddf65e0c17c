// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package address

import (
	"encoding/hex"

	"github.com/mr-tron/base58"

	"github.com/bitmark-inc/blogledger/fault"
)

// Length - number of bytes in an address
const Length = 32

// Address - a derived record location
//
// no private key exists for a derived address, so the only way to
// "hold" one is to know the seeds that produce it
type Address [Length]byte

// FromBytes - copy a byte slice into an address
func FromBytes(b []byte) (Address, error) {
	var a Address
	if Length != len(b) {
		return a, fault.ErrCannotDecodeAddress
	}
	copy(a[:], b)
	return a, nil
}

// FromBase58 - decode the text form of an address
func FromBase58(s string) (Address, error) {
	b, err := base58.Decode(s)
	if nil != err {
		return Address{}, fault.ErrCannotDecodeAddress
	}
	return FromBytes(b)
}

// String - base58 text form
func (a Address) String() string {
	return base58.Encode(a[:])
}

// GoString - for %#v
func (a Address) GoString() string {
	return "<address:" + hex.EncodeToString(a[:]) + ">"
}

// MarshalText - JSON form
func (a Address) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText - JSON form
func (a *Address) UnmarshalText(s []byte) error {
	b, err := FromBase58(string(s))
	if nil != err {
		return err
	}
	*a = b
	return nil
}
