// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"github.com/bitmark-inc/blogledger/address"
	"github.com/bitmark-inc/blogledger/fault"
)

// MaximumAccountLength - largest buffer a single account may hold
const MaximumAccountLength = 10 * 1024 * 1024

// Accounts - the account space seen through an open transaction
type Accounts struct {
	trx  Transaction
	pool *PoolHandle
}

// NewAccounts - account space for the instruction running in trx
func NewAccounts(trx Transaction) *Accounts {
	return &Accounts{
		trx:  trx,
		pool: Pool.Accounts,
	}
}

// Allocate - claim an address with a buffer whose length is then fixed
func (a *Accounts) Allocate(key address.Address, buffer []byte) error {
	if len(buffer) > MaximumAccountLength {
		return fault.ErrAccountTooLarge
	}
	found, err := a.trx.Has(a.pool, key[:])
	if nil != err {
		return err
	}
	if found {
		return fault.ErrAddressCollision
	}
	a.trx.Put(a.pool, key[:], buffer)
	return nil
}

// Load - the current buffer at an address
func (a *Accounts) Load(key address.Address) ([]byte, error) {
	buffer, err := a.trx.Get(a.pool, key[:])
	if nil != err {
		return nil, err
	}
	if nil == buffer {
		return nil, fault.ErrAccountNotFound
	}
	return buffer, nil
}

// Store - overwrite an allocated buffer in place
func (a *Accounts) Store(key address.Address, buffer []byte) error {
	current, err := a.Load(key)
	if nil != err {
		return err
	}
	if len(current) != len(buffer) {
		return fault.ErrAllocationSizeChanged
	}
	a.trx.Put(a.pool, key[:], buffer)
	return nil
}

// Committed - read only view of the account space outside any transaction
type Committed struct{}

// Load - the committed buffer at an address
func (Committed) Load(key address.Address) ([]byte, error) {
	if nil == Pool.Accounts {
		return nil, fault.ErrNotInitialised
	}
	buffer, err := Pool.Accounts.Get(key[:])
	if nil != err {
		return nil, err
	}
	if nil == buffer {
		return nil, fault.ErrAccountNotFound
	}
	return buffer, nil
}
