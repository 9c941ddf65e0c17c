// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/blogledger/address"
	"github.com/bitmark-inc/blogledger/fault"
	"github.com/bitmark-inc/blogledger/storage"
)

func TestAccountsAllocate(t *testing.T) {
	setup(t)
	defer teardown()

	key := address.Address{1, 2, 3}

	trx, err := storage.NewDBTransaction()
	assert.Nil(t, err)
	accounts := storage.NewAccounts(trx)

	_, err = accounts.Load(key)
	assert.Equal(t, fault.ErrAccountNotFound, err)

	err = accounts.Allocate(key, []byte{1, 2, 3, 4})
	assert.Nil(t, err)

	err = accounts.Allocate(key, []byte{5, 6})
	assert.Equal(t, fault.ErrAddressCollision, err, "same transaction")

	assert.Nil(t, trx.Commit())

	trx, err = storage.NewDBTransaction()
	assert.Nil(t, err)
	accounts = storage.NewAccounts(trx)

	err = accounts.Allocate(key, []byte{5, 6})
	assert.Equal(t, fault.ErrAddressCollision, err, "committed")

	buffer, err := accounts.Load(key)
	assert.Nil(t, err)
	assert.Equal(t, []byte{1, 2, 3, 4}, buffer)
	trx.Abort()

	buffer, err = storage.Committed{}.Load(key)
	assert.Nil(t, err)
	assert.Equal(t, []byte{1, 2, 3, 4}, buffer)
}

func TestAccountsStore(t *testing.T) {
	setup(t)
	defer teardown()

	key := address.Address{9}

	trx, err := storage.NewDBTransaction()
	assert.Nil(t, err)
	accounts := storage.NewAccounts(trx)

	err = accounts.Store(key, []byte{1})
	assert.Equal(t, fault.ErrAccountNotFound, err, "store before allocate")

	assert.Nil(t, accounts.Allocate(key, []byte{0, 0, 0}))
	assert.Nil(t, accounts.Store(key, []byte{7, 8, 9}))

	err = accounts.Store(key, []byte{7, 8, 9, 10})
	assert.Equal(t, fault.ErrAllocationSizeChanged, err, "grow")

	err = accounts.Store(key, []byte{7})
	assert.Equal(t, fault.ErrAllocationSizeChanged, err, "shrink")

	buffer, err := accounts.Load(key)
	assert.Nil(t, err)
	assert.Equal(t, []byte{7, 8, 9}, buffer)

	assert.Nil(t, trx.Commit())

	buffer, err = storage.Committed{}.Load(key)
	assert.Nil(t, err)
	assert.Equal(t, []byte{7, 8, 9}, buffer)
}

func TestAccountsTooLarge(t *testing.T) {
	setup(t)
	defer teardown()

	trx, err := storage.NewDBTransaction()
	assert.Nil(t, err)
	defer trx.Abort()

	accounts := storage.NewAccounts(trx)
	err = accounts.Allocate(address.Address{4}, make([]byte, storage.MaximumAccountLength+1))
	assert.Equal(t, fault.ErrAccountTooLarge, err)
}

func TestCommittedNotFound(t *testing.T) {
	setup(t)
	defer teardown()

	_, err := storage.Committed{}.Load(address.Address{5})
	assert.Equal(t, fault.ErrAccountNotFound, err)
}
