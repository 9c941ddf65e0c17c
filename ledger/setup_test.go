// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger_test

import (
	"os"
	"testing"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/blogledger/account"
	"github.com/bitmark-inc/blogledger/address"
	"github.com/bitmark-inc/blogledger/fault"
	"github.com/bitmark-inc/blogledger/guard"
	"github.com/bitmark-inc/blogledger/ledger"
)

func TestMain(m *testing.M) {
	directory, err := os.MkdirTemp("", "ledger-testing")
	if nil != err {
		panic(err)
	}

	logging := logger.Configuration{
		Directory: directory,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}
	_ = logger.Initialise(logging)

	rc := m.Run()

	logger.Finalise()
	_ = os.RemoveAll(directory)
	os.Exit(rc)
}

// in-memory account space with the same rules as the storage package
type memoryAccounts struct {
	data map[address.Address][]byte
}

func newMemoryAccounts() *memoryAccounts {
	return &memoryAccounts{
		data: make(map[address.Address][]byte),
	}
}

func (m *memoryAccounts) Allocate(a address.Address, buffer []byte) error {
	if _, ok := m.data[a]; ok {
		return fault.ErrAddressCollision
	}
	m.data[a] = append([]byte{}, buffer...)
	return nil
}

func (m *memoryAccounts) Load(a address.Address) ([]byte, error) {
	buffer, ok := m.data[a]
	if !ok {
		return nil, fault.ErrAccountNotFound
	}
	return append([]byte{}, buffer...), nil
}

func (m *memoryAccounts) Store(a address.Address, buffer []byte) error {
	current, ok := m.data[a]
	if !ok {
		return fault.ErrAccountNotFound
	}
	if len(current) != len(buffer) {
		return fault.ErrAllocationSizeChanged
	}
	m.data[a] = append([]byte{}, buffer...)
	return nil
}

// snapshot - copy of every buffer for before/after comparison
func (m *memoryAccounts) snapshot() map[address.Address][]byte {
	s := make(map[address.Address][]byte, len(m.data))
	for k, v := range m.data {
		s[k] = append([]byte{}, v...)
	}
	return s
}

// failing wraps memoryAccounts and refuses allocations
type failingAccounts struct {
	*memoryAccounts
}

func (f failingAccounts) Allocate(a address.Address, buffer []byte) error {
	return fault.ErrAccountTooLarge
}

var testProgram = address.ProgramFromSeed("ledger test program")

func newLedger() *ledger.Ledger {
	return ledger.New(logger.New("ledger"), testProgram)
}

func newSigner(t *testing.T) guard.Signer {
	key, err := account.NewPrivateKey(true)
	if nil != err {
		t.Fatalf("new private key error: %s", err)
	}
	message := []byte("test")
	signer, err := guard.NewSigner(key.Account(), message, key.Sign(message))
	if nil != err {
		t.Fatalf("new signer error: %s", err)
	}
	return signer
}
