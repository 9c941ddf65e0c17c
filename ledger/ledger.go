// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/blogledger/address"
)

// Reader - read access to the account space
type Reader interface {
	Load(address.Address) ([]byte, error)
}

// Accounts - the account space of one running instruction
//
// writes are staged and only become visible if the whole instruction
// succeeds
type Accounts interface {
	Reader
	Allocate(address.Address, []byte) error
	Store(address.Address, []byte) error
}

// Ledger - blog and post operations for one program
type Ledger struct {
	log     *logger.L
	program address.Address
}

// New - create a ledger deriving addresses under program
func New(log *logger.L, program address.Address) *Ledger {
	return &Ledger{
		log:     log,
		program: program,
	}
}

// Program - the address used as domain separation tag
func (l *Ledger) Program() address.Address {
	return l.program
}
