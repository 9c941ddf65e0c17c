// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package processor

import (
	"encoding/hex"
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/blogledger/address"
	"github.com/bitmark-inc/blogledger/fault"
	"github.com/bitmark-inc/blogledger/guard"
	"github.com/bitmark-inc/blogledger/instruction"
	"github.com/bitmark-inc/blogledger/ledger"
	"github.com/bitmark-inc/blogledger/storage"
)

// Result - outcome of an applied instruction
type Result struct {
	Kind       string          `json:"kind"`
	Digest     string          `json:"digest"`
	Address    address.Address `json:"address"`
	EntryIndex *uint8          `json:"entryIndex,omitempty"`
}

// Processor - applies instructions one at a time
type Processor struct {
	sync.Mutex
	log     *logger.L
	ledger  *ledger.Ledger
	testnet bool
}

// New - create a processor over an initialised storage
func New(log *logger.L, l *ledger.Ledger, testnet bool) *Processor {
	return &Processor{
		log:     log,
		ledger:  l,
		testnet: testnet,
	}
}

// Submit - verify, apply and journal one packed instruction
//
// every write of the instruction is committed together, or on any
// error none of them are
func (p *Processor) Submit(packed instruction.Packed) (*Result, error) {
	p.Lock()
	defer p.Unlock()

	i, err := packed.UnpackAll(p.testnet)
	if nil != err {
		p.log.Warnf("unpack error: %s", err)
		return nil, err
	}

	digest := packed.Digest()

	trx, err := storage.NewDBTransaction()
	if nil != err {
		p.log.Errorf("begin transaction error: %s", err)
		return nil, err
	}

	result, err := p.apply(trx, i, digest[:])
	if nil != err {
		trx.Abort()
		p.log.Warnf("%s: %x  refused: %s", i.Tag(), digest, err)
		return nil, err
	}

	trx.Put(storage.Pool.Instructions, digest[:], packed)
	err = trx.Commit()
	if nil != err {
		p.log.Criticalf("%s: %x  commit error: %s", i.Tag(), digest, err)
		return nil, err
	}

	p.log.Infof("%s: %x  applied to: %s", i.Tag(), digest, result.Address)
	return result, nil
}

func (p *Processor) apply(trx storage.Transaction, i instruction.Instruction, digest []byte) (*Result, error) {
	found, err := trx.Has(storage.Pool.Instructions, digest)
	if nil != err {
		return nil, err
	}
	if found {
		return nil, fault.ErrInstructionAlreadyExists
	}

	// Unpack has checked the signature
	signer := guard.Signer{
		Identity: i.GetSigner().Identity(),
		Verified: true,
	}

	accounts := storage.NewAccounts(trx)
	result := &Result{
		Kind:   i.Tag().String(),
		Digest: hex.EncodeToString(digest),
	}

	switch tx := i.(type) {

	case *instruction.InitialiseBlog:
		result.Address, err = p.ledger.InitialiseBlog(accounts, signer, tx.Signer.Identity(), tx.SubscriberCapacity, tx.Category)

	case *instruction.UpdateBlog:
		result.Address = tx.Blog
		err = p.ledger.UpdateCategory(accounts, signer, tx.Blog, tx.Category)

	case *instruction.AddSubscriber:
		result.Address = tx.Blog
		err = p.ledger.AddSubscriber(accounts, signer, tx.Blog, tx.Subscriber)

	case *instruction.CreatePost:
		var entryIndex uint8
		result.Address, entryIndex, err = p.ledger.CreatePost(accounts, signer, tx.Blog, tx.Title, tx.Body)
		result.EntryIndex = &entryIndex

	case *instruction.UpdatePost:
		result.Address = tx.Post
		err = p.ledger.UpdatePost(accounts, signer, tx.Post, tx.Title, tx.Body)

	case *instruction.DeletePost:
		result.Address = tx.Post
		err = p.ledger.DeletePost(accounts, signer, tx.Post, tx.Title, tx.Body)

	default:
		err = fault.ErrUnknownInstruction
	}

	if nil != err {
		return nil, err
	}
	return result, nil
}

// Ledger - the ledger instructions are applied to
func (p *Processor) Ledger() *ledger.Ledger {
	return p.ledger
}
