// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package processor_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/blogledger/account"
	"github.com/bitmark-inc/blogledger/address"
	"github.com/bitmark-inc/blogledger/fault"
	"github.com/bitmark-inc/blogledger/instruction"
	"github.com/bitmark-inc/blogledger/ledger"
	"github.com/bitmark-inc/blogledger/processor"
	"github.com/bitmark-inc/blogledger/storage"
)

func TestMain(m *testing.M) {
	directory, err := os.MkdirTemp("", "processor-testing")
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

func setup(t *testing.T) *processor.Processor {
	err := storage.Initialise(filepath.Join(t.TempDir(), "test"), storage.ReadWrite)
	if nil != err {
		t.Fatalf("storage initialise error: %s", err)
	}
	program := address.ProgramFromSeed("processor test program")
	l := ledger.New(logger.New("ledger"), program)
	return processor.New(logger.New("processor"), l, true)
}

func teardown() {
	storage.Finalise()
}

func newKey(t *testing.T) *account.PrivateKey {
	key, err := account.NewPrivateKey(true)
	if nil != err {
		t.Fatalf("new private key error: %s", err)
	}
	return key
}

// pack unsigned, sign the message, pack again
func sign(t *testing.T, key *account.PrivateKey, i instruction.Instruction, set func(account.Signature)) instruction.Packed {
	message, _ := i.Pack()
	set(key.Sign(message))
	packed, err := i.Pack()
	if nil != err {
		t.Fatalf("pack error: %s", err)
	}
	return packed
}

func initialiseBlog(t *testing.T, key *account.PrivateKey, capacity uint16, category string, nonce uint64) instruction.Packed {
	i := &instruction.InitialiseBlog{
		Signer:             key.Account(),
		SubscriberCapacity: capacity,
		Category:           category,
		Nonce:              nonce,
	}
	return sign(t, key, i, func(s account.Signature) { i.Signature = s })
}

func createPost(t *testing.T, key *account.PrivateKey, blog address.Address, title string, nonce uint64) instruction.Packed {
	i := &instruction.CreatePost{
		Signer: key.Account(),
		Blog:   blog,
		Title:  title,
		Body:   "body of " + title,
		Nonce:  nonce,
	}
	return sign(t, key, i, func(s account.Signature) { i.Signature = s })
}

func TestLifecycle(t *testing.T) {
	p := setup(t)
	defer teardown()

	owner := newKey(t)
	reader := storage.Committed{}

	result, err := p.Submit(initialiseBlog(t, owner, 2, "tech", 1))
	assert.Nil(t, err)
	assert.Equal(t, "initialize_blog", result.Kind)
	blog := result.Address

	expected, _, err := p.Ledger().BlogAddress(owner.Account().Identity())
	assert.Nil(t, err)
	assert.Equal(t, expected, blog)

	subscriber := &instruction.AddSubscriber{Signer: owner.Account(), Blog: blog, Subscriber: account.Identity{0xaa}}
	_, err = p.Submit(sign(t, owner, subscriber, func(s account.Signature) { subscriber.Signature = s }))
	assert.Nil(t, err)

	update := &instruction.UpdateBlog{Signer: owner.Account(), Blog: blog, Category: "food"}
	_, err = p.Submit(sign(t, owner, update, func(s account.Signature) { update.Signature = s }))
	assert.Nil(t, err)

	result, err = p.Submit(createPost(t, owner, blog, "t1", 1))
	assert.Nil(t, err)
	assert.Equal(t, "create_post", result.Kind)
	assert.Equal(t, uint8(0), *result.EntryIndex)
	post1 := result.Address

	result, err = p.Submit(createPost(t, owner, blog, "t2", 2))
	assert.Nil(t, err)
	assert.Equal(t, uint8(1), *result.EntryIndex)

	b, err := p.Ledger().Blog(reader, blog)
	assert.Nil(t, err)
	assert.Equal(t, "food", b.Category)
	assert.Equal(t, byte(2), b.PostCount)
	assert.Equal(t, []account.Identity{{0xaa}}, b.Subscribers)

	rewrite := &instruction.UpdatePost{Signer: owner.Account(), Post: post1, Title: "T1", Body: "new"}
	_, err = p.Submit(sign(t, owner, rewrite, func(s account.Signature) { rewrite.Signature = s }))
	assert.Nil(t, err)

	remove := &instruction.DeletePost{Signer: owner.Account(), Post: post1}
	result, err = p.Submit(sign(t, owner, remove, func(s account.Signature) { remove.Signature = s }))
	assert.Nil(t, err)
	assert.Equal(t, "delete_post", result.Kind)
	assert.Nil(t, result.EntryIndex)

	entries, err := p.Ledger().Posts(reader, blog, 0, 10)
	assert.Nil(t, err)
	assert.Equal(t, 2, len(entries))
	assert.Equal(t, post1, entries[0].Address)
	assert.True(t, entries[0].Post.Deleted)
	assert.Equal(t, "t2", entries[1].Post.Title)
}

func TestReplayRefused(t *testing.T) {
	p := setup(t)
	defer teardown()

	owner := newKey(t)
	packed := initialiseBlog(t, owner, 1, "tech", 1)

	result, err := p.Submit(packed)
	assert.Nil(t, err)

	digest := packed.Digest()
	journal, err := storage.Pool.Instructions.Get(digest[:])
	assert.Nil(t, err)
	assert.Equal(t, []byte(packed), journal)

	post := createPost(t, owner, result.Address, "t1", 7)
	_, err = p.Submit(post)
	assert.Nil(t, err)

	_, err = p.Submit(post)
	assert.Equal(t, fault.ErrInstructionAlreadyExists, err)

	b, err := p.Ledger().Blog(storage.Committed{}, result.Address)
	assert.Nil(t, err)
	assert.Equal(t, byte(1), b.PostCount, "replay must not create a post")

	// a new nonce is a new instruction
	_, err = p.Submit(createPost(t, owner, result.Address, "t1", 8))
	assert.Nil(t, err)
}

func TestRefusedInstructionLeavesNoTrace(t *testing.T) {
	p := setup(t)
	defer teardown()

	owner := newKey(t)
	stranger := newKey(t)

	result, err := p.Submit(initialiseBlog(t, owner, 1, "news", 1))
	assert.Nil(t, err)
	blog := result.Address

	before, err := storage.Committed{}.Load(blog)
	assert.Nil(t, err)

	packed := createPost(t, stranger, blog, "spam", 1)
	_, err = p.Submit(packed)
	assert.Equal(t, fault.ErrUnauthorised, err)

	update := &instruction.UpdateBlog{Signer: owner.Account(), Blog: blog, Category: "politics-and-economy-long-string"}
	_, err = p.Submit(sign(t, owner, update, func(s account.Signature) { update.Signature = s }))
	assert.Equal(t, fault.ErrSpaceOverrun, err)

	after, err := storage.Committed{}.Load(blog)
	assert.Nil(t, err)
	assert.Equal(t, before, after)

	digest := packed.Digest()
	found, err := storage.Pool.Instructions.Has(digest[:])
	assert.Nil(t, err)
	assert.False(t, found, "refused instruction journalled")

	postAddress, _, err := p.Ledger().PostAddress(blog, 0)
	assert.Nil(t, err)
	_, err = storage.Committed{}.Load(postAddress)
	assert.Equal(t, fault.ErrAccountNotFound, err)

	// the transaction was released
	_, err = p.Submit(createPost(t, owner, blog, "ok", 1))
	assert.Nil(t, err)
}

func TestDuplicateBlog(t *testing.T) {
	p := setup(t)
	defer teardown()

	owner := newKey(t)

	_, err := p.Submit(initialiseBlog(t, owner, 1, "tech", 1))
	assert.Nil(t, err)

	_, err = p.Submit(initialiseBlog(t, owner, 1, "tech", 2))
	assert.Equal(t, fault.ErrAddressCollision, err)
}

func TestBadPackedRecords(t *testing.T) {
	p := setup(t)
	defer teardown()

	owner := newKey(t)
	packed := initialiseBlog(t, owner, 1, "tech", 1)

	tampered := append(instruction.Packed{}, packed...)
	tampered[len(tampered)-1] ^= 0xff
	_, err := p.Submit(tampered)
	assert.Equal(t, fault.ErrInvalidSignature, err)

	_, err = p.Submit(append(append(instruction.Packed{}, packed...), 0))
	assert.Equal(t, fault.ErrTrailingData, err)

	live, err := account.NewPrivateKey(false)
	assert.Nil(t, err)
	_, err = p.Submit(initialiseBlog(t, live, 1, "tech", 1))
	assert.Equal(t, fault.ErrTestNetworkMismatch, err)
}
