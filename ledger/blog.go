// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"github.com/bitmark-inc/blogledger/account"
	"github.com/bitmark-inc/blogledger/address"
	"github.com/bitmark-inc/blogledger/fault"
	"github.com/bitmark-inc/blogledger/guard"
	"github.com/bitmark-inc/blogledger/record"
)

// BlogAddress - the address of the blog belonging to owner
func (l *Ledger) BlogAddress(owner account.Identity) (address.Address, byte, error) {
	return address.Derive(l.program, address.BlogSeeds(owner))
}

// InitialiseBlog - create the blog of owner
//
// owner is the derivation seed and only owner may sign for it; the
// space reserved for category is its length now, and the subscriber
// list is reserved for its full capacity
func (l *Ledger) InitialiseBlog(accounts Accounts, signer guard.Signer, owner account.Identity, capacity uint16, category string) (address.Address, error) {
	err := guard.AuthoriseCreation(signer, owner)
	if nil != err {
		return address.Address{}, err
	}

	blogAddress, salt, err := l.BlogAddress(owner)
	if nil != err {
		return address.Address{}, err
	}

	blog := record.NewBlog(owner, salt, capacity, category)
	buffer, err := blog.Pack()
	if nil != err {
		return address.Address{}, err
	}

	err = accounts.Allocate(blogAddress, buffer)
	if nil != err {
		l.log.Debugf("initialise blog: %s  error: %s", blogAddress, err)
		return address.Address{}, err
	}

	l.log.Infof("initialise blog: %s  owner: %s  capacity: %d  size: %d", blogAddress, owner, capacity, len(buffer))
	return blogAddress, nil
}

// UpdateCategory - replace the category within its reserved space
func (l *Ledger) UpdateCategory(accounts Accounts, signer guard.Signer, blogAddress address.Address, category string) error {
	blog, err := l.loadBlog(accounts, blogAddress)
	if nil != err {
		return err
	}

	err = guard.Authorise(signer, blog.Owner)
	if nil != err {
		return err
	}

	blog.Category = category
	buffer, err := blog.Pack()
	if nil != err {
		return err
	}

	l.log.Debugf("update category: %s  length: %d/%d", blogAddress, len(category), blog.CategoryReserve)
	return accounts.Store(blogAddress, buffer)
}

// AddSubscriber - append to the subscriber list while capacity remains
func (l *Ledger) AddSubscriber(accounts Accounts, signer guard.Signer, blogAddress address.Address, subscriber account.Identity) error {
	blog, err := l.loadBlog(accounts, blogAddress)
	if nil != err {
		return err
	}

	err = guard.Authorise(signer, blog.Owner)
	if nil != err {
		return err
	}

	if len(blog.Subscribers) >= int(blog.SubscriberCapacity) {
		return fault.ErrCapacityExceeded
	}

	blog.Subscribers = append(blog.Subscribers, subscriber)
	buffer, err := blog.Pack()
	if nil != err {
		return err
	}

	l.log.Debugf("add subscriber: %s  to: %s  count: %d/%d", subscriber, blogAddress, len(blog.Subscribers), blog.SubscriberCapacity)
	return accounts.Store(blogAddress, buffer)
}

// Blog - read a blog
func (l *Ledger) Blog(reader Reader, blogAddress address.Address) (*record.Blog, error) {
	return l.loadBlog(reader, blogAddress)
}

// load a blog and confirm it really lives at its derived address
func (l *Ledger) loadBlog(reader Reader, blogAddress address.Address) (*record.Blog, error) {
	buffer, err := reader.Load(blogAddress)
	if nil != err {
		return nil, err
	}

	blog, err := record.UnpackBlog(buffer)
	if nil != err {
		return nil, err
	}

	err = address.Verify(l.program, blogAddress, blog.Salt, address.BlogSeeds(blog.Owner))
	if nil != err {
		return nil, err
	}
	return blog, nil
}
