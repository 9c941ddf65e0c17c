// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"github.com/bitmark-inc/blogledger/address"
	"github.com/bitmark-inc/blogledger/fault"
	"github.com/bitmark-inc/blogledger/guard"
	"github.com/bitmark-inc/blogledger/record"
)

// MaximumListCount - most posts returned by one Posts call
const MaximumListCount = 100

// PostAddress - the address of a blog's post number sequence
func (l *Ledger) PostAddress(blogAddress address.Address, sequence uint64) (address.Address, byte, error) {
	seeds, err := address.PostSeeds(blogAddress, sequence)
	if nil != err {
		return address.Address{}, 0, err
	}
	return address.Derive(l.program, seeds)
}

// CreatePost - add the next post to a blog
//
// the new post and the advanced counter are staged together, any
// failure leaves both untouched
func (l *Ledger) CreatePost(accounts Accounts, signer guard.Signer, blogAddress address.Address, title string, body string) (address.Address, byte, error) {
	blog, err := l.loadBlog(accounts, blogAddress)
	if nil != err {
		return address.Address{}, 0, err
	}

	err = guard.Authorise(signer, blog.Owner)
	if nil != err {
		return address.Address{}, 0, err
	}

	if blog.PostCount >= record.MaximumPosts {
		return address.Address{}, 0, fault.ErrAddressSpaceExhausted
	}

	postAddress, salt, err := l.PostAddress(blogAddress, uint64(blog.PostCount))
	if nil != err {
		return address.Address{}, 0, err
	}

	entryIndex := blog.PostCount
	post := record.NewPost(blogAddress, signer.Identity, salt, entryIndex, title, body)
	postBuffer, err := post.Pack()
	if nil != err {
		return address.Address{}, 0, err
	}

	blog.PostCount += 1
	blogBuffer, err := blog.Pack()
	if nil != err {
		return address.Address{}, 0, err
	}

	err = accounts.Allocate(postAddress, postBuffer)
	if nil != err {
		return address.Address{}, 0, err
	}
	err = accounts.Store(blogAddress, blogBuffer)
	if nil != err {
		return address.Address{}, 0, err
	}

	l.log.Infof("create post: %s  blog: %s  entry: %d  size: %d", postAddress, blogAddress, entryIndex, len(postBuffer))
	return postAddress, entryIndex, nil
}

// UpdatePost - rewrite title and body, each within its own reserve
func (l *Ledger) UpdatePost(accounts Accounts, signer guard.Signer, postAddress address.Address, title string, body string) error {
	return l.rewritePost(accounts, signer, postAddress, title, body, false)
}

// DeletePost - overwrite title and body and mark the post deleted
//
// the allocation is kept, there is no deallocation
func (l *Ledger) DeletePost(accounts Accounts, signer guard.Signer, postAddress address.Address, title string, body string) error {
	return l.rewritePost(accounts, signer, postAddress, title, body, true)
}

func (l *Ledger) rewritePost(accounts Accounts, signer guard.Signer, postAddress address.Address, title string, body string, deleted bool) error {
	post, err := l.loadPost(accounts, postAddress)
	if nil != err {
		return err
	}

	// the owner copied at creation decides, the blog is not re-read
	err = guard.Authorise(signer, post.Owner)
	if nil != err {
		return err
	}

	if post.Deleted {
		return fault.ErrPostDeleted
	}

	post.Title = title
	post.Body = body
	post.Deleted = deleted
	buffer, err := post.Pack()
	if nil != err {
		return err
	}

	l.log.Debugf("rewrite post: %s  deleted: %t", postAddress, deleted)
	return accounts.Store(postAddress, buffer)
}

// Post - read a post
func (l *Ledger) Post(reader Reader, postAddress address.Address) (*record.Post, error) {
	return l.loadPost(reader, postAddress)
}

// load a post and confirm it is the entry of its blog it claims to be
func (l *Ledger) loadPost(reader Reader, postAddress address.Address) (*record.Post, error) {
	buffer, err := reader.Load(postAddress)
	if nil != err {
		return nil, err
	}

	post, err := record.UnpackPost(buffer)
	if nil != err {
		return nil, err
	}

	seeds, err := address.PostSeeds(post.Blog, uint64(post.EntryIndex))
	if nil != err {
		return nil, err
	}
	err = address.Verify(l.program, postAddress, post.Salt, seeds)
	if nil != err {
		return nil, err
	}
	return post, nil
}

// Entry - a post together with its address
type Entry struct {
	Address address.Address `json:"address"`
	Post    *record.Post    `json:"post"`
}

// Posts - posts of a blog in creation order starting at entry start
func (l *Ledger) Posts(reader Reader, blogAddress address.Address, start uint64, count int) ([]Entry, error) {
	if count <= 0 || count > MaximumListCount {
		return nil, fault.ErrInvalidCount
	}

	blog, err := l.loadBlog(reader, blogAddress)
	if nil != err {
		return nil, err
	}

	entries := make([]Entry, 0, count)
	for n := start; n < uint64(blog.PostCount) && len(entries) < count; n += 1 {
		postAddress, _, err := l.PostAddress(blogAddress, n)
		if nil != err {
			return nil, err
		}
		post, err := l.Post(reader, postAddress)
		if nil != err {
			return nil, err
		}
		entries = append(entries, Entry{
			Address: postAddress,
			Post:    post,
		})
	}
	return entries, nil
}
