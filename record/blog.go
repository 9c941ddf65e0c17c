// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record

import (
	"github.com/bitmark-inc/blogledger/account"
	"github.com/bitmark-inc/blogledger/fault"
	"github.com/bitmark-inc/blogledger/space"
)

// MaximumPosts - the one byte post counter stops here
const MaximumPosts = 255

// Blog - a blog record
type Blog struct {
	Owner              account.Identity   `json:"owner"`
	Salt               byte               `json:"salt"`
	PostCount          byte               `json:"postCount"`
	SubscriberCapacity uint16             `json:"subscriberCapacity"`
	CategoryReserve    uint32             `json:"categoryReserve"`
	Category           string             `json:"category"`
	Subscribers        []account.Identity `json:"subscribers"`
}

// NewBlog - a fresh blog reserving exactly the space of its initial category
func NewBlog(owner account.Identity, salt byte, capacity uint16, category string) *Blog {
	return &Blog{
		Owner:              owner,
		Salt:               salt,
		PostCount:          0,
		SubscriberCapacity: capacity,
		CategoryReserve:    uint32(len(category)),
		Category:           category,
		Subscribers:        []account.Identity{},
	}
}

func blogFields(category space.Field, capacity uint16) []space.Field {
	return []space.Field{
		space.Fixed("owner", ownerWidth),
		space.Fixed("addressSalt", saltWidth),
		space.Fixed("postCount", counterWidth),
		space.Fixed("subscriberCapacity", capacityWidth),
		space.Fixed("categoryReserve", reserveWidth),
		category,
		space.Bounded("subscribers", int(capacity), ownerWidth),
	}
}

// BlogSpace - bytes to allocate for a new blog
func BlogSpace(category string, capacity uint16) int {
	return space.For(blogFields(space.Text("category", category), capacity)...)
}

// BlogPlan - layout breakdown for a new blog
func BlogPlan(category string, capacity uint16) space.Allocation {
	return space.Plan(blogFields(space.Text("category", category), capacity)...)
}

// Length - bytes this blog occupies, fixed by its reserves
func (blog *Blog) Length() int {
	return space.For(blogFields(space.Reserved("category", int(blog.CategoryReserve)), blog.SubscriberCapacity)...)
}

// Pack - encode to the persisted layout
func (blog *Blog) Pack() ([]byte, error) {
	if err := checkText(blog.Category, blog.CategoryReserve); nil != err {
		return nil, err
	}
	if len(blog.Subscribers) > int(blog.SubscriberCapacity) {
		return nil, fault.ErrCapacityExceeded
	}

	e := newEncoder(blog.Length(), blogHeader)
	e.bytes(blog.Owner[:])
	e.byte(blog.Salt)
	e.byte(blog.PostCount)
	e.uint16(blog.SubscriberCapacity)
	e.uint32(blog.CategoryReserve)
	e.text(blog.Category, blog.CategoryReserve)
	e.uint32(uint32(len(blog.Subscribers)))
	for _, s := range blog.Subscribers {
		e.bytes(s[:])
	}
	return e.buffer, nil
}

// UnpackBlog - decode a blog buffer
func UnpackBlog(buffer []byte) (*Blog, error) {
	d := newDecoder(buffer, blogHeader)

	blog := &Blog{
		Owner:              d.identity(),
		Salt:               d.byte(),
		PostCount:          d.byte(),
		SubscriberCapacity: d.uint16(),
		CategoryReserve:    d.uint32(),
	}
	blog.Category = d.text(blog.CategoryReserve)

	n := d.uint32()
	if nil == d.err && n > uint32(blog.SubscriberCapacity) {
		return nil, fault.ErrCapacityExceeded
	}
	slots := d.take(int(blog.SubscriberCapacity) * ownerWidth)
	if err := d.finish(); nil != err {
		return nil, err
	}

	blog.Subscribers = make([]account.Identity, n)
	for i := range blog.Subscribers {
		copy(blog.Subscribers[i][:], slots[i*ownerWidth:])
	}
	return blog, nil
}
