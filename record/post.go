// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record

import (
	"github.com/bitmark-inc/blogledger/account"
	"github.com/bitmark-inc/blogledger/address"
	"github.com/bitmark-inc/blogledger/space"
)

// Post - a post record
type Post struct {
	Blog         address.Address  `json:"blog"`
	Owner        account.Identity `json:"owner"`
	Salt         byte             `json:"salt"`
	EntryIndex   byte             `json:"entryIndex"`
	Deleted      bool             `json:"deleted"`
	TitleReserve uint32           `json:"titleReserve"`
	BodyReserve  uint32           `json:"bodyReserve"`
	Title        string           `json:"title"`
	Body         string           `json:"body"`
}

// NewPost - a fresh post reserving exactly the space of its initial content
//
// blog and entryIndex are the seeds of the post's address and salt
// is the one found when deriving it
func NewPost(blog address.Address, owner account.Identity, salt byte, entryIndex byte, title string, body string) *Post {
	return &Post{
		Blog:         blog,
		Owner:        owner,
		Salt:         salt,
		EntryIndex:   entryIndex,
		TitleReserve: uint32(len(title)),
		BodyReserve:  uint32(len(body)),
		Title:        title,
		Body:         body,
	}
}

func postFields(title space.Field, body space.Field) []space.Field {
	return []space.Field{
		space.Fixed("blog", blogWidth),
		space.Fixed("owner", ownerWidth),
		space.Fixed("addressSalt", saltWidth),
		space.Fixed("entryIndex", counterWidth),
		space.Fixed("deleted", flagWidth),
		space.Fixed("titleReserve", reserveWidth),
		space.Fixed("bodyReserve", reserveWidth),
		title,
		body,
	}
}

// PostSpace - bytes to allocate for a new post
func PostSpace(title string, body string) int {
	return space.For(postFields(space.Text("title", title), space.Text("body", body))...)
}

// PostPlan - layout breakdown for a new post
func PostPlan(title string, body string) space.Allocation {
	return space.Plan(postFields(space.Text("title", title), space.Text("body", body))...)
}

// Length - bytes this post occupies, fixed by its reserves
func (post *Post) Length() int {
	return space.For(postFields(
		space.Reserved("title", int(post.TitleReserve)),
		space.Reserved("body", int(post.BodyReserve)),
	)...)
}

// Pack - encode to the persisted layout
func (post *Post) Pack() ([]byte, error) {
	if err := checkText(post.Title, post.TitleReserve); nil != err {
		return nil, err
	}
	if err := checkText(post.Body, post.BodyReserve); nil != err {
		return nil, err
	}

	e := newEncoder(post.Length(), postHeader)
	e.bytes(post.Blog[:])
	e.bytes(post.Owner[:])
	e.byte(post.Salt)
	e.byte(post.EntryIndex)
	if post.Deleted {
		e.byte(1)
	} else {
		e.byte(0)
	}
	e.uint32(post.TitleReserve)
	e.uint32(post.BodyReserve)
	e.text(post.Title, post.TitleReserve)
	e.text(post.Body, post.BodyReserve)
	return e.buffer, nil
}

// UnpackPost - decode a post buffer
func UnpackPost(buffer []byte) (*Post, error) {
	d := newDecoder(buffer, postHeader)

	post := &Post{
		Blog:         d.address(),
		Owner:        d.identity(),
		Salt:         d.byte(),
		EntryIndex:   d.byte(),
		Deleted:      0 != d.byte(),
		TitleReserve: d.uint32(),
		BodyReserve:  d.uint32(),
	}
	post.Title = d.text(post.TitleReserve)
	post.Body = d.text(post.BodyReserve)

	if err := d.finish(); nil != err {
		return nil, err
	}
	return post, nil
}
