// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package posts

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/blogledger/address"
	"github.com/bitmark-inc/blogledger/fault"
	"github.com/bitmark-inc/blogledger/ledger"
	"github.com/bitmark-inc/blogledger/record"
	"github.com/bitmark-inc/blogledger/rpc/ratelimit"
)

const (
	rateLimitPost = 200
	rateBurstPost = 100
)

// Post - type for RPC calls
type Post struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Reader  ledger.Reader
	Ledger  *ledger.Ledger
}

// New - create the post service
func New(log *logger.L, reader ledger.Reader, l *ledger.Ledger) *Post {
	return &Post{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitPost, rateBurstPost),
		Reader:  reader,
		Ledger:  l,
	}
}

// GetArguments - the post address
type GetArguments struct {
	Address *address.Address `json:"address"`
}

// GetReply - a single post
type GetReply struct {
	Address address.Address `json:"address"`
	Post    *record.Post    `json:"post"`
}

// Get - fetch one post
func (p *Post) Get(arguments *GetArguments, reply *GetReply) error {
	if err := ratelimit.Limit(p.Limiter); nil != err {
		return err
	}

	if nil == arguments || nil == arguments.Address {
		return fault.ErrMissingParameters
	}

	post, err := p.Ledger.Post(p.Reader, *arguments.Address)
	if nil != err {
		return err
	}

	reply.Address = *arguments.Address
	reply.Post = post
	return nil
}

// ---

// ListArguments - a window over the posts of a blog
type ListArguments struct {
	Blog  *address.Address `json:"blog"`
	Start uint64           `json:"start,string"`
	Count int              `json:"count"`
}

// ListReply - posts in creation order
type ListReply struct {
	Posts     []ledger.Entry `json:"posts"`
	NextStart uint64         `json:"nextStart,string"`
}

// List - posts of a blog starting at an entry index
func (p *Post) List(arguments *ListArguments, reply *ListReply) error {
	if nil == arguments {
		return fault.ErrMissingParameters
	}

	if err := ratelimit.LimitN(p.Limiter, arguments.Count, ledger.MaximumListCount); nil != err {
		return err
	}

	if nil == arguments.Blog {
		return fault.ErrMissingParameters
	}

	p.Log.Debugf("Post.List: blog: %s  start: %d  count: %d", arguments.Blog, arguments.Start, arguments.Count)

	entries, err := p.Ledger.Posts(p.Reader, *arguments.Blog, arguments.Start, arguments.Count)
	if nil != err {
		return err
	}

	reply.Posts = entries
	reply.NextStart = arguments.Start + uint64(len(entries))
	return nil
}
