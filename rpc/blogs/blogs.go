// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blogs

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/blogledger/account"
	"github.com/bitmark-inc/blogledger/address"
	"github.com/bitmark-inc/blogledger/fault"
	"github.com/bitmark-inc/blogledger/ledger"
	"github.com/bitmark-inc/blogledger/record"
	"github.com/bitmark-inc/blogledger/rpc/ratelimit"
)

const (
	rateLimitBlog = 200
	rateBurstBlog = 100
)

// Blog - type for RPC calls
type Blog struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Reader  ledger.Reader
	Ledger  *ledger.Ledger
}

// New - create the blog service
func New(log *logger.L, reader ledger.Reader, l *ledger.Ledger) *Blog {
	return &Blog{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitBlog, rateBurstBlog),
		Reader:  reader,
		Ledger:  l,
	}
}

// GetArguments - select a blog by owner or by address
type GetArguments struct {
	Owner   *account.Identity `json:"owner,omitempty"`
	Address *address.Address  `json:"address,omitempty"`
}

// GetReply - the blog and where it lives
type GetReply struct {
	Address address.Address `json:"address"`
	Blog    *record.Blog    `json:"blog"`
	Space   int             `json:"space"`
}

// Get - fetch a blog
func (b *Blog) Get(arguments *GetArguments, reply *GetReply) error {
	if err := ratelimit.Limit(b.Limiter); nil != err {
		return err
	}

	if nil == arguments {
		return fault.ErrMissingParameters
	}

	var blogAddress address.Address
	switch {
	case nil != arguments.Address:
		blogAddress = *arguments.Address
	case nil != arguments.Owner:
		a, _, err := b.Ledger.BlogAddress(*arguments.Owner)
		if nil != err {
			return err
		}
		blogAddress = a
	default:
		return fault.ErrMissingParameters
	}

	b.Log.Debugf("Blog.Get: %s", blogAddress)

	blog, err := b.Ledger.Blog(b.Reader, blogAddress)
	if nil != err {
		return err
	}

	reply.Address = blogAddress
	reply.Blog = blog
	reply.Space = blog.Length()
	return nil
}
