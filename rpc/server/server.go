// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package server

import (
	"net/rpc"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/blogledger/counter"
	"github.com/bitmark-inc/blogledger/ledger"
	"github.com/bitmark-inc/blogledger/rpc/blogs"
	"github.com/bitmark-inc/blogledger/rpc/instructions"
	"github.com/bitmark-inc/blogledger/rpc/node"
	"github.com/bitmark-inc/blogledger/rpc/posts"
	"github.com/bitmark-inc/blogledger/rpc/spaces"
)

// Create - an rpc server with every service registered
//
// reads go through reader, writes through submitter
func Create(
	log *logger.L,
	version string,
	chain string,
	reader ledger.Reader,
	l *ledger.Ledger,
	submitter instructions.Submitter,
	rpcCount *counter.Counter,
) *rpc.Server {

	start := time.Now().UTC()

	server := rpc.NewServer()

	_ = server.Register(instructions.New(log, submitter))
	_ = server.Register(blogs.New(log, reader, l))
	_ = server.Register(posts.New(log, reader, l))
	_ = server.Register(spaces.New(log))
	_ = server.Register(node.New(log, chain, l.Program(), start, version, rpcCount))

	return server
}
