// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/blogledger/account"
	"github.com/bitmark-inc/blogledger/address"
	"github.com/bitmark-inc/blogledger/rpc/blogs"
)

// GetBlog - fetch a blog by its address
func (client *Client) GetBlog(blogAddress address.Address) (*blogs.GetReply, error) {
	arguments := blogs.GetArguments{
		Address: &blogAddress,
	}
	return client.getBlog(&arguments)
}

// GetOwnedBlog - fetch the blog belonging to an owner
func (client *Client) GetOwnedBlog(owner account.Identity) (*blogs.GetReply, error) {
	arguments := blogs.GetArguments{
		Owner: &owner,
	}
	return client.getBlog(&arguments)
}

func (client *Client) getBlog(arguments *blogs.GetArguments) (*blogs.GetReply, error) {

	client.printJson("Blog Request", arguments)

	var reply blogs.GetReply
	if err := client.client.Call("Blog.Get", arguments, &reply); nil != err {
		return nil, err
	}

	client.printJson("Blog Reply", reply)

	return &reply, nil
}
