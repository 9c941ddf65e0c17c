// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/blogledger/address"
	"github.com/bitmark-inc/blogledger/rpc/posts"
)

// PostListData - request data for a post listing
type PostListData struct {
	Blog  address.Address
	Start uint64
	Count int
}

// GetPost - fetch a single post
func (client *Client) GetPost(postAddress address.Address) (*posts.GetReply, error) {

	arguments := posts.GetArguments{
		Address: &postAddress,
	}

	var reply posts.GetReply
	if err := client.client.Call("Post.Get", &arguments, &reply); nil != err {
		return nil, err
	}

	client.printJson("Post Reply", reply)

	return &reply, nil
}

// ListPosts - posts of a blog in creation order
func (client *Client) ListPosts(listConfig *PostListData) (*posts.ListReply, error) {

	arguments := posts.ListArguments{
		Blog:  &listConfig.Blog,
		Start: listConfig.Start,
		Count: listConfig.Count,
	}

	client.printJson("List Request", arguments)

	var reply posts.ListReply
	if err := client.client.Call("Post.List", &arguments, &reply); nil != err {
		return nil, err
	}

	return &reply, nil
}
