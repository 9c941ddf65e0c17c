// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/blogledger/command/blog-cli/rpccalls"
	"github.com/bitmark-inc/blogledger/instruction"
)

func runCreatePost(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	title, err := checkTitle(c.String("title"))
	if nil != err {
		return err
	}
	body := c.String("body")

	private, err := checkOwnerWithPassword(c, m.config)
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	blog, err := blogOrOwned(c.String("blog"), client, private)
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "blog: %s\n", blog)
		fmt.Fprintf(m.e, "title: %q\n", title)
	}

	i := &instruction.CreatePost{
		Blog:  blog,
		Title: title,
		Body:  body,
		Nonce: makeNonce(),
	}
	return submit(c, i, client, private)
}

func runUpdatePost(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	post, err := checkAddress(c.String("post"))
	if nil != err {
		return err
	}

	title, err := checkTitle(c.String("title"))
	if nil != err {
		return err
	}

	private, err := checkOwnerWithPassword(c, m.config)
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	i := &instruction.UpdatePost{
		Post:  post,
		Title: title,
		Body:  c.String("body"),
		Nonce: makeNonce(),
	}
	return submit(c, i, client, private)
}

func runDeletePost(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	post, err := checkAddress(c.String("post"))
	if nil != err {
		return err
	}

	private, err := checkOwnerWithPassword(c, m.config)
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	i := &instruction.DeletePost{
		Post:  post,
		Title: c.String("title"),
		Body:  c.String("body"),
		Nonce: makeNonce(),
	}
	return submit(c, i, client, private)
}

func runPost(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	post, err := checkAddress(c.String("post"))
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.GetPost(post)
	if nil != err {
		return err
	}
	return printJson(m.w, reply)
}

func runPosts(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	listConfig := &rpccalls.PostListData{
		Start: c.Uint64("start"),
		Count: c.Int("count"),
	}

	if blogFlag := c.String("blog"); "" != blogFlag {
		listConfig.Blog, err = checkAddress(blogFlag)
		if nil != err {
			return err
		}
	} else {
		acc, err := m.config.Account(identityName(c, m.config))
		if nil != err {
			return err
		}
		reply, err := client.GetOwnedBlog(acc.Identity())
		if nil != err {
			return err
		}
		listConfig.Blog = reply.Address
	}

	if m.verbose {
		fmt.Fprintf(m.e, "blog: %s\n", listConfig.Blog)
		fmt.Fprintf(m.e, "start: %d\n", listConfig.Start)
		fmt.Fprintf(m.e, "count: %d\n", listConfig.Count)
	}

	reply, err := client.ListPosts(listConfig)
	if nil != err {
		return err
	}
	return printJson(m.w, reply)
}
