// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/blogledger/instruction"
)

func runCreateBlog(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	capacity, err := checkCapacity(c.Uint("capacity"))
	if nil != err {
		return err
	}
	category := c.String("category")

	if m.verbose {
		fmt.Fprintf(m.e, "category: %q\n", category)
		fmt.Fprintf(m.e, "capacity: %d\n", capacity)
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

	i := &instruction.InitialiseBlog{
		SubscriberCapacity: capacity,
		Category:           category,
		Nonce:              makeNonce(),
	}
	return submit(c, i, client, private)
}

func runUpdateBlog(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	category, err := checkCategory(c.String("category"))
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

	blog, err := blogOrOwned(c.String("blog"), client, private)
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "blog: %s\n", blog)
		fmt.Fprintf(m.e, "category: %q\n", category)
	}

	i := &instruction.UpdateBlog{
		Blog:     blog,
		Category: category,
		Nonce:    makeNonce(),
	}
	return submit(c, i, client, private)
}

func runSubscribe(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	subscriber, err := checkAccount(c.String("subscriber"), m.config, m.testnet)
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

	blog, err := blogOrOwned(c.String("blog"), client, private)
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "blog: %s\n", blog)
		fmt.Fprintf(m.e, "subscriber: %s\n", subscriber)
	}

	i := &instruction.AddSubscriber{
		Blog:       blog,
		Subscriber: subscriber.Identity(),
		Nonce:      makeNonce(),
	}
	return submit(c, i, client, private)
}

func runBlog(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	if blogFlag := c.String("blog"); "" != blogFlag {
		blog, err := checkAddress(blogFlag)
		if nil != err {
			return err
		}
		reply, err := client.GetBlog(blog)
		if nil != err {
			return err
		}
		return printJson(m.w, reply)
	}

	owner := c.String("owner")
	if "" == owner {
		owner = identityName(c, m.config)
	}
	acc, err := checkAccount(owner, m.config, m.testnet)
	if nil != err {
		return err
	}

	reply, err := client.GetOwnedBlog(acc.Identity())
	if nil != err {
		return err
	}
	return printJson(m.w, reply)
}
