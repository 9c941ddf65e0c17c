// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"time"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/blogledger/address"
	"github.com/bitmark-inc/blogledger/command/blog-cli/configuration"
	"github.com/bitmark-inc/blogledger/command/blog-cli/rpccalls"
	"github.com/bitmark-inc/blogledger/instruction"
)

// identity name from the global flag or the configured default
func identityName(c *cli.Context, config *configuration.Configuration) string {
	name := c.GlobalString("identity")
	if "" == name {
		name = config.DefaultIdentity
	}
	return name
}

// unlock the current identity, prompting if no password flag
func checkOwnerWithPassword(c *cli.Context, config *configuration.Configuration) (*configuration.Private, error) {
	name, err := checkName(identityName(c, config))
	if nil != err {
		return nil, err
	}

	if _, err := config.Identity(name); nil != err {
		return nil, err
	}

	password := c.GlobalString("password")
	if "" == password {
		password, err = promptCheckPassword()
		if nil != err {
			return nil, err
		}
	}

	return config.Private(password, name)
}

// connect to the first configured blogd
func connect(m *metadata) (*rpccalls.Client, error) {
	hostPort, err := m.config.Connection()
	if nil != err {
		return nil, err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "connect: %s\n", hostPort)
	}

	return rpccalls.NewClient(m.testnet, hostPort, m.verbose, m.e)
}

// sign and submit with the current identity and print the result
func submit(c *cli.Context, i instruction.Instruction, client *rpccalls.Client, private *configuration.Private) error {
	m := c.App.Metadata["config"].(*metadata)

	response, err := client.Submit(i, private.PrivateKey)
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

// blog from the flag or else the blog owned by the current identity
func blogOrOwned(blogFlag string, client *rpccalls.Client, private *configuration.Private) (address.Address, error) {
	if "" != blogFlag {
		return checkAddress(blogFlag)
	}

	reply, err := client.GetOwnedBlog(private.PrivateKey.Account().Identity())
	if nil != err {
		return address.Address{}, err
	}
	return reply.Address, nil
}

// instructions may repeat, the nonce keeps their digests distinct
func makeNonce() uint64 {
	return uint64(time.Now().UnixNano())
}
