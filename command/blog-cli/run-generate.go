// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/blogledger/account"
)

type generateReply struct {
	Seed       string              `json:"seed"`
	Account    *account.Account    `json:"account"`
	PrivateKey *account.PrivateKey `json:"privateKey"`
}

func runGenerate(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	seed, err := account.NewBase58Seed(m.testnet)
	if nil != err {
		return err
	}

	privateKey, err := account.PrivateKeyFromBase58Seed(seed)
	if nil != err {
		return err
	}

	return printJson(m.w, generateReply{
		Seed:       seed,
		Account:    privateKey.Account(),
		PrivateKey: privateKey,
	})
}
