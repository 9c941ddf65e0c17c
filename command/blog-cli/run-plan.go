// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/blogledger/rpc/spaces"
)

func runPlan(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	kind, err := checkKind(c.String("kind"))
	if nil != err {
		return err
	}

	capacity, err := checkCapacity(c.Uint("capacity"))
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	plan, err := client.Plan(&spaces.PlanArguments{
		Kind:     kind,
		Category: c.String("category"),
		Capacity: capacity,
		Title:    c.String("title"),
		Body:     c.String("body"),
	})
	if nil != err {
		return err
	}

	return printJson(m.w, plan)
}
