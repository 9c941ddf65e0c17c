// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/blogledger/rpc/spaces"
	"github.com/bitmark-inc/blogledger/space"
)

// Plan - ask blogd how a record would be laid out
func (client *Client) Plan(planConfig *spaces.PlanArguments) (*space.Allocation, error) {

	client.printJson("Plan Request", planConfig)

	var reply space.Allocation
	if err := client.client.Call("Space.Plan", planConfig, &reply); nil != err {
		return nil, err
	}

	return &reply, nil
}
