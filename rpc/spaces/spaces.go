// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package spaces

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/blogledger/fault"
	"github.com/bitmark-inc/blogledger/record"
	"github.com/bitmark-inc/blogledger/rpc/ratelimit"
	"github.com/bitmark-inc/blogledger/space"
)

const (
	rateLimitSpace = 200
	rateBurstSpace = 100
)

// Space - type for RPC calls
type Space struct {
	Log     *logger.L
	Limiter *rate.Limiter
}

// New - create the space service
func New(log *logger.L) *Space {
	return &Space{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitSpace, rateBurstSpace),
	}
}

// PlanArguments - the initial content of a record
type PlanArguments struct {
	Kind     string `json:"kind"`
	Category string `json:"category"`
	Capacity uint16 `json:"capacity"`
	Title    string `json:"title"`
	Body     string `json:"body"`
}

// Plan - byte breakdown of a record allocated for the given content
func (s *Space) Plan(arguments *PlanArguments, reply *space.Allocation) error {
	if err := ratelimit.Limit(s.Limiter); nil != err {
		return err
	}

	if nil == arguments {
		return fault.ErrMissingParameters
	}

	switch arguments.Kind {
	case "blog":
		*reply = record.BlogPlan(arguments.Category, arguments.Capacity)
	case "post":
		*reply = record.PostPlan(arguments.Title, arguments.Body)
	default:
		return fault.ErrWrongRecordKind
	}
	return nil
}
