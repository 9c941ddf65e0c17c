// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package spaces_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/blogledger/fault"
	"github.com/bitmark-inc/blogledger/record"
	"github.com/bitmark-inc/blogledger/rpc/fixtures"
	"github.com/bitmark-inc/blogledger/rpc/spaces"
	"github.com/bitmark-inc/blogledger/space"
)

func TestPlanBlog(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	s := spaces.New(logger.New(fixtures.LogCategory))

	var reply space.Allocation
	err := s.Plan(&spaces.PlanArguments{Kind: "blog", Category: "food", Capacity: 3}, &reply)
	assert.Nil(t, err, "wrong Plan")
	assert.Equal(t, record.BlogSpace("food", 3), reply.Total, "wrong total")
	assert.Equal(t, space.HeaderLength, reply.Header, "wrong header")
}

func TestPlanPost(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	s := spaces.New(logger.New(fixtures.LogCategory))

	var reply space.Allocation
	err := s.Plan(&spaces.PlanArguments{Kind: "post", Title: "t", Body: "some body"}, &reply)
	assert.Nil(t, err, "wrong Plan")
	assert.Equal(t, record.PostSpace("t", "some body"), reply.Total, "wrong total")
}

func TestPlanUnknownKind(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	s := spaces.New(logger.New(fixtures.LogCategory))

	var reply space.Allocation
	err := s.Plan(&spaces.PlanArguments{Kind: "comment"}, &reply)
	assert.Equal(t, fault.ErrWrongRecordKind, err, "wrong error")
}
