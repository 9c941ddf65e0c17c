// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ratelimit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/blogledger/fault"
	"github.com/bitmark-inc/blogledger/rpc/ratelimit"
)

func TestLimit(t *testing.T) {
	limiter := rate.NewLimiter(1000, 10)
	assert.Nil(t, ratelimit.Limit(limiter))

	// burst of zero can never be satisfied
	assert.Equal(t, fault.ErrRateLimiting, ratelimit.Limit(rate.NewLimiter(1, 0)))
}

func TestLimitN(t *testing.T) {
	limiter := rate.NewLimiter(1000, 100)

	assert.Nil(t, ratelimit.LimitN(limiter, 5, 10))
	assert.Equal(t, fault.ErrInvalidCount, ratelimit.LimitN(limiter, 0, 10))
	assert.Equal(t, fault.ErrInvalidCount, ratelimit.LimitN(limiter, 11, 10))

	// more than the burst
	assert.Equal(t, fault.ErrRateLimiting, ratelimit.LimitN(rate.NewLimiter(1000, 2), 5, 10))
}
