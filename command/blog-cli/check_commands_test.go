// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/blogledger/account"
	"github.com/bitmark-inc/blogledger/address"
	"github.com/bitmark-inc/blogledger/chain"
	"github.com/bitmark-inc/blogledger/command/blog-cli/configuration"
	"github.com/bitmark-inc/blogledger/fault"
)

func TestCheckNetwork(t *testing.T) {
	items := []struct {
		in  string
		out string
	}{
		{"", chain.Testing},
		{"test", chain.Testing},
		{"live", chain.Blog},
		{"blog", chain.Blog},
		{"regression", chain.Local},
	}
	for _, item := range items {
		network, err := checkNetwork(item.in)
		assert.Nil(t, err, "network: %q", item.in)
		assert.Equal(t, item.out, network, "network: %q", item.in)
	}

	_, err := checkNetwork("bitcoin")
	assert.Equal(t, fault.ErrInvalidChain, err, "wrong network accepted")

	assert.True(t, isTestnet(chain.Local), "local is a test network")
	assert.False(t, isTestnet(chain.Blog), "blog is live")
}

func TestCheckSeed(t *testing.T) {
	seed, err := checkSeed("", true, true)
	assert.Nil(t, err, "generate error")

	same, err := checkSeed(seed, false, true)
	assert.Nil(t, err, "existing seed error")
	assert.Equal(t, seed, same, "seed changed")

	_, err = checkSeed(seed, false, false)
	assert.Equal(t, fault.ErrTestNetworkMismatch, err, "test seed on live network")

	_, err = checkSeed(seed, true, true)
	assert.Equal(t, ErrConflictingSeedOption, err, "seed and new together")

	_, err = checkSeed("", false, true)
	assert.Equal(t, ErrRequiredSeed, err, "no seed accepted")
}

func TestCheckCapacity(t *testing.T) {
	capacity, err := checkCapacity(65535)
	assert.Nil(t, err, "maximum capacity error")
	assert.Equal(t, uint16(65535), capacity, "wrong capacity")

	_, err = checkCapacity(65536)
	assert.Equal(t, ErrCapacityTooLarge, err, "oversized capacity accepted")
}

func TestCheckAddress(t *testing.T) {
	a := address.Address{1, 2, 3}

	decoded, err := checkAddress(a.String())
	assert.Nil(t, err, "decode error")
	assert.Equal(t, a, decoded, "wrong address")

	_, err = checkAddress("")
	assert.Equal(t, ErrRequiredAddress, err, "empty address accepted")
}

func TestCheckAccount(t *testing.T) {
	seed, err := account.NewBase58Seed(true)
	assert.Nil(t, err, "seed error")
	key, err := account.PrivateKeyFromBase58Seed(seed)
	assert.Nil(t, err, "key error")

	config := &configuration.Configuration{
		TestNet:    true,
		Identities: make(map[string]configuration.Identity),
	}
	err = config.AddReceiveOnlyIdentity("carol", "", key.Account().String())
	assert.Nil(t, err, "add error")

	byName, err := checkAccount("carol", config, true)
	assert.Nil(t, err, "name lookup error")
	assert.Equal(t, key.Account().String(), byName.String(), "wrong account by name")

	byText, err := checkAccount(key.Account().String(), nil, true)
	assert.Nil(t, err, "base58 error")
	assert.Equal(t, key.Account().String(), byText.String(), "wrong account by text")

	_, err = checkAccount(key.Account().String(), nil, false)
	assert.Equal(t, fault.ErrTestNetworkMismatch, err, "test account on live network")

	_, err = checkAccount("", config, true)
	assert.Equal(t, ErrRequiredSubscriber, err, "empty account accepted")
}

func TestCheckKind(t *testing.T) {
	for _, kind := range []string{"blog", "post"} {
		k, err := checkKind(kind)
		assert.Nil(t, err, "kind: %s", kind)
		assert.Equal(t, kind, k, "kind: %s", kind)
	}
	_, err := checkKind("comment")
	assert.Equal(t, ErrUnknownKind, err, "unknown kind accepted")
}
