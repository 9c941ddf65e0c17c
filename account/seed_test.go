// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/blogledger/account"
	"github.com/bitmark-inc/blogledger/fault"
)

var validSeeds = []struct {
	seed   string
	addr   string
	priv   string
	isTest bool
}{
	{"5XEECqhR7QBkJezUJiUJBmHaSmffDfVN5atuLnQBHnvfxbsWHuBfQLw", "ajsDToCYSuK9rjSKGU6pwKGHahybu3DJ42DYbXRgHxS3Yc6CFC", "e6d85658b86242d45b52d9421736427ef22edda12c8790408c09ec3c9e356e755b4d99cc95cec16a3d489c94ba33d7fd6705c6cd3a6495c264e188b1985f4249", false},
	{"5XEECtzqJYokJbDkLzPMqNEF1Eo5qfGPqhbb4pGeuj2igeEMYraCcJ1", "fGcv38F4ucFwvwnepNYYDQt3eDjRaoVtLCdofMYGUENboXVQzx", "83fb4107766d5fd66d0648dcafbc6e77b24d8cced42940ae3a62bb98810e189bafeabdcd58645fa58c70fed58fea0ca95682ca4e20a4aae44319383865383b21", true},
}

func TestPrivateKeyFromBase58Seed(t *testing.T) {
	for i, item := range validSeeds {
		key, err := account.PrivateKeyFromBase58Seed(item.seed)
		assert.Nil(t, err, "%d: seed", i)
		assert.Equal(t, item.isTest, key.Test, "%d: network", i)
		assert.Equal(t, decodeHex(item.priv), []byte(key.PrivateKey), "%d: private key", i)
		assert.Equal(t, item.addr, key.Account().String(), "%d: account", i)
	}
}

func TestPrivateKeyFromInvalidBase58Seed(t *testing.T) {
	invalid := []struct {
		seed string
		err  error
	}{
		{"5XEECqhR7QBkJezUJiUJBmHaSmffDfVN5atuLnQBHnvfxbsWHuBfQ", fault.ErrInvalidSeedLength},
		{"9J877LVjhr3Xxd2nGzRVRVNUZpSKJF4TH", fault.ErrInvalidSeedLength},
		{"5XEECqhR7QBkJezUJiUJBmHaSmffDfVN5atuLnQBHnvfxbsWHuBfQkw", fault.ErrChecksumMismatch},
		{"5XBcj8Cz1Aj5yciJkivUrfYUbBk1LfgtfQ9oX8wsrA4QmmYw1miJSCE", fault.ErrInvalidSeedHeader},
	}
	for i, item := range invalid {
		_, err := account.PrivateKeyFromBase58Seed(item.seed)
		assert.Equal(t, item.err, err, "%d: seed: %s", i, item.seed)
	}
}

func TestNewBase58Seed(t *testing.T) {
	seed, err := account.NewBase58Seed(true)
	assert.Nil(t, err, "new seed")

	first, err := account.PrivateKeyFromBase58Seed(seed)
	assert.Nil(t, err, "first expansion")
	second, err := account.PrivateKeyFromBase58Seed(seed)
	assert.Nil(t, err, "second expansion")

	assert.True(t, first.Test, "network")
	assert.Equal(t, first.PrivateKey, second.PrivateKey, "deterministic expansion")
}
