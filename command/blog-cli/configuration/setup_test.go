// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/blogledger/account"
	"github.com/bitmark-inc/blogledger/command/blog-cli/configuration"
	"github.com/bitmark-inc/blogledger/fault"
)

const password = "correct horse battery staple"

func newConfiguration(t *testing.T) (*configuration.Configuration, string) {
	seed, err := account.NewBase58Seed(true)
	assert.Nil(t, err, "seed error")

	config := &configuration.Configuration{
		DefaultIdentity: "alice",
		TestNet:         true,
		Connections:     []string{"127.0.0.1:2130"},
		Identities:      make(map[string]configuration.Identity),
	}
	err = config.AddIdentity("alice", "first", seed, password)
	assert.Nil(t, err, "add identity error")

	return config, seed
}

func TestAddIdentityAndUnlock(t *testing.T) {
	config, seed := newConfiguration(t)

	expected, err := account.PrivateKeyFromBase58Seed(seed)
	assert.Nil(t, err, "seed decode error")

	acc, err := config.Account("alice")
	assert.Nil(t, err, "account error")
	assert.Equal(t, expected.Account().String(), acc.String(), "wrong account")

	private, err := config.Private(password, "alice")
	assert.Nil(t, err, "unlock error")
	assert.Equal(t, seed, private.Seed, "wrong seed")
	assert.Equal(t, "first", private.Description, "wrong description")

	_, err = config.Private("not the password", "alice")
	assert.Equal(t, configuration.ErrWrongPassword, err, "wrong password accepted")

	_, err = config.Private(password, "bob")
	assert.Equal(t, configuration.ErrIdentityNameNotFound, err, "missing identity found")

	err = config.AddIdentity("alice", "again", seed, password)
	assert.Equal(t, configuration.ErrIdentityNameAlreadyExists, err, "duplicate identity")
}

func TestAddIdentityNetworkMismatch(t *testing.T) {
	config, _ := newConfiguration(t)

	live, err := account.NewBase58Seed(false)
	assert.Nil(t, err, "seed error")

	err = config.AddIdentity("bob", "live key", live, password)
	assert.Equal(t, fault.ErrTestNetworkMismatch, err, "live seed on test network")
}

func TestReceiveOnlyIdentity(t *testing.T) {
	config, _ := newConfiguration(t)

	alice, err := config.Account("alice")
	assert.Nil(t, err, "account error")

	err = config.AddReceiveOnlyIdentity("copy", "public only", alice.String())
	assert.Nil(t, err, "add receive only error")

	_, err = config.Private(password, "copy")
	assert.Equal(t, fault.ErrNotPrivateKey, err, "receive only identity unlocked")

	info := config.Info()
	assert.Equal(t, 2, len(info.Identities), "wrong identity count")
	assert.Equal(t, "alice", info.Identities[0].Name, "not sorted")
	assert.True(t, info.Identities[0].Signing, "alice cannot sign")
	assert.False(t, info.Identities[1].Signing, "copy can sign")
}

func TestSaveLoad(t *testing.T) {
	dir, err := ioutil.TempDir("", "blog-cli-")
	assert.Nil(t, err, "temp dir error")
	defer os.RemoveAll(dir)

	config, seed := newConfiguration(t)
	file := filepath.Join(dir, "testing-blog-cli.json")

	err = configuration.Save(file, config)
	assert.Nil(t, err, "save error")

	// a second save keeps a backup
	err = configuration.Save(file, config)
	assert.Nil(t, err, "save error")
	_, err = os.Stat(file + ".bk")
	assert.Nil(t, err, "no backup file")

	loaded, err := configuration.Load(file)
	assert.Nil(t, err, "load error")
	assert.Equal(t, config, loaded, "configuration changed")

	connect, err := loaded.Connection()
	assert.Nil(t, err, "connection error")
	assert.Equal(t, "127.0.0.1:2130", connect, "wrong connection")

	private, err := loaded.Private(password, "alice")
	assert.Nil(t, err, "unlock error")
	assert.Equal(t, seed, private.Seed, "wrong seed")
}

func TestNoConnections(t *testing.T) {
	config := &configuration.Configuration{}
	_, err := config.Connection()
	assert.Equal(t, configuration.ErrNoConnections, err, "empty connections accepted")
}
