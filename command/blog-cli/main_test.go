// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"encoding/json"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/blogledger/command/blog-cli/configuration"
)

const testPassword = "12345678abcdefgh"

func runApp(t *testing.T, args ...string) (string, error) {
	var out bytes.Buffer
	app := newApp()
	app.Writer = &out
	app.ErrWriter = ioutil.Discard
	err := app.Run(append([]string{"blog-cli"}, args...))
	return out.String(), err
}

func setupConfigHome(t *testing.T) func() {
	dir, err := ioutil.TempDir("", "blog-cli-home-")
	if nil != err {
		t.Fatalf("temp dir error: %s", err)
	}
	previous := os.Getenv("XDG_CONFIG_HOME")
	os.Setenv("XDG_CONFIG_HOME", dir)

	return func() {
		os.Setenv("XDG_CONFIG_HOME", previous)
		os.RemoveAll(dir)
	}
}

func TestGenerate(t *testing.T) {
	defer setupConfigHome(t)()

	out, err := runApp(t, "-n", "local", "generate")
	assert.Nil(t, err, "generate error")

	var reply map[string]string
	err = json.Unmarshal([]byte(out), &reply)
	assert.Nil(t, err, "output is not JSON")
	assert.NotEqual(t, "", reply["seed"], "no seed")
	assert.NotEqual(t, "", reply["account"], "no account")
}

func TestSetupAddInfo(t *testing.T) {
	defer setupConfigHome(t)()

	_, err := runApp(t, "-i", "alice", "-p", testPassword, "setup", "-c", "127.0.0.1:2130", "-d", "writer", "--new")
	assert.Nil(t, err, "setup error")

	file := filepath.Join(os.Getenv("XDG_CONFIG_HOME"), "blog-cli", "testing-blog-cli.json")
	config, err := configuration.Load(file)
	assert.Nil(t, err, "load error")
	assert.Equal(t, "alice", config.DefaultIdentity, "wrong default identity")
	assert.True(t, config.TestNet, "not a test network")

	_, err = config.Private(testPassword, "alice")
	assert.Nil(t, err, "cannot unlock alice")

	// setup never overwrites
	_, err = runApp(t, "-i", "alice", "-p", testPassword, "setup", "-c", "127.0.0.1:2130", "-d", "writer", "--new")
	assert.NotNil(t, err, "configuration overwritten")

	alice, err := config.Account("alice")
	assert.Nil(t, err, "account error")

	_, err = runApp(t, "-i", "reader", "add", "-d", "reader", "-a", alice.String())
	assert.Nil(t, err, "add receive only error")

	_, err = runApp(t, "-i", "bob", "-p", testPassword, "add", "-d", "second", "--new")
	assert.Nil(t, err, "add error")

	out, err := runApp(t, "info")
	assert.Nil(t, err, "info error")

	var info configuration.Info
	err = json.Unmarshal([]byte(out), &info)
	assert.Nil(t, err, "info is not JSON")
	assert.Equal(t, 3, len(info.Identities), "wrong identity count")
	assert.Equal(t, "alice", info.Identities[0].Name, "not sorted")
	assert.Equal(t, "reader", info.Identities[2].Name, "not sorted")
	assert.False(t, info.Identities[2].Signing, "reader can sign")
	assert.NotContains(t, out, "\"data\":", "encrypted data shown")
}

func TestMissingConfiguration(t *testing.T) {
	defer setupConfigHome(t)()

	_, err := runApp(t, "info")
	assert.NotNil(t, err, "info without configuration")
}

func TestBadNetwork(t *testing.T) {
	defer setupConfigHome(t)()

	_, err := runApp(t, "-n", "nowhere", "info")
	assert.NotNil(t, err, "unknown network accepted")
}
