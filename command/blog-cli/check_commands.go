// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"strings"

	"github.com/bitmark-inc/blogledger/account"
	"github.com/bitmark-inc/blogledger/address"
	"github.com/bitmark-inc/blogledger/chain"
	"github.com/bitmark-inc/blogledger/command/blog-cli/configuration"
	"github.com/bitmark-inc/blogledger/fault"
)

// errors for argument checks
var (
	ErrCapacityTooLarge      = fault.LengthError("capacity too large")
	ErrConflictingSeedOption = fault.InvalidError("only one of seed, new or account may be given")
	ErrRequiredAddress       = fault.InvalidError("address is required")
	ErrRequiredCategory      = fault.InvalidError("category is required")
	ErrRequiredConnect       = fault.InvalidError("connect is required")
	ErrRequiredDescription   = fault.InvalidError("description is required")
	ErrRequiredIdentity      = fault.InvalidError("identity is required")
	ErrRequiredSeed          = fault.InvalidError("seed or new is required")
	ErrRequiredSubscriber    = fault.InvalidError("subscriber is required")
	ErrRequiredTitle         = fault.InvalidError("title is required")
	ErrUnknownKind           = fault.InvalidError("kind can only be blog or post")
)

// network name, with the aliases people tend to type
func checkNetwork(network string) (string, error) {
	switch network {
	case "", "testing", "test":
		return chain.Testing, nil
	case "blog", "live":
		return chain.Blog, nil
	case "local", "regression":
		return chain.Local, nil
	default:
		return "", fault.ErrInvalidChain
	}
}

func isTestnet(network string) bool {
	return chain.IsTesting(network)
}

// identity is required, but not check the config file
func checkName(name string) (string, error) {
	if "" == name {
		return "", ErrRequiredIdentity
	}

	return name, nil
}

// connect is required
func checkConnect(connect string) (string, error) {
	connect = strings.TrimSpace(connect)
	if "" == connect {
		return "", ErrRequiredConnect
	}

	return connect, nil
}

// description is required
func checkDescription(description string) (string, error) {
	if "" == description {
		return "", ErrRequiredDescription
	}

	return description, nil
}

// exactly one of an existing seed or a new one
func checkSeed(seed string, generate bool, testnet bool) (string, error) {
	if "" == seed {
		if !generate {
			return "", ErrRequiredSeed
		}
		return account.NewBase58Seed(testnet)
	}
	if generate {
		return "", ErrConflictingSeedOption
	}

	key, err := account.PrivateKeyFromBase58Seed(seed)
	if nil != err {
		return "", err
	}
	if key.Test != testnet {
		return "", fault.ErrTestNetworkMismatch
	}
	return seed, nil
}

func checkAddress(s string) (address.Address, error) {
	if "" == s {
		return address.Address{}, ErrRequiredAddress
	}
	return address.FromBase58(s)
}

func checkTitle(title string) (string, error) {
	if "" == title {
		return "", ErrRequiredTitle
	}
	return title, nil
}

func checkCategory(category string) (string, error) {
	if "" == category {
		return "", ErrRequiredCategory
	}
	return category, nil
}

func checkCapacity(capacity uint) (uint16, error) {
	if capacity > 0xffff {
		return 0, ErrCapacityTooLarge
	}
	return uint16(capacity), nil
}

func checkKind(kind string) (string, error) {
	switch kind {
	case "blog", "post":
		return kind, nil
	default:
		return "", ErrUnknownKind
	}
}

// an identity name from the configuration or a base58 account
func checkAccount(s string, config *configuration.Configuration, testnet bool) (*account.Account, error) {
	if "" == s {
		return nil, ErrRequiredSubscriber
	}

	if nil != config {
		if acc, err := config.Account(s); nil == err {
			return acc, nil
		}
	}

	acc, err := account.AccountFromBase58(s)
	if nil != err {
		return nil, err
	}
	if acc.IsTesting() != testnet {
		return nil, fault.ErrTestNetworkMismatch
	}
	return acc, nil
}

// check if file exists
func checkFileExists(name string) (bool, error) {
	s, err := os.Stat(name)
	if nil != err {
		return false, err
	}
	return s.IsDir(), nil
}
