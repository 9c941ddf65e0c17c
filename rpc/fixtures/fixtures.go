// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fixtures - shared setup for rpc tests
package fixtures

import (
	"os"
	"testing"
	"time"

	"github.com/bitmark-inc/certgen"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/blogledger/address"
)

// LogCategory - logger channel used by rpc tests
const LogCategory = "testing"

var testingDirName string

// SetupTestLogger - log to a temporary directory at critical level
func SetupTestLogger() {
	if "" != testingDirName {
		return
	}
	directory, err := os.MkdirTemp("", "rpc-testing")
	if nil != err {
		panic(err)
	}
	testingDirName = directory

	logging := logger.Configuration{
		Directory: testingDirName,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	_ = logger.Initialise(logging)
}

// TeardownTestLogger - remove the log directory
//
// the logger stays initialised for the rest of the test binary
func TeardownTestLogger() {
	if "" == testingDirName {
		return
	}
	_ = os.RemoveAll(testingDirName)
	testingDirName = ""
}

// Program - program address used by rpc tests
var Program = address.ProgramFromSeed("rpc test program")

// CertificatePair - a fresh self-signed certificate and key in PEM form
func CertificatePair(t *testing.T) (string, string) {
	certificate, key, err := certgen.NewTLSCertPair("blogledger-test", time.Now().Add(time.Hour), false, []string{"127.0.0.1"})
	if nil != err {
		t.Fatalf("generate certificate error: %s", err)
	}
	return string(certificate), string(key)
}
