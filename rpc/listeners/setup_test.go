// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package listeners_test

import (
	"crypto/tls"
	"fmt"
	"net"
	"testing"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/blogledger/rpc/certificate"
	"github.com/bitmark-inc/blogledger/rpc/fixtures"
)

// an address on a port nothing is listening on
func freeAddress(t *testing.T) string {
	l, err := net.Listen("tcp4", "127.0.0.1:0")
	if nil != err {
		t.Fatalf("listen error: %s", err)
	}
	port := l.Addr().(*net.TCPAddr).Port
	_ = l.Close()
	return fmt.Sprintf("127.0.0.1:%d", port)
}

func serverTLS(t *testing.T) (*tls.Config, [32]byte) {
	certificatePEM, keyPEM := fixtures.CertificatePair(t)
	tlsConfig, fingerprint, err := certificate.Get(logger.New(fixtures.LogCategory), "test", certificatePEM, keyPEM)
	if nil != err {
		t.Fatalf("certificate error: %s", err)
	}
	return tlsConfig, fingerprint
}
