// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package certificate

import (
	"crypto/tls"

	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/logger"
)

// Get - build the TLS configuration for a listener from PEM data
//
// also returns the SHA3-256 fingerprint of the leaf certificate so
// clients can pin it
func Get(log *logger.L, name string, certificate string, key string) (*tls.Config, [32]byte, error) {
	var fingerprint [32]byte

	keyPair, err := tls.X509KeyPair([]byte(certificate), []byte(key))
	if nil != err {
		log.Errorf("%s failed to load keypair: %v", name, err)
		return nil, fingerprint, err
	}

	tlsConfiguration := &tls.Config{
		Certificates: []tls.Certificate{keyPair},
		MinVersion:   tls.VersionTLS12,
	}

	fingerprint = Fingerprint(keyPair.Certificate[0])
	return tlsConfiguration, fingerprint, nil
}

// Fingerprint - digest of a DER certificate
//
// same as: openssl x509 -outform DER -in blogd-local-rpc.crt | sha3sum -a 256
func Fingerprint(der []byte) [32]byte {
	return sha3.Sum256(der)
}
