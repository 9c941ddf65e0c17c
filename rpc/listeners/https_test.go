// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package listeners_test

import (
	"crypto/tls"
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/blogledger/fault"
	"github.com/bitmark-inc/blogledger/rpc/fixtures"
	"github.com/bitmark-inc/blogledger/rpc/listeners"
)

type testHandler struct {
	allow map[string][]*net.IPNet
}

func (h *testHandler) RPC(w http.ResponseWriter, _ *http.Request) {
	_, _ = w.Write([]byte("RPC"))
}

func (h *testHandler) Details(w http.ResponseWriter, _ *http.Request) {
	_, _ = w.Write([]byte("Details"))
}

func (h *testHandler) Root(w http.ResponseWriter, _ *http.Request) {
	_, _ = w.Write([]byte("Root"))
}

func (h *testHandler) SetAllow(allow map[string][]*net.IPNet) {
	h.allow = allow
}

func newClient() *http.Client {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true}
	return &http.Client{
		Transport: transport,
		Timeout:   5 * time.Second,
	}
}

func TestHTTPSServe(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	listen := freeAddress(t)
	conf := listeners.HTTPSConfiguration{
		MaximumConnections: 5,
		Listen:             []string{listen},
		Allow: map[string][]string{
			"details": {"127.0.0.1/32"},
		},
	}

	tlsConfig, _ := serverTLS(t)
	h := &testHandler{}

	l, err := listeners.NewHTTPS(&conf, logger.New(fixtures.LogCategory), tlsConfig, h)
	assert.Nil(t, err, "wrong NewHTTPS")
	assert.Equal(t, 1, len(h.allow["details"]), "allow list not set")

	err = l.Serve()
	assert.Nil(t, err, "wrong Serve")
	defer l.Close()

	client := newClient()
	for path, expected := range map[string]string{
		"/blogd/rpc":     "RPC",
		"/blogd/details": "Details",
		"/other":         "Root",
	} {
		resp, err := client.Get("https://" + listen + path)
		if nil != err {
			t.Fatalf("get %s error: %s", path, err)
		}
		body, _ := io.ReadAll(resp.Body)
		_ = resp.Body.Close()
		assert.Equal(t, expected, string(body), "wrong handler for: %s", path)
	}
}

func TestHTTPSServeErrorClosesStarted(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	listen := freeAddress(t)
	conf := listeners.HTTPSConfiguration{
		MaximumConnections: 5,
		Listen:             []string{listen, listen},
	}

	tlsConfig, _ := serverTLS(t)

	l, err := listeners.NewHTTPS(&conf, logger.New(fixtures.LogCategory), tlsConfig, &testHandler{})
	assert.Nil(t, err, "wrong NewHTTPS")

	err = l.Serve()
	assert.NotNil(t, err, "second listen on the same address succeeded")

	again, err := net.Listen("tcp", listen)
	assert.Nil(t, err, "first address still in use")
	if nil == err {
		_ = again.Close()
	}
}

func TestHTTPSDisabled(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	l, err := listeners.NewHTTPS(&listeners.HTTPSConfiguration{}, logger.New(fixtures.LogCategory), &tls.Config{}, &testHandler{})
	assert.Nil(t, err, "wrong error")
	assert.Nil(t, l, "listener created")
}

func TestHTTPSWhenMaxConnectionCountTooSmall(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	conf := listeners.HTTPSConfiguration{
		MaximumConnections: 0,
		Listen:             []string{"127.0.0.1:2131"},
	}

	_, err := listeners.NewHTTPS(&conf, logger.New(fixtures.LogCategory), &tls.Config{}, &testHandler{})
	assert.Equal(t, fault.ErrMissingParameters, err, "wrong error")
}

func TestHTTPSWhenInvalidAllow(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	conf := listeners.HTTPSConfiguration{
		MaximumConnections: 1,
		Listen:             []string{"127.0.0.1:2131"},
		Allow: map[string][]string{
			"details": {"not-a-network"},
		},
	}

	_, err := listeners.NewHTTPS(&conf, logger.New(fixtures.LogCategory), &tls.Config{}, &testHandler{})
	assert.NotNil(t, err, "wrong error")
}
