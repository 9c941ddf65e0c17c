// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// blog-cli - command line client for blogd
//
// identities are kept in $XDG_CONFIG_HOME/blog-cli/NETWORK-blog-cli.json
// with each seed encrypted under a password; every instruction is
// signed locally and only the signed pack is sent to blogd
//
// e.g.
//   blog-cli -i alice setup -c 127.0.0.1:2130 -d "alice" --new
//   blog-cli create-blog -c news -s 32
//   blog-cli post -t "first" -B "hello"
//   blog-cli posts -c 10
package main
