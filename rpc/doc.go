// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package rpc - this is to setup and handle all of the incoming JSON RPC requests
// from clients requiring blogd services
//
// services:
//   Instruction.Submit  - apply one signed instruction
//   Blog.Get            - a blog by owner or address
//   Post.Get            - a single post
//   Post.List           - the posts of a blog in creation order
//   Space.Plan          - byte breakdown for a new record
//   Node.Info           - daemon state
//
// standard golang RPC services can be used on the client side to
// access these services
package rpc
