// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the on-disk account space
//
// maintain separate pools of a number of elements in key->value form
//
// This maintains a LevelDB database split into a series of tables.
// Each table is defined by a prefix byte that is obtained from the
// prefix tag in the struct defining the available tables.
//
// Notes:
// 1. each separate pool has a single byte prefix (to spread the keys in LevelDB)
// 2. ++           = concatenation of byte data
// 3. address      = 32 byte derived address
// 4. digest       = SHA3-256(packed instruction)
//
// Accounts:
//
//   A ++ address               - fixed size record buffer
//                                data: header ++ record fields (see record package)
//
// Instructions:
//
//   I ++ digest                - journal of applied instructions
//                                data: packed instruction
//
// Testing:
//   Z ++ key                   - testing data
package storage
