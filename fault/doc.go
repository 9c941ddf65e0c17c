// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fault - error instances
//
// Provides a single instance of errors to allow easy comparison
// without having to resort to partial string matches.
//
// The ledger surfaces five terminal kinds to callers:
//
//   ErrAddressCollision       - record already exists at a derived address
//   ErrAddressSpaceExhausted  - post sequencing byte cannot advance
//   ErrUnauthorised           - signer is not the record owner
//   ErrCapacityExceeded       - bounded sequence is full
//   ErrSpaceOverrun           - text does not fit its reserved bytes
package fault
