// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type AuthorisationError GenericError
type ExistsError GenericError
type InvalidError GenericError
type LengthError GenericError
type NotFoundError GenericError
type ProcessError GenericError
type RecordError GenericError

// common errors - keep in alphabetic order
var (
	ErrAccountNotFound          = NotFoundError("account not found")
	ErrAccountTooLarge          = LengthError("account too large")
	ErrAddressCollision         = ExistsError("address collision")
	ErrAddressMismatch          = InvalidError("address mismatch")
	ErrAddressSpaceExhausted    = LengthError("address space exhausted")
	ErrAllocationSizeChanged    = LengthError("allocation size changed")
	ErrAlreadyInitialised       = ProcessError("already initialised")
	ErrCannotDecodeAccount      = RecordError("cannot decode account")
	ErrCannotDecodeAddress      = RecordError("cannot decode address")
	ErrCannotDecodePrivateKey   = RecordError("cannot decode private key")
	ErrCapacityExceeded         = LengthError("capacity exceeded")
	ErrCertificateFileExists    = ExistsError("certificate file already exists")
	ErrChecksumMismatch         = ProcessError("checksum mismatch")
	ErrInstructionAlreadyExists = ExistsError("instruction already exists")
	ErrInvalidChain             = InvalidError("invalid chain")
	ErrInvalidCount             = InvalidError("invalid count")
	ErrInvalidIPAddress         = InvalidError("invalid IP address")
	ErrInvalidKeyLength         = InvalidError("invalid key length")
	ErrInvalidKeyType           = InvalidError("invalid key type")
	ErrInvalidSeedHeader        = InvalidError("invalid seed header")
	ErrInvalidSeedLength        = InvalidError("invalid seed length")
	ErrInvalidSignature         = InvalidError("invalid signature")
	ErrInvalidStructPointer     = InvalidError("invalid struct pointer")
	ErrInvalidUTF8              = InvalidError("invalid utf-8 text")
	ErrKeyFileExists            = ExistsError("key file already exists")
	ErrMissingParameters        = InvalidError("missing parameters")
	ErrNotInstructionPack       = RecordError("not instruction pack")
	ErrNoTransaction            = ProcessError("no transaction in progress")
	ErrNoValidSalt              = ProcessError("no valid salt for seeds")
	ErrNotInitialised           = ProcessError("not initialised")
	ErrNotPrivateKey            = InvalidError("not private key")
	ErrNotPublicKey             = InvalidError("not public key")
	ErrPostDeleted              = InvalidError("post deleted")
	ErrRateLimiting             = InvalidError("rate limiting")
	ErrRecordTruncated          = RecordError("record truncated")
	ErrSeedTooLong              = LengthError("seed too long")
	ErrSignatureTooLong         = LengthError("signature too long")
	ErrSpaceOverrun             = LengthError("space overrun")
	ErrTestNetworkMismatch      = InvalidError("test network mismatch")
	ErrTextTooLong              = LengthError("text too long")
	ErrTooManySeeds             = LengthError("too many seeds")
	ErrTrailingData             = RecordError("trailing data")
	ErrTransactionInUse         = ProcessError("transaction already in use")
	ErrUnauthorised             = AuthorisationError("unauthorised")
	ErrUnknownInstruction       = RecordError("unknown instruction")
	ErrWrongRecordKind          = RecordError("wrong record kind")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e AuthorisationError) Error() string { return string(e) }
func (e ExistsError) Error() string        { return string(e) }
func (e InvalidError) Error() string       { return string(e) }
func (e LengthError) Error() string        { return string(e) }
func (e NotFoundError) Error() string      { return string(e) }
func (e ProcessError) Error() string       { return string(e) }
func (e RecordError) Error() string        { return string(e) }

// determine the class of an error
func IsErrAuthorisation(e error) bool { _, ok := e.(AuthorisationError); return ok }
func IsErrExists(e error) bool        { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool       { _, ok := e.(InvalidError); return ok }
func IsErrLength(e error) bool        { _, ok := e.(LengthError); return ok }
func IsErrNotFound(e error) bool      { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool       { _, ok := e.(ProcessError); return ok }
func IsErrRecord(e error) bool        { _, ok := e.(RecordError); return ok }
