// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package instruction

import (
	"github.com/bitmark-inc/blogledger/account"
	"github.com/bitmark-inc/blogledger/address"
	"github.com/bitmark-inc/blogledger/fault"
	"github.com/bitmark-inc/blogledger/util"
)

// reader walks the fields of a packed record
type reader struct {
	record Packed
	n      int
	err    error
}

func (r *reader) uint64() uint64 {
	if nil != r.err {
		return 0
	}
	value, length := util.FromVarint64(r.record[r.n:])
	if 0 == length {
		r.err = fault.ErrNotInstructionPack
		return 0
	}
	r.n += length
	return value
}

// a Varint64(length) prefixed field, the result is a copy
func (r *reader) bytes(minimum int, maximum int) []byte {
	length := r.uint64()
	if nil != r.err {
		return nil
	}
	if length < uint64(minimum) || length > uint64(maximum) || uint64(len(r.record)-r.n) < length {
		r.err = fault.ErrNotInstructionPack
		return nil
	}
	b := make([]byte, length)
	copy(b, r.record[r.n:])
	r.n += int(length)
	return b
}

func (r *reader) text(maximum int) string {
	b := r.bytes(0, maximum)
	if nil == r.err {
		r.err = checkText(string(b), maximum)
	}
	return string(b)
}

func (r *reader) account(testnet bool) *account.Account {
	b := r.bytes(1, maxFieldLength)
	if nil != r.err {
		return nil
	}
	a, err := account.AccountFromBytes(b)
	if nil != err {
		r.err = err
		return nil
	}
	if a.IsTesting() != testnet {
		r.err = fault.ErrTestNetworkMismatch
		return nil
	}
	return a
}

func (r *reader) address() address.Address {
	b := r.bytes(address.Length, address.Length)
	var a address.Address
	copy(a[:], b)
	return a
}

func (r *reader) identity() account.Identity {
	b := r.bytes(account.IdentityLength, account.IdentityLength)
	var id account.Identity
	copy(id[:], b)
	return id
}

// signature is last; the signer must have signed everything before it
func (r *reader) signature(signer *account.Account) account.Signature {
	messageEnd := r.n
	s := account.Signature(r.bytes(1, maxSignatureLength))
	if nil != r.err {
		return nil
	}
	err := signer.CheckSignature(r.record[:messageEnd], s)
	if nil != err {
		r.err = err
		return nil
	}
	return s
}

// Unpack - turn a byte slice into a verified instruction
//
// returns the instruction and the number of bytes consumed; the
// signature has been checked against the signer field
//
// must cast result to correct type
//
// e.g.
//   switch i := result.(type) {
//   case *instruction.CreatePost:
func (record Packed) Unpack(testnet bool) (Instruction, int, error) {
	r := &reader{
		record: record,
	}

	tag := TagType(r.uint64())
	if nil != r.err {
		return nil, 0, r.err
	}

	var result Instruction

	switch tag {

	case InitialiseBlogTag:
		i := &InitialiseBlog{}
		i.Signer = r.account(testnet)
		capacity := r.uint64()
		if nil == r.err && capacity > 0xffff {
			return nil, 0, fault.ErrNotInstructionPack
		}
		i.SubscriberCapacity = uint16(capacity)
		i.Category = r.text(maxCategoryLength)
		i.Nonce = r.uint64()
		i.Signature = r.signature(i.Signer)
		result = i

	case UpdateBlogTag:
		i := &UpdateBlog{}
		i.Signer = r.account(testnet)
		i.Blog = r.address()
		i.Category = r.text(maxCategoryLength)
		i.Nonce = r.uint64()
		i.Signature = r.signature(i.Signer)
		result = i

	case AddSubscriberTag:
		i := &AddSubscriber{}
		i.Signer = r.account(testnet)
		i.Blog = r.address()
		i.Subscriber = r.identity()
		i.Nonce = r.uint64()
		i.Signature = r.signature(i.Signer)
		result = i

	case CreatePostTag:
		i := &CreatePost{}
		i.Signer = r.account(testnet)
		i.Blog = r.address()
		i.Title = r.text(maxTitleLength)
		i.Body = r.text(maxBodyLength)
		i.Nonce = r.uint64()
		i.Signature = r.signature(i.Signer)
		result = i

	case UpdatePostTag:
		i := &UpdatePost{}
		i.Signer = r.account(testnet)
		i.Post = r.address()
		i.Title = r.text(maxTitleLength)
		i.Body = r.text(maxBodyLength)
		i.Nonce = r.uint64()
		i.Signature = r.signature(i.Signer)
		result = i

	case DeletePostTag:
		i := &DeletePost{}
		i.Signer = r.account(testnet)
		i.Post = r.address()
		i.Title = r.text(maxTitleLength)
		i.Body = r.text(maxBodyLength)
		i.Nonce = r.uint64()
		i.Signature = r.signature(i.Signer)
		result = i

	default:
		return nil, 0, fault.ErrUnknownInstruction
	}

	if nil != r.err {
		return nil, 0, r.err
	}
	return result, r.n, nil
}

// UnpackAll - a packed record must be exactly one instruction
func (record Packed) UnpackAll(testnet bool) (Instruction, error) {
	i, n, err := record.Unpack(testnet)
	if nil != err {
		return nil, err
	}
	if n != len(record) {
		return nil, fault.ErrTrailingData
	}
	return i, nil
}
