// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package instruction

import (
	"encoding/hex"

	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/blogledger/account"
	"github.com/bitmark-inc/blogledger/address"
)

// TagType - type code for instructions
type TagType uint64

// enumerate the possible instruction types
// this is encoded a Varint64 at start of "Packed"
const (
	// null marks beginning of list - not used as an instruction type
	NullTag = TagType(iota)

	InitialiseBlogTag = TagType(iota) // create the signer's blog
	UpdateBlogTag     = TagType(iota) // replace blog category
	AddSubscriberTag  = TagType(iota) // append to subscriber list
	CreatePostTag     = TagType(iota) // next post of a blog
	UpdatePostTag     = TagType(iota) // rewrite title and body
	DeletePostTag     = TagType(iota) // overwrite and mark deleted

	// this item must be last
	InvalidTag = TagType(iota)
)

// String - instruction name
func (tag TagType) String() string {
	switch tag {
	case InitialiseBlogTag:
		return "initialize_blog"
	case UpdateBlogTag:
		return "update_blog"
	case AddSubscriberTag:
		return "add_subscriber"
	case CreatePostTag:
		return "create_post"
	case UpdatePostTag:
		return "update_post"
	case DeletePostTag:
		return "delete_post"
	default:
		return "invalid"
	}
}

// Packed - packed records are just a byte slice
type Packed []byte

// Instruction - generic instruction interface
type Instruction interface {
	Pack() (Packed, error)
	GetSigner() *account.Account
	Tag() TagType
}

// byte sizes for various fields
const (
	maxCategoryLength  = 256
	maxTitleLength     = 256
	maxBodyLength      = 65536
	maxSignatureLength = 1024
	maxFieldLength     = maxBodyLength
)

// InitialiseBlog - create the signer's blog
type InitialiseBlog struct {
	Signer             *account.Account  `json:"signer"`             // base58
	SubscriberCapacity uint16            `json:"subscriberCapacity"` // fixed at creation
	Category           string            `json:"category"`           // utf-8
	Nonce              uint64            `json:"nonce,string"`       // allow repeats
	Signature          account.Signature `json:"signature"`          // hex
}

// UpdateBlog - replace a blog's category
type UpdateBlog struct {
	Signer    *account.Account  `json:"signer"`
	Blog      address.Address   `json:"blog"`
	Category  string            `json:"category"`
	Nonce     uint64            `json:"nonce,string"`
	Signature account.Signature `json:"signature"`
}

// AddSubscriber - append an identity to a blog's subscribers
type AddSubscriber struct {
	Signer     *account.Account  `json:"signer"`
	Blog       address.Address   `json:"blog"`
	Subscriber account.Identity  `json:"subscriber"`
	Nonce      uint64            `json:"nonce,string"`
	Signature  account.Signature `json:"signature"`
}

// CreatePost - add the next post to a blog
type CreatePost struct {
	Signer    *account.Account  `json:"signer"`
	Blog      address.Address   `json:"blog"`
	Title     string            `json:"title"`
	Body      string            `json:"body"`
	Nonce     uint64            `json:"nonce,string"`
	Signature account.Signature `json:"signature"`
}

// UpdatePost - rewrite a post
type UpdatePost struct {
	Signer    *account.Account  `json:"signer"`
	Post      address.Address   `json:"post"`
	Title     string            `json:"title"`
	Body      string            `json:"body"`
	Nonce     uint64            `json:"nonce,string"`
	Signature account.Signature `json:"signature"`
}

// DeletePost - overwrite a post and mark it deleted
type DeletePost struct {
	Signer    *account.Account  `json:"signer"`
	Post      address.Address   `json:"post"`
	Title     string            `json:"title"`
	Body      string            `json:"body"`
	Nonce     uint64            `json:"nonce,string"`
	Signature account.Signature `json:"signature"`
}

// GetSigner - for the interface
func (i *InitialiseBlog) GetSigner() *account.Account { return i.Signer }
func (i *UpdateBlog) GetSigner() *account.Account     { return i.Signer }
func (i *AddSubscriber) GetSigner() *account.Account  { return i.Signer }
func (i *CreatePost) GetSigner() *account.Account     { return i.Signer }
func (i *UpdatePost) GetSigner() *account.Account     { return i.Signer }
func (i *DeletePost) GetSigner() *account.Account     { return i.Signer }

// Tag - for the interface
func (i *InitialiseBlog) Tag() TagType { return InitialiseBlogTag }
func (i *UpdateBlog) Tag() TagType     { return UpdateBlogTag }
func (i *AddSubscriber) Tag() TagType  { return AddSubscriberTag }
func (i *CreatePost) Tag() TagType     { return CreatePostTag }
func (i *UpdatePost) Tag() TagType     { return UpdatePostTag }
func (i *DeletePost) Tag() TagType     { return DeletePostTag }

// Digest - journal key of a packed instruction
func (record Packed) Digest() [32]byte {
	return sha3.Sum256(record)
}

// String - hex form
func (record Packed) String() string {
	return hex.EncodeToString(record)
}

// MarshalText - hex form for JSON
func (record Packed) MarshalText() ([]byte, error) {
	return []byte(record.String()), nil
}

// UnmarshalText - hex form for JSON
func (record *Packed) UnmarshalText(s []byte) error {
	buffer := make([]byte, hex.DecodedLen(len(s)))
	n, err := hex.Decode(buffer, s)
	if nil != err {
		return err
	}
	*record = buffer[:n]
	return nil
}
