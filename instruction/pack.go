// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package instruction

import (
	"unicode/utf8"

	"github.com/bitmark-inc/blogledger/account"
	"github.com/bitmark-inc/blogledger/address"
	"github.com/bitmark-inc/blogledger/fault"
	"github.com/bitmark-inc/blogledger/util"
)

// pack InitialiseBlog
//
// Pack Varint64(tag) followed by fields in order as struct above with
// signature last
//
// NOTE: returns the "unsigned" message on signature failure - for
//       signing by the client
func (i *InitialiseBlog) Pack() (Packed, error) {
	if err := checkCommon(i.Signer, i.Signature); nil != err {
		return nil, err
	}
	if err := checkText(i.Category, maxCategoryLength); nil != err {
		return nil, err
	}

	message := util.ToVarint64(uint64(InitialiseBlogTag))
	message = appendAccount(message, i.Signer)
	message = appendUint64(message, uint64(i.SubscriberCapacity))
	message = appendString(message, i.Category)
	message = appendUint64(message, i.Nonce)

	return sign(message, i.Signer, i.Signature)
}

// pack UpdateBlog
func (i *UpdateBlog) Pack() (Packed, error) {
	if err := checkCommon(i.Signer, i.Signature); nil != err {
		return nil, err
	}
	if err := checkText(i.Category, maxCategoryLength); nil != err {
		return nil, err
	}

	message := util.ToVarint64(uint64(UpdateBlogTag))
	message = appendAccount(message, i.Signer)
	message = appendAddress(message, i.Blog)
	message = appendString(message, i.Category)
	message = appendUint64(message, i.Nonce)

	return sign(message, i.Signer, i.Signature)
}

// pack AddSubscriber
func (i *AddSubscriber) Pack() (Packed, error) {
	if err := checkCommon(i.Signer, i.Signature); nil != err {
		return nil, err
	}

	message := util.ToVarint64(uint64(AddSubscriberTag))
	message = appendAccount(message, i.Signer)
	message = appendAddress(message, i.Blog)
	message = appendBytes(message, i.Subscriber[:])
	message = appendUint64(message, i.Nonce)

	return sign(message, i.Signer, i.Signature)
}

// pack CreatePost
func (i *CreatePost) Pack() (Packed, error) {
	if err := checkCommon(i.Signer, i.Signature); nil != err {
		return nil, err
	}
	if err := checkPost(i.Title, i.Body); nil != err {
		return nil, err
	}

	message := util.ToVarint64(uint64(CreatePostTag))
	message = appendAccount(message, i.Signer)
	message = appendAddress(message, i.Blog)
	message = appendString(message, i.Title)
	message = appendString(message, i.Body)
	message = appendUint64(message, i.Nonce)

	return sign(message, i.Signer, i.Signature)
}

// pack UpdatePost
func (i *UpdatePost) Pack() (Packed, error) {
	return packRewrite(UpdatePostTag, i.Signer, i.Post, i.Title, i.Body, i.Nonce, i.Signature)
}

// pack DeletePost
//
// same layout as UpdatePost, only the tag differs
func (i *DeletePost) Pack() (Packed, error) {
	return packRewrite(DeletePostTag, i.Signer, i.Post, i.Title, i.Body, i.Nonce, i.Signature)
}

func packRewrite(tag TagType, signer *account.Account, post address.Address, title string, body string, nonce uint64, signature account.Signature) (Packed, error) {
	if err := checkCommon(signer, signature); nil != err {
		return nil, err
	}
	if err := checkPost(title, body); nil != err {
		return nil, err
	}

	message := util.ToVarint64(uint64(tag))
	message = appendAccount(message, signer)
	message = appendAddress(message, post)
	message = appendString(message, title)
	message = appendString(message, body)
	message = appendUint64(message, nonce)

	return sign(message, signer, signature)
}

func checkCommon(signer *account.Account, signature account.Signature) error {
	if nil == signer {
		return fault.ErrMissingParameters
	}
	if len(signature) > maxSignatureLength {
		return fault.ErrSignatureTooLong
	}
	return nil
}

func checkPost(title string, body string) error {
	if err := checkText(title, maxTitleLength); nil != err {
		return err
	}
	return checkText(body, maxBodyLength)
}

func checkText(s string, maximum int) error {
	if !utf8.ValidString(s) {
		return fault.ErrInvalidUTF8
	}
	if len(s) > maximum {
		return fault.ErrTextTooLong
	}
	return nil
}

// signature last
func sign(message Packed, signer *account.Account, signature account.Signature) (Packed, error) {
	err := signer.CheckSignature(message, signature)
	if nil != err {
		return message, err
	}
	return appendBytes(message, signature), nil
}

// append a single field to a buffer
//
// the field is prefixed by Varint64(length)
func appendString(buffer Packed, s string) Packed {
	l := util.ToVarint64(uint64(len(s)))
	buffer = append(buffer, l...)
	return append(buffer, s...)
}

// append an account to a buffer
//
// the field is prefixed by Varint64(length)
func appendAccount(buffer Packed, a *account.Account) Packed {
	return appendBytes(buffer, a.Bytes())
}

// append an address to a buffer
func appendAddress(buffer Packed, a address.Address) Packed {
	return appendBytes(buffer, a[:])
}

// append a bytes to a buffer
//
// the field is prefixed by Varint64(length)
func appendBytes(buffer Packed, data []byte) Packed {
	l := util.ToVarint64(uint64(len(data)))
	buffer = append(buffer, l...)
	return append(buffer, data...)
}

// append a Varint64 to buffer
func appendUint64(buffer Packed, value uint64) Packed {
	return append(buffer, util.ToVarint64(value)...)
}
