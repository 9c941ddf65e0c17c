// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package instruction_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/blogledger/account"
	"github.com/bitmark-inc/blogledger/address"
	"github.com/bitmark-inc/blogledger/fault"
	"github.com/bitmark-inc/blogledger/instruction"
)

func privateKey(t *testing.T) *account.PrivateKey {
	key, err := account.NewPrivateKey(true)
	if nil != err {
		t.Fatalf("new private key error: %s", err)
	}
	return key
}

// sign - pack unsigned to get the message, then sign it
func sign(t *testing.T, key *account.PrivateKey, i instruction.Instruction, set func(account.Signature)) instruction.Packed {
	message, err := i.Pack()
	assert.Equal(t, fault.ErrInvalidSignature, err, "unsigned pack")
	set(key.Sign(message))

	packed, err := i.Pack()
	if nil != err {
		t.Fatalf("pack error: %s", err)
	}
	return packed
}

func TestInitialiseBlogRoundTrip(t *testing.T) {
	key := privateKey(t)
	i := &instruction.InitialiseBlog{
		Signer:             key.Account(),
		SubscriberCapacity: 300,
		Category:           "tech",
		Nonce:              12345,
	}
	packed := sign(t, key, i, func(s account.Signature) { i.Signature = s })

	assert.Equal(t, byte(instruction.InitialiseBlogTag), packed[0])

	result, n, err := packed.Unpack(true)
	assert.Nil(t, err)
	assert.Equal(t, len(packed), n)
	assert.Equal(t, i, result)
	assert.Equal(t, instruction.InitialiseBlogTag, result.Tag())
	assert.Equal(t, key.Account(), result.GetSigner())
}

func TestAllInstructionsRoundTrip(t *testing.T) {
	key := privateKey(t)
	blog := address.Address{1, 2, 3}
	post := address.Address{4, 5, 6}

	u := &instruction.UpdateBlog{Signer: key.Account(), Blog: blog, Category: "news", Nonce: 1}
	a := &instruction.AddSubscriber{Signer: key.Account(), Blog: blog, Subscriber: account.Identity{9}, Nonce: 2}
	c := &instruction.CreatePost{Signer: key.Account(), Blog: blog, Title: "t1", Body: "body", Nonce: 3}
	p := &instruction.UpdatePost{Signer: key.Account(), Post: post, Title: "t2", Body: "", Nonce: 4}
	d := &instruction.DeletePost{Signer: key.Account(), Post: post, Title: "", Body: "", Nonce: 5}

	tests := []struct {
		i   instruction.Instruction
		set func(account.Signature)
		tag instruction.TagType
	}{
		{u, func(s account.Signature) { u.Signature = s }, instruction.UpdateBlogTag},
		{a, func(s account.Signature) { a.Signature = s }, instruction.AddSubscriberTag},
		{c, func(s account.Signature) { c.Signature = s }, instruction.CreatePostTag},
		{p, func(s account.Signature) { p.Signature = s }, instruction.UpdatePostTag},
		{d, func(s account.Signature) { d.Signature = s }, instruction.DeletePostTag},
	}

	for _, item := range tests {
		packed := sign(t, key, item.i, item.set)

		result, err := packed.UnpackAll(true)
		assert.Nil(t, err, "%s", item.tag)
		assert.Equal(t, item.i, result, "%s", item.tag)
		assert.Equal(t, item.tag, result.Tag())
	}
}

func TestUpdateAndDeleteDiffer(t *testing.T) {
	key := privateKey(t)
	post := address.Address{7}

	u := &instruction.UpdatePost{Signer: key.Account(), Post: post, Title: "x", Body: "y", Nonce: 1}
	d := &instruction.DeletePost{Signer: key.Account(), Post: post, Title: "x", Body: "y", Nonce: 1}

	pu := sign(t, key, u, func(s account.Signature) { u.Signature = s })
	pd := sign(t, key, d, func(s account.Signature) { d.Signature = s })

	assert.NotEqual(t, pu, pd)
	assert.NotEqual(t, pu.Digest(), pd.Digest())

	// a signature for one kind is not valid for the other
	swapped := append(instruction.Packed{}, pu...)
	swapped[0] = byte(instruction.DeletePostTag)
	_, _, err := swapped.Unpack(true)
	assert.Equal(t, fault.ErrInvalidSignature, err)
}

func TestNonceChangesDigest(t *testing.T) {
	key := privateKey(t)
	i := &instruction.CreatePost{Signer: key.Account(), Blog: address.Address{1}, Title: "t", Body: "b", Nonce: 1}
	p1 := sign(t, key, i, func(s account.Signature) { i.Signature = s })

	i.Nonce = 2
	i.Signature = nil
	p2 := sign(t, key, i, func(s account.Signature) { i.Signature = s })

	assert.NotEqual(t, p1.Digest(), p2.Digest())
}

func TestUnpackTampered(t *testing.T) {
	key := privateKey(t)
	i := &instruction.UpdateBlog{Signer: key.Account(), Blog: address.Address{1}, Category: "news", Nonce: 99}
	packed := sign(t, key, i, func(s account.Signature) { i.Signature = s })

	// alter a byte of the category
	tampered := append(instruction.Packed{}, packed...)
	index := strings.Index(string(tampered), "news")
	tampered[index] = 'N'

	_, _, err := tampered.Unpack(true)
	assert.Equal(t, fault.ErrInvalidSignature, err)
}

func TestUnpackWrongNetwork(t *testing.T) {
	key := privateKey(t)
	i := &instruction.InitialiseBlog{Signer: key.Account(), Category: "x"}
	packed := sign(t, key, i, func(s account.Signature) { i.Signature = s })

	_, _, err := packed.Unpack(false)
	assert.Equal(t, fault.ErrTestNetworkMismatch, err)
}

func TestUnpackBadRecords(t *testing.T) {
	key := privateKey(t)
	i := &instruction.CreatePost{Signer: key.Account(), Blog: address.Address{1}, Title: "t", Body: "b"}
	packed := sign(t, key, i, func(s account.Signature) { i.Signature = s })

	_, _, err := instruction.Packed{}.Unpack(true)
	assert.Equal(t, fault.ErrNotInstructionPack, err, "empty")

	_, _, err = instruction.Packed{0x7f}.Unpack(true)
	assert.Equal(t, fault.ErrUnknownInstruction, err, "unknown tag")

	_, _, err = instruction.Packed{byte(instruction.NullTag)}.Unpack(true)
	assert.Equal(t, fault.ErrUnknownInstruction, err, "null tag")

	for n := 1; n < len(packed); n += 1 {
		_, _, err = packed[:n].Unpack(true)
		assert.NotNil(t, err, "truncated at: %d", n)
	}

	_, err = append(append(instruction.Packed{}, packed...), 0x00).UnpackAll(true)
	assert.Equal(t, fault.ErrTrailingData, err)

	// Unpack alone reports how much was consumed
	_, n, err := append(append(instruction.Packed{}, packed...), 0x00).Unpack(true)
	assert.Nil(t, err)
	assert.Equal(t, len(packed), n)
}

func TestPackValidation(t *testing.T) {
	key := privateKey(t)

	_, err := (&instruction.InitialiseBlog{}).Pack()
	assert.Equal(t, fault.ErrMissingParameters, err, "no signer")

	_, err = (&instruction.InitialiseBlog{Signer: key.Account(), Category: strings.Repeat("c", 257)}).Pack()
	assert.Equal(t, fault.ErrTextTooLong, err, "category")

	_, err = (&instruction.CreatePost{Signer: key.Account(), Title: "\xff"}).Pack()
	assert.Equal(t, fault.ErrInvalidUTF8, err, "title")

	_, err = (&instruction.UpdatePost{Signer: key.Account(), Body: strings.Repeat("b", 65537)}).Pack()
	assert.Equal(t, fault.ErrTextTooLong, err, "body")

	_, err = (&instruction.DeletePost{Signer: key.Account(), Signature: make(account.Signature, 1025)}).Pack()
	assert.Equal(t, fault.ErrSignatureTooLong, err, "signature")
}

func TestPackedJSON(t *testing.T) {
	packed := instruction.Packed{0x01, 0xab, 0xcd}
	buffer, err := json.Marshal(packed)
	assert.Nil(t, err)
	assert.Equal(t, `"01abcd"`, string(buffer))

	var decoded instruction.Packed
	err = json.Unmarshal(buffer, &decoded)
	assert.Nil(t, err)
	assert.Equal(t, packed, decoded)

	err = json.Unmarshal([]byte(`"zz"`), &decoded)
	assert.NotNil(t, err)
}

func TestTagNames(t *testing.T) {
	assert.Equal(t, "initialize_blog", instruction.InitialiseBlogTag.String())
	assert.Equal(t, "update_blog", instruction.UpdateBlogTag.String())
	assert.Equal(t, "add_subscriber", instruction.AddSubscriberTag.String())
	assert.Equal(t, "create_post", instruction.CreatePostTag.String())
	assert.Equal(t, "update_post", instruction.UpdatePostTag.String())
	assert.Equal(t, "delete_post", instruction.DeletePostTag.String())
	assert.Equal(t, "invalid", instruction.InvalidTag.String())
}
