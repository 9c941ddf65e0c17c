// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record

import (
	"bytes"
	"encoding/binary"
	"unicode/utf8"

	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/blogledger/account"
	"github.com/bitmark-inc/blogledger/address"
	"github.com/bitmark-inc/blogledger/fault"
	"github.com/bitmark-inc/blogledger/space"
)

// Kind - the type of a stored record
type Kind int

// record kinds
const (
	UnknownKind Kind = iota
	BlogKind
	PostKind
)

// String - readable kind
func (k Kind) String() string {
	switch k {
	case BlogKind:
		return "blog"
	case PostKind:
		return "post"
	default:
		return "unknown"
	}
}

// MarshalText - for JSON
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// fixed field widths
const (
	blogWidth     = address.Length
	ownerWidth    = account.IdentityLength
	saltWidth     = 1
	counterWidth  = 1
	flagWidth     = 1
	capacityWidth = 2
	reserveWidth  = 4
)

// the first bytes of each record identify its kind
var (
	blogHeader = header("account:Blog")
	postHeader = header("account:Post")
)

func header(name string) []byte {
	h := sha3.Sum256([]byte(name))
	return h[:space.HeaderLength]
}

// Peek - determine the kind of a record buffer from its header
func Peek(buffer []byte) (Kind, error) {
	if len(buffer) < space.HeaderLength {
		return UnknownKind, fault.ErrRecordTruncated
	}
	h := buffer[:space.HeaderLength]
	switch {
	case bytes.Equal(h, blogHeader):
		return BlogKind, nil
	case bytes.Equal(h, postHeader):
		return PostKind, nil
	default:
		return UnknownKind, fault.ErrWrongRecordKind
	}
}

// encoder writes into a buffer allocated at its final size
type encoder struct {
	buffer []byte
	offset int
}

func newEncoder(length int, h []byte) *encoder {
	e := &encoder{
		buffer: make([]byte, length),
	}
	e.bytes(h)
	return e
}

func (e *encoder) bytes(b []byte) {
	copy(e.buffer[e.offset:], b)
	e.offset += len(b)
}

func (e *encoder) byte(b byte) {
	e.buffer[e.offset] = b
	e.offset += 1
}

func (e *encoder) uint16(n uint16) {
	binary.LittleEndian.PutUint16(e.buffer[e.offset:], n)
	e.offset += 2
}

func (e *encoder) uint32(n uint32) {
	binary.LittleEndian.PutUint32(e.buffer[e.offset:], n)
	e.offset += 4
}

// text occupies prefix + reserve bytes whatever its current length,
// the unused tail stays zero
func (e *encoder) text(s string, reserve uint32) {
	e.uint32(uint32(len(s)))
	copy(e.buffer[e.offset:], s)
	e.offset += int(reserve)
}

// decoder reads the same layout back, failing on short buffers
type decoder struct {
	buffer []byte
	offset int
	err    error
}

func newDecoder(buffer []byte, h []byte) *decoder {
	d := &decoder{
		buffer: buffer,
	}
	if len(buffer) < len(h) {
		d.err = fault.ErrRecordTruncated
	} else if !bytes.Equal(buffer[:len(h)], h) {
		d.err = fault.ErrWrongRecordKind
	} else {
		d.offset = len(h)
	}
	return d
}

func (d *decoder) take(n int) []byte {
	if nil != d.err {
		return nil
	}
	if n < 0 || d.offset+n > len(d.buffer) {
		d.err = fault.ErrRecordTruncated
		return nil
	}
	b := d.buffer[d.offset : d.offset+n]
	d.offset += n
	return b
}

func (d *decoder) identity() account.Identity {
	var id account.Identity
	copy(id[:], d.take(ownerWidth))
	return id
}

func (d *decoder) address() address.Address {
	var a address.Address
	copy(a[:], d.take(blogWidth))
	return a
}

func (d *decoder) byte() byte {
	b := d.take(1)
	if nil == b {
		return 0
	}
	return b[0]
}

func (d *decoder) uint16() uint16 {
	b := d.take(2)
	if nil == b {
		return 0
	}
	return binary.LittleEndian.Uint16(b)
}

func (d *decoder) uint32() uint32 {
	b := d.take(4)
	if nil == b {
		return 0
	}
	return binary.LittleEndian.Uint32(b)
}

func (d *decoder) text(reserve uint32) string {
	n := d.uint32()
	slot := d.take(int(reserve))
	if nil != d.err {
		return ""
	}
	if n > reserve {
		d.err = fault.ErrSpaceOverrun
		return ""
	}
	return string(slot[:n])
}

// finish - the whole buffer must have been consumed
func (d *decoder) finish() error {
	if nil != d.err {
		return d.err
	}
	if d.offset != len(d.buffer) {
		return fault.ErrTrailingData
	}
	return nil
}

// checkText - content must be UTF-8 and fit its reserve
func checkText(s string, reserve uint32) error {
	if !utf8.ValidString(s) {
		return fault.ErrInvalidUTF8
	}
	return space.Fits(int(reserve), s)
}
