// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package space

import (
	"github.com/bitmark-inc/blogledger/fault"
)

// fixed overheads of every record
const (
	HeaderLength = 8 // record kind tag at the start of every buffer
	LengthPrefix = 4 // little endian uint32 before text and sequences
)

// Kind - how a field contributes to a record's size
type Kind int

// field kinds
const (
	KindFixed   Kind = iota // natural width
	KindText                // prefix + current byte length
	KindBounded             // prefix + capacity * element width
)

// String - readable kind
func (k Kind) String() string {
	switch k {
	case KindFixed:
		return "fixed"
	case KindText:
		return "text"
	case KindBounded:
		return "bounded"
	default:
		return "unknown"
	}
}

// MarshalText - for JSON
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Field - one component of a record's layout
type Field struct {
	Name     string
	Kind     Kind
	Width    int // fixed width, or element width of a bounded sequence
	Length   int // current text length
	Capacity int // declared sequence capacity
}

// Fixed - a field of constant width
func Fixed(name string, width int) Field {
	return Field{
		Name:  name,
		Kind:  KindFixed,
		Width: width,
	}
}

// Text - a variable length field sized from its initial content
func Text(name string, s string) Field {
	return Field{
		Name:   name,
		Kind:   KindText,
		Length: len(s),
	}
}

// Reserved - a variable length field with an already known reserve
func Reserved(name string, length int) Field {
	return Field{
		Name:   name,
		Kind:   KindText,
		Length: length,
	}
}

// Bounded - a sequence sized for its declared capacity, not its occupancy
func Bounded(name string, capacity int, elementWidth int) Field {
	return Field{
		Name:     name,
		Kind:     KindBounded,
		Width:    elementWidth,
		Capacity: capacity,
	}
}

// Size - bytes this field occupies
func (f Field) Size() int {
	switch f.Kind {
	case KindFixed:
		return f.Width
	case KindText:
		return LengthPrefix + f.Length
	case KindBounded:
		return LengthPrefix + f.Capacity*f.Width
	default:
		return 0
	}
}

// For - total allocation for a record made of these fields
func For(fields ...Field) int {
	n := HeaderLength
	for _, f := range fields {
		n += f.Size()
	}
	return n
}

// Part - one line of an allocation breakdown
type Part struct {
	Name   string `json:"name"`
	Kind   Kind   `json:"kind"`
	Offset int    `json:"offset"`
	Size   int    `json:"size"`
}

// Allocation - the layout a record will be created with
type Allocation struct {
	Header int    `json:"header"`
	Parts  []Part `json:"parts"`
	Total  int    `json:"total"`
}

// Plan - per field breakdown of For
//
// offsets follow declaration order, which is also the persisted order
func Plan(fields ...Field) Allocation {
	a := Allocation{
		Header: HeaderLength,
		Parts:  make([]Part, 0, len(fields)),
	}
	offset := HeaderLength
	for _, f := range fields {
		size := f.Size()
		a.Parts = append(a.Parts, Part{
			Name:   f.Name,
			Kind:   f.Kind,
			Offset: offset,
			Size:   size,
		})
		offset += size
	}
	a.Total = offset
	return a
}

// Fits - check new content against the bytes reserved at creation
func Fits(reserved int, s string) error {
	if len(s) > reserved {
		return fault.ErrSpaceOverrun
	}
	return nil
}
