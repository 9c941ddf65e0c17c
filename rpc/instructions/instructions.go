// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package instructions

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/blogledger/address"
	"github.com/bitmark-inc/blogledger/fault"
	"github.com/bitmark-inc/blogledger/instruction"
	"github.com/bitmark-inc/blogledger/processor"
	"github.com/bitmark-inc/blogledger/rpc/ratelimit"
)

const (
	rateLimitInstruction = 100
	rateBurstInstruction = 50
)

// Submitter - applies packed instructions
type Submitter interface {
	Submit(instruction.Packed) (*processor.Result, error)
}

// Instruction - type for RPC calls
type Instruction struct {
	Log       *logger.L
	Limiter   *rate.Limiter
	Submitter Submitter
}

// New - create the instruction service
func New(log *logger.L, submitter Submitter) *Instruction {
	return &Instruction{
		Log:       log,
		Limiter:   rate.NewLimiter(rateLimitInstruction, rateBurstInstruction),
		Submitter: submitter,
	}
}

// SubmitArguments - a signed packed instruction
type SubmitArguments struct {
	Packed instruction.Packed `json:"packed"` // hex
}

// SubmitReply - what the instruction did
type SubmitReply struct {
	Kind       string          `json:"kind"`
	Digest     string          `json:"digest"`
	Address    address.Address `json:"address"`
	EntryIndex *uint8          `json:"entryIndex,omitempty"`
}

// Submit - apply one instruction
func (i *Instruction) Submit(arguments *SubmitArguments, reply *SubmitReply) error {
	if err := ratelimit.Limit(i.Limiter); nil != err {
		return err
	}

	if nil == arguments || 0 == len(arguments.Packed) {
		return fault.ErrMissingParameters
	}

	i.Log.Debugf("Instruction.Submit: %x", arguments.Packed)

	result, err := i.Submitter.Submit(arguments.Packed)
	if nil != err {
		return err
	}

	reply.Kind = result.Kind
	reply.Digest = result.Digest
	reply.Address = result.Address
	reply.EntryIndex = result.EntryIndex
	return nil
}
