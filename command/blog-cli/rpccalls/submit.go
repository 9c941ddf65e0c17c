// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/blogledger/account"
	"github.com/bitmark-inc/blogledger/fault"
	"github.com/bitmark-inc/blogledger/instruction"
	"github.com/bitmark-inc/blogledger/rpc/instructions"
)

// SubmitReply - JSON data to output after an instruction is applied
type SubmitReply struct {
	Instruction instruction.Instruction   `json:"instruction"`
	Packed      instruction.Packed        `json:"packed"`
	Result      *instructions.SubmitReply `json:"result"`
}

// Sign - pack an unsigned instruction, sign it with the key and
// return the signed pack
//
// the instruction signer is set from the key
func Sign(i instruction.Instruction, key *account.PrivateKey) (instruction.Packed, error) {

	signer := key.Account()
	switch t := i.(type) {
	case *instruction.InitialiseBlog:
		t.Signer = signer
	case *instruction.UpdateBlog:
		t.Signer = signer
	case *instruction.AddSubscriber:
		t.Signer = signer
	case *instruction.CreatePost:
		t.Signer = signer
	case *instruction.UpdatePost:
		t.Signer = signer
	case *instruction.DeletePost:
		t.Signer = signer
	default:
		return nil, fault.ErrUnknownInstruction
	}

	// an unsigned pack fails with the message to be signed
	message, err := i.Pack()
	if fault.ErrInvalidSignature != err {
		if nil == err {
			return nil, fault.ErrInvalidSignature
		}
		return nil, err
	}

	signature := key.Sign(message)
	switch t := i.(type) {
	case *instruction.InitialiseBlog:
		t.Signature = signature
	case *instruction.UpdateBlog:
		t.Signature = signature
	case *instruction.AddSubscriber:
		t.Signature = signature
	case *instruction.CreatePost:
		t.Signature = signature
	case *instruction.UpdatePost:
		t.Signature = signature
	case *instruction.DeletePost:
		t.Signature = signature
	}

	return i.Pack()
}

// Submit - sign an instruction and send it to blogd
func (client *Client) Submit(i instruction.Instruction, key *account.PrivateKey) (*SubmitReply, error) {

	if key.Test != client.testnet {
		return nil, fault.ErrTestNetworkMismatch
	}

	packed, err := Sign(i, key)
	if nil != err {
		return nil, err
	}

	client.printJson("Instruction", i)

	arguments := instructions.SubmitArguments{
		Packed: packed,
	}
	var reply instructions.SubmitReply
	err = client.client.Call("Instruction.Submit", &arguments, &reply)
	if nil != err {
		return nil, err
	}

	client.printJson("Submit Reply", reply)

	response := SubmitReply{
		Instruction: i,
		Packed:      packed,
		Result:      &reply,
	}
	return &response, nil
}
