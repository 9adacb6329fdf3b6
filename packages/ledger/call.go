// Copyright 2020 IOTA Stiftung
// SPDX-License-Identifier: Apache-2.0

package ledger

import (
	"github.com/iotaledger/hive.go/ierrors"

	"github.com/iotaledger/sawfly/packages/hashing"
	"github.com/iotaledger/sawfly/packages/util"
)

// Call is one signed runtime call: a target entry point plus its
// positionally encoded arguments.
type Call struct {
	Module          string
	Entry           string
	Args            [][]byte
	Sender          AccountID
	SenderPublicKey []byte
	Nonce           uint64
	Signature       []byte
}

func NewCall(module, entry string, args ...[]byte) *Call {
	return &Call{
		Module: module,
		Entry:  entry,
		Args:   args,
	}
}

// FullName returns the dotted entry point name, e.g. "contracts.instantiate".
func (c *Call) FullName() string {
	return c.Module + "." + c.Entry
}

type callEssence struct {
	Module string
	Entry  string
	Args   [][]byte
	Sender AccountID
	Nonce  uint64
}

// EssenceBytes returns the canonical byte form covered by the signature.
func (c *Call) EssenceBytes() []byte {
	return util.MustSerialize(callEssence{
		Module: c.Module,
		Entry:  c.Entry,
		Args:   c.Args,
		Sender: c.Sender,
		Nonce:  c.Nonce,
	})
}

// Sign fills in the sender identity and signature.
func (c *Call) Sign(kp *KeyPair, nonce uint64) *Call {
	c.Sender = kp.Address()
	c.SenderPublicKey = kp.PublicKey()
	c.Nonce = nonce
	c.Signature = kp.Sign(c.EssenceBytes())
	return c
}

// VerifySignature checks the call's signature against its declared sender.
func (c *Call) VerifySignature() error {
	if len(c.Signature) == 0 {
		return ierrors.Errorf("call %s is not signed", c.FullName())
	}
	return VerifySignature(c.Sender, c.SenderPublicKey, c.EssenceBytes(), c.Signature)
}

// ID is the request ID under which the node files the call's receipt.
func (c *Call) ID() hashing.HashValue {
	return hashing.HashData(c.EssenceBytes(), c.Signature)
}
