// Copyright 2020 IOTA Stiftung
// SPDX-License-Identifier: Apache-2.0

package contracts

import (
	"bytes"

	"github.com/iotaledger/hive.go/ierrors"

	"github.com/iotaledger/sawfly/packages/abi"
	"github.com/iotaledger/sawfly/packages/codec"
	"github.com/iotaledger/sawfly/packages/hashing"
	"github.com/iotaledger/sawfly/packages/ledger"
)

var wasmMagic = []byte{0x00, 0x61, 0x73, 0x6d}

// ValidCodeBundle reports whether code starts with the WASM magic.
func ValidCodeBundle(code []byte) bool {
	return bytes.HasPrefix(code, wasmMagic)
}

// Code is a deployment handle over a validated code bundle. The runtime's
// deployment protocol and the contract's constructor table are frozen when
// the handle is built.
type Code struct {
	chain    Chain
	abi      *abi.ABI
	wasm     []byte
	protocol Protocol
}

// NewCode validates the bundle, resolves the deployment protocol and
// returns the handle. No calls are submitted.
func NewCode(chain Chain, contractABI *abi.ABI, wasm []byte) (*Code, error) {
	if !ValidCodeBundle(wasm) {
		return nil, ierrors.Wrapf(ErrInvalidCodeBundle, "contract %q: missing WASM magic", contractABI.Name)
	}
	protocol, err := DetectProtocol(chain)
	if err != nil {
		return nil, err
	}
	return &Code{
		chain:    chain,
		abi:      contractABI,
		wasm:     wasm,
		protocol: protocol,
	}, nil
}

func (c *Code) ABI() *abi.ABI {
	return c.abi
}

func (c *Code) Protocol() Protocol {
	return c.protocol
}

// Hash is the code hash the chain will file the bundle under.
func (c *Code) Hash() hashing.HashValue {
	return hashing.HashData(c.wasm)
}

// StoreOnly builds the call that uploads the bundle without instantiating
// it. The projected result carries the blueprint handle.
func (c *Code) StoreOnly() *SubmittableCall[*DeploymentResult] {
	call := ledger.NewCall(ModuleContracts, EntryStoreCode, codec.AddLengthPrefix(c.wasm))
	return newDeploymentCall(c.chain, c.abi, call, EventCodeStored)
}

// Instantiate builds the deployment call for the resolved protocol: the
// combined upload+instantiate call on single-phase runtimes, the
// instantiate-by-hash call otherwise.
func (c *Code) Instantiate(ctor any, opts *DeployOptions, args ...any) (*SubmittableCall[*DeploymentResult], error) {
	if c.protocol.Kind != SinglePhase {
		return instantiateByHash(c.chain, c.abi, c.protocol, c.Hash(), ctor, opts, args)
	}

	constructor, err := c.abi.FindConstructor(ctor)
	if err != nil {
		return nil, err
	}
	data, err := constructor.Encode(args, nil)
	if err != nil {
		return nil, err
	}
	opts = defaultDeployOptions(opts)
	call := ledger.NewCall(ModuleContracts, EntryInstantiateWithCode,
		codec.EncodeCompact(opts.Value),
		codec.EncodeCompact(opts.GasLimit),
		codec.AddLengthPrefix(c.wasm),
		data,
		EncodeSalt(opts.Salt),
	)
	return newDeploymentCall(c.chain, c.abi, call, EventCodeStored, EventInstantiated), nil
}

// instantiateByHash assembles the dual-phase instantiate call referencing
// already stored code.
func instantiateByHash(
	chain Chain,
	contractABI *abi.ABI,
	protocol Protocol,
	codeHash hashing.HashValue,
	ctor any,
	opts *DeployOptions,
	args []any,
) (*SubmittableCall[*DeploymentResult], error) {
	constructor, err := contractABI.FindConstructor(ctor)
	if err != nil {
		return nil, err
	}
	opts = defaultDeployOptions(opts)
	encodedSalt := EncodeSalt(opts.Salt)

	var call *ledger.Call
	if protocol.ExplicitSalt {
		data, err := constructor.Encode(args, nil)
		if err != nil {
			return nil, err
		}
		call = ledger.NewCall(ModuleContracts, EntryInstantiate,
			codec.EncodeCompact(opts.Value),
			codec.EncodeCompact(opts.GasLimit),
			codeHash.Bytes(),
			data,
			encodedSalt,
		)
	} else {
		// Legacy runtimes take no salt argument: the encoder runs with the
		// empty sentinel and the real salt goes after the encoded args,
		// forming the data argument itself.
		data, err := constructor.Encode(args, EmptySalt)
		if err != nil {
			return nil, err
		}
		data = append(data, encodedSalt...)
		call = ledger.NewCall(ModuleContracts, EntryInstantiate,
			codec.EncodeCompact(opts.Value),
			codec.EncodeCompact(opts.GasLimit),
			codeHash.Bytes(),
			data,
		)
	}
	return newDeploymentCall(chain, contractABI, call, EventInstantiated), nil
}
