// Copyright 2020 IOTA Stiftung
// SPDX-License-Identifier: Apache-2.0

// Package testchain runs a contracts-enabled chain in memory: it serves a
// runtime call table, executes deployment calls against a map-backed store
// and files receipts with the events a real node would emit. It backs both
// package tests and the sawfly-solo sandbox node.
package testchain

import (
	"context"
	"sync"

	"github.com/iotaledger/hive.go/ierrors"
	"github.com/iotaledger/hive.go/kvstore"
	"github.com/iotaledger/hive.go/kvstore/mapdb"
	"github.com/iotaledger/hive.go/log"
	"github.com/iotaledger/hive.go/runtime/event"

	"github.com/iotaledger/sawfly/packages/codec"
	"github.com/iotaledger/sawfly/packages/contracts"
	"github.com/iotaledger/sawfly/packages/hashing"
	"github.com/iotaledger/sawfly/packages/ledger"
)

// Chain is an in-memory contracts chain.
type Chain struct {
	name              string
	calls             *ledger.CallTable
	store             kvstore.KVStore
	receipts          map[hashing.HashValue]*ledger.Receipt
	blockIndex        uint32
	requireSignatures bool
	combined          bool
	explicitSalt      bool
	receiptProcessed  *event.Event1[*ledger.Receipt]
	mutex             sync.RWMutex
	log               log.Logger
}

type Option func(*Chain)

// WithCombinedInstantiate controls whether the runtime exposes the combined
// instantiateWithCode call (the modern generation).
func WithCombinedInstantiate(enabled bool) Option {
	return func(c *Chain) { c.combined = enabled }
}

// WithExplicitSalt controls whether instantiate declares the salt argument;
// disabled, the runtime is of the legacy generation that expects the salt at
// the tail of the constructor data.
func WithExplicitSalt(enabled bool) Option {
	return func(c *Chain) { c.explicitSalt = enabled }
}

// WithMandatorySignatures makes the chain reject unsigned calls instead of
// treating them as anonymous.
func WithMandatorySignatures(enabled bool) Option {
	return func(c *Chain) { c.requireSignatures = enabled }
}

func WithName(name string) Option {
	return func(c *Chain) { c.name = name }
}

// Runtime generations the sandbox can emulate.
const (
	GenerationModern = "modern" // combined instantiateWithCode, explicit salt
	GenerationDual   = "dual"   // storeCode then instantiate, explicit salt
	GenerationLegacy = "legacy" // storeCode then instantiate, salt folded into the constructor data
)

// GenerationOptions maps a generation name to the chain options that shape
// its call table.
func GenerationOptions(gen string) ([]Option, error) {
	switch gen {
	case GenerationModern:
		return []Option{WithCombinedInstantiate(true), WithExplicitSalt(true)}, nil
	case GenerationDual:
		return []Option{WithCombinedInstantiate(false), WithExplicitSalt(true)}, nil
	case GenerationLegacy:
		return []Option{WithCombinedInstantiate(false), WithExplicitSalt(false)}, nil
	default:
		return nil, ierrors.Errorf("unknown runtime generation %q", gen)
	}
}

func New(logger log.Logger, opts ...Option) *Chain {
	c := &Chain{
		name:             "testchain",
		store:            mapdb.NewMapDB(),
		receipts:         make(map[hashing.HashValue]*ledger.Receipt),
		combined:         true,
		explicitSalt:     true,
		receiptProcessed: event.New1[*ledger.Receipt](),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.log = logger.NewChildLogger("tc-" + c.name)
	c.calls = buildCallTable(c.combined, c.explicitSalt)
	c.log.LogInfof("chain started, runtime calls: %d", len(c.calls.List()))
	return c
}

func buildCallTable(combined, explicitSalt bool) *ledger.CallTable {
	instantiateArity := 4
	if explicitSalt {
		instantiateArity = 5
	}
	specs := []ledger.CallSpec{
		{Module: contracts.ModuleContracts, Entry: contracts.EntryStoreCode, Arity: 1},
		{Module: contracts.ModuleContracts, Entry: contracts.EntryInstantiate, Arity: instantiateArity},
		{Module: contracts.ModuleContracts, Entry: contracts.EntryCall, Arity: 4},
	}
	if combined {
		specs = append(specs, ledger.CallSpec{
			Module: contracts.ModuleContracts, Entry: contracts.EntryInstantiateWithCode, Arity: 5,
		})
	}
	return ledger.NewCallTable(specs...)
}

var _ contracts.Chain = &Chain{}

func (c *Chain) Name() string {
	return c.name
}

func (c *Chain) Generation() string {
	switch {
	case c.combined:
		return GenerationModern
	case c.explicitSalt:
		return GenerationDual
	default:
		return GenerationLegacy
	}
}

// CallTable returns the runtime descriptor served to clients.
func (c *Chain) CallTable() *ledger.CallTable {
	return c.calls
}

func (c *Chain) HasCall(module, entry string) bool {
	return c.calls.Has(module, entry)
}

func (c *Chain) CallArity(module, entry string) (int, bool) {
	return c.calls.Arity(module, entry)
}

// ReceiptProcessed is triggered after every successfully executed call.
func (c *Chain) ReceiptProcessed() *event.Event1[*ledger.Receipt] {
	return c.receiptProcessed
}

func (c *Chain) LatestBlockIndex() uint32 {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	return c.blockIndex
}

// SubmitCall executes one call synchronously and files its receipt.
func (c *Chain) SubmitCall(ctx context.Context, call *ledger.Call) (*ledger.Receipt, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := c.checkSignature(call); err != nil {
		return nil, err
	}

	c.mutex.Lock()
	defer c.mutex.Unlock()

	arity, ok := c.calls.Arity(call.Module, call.Entry)
	if !ok {
		return nil, ierrors.Errorf("unknown call %s", call.FullName())
	}
	if len(call.Args) != arity {
		return nil, ierrors.Errorf("call %s expects %d arguments, got %d", call.FullName(), arity, len(call.Args))
	}

	c.log.LogDebugf("executing %s from %s", call.FullName(), call.Sender.ShortString())
	var events []*ledger.Event
	var gasBurned uint64
	var err error
	switch call.Entry {
	case contracts.EntryStoreCode:
		events, gasBurned, err = c.storeCode(call)
	case contracts.EntryInstantiate:
		events, gasBurned, err = c.instantiate(call)
	case contracts.EntryInstantiateWithCode:
		events, gasBurned, err = c.instantiateWithCode(call)
	case contracts.EntryCall:
		events, gasBurned, err = c.callContract(call)
	default:
		err = ierrors.Errorf("no handler for %s", call.FullName())
	}
	if err != nil {
		c.log.LogWarnf("%s failed: %v", call.FullName(), err)
		return nil, err
	}

	c.blockIndex++
	receipt := &ledger.Receipt{
		RequestID:  call.ID(),
		BlockIndex: c.blockIndex,
		GasBurned:  gasBurned,
		Events:     events,
	}
	c.receipts[receipt.RequestID] = receipt
	for _, ev := range events {
		c.log.LogDebugf("emitted %s", ev)
	}
	c.receiptProcessed.Trigger(receipt)
	return receipt, nil
}

func (c *Chain) checkSignature(call *ledger.Call) error {
	if len(call.Signature) == 0 {
		if c.requireSignatures {
			return ierrors.Errorf("call %s is not signed", call.FullName())
		}
		return nil
	}
	return call.VerifySignature()
}

// GetReceipt returns the receipt filed under the given request ID.
func (c *Chain) GetReceipt(requestID hashing.HashValue) (*ledger.Receipt, bool) {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	receipt, ok := c.receipts[requestID]
	return receipt, ok
}

// decodeScalar reads one compact-encoded call scalar, rejecting trailing
// garbage.
func decodeScalar(name string, b []byte) (uint64, error) {
	v, consumed, err := codec.DecodeCompact(b)
	if err != nil {
		return 0, ierrors.Wrapf(err, "invalid %s", name)
	}
	if consumed != len(b) {
		return 0, ierrors.Errorf("invalid %s: %d trailing bytes", name, len(b)-consumed)
	}
	return v, nil
}

func (c *Chain) storeCode(call *ledger.Call) ([]*ledger.Event, uint64, error) {
	code, consumed, err := codec.ReadLengthPrefixed(call.Args[0])
	if err != nil {
		return nil, 0, ierrors.Wrap(err, "invalid code argument")
	}
	if consumed != len(call.Args[0]) {
		return nil, 0, ierrors.Errorf("invalid code argument: %d trailing bytes", len(call.Args[0])-consumed)
	}
	codeHash, err := c.storeCodeBundle(code, call.Sender)
	if err != nil {
		return nil, 0, err
	}
	events := []*ledger.Event{
		ledger.NewEvent(contracts.ModuleContracts, contracts.EventCodeStored, codeHash.Bytes()),
	}
	return events, gasStoreBase + uint64(len(code)), nil
}

func (c *Chain) instantiate(call *ledger.Call) ([]*ledger.Event, uint64, error) {
	value, err := decodeScalar("value", call.Args[0])
	if err != nil {
		return nil, 0, err
	}
	if _, err := decodeScalar("gas limit", call.Args[1]); err != nil {
		return nil, 0, err
	}
	codeHash, err := hashing.HashValueFromBytes(call.Args[2])
	if err != nil {
		return nil, 0, ierrors.Wrap(err, "invalid code hash argument")
	}
	data := call.Args[3]

	// On explicit-salt runtimes the address is derived from the salt
	// argument; legacy runtimes derive it from the full constructor data,
	// whose tail carries the salt.
	derivationInput := data
	if c.explicitSalt {
		derivationInput = call.Args[4]
	}

	event, gas, err := c.instantiateStored(codeHash, call.Sender, value, data, derivationInput)
	if err != nil {
		return nil, 0, err
	}
	return []*ledger.Event{event}, gas, nil
}

func (c *Chain) instantiateWithCode(call *ledger.Call) ([]*ledger.Event, uint64, error) {
	value, err := decodeScalar("value", call.Args[0])
	if err != nil {
		return nil, 0, err
	}
	if _, err := decodeScalar("gas limit", call.Args[1]); err != nil {
		return nil, 0, err
	}
	code, consumed, err := codec.ReadLengthPrefixed(call.Args[2])
	if err != nil {
		return nil, 0, ierrors.Wrap(err, "invalid code argument")
	}
	if consumed != len(call.Args[2]) {
		return nil, 0, ierrors.Errorf("invalid code argument: %d trailing bytes", len(call.Args[2])-consumed)
	}
	data := call.Args[3]
	salt := call.Args[4]

	codeHash, err := c.storeCodeBundle(code, call.Sender)
	if err != nil {
		return nil, 0, err
	}
	instantiated, gas, err := c.instantiateStored(codeHash, call.Sender, value, data, salt)
	if err != nil {
		return nil, 0, err
	}
	events := []*ledger.Event{
		ledger.NewEvent(contracts.ModuleContracts, contracts.EventCodeStored, codeHash.Bytes()),
		instantiated,
	}
	return events, gasStoreBase + uint64(len(code)) + gas, nil
}

func (c *Chain) callContract(call *ledger.Call) ([]*ledger.Event, uint64, error) {
	target, err := ledger.AccountIDFromBytes(call.Args[0])
	if err != nil {
		return nil, 0, ierrors.Wrap(err, "invalid target address")
	}
	value, err := decodeScalar("value", call.Args[1])
	if err != nil {
		return nil, 0, err
	}
	if _, err := decodeScalar("gas limit", call.Args[2]); err != nil {
		return nil, 0, err
	}
	data := call.Args[3]

	record, err := c.loadContractRecord(target)
	if err != nil {
		return nil, 0, err
	}
	record.Balance += value
	c.saveContractRecord(target, record)

	// the sandbox keeps no VM: the call is recorded, not executed
	events := []*ledger.Event{
		ledger.NewEvent(contracts.ModuleContracts, eventCalled, target.Bytes(), data),
	}
	return events, gasCallBase + uint64(len(data)), nil
}
