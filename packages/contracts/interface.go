// Package contracts assembles and submits the calls that deploy WASM
// contracts: storing code bundles, instantiating them into addressable
// instances and executing messages against those instances.
package contracts

import (
	"context"

	"github.com/iotaledger/sawfly/packages/ledger"
)

// Chain is the node surface deployments run against: the runtime call table
// consulted during protocol discovery, plus call submission.
type Chain interface {
	HasCall(module, entry string) bool
	CallArity(module, entry string) (int, bool)
	SubmitCall(ctx context.Context, call *ledger.Call) (*ledger.Receipt, error)
}

// Entry points of the contracts module.
const (
	ModuleContracts = "contracts"

	EntryStoreCode           = "storeCode"
	EntryInstantiate         = "instantiate"
	EntryInstantiateWithCode = "instantiateWithCode"
	EntryCall                = "call"
)

// Events emitted by the contracts module. CodeStored carries the code hash
// in Data[0]; Instantiated carries the deployer in Data[0] and the new
// instance address in Data[1].
const (
	EventCodeStored   ledger.EventKind = "CodeStored"
	EventInstantiated ledger.EventKind = "Instantiated"
)
