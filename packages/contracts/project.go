package contracts

import (
	"github.com/iotaledger/hive.go/ierrors"

	"github.com/iotaledger/sawfly/packages/abi"
	"github.com/iotaledger/sawfly/packages/hashing"
	"github.com/iotaledger/sawfly/packages/ledger"
)

// DeploymentResult is the projection of one deployment receipt. A handle is
// nil when the receipt carried no corresponding event; a receipt with no
// deployment events at all is a valid, empty result.
type DeploymentResult struct {
	Receipt   *ledger.Receipt
	Blueprint *Blueprint
	Contract  *Contract
}

// ProjectDeployment reduces the receipt's ordered event list into typed
// handles. Only events of the expected kinds emitted by the contracts module
// are considered; the first occurrence of each kind wins, everything else is
// skipped. Projection is deterministic: the same receipt always yields the
// same result.
func ProjectDeployment(chain Chain, contractABI *abi.ABI, receipt *ledger.Receipt, expected ...ledger.EventKind) (*DeploymentResult, error) {
	want := make(map[ledger.EventKind]bool, len(expected))
	for _, kind := range expected {
		want[kind] = true
	}

	ret := &DeploymentResult{Receipt: receipt}
	for _, ev := range receipt.Events {
		if ev.Module != ModuleContracts || !want[ev.Kind] {
			continue
		}
		switch ev.Kind {
		case EventCodeStored:
			if ret.Blueprint != nil {
				continue
			}
			if len(ev.Data) < 1 {
				return nil, ierrors.Wrapf(ErrMalformedReceipt, "%s event has no data fields", ev.Kind)
			}
			codeHash, err := hashing.HashValueFromBytes(ev.Data[0])
			if err != nil {
				return nil, ierrors.Wrapf(ErrMalformedReceipt, "%s code hash: %v", ev.Kind, err)
			}
			blueprint, err := NewBlueprint(chain, contractABI, codeHash)
			if err != nil {
				return nil, err
			}
			ret.Blueprint = blueprint
		case EventInstantiated:
			if ret.Contract != nil {
				continue
			}
			if len(ev.Data) < 2 {
				return nil, ierrors.Wrapf(ErrMalformedReceipt, "%s event has %d data fields, expected 2", ev.Kind, len(ev.Data))
			}
			address, err := ledger.AccountIDFromBytes(ev.Data[1])
			if err != nil {
				return nil, ierrors.Wrapf(ErrMalformedReceipt, "%s address: %v", ev.Kind, err)
			}
			ret.Contract = NewContract(chain, contractABI, address)
		}
	}
	return ret, nil
}
