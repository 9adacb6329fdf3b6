package contracts

import (
	"context"

	"github.com/iotaledger/sawfly/packages/abi"
	"github.com/iotaledger/sawfly/packages/ledger"
)

// SubmittableCall is a fully assembled call bound to the transform that
// turns its receipt into a typed result. Assembly performs no I/O; the call
// reaches the node only on Submit.
type SubmittableCall[T any] struct {
	chain     Chain
	call      *ledger.Call
	transform func(*ledger.Receipt) (T, error)
}

// Call exposes the assembled call, e.g. for signing or inspection.
func (s *SubmittableCall[T]) Call() *ledger.Call {
	return s.call
}

// Submit hands the call to the chain and transforms the receipt. Submission
// errors are returned as-is.
func (s *SubmittableCall[T]) Submit(ctx context.Context) (T, error) {
	receipt, err := s.chain.SubmitCall(ctx, s.call)
	if err != nil {
		var zero T
		return zero, err
	}
	return s.transform(receipt)
}

func newDeploymentCall(chain Chain, contractABI *abi.ABI, call *ledger.Call, expected ...ledger.EventKind) *SubmittableCall[*DeploymentResult] {
	return &SubmittableCall[*DeploymentResult]{
		chain: chain,
		call:  call,
		transform: func(receipt *ledger.Receipt) (*DeploymentResult, error) {
			return ProjectDeployment(chain, contractABI, receipt, expected...)
		},
	}
}

func newReceiptCall(chain Chain, call *ledger.Call) *SubmittableCall[*ledger.Receipt] {
	return &SubmittableCall[*ledger.Receipt]{
		chain:     chain,
		call:      call,
		transform: func(receipt *ledger.Receipt) (*ledger.Receipt, error) { return receipt, nil },
	}
}
