package contracts

import (
	"github.com/iotaledger/sawfly/packages/abi"
	"github.com/iotaledger/sawfly/packages/codec"
	"github.com/iotaledger/sawfly/packages/ledger"
)

// Contract is a handle over a deployed contract instance.
type Contract struct {
	chain   Chain
	abi     *abi.ABI
	address ledger.AccountID
}

func NewContract(chain Chain, contractABI *abi.ABI, address ledger.AccountID) *Contract {
	return &Contract{
		chain:   chain,
		abi:     contractABI,
		address: address,
	}
}

func (c *Contract) ABI() *abi.ABI {
	return c.abi
}

func (c *Contract) Address() ledger.AccountID {
	return c.address
}

// Exec builds the call executing one of the contract's messages, resolved
// by label or 0x selector.
func (c *Contract) Exec(message string, opts *CallOptions, args ...any) (*SubmittableCall[*ledger.Receipt], error) {
	msg, err := c.abi.FindMessage(message)
	if err != nil {
		return nil, err
	}
	data, err := msg.Encode(args)
	if err != nil {
		return nil, err
	}
	opts = defaultCallOptions(opts)
	call := ledger.NewCall(ModuleContracts, EntryCall,
		c.address.Bytes(),
		codec.EncodeCompact(opts.Value),
		codec.EncodeCompact(opts.GasLimit),
		data,
	)
	return newReceiptCall(c.chain, call), nil
}
