package contracts

import (
	"github.com/iotaledger/sawfly/packages/abi"
	"github.com/iotaledger/sawfly/packages/hashing"
)

// Blueprint is a handle over code already stored on the chain, addressed by
// its hash. It instantiates without re-uploading the bundle.
type Blueprint struct {
	chain    Chain
	abi      *abi.ABI
	codeHash hashing.HashValue
	protocol Protocol
}

func NewBlueprint(chain Chain, contractABI *abi.ABI, codeHash hashing.HashValue) (*Blueprint, error) {
	protocol, err := DetectProtocol(chain)
	if err != nil {
		return nil, err
	}
	return &Blueprint{
		chain:    chain,
		abi:      contractABI,
		codeHash: codeHash,
		protocol: protocol,
	}, nil
}

func (b *Blueprint) ABI() *abi.ABI {
	return b.abi
}

func (b *Blueprint) CodeHash() hashing.HashValue {
	return b.codeHash
}

// Instantiate builds the instantiate-by-hash call for the stored code,
// using the salt shape the resolved protocol expects.
func (b *Blueprint) Instantiate(ctor any, opts *DeployOptions, args ...any) (*SubmittableCall[*DeploymentResult], error) {
	return instantiateByHash(b.chain, b.abi, b.protocol, b.codeHash, ctor, opts, args)
}
