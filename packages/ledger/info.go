package ledger

import (
	"github.com/iotaledger/sawfly/packages/hashing"
)

// CodeInfo describes one stored code bundle, as reported by a node.
type CodeInfo struct {
	Hash       hashing.HashValue
	Size       int
	Uploader   AccountID
	BlockIndex uint32
}

// ContractInfo describes one deployed contract instance, as reported by a
// node.
type ContractInfo struct {
	Address    AccountID
	CodeHash   hashing.HashValue
	Deployer   AccountID
	Balance    uint64
	BlockIndex uint32
}
