package testchain

import (
	"github.com/iotaledger/hive.go/ierrors"
	"github.com/iotaledger/hive.go/kvstore"

	"github.com/iotaledger/sawfly/packages/contracts"
	"github.com/iotaledger/sawfly/packages/hashing"
	"github.com/iotaledger/sawfly/packages/ledger"
	"github.com/iotaledger/sawfly/packages/util"
)

// eventCalled records a plain contract call. It is sandbox vocabulary, not
// part of the deployment protocol.
const eventCalled ledger.EventKind = "Called"

// Flat gas model: a base cost per entry plus one unit per payload byte.
const (
	gasStoreBase       = 100
	gasInstantiateBase = 200
	gasCallBase        = 50
)

const (
	prefixCode = iota
	prefixContract
)

func keyCode(hash hashing.HashValue) kvstore.Key {
	key := []byte{prefixCode}
	key = append(key, hash.Bytes()...)
	return key
}

func keyContract(address ledger.AccountID) kvstore.Key {
	key := []byte{prefixContract}
	key = append(key, address.Bytes()...)
	return key
}

type codeRecord struct {
	Code       []byte
	Uploader   ledger.AccountID
	BlockIndex uint32
}

type contractRecord struct {
	CodeHash   hashing.HashValue
	Deployer   ledger.AccountID
	Balance    uint64
	BlockIndex uint32
}

func (c *Chain) get(key kvstore.Key) []byte {
	ret, err := c.store.Get(key)
	if err != nil {
		if ierrors.Is(err, kvstore.ErrKeyNotFound) {
			return nil
		}
		panic(err)
	}
	return ret
}

func (c *Chain) set(key kvstore.Key, value []byte) {
	if err := c.store.Set(key, value); err != nil {
		panic(err)
	}
}

// storeCodeBundle validates and files a code bundle, returning its hash.
// Storing the same bundle twice is a no-op. Caller holds the write lock.
func (c *Chain) storeCodeBundle(code []byte, uploader ledger.AccountID) (hashing.HashValue, error) {
	if !contracts.ValidCodeBundle(code) {
		return hashing.NilHash, ierrors.New("code bundle rejected: not a wasm binary")
	}
	codeHash := hashing.HashData(code)
	if c.get(keyCode(codeHash)) != nil {
		return codeHash, nil
	}
	record := codeRecord{
		Code:       code,
		Uploader:   uploader,
		BlockIndex: c.blockIndex + 1, // the block being produced
	}
	c.set(keyCode(codeHash), util.MustSerialize(record))
	return codeHash, nil
}

// instantiateStored creates a contract instance from already stored code.
// The instance address is derived from the code hash, the deployer and the
// runtime-dependent derivation input (the salt on explicit-salt runtimes,
// the full constructor data on legacy ones). Caller holds the write lock.
func (c *Chain) instantiateStored(codeHash hashing.HashValue, deployer ledger.AccountID, value uint64, data, derivationInput []byte) (*ledger.Event, uint64, error) {
	if c.get(keyCode(codeHash)) == nil {
		return nil, 0, ierrors.Errorf("unknown code hash %s", codeHash)
	}
	address := ledger.AccountID(hashing.HashData(codeHash.Bytes(), deployer.Bytes(), derivationInput))
	if c.get(keyContract(address)) != nil {
		return nil, 0, ierrors.Errorf("contract already exists at %s", address)
	}
	record := contractRecord{
		CodeHash:   codeHash,
		Deployer:   deployer,
		Balance:    value,
		BlockIndex: c.blockIndex + 1,
	}
	c.set(keyContract(address), util.MustSerialize(record))
	event := ledger.NewEvent(contracts.ModuleContracts, contracts.EventInstantiated, deployer.Bytes(), address.Bytes())
	return event, gasInstantiateBase + uint64(len(data)), nil
}

func (c *Chain) loadContractRecord(address ledger.AccountID) (*contractRecord, error) {
	raw := c.get(keyContract(address))
	if raw == nil {
		return nil, ierrors.Errorf("unknown contract %s", address)
	}
	record, err := util.Deserialize[contractRecord](raw)
	if err != nil {
		return nil, ierrors.Wrapf(err, "corrupted record for contract %s", address)
	}
	return &record, nil
}

func (c *Chain) saveContractRecord(address ledger.AccountID, record *contractRecord) {
	c.set(keyContract(address), util.MustSerialize(*record))
}

func (c *Chain) GetCodeInfo(hash hashing.HashValue) (*ledger.CodeInfo, bool) {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	raw := c.get(keyCode(hash))
	if raw == nil {
		return nil, false
	}
	record := util.MustDeserialize[codeRecord](raw)
	return &ledger.CodeInfo{
		Hash:       hash,
		Size:       len(record.Code),
		Uploader:   record.Uploader,
		BlockIndex: record.BlockIndex,
	}, true
}

func (c *Chain) GetContractInfo(address ledger.AccountID) (*ledger.ContractInfo, bool) {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	raw := c.get(keyContract(address))
	if raw == nil {
		return nil, false
	}
	record := util.MustDeserialize[contractRecord](raw)
	return &ledger.ContractInfo{
		Address:    address,
		CodeHash:   record.CodeHash,
		Deployer:   record.Deployer,
		Balance:    record.Balance,
		BlockIndex: record.BlockIndex,
	}, true
}
