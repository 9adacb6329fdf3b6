// Package models holds the wire types of the node HTTP API. Byte fields
// travel as 0x hex strings, account identifiers as base58.
package models

import (
	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/iotaledger/hive.go/ierrors"

	"github.com/iotaledger/sawfly/packages/hashing"
	"github.com/iotaledger/sawfly/packages/ledger"
)

type InfoResponse struct {
	Name       string `json:"name" swagger:"desc(The chain name),required"`
	Version    string `json:"version" swagger:"desc(The node version),required"`
	Generation string `json:"generation" swagger:"desc(The emulated runtime generation),required"`
	BlockIndex uint32 `json:"blockIndex" swagger:"desc(The latest block index),required"`
}

type CallSpec struct {
	Module string `json:"module" swagger:"desc(The runtime module),required"`
	Entry  string `json:"entry" swagger:"desc(The entry point within the module),required"`
	Arity  int    `json:"arity" swagger:"desc(The number of declared arguments),required"`
}

type CallTableResponse struct {
	Calls []CallSpec `json:"calls" swagger:"desc(The entry points the runtime accepts),required"`
}

func MapCallTable(table *ledger.CallTable) *CallTableResponse {
	ret := &CallTableResponse{Calls: []CallSpec{}}
	for _, s := range table.List() {
		ret.Calls = append(ret.Calls, CallSpec{Module: s.Module, Entry: s.Entry, Arity: s.Arity})
	}
	return ret
}

func (r *CallTableResponse) ToCallTable() *ledger.CallTable {
	specs := make([]ledger.CallSpec, len(r.Calls))
	for i, s := range r.Calls {
		specs[i] = ledger.CallSpec{Module: s.Module, Entry: s.Entry, Arity: s.Arity}
	}
	return ledger.NewCallTable(specs...)
}

type CallRequest struct {
	Module          string   `json:"module" swagger:"desc(The runtime module),required"`
	Entry           string   `json:"entry" swagger:"desc(The entry point within the module),required"`
	Args            []string `json:"args" swagger:"desc(The positionally encoded arguments (Hex)),required"`
	Sender          string   `json:"sender,omitempty" swagger:"desc(The sender account (Base58))"`
	SenderPublicKey string   `json:"senderPublicKey,omitempty" swagger:"desc(The sender public key (Hex))"`
	Nonce           uint64   `json:"nonce,omitempty" swagger:"desc(The sender nonce)"`
	Signature       string   `json:"signature,omitempty" swagger:"desc(The call signature (Hex))"`
}

func MapCall(call *ledger.Call) *CallRequest {
	ret := &CallRequest{
		Module: call.Module,
		Entry:  call.Entry,
		Args:   make([]string, len(call.Args)),
	}
	for i, arg := range call.Args {
		ret.Args[i] = hexutil.Encode(arg)
	}
	if len(call.Signature) > 0 {
		ret.Sender = call.Sender.String()
		ret.SenderPublicKey = hexutil.Encode(call.SenderPublicKey)
		ret.Nonce = call.Nonce
		ret.Signature = hexutil.Encode(call.Signature)
	}
	return ret
}

func (r *CallRequest) ToCall() (*ledger.Call, error) {
	call := &ledger.Call{
		Module: r.Module,
		Entry:  r.Entry,
		Args:   make([][]byte, len(r.Args)),
		Nonce:  r.Nonce,
	}
	for i, arg := range r.Args {
		b, err := hexutil.Decode(arg)
		if err != nil {
			return nil, ierrors.Wrapf(err, "argument %d", i)
		}
		call.Args[i] = b
	}
	if r.Sender != "" {
		sender, err := ledger.AccountIDFromString(r.Sender)
		if err != nil {
			return nil, ierrors.Wrap(err, "sender")
		}
		call.Sender = sender
	}
	if r.SenderPublicKey != "" {
		pub, err := hexutil.Decode(r.SenderPublicKey)
		if err != nil {
			return nil, ierrors.Wrap(err, "sender public key")
		}
		call.SenderPublicKey = pub
	}
	if r.Signature != "" {
		sig, err := hexutil.Decode(r.Signature)
		if err != nil {
			return nil, ierrors.Wrap(err, "signature")
		}
		call.Signature = sig
	}
	return call, nil
}

type Event struct {
	Module string   `json:"module" swagger:"desc(The emitting module),required"`
	Kind   string   `json:"kind" swagger:"desc(The event kind),required"`
	Data   []string `json:"data" swagger:"desc(The ordered data fields (Hex)),required"`
}

type ReceiptResponse struct {
	RequestID  string  `json:"requestId" swagger:"desc(The request ID the receipt is filed under (Hex)),required"`
	BlockIndex uint32  `json:"blockIndex" swagger:"desc(The block the call was included in),required"`
	GasBurned  uint64  `json:"gasBurned" swagger:"desc(The gas burned by the call),required"`
	Events     []Event `json:"events" swagger:"desc(The ordered events the call emitted),required"`
}

func MapReceipt(receipt *ledger.Receipt) *ReceiptResponse {
	ret := &ReceiptResponse{
		RequestID:  receipt.RequestID.Hex(),
		BlockIndex: receipt.BlockIndex,
		GasBurned:  receipt.GasBurned,
		Events:     []Event{},
	}
	for _, ev := range receipt.Events {
		data := make([]string, len(ev.Data))
		for i, d := range ev.Data {
			data[i] = hexutil.Encode(d)
		}
		ret.Events = append(ret.Events, Event{
			Module: ev.Module,
			Kind:   string(ev.Kind),
			Data:   data,
		})
	}
	return ret
}

func (r *ReceiptResponse) ToReceipt() (*ledger.Receipt, error) {
	requestID, err := hashing.HashValueFromHex(r.RequestID)
	if err != nil {
		return nil, ierrors.Wrap(err, "request ID")
	}
	receipt := &ledger.Receipt{
		RequestID:  requestID,
		BlockIndex: r.BlockIndex,
		GasBurned:  r.GasBurned,
	}
	for i, ev := range r.Events {
		data := make([][]byte, len(ev.Data))
		for j, d := range ev.Data {
			b, err := hexutil.Decode(d)
			if err != nil {
				return nil, ierrors.Wrapf(err, "event %d data %d", i, j)
			}
			data[j] = b
		}
		receipt.Events = append(receipt.Events, &ledger.Event{
			Module: ev.Module,
			Kind:   ledger.EventKind(ev.Kind),
			Data:   data,
		})
	}
	return receipt, nil
}

type CodeInfoResponse struct {
	Hash       string `json:"hash" swagger:"desc(The code hash (Hex)),required"`
	Size       int    `json:"size" swagger:"desc(The bundle size in bytes),required"`
	Uploader   string `json:"uploader" swagger:"desc(The uploader account (Base58)),required"`
	BlockIndex uint32 `json:"blockIndex" swagger:"desc(The block the bundle was stored in),required"`
}

func MapCodeInfo(info *ledger.CodeInfo) *CodeInfoResponse {
	return &CodeInfoResponse{
		Hash:       info.Hash.Hex(),
		Size:       info.Size,
		Uploader:   info.Uploader.String(),
		BlockIndex: info.BlockIndex,
	}
}

func (r *CodeInfoResponse) ToCodeInfo() (*ledger.CodeInfo, error) {
	hash, err := hashing.HashValueFromHex(r.Hash)
	if err != nil {
		return nil, ierrors.Wrap(err, "code hash")
	}
	uploader, err := ledger.AccountIDFromString(r.Uploader)
	if err != nil {
		return nil, ierrors.Wrap(err, "uploader")
	}
	return &ledger.CodeInfo{
		Hash:       hash,
		Size:       r.Size,
		Uploader:   uploader,
		BlockIndex: r.BlockIndex,
	}, nil
}

type ContractInfoResponse struct {
	Address    string `json:"address" swagger:"desc(The contract address (Base58)),required"`
	CodeHash   string `json:"codeHash" swagger:"desc(The hash of the underlying code (Hex)),required"`
	Deployer   string `json:"deployer" swagger:"desc(The deployer account (Base58)),required"`
	Balance    uint64 `json:"balance" swagger:"desc(The funds held by the contract),required"`
	BlockIndex uint32 `json:"blockIndex" swagger:"desc(The block the contract was instantiated in),required"`
}

func MapContractInfo(info *ledger.ContractInfo) *ContractInfoResponse {
	return &ContractInfoResponse{
		Address:    info.Address.String(),
		CodeHash:   info.CodeHash.Hex(),
		Deployer:   info.Deployer.String(),
		Balance:    info.Balance,
		BlockIndex: info.BlockIndex,
	}
}

func (r *ContractInfoResponse) ToContractInfo() (*ledger.ContractInfo, error) {
	address, err := ledger.AccountIDFromString(r.Address)
	if err != nil {
		return nil, ierrors.Wrap(err, "address")
	}
	codeHash, err := hashing.HashValueFromHex(r.CodeHash)
	if err != nil {
		return nil, ierrors.Wrap(err, "code hash")
	}
	deployer, err := ledger.AccountIDFromString(r.Deployer)
	if err != nil {
		return nil, ierrors.Wrap(err, "deployer")
	}
	return &ledger.ContractInfo{
		Address:    address,
		CodeHash:   codeHash,
		Deployer:   deployer,
		Balance:    r.Balance,
		BlockIndex: r.BlockIndex,
	}, nil
}

type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
