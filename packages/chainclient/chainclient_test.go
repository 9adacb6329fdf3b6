package chainclient_test

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iotaledger/sawfly/packages/abi"
	"github.com/iotaledger/sawfly/packages/chainclient"
	"github.com/iotaledger/sawfly/packages/codec"
	"github.com/iotaledger/sawfly/packages/contracts"
	"github.com/iotaledger/sawfly/packages/hashing"
	"github.com/iotaledger/sawfly/packages/ledger"
	"github.com/iotaledger/sawfly/packages/testutil/testchain"
	"github.com/iotaledger/sawfly/packages/testutil/testlogger"
	"github.com/iotaledger/sawfly/packages/webapi"
)

var wasmFixture = append([]byte{0x00, 0x61, 0x73, 0x6d, 0x01, 0x00, 0x00, 0x00}, []byte("client fixture")...)

const counterMetadata = `{
	"name": "counter",
	"version": "1.0.0",
	"constructors": [
		{"label": "new", "selector": "0x9bae9d5e", "params": [{"label": "init_value", "type": "uint64"}]}
	],
	"messages": [
		{"label": "inc", "params": [{"label": "by", "type": "uint64"}]}
	]
}`

func startNode(t *testing.T, opts ...testchain.Option) (*testchain.Chain, *httptest.Server) {
	log := testlogger.NewLogger(t)
	chain := testchain.New(log, opts...)
	swagger := webapi.NewEcho(false, "0.1.0", log)
	webapi.Init(swagger, chain, "0.1.0", log)
	srv := httptest.NewServer(swagger.Echo())
	t.Cleanup(srv.Close)
	return chain, srv
}

func newTestClient(t *testing.T, apiAddress string, kp *ledger.KeyPair) chainclient.Client {
	client, err := chainclient.NewClient(chainclient.Config{
		APIAddress: apiAddress,
		KeyPair:    kp,
	}, testlogger.NewLogger(t))
	require.NoError(t, err)
	return client
}

func storeCodeCall() *ledger.Call {
	return ledger.NewCall(contracts.ModuleContracts, contracts.EntryStoreCode, codec.AddLengthPrefix(wasmFixture))
}

func TestClientConnects(t *testing.T) {
	chain, srv := startNode(t)
	client := newTestClient(t, srv.URL, nil)

	info, err := client.Info(context.Background())
	require.NoError(t, err)
	require.Equal(t, chain.Name(), info.Name)
	require.Equal(t, testchain.GenerationModern, info.Generation)
	require.EqualValues(t, 0, info.BlockIndex)

	require.True(t, client.HasCall(contracts.ModuleContracts, contracts.EntryStoreCode))
	arity, ok := client.CallArity(contracts.ModuleContracts, contracts.EntryInstantiate)
	require.True(t, ok)
	require.Equal(t, 5, arity)
	require.False(t, client.HasCall(contracts.ModuleContracts, "bogus"))

	// the call table was cached at construction, lookups survive the node
	srv.Close()
	require.True(t, client.HasCall(contracts.ModuleContracts, contracts.EntryInstantiateWithCode))
	_, err = client.Info(context.Background())
	require.Error(t, err)
}

func TestClientConnectError(t *testing.T) {
	_, srv := startNode(t)
	srv.Close()

	_, err := chainclient.NewClient(chainclient.Config{APIAddress: srv.URL}, testlogger.NewLogger(t))
	require.ErrorContains(t, err, "cannot fetch the runtime call table")
}

func TestClientSubmitAndReceipts(t *testing.T) {
	chain, srv := startNode(t)
	client := newTestClient(t, srv.URL, nil)
	ctx := context.Background()

	call := storeCodeCall()
	receipt, err := client.SubmitCall(ctx, call)
	require.NoError(t, err)
	require.Equal(t, call.ID(), receipt.RequestID)
	require.Len(t, receipt.Events, 1)

	nodeReceipt, ok := chain.GetReceipt(receipt.RequestID)
	require.True(t, ok)
	require.Equal(t, nodeReceipt, receipt)

	fetched, err := client.GetReceipt(ctx, receipt.RequestID)
	require.NoError(t, err)
	require.Equal(t, receipt, fetched)

	codeInfo, err := client.GetCodeInfo(ctx, hashing.HashData(wasmFixture))
	require.NoError(t, err)
	require.Equal(t, len(wasmFixture), codeInfo.Size)
}

func TestClientSigning(t *testing.T) {
	_, srv := startNode(t, testchain.WithMandatorySignatures(true))
	ctx := context.Background()

	anonymous := newTestClient(t, srv.URL, nil)
	_, err := anonymous.SubmitCall(ctx, storeCodeCall())
	require.ErrorContains(t, err, "not signed")

	kp := ledger.NewKeyPair()
	signer := newTestClient(t, srv.URL, kp)

	first := storeCodeCall()
	_, err = signer.SubmitCall(ctx, first)
	require.NoError(t, err)
	require.Equal(t, kp.Address(), first.Sender)
	require.EqualValues(t, 1, first.Nonce)

	second := storeCodeCall()
	_, err = signer.SubmitCall(ctx, second)
	require.NoError(t, err)
	require.EqualValues(t, 2, second.Nonce)

	// a pre-signed call keeps its own signature
	other := ledger.NewKeyPair()
	third := storeCodeCall().Sign(other, 42)
	_, err = signer.SubmitCall(ctx, third)
	require.NoError(t, err)
	require.Equal(t, other.Address(), third.Sender)
	require.EqualValues(t, 42, third.Nonce)
}

func TestClientErrorPassthrough(t *testing.T) {
	_, srv := startNode(t)
	client := newTestClient(t, srv.URL, nil)

	junk := ledger.NewCall(contracts.ModuleContracts, contracts.EntryStoreCode, codec.AddLengthPrefix([]byte("not wasm")))
	_, err := client.SubmitCall(context.Background(), junk)
	require.EqualError(t, err, "code bundle rejected: not a wasm binary")
}

func TestClientNotFound(t *testing.T) {
	_, srv := startNode(t)
	client := newTestClient(t, srv.URL, nil)
	ctx := context.Background()

	_, err := client.GetReceipt(ctx, hashing.HashData([]byte("no such request")))
	require.ErrorIs(t, err, chainclient.ErrNotFound)

	_, err = client.GetCodeInfo(ctx, hashing.HashData([]byte("no such code")))
	require.ErrorIs(t, err, chainclient.ErrNotFound)

	_, err = client.GetContractInfo(ctx, ledger.NilAccountID)
	require.ErrorIs(t, err, chainclient.ErrNotFound)
}

func TestDeployOverClient(t *testing.T) {
	chain, srv := startNode(t)
	kp := ledger.NewKeyPair()
	client := newTestClient(t, srv.URL, kp)
	ctx := context.Background()

	contractABI, err := abi.FromJSON([]byte(counterMetadata))
	require.NoError(t, err)

	code, err := contracts.NewCode(client, contractABI, wasmFixture)
	require.NoError(t, err)
	require.Equal(t, contracts.SinglePhase, code.Protocol().Kind)

	deploy, err := code.Instantiate("new", contracts.NewDeployOptions().WithSaltString("pepper"), uint64(7))
	require.NoError(t, err)
	result, err := deploy.Submit(ctx)
	require.NoError(t, err)
	require.NotNil(t, result.Blueprint)
	require.NotNil(t, result.Contract)

	info, err := client.GetContractInfo(ctx, result.Contract.Address())
	require.NoError(t, err)
	require.Equal(t, code.Hash(), info.CodeHash)
	require.Equal(t, kp.Address(), info.Deployer)

	nodeInfo, ok := chain.GetContractInfo(result.Contract.Address())
	require.True(t, ok)
	require.Equal(t, nodeInfo, info)
}
