package webapi_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iotaledger/sawfly/packages/codec"
	"github.com/iotaledger/sawfly/packages/contracts"
	"github.com/iotaledger/sawfly/packages/hashing"
	"github.com/iotaledger/sawfly/packages/ledger"
	"github.com/iotaledger/sawfly/packages/testutil/testchain"
	"github.com/iotaledger/sawfly/packages/testutil/testlogger"
	"github.com/iotaledger/sawfly/packages/webapi"
	"github.com/iotaledger/sawfly/packages/webapi/models"
)

var wasmFixture = append([]byte{0x00, 0x61, 0x73, 0x6d, 0x01, 0x00, 0x00, 0x00}, []byte("webapi fixture")...)

func startTestServer(t *testing.T, opts ...testchain.Option) (*httptest.Server, *testchain.Chain) {
	log := testlogger.NewLogger(t)
	chain := testchain.New(log, opts...)
	swagger := webapi.NewEcho(false, "0.1.0", log)
	webapi.Init(swagger, chain, "0.1.0", log)
	srv := httptest.NewServer(swagger.Echo())
	t.Cleanup(srv.Close)
	return srv, chain
}

func doGet(t *testing.T, url string, wantStatus int, out any) {
	res, err := http.Get(url)
	require.NoError(t, err)
	defer res.Body.Close()
	require.Equal(t, wantStatus, res.StatusCode)
	if out != nil {
		require.NoError(t, json.NewDecoder(res.Body).Decode(out))
	}
}

func doPost(t *testing.T, url string, body any, wantStatus int, out any) {
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	res, err := http.Post(url, "application/json", bytes.NewReader(raw))
	require.NoError(t, err)
	defer res.Body.Close()
	require.Equal(t, wantStatus, res.StatusCode)
	if out != nil {
		require.NoError(t, json.NewDecoder(res.Body).Decode(out))
	}
}

func TestInfoEndpoint(t *testing.T) {
	srv, _ := startTestServer(t)
	var info models.InfoResponse
	doGet(t, srv.URL+"/v1/info", http.StatusOK, &info)
	require.Equal(t, "testchain", info.Name)
	require.Equal(t, testchain.GenerationModern, info.Generation)
	require.Equal(t, uint32(0), info.BlockIndex)
}

func TestCallTableEndpoint(t *testing.T) {
	srv, _ := startTestServer(t, testchain.WithCombinedInstantiate(false), testchain.WithExplicitSalt(false))
	var res models.CallTableResponse
	doGet(t, srv.URL+"/v1/runtime/calls", http.StatusOK, &res)
	require.Len(t, res.Calls, 3)

	table := res.ToCallTable()
	require.False(t, table.Has(contracts.ModuleContracts, contracts.EntryInstantiateWithCode))
	arity, ok := table.Arity(contracts.ModuleContracts, contracts.EntryInstantiate)
	require.True(t, ok)
	require.Equal(t, 4, arity)
}

func TestSubmitCall(t *testing.T) {
	srv, chain := startTestServer(t)
	call := ledger.NewCall(contracts.ModuleContracts, contracts.EntryStoreCode, codec.AddLengthPrefix(wasmFixture))

	var res models.ReceiptResponse
	doPost(t, srv.URL+"/v1/calls", models.MapCall(call), http.StatusOK, &res)

	receipt, err := res.ToReceipt()
	require.NoError(t, err)
	require.Equal(t, call.ID(), receipt.RequestID)
	require.Len(t, receipt.Events, 1)
	require.Equal(t, contracts.EventCodeStored, receipt.Events[0].Kind)
	require.Equal(t, hashing.HashData(wasmFixture).Bytes(), receipt.Events[0].Data[0])

	stored, ok := chain.GetReceipt(call.ID())
	require.True(t, ok)
	require.Equal(t, stored.GasBurned, receipt.GasBurned)

	var fetched models.ReceiptResponse
	doGet(t, srv.URL+"/v1/receipts/"+call.ID().Hex(), http.StatusOK, &fetched)
	require.Equal(t, res, fetched)

	var codeInfo models.CodeInfoResponse
	doGet(t, srv.URL+"/v1/codes/"+hashing.HashData(wasmFixture).Hex(), http.StatusOK, &codeInfo)
	require.Equal(t, len(wasmFixture), codeInfo.Size)
}

func TestSubmitCallRejected(t *testing.T) {
	srv, _ := startTestServer(t)

	t.Run("execution error surfaces verbatim", func(t *testing.T) {
		call := ledger.NewCall(contracts.ModuleContracts, contracts.EntryStoreCode, codec.AddLengthPrefix([]byte("#!")))
		var res models.ErrorResponse
		doPost(t, srv.URL+"/v1/calls", models.MapCall(call), http.StatusBadRequest, &res)
		require.Contains(t, res.Error.Message, "not a wasm binary")
		require.Equal(t, "400", res.Error.Code)
	})
	t.Run("malformed argument hex", func(t *testing.T) {
		req := &models.CallRequest{
			Module: contracts.ModuleContracts,
			Entry:  contracts.EntryStoreCode,
			Args:   []string{"0xZZ"},
		}
		var res models.ErrorResponse
		doPost(t, srv.URL+"/v1/calls", req, http.StatusBadRequest, &res)
		require.Contains(t, res.Error.Message, "argument 0")
	})
}

func TestLookupsNotFound(t *testing.T) {
	srv, _ := startTestServer(t)

	doGet(t, srv.URL+"/v1/receipts/"+hashing.HashData([]byte("nope")).Hex(), http.StatusNotFound, nil)
	doGet(t, srv.URL+"/v1/codes/"+hashing.HashData([]byte("nope")).Hex(), http.StatusNotFound, nil)
	doGet(t, srv.URL+"/v1/contracts/"+ledger.NilAccountID.String(), http.StatusNotFound, nil)

	var res models.ErrorResponse
	doGet(t, srv.URL+"/v1/receipts/0xbad", http.StatusBadRequest, &res)
	require.NotEmpty(t, res.Error.Message)
}
