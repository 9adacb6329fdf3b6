package contracts_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iotaledger/sawfly/packages/abi"
	"github.com/iotaledger/sawfly/packages/codec"
	"github.com/iotaledger/sawfly/packages/contracts"
	"github.com/iotaledger/sawfly/packages/ledger"
	"github.com/iotaledger/sawfly/packages/testutil/testmisc"
)

func TestContractExec(t *testing.T) {
	chain := modernChain()
	address := ledger.AccountIDFromPublicKey([]byte("instance"))
	contract := contracts.NewContract(chain, testABI(t), address)
	require.Equal(t, address, contract.Address())

	sc, err := contract.Exec("increment", contracts.NewCallOptions().WithValue(3).WithGasLimit(500), uint64(2))
	require.NoError(t, err)

	call := sc.Call()
	require.Equal(t, "contracts.call", call.FullName())
	require.Len(t, call.Args, 4)
	require.Equal(t, address.Bytes(), call.Args[0])
	require.Equal(t, codec.EncodeCompact(3), call.Args[1])
	require.Equal(t, codec.EncodeCompact(500), call.Args[2])
	require.Equal(t, append([]byte{0x2f, 0x86, 0x5b, 0xd9}, 2, 0, 0, 0, 0, 0, 0, 0), call.Args[3])

	receipt, err := sc.Submit(context.Background())
	require.NoError(t, err)
	require.NotNil(t, receipt)
	require.Len(t, chain.submitted, 1)
}

func TestContractExecErrors(t *testing.T) {
	contract := contracts.NewContract(modernChain(), testABI(t), ledger.NilAccountID)

	_, err := contract.Exec("missing", nil)
	testmisc.RequireErrorToBe(t, err, abi.ErrMessageNotFound)

	_, err = contract.Exec("increment", nil, "wrong type")
	testmisc.RequireErrorToBe(t, err, abi.ErrEncoding)
}

func TestDeployOptionsFluent(t *testing.T) {
	opts := contracts.NewDeployOptions().
		WithValue(11).
		WithGasLimit(22).
		WithSaltString("salt")
	require.Equal(t, uint64(11), opts.Value)
	require.Equal(t, uint64(22), opts.GasLimit)
	require.Equal(t, []byte("salt"), opts.Salt)

	opts = opts.WithSalt([]byte{9})
	require.Equal(t, []byte{9}, opts.Salt)
}
