package testchain_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iotaledger/sawfly/packages/abi"
	"github.com/iotaledger/sawfly/packages/contracts"
	"github.com/iotaledger/sawfly/packages/ledger"
	"github.com/iotaledger/sawfly/packages/testutil/testchain"
	"github.com/iotaledger/sawfly/packages/testutil/testlogger"
	"github.com/iotaledger/sawfly/packages/testutil/testmisc"
)

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

func counterABI(t *testing.T) *abi.ABI {
	contractABI, err := abi.FromJSON([]byte(counterMetadata))
	require.NoError(t, err)
	return contractABI
}

func newChain(t *testing.T, gen string) *testchain.Chain {
	opts, err := testchain.GenerationOptions(gen)
	require.NoError(t, err)
	return testchain.New(testlogger.NewLogger(t), opts...)
}

func TestDeploySinglePhase(t *testing.T) {
	ch := newChain(t, testchain.GenerationModern)
	code, err := contracts.NewCode(ch, counterABI(t), wasmFixture)
	require.NoError(t, err)
	require.Equal(t, contracts.SinglePhase, code.Protocol().Kind)

	deploy, err := code.Instantiate("new", contracts.NewDeployOptions().WithSaltString("pepper"), uint64(7))
	require.NoError(t, err)
	result, err := deploy.Submit(context.Background())
	require.NoError(t, err)

	require.NotNil(t, result.Blueprint)
	require.NotNil(t, result.Contract)
	require.Equal(t, code.Hash(), result.Blueprint.CodeHash())

	require.Len(t, result.Receipt.Events, 2)
	require.Equal(t, contracts.EventCodeStored, result.Receipt.Events[0].Kind)
	require.Equal(t, contracts.EventInstantiated, result.Receipt.Events[1].Kind)

	info, ok := ch.GetContractInfo(result.Contract.Address())
	require.True(t, ok)
	require.Equal(t, code.Hash(), info.CodeHash)
}

func TestDeployDualPhase(t *testing.T) {
	ch := newChain(t, testchain.GenerationDual)
	code, err := contracts.NewCode(ch, counterABI(t), wasmFixture)
	require.NoError(t, err)
	require.Equal(t, contracts.DualPhase, code.Protocol().Kind)
	require.True(t, code.Protocol().ExplicitSalt)

	ctx := context.Background()
	stored, err := code.StoreOnly().Submit(ctx)
	require.NoError(t, err)
	require.NotNil(t, stored.Blueprint)
	require.Nil(t, stored.Contract)

	deploy, err := stored.Blueprint.Instantiate("new", contracts.NewDeployOptions().WithSaltString("pepper"), uint64(7))
	require.NoError(t, err)
	result, err := deploy.Submit(ctx)
	require.NoError(t, err)
	require.Nil(t, result.Blueprint)
	require.NotNil(t, result.Contract)

	info, ok := ch.GetContractInfo(result.Contract.Address())
	require.True(t, ok)
	require.Equal(t, code.Hash(), info.CodeHash)
}

func TestDeployLegacy(t *testing.T) {
	ch := newChain(t, testchain.GenerationLegacy)
	code, err := contracts.NewCode(ch, counterABI(t), wasmFixture)
	require.NoError(t, err)
	require.Equal(t, contracts.DualPhase, code.Protocol().Kind)
	require.False(t, code.Protocol().ExplicitSalt)

	ctx := context.Background()
	_, err = code.StoreOnly().Submit(ctx)
	require.NoError(t, err)

	deploy, err := code.Instantiate("new", contracts.NewDeployOptions().WithSaltString("pepper"), uint64(7))
	require.NoError(t, err)
	// no salt argument on the wire, it travels inside the data
	require.Len(t, deploy.Call().Args, 4)
	result, err := deploy.Submit(ctx)
	require.NoError(t, err)
	require.NotNil(t, result.Contract)
}

func TestLegacySaltReachesDerivation(t *testing.T) {
	ch := newChain(t, testchain.GenerationLegacy)
	code, err := contracts.NewCode(ch, counterABI(t), wasmFixture)
	require.NoError(t, err)
	ctx := context.Background()
	_, err = code.StoreOnly().Submit(ctx)
	require.NoError(t, err)

	deployWith := func(salt string) (*contracts.DeploymentResult, error) {
		deploy, err := code.Instantiate("new", contracts.NewDeployOptions().WithSaltString(salt), uint64(7))
		require.NoError(t, err)
		return deploy.Submit(ctx)
	}

	first, err := deployWith("twin")
	require.NoError(t, err)
	_, err = deployWith("twin")
	testmisc.RequireErrorToBe(t, err, "already exists")

	other, err := deployWith("other")
	require.NoError(t, err)
	require.NotEqual(t, first.Contract.Address(), other.Contract.Address())
}

func TestInstantiateBeforeStore(t *testing.T) {
	ch := newChain(t, testchain.GenerationDual)
	code, err := contracts.NewCode(ch, counterABI(t), wasmFixture)
	require.NoError(t, err)

	deploy, err := code.Instantiate("new", nil, uint64(7))
	require.NoError(t, err)
	_, err = deploy.Submit(context.Background())
	testmisc.RequireErrorToBe(t, err, "unknown code hash")
}

func TestDeployDeterministicAddress(t *testing.T) {
	for _, gen := range []string{testchain.GenerationModern, testchain.GenerationDual, testchain.GenerationLegacy} {
		t.Run(gen, func(t *testing.T) {
			deployOnce := func() ledger.AccountID {
				ch := newChain(t, gen)
				code, err := contracts.NewCode(ch, counterABI(t), wasmFixture)
				require.NoError(t, err)
				ctx := context.Background()
				if code.Protocol().Kind == contracts.DualPhase {
					_, err = code.StoreOnly().Submit(ctx)
					require.NoError(t, err)
				}
				deploy, err := code.Instantiate("new", contracts.NewDeployOptions().WithSaltString("pepper"), uint64(7))
				require.NoError(t, err)
				result, err := deploy.Submit(ctx)
				require.NoError(t, err)
				require.NotNil(t, result.Contract)
				return result.Contract.Address()
			}
			require.Equal(t, deployOnce(), deployOnce())
		})
	}
}

func TestSignedDeployment(t *testing.T) {
	kp := ledger.NewKeyPair()
	ch := testchain.New(testlogger.NewLogger(t), testchain.WithMandatorySignatures(true))
	code, err := contracts.NewCode(ch, counterABI(t), wasmFixture)
	require.NoError(t, err)

	deploy, err := code.Instantiate("new", nil, uint64(1))
	require.NoError(t, err)
	deploy.Call().Sign(kp, 1)
	result, err := deploy.Submit(context.Background())
	require.NoError(t, err)
	require.NotNil(t, result.Contract)

	info, ok := ch.GetContractInfo(result.Contract.Address())
	require.True(t, ok)
	require.Equal(t, kp.Address(), info.Deployer)
}

func TestExecAfterDeploy(t *testing.T) {
	ch := newChain(t, testchain.GenerationModern)
	code, err := contracts.NewCode(ch, counterABI(t), wasmFixture)
	require.NoError(t, err)

	ctx := context.Background()
	deploy, err := code.Instantiate("new", nil, uint64(7))
	require.NoError(t, err)
	result, err := deploy.Submit(ctx)
	require.NoError(t, err)
	require.NotNil(t, result.Contract)

	exec, err := result.Contract.Exec("inc", contracts.NewCallOptions().WithValue(40), uint64(5))
	require.NoError(t, err)
	receipt, err := exec.Submit(ctx)
	require.NoError(t, err)
	require.Len(t, receipt.Events, 1)
	require.Equal(t, ledger.EventKind("Called"), receipt.Events[0].Kind)

	info, ok := ch.GetContractInfo(result.Contract.Address())
	require.True(t, ok)
	require.Equal(t, uint64(40), info.Balance)
}
