package contracts_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iotaledger/sawfly/packages/contracts"
	"github.com/iotaledger/sawfly/packages/hashing"
	"github.com/iotaledger/sawfly/packages/ledger"
	"github.com/iotaledger/sawfly/packages/testutil/testmisc"
)

func storedEvent(codeHash hashing.HashValue) *ledger.Event {
	return ledger.NewEvent(contracts.ModuleContracts, contracts.EventCodeStored, codeHash.Bytes())
}

func instantiatedEvent(deployer, instance ledger.AccountID) *ledger.Event {
	return ledger.NewEvent(contracts.ModuleContracts, contracts.EventInstantiated, deployer.Bytes(), instance.Bytes())
}

func TestProjectDeployment(t *testing.T) {
	chain := modernChain()
	a := testABI(t)
	codeHash := hashing.HashData(testWasm)
	deployer := ledger.AccountIDFromPublicKey([]byte("deployer"))
	instance := ledger.AccountIDFromPublicKey([]byte("instance"))

	t.Run("store only", func(t *testing.T) {
		receipt := &ledger.Receipt{Events: []*ledger.Event{storedEvent(codeHash)}}
		result, err := contracts.ProjectDeployment(chain, a, receipt, contracts.EventCodeStored)
		require.NoError(t, err)
		require.NotNil(t, result.Blueprint)
		require.Equal(t, codeHash, result.Blueprint.CodeHash())
		require.Nil(t, result.Contract)
	})

	t.Run("combined", func(t *testing.T) {
		receipt := &ledger.Receipt{Events: []*ledger.Event{
			storedEvent(codeHash),
			instantiatedEvent(deployer, instance),
		}}
		result, err := contracts.ProjectDeployment(chain, a, receipt,
			contracts.EventCodeStored, contracts.EventInstantiated)
		require.NoError(t, err)
		require.NotNil(t, result.Blueprint)
		require.NotNil(t, result.Contract)
		require.Equal(t, instance, result.Contract.Address())
	})

	t.Run("unexpected kinds are filtered", func(t *testing.T) {
		// an instantiate-only deployment projects no blueprint even if the
		// receipt happens to carry a CodeStored event
		receipt := &ledger.Receipt{Events: []*ledger.Event{
			storedEvent(codeHash),
			instantiatedEvent(deployer, instance),
		}}
		result, err := contracts.ProjectDeployment(chain, a, receipt, contracts.EventInstantiated)
		require.NoError(t, err)
		require.Nil(t, result.Blueprint)
		require.NotNil(t, result.Contract)
	})

	t.Run("no events is not an error", func(t *testing.T) {
		receipt := &ledger.Receipt{}
		result, err := contracts.ProjectDeployment(chain, a, receipt,
			contracts.EventCodeStored, contracts.EventInstantiated)
		require.NoError(t, err)
		require.Nil(t, result.Blueprint)
		require.Nil(t, result.Contract)
		require.Same(t, receipt, result.Receipt)
	})

	t.Run("foreign events are ignored", func(t *testing.T) {
		receipt := &ledger.Receipt{Events: []*ledger.Event{
			ledger.NewEvent("balances", "Transfer", deployer.Bytes(), instance.Bytes()),
			ledger.NewEvent("balances", contracts.EventInstantiated, deployer.Bytes(), instance.Bytes()),
			ledger.NewEvent(contracts.ModuleContracts, "GasRefund", []byte{1}),
		}}
		result, err := contracts.ProjectDeployment(chain, a, receipt,
			contracts.EventCodeStored, contracts.EventInstantiated)
		require.NoError(t, err)
		require.Nil(t, result.Blueprint)
		require.Nil(t, result.Contract)
	})

	t.Run("first occurrence wins", func(t *testing.T) {
		otherHash := hashing.HashData([]byte("other"))
		otherInstance := ledger.AccountIDFromPublicKey([]byte("other"))
		receipt := &ledger.Receipt{Events: []*ledger.Event{
			storedEvent(codeHash),
			storedEvent(otherHash),
			instantiatedEvent(deployer, instance),
			instantiatedEvent(deployer, otherInstance),
		}}
		result, err := contracts.ProjectDeployment(chain, a, receipt,
			contracts.EventCodeStored, contracts.EventInstantiated)
		require.NoError(t, err)
		require.Equal(t, codeHash, result.Blueprint.CodeHash())
		require.Equal(t, instance, result.Contract.Address())
	})

	t.Run("projection is idempotent", func(t *testing.T) {
		receipt := &ledger.Receipt{Events: []*ledger.Event{
			storedEvent(codeHash),
			instantiatedEvent(deployer, instance),
		}}
		first, err := contracts.ProjectDeployment(chain, a, receipt,
			contracts.EventCodeStored, contracts.EventInstantiated)
		require.NoError(t, err)
		second, err := contracts.ProjectDeployment(chain, a, receipt,
			contracts.EventCodeStored, contracts.EventInstantiated)
		require.NoError(t, err)
		require.Equal(t, first.Blueprint.CodeHash(), second.Blueprint.CodeHash())
		require.Equal(t, first.Contract.Address(), second.Contract.Address())
	})

	t.Run("malformed events", func(t *testing.T) {
		for name, ev := range map[string]*ledger.Event{
			"stored without data":    ledger.NewEvent(contracts.ModuleContracts, contracts.EventCodeStored),
			"stored with short hash": ledger.NewEvent(contracts.ModuleContracts, contracts.EventCodeStored, []byte{1, 2}),
			"instantiated one field": ledger.NewEvent(contracts.ModuleContracts, contracts.EventInstantiated, deployer.Bytes()),
			"instantiated bad addr":  ledger.NewEvent(contracts.ModuleContracts, contracts.EventInstantiated, deployer.Bytes(), []byte{1}),
		} {
			t.Run(name, func(t *testing.T) {
				receipt := &ledger.Receipt{Events: []*ledger.Event{ev}}
				_, err := contracts.ProjectDeployment(chain, a, receipt,
					contracts.EventCodeStored, contracts.EventInstantiated)
				testmisc.RequireErrorToBe(t, err, contracts.ErrMalformedReceipt)
			})
		}
	})
}
