package ledger

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCallTable(t *testing.T) {
	table := NewCallTable(
		CallSpec{Module: "contracts", Entry: "instantiate", Arity: 5},
		CallSpec{Module: "contracts", Entry: "storeCode", Arity: 1},
		CallSpec{Module: "balances", Entry: "transfer", Arity: 2},
	)

	require.True(t, table.Has("contracts", "storeCode"))
	require.False(t, table.Has("contracts", "instantiateWithCode"))

	arity, ok := table.Arity("contracts", "instantiate")
	require.True(t, ok)
	require.Equal(t, 5, arity)

	_, ok = table.Arity("contracts", "missing")
	require.False(t, ok)

	list := table.List()
	require.Len(t, list, 3)
	require.Equal(t, "balances", list[0].Module)
	require.Equal(t, "instantiate", list[1].Entry)
	require.Equal(t, "storeCode", list[2].Entry)
}
