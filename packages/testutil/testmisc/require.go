package testmisc

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iotaledger/hive.go/ierrors"
)

// RequireErrorToBe asserts that err matches target: a sentinel error
// (errors.Is semantics), a plain substring, or anything with a String form.
func RequireErrorToBe(t *testing.T, err error, target any) {
	t.Helper()
	require.Error(t, err)

	var targetStr string
	switch target := target.(type) {
	case error:
		if ierrors.Is(err, target) {
			return
		}
		targetStr = target.Error()
	case string:
		targetStr = target
	case interface{ String() string }:
		targetStr = target.String()
	default:
		panic("RequireErrorToBe: unexpected target type")
	}
	require.Truef(t, strings.Contains(err.Error(), targetStr),
		"expected error containing %q, got %q", targetStr, err.Error())
}
