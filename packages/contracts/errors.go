package contracts

import (
	"github.com/iotaledger/hive.go/ierrors"
)

var (
	// ErrInvalidCodeBundle is returned when the provided code is not a WASM
	// binary.
	ErrInvalidCodeBundle = ierrors.New("invalid code bundle")

	// ErrUnsupportedRuntime is returned when the connected runtime exposes
	// none of the known deployment entry points.
	ErrUnsupportedRuntime = ierrors.New("runtime does not support contract deployment")

	// ErrMalformedReceipt is returned when a deployment event carries data
	// fields that cannot be decoded.
	ErrMalformedReceipt = ierrors.New("malformed deployment receipt")
)
