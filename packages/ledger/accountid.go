// Copyright 2020 IOTA Stiftung
// SPDX-License-Identifier: Apache-2.0

// Package ledger holds the types exchanged with a contracts-enabled node:
// account identities, signed calls, events, receipts and the runtime call
// table served for protocol discovery.
package ledger

import (
	"github.com/mr-tron/base58"

	"github.com/iotaledger/hive.go/ierrors"

	"github.com/iotaledger/sawfly/packages/hashing"
)

const AccountIDSize = 32

// AccountID identifies an account or a deployed contract instance.
type AccountID [AccountIDSize]byte

var NilAccountID = AccountID{}

func AccountIDFromBytes(b []byte) (AccountID, error) {
	if len(b) != AccountIDSize {
		return NilAccountID, ierrors.Errorf("AccountIDFromBytes: expected %d bytes, got %d", AccountIDSize, len(b))
	}
	var a AccountID
	copy(a[:], b)
	return a, nil
}

func AccountIDFromString(s string) (AccountID, error) {
	b, err := base58.Decode(s)
	if err != nil {
		return NilAccountID, ierrors.Wrap(err, "AccountIDFromString")
	}
	return AccountIDFromBytes(b)
}

// AccountIDFromPublicKey derives the account of an ed25519 public key.
func AccountIDFromPublicKey(pub []byte) AccountID {
	return AccountID(hashing.HashData(pub))
}

func (a AccountID) Bytes() []byte {
	return a[:]
}

func (a AccountID) String() string {
	return base58.Encode(a[:])
}

// ShortString returns an abbreviated form for logging.
func (a AccountID) ShortString() string {
	s := a.String()
	if len(s) <= 8 {
		return s
	}
	return s[:8] + ".."
}

func (a AccountID) Equals(other AccountID) bool {
	return a == other
}
