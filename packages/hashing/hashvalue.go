// Copyright 2020 IOTA Stiftung
// SPDX-License-Identifier: Apache-2.0

package hashing

import (
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/minio/blake2b-simd"

	"github.com/iotaledger/hive.go/ierrors"
)

const HashSize = 32

// HashValue is a blake2b-256 digest.
type HashValue [HashSize]byte

var NilHash = HashValue{}

func (h HashValue) Bytes() []byte {
	return h[:]
}

func (h HashValue) Hex() string {
	return hexutil.Encode(h[:])
}

func (h HashValue) String() string {
	return h.Hex()
}

func (h HashValue) Equals(other HashValue) bool {
	return h == other
}

func HashValueFromBytes(b []byte) (HashValue, error) {
	if len(b) != HashSize {
		return NilHash, ierrors.Errorf("HashValueFromBytes: expected %d bytes, got %d", HashSize, len(b))
	}
	var h HashValue
	copy(h[:], b)
	return h, nil
}

func HashValueFromHex(s string) (HashValue, error) {
	b, err := hexutil.Decode(s)
	if err != nil {
		return NilHash, ierrors.Wrap(err, "HashValueFromHex")
	}
	return HashValueFromBytes(b)
}

// HashData hashes the concatenation of the given byte slices.
func HashData(data ...[]byte) HashValue {
	h := blake2b.New256()
	for _, d := range data {
		// hash.Hash.Write never returns an error
		_, _ = h.Write(d)
	}
	var ret HashValue
	copy(ret[:], h.Sum(nil))
	return ret
}
