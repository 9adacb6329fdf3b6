// Copyright 2020 IOTA Stiftung
// SPDX-License-Identifier: Apache-2.0

package contracts

// EmptySalt is the canonical zero-length salt used when no salt is given.
var EmptySalt = []byte{}

// EncodeSalt normalizes an optional salt into its binary form: absent input
// maps to EmptySalt, anything else passes through with length and content
// untouched.
func EncodeSalt[T ~string | ~[]byte](salt T) []byte {
	if len(salt) == 0 {
		return EmptySalt
	}
	return []byte(salt)
}
