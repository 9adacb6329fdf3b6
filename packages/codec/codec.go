// Copyright 2020 IOTA Stiftung
// SPDX-License-Identifier: Apache-2.0

// Package codec provides the binary encoding convention used in runtime call
// arguments: little-endian fixed-width scalars and compact-prefixed
// variable-width values.
package codec

import (
	"github.com/iotaledger/hive.go/ierrors"
)

// Codec groups the encode/decode pair for a single value type.
type Codec[T any] struct {
	encode func(T) []byte
	decode func([]byte) (T, error)
}

func NewCodec[T any](encode func(T) []byte, decode func([]byte) (T, error)) *Codec[T] {
	return &Codec[T]{encode: encode, decode: decode}
}

func (c *Codec[T]) Encode(v T) []byte {
	return c.encode(v)
}

func (c *Codec[T]) Decode(b []byte) (T, error) {
	if b == nil {
		var zero T
		return zero, ierrors.New("cannot decode nil bytes")
	}
	return c.decode(b)
}

func (c *Codec[T]) MustDecode(b []byte) T {
	v, err := c.Decode(b)
	if err != nil {
		panic(err)
	}
	return v
}
