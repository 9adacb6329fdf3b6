package abi

import (
	"math"

	"github.com/iotaledger/hive.go/ierrors"

	"github.com/iotaledger/sawfly/packages/codec"
	"github.com/iotaledger/sawfly/packages/hashing"
	"github.com/iotaledger/sawfly/packages/ledger"
)

func isSupportedType(name string) bool {
	switch name {
	case "bool", "uint8", "uint16", "uint32", "uint64", "compact", "string", "bytes", "hash", "address":
		return true
	default:
		return false
	}
}

func encodeEntry(selector [4]byte, params []Param, args []any) ([]byte, error) {
	if len(args) != len(params) {
		return nil, ierrors.Wrapf(ErrEncoding, "expected %d arguments, got %d", len(params), len(args))
	}
	data := append([]byte{}, selector[:]...)
	for i, p := range params {
		enc, err := encodeValue(p.Type, args[i])
		if err != nil {
			return nil, ierrors.Wrapf(err, "argument %d (%s)", i, p.Label)
		}
		data = append(data, enc...)
	}
	return data, nil
}

func encodeValue(typeName string, v any) ([]byte, error) {
	switch typeName {
	case "bool":
		b, ok := v.(bool)
		if !ok {
			return nil, typeMismatch(typeName, v)
		}
		return codec.Bool.Encode(b), nil
	case "uint8":
		u, err := asUint(typeName, v, math.MaxUint8)
		if err != nil {
			return nil, err
		}
		return codec.Uint8.Encode(uint8(u)), nil
	case "uint16":
		u, err := asUint(typeName, v, math.MaxUint16)
		if err != nil {
			return nil, err
		}
		return codec.Uint16.Encode(uint16(u)), nil
	case "uint32":
		u, err := asUint(typeName, v, math.MaxUint32)
		if err != nil {
			return nil, err
		}
		return codec.Uint32.Encode(uint32(u)), nil
	case "uint64":
		u, err := asUint(typeName, v, math.MaxUint64)
		if err != nil {
			return nil, err
		}
		return codec.Uint64.Encode(u), nil
	case "compact":
		u, err := asUint(typeName, v, math.MaxUint64)
		if err != nil {
			return nil, err
		}
		return codec.EncodeCompact(u), nil
	case "string":
		s, ok := v.(string)
		if !ok {
			return nil, typeMismatch(typeName, v)
		}
		return codec.AddLengthPrefix(codec.String.Encode(s)), nil
	case "bytes":
		b, ok := v.([]byte)
		if !ok {
			return nil, typeMismatch(typeName, v)
		}
		return codec.AddLengthPrefix(b), nil
	case "hash":
		h, ok := v.(hashing.HashValue)
		if !ok {
			return nil, typeMismatch(typeName, v)
		}
		return h.Bytes(), nil
	case "address":
		a, ok := v.(ledger.AccountID)
		if !ok {
			return nil, typeMismatch(typeName, v)
		}
		return a.Bytes(), nil
	default:
		return nil, ierrors.Wrapf(ErrEncoding, "unsupported type %q", typeName)
	}
}

func asUint(typeName string, v any, maxValue uint64) (uint64, error) {
	var u uint64
	switch n := v.(type) {
	case int:
		if n < 0 {
			return 0, ierrors.Wrapf(ErrEncoding, "negative value %d for type %q", n, typeName)
		}
		u = uint64(n)
	case uint:
		u = uint64(n)
	case uint8:
		u = uint64(n)
	case uint16:
		u = uint64(n)
	case uint32:
		u = uint64(n)
	case uint64:
		u = n
	default:
		return 0, typeMismatch(typeName, v)
	}
	if u > maxValue {
		return 0, ierrors.Wrapf(ErrEncoding, "value %d overflows type %q", u, typeName)
	}
	return u, nil
}

func typeMismatch(typeName string, v any) error {
	return ierrors.Wrapf(ErrEncoding, "cannot encode %T as %q", v, typeName)
}
