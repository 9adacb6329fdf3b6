package codec

import (
	"encoding/binary"

	"github.com/iotaledger/hive.go/ierrors"
)

var (
	Bool = NewCodec(encodeBool, decodeBool)

	Uint8 = NewCodec(
		func(v uint8) []byte { return []byte{v} },
		decodeUint[uint8](1),
	)
	Uint16 = NewCodec(
		func(v uint16) []byte { return binary.LittleEndian.AppendUint16(nil, v) },
		decodeUint[uint16](2),
	)
	Uint32 = NewCodec(
		func(v uint32) []byte { return binary.LittleEndian.AppendUint32(nil, v) },
		decodeUint[uint32](4),
	)
	Uint64 = NewCodec(
		func(v uint64) []byte { return binary.LittleEndian.AppendUint64(nil, v) },
		decodeUint[uint64](8),
	)
)

func encodeBool(v bool) []byte {
	if v {
		return []byte{1}
	}
	return []byte{0}
}

func decodeBool(b []byte) (bool, error) {
	if len(b) != 1 {
		return false, ierrors.Errorf("cannot decode bool: expected 1 byte, got %d", len(b))
	}
	switch b[0] {
	case 0:
		return false, nil
	case 1:
		return true, nil
	default:
		return false, ierrors.Errorf("cannot decode bool: invalid value 0x%02x", b[0])
	}
}

func decodeUint[T uint8 | uint16 | uint32 | uint64](size int) func([]byte) (T, error) {
	return func(b []byte) (T, error) {
		if len(b) != size {
			return 0, ierrors.Errorf("cannot decode uint%d: expected %d bytes, got %d", size*8, size, len(b))
		}
		var v uint64
		for i := size - 1; i >= 0; i-- {
			v = v<<8 | uint64(b[i])
		}
		return T(v), nil
	}
}
