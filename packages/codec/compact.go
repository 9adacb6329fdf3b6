package codec

import (
	"encoding/binary"

	"github.com/iotaledger/hive.go/ierrors"
)

// Compact unsigned integer encoding, used for call scalars and length
// prefixes. The two low bits of the first byte select the mode:
//
//	0b00: single byte, value < 2^6
//	0b01: two bytes LE, value < 2^14
//	0b10: four bytes LE, value < 2^30
//	0b11: (length-4) in the high bits, followed by that many LE bytes
func EncodeCompact(v uint64) []byte {
	switch {
	case v < 1<<6:
		return []byte{byte(v) << 2}
	case v < 1<<14:
		return binary.LittleEndian.AppendUint16(nil, uint16(v)<<2|0b01)
	case v < 1<<30:
		return binary.LittleEndian.AppendUint32(nil, uint32(v)<<2|0b10)
	default:
		n := 0
		for x := v; x > 0; x >>= 8 {
			n++
		}
		ret := make([]byte, 1+n)
		ret[0] = byte(n-4)<<2 | 0b11
		for i := 0; i < n; i++ {
			ret[1+i] = byte(v >> (8 * i))
		}
		return ret
	}
}

// DecodeCompact returns the decoded value and the number of bytes consumed.
// Non-minimal encodings are rejected.
func DecodeCompact(b []byte) (uint64, int, error) {
	if len(b) == 0 {
		return 0, 0, ierrors.New("cannot decode compact uint: no data")
	}
	switch b[0] & 0b11 {
	case 0b00:
		return uint64(b[0] >> 2), 1, nil
	case 0b01:
		if len(b) < 2 {
			return 0, 0, ierrors.New("cannot decode compact uint: unexpected end of data")
		}
		v := uint64(binary.LittleEndian.Uint16(b) >> 2)
		if v < 1<<6 {
			return 0, 0, ierrors.New("cannot decode compact uint: non-minimal encoding")
		}
		return v, 2, nil
	case 0b10:
		if len(b) < 4 {
			return 0, 0, ierrors.New("cannot decode compact uint: unexpected end of data")
		}
		v := uint64(binary.LittleEndian.Uint32(b) >> 2)
		if v < 1<<14 {
			return 0, 0, ierrors.New("cannot decode compact uint: non-minimal encoding")
		}
		return v, 4, nil
	default:
		n := int(b[0]>>2) + 4
		if n > 8 {
			return 0, 0, ierrors.Errorf("cannot decode compact uint: %d-byte value too large", n)
		}
		if len(b) < 1+n {
			return 0, 0, ierrors.New("cannot decode compact uint: unexpected end of data")
		}
		var v uint64
		for i := n - 1; i >= 0; i-- {
			v = v<<8 | uint64(b[1+i])
		}
		if b[n] == 0 || v < 1<<30 {
			return 0, 0, ierrors.New("cannot decode compact uint: non-minimal encoding")
		}
		return v, 1 + n, nil
	}
}

// AddLengthPrefix prepends the compact-encoded byte length to data.
func AddLengthPrefix(data []byte) []byte {
	return append(EncodeCompact(uint64(len(data))), data...)
}

// ReadLengthPrefixed reads one length-prefixed segment from the front of b,
// returning the segment and the total number of bytes consumed.
func ReadLengthPrefixed(b []byte) ([]byte, int, error) {
	n, consumed, err := DecodeCompact(b)
	if err != nil {
		return nil, 0, ierrors.Wrap(err, "cannot read length prefix")
	}
	if uint64(len(b)-consumed) < n {
		return nil, 0, ierrors.Errorf("cannot read length-prefixed data: %d bytes declared, %d available", n, len(b)-consumed)
	}
	return b[consumed : consumed+int(n)], consumed + int(n), nil
}
