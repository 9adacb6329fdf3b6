package util

import (
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// Mostly for logging.
func PrefixHex(data []byte, prefixLen int) string {
	if data == nil {
		return "<nil>"
	}
	if len(data) <= prefixLen {
		return hexutil.Encode(data)
	}
	return hexutil.Encode(data[0:prefixLen]) + "..."
}
