package contract

import (
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/spf13/cobra"

	"github.com/iotaledger/hive.go/ierrors"

	"github.com/iotaledger/sawfly/packages/abi"
	"github.com/iotaledger/sawfly/packages/hashing"
	"github.com/iotaledger/sawfly/packages/ledger"
	"github.com/iotaledger/sawfly/tools/sawfly-cli/log"
)

func Init(rootCmd *cobra.Command) {
	contractCmd := &cobra.Command{
		Use:   "contract <command>",
		Short: "Store, deploy and call contracts",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			log.Check(cmd.Help())
		},
	}

	contractCmd.AddCommand(initConstructorsCmd())
	contractCmd.AddCommand(initStoreCmd())
	contractCmd.AddCommand(initDeployCmd())
	contractCmd.AddCommand(initInstantiateCmd())
	contractCmd.AddCommand(initCallCmd())
	contractCmd.AddCommand(initShowCmd())
	contractCmd.AddCommand(initCodeCmd())
	contractCmd.AddCommand(initReceiptCmd())

	rootCmd.AddCommand(contractCmd)
}

func loadMetadata(path string) *abi.ABI {
	contractABI, err := abi.LoadFile(path)
	log.Check(err)
	return contractABI
}

// parseArgs converts command line strings into the typed values the entry
// expects, guided by the declared parameter types.
func parseArgs(params []abi.Param, raw []string) []any {
	if len(raw) != len(params) {
		log.Fatalf("expected %d argument(s): %s", len(params), describeParams(params))
	}
	args := make([]any, len(raw))
	for i, p := range params {
		v, err := parseArg(p.Type, raw[i])
		if err != nil {
			log.Fatalf("argument %d (%s): %s", i, p.Label, err)
		}
		args[i] = v
	}
	return args
}

func parseArg(typeName, raw string) (any, error) {
	switch typeName {
	case "bool":
		return strconv.ParseBool(raw)
	case "uint8", "uint16", "uint32", "uint64", "compact":
		return strconv.ParseUint(raw, 10, 64)
	case "string":
		return raw, nil
	case "bytes":
		return hexutil.Decode(raw)
	case "hash":
		return hashing.HashValueFromHex(raw)
	case "address":
		return ledger.AccountIDFromString(raw)
	default:
		return nil, ierrors.Errorf("unsupported type %q", typeName)
	}
}

func describeParams(params []abi.Param) string {
	if len(params) == 0 {
		return "none"
	}
	parts := make([]string, len(params))
	for i, p := range params {
		parts[i] = p.Label + " " + p.Type
	}
	return strings.Join(parts, ", ")
}
