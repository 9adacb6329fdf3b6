package wallet

import (
	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/iotaledger/sawfly/packages/ledger"
	"github.com/iotaledger/sawfly/tools/sawfly-cli/cli/config"
	"github.com/iotaledger/sawfly/tools/sawfly-cli/log"
)

type Wallet struct {
	KeyPair      *ledger.KeyPair
	AddressIndex uint32
}

// Load derives the key pair of the configured address index. It fails when
// no seed was initialized.
func Load() *Wallet {
	seedHex := config.SeedHex()
	if seedHex == "" {
		log.Fatal("call `init` first")
	}

	masterSeed, err := hexutil.Decode(seedHex)
	log.Check(err)

	addressIndex := config.AddressIndex()
	kp, err := ledger.KeyPairFromSeed(ledger.SubSeed(masterSeed, addressIndex))
	log.Check(err)

	return &Wallet{KeyPair: kp, AddressIndex: addressIndex}
}

func (w *Wallet) Address() ledger.AccountID {
	return w.KeyPair.Address()
}
