package config

import (
	"os"

	"github.com/spf13/viper"

	"github.com/iotaledger/sawfly/tools/sawfly-cli/log"
)

var ConfigPath string

func Read() {
	viper.SetConfigFile(ConfigPath)
	_ = viper.ReadInConfig()
}

func NodeAPIAddress() string {
	address := viper.GetString("node.apiaddress")
	if address == "" {
		log.Fatalf("node.apiaddress not defined (run: %s set node.apiaddress <url>)", os.Args[0])
	}
	return address
}

func SeedHex() string {
	return viper.GetString("wallet.seed")
}

// AddressIndex selects which sub-seed of the wallet signs requests.
func AddressIndex() uint32 {
	return viper.GetUint32("wallet.addressindex")
}

func Set(key string, value interface{}) {
	viper.Set(key, value)
	log.Check(viper.WriteConfig())
}
