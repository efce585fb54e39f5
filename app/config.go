package app

import (
	"os"

	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"

	"github.com/dan13ram/wallet-msg-service/common"
	"github.com/dan13ram/wallet-msg-service/models"
)

var (
	Config models.Config
)

func InitConfig(configFile string, envFile string) {
	log.Debug("[CONFIG] Initializing config")
	readConfigFromConfigFile(configFile)
	readConfigFromENV(envFile)
	readSecretsFromGSM()
	applyDefaults()
	validateConfig()
	log.Info("[CONFIG] Config initialized")
}

func readConfigFromConfigFile(configFile string) bool {
	if configFile == "" {
		log.Debug("[CONFIG] No config file provided")
		return false
	}

	yamlFile, err := os.ReadFile(configFile)
	if err != nil {
		log.Fatalf("[CONFIG] Error reading config file %q: %s\n", configFile, err.Error())
	}
	err = yaml.Unmarshal(yamlFile, &Config)
	if err != nil {
		log.Fatalf("[CONFIG] Error unmarshalling config file %q: %s\n", configFile, err.Error())
	}

	log.Debug("[CONFIG] Config loaded from ", configFile)
	return true
}

func applyDefaults() {
	if Config.Chain.Bech32Prefix == "" {
		Config.Chain.Bech32Prefix = common.DefaultBech32Prefix
	}
	if Config.Chain.FeeDenom == "" {
		Config.Chain.FeeDenom = common.DefaultFeeDenom
	}
	if Config.Chain.GasAdjustment == 0 {
		Config.Chain.GasAdjustment = common.DefaultGasAdjustment
	}
	if Config.Signer.HDPath == "" {
		Config.Signer.HDPath = common.DefaultHDPath
	}
}

func validateConfig() {
	log.Debug("[CONFIG] Validating config")

	if Config.Chain.ChainID == "" {
		log.Fatal("[CONFIG] Chain.ChainID is required")
	}
	if Config.Chain.FeeDenom == "" {
		log.Fatal("[CONFIG] Chain.FeeDenom is required")
	}
	if Config.Chain.GasAdjustment < 0 {
		log.Fatal("[CONFIG] Chain.GasAdjustment must not be negative")
	}
	if Config.Signer.Mnemonic == "" && Config.Signer.GcpKmsKeyName == "" {
		log.Fatal("[CONFIG] Signer.Mnemonic or Signer.GcpKmsKeyName is required")
	}
	if Config.Signer.Mnemonic != "" && Config.Signer.GcpKmsKeyName != "" {
		log.Fatal("[CONFIG] Only one of Signer.Mnemonic and Signer.GcpKmsKeyName can be set")
	}

	log.Debug("[CONFIG] Config validated")
}
