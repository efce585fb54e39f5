package app

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

func readConfigFromENV(envFile string) {
	if envFile != "" {
		err := godotenv.Load(envFile)
		if err != nil {
			log.Warn("[ENV] Error loading .env file: ", err.Error())
		}
	}

	// chain
	if os.Getenv("CHAIN_ID") != "" {
		Config.Chain.ChainID = os.Getenv("CHAIN_ID")
	}
	if os.Getenv("BECH32_PREFIX") != "" {
		Config.Chain.Bech32Prefix = os.Getenv("BECH32_PREFIX")
	}
	if os.Getenv("FEE_DENOM") != "" {
		Config.Chain.FeeDenom = os.Getenv("FEE_DENOM")
	}
	if os.Getenv("GAS_LIMIT") != "" {
		gasLimit, err := strconv.ParseUint(os.Getenv("GAS_LIMIT"), 10, 64)
		if err != nil {
			log.Warn("[ENV] Error parsing GAS_LIMIT: ", err.Error())
		} else {
			Config.Chain.GasLimit = gasLimit
		}
	}
	if os.Getenv("GAS_ADJUSTMENT") != "" {
		gasAdjustment, err := strconv.ParseFloat(os.Getenv("GAS_ADJUSTMENT"), 32)
		if err != nil {
			log.Warn("[ENV] Error parsing GAS_ADJUSTMENT: ", err.Error())
		} else {
			Config.Chain.GasAdjustment = float32(gasAdjustment)
		}
	}

	// signer
	if os.Getenv("MNEMONIC") != "" {
		Config.Signer.Mnemonic = os.Getenv("MNEMONIC")
	}
	if os.Getenv("HD_PATH") != "" {
		Config.Signer.HDPath = os.Getenv("HD_PATH")
	}
	if os.Getenv("GCP_KMS_KEY_NAME") != "" {
		Config.Signer.GcpKmsKeyName = os.Getenv("GCP_KMS_KEY_NAME")
	}

	// logging
	if os.Getenv("LOG_LEVEL") != "" {
		Config.Logger.Level = os.Getenv("LOG_LEVEL")
	}
	if Config.Logger.Level == "" {
		log.Warn("[ENV] Setting LogLevel to info")
		Config.Logger.Level = "info"
	}

	// google secret manager
	if os.Getenv("GOOGLE_SECRET_MANAGER_ENABLED") != "" {
		enabled, err := strconv.ParseBool(os.Getenv("GOOGLE_SECRET_MANAGER_ENABLED"))
		if err != nil {
			log.Warn("[ENV] Error parsing GOOGLE_SECRET_MANAGER_ENABLED: ", err.Error())
		} else {
			Config.GoogleSecretManager.Enabled = enabled
		}
	}
	if os.Getenv("GOOGLE_PROJECT_ID") != "" {
		Config.GoogleSecretManager.ProjectID = os.Getenv("GOOGLE_PROJECT_ID")
	}
	if os.Getenv("GOOGLE_MNEMONIC_SECRET_NAME") != "" {
		Config.GoogleSecretManager.MnemonicSecretName = os.Getenv("GOOGLE_MNEMONIC_SECRET_NAME")
	}
}
