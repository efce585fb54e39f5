package app

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
	log "github.com/sirupsen/logrus"

	"github.com/dan13ram/wallet-msg-service/common"
)

var newGcpKmsSigner = func(keyName string) (common.Signer, error) {
	return common.NewGcpKmsSigner(keyName)
}

// CreateSigner returns the configured signer, preferring the mnemonic over Cloud KMS.
func CreateSigner() (common.Signer, error) {
	config := Config.Signer
	if config.Mnemonic == "" && config.GcpKmsKeyName == "" {
		return nil, fmt.Errorf("both Mnemonic and GcpKmsKeyName are empty")
	}

	var signer common.Signer
	var err error
	if config.Mnemonic != "" {
		signer, err = common.NewMnemonicSigner(config.Mnemonic, config.HDPath)
	} else {
		signer, err = newGcpKmsSigner(config.GcpKmsKeyName)
	}
	if err != nil {
		return nil, fmt.Errorf("error initializing signer: %w", err)
	}

	address, err := SignerAddress(signer)
	if err != nil {
		signer.Destroy()
		return nil, err
	}
	log.Debugf("[SIGNER] Signer address: %s", address)

	return signer, nil
}

func SignerAddress(signer common.Signer) (string, error) {
	address, err := sdk.Bech32ifyAddressBytes(Config.Chain.Bech32Prefix, signer.CosmosPublicKey().Address())
	if err != nil {
		return "", fmt.Errorf("error getting signer address: %w", err)
	}
	return address, nil
}
