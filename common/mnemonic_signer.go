package common

import (
	"bytes"
	"fmt"

	"github.com/cosmos/cosmos-sdk/crypto/hd"
	"github.com/cosmos/cosmos-sdk/crypto/keys/secp256k1"
	"github.com/cosmos/cosmos-sdk/crypto/types"
	"github.com/cosmos/go-bip39"

	errorsmod "cosmossdk.io/errors"

	"github.com/dan13ram/wallet-msg-service/models"
)

// Struct Definition
type MnemonicSigner struct {
	cosmosPubKey  types.PubKey
	cosmosPrivKey *secp256k1.PrivKey
}

var _ Signer = &MnemonicSigner{}

func CosmosPrivateKeyFromMnemonic(mnemonic string, hdPath string) (*secp256k1.PrivKey, error) {
	if !bip39.IsMnemonicValid(mnemonic) {
		return nil, errorsmod.Wrap(ErrInvalidKey, "invalid mnemonic")
	}

	if hdPath == "" {
		hdPath = DefaultHDPath
	}

	derivedPriv, err := hd.Secp256k1.Derive()(mnemonic, DefaultBIP39Passphrase, hdPath)
	if err != nil {
		return nil, fmt.Errorf("failed to derive private key: %w", err)
	}

	return &secp256k1.PrivKey{Key: derivedPriv}, nil
}

// Constructor Function
func NewMnemonicSigner(mnemonic string, hdPath string) (*MnemonicSigner, error) {
	cosmosPrivKey, err := CosmosPrivateKeyFromMnemonic(mnemonic, hdPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create cosmos private key: %w", err)
	}

	return &MnemonicSigner{
		cosmosPrivKey: cosmosPrivKey,
		cosmosPubKey:  cosmosPrivKey.PubKey(),
	}, nil
}

// Wallet exposes the derived key pair for callers that take raw keys.
func (s *MnemonicSigner) Wallet() models.Wallet {
	return models.Wallet{
		PublicKey:  bytes.Clone(s.cosmosPubKey.Bytes()),
		PrivateKey: bytes.Clone(s.cosmosPrivKey.Bytes()),
	}
}

// Destructor Function
func (s *MnemonicSigner) Destroy() {
	// nothing to do
}

// Method Implementations
func (s *MnemonicSigner) CosmosSign(data []byte) ([]byte, error) {
	return SignBytes(data, s.cosmosPrivKey.Key)
}

func (s *MnemonicSigner) CosmosPublicKey() types.PubKey {
	return s.cosmosPubKey
}
