package common

import (
	"bytes"
	"fmt"

	"github.com/cosmos/cosmos-sdk/crypto/keys/secp256k1"
	"github.com/cosmos/cosmos-sdk/crypto/types"

	"github.com/dan13ram/wallet-msg-service/models"
)

// Interface Definition
type Signer interface {
	// CosmosSign returns the 64 byte r||s signature over sha256(data).
	CosmosSign(data []byte) ([]byte, error)
	CosmosPublicKey() types.PubKey
	Destroy()
}

// Struct Definition
type WalletSigner struct {
	privateKey   []byte
	cosmosPubKey types.PubKey
}

var _ Signer = &WalletSigner{}

// Constructor Function
func NewWalletSigner(wallet models.Wallet) (*WalletSigner, error) {
	pubKey, err := PublicKeyFromPrivateKey(wallet.PrivateKey)
	if err != nil {
		return nil, err
	}

	if len(wallet.PublicKey) > 0 && !bytes.Equal(pubKey, wallet.PublicKey) {
		return nil, fmt.Errorf("wallet public key does not match private key")
	}

	return &WalletSigner{
		privateKey:   bytes.Clone(wallet.PrivateKey),
		cosmosPubKey: &secp256k1.PubKey{Key: pubKey},
	}, nil
}

// Destructor Function
func (s *WalletSigner) Destroy() {
	for i := range s.privateKey {
		s.privateKey[i] = 0
	}
}

// Method Implementations
func (s *WalletSigner) CosmosSign(data []byte) ([]byte, error) {
	return SignBytes(data, s.privateKey)
}

func (s *WalletSigner) CosmosPublicKey() types.PubKey {
	return s.cosmosPubKey
}
