package common

import (
	"fmt"

	btcecdsa "github.com/btcsuite/btcd/btcec/v2/ecdsa"
	cmtcrypto "github.com/cometbft/cometbft/crypto"
	dcrecSecp256k1 "github.com/decred/dcrd/dcrec/secp256k1/v4"
	dcrecEcdsa "github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"

	errorsmod "cosmossdk.io/errors"
)

func Sha256(bytes []byte) []byte {
	return cmtcrypto.Sha256(bytes)
}

// SignBytes hashes payload with sha256 and signs the digest with RFC6979 ECDSA over
// secp256k1. The result is the 64 byte r||s form with a low S value.
func SignBytes(payload []byte, privateKey []byte) ([]byte, error) {
	key, err := privateKeyFromBytes(privateKey)
	if err != nil {
		return nil, err
	}

	sig := dcrecEcdsa.Sign(key, Sha256(payload))
	r, s := sig.R(), sig.S()

	finalSig := make([]byte, CosmosSignatureLength)
	r.PutBytesUnchecked(finalSig[:32])
	s.PutBytesUnchecked(finalSig[32:])

	return finalSig, nil
}

func VerifySignature(payload []byte, signature []byte, publicKey []byte) bool {
	pubKey, err := getSecp256k1PubKey(publicKey)
	if err != nil {
		return false
	}

	sig, err := signatureFromBytes(signature)
	if err != nil {
		return false
	}

	return sig.Verify(Sha256(payload), pubKey)
}

func PublicKeyFromPrivateKey(privateKey []byte) ([]byte, error) {
	key, err := privateKeyFromBytes(privateKey)
	if err != nil {
		return nil, err
	}
	return key.PubKey().SerializeCompressed(), nil
}

func privateKeyFromBytes(privateKey []byte) (*dcrecSecp256k1.PrivateKey, error) {
	if len(privateKey) != dcrecSecp256k1.PrivKeyBytesLen {
		return nil, errorsmod.Wrapf(ErrInvalidKey, "private key must be %d bytes, got %d", dcrecSecp256k1.PrivKeyBytesLen, len(privateKey))
	}

	var k dcrecSecp256k1.ModNScalar
	if overflow := k.SetByteSlice(privateKey); overflow || k.IsZero() {
		return nil, errorsmod.Wrap(ErrInvalidKey, "private key is not a valid secp256k1 scalar")
	}

	return dcrecSecp256k1.NewPrivateKey(&k), nil
}

func signatureFromBytes(sigStr []byte) (*btcecdsa.Signature, error) {
	if len(sigStr) != CosmosSignatureLength {
		return nil, fmt.Errorf("signature length is not 64 bytes")
	}

	var r dcrecSecp256k1.ModNScalar
	r.SetByteSlice(sigStr[:32])
	var s dcrecSecp256k1.ModNScalar
	s.SetByteSlice(sigStr[32:64])
	if s.IsOverHalfOrder() {
		return nil, fmt.Errorf("signature is not in lower-S form")
	}

	return btcecdsa.NewSignature(&r, &s), nil
}

func getSecp256k1PubKey(pubKeyBytes []byte) (*dcrecSecp256k1.PublicKey, error) {
	pubkeyObject, err := dcrecSecp256k1.ParsePubKey(pubKeyBytes)
	if err != nil {
		return nil, fmt.Errorf("failed to parse public key: %w", err)
	}

	return pubkeyObject, nil
}
