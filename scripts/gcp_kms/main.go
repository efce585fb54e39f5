package main

import (
	"fmt"
	"log"
	"os"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/dan13ram/wallet-msg-service/common"
)

// Prints the address of a Cloud KMS key and checks that it produces signatures
// the tx signer accepts.
func main() {
	GoogleKeyName := os.Getenv("GCP_KMS_KEY_NAME")

	fmt.Println("Google KMS Key Name: ", GoogleKeyName)
	if GoogleKeyName == "" {
		log.Fatalf("GCP KMS Key Name not set")
	}

	bech32Prefix := os.Getenv("BECH32_PREFIX")
	if bech32Prefix == "" {
		bech32Prefix = common.DefaultBech32Prefix
	}

	signer, err := common.NewGcpKmsSigner(GoogleKeyName)
	if err != nil {
		log.Fatalf("failed to create GCP KMS signer: %v", err)
	}
	defer signer.Destroy()

	pubKey := signer.CosmosPublicKey()
	fmt.Printf("Cosmos Public Key: %x\n", pubKey.Bytes())

	cosmosBech32, err := sdk.Bech32ifyAddressBytes(bech32Prefix, pubKey.Address().Bytes())
	if err != nil {
		log.Fatalf("failed to encode address: %v", err)
	}
	fmt.Println("Cosmos Bech32: ", cosmosBech32)

	txData := []byte("example transaction data")

	cosmosSignature, err := signer.CosmosSign(txData)
	if err != nil {
		log.Fatalf("failed to sign Cosmos hash: %v", err)
	}
	fmt.Printf("Cosmos Signature: %x\n", cosmosSignature)

	if !common.VerifySignature(txData, cosmosSignature, pubKey.Bytes()) {
		log.Fatalf("signature does not verify against the KMS public key")
	}
	fmt.Println("Signature verified")
}
