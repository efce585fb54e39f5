package common

import "encoding/asn1"

const (
	CosmosPublicKeyLength  = 33
	CosmosSignatureLength  = 64
	DefaultBIP39Passphrase = ""
	DefaultHDPath          = "m/44'/505'/0'/0/0"
	DefaultBech32Prefix    = "pb"
	DefaultFeeDenom        = "nhash"
	DefaultGasAdjustment   = float32(1.25)
)

var oidPublicKeyECDSA = asn1.ObjectIdentifier{1, 2, 840, 10045, 2, 1}
