package models

// BaseAccount carries the on-chain account state needed to sign, as returned by the
// auth module's account query.
type BaseAccount struct {
	Address       string `json:"address"`
	AccountNumber uint64 `json:"account_number"`
	Sequence      uint64 `json:"sequence"`
}

// Wallet is a raw secp256k1 key pair. PublicKey is the 33 byte compressed form.
type Wallet struct {
	PublicKey  []byte
	PrivateKey []byte
}
