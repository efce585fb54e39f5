package models

// Coin is an amount as supplied by a caller. Amount must be a base-10 integer.
type Coin struct {
	Denom  string `json:"denom" yaml:"denom"`
	Amount string `json:"amount" yaml:"amount"`
}
