package models

type Config struct {
	GoogleSecretManager GoogleSecretManagerConfig `yaml:"google_secret_manager" json:"google_secret_manager"`
	Logger              LoggerConfig              `yaml:"logger" json:"logger"`
	Chain               ChainConfig               `yaml:"chain" json:"chain"`
	Signer              SignerConfig              `yaml:"signer" json:"signer"`
}

type GoogleSecretManagerConfig struct {
	Enabled            bool   `yaml:"enabled" json:"enabled"`
	ProjectID          string `yaml:"project_id" json:"project_id"`
	MnemonicSecretName string `yaml:"mnemonic_secret_name" json:"mnemonic_secret_name"`
}

type LoggerConfig struct {
	Level string `yaml:"level" json:"level"`
}

type ChainConfig struct {
	ChainID       string  `yaml:"chain_id" json:"chain_id"`
	Bech32Prefix  string  `yaml:"bech32_prefix" json:"bech32_prefix"`
	FeeDenom      string  `yaml:"fee_denom" json:"fee_denom"`
	GasLimit      uint64  `yaml:"gas_limit" json:"gas_limit"`
	GasAdjustment float32 `yaml:"gas_adjustment" json:"gas_adjustment"`
}

type SignerConfig struct {
	Mnemonic      string `yaml:"mnemonic" json:"mnemonic"`
	HDPath        string `yaml:"hd_path" json:"hd_path"`
	GcpKmsKeyName string `yaml:"gcp_kms_key_name" json:"gcp_kms_key_name"`
}
