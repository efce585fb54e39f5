package cosmos

import (
	"fmt"

	errorsmod "cosmossdk.io/errors"
	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
	"github.com/cosmos/cosmos-sdk/crypto/keys/secp256k1"
	txtypes "github.com/cosmos/cosmos-sdk/types/tx"
	signingtypes "github.com/cosmos/cosmos-sdk/types/tx/signing"
	log "github.com/sirupsen/logrus"

	"github.com/dan13ram/wallet-msg-service/common"
	"github.com/dan13ram/wallet-msg-service/cosmos/msgfeestypes"
	"github.com/dan13ram/wallet-msg-service/models"
)

// SignTxParams describes one single-signer transaction. Signer takes precedence over
// Wallet; one of them is required.
type SignTxParams struct {
	Msgs        []*codectypes.Any
	Account     models.BaseAccount
	ChainID     string
	Signer      common.Signer
	Wallet      *models.Wallet
	FeeEstimate []models.Coin
	FeeDenom    string
	GasLimit    uint64
	Memo        string
}

// CalculateTxFeeParams describes an unsigned transaction to be priced by the chain.
type CalculateTxFeeParams struct {
	Msgs          []*codectypes.Any
	Account       models.BaseAccount
	PublicKey     []byte
	GasPriceDenom string
	GasLimit      uint64
	GasAdjustment float32
}

func BuildSignerInfo(account models.BaseAccount, pubKeyBytes []byte) (*txtypes.SignerInfo, error) {
	if len(pubKeyBytes) != common.CosmosPublicKeyLength {
		return nil, errorsmod.Wrapf(common.ErrInvalidKey, "public key must be %d bytes, got %d", common.CosmosPublicKeyLength, len(pubKeyBytes))
	}

	pubKey := &secp256k1.PubKey{Key: pubKeyBytes}
	pubKeyValue, err := pubKey.Marshal()
	if err != nil {
		return nil, fmt.Errorf("error marshalling public key: %w", err)
	}

	return &txtypes.SignerInfo{
		PublicKey: &codectypes.Any{TypeUrl: "/" + PubKeyTypeName, Value: pubKeyValue},
		ModeInfo: &txtypes.ModeInfo{
			Sum: &txtypes.ModeInfo_Single_{
				Single: &txtypes.ModeInfo_Single{Mode: signingtypes.SignMode_SIGN_MODE_DIRECT},
			},
		},
		Sequence: account.Sequence,
	}, nil
}

// BuildAuthInfo aggregates feeEstimate into the fee amount. A nil signerInfo yields an
// AuthInfo without signers.
func BuildAuthInfo(signerInfo *txtypes.SignerInfo, feeDenom string, feeEstimate []models.Coin, gasLimit uint64) (*txtypes.AuthInfo, error) {
	logger := log.WithField("operation", "BuildAuthInfo")

	feeList, err := AggregateCoins(feeEstimate)
	if err != nil {
		return nil, err
	}
	logger.WithField("fee_denom", feeDenom).Debugf("Built fee %s with gas limit %d", feeList, gasLimit)

	signerInfos := []*txtypes.SignerInfo{}
	if signerInfo != nil {
		signerInfos = append(signerInfos, signerInfo)
	}

	return &txtypes.AuthInfo{
		SignerInfos: signerInfos,
		Fee: &txtypes.Fee{
			Amount:   feeList,
			GasLimit: gasLimit,
		},
	}, nil
}

// BuildTxBody keeps msgs in the given order.
func BuildTxBody(memo string, msgs ...*codectypes.Any) *txtypes.TxBody {
	return &txtypes.TxBody{
		Messages: msgs,
		Memo:     memo,
	}
}

func BuildSignDoc(accountNumber uint64, chainID string, bodyBytes []byte, authInfoBytes []byte) *txtypes.SignDoc {
	return &txtypes.SignDoc{
		BodyBytes:     bodyBytes,
		AuthInfoBytes: authInfoBytes,
		ChainId:       chainID,
		AccountNumber: accountNumber,
	}
}

func BuildTxRaw(bodyBytes []byte, authInfoBytes []byte, signatures ...[]byte) *txtypes.TxRaw {
	return &txtypes.TxRaw{
		BodyBytes:     bodyBytes,
		AuthInfoBytes: authInfoBytes,
		Signatures:    signatures,
	}
}

// SignTx serializes body and auth info once and uses the same bytes for the SignDoc and
// the returned TxRaw.
func SignTx(params SignTxParams) (*txtypes.TxRaw, error) {
	logger := log.WithField("operation", "SignTx")

	if len(params.Msgs) == 0 {
		return nil, errorsmod.Wrap(common.ErrValidation, "at least one message is required")
	}
	if params.ChainID == "" {
		return nil, errorsmod.Wrap(common.ErrValidation, "chain id is required")
	}

	signer, err := resolveSigner(params)
	if err != nil {
		return nil, err
	}

	signerInfo, err := BuildSignerInfo(params.Account, signer.CosmosPublicKey().Bytes())
	if err != nil {
		return nil, err
	}

	feeDenom := params.FeeDenom
	if feeDenom == "" {
		feeDenom = common.DefaultFeeDenom
	}

	authInfo, err := BuildAuthInfo(signerInfo, feeDenom, params.FeeEstimate, params.GasLimit)
	if err != nil {
		return nil, err
	}

	bodyBytes, err := BuildTxBody(params.Memo, params.Msgs...).Marshal()
	if err != nil {
		return nil, fmt.Errorf("error marshalling tx body: %w", err)
	}

	authInfoBytes, err := authInfo.Marshal()
	if err != nil {
		return nil, fmt.Errorf("error marshalling auth info: %w", err)
	}

	signDocBytes, err := BuildSignDoc(params.Account.AccountNumber, params.ChainID, bodyBytes, authInfoBytes).Marshal()
	if err != nil {
		return nil, fmt.Errorf("error marshalling sign doc: %w", err)
	}

	signature, err := signer.CosmosSign(signDocBytes)
	if err != nil {
		return nil, errorsmod.Wrapf(common.ErrInvalidKey, "error signing tx: %s", err)
	}
	if len(signature) != common.CosmosSignatureLength {
		return nil, errorsmod.Wrapf(common.ErrInvalidKey, "signature must be %d bytes, got %d", common.CosmosSignatureLength, len(signature))
	}

	logger.
		WithField("account_number", params.Account.AccountNumber).
		WithField("sequence", params.Account.Sequence).
		Debugf("Signed tx with %d messages", len(params.Msgs))

	return BuildTxRaw(bodyBytes, authInfoBytes, signature), nil
}

// BuildBroadcastTxRequest signs the transaction and wraps it for block mode broadcast.
func BuildBroadcastTxRequest(params SignTxParams) (*txtypes.BroadcastTxRequest, error) {
	txRaw, err := SignTx(params)
	if err != nil {
		return nil, err
	}

	txBytes, err := txRaw.Marshal()
	if err != nil {
		return nil, fmt.Errorf("error marshalling tx raw: %w", err)
	}

	return &txtypes.BroadcastTxRequest{
		TxBytes: txBytes,
		Mode:    txtypes.BroadcastMode_BROADCAST_MODE_BLOCK,
	}, nil
}

// BuildCalculateTxFeeRequest builds a fee simulation request. The embedded TxRaw carries a
// single empty signature and is not a valid signed transaction.
func BuildCalculateTxFeeRequest(params CalculateTxFeeParams) (*msgfeestypes.CalculateTxFeesRequest, error) {
	if len(params.Msgs) == 0 {
		return nil, errorsmod.Wrap(common.ErrValidation, "at least one message is required")
	}

	gasPriceDenom := params.GasPriceDenom
	if gasPriceDenom == "" {
		gasPriceDenom = common.DefaultFeeDenom
	}
	gasAdjustment := params.GasAdjustment
	if gasAdjustment == 0 {
		gasAdjustment = common.DefaultGasAdjustment
	}

	signerInfo, err := BuildSignerInfo(params.Account, params.PublicKey)
	if err != nil {
		return nil, err
	}

	authInfo, err := BuildAuthInfo(signerInfo, gasPriceDenom, nil, params.GasLimit)
	if err != nil {
		return nil, err
	}

	bodyBytes, err := BuildTxBody("", params.Msgs...).Marshal()
	if err != nil {
		return nil, fmt.Errorf("error marshalling tx body: %w", err)
	}

	authInfoBytes, err := authInfo.Marshal()
	if err != nil {
		return nil, fmt.Errorf("error marshalling auth info: %w", err)
	}

	txBytes, err := BuildTxRaw(bodyBytes, authInfoBytes, []byte{}).Marshal()
	if err != nil {
		return nil, fmt.Errorf("error marshalling tx raw: %w", err)
	}

	return &msgfeestypes.CalculateTxFeesRequest{
		TxBytes:          txBytes,
		DefaultBaseDenom: gasPriceDenom,
		GasAdjustment:    gasAdjustment,
	}, nil
}

func resolveSigner(params SignTxParams) (common.Signer, error) {
	if params.Signer != nil {
		return params.Signer, nil
	}
	if params.Wallet == nil {
		return nil, errorsmod.Wrap(common.ErrInvalidKey, "signer or wallet is required")
	}
	signer, err := common.NewWalletSigner(*params.Wallet)
	if err != nil {
		return nil, errorsmod.Wrapf(common.ErrInvalidKey, "invalid wallet: %s", err)
	}
	return signer, nil
}
