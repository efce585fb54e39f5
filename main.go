package main

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	errorsmod "cosmossdk.io/errors"
	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/dan13ram/wallet-msg-service/app"
	"github.com/dan13ram/wallet-msg-service/common"
	"github.com/dan13ram/wallet-msg-service/cosmos"
	"github.com/dan13ram/wallet-msg-service/models"
)

var cmdMain = &cobra.Command{
	Use:   "wallet-msg-service",
	Short: "Build, sign and display wallet messages",
}

var cmdDisplay = &cobra.Command{
	Use:   "display <msg-any-base64>...",
	Short: "Decode base64 Any messages and print their formatted display objects",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runDisplay,
}

var cmdSign = &cobra.Command{
	Use:   "sign <msg-any-base64>...",
	Short: "Sign the messages and print a base64 BroadcastTxRequest",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runSign,
}

var cmdFeeRequest = &cobra.Command{
	Use:   "fee-request <msg-any-base64>...",
	Short: "Print a base64 CalculateTxFeesRequest for the messages",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runFeeRequest,
}

var flagMain struct {
	ConfigFile string
	EnvFile    string
}

var flagTx struct {
	AccountNumber uint64
	Sequence      uint64
	Fee           string
	Memo          string
}

func init() {
	cmdMain.PersistentFlags().StringVarP(&flagMain.ConfigFile, "config", "c", "", "Path to the YAML config file")
	cmdMain.PersistentFlags().StringVarP(&flagMain.EnvFile, "env", "e", "", "Path to a .env file")
	cmdMain.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		initApp()
	}
	// display only decodes, so it runs without chain or signer config
	cmdDisplay.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		app.InitLogger()
	}

	for _, cmd := range []*cobra.Command{cmdSign, cmdFeeRequest} {
		cmd.Flags().Uint64Var(&flagTx.AccountNumber, "account-number", 0, "Account number of the signer")
		cmd.Flags().Uint64Var(&flagTx.Sequence, "sequence", 0, "Current sequence of the signer")
	}
	cmdSign.Flags().StringVar(&flagTx.Fee, "fee", "", "Fee estimate as comma separated coins, e.g. 1000nhash,500nhash")
	cmdSign.Flags().StringVar(&flagTx.Memo, "memo", "", "Transaction memo")

	cmdMain.AddCommand(cmdDisplay, cmdSign, cmdFeeRequest)
}

func main() {
	log.SetFormatter(&log.TextFormatter{
		FullTimestamp: true,
	})

	if err := cmdMain.Execute(); err != nil {
		log.Fatal(err)
	}
}

func initApp() {
	configPath := flagMain.ConfigFile
	if configPath != "" {
		configPath, _ = filepath.Abs(configPath)
	}
	envPath := flagMain.EnvFile
	if envPath != "" {
		envPath, _ = filepath.Abs(envPath)
	}

	app.InitConfig(configPath, envPath)
	app.InitLogger()
}

func runDisplay(cmd *cobra.Command, args []string) error {
	for _, msgAnyB64 := range args {
		obj, err := cosmos.UnpackDisplayObjectFromWalletMessage(msgAnyB64)
		if err != nil {
			return fmt.Errorf("error unpacking message: %w", err)
		}

		bz, err := json.MarshalIndent(cosmos.FormatDisplayObject(obj), "", "  ")
		if err != nil {
			return fmt.Errorf("error encoding display object: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(bz))
	}
	return nil
}

func runSign(cmd *cobra.Command, args []string) error {
	msgs, err := decodeMessages(args)
	if err != nil {
		return err
	}

	feeEstimate, err := parseFee(flagTx.Fee)
	if err != nil {
		return err
	}

	signer, err := app.CreateSigner()
	if err != nil {
		return err
	}
	defer signer.Destroy()

	address, err := app.SignerAddress(signer)
	if err != nil {
		return err
	}

	request, err := cosmos.BuildBroadcastTxRequest(cosmos.SignTxParams{
		Msgs:        msgs,
		Account:     models.BaseAccount{Address: address, AccountNumber: flagTx.AccountNumber, Sequence: flagTx.Sequence},
		ChainID:     app.Config.Chain.ChainID,
		Signer:      signer,
		FeeEstimate: feeEstimate,
		FeeDenom:    app.Config.Chain.FeeDenom,
		GasLimit:    app.Config.Chain.GasLimit,
		Memo:        flagTx.Memo,
	})
	if err != nil {
		return fmt.Errorf("error building broadcast request: %w", err)
	}

	return printProto(cmd, request)
}

func runFeeRequest(cmd *cobra.Command, args []string) error {
	msgs, err := decodeMessages(args)
	if err != nil {
		return err
	}

	signer, err := app.CreateSigner()
	if err != nil {
		return err
	}
	defer signer.Destroy()

	request, err := cosmos.BuildCalculateTxFeeRequest(cosmos.CalculateTxFeeParams{
		Msgs:          msgs,
		Account:       models.BaseAccount{AccountNumber: flagTx.AccountNumber, Sequence: flagTx.Sequence},
		PublicKey:     signer.CosmosPublicKey().Bytes(),
		GasPriceDenom: app.Config.Chain.FeeDenom,
		GasLimit:      app.Config.Chain.GasLimit,
		GasAdjustment: app.Config.Chain.GasAdjustment,
	})
	if err != nil {
		return fmt.Errorf("error building fee request: %w", err)
	}

	return printProto(cmd, request)
}

func decodeMessages(args []string) ([]*codectypes.Any, error) {
	msgs := make([]*codectypes.Any, 0, len(args))
	for i, arg := range args {
		msgAny, err := cosmos.MsgAnyB64ToAny(arg)
		if err != nil {
			return nil, fmt.Errorf("error decoding message [%d]: %w", i, err)
		}
		if _, err := cosmos.KindFromTypeURL(msgAny.TypeUrl); err != nil {
			return nil, fmt.Errorf("error decoding message [%d]: %w", i, err)
		}
		msgs = append(msgs, msgAny)
	}
	return msgs, nil
}

func parseFee(fee string) ([]models.Coin, error) {
	if fee == "" {
		return nil, nil
	}
	// denoms may repeat; BuildAuthInfo aggregates them
	parts := strings.Split(fee, ",")
	feeEstimate := make([]models.Coin, 0, len(parts))
	for _, part := range parts {
		coin, err := sdk.ParseCoinNormalized(strings.TrimSpace(part))
		if err != nil {
			return nil, errorsmod.Wrapf(common.ErrValidation, "invalid fee %q: %s", part, err)
		}
		feeEstimate = append(feeEstimate, models.Coin{Denom: coin.Denom, Amount: coin.Amount.String()})
	}
	return feeEstimate, nil
}

type protoMarshaler interface {
	Marshal() ([]byte, error)
}

func printProto(cmd *cobra.Command, msg protoMarshaler) error {
	bz, err := msg.Marshal()
	if err != nil {
		return fmt.Errorf("error encoding request: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), base64.StdEncoding.EncodeToString(bz))
	return nil
}
