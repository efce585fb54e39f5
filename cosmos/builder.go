package cosmos

import (
	"encoding/base64"
	"encoding/json"
	"time"

	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/math"
	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
	"github.com/cosmos/cosmos-sdk/crypto/keys/ed25519"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/bech32"
	vestingtypes "github.com/cosmos/cosmos-sdk/x/auth/vesting/types"
	"github.com/cosmos/cosmos-sdk/x/authz"
	banktypes "github.com/cosmos/cosmos-sdk/x/bank/types"
	distrtypes "github.com/cosmos/cosmos-sdk/x/distribution/types"
	govv1beta1 "github.com/cosmos/cosmos-sdk/x/gov/types/v1beta1"
	slashingtypes "github.com/cosmos/cosmos-sdk/x/slashing/types"
	stakingtypes "github.com/cosmos/cosmos-sdk/x/staking/types"
	"github.com/cosmos/gogoproto/proto"

	"github.com/dan13ram/wallet-msg-service/common"
	"github.com/dan13ram/wallet-msg-service/cosmos/markertypes"
	"github.com/dan13ram/wallet-msg-service/cosmos/wasmtypes"
	"github.com/dan13ram/wallet-msg-service/models"
)

// Params is the input shape of one message kind. The set of implementations is closed;
// every Kind has exactly one Params type.
type Params interface {
	Kind() Kind
	build() (Msg, error)
}

type SendParams struct {
	FromAddress string
	ToAddress   string
	Amount      []models.Coin
}

type ExecuteContractParams struct {
	Sender   string
	Contract string
	// Msg is encoded with encoding/json; json.RawMessage is passed through unchanged.
	Msg   any
	Funds []models.Coin
}

// GrantParams grants Grantee a GenericAuthorization for MsgTypeURL, or a
// SendAuthorization when SpendLimit is set.
type GrantParams struct {
	Granter    string
	Grantee    string
	MsgTypeURL string
	SpendLimit []models.Coin
	Expiration *time.Time
}

type SetWithdrawAddressParams struct {
	DelegatorAddress string
	WithdrawAddress  string
}

type WithdrawDelegatorRewardParams struct {
	DelegatorAddress string
	ValidatorAddress string
}

type WithdrawValidatorCommissionParams struct {
	ValidatorAddress string
}

type FundCommunityPoolParams struct {
	Depositor string
	Amount    []models.Coin
}

// SubmitProposalParams submits a text proposal.
type SubmitProposalParams struct {
	Proposer       string
	Title          string
	Description    string
	InitialDeposit []models.Coin
}

// VoteParams carries the option by name, e.g. "VOTE_OPTION_YES".
type VoteParams struct {
	ProposalID uint64
	Voter      string
	Option     string
}

type WeightedVoteOption struct {
	Option string
	Weight string
}

type VoteWeightedParams struct {
	ProposalID uint64
	Voter      string
	Options    []WeightedVoteOption
}

type DepositParams struct {
	ProposalID uint64
	Depositor  string
	Amount     []models.Coin
}

type UnjailParams struct {
	ValidatorAddress string
}

type ValidatorDescription struct {
	Moniker         string
	Identity        string
	Website         string
	SecurityContact string
	Details         string
}

type CreateValidatorParams struct {
	Description             ValidatorDescription
	CommissionRate          string
	CommissionMaxRate       string
	CommissionMaxChangeRate string
	MinSelfDelegation       string
	DelegatorAddress        string
	ValidatorAddress        string
	// ConsensusPubKey is the raw 32-byte ed25519 key.
	ConsensusPubKey []byte
	Value           models.Coin
}

// EditValidatorParams leaves CommissionRate and MinSelfDelegation unchanged when empty.
type EditValidatorParams struct {
	Description       ValidatorDescription
	ValidatorAddress  string
	CommissionRate    string
	MinSelfDelegation string
}

type DelegateParams struct {
	DelegatorAddress string
	ValidatorAddress string
	Amount           models.Coin
}

type BeginRedelegateParams struct {
	DelegatorAddress    string
	ValidatorSrcAddress string
	ValidatorDstAddress string
	Amount              models.Coin
}

type UndelegateParams struct {
	DelegatorAddress string
	ValidatorAddress string
	Amount           models.Coin
}

type CreateVestingAccountParams struct {
	FromAddress string
	ToAddress   string
	Amount      []models.Coin
	EndTime     int64
	Delayed     bool
}

type AccessGrantParams struct {
	Address string
	// Permissions by name, e.g. "ACCESS_MINT".
	Permissions []string
}

// AddMarkerParams carries Status and MarkerType by name, e.g. "MARKER_STATUS_PROPOSED".
type AddMarkerParams struct {
	Amount                 models.Coin
	Manager                string
	FromAddress            string
	Status                 string
	MarkerType             string
	AccessList             []AccessGrantParams
	SupplyFixed            bool
	AllowGovernanceControl bool
	AllowForcedTransfer    bool
	RequiredAttributes     []string
}

func (SendParams) Kind() Kind                        { return KindMsgSend }
func (ExecuteContractParams) Kind() Kind             { return KindMsgExecuteContract }
func (GrantParams) Kind() Kind                       { return KindMsgGrant }
func (SetWithdrawAddressParams) Kind() Kind          { return KindMsgSetWithdrawAddress }
func (WithdrawDelegatorRewardParams) Kind() Kind     { return KindMsgWithdrawDelegatorReward }
func (WithdrawValidatorCommissionParams) Kind() Kind { return KindMsgWithdrawValidatorCommission }
func (FundCommunityPoolParams) Kind() Kind           { return KindMsgFundCommunityPool }
func (SubmitProposalParams) Kind() Kind              { return KindMsgSubmitProposal }
func (VoteParams) Kind() Kind                        { return KindMsgVote }
func (VoteWeightedParams) Kind() Kind                { return KindMsgVoteWeighted }
func (DepositParams) Kind() Kind                     { return KindMsgDeposit }
func (UnjailParams) Kind() Kind                      { return KindMsgUnjail }
func (CreateValidatorParams) Kind() Kind             { return KindMsgCreateValidator }
func (EditValidatorParams) Kind() Kind               { return KindMsgEditValidator }
func (DelegateParams) Kind() Kind                    { return KindMsgDelegate }
func (BeginRedelegateParams) Kind() Kind             { return KindMsgBeginRedelegate }
func (UndelegateParams) Kind() Kind                  { return KindMsgUndelegate }
func (CreateVestingAccountParams) Kind() Kind        { return KindMsgCreateVestingAccount }
func (AddMarkerParams) Kind() Kind                   { return KindMsgAddMarkerRequest }

// BuildMessage validates params and constructs the typed message for its kind.
func BuildMessage(params Params) (Kind, Msg, error) {
	if params == nil {
		return 0, nil, errorsmod.Wrap(common.ErrValidation, "params are required")
	}
	msg, err := params.build()
	if err != nil {
		return 0, nil, err
	}
	return params.Kind(), msg, nil
}

// CreateAnyMessageBase64 builds the message, packs it into an Any and returns the
// base64 encoding of the Any bytes.
func CreateAnyMessageBase64(params Params) (string, error) {
	kind, msg, err := BuildMessage(params)
	if err != nil {
		return "", err
	}
	msgAny, err := PackMsg(kind, msg)
	if err != nil {
		return "", err
	}
	bz, err := msgAny.Marshal()
	if err != nil {
		return "", errorsmod.Wrapf(common.ErrValidation, "failed to marshal any: %s", err)
	}
	return base64.StdEncoding.EncodeToString(bz), nil
}

// MsgAnyB64ToAny decodes a base64 encoded Any.
func MsgAnyB64ToAny(msgAnyB64 string) (*codectypes.Any, error) {
	bz, err := base64.StdEncoding.DecodeString(msgAnyB64)
	if err != nil {
		return nil, errorsmod.Wrapf(common.ErrDecode, "invalid base64: %s", err)
	}
	msgAny := &codectypes.Any{}
	if err := msgAny.Unmarshal(bz); err != nil {
		return nil, errorsmod.Wrapf(common.ErrDecode, "invalid any: %s", err)
	}
	if msgAny.TypeUrl == "" {
		return nil, errorsmod.Wrap(common.ErrDecode, "any has no type url")
	}
	return msgAny, nil
}

func (p SendParams) build() (Msg, error) {
	if err := validateAddresses("from_address", p.FromAddress, "to_address", p.ToAddress); err != nil {
		return nil, err
	}
	amount, err := requiredCoins("amount", p.Amount)
	if err != nil {
		return nil, err
	}
	return &banktypes.MsgSend{FromAddress: p.FromAddress, ToAddress: p.ToAddress, Amount: amount}, nil
}

func (p ExecuteContractParams) build() (Msg, error) {
	if err := validateAddresses("sender", p.Sender, "contract", p.Contract); err != nil {
		return nil, err
	}
	if p.Msg == nil {
		return nil, errorsmod.Wrap(common.ErrValidation, "msg is required")
	}
	payload, err := json.Marshal(p.Msg)
	if err != nil {
		return nil, errorsmod.Wrapf(common.ErrValidation, "invalid msg: %s", err)
	}
	funds, err := AggregateCoins(p.Funds)
	if err != nil {
		return nil, err
	}
	return &wasmtypes.MsgExecuteContract{Sender: p.Sender, Contract: p.Contract, Msg: payload, Funds: funds}, nil
}

func (p GrantParams) build() (Msg, error) {
	if err := validateAddresses("granter", p.Granter, "grantee", p.Grantee); err != nil {
		return nil, err
	}

	var authorization proto.Message
	if len(p.SpendLimit) > 0 {
		spendLimit, err := AggregateCoins(p.SpendLimit)
		if err != nil {
			return nil, err
		}
		authorization = banktypes.NewSendAuthorization(spendLimit, nil)
	} else {
		if p.MsgTypeURL == "" {
			return nil, errorsmod.Wrap(common.ErrValidation, "msg_type_url or spend_limit is required")
		}
		authorization = authz.NewGenericAuthorization(p.MsgTypeURL)
	}

	authorizationAny, err := codectypes.NewAnyWithValue(authorization)
	if err != nil {
		return nil, errorsmod.Wrapf(common.ErrValidation, "invalid authorization: %s", err)
	}

	return &authz.MsgGrant{
		Granter: p.Granter,
		Grantee: p.Grantee,
		Grant:   authz.Grant{Authorization: authorizationAny, Expiration: p.Expiration},
	}, nil
}

func (p SetWithdrawAddressParams) build() (Msg, error) {
	if err := validateAddresses("delegator_address", p.DelegatorAddress, "withdraw_address", p.WithdrawAddress); err != nil {
		return nil, err
	}
	return &distrtypes.MsgSetWithdrawAddress{DelegatorAddress: p.DelegatorAddress, WithdrawAddress: p.WithdrawAddress}, nil
}

func (p WithdrawDelegatorRewardParams) build() (Msg, error) {
	if err := validateAddresses("delegator_address", p.DelegatorAddress, "validator_address", p.ValidatorAddress); err != nil {
		return nil, err
	}
	return &distrtypes.MsgWithdrawDelegatorReward{DelegatorAddress: p.DelegatorAddress, ValidatorAddress: p.ValidatorAddress}, nil
}

func (p WithdrawValidatorCommissionParams) build() (Msg, error) {
	if err := validateAddresses("validator_address", p.ValidatorAddress); err != nil {
		return nil, err
	}
	return &distrtypes.MsgWithdrawValidatorCommission{ValidatorAddress: p.ValidatorAddress}, nil
}

func (p FundCommunityPoolParams) build() (Msg, error) {
	if err := validateAddresses("depositor", p.Depositor); err != nil {
		return nil, err
	}
	amount, err := requiredCoins("amount", p.Amount)
	if err != nil {
		return nil, err
	}
	return &distrtypes.MsgFundCommunityPool{Depositor: p.Depositor, Amount: amount}, nil
}

func (p SubmitProposalParams) build() (Msg, error) {
	if err := validateAddresses("proposer", p.Proposer); err != nil {
		return nil, err
	}
	if p.Title == "" {
		return nil, errorsmod.Wrap(common.ErrValidation, "title is required")
	}
	deposit, err := AggregateCoins(p.InitialDeposit)
	if err != nil {
		return nil, err
	}
	content, err := codectypes.NewAnyWithValue(&govv1beta1.TextProposal{Title: p.Title, Description: p.Description})
	if err != nil {
		return nil, errorsmod.Wrapf(common.ErrValidation, "invalid content: %s", err)
	}
	return &govv1beta1.MsgSubmitProposal{Content: content, InitialDeposit: deposit, Proposer: p.Proposer}, nil
}

func (p VoteParams) build() (Msg, error) {
	if err := validateAddresses("voter", p.Voter); err != nil {
		return nil, err
	}
	option, err := parseVoteOption(p.Option)
	if err != nil {
		return nil, err
	}
	return &govv1beta1.MsgVote{ProposalId: p.ProposalID, Voter: p.Voter, Option: option}, nil
}

func (p VoteWeightedParams) build() (Msg, error) {
	if err := validateAddresses("voter", p.Voter); err != nil {
		return nil, err
	}
	if len(p.Options) == 0 {
		return nil, errorsmod.Wrap(common.ErrValidation, "options are required")
	}
	options := make([]govv1beta1.WeightedVoteOption, 0, len(p.Options))
	for _, o := range p.Options {
		option, err := parseVoteOption(o.Option)
		if err != nil {
			return nil, err
		}
		weight, err := parseDec("weight", o.Weight)
		if err != nil {
			return nil, err
		}
		options = append(options, govv1beta1.WeightedVoteOption{Option: option, Weight: weight})
	}
	return &govv1beta1.MsgVoteWeighted{ProposalId: p.ProposalID, Voter: p.Voter, Options: options}, nil
}

func (p DepositParams) build() (Msg, error) {
	if err := validateAddresses("depositor", p.Depositor); err != nil {
		return nil, err
	}
	amount, err := requiredCoins("amount", p.Amount)
	if err != nil {
		return nil, err
	}
	return &govv1beta1.MsgDeposit{ProposalId: p.ProposalID, Depositor: p.Depositor, Amount: amount}, nil
}

func (p UnjailParams) build() (Msg, error) {
	if err := validateAddresses("validator_addr", p.ValidatorAddress); err != nil {
		return nil, err
	}
	return &slashingtypes.MsgUnjail{ValidatorAddr: p.ValidatorAddress}, nil
}

func (p CreateValidatorParams) build() (Msg, error) {
	if err := validateAddresses("delegator_address", p.DelegatorAddress, "validator_address", p.ValidatorAddress); err != nil {
		return nil, err
	}
	if p.Description.Moniker == "" {
		return nil, errorsmod.Wrap(common.ErrValidation, "moniker is required")
	}
	if len(p.ConsensusPubKey) != ed25519.PubKeySize {
		return nil, errorsmod.Wrapf(common.ErrValidation, "consensus pubkey must be %d bytes, got %d", ed25519.PubKeySize, len(p.ConsensusPubKey))
	}
	pubKey, err := codectypes.NewAnyWithValue(&ed25519.PubKey{Key: p.ConsensusPubKey})
	if err != nil {
		return nil, errorsmod.Wrapf(common.ErrValidation, "invalid consensus pubkey: %s", err)
	}

	rate, err := parseDec("commission_rate", p.CommissionRate)
	if err != nil {
		return nil, err
	}
	maxRate, err := parseDec("commission_max_rate", p.CommissionMaxRate)
	if err != nil {
		return nil, err
	}
	maxChangeRate, err := parseDec("commission_max_change_rate", p.CommissionMaxChangeRate)
	if err != nil {
		return nil, err
	}
	minSelfDelegation, err := parseInt("min_self_delegation", p.MinSelfDelegation)
	if err != nil {
		return nil, err
	}
	value, err := buildCoin("value", p.Value)
	if err != nil {
		return nil, err
	}

	return &stakingtypes.MsgCreateValidator{
		Description:       p.Description.toStaking(),
		Commission:        stakingtypes.NewCommissionRates(rate, maxRate, maxChangeRate),
		MinSelfDelegation: minSelfDelegation,
		DelegatorAddress:  p.DelegatorAddress,
		ValidatorAddress:  p.ValidatorAddress,
		Pubkey:            pubKey,
		Value:             value,
	}, nil
}

func (p EditValidatorParams) build() (Msg, error) {
	if err := validateAddresses("validator_address", p.ValidatorAddress); err != nil {
		return nil, err
	}
	msg := &stakingtypes.MsgEditValidator{
		Description:      p.Description.toStaking(),
		ValidatorAddress: p.ValidatorAddress,
	}
	if p.CommissionRate != "" {
		rate, err := parseDec("commission_rate", p.CommissionRate)
		if err != nil {
			return nil, err
		}
		msg.CommissionRate = &rate
	}
	if p.MinSelfDelegation != "" {
		minSelfDelegation, err := parseInt("min_self_delegation", p.MinSelfDelegation)
		if err != nil {
			return nil, err
		}
		msg.MinSelfDelegation = &minSelfDelegation
	}
	return msg, nil
}

func (p DelegateParams) build() (Msg, error) {
	if err := validateAddresses("delegator_address", p.DelegatorAddress, "validator_address", p.ValidatorAddress); err != nil {
		return nil, err
	}
	amount, err := buildCoin("amount", p.Amount)
	if err != nil {
		return nil, err
	}
	return &stakingtypes.MsgDelegate{DelegatorAddress: p.DelegatorAddress, ValidatorAddress: p.ValidatorAddress, Amount: amount}, nil
}

func (p BeginRedelegateParams) build() (Msg, error) {
	err := validateAddresses(
		"delegator_address", p.DelegatorAddress,
		"validator_src_address", p.ValidatorSrcAddress,
		"validator_dst_address", p.ValidatorDstAddress,
	)
	if err != nil {
		return nil, err
	}
	amount, err := buildCoin("amount", p.Amount)
	if err != nil {
		return nil, err
	}
	return &stakingtypes.MsgBeginRedelegate{
		DelegatorAddress:    p.DelegatorAddress,
		ValidatorSrcAddress: p.ValidatorSrcAddress,
		ValidatorDstAddress: p.ValidatorDstAddress,
		Amount:              amount,
	}, nil
}

func (p UndelegateParams) build() (Msg, error) {
	if err := validateAddresses("delegator_address", p.DelegatorAddress, "validator_address", p.ValidatorAddress); err != nil {
		return nil, err
	}
	amount, err := buildCoin("amount", p.Amount)
	if err != nil {
		return nil, err
	}
	return &stakingtypes.MsgUndelegate{DelegatorAddress: p.DelegatorAddress, ValidatorAddress: p.ValidatorAddress, Amount: amount}, nil
}

func (p CreateVestingAccountParams) build() (Msg, error) {
	if err := validateAddresses("from_address", p.FromAddress, "to_address", p.ToAddress); err != nil {
		return nil, err
	}
	amount, err := requiredCoins("amount", p.Amount)
	if err != nil {
		return nil, err
	}
	if p.EndTime <= 0 {
		return nil, errorsmod.Wrap(common.ErrValidation, "end_time must be positive")
	}
	return &vestingtypes.MsgCreateVestingAccount{
		FromAddress: p.FromAddress,
		ToAddress:   p.ToAddress,
		Amount:      amount,
		EndTime:     p.EndTime,
		Delayed:     p.Delayed,
	}, nil
}

func (p AddMarkerParams) build() (Msg, error) {
	if err := validateAddresses("from_address", p.FromAddress); err != nil {
		return nil, err
	}
	if p.Manager != "" {
		if err := validateAddresses("manager", p.Manager); err != nil {
			return nil, err
		}
	}
	amount, err := buildCoin("amount", p.Amount)
	if err != nil {
		return nil, err
	}

	status, ok := markertypes.ParseMarkerStatus(p.Status)
	if !ok {
		return nil, errorsmod.Wrapf(common.ErrUnsupportedType, "marker status %q", p.Status)
	}
	markerType, ok := markertypes.ParseMarkerType(p.MarkerType)
	if !ok {
		return nil, errorsmod.Wrapf(common.ErrUnsupportedType, "marker type %q", p.MarkerType)
	}

	accessList := make([]markertypes.AccessGrant, 0, len(p.AccessList))
	for _, grant := range p.AccessList {
		if err := validateAddresses("access_list.address", grant.Address); err != nil {
			return nil, err
		}
		permissions := make([]markertypes.Access, 0, len(grant.Permissions))
		for _, name := range grant.Permissions {
			access, ok := markertypes.ParseAccess(name)
			if !ok {
				return nil, errorsmod.Wrapf(common.ErrUnsupportedType, "access %q", name)
			}
			permissions = append(permissions, access)
		}
		accessList = append(accessList, markertypes.AccessGrant{Address: grant.Address, Permissions: permissions})
	}

	return &markertypes.MsgAddMarkerRequest{
		Amount:                 amount,
		Manager:                p.Manager,
		FromAddress:            p.FromAddress,
		Status:                 status,
		MarkerType:             markerType,
		AccessList:             accessList,
		SupplyFixed:            p.SupplyFixed,
		AllowGovernanceControl: p.AllowGovernanceControl,
		AllowForcedTransfer:    p.AllowForcedTransfer,
		RequiredAttributes:     p.RequiredAttributes,
	}, nil
}

func (d ValidatorDescription) toStaking() stakingtypes.Description {
	return stakingtypes.Description{
		Moniker:         d.Moniker,
		Identity:        d.Identity,
		Website:         d.Website,
		SecurityContact: d.SecurityContact,
		Details:         d.Details,
	}
}

// validateAddresses takes (field name, address) pairs.
func validateAddresses(pairs ...string) error {
	for i := 0; i+1 < len(pairs); i += 2 {
		field, address := pairs[i], pairs[i+1]
		if address == "" {
			return errorsmod.Wrapf(common.ErrValidation, "%s is required", field)
		}
		if _, _, err := bech32.DecodeAndConvert(address); err != nil {
			return errorsmod.Wrapf(common.ErrValidation, "invalid %s %q: %s", field, address, err)
		}
	}
	return nil
}

func requiredCoins(field string, coins []models.Coin) (sdk.Coins, error) {
	if len(coins) == 0 {
		return nil, errorsmod.Wrapf(common.ErrValidation, "%s is required", field)
	}
	return AggregateCoins(coins)
}

func buildCoin(field string, coin models.Coin) (sdk.Coin, error) {
	if err := sdk.ValidateDenom(coin.Denom); err != nil {
		return sdk.Coin{}, errorsmod.Wrapf(common.ErrValidation, "invalid %s denom: %s", field, err)
	}
	amount, err := parseInt(field, coin.Amount)
	if err != nil {
		return sdk.Coin{}, err
	}
	return sdk.NewCoin(coin.Denom, amount), nil
}

func parseInt(field string, value string) (math.Int, error) {
	amount, ok := math.NewIntFromString(value)
	if !ok {
		return math.Int{}, errorsmod.Wrapf(common.ErrValidation, "invalid %s %q", field, value)
	}
	if amount.IsNegative() {
		return math.Int{}, errorsmod.Wrapf(common.ErrValidation, "%s must not be negative", field)
	}
	return amount, nil
}

func parseDec(field string, value string) (math.LegacyDec, error) {
	dec, err := math.LegacyNewDecFromStr(value)
	if err != nil {
		return math.LegacyDec{}, errorsmod.Wrapf(common.ErrValidation, "invalid %s %q: %s", field, value, err)
	}
	return dec, nil
}

func parseVoteOption(name string) (govv1beta1.VoteOption, error) {
	value, ok := govv1beta1.VoteOption_value[name]
	if !ok || value == int32(govv1beta1.OptionEmpty) {
		return 0, errorsmod.Wrapf(common.ErrUnsupportedType, "vote option %q", name)
	}
	return govv1beta1.VoteOption(value), nil
}
