package cosmos

import (
	"strings"

	errorsmod "cosmossdk.io/errors"
	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
	vestingtypes "github.com/cosmos/cosmos-sdk/x/auth/vesting/types"
	"github.com/cosmos/cosmos-sdk/x/authz"
	banktypes "github.com/cosmos/cosmos-sdk/x/bank/types"
	distrtypes "github.com/cosmos/cosmos-sdk/x/distribution/types"
	govv1beta1 "github.com/cosmos/cosmos-sdk/x/gov/types/v1beta1"
	slashingtypes "github.com/cosmos/cosmos-sdk/x/slashing/types"
	stakingtypes "github.com/cosmos/cosmos-sdk/x/staking/types"

	"github.com/dan13ram/wallet-msg-service/common"
	"github.com/dan13ram/wallet-msg-service/cosmos/display"
	"github.com/dan13ram/wallet-msg-service/cosmos/markertypes"
	"github.com/dan13ram/wallet-msg-service/cosmos/wasmtypes"
)

// Msg is implemented by every registered message type.
type Msg interface {
	Marshal() ([]byte, error)
	Unmarshal(b []byte) error
}

// Kind enumerates the message kinds the wallet can build and display.
type Kind int

const (
	KindMsgSend Kind = iota + 1
	KindMsgExecuteContract
	KindMsgGrant
	KindMsgSetWithdrawAddress
	KindMsgWithdrawDelegatorReward
	KindMsgWithdrawValidatorCommission
	KindMsgFundCommunityPool
	KindMsgSubmitProposal
	KindMsgVote
	KindMsgVoteWeighted
	KindMsgDeposit
	KindMsgUnjail
	KindMsgCreateValidator
	KindMsgEditValidator
	KindMsgDelegate
	KindMsgBeginRedelegate
	KindMsgUndelegate
	KindMsgCreateVestingAccount
	KindMsgAddMarkerRequest
)

const PubKeyTypeName = "cosmos.crypto.secp256k1.PubKey"

type registryEntry struct {
	name     string
	typeName string
	newMsg   func() Msg
	// toDisplay is nil for kinds shown through the generic proto JSON conversion.
	toDisplay func(Msg) (*display.Object, error)
}

var registry = map[Kind]registryEntry{
	KindMsgSend: {
		name:      "MsgSend",
		typeName:  "cosmos.bank.v1beta1.MsgSend",
		newMsg:    func() Msg { return &banktypes.MsgSend{} },
		toDisplay: displayMsgSend,
	},
	KindMsgExecuteContract: {
		name:      "MsgExecuteContract",
		typeName:  wasmtypes.MsgExecuteContractTypeName,
		newMsg:    func() Msg { return &wasmtypes.MsgExecuteContract{} },
		toDisplay: displayMsgExecuteContract,
	},
	KindMsgGrant: {
		name:     "MsgGrant",
		typeName: "cosmos.authz.v1beta1.MsgGrant",
		newMsg:   func() Msg { return &authz.MsgGrant{} },
	},
	KindMsgSetWithdrawAddress: {
		name:     "MsgSetWithdrawAddress",
		typeName: "cosmos.distribution.v1beta1.MsgSetWithdrawAddress",
		newMsg:   func() Msg { return &distrtypes.MsgSetWithdrawAddress{} },
	},
	KindMsgWithdrawDelegatorReward: {
		name:     "MsgWithdrawDelegatorReward",
		typeName: "cosmos.distribution.v1beta1.MsgWithdrawDelegatorReward",
		newMsg:   func() Msg { return &distrtypes.MsgWithdrawDelegatorReward{} },
	},
	KindMsgWithdrawValidatorCommission: {
		name:     "MsgWithdrawValidatorCommission",
		typeName: "cosmos.distribution.v1beta1.MsgWithdrawValidatorCommission",
		newMsg:   func() Msg { return &distrtypes.MsgWithdrawValidatorCommission{} },
	},
	KindMsgFundCommunityPool: {
		name:     "MsgFundCommunityPool",
		typeName: "cosmos.distribution.v1beta1.MsgFundCommunityPool",
		newMsg:   func() Msg { return &distrtypes.MsgFundCommunityPool{} },
	},
	KindMsgSubmitProposal: {
		name:     "MsgSubmitProposal",
		typeName: "cosmos.gov.v1beta1.MsgSubmitProposal",
		newMsg:   func() Msg { return &govv1beta1.MsgSubmitProposal{} },
	},
	KindMsgVote: {
		name:     "MsgVote",
		typeName: "cosmos.gov.v1beta1.MsgVote",
		newMsg:   func() Msg { return &govv1beta1.MsgVote{} },
	},
	KindMsgVoteWeighted: {
		name:     "MsgVoteWeighted",
		typeName: "cosmos.gov.v1beta1.MsgVoteWeighted",
		newMsg:   func() Msg { return &govv1beta1.MsgVoteWeighted{} },
	},
	KindMsgDeposit: {
		name:     "MsgDeposit",
		typeName: "cosmos.gov.v1beta1.MsgDeposit",
		newMsg:   func() Msg { return &govv1beta1.MsgDeposit{} },
	},
	KindMsgUnjail: {
		name:     "MsgUnjail",
		typeName: "cosmos.slashing.v1beta1.MsgUnjail",
		newMsg:   func() Msg { return &slashingtypes.MsgUnjail{} },
	},
	KindMsgCreateValidator: {
		name:     "MsgCreateValidator",
		typeName: "cosmos.staking.v1beta1.MsgCreateValidator",
		newMsg:   func() Msg { return &stakingtypes.MsgCreateValidator{} },
	},
	KindMsgEditValidator: {
		name:     "MsgEditValidator",
		typeName: "cosmos.staking.v1beta1.MsgEditValidator",
		newMsg:   func() Msg { return &stakingtypes.MsgEditValidator{} },
	},
	KindMsgDelegate: {
		name:     "MsgDelegate",
		typeName: "cosmos.staking.v1beta1.MsgDelegate",
		newMsg:   func() Msg { return &stakingtypes.MsgDelegate{} },
	},
	KindMsgBeginRedelegate: {
		name:     "MsgBeginRedelegate",
		typeName: "cosmos.staking.v1beta1.MsgBeginRedelegate",
		newMsg:   func() Msg { return &stakingtypes.MsgBeginRedelegate{} },
	},
	KindMsgUndelegate: {
		name:     "MsgUndelegate",
		typeName: "cosmos.staking.v1beta1.MsgUndelegate",
		newMsg:   func() Msg { return &stakingtypes.MsgUndelegate{} },
	},
	KindMsgCreateVestingAccount: {
		name:     "MsgCreateVestingAccount",
		typeName: "cosmos.vesting.v1beta1.MsgCreateVestingAccount",
		newMsg:   func() Msg { return &vestingtypes.MsgCreateVestingAccount{} },
	},
	KindMsgAddMarkerRequest: {
		name:      "MsgAddMarkerRequest",
		typeName:  markertypes.MsgAddMarkerRequestTypeName,
		newMsg:    func() Msg { return &markertypes.MsgAddMarkerRequest{} },
		toDisplay: displayMsgAddMarkerRequest,
	},
}

var (
	kindsByName     = map[string]Kind{}
	kindsByTypeName = map[string]Kind{}
)

func init() {
	for kind, entry := range registry {
		kindsByName[entry.name] = kind
		kindsByTypeName[entry.typeName] = kind
	}
}

// Kinds returns every registered kind in declaration order.
func Kinds() []Kind {
	kinds := make([]Kind, 0, len(registry))
	for kind := KindMsgSend; kind <= KindMsgAddMarkerRequest; kind++ {
		kinds = append(kinds, kind)
	}
	return kinds
}

// String returns the readable name, e.g. "MsgSend".
func (k Kind) String() string {
	if entry, ok := registry[k]; ok {
		return entry.name
	}
	return "Unknown"
}

// TypeName returns the fully qualified proto name, e.g. "cosmos.bank.v1beta1.MsgSend".
func (k Kind) TypeName() string {
	return registry[k].typeName
}

func (k Kind) TypeURL() string {
	return "/" + k.TypeName()
}

func KindFromName(name string) (Kind, error) {
	kind, ok := kindsByName[name]
	if !ok {
		return 0, errorsmod.Wrapf(common.ErrUnsupportedType, "message name %q", name)
	}
	return kind, nil
}

// KindFromTypeURL accepts both "/cosmos.bank.v1beta1.MsgSend" and the bare type name.
// URLs with a host or path before the type name are not resolved by the chain and are
// rejected.
func KindFromTypeURL(typeURL string) (Kind, error) {
	typeName := strings.TrimPrefix(typeURL, "/")
	kind, ok := kindsByTypeName[typeName]
	if !ok {
		return 0, errorsmod.Wrapf(common.ErrUnsupportedType, "message type %q", typeName)
	}
	return kind, nil
}

// Pack wraps serialized message bytes in an Any tagged with the kind's type URL.
func Pack(kind Kind, value []byte) (*codectypes.Any, error) {
	if _, ok := registry[kind]; !ok {
		return nil, errorsmod.Wrapf(common.ErrUnsupportedType, "message kind %d", int(kind))
	}
	return &codectypes.Any{TypeUrl: kind.TypeURL(), Value: value}, nil
}

func PackName(name string, value []byte) (*codectypes.Any, error) {
	kind, err := KindFromName(name)
	if err != nil {
		return nil, err
	}
	return Pack(kind, value)
}

func PackMsg(kind Kind, msg Msg) (*codectypes.Any, error) {
	value, err := msg.Marshal()
	if err != nil {
		return nil, errorsmod.Wrapf(common.ErrValidation, "failed to marshal %s: %s", kind, err)
	}
	return Pack(kind, value)
}

// Unpack decodes an Any into its registered message type. Unknown type URLs fail with
// ErrUnsupportedType and undecodable values with ErrDecode; no partial message is returned.
func Unpack(msgAny *codectypes.Any) (Kind, Msg, error) {
	if msgAny == nil {
		return 0, nil, errorsmod.Wrap(common.ErrDecode, "message is empty")
	}

	kind, err := KindFromTypeURL(msgAny.TypeUrl)
	if err != nil {
		return 0, nil, err
	}

	msg := registry[kind].newMsg()
	if err := msg.Unmarshal(msgAny.Value); err != nil {
		return 0, nil, errorsmod.Wrapf(common.ErrDecode, "failed to unmarshal %s: %s", kind, err)
	}

	return kind, msg, nil
}
