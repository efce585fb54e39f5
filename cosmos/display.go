package cosmos

import (
	"bytes"
	"encoding/json"

	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/math"
	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
	"github.com/cosmos/cosmos-sdk/std"
	vestingtypes "github.com/cosmos/cosmos-sdk/x/auth/vesting/types"
	"github.com/cosmos/cosmos-sdk/x/authz"
	banktypes "github.com/cosmos/cosmos-sdk/x/bank/types"
	distrtypes "github.com/cosmos/cosmos-sdk/x/distribution/types"
	govv1beta1 "github.com/cosmos/cosmos-sdk/x/gov/types/v1beta1"
	slashingtypes "github.com/cosmos/cosmos-sdk/x/slashing/types"
	stakingtypes "github.com/cosmos/cosmos-sdk/x/staking/types"
	"github.com/cosmos/gogoproto/jsonpb"
	"github.com/cosmos/gogoproto/proto"
	log "github.com/sirupsen/logrus"

	"github.com/dan13ram/wallet-msg-service/common"
	"github.com/dan13ram/wallet-msg-service/cosmos/display"
	"github.com/dan13ram/wallet-msg-service/cosmos/markertypes"
	"github.com/dan13ram/wallet-msg-service/cosmos/wasmtypes"
)

const (
	DisplayTypeNameKey             = "typeName"
	DisplayTypeMsgSend             = "MsgSend"
	DisplayTypeMsgExecuteContract  = "MsgExecuteContractGeneric"
	DisplayTypeMsgAddMarkerRequest = "MsgAddMarkerRequest"
	DisplayTypeMsgGeneric          = "MsgGeneric"
)

var interfaceRegistry = newInterfaceRegistry()

func newInterfaceRegistry() codectypes.InterfaceRegistry {
	registry := codectypes.NewInterfaceRegistry()
	std.RegisterInterfaces(registry)
	banktypes.RegisterInterfaces(registry)
	stakingtypes.RegisterInterfaces(registry)
	distrtypes.RegisterInterfaces(registry)
	govv1beta1.RegisterInterfaces(registry)
	slashingtypes.RegisterInterfaces(registry)
	authz.RegisterInterfaces(registry)
	vestingtypes.RegisterInterfaces(registry)
	return registry
}

// UnpackDisplayObjectFromWalletMessage decodes a base64 Any and converts the message into
// a display object tagged with a typeName discriminator. Unregistered types fail with
// ErrUnsupportedType.
func UnpackDisplayObjectFromWalletMessage(msgAnyB64 string) (*display.Object, error) {
	logger := log.WithField("operation", "UnpackDisplayObjectFromWalletMessage")

	msgAny, err := MsgAnyB64ToAny(msgAnyB64)
	if err != nil {
		return nil, err
	}

	kind, msg, err := Unpack(msgAny)
	if err != nil {
		logger.WithError(err).Warnf("Cannot display message of type %s", msgAny.TypeUrl)
		return nil, err
	}

	return DisplayObject(kind, msg)
}

// DisplayObject converts an unpacked message into its display object.
func DisplayObject(kind Kind, msg Msg) (*display.Object, error) {
	entry, ok := registry[kind]
	if !ok {
		return nil, errorsmod.Wrapf(common.ErrUnsupportedType, "message kind %d", int(kind))
	}
	if entry.toDisplay != nil {
		return entry.toDisplay(msg)
	}
	return displayGeneric(DisplayTypeMsgGeneric, msg)
}

// FormatDisplayObject flattens obj with the default formatting rules.
func FormatDisplayObject(obj *display.Object) *display.Object {
	return display.NewFormatter(display.DefaultRules()...).Format(obj)
}

func displayMsgSend(msg Msg) (*display.Object, error) {
	return displayGeneric(DisplayTypeMsgSend, msg)
}

func displayMsgExecuteContract(msg Msg) (*display.Object, error) {
	m, ok := msg.(*wasmtypes.MsgExecuteContract)
	if !ok {
		return nil, errorsmod.Wrapf(common.ErrUnsupportedType, "unexpected message %T", msg)
	}

	payload, err := display.ParseValue(m.Msg)
	if err != nil {
		return nil, errorsmod.Wrapf(common.ErrDecode, "invalid contract msg: %s", err)
	}

	funds := make(display.ObjectList, 0, len(m.Funds))
	for _, coin := range m.Funds {
		funds = append(funds, display.NewObject().
			Set("denom", display.String(coin.Denom)).
			Set("amount", display.Number(json.Number(coinAmount(coin.Amount)))))
	}

	return display.NewObject().
		Set(DisplayTypeNameKey, display.String(DisplayTypeMsgExecuteContract)).
		Set("sender", display.String(m.Sender)).
		Set("contract", display.String(m.Contract)).
		Set("msg", payload).
		Set("fundsList", funds), nil
}

func displayMsgAddMarkerRequest(msg Msg) (*display.Object, error) {
	m, ok := msg.(*markertypes.MsgAddMarkerRequest)
	if !ok {
		return nil, errorsmod.Wrapf(common.ErrUnsupportedType, "unexpected message %T", msg)
	}

	status, ok := m.Status.Name()
	if !ok {
		return nil, errorsmod.Wrapf(common.ErrUnsupportedType, "marker status %d", m.Status)
	}
	markerType, ok := m.MarkerType.Name()
	if !ok {
		return nil, errorsmod.Wrapf(common.ErrUnsupportedType, "marker type %d", m.MarkerType)
	}

	accessList := make(display.ObjectList, 0, len(m.AccessList))
	for _, grant := range m.AccessList {
		permissions := make([]string, 0, len(grant.Permissions))
		for _, access := range grant.Permissions {
			name, ok := access.Name()
			if !ok {
				return nil, errorsmod.Wrapf(common.ErrUnsupportedType, "access %d", access)
			}
			permissions = append(permissions, name)
		}
		accessList = append(accessList, display.NewObject().
			Set("address", display.String(grant.Address)).
			Set("permissionsList", display.Strings(permissions...)))
	}

	amount := display.NewObject().
		Set("denom", display.String(m.Amount.Denom)).
		Set("amount", display.String(coinAmount(m.Amount.Amount)))

	return display.NewObject().
		Set(DisplayTypeNameKey, display.String(DisplayTypeMsgAddMarkerRequest)).
		Set("amount", amount).
		Set("manager", display.String(m.Manager)).
		Set("fromAddress", display.String(m.FromAddress)).
		Set("status", display.String(status)).
		Set("markerType", display.String(markerType)).
		Set("accessListList", accessList).
		Set("supplyFixed", display.Bool(m.SupplyFixed)).
		Set("allowGovernanceControl", display.Bool(m.AllowGovernanceControl)).
		Set("allowForcedTransfer", display.Bool(m.AllowForcedTransfer)).
		Set("requiredAttributesList", display.Strings(m.RequiredAttributes...)), nil
}

// displayGeneric renders msg through its proto JSON form, using the lowerCamel JSON
// names, with a List suffix on repeated fields. Unset message fields are left out.
func displayGeneric(typeName string, msg Msg) (*display.Object, error) {
	protoMsg, ok := msg.(proto.Message)
	if !ok {
		return nil, errorsmod.Wrapf(common.ErrUnsupportedType, "message %T has no proto JSON form", msg)
	}

	bz, err := marshalProtoJSON(protoMsg)
	if err != nil {
		return nil, err
	}

	generic, err := display.ParseObject(bz)
	if err != nil {
		return nil, err
	}

	obj := display.NewObject().Set(DisplayTypeNameKey, display.String(typeName))
	suffixed := withListSuffix(generic)
	for _, key := range suffixed.Keys() {
		v, _ := suffixed.Get(key)
		obj.Set(key, v)
	}
	return obj, nil
}

// marshalProtoJSON mirrors codec.ProtoMarshalJSON with JSON field names instead of the
// original proto names, for the message and any nested Any values.
func marshalProtoJSON(msg proto.Message) ([]byte, error) {
	if err := codectypes.UnpackInterfaces(msg, interfaceRegistry); err != nil {
		return nil, errorsmod.Wrapf(common.ErrDecode, "failed to unpack nested messages: %s", err)
	}

	jm := &jsonpb.Marshaler{OrigName: false, EmitDefaults: true, AnyResolver: interfaceRegistry}
	if err := codectypes.UnpackInterfaces(msg, codectypes.ProtoJSONPacker{JSONPBMarshaler: jm}); err != nil {
		return nil, errorsmod.Wrapf(common.ErrDecode, "failed to convert nested messages of %T to JSON: %s", msg, err)
	}

	var buf bytes.Buffer
	if err := jm.Marshal(&buf, msg); err != nil {
		return nil, errorsmod.Wrapf(common.ErrDecode, "failed to convert %T to JSON: %s", msg, err)
	}
	return buf.Bytes(), nil
}

func withListSuffix(obj *display.Object) *display.Object {
	out := display.NewObject()
	for _, key := range obj.Keys() {
		v, _ := obj.Get(key)
		switch value := v.(type) {
		case display.Scalar:
			if !value.IsNull() {
				out.Set(key, value)
			}
		case *display.Object:
			out.Set(key, withListSuffix(value))
		case display.ObjectList:
			list := make(display.ObjectList, 0, len(value))
			for _, elem := range value {
				list = append(list, withListSuffix(elem))
			}
			out.Set(key+"List", list)
		case display.ScalarList, display.List:
			out.Set(key+"List", value)
		}
	}
	return out
}

func coinAmount(amount math.Int) string {
	if amount.IsNil() {
		return "0"
	}
	return amount.String()
}
