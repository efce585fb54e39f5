package cosmos

import (
	"encoding/base64"
	"encoding/json"
	"testing"

	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dan13ram/wallet-msg-service/common"
	"github.com/dan13ram/wallet-msg-service/cosmos/markertypes"
	"github.com/dan13ram/wallet-msg-service/cosmos/wasmtypes"
	"github.com/dan13ram/wallet-msg-service/models"
)

func encodeAny(t *testing.T, typeURL string, msg Msg) string {
	value, err := msg.Marshal()
	require.NoError(t, err)
	bz, err := (&codectypes.Any{TypeUrl: typeURL, Value: value}).Marshal()
	require.NoError(t, err)
	return base64.StdEncoding.EncodeToString(bz)
}

func marshalJSON(t *testing.T, v any) string {
	bz, err := json.Marshal(v)
	require.NoError(t, err)
	return string(bz)
}

func TestUnpackDisplayObject_ExecuteContract(t *testing.T) {
	msgAnyB64 := encodeAny(t, "cosmwasm.wasm.v1.MsgExecuteContract", &wasmtypes.MsgExecuteContract{
		Sender:   testFromAddress,
		Contract: testContractAddress,
		Msg:      []byte(`{"swap":{"amount":"5"}}`),
	})

	obj, err := UnpackDisplayObjectFromWalletMessage(msgAnyB64)
	require.NoError(t, err)

	assert.Equal(t, "MsgExecuteContractGeneric", obj.Text("typeName"))
	assert.Equal(t, testFromAddress, obj.Text("sender"))
	assert.Equal(t, testContractAddress, obj.Text("contract"))

	payload, ok := obj.Get("msg")
	require.True(t, ok)
	assert.JSONEq(t, `{"swap":{"amount":"5"}}`, marshalJSON(t, payload))

	funds, ok := obj.Get("fundsList")
	require.True(t, ok)
	assert.Empty(t, funds)
}

func TestUnpackDisplayObject_ExecuteContract_PayloadStructure(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		{name: "NullField", payload: `{"swap":{"recipient":null,"amount":"5"}}`},
		{name: "NestedArrays", payload: `{"route":[["a","b"],["c"]]}`},
		{name: "MixedArray", payload: `{"mixed":[1,{"a":1}]}`},
		{name: "NullDocument", payload: `null`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msgAnyB64 := encodeAny(t, "/"+wasmtypes.MsgExecuteContractTypeName, &wasmtypes.MsgExecuteContract{
				Sender:   testFromAddress,
				Contract: testContractAddress,
				Msg:      []byte(tt.payload),
			})

			obj, err := UnpackDisplayObjectFromWalletMessage(msgAnyB64)
			require.NoError(t, err)

			payload, ok := obj.Get("msg")
			require.True(t, ok)
			assert.Equal(t, tt.payload, marshalJSON(t, payload))
		})
	}
}

func TestUnpackDisplayObject_ExecuteContract_Funds(t *testing.T) {
	msgAnyB64, err := CreateAnyMessageBase64(ExecuteContractParams{
		Sender:   testFromAddress,
		Contract: testContractAddress,
		Msg:      map[string]any{"claim": map[string]any{}},
		Funds:    []models.Coin{nhash("5"), nhash("10")},
	})
	require.NoError(t, err)

	obj, err := UnpackDisplayObjectFromWalletMessage(msgAnyB64)
	require.NoError(t, err)

	funds, ok := obj.Get("fundsList")
	require.True(t, ok)
	assert.JSONEq(t, `[{"denom":"nhash","amount":15}]`, marshalJSON(t, funds))
}

func TestUnpackDisplayObject_ExecuteContract_InvalidMsg(t *testing.T) {
	msgAnyB64 := encodeAny(t, wasmtypes.MsgExecuteContractTypeName, &wasmtypes.MsgExecuteContract{
		Sender:   testFromAddress,
		Contract: testContractAddress,
		Msg:      []byte(`{"swap":`),
	})

	obj, err := UnpackDisplayObjectFromWalletMessage(msgAnyB64)
	assert.ErrorIs(t, err, common.ErrDecode)
	assert.Nil(t, obj)
}

func TestUnpackDisplayObject_Send(t *testing.T) {
	msgAnyB64, err := CreateAnyMessageBase64(SendParams{
		FromAddress: testFromAddress,
		ToAddress:   testToAddress,
		Amount:      []models.Coin{nhash("100"), nhash("50")},
	})
	require.NoError(t, err)

	obj, err := UnpackDisplayObjectFromWalletMessage(msgAnyB64)
	require.NoError(t, err)

	assert.Equal(t, []string{"typeName", "fromAddress", "toAddress", "amountList"}, obj.Keys())
	assert.Equal(t, "MsgSend", obj.Text("typeName"))
	assert.Equal(t, testFromAddress, obj.Text("fromAddress"))

	amount, ok := obj.Get("amountList")
	require.True(t, ok)
	assert.JSONEq(t, `[{"denom":"nhash","amount":"150"}]`, marshalJSON(t, amount))
}

func TestUnpackDisplayObject_Generic(t *testing.T) {
	msgAnyB64, err := CreateAnyMessageBase64(DelegateParams{
		DelegatorAddress: testFromAddress,
		ValidatorAddress: testValidatorAddress,
		Amount:           nhash("100"),
	})
	require.NoError(t, err)

	obj, err := UnpackDisplayObjectFromWalletMessage(msgAnyB64)
	require.NoError(t, err)

	assert.Equal(t, "MsgGeneric", obj.Text("typeName"))
	assert.Equal(t, testFromAddress, obj.Text("delegatorAddress"))
	assert.Equal(t, testValidatorAddress, obj.Text("validatorAddress"))

	amount, ok := obj.Section("amount")
	require.True(t, ok)
	assert.Equal(t, "nhash", amount.Text("denom"))
	assert.Equal(t, "100", amount.Text("amount"))
}

func TestUnpackDisplayObject_NestedAny(t *testing.T) {
	msgAnyB64, err := CreateAnyMessageBase64(GrantParams{
		Granter:    testFromAddress,
		Grantee:    testToAddress,
		MsgTypeURL: KindMsgVote.TypeURL(),
	})
	require.NoError(t, err)

	obj, err := UnpackDisplayObjectFromWalletMessage(msgAnyB64)
	require.NoError(t, err)

	grant, ok := obj.Section("grant")
	require.True(t, ok)
	authorization, ok := grant.Section("authorization")
	require.True(t, ok)
	assert.Equal(t, "/cosmos.authz.v1beta1.GenericAuthorization", authorization.Text("@type"))
	assert.Equal(t, KindMsgVote.TypeURL(), authorization.Text("msg"))
}

func TestUnpackDisplayObject_AddMarker(t *testing.T) {
	msgAnyB64, err := CreateAnyMessageBase64(testParams()[KindMsgAddMarkerRequest-1])
	require.NoError(t, err)

	obj, err := UnpackDisplayObjectFromWalletMessage(msgAnyB64)
	require.NoError(t, err)

	assert.Equal(t, "MsgAddMarkerRequest", obj.Text("typeName"))
	assert.Equal(t, "MARKER_STATUS_PROPOSED", obj.Text("status"))
	assert.Equal(t, "MARKER_TYPE_RESTRICTED", obj.Text("markerType"))
	assert.Equal(t, "true", obj.Text("supplyFixed"))

	accessList, ok := obj.Get("accessListList")
	require.True(t, ok)
	assert.JSONEq(t,
		`[{"address":"`+testFromAddress+`","permissionsList":["ACCESS_MINT","ACCESS_ADMIN"]}]`,
		marshalJSON(t, accessList),
	)
}

func TestUnpackDisplayObject_AddMarker_UnknownEnum(t *testing.T) {
	testMarkerCoin := sdk.NewInt64Coin("testcoin", 1)

	tests := []struct {
		name string
		msg  *markertypes.MsgAddMarkerRequest
	}{
		{
			name: "Status",
			msg:  &markertypes.MsgAddMarkerRequest{Amount: testMarkerCoin, FromAddress: testFromAddress, Status: 42},
		},
		{
			name: "MarkerType",
			msg:  &markertypes.MsgAddMarkerRequest{Amount: testMarkerCoin, FromAddress: testFromAddress, MarkerType: 42},
		},
		{
			name: "Access",
			msg: &markertypes.MsgAddMarkerRequest{
				Amount:      testMarkerCoin,
				FromAddress: testFromAddress,
				AccessList:  []markertypes.AccessGrant{{Address: testFromAddress, Permissions: []markertypes.Access{42}}},
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			obj, err := UnpackDisplayObjectFromWalletMessage(encodeAny(t, KindMsgAddMarkerRequest.TypeURL(), test.msg))
			assert.ErrorIs(t, err, common.ErrUnsupportedType)
			assert.Nil(t, obj)
		})
	}
}

func TestUnpackDisplayObject_Unsupported(t *testing.T) {
	bz, err := (&codectypes.Any{TypeUrl: "/cosmos.evidence.v1beta1.MsgSubmitEvidence", Value: []byte{}}).Marshal()
	require.NoError(t, err)

	obj, err := UnpackDisplayObjectFromWalletMessage(base64.StdEncoding.EncodeToString(bz))
	assert.ErrorIs(t, err, common.ErrUnsupportedType)
	assert.Nil(t, obj)
}

func TestUnpackDisplayObject_InvalidInput(t *testing.T) {
	obj, err := UnpackDisplayObjectFromWalletMessage("%%%")
	assert.ErrorIs(t, err, common.ErrDecode)
	assert.Nil(t, obj)
}

func TestUnpackDisplayObject_AllKinds(t *testing.T) {
	for _, params := range testParams() {
		t.Run(params.Kind().String(), func(t *testing.T) {
			msgAnyB64, err := CreateAnyMessageBase64(params)
			require.NoError(t, err)

			obj, err := UnpackDisplayObjectFromWalletMessage(msgAnyB64)
			require.NoError(t, err)
			assert.NotEmpty(t, obj.Text("typeName"))

			formatted := FormatDisplayObject(obj)
			assert.NotZero(t, formatted.Len())
		})
	}
}

func TestFormatDisplayObject_Send(t *testing.T) {
	msgAnyB64, err := CreateAnyMessageBase64(SendParams{
		FromAddress: testFromAddress,
		ToAddress:   testToAddress,
		Amount:      []models.Coin{nhash("1500000000"), {Denom: "usd", Amount: "2500"}},
	})
	require.NoError(t, err)

	obj, err := UnpackDisplayObjectFromWalletMessage(msgAnyB64)
	require.NoError(t, err)

	formatted := FormatDisplayObject(obj)
	assert.Equal(t, []string{"typeName", "fromAddress", "toAddress", "amountList 1", "amountList 2"}, formatted.Keys())

	first, ok := formatted.Section("amountList 1")
	require.True(t, ok)
	assert.Equal(t, "nhash", first.Text("denom"))
	assert.Equal(t, "1,500,000,000", first.Text("amount"))

	second, ok := formatted.Section("amountList 2")
	require.True(t, ok)
	assert.Equal(t, "usd", second.Text("denom"))
	assert.Equal(t, "2,500", second.Text("amount"))
}

func TestFormatDisplayObject_Generic(t *testing.T) {
	msgAnyB64, err := CreateAnyMessageBase64(DelegateParams{
		DelegatorAddress: testFromAddress,
		ValidatorAddress: testValidatorAddress,
		Amount:           nhash("1500000000"),
	})
	require.NoError(t, err)

	obj, err := UnpackDisplayObjectFromWalletMessage(msgAnyB64)
	require.NoError(t, err)

	formatted := FormatDisplayObject(obj)
	assert.Equal(t, "1.5 hash", formatted.Text("amount"))
	assert.Equal(t, testFromAddress, formatted.Text("delegatorAddress"))
}

func TestUnpackDisplayObject_JSONFieldNames(t *testing.T) {
	msgAnyB64, err := CreateAnyMessageBase64(testParams()[KindMsgCreateValidator-1])
	require.NoError(t, err)

	obj, err := UnpackDisplayObjectFromWalletMessage(msgAnyB64)
	require.NoError(t, err)

	assert.Equal(t, "1", obj.Text("minSelfDelegation"))
	assert.Equal(t, testValidatorAddress, obj.Text("validatorAddress"))

	commission, ok := obj.Section("commission")
	require.True(t, ok)
	assert.Contains(t, commission.Keys(), "maxChangeRate")

	for _, key := range obj.Keys() {
		assert.NotContains(t, key, "_")
	}
}

func TestUnpackDisplayObject_UnsetFieldsOmitted(t *testing.T) {
	msgAnyB64, err := CreateAnyMessageBase64(GrantParams{
		Granter:    testFromAddress,
		Grantee:    testToAddress,
		MsgTypeURL: KindMsgVote.TypeURL(),
	})
	require.NoError(t, err)

	obj, err := UnpackDisplayObjectFromWalletMessage(msgAnyB64)
	require.NoError(t, err)

	grant, ok := obj.Section("grant")
	require.True(t, ok)
	_, ok = grant.Get("expiration")
	assert.False(t, ok)
}

func TestDisplayObject_UnknownKind(t *testing.T) {
	obj, err := DisplayObject(Kind(0), nil)
	assert.ErrorIs(t, err, common.ErrUnsupportedType)
	assert.Nil(t, obj)
}
