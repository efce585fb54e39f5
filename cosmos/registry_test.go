package cosmos

import (
	"bytes"
	"testing"

	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	banktypes "github.com/cosmos/cosmos-sdk/x/bank/types"
	"github.com/cosmos/gogoproto/proto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dan13ram/wallet-msg-service/common"
	"github.com/dan13ram/wallet-msg-service/models"
)

var (
	testFromAddress      = sdk.MustBech32ifyAddressBytes("pb", bytes.Repeat([]byte{1}, 20))
	testToAddress        = sdk.MustBech32ifyAddressBytes("pb", bytes.Repeat([]byte{2}, 20))
	testValidatorAddress = sdk.MustBech32ifyAddressBytes("pbvaloper", bytes.Repeat([]byte{3}, 20))
	testOtherValidator   = sdk.MustBech32ifyAddressBytes("pbvaloper", bytes.Repeat([]byte{4}, 20))
	testContractAddress  = sdk.MustBech32ifyAddressBytes("pb", bytes.Repeat([]byte{5}, 32))
)

func nhash(amount string) models.Coin {
	return models.Coin{Denom: "nhash", Amount: amount}
}

// testParams holds one valid Params value per kind.
func testParams() []Params {
	return []Params{
		SendParams{FromAddress: testFromAddress, ToAddress: testToAddress, Amount: []models.Coin{nhash("100"), nhash("50")}},
		ExecuteContractParams{Sender: testFromAddress, Contract: testContractAddress, Msg: map[string]any{"swap": map[string]string{"amount": "5"}}, Funds: []models.Coin{nhash("5")}},
		GrantParams{Granter: testFromAddress, Grantee: testToAddress, MsgTypeURL: KindMsgDelegate.TypeURL()},
		SetWithdrawAddressParams{DelegatorAddress: testFromAddress, WithdrawAddress: testToAddress},
		WithdrawDelegatorRewardParams{DelegatorAddress: testFromAddress, ValidatorAddress: testValidatorAddress},
		WithdrawValidatorCommissionParams{ValidatorAddress: testValidatorAddress},
		FundCommunityPoolParams{Depositor: testFromAddress, Amount: []models.Coin{nhash("10")}},
		SubmitProposalParams{Proposer: testFromAddress, Title: "Upgrade", Description: "Upgrade the chain", InitialDeposit: []models.Coin{nhash("1000")}},
		VoteParams{ProposalID: 7, Voter: testFromAddress, Option: "VOTE_OPTION_YES"},
		VoteWeightedParams{ProposalID: 7, Voter: testFromAddress, Options: []WeightedVoteOption{
			{Option: "VOTE_OPTION_YES", Weight: "0.7"},
			{Option: "VOTE_OPTION_ABSTAIN", Weight: "0.3"},
		}},
		DepositParams{ProposalID: 7, Depositor: testFromAddress, Amount: []models.Coin{nhash("500")}},
		UnjailParams{ValidatorAddress: testValidatorAddress},
		CreateValidatorParams{
			Description:             ValidatorDescription{Moniker: "node-1", Website: "https://example.com"},
			CommissionRate:          "0.1",
			CommissionMaxRate:       "0.2",
			CommissionMaxChangeRate: "0.01",
			MinSelfDelegation:       "1",
			DelegatorAddress:        testFromAddress,
			ValidatorAddress:        testValidatorAddress,
			ConsensusPubKey:         bytes.Repeat([]byte{9}, 32),
			Value:                   nhash("1000000"),
		},
		EditValidatorParams{Description: ValidatorDescription{Moniker: "node-2"}, ValidatorAddress: testValidatorAddress, CommissionRate: "0.15"},
		DelegateParams{DelegatorAddress: testFromAddress, ValidatorAddress: testValidatorAddress, Amount: nhash("100")},
		BeginRedelegateParams{DelegatorAddress: testFromAddress, ValidatorSrcAddress: testValidatorAddress, ValidatorDstAddress: testOtherValidator, Amount: nhash("100")},
		UndelegateParams{DelegatorAddress: testFromAddress, ValidatorAddress: testValidatorAddress, Amount: nhash("100")},
		CreateVestingAccountParams{FromAddress: testFromAddress, ToAddress: testToAddress, Amount: []models.Coin{nhash("100")}, EndTime: 1700000000},
		AddMarkerParams{
			Amount:      models.Coin{Denom: "testcoin", Amount: "1000"},
			Manager:     testFromAddress,
			FromAddress: testFromAddress,
			Status:      "MARKER_STATUS_PROPOSED",
			MarkerType:  "MARKER_TYPE_RESTRICTED",
			AccessList: []AccessGrantParams{
				{Address: testFromAddress, Permissions: []string{"ACCESS_MINT", "ACCESS_ADMIN"}},
			},
			SupplyFixed:            true,
			AllowGovernanceControl: true,
			RequiredAttributes:     []string{"kyc.pb"},
		},
	}
}

func TestKinds(t *testing.T) {
	kinds := Kinds()
	assert.Len(t, kinds, len(registry))

	for _, kind := range kinds {
		entry, ok := registry[kind]
		require.True(t, ok, kind)
		assert.NotEmpty(t, entry.name)
		assert.NotEmpty(t, entry.typeName)
		assert.NotNil(t, entry.newMsg)

		byName, err := KindFromName(kind.String())
		assert.NoError(t, err)
		assert.Equal(t, kind, byName)

		byTypeURL, err := KindFromTypeURL(kind.TypeURL())
		assert.NoError(t, err)
		assert.Equal(t, kind, byTypeURL)

		byTypeName, err := KindFromTypeURL(kind.TypeName())
		assert.NoError(t, err)
		assert.Equal(t, kind, byTypeName)
	}
}

func TestKinds_MatchProtoNames(t *testing.T) {
	for _, kind := range Kinds() {
		msg, ok := registry[kind].newMsg().(proto.Message)
		if !ok {
			continue
		}
		assert.Equal(t, sdk.MsgTypeURL(msg), kind.TypeURL(), kind)
	}
}

func TestKinds_EveryKindHasParams(t *testing.T) {
	covered := map[Kind]bool{}
	for _, params := range testParams() {
		covered[params.Kind()] = true
	}
	for _, kind := range Kinds() {
		assert.True(t, covered[kind], "no params for %s", kind)
	}
}

func TestKind_String_Unknown(t *testing.T) {
	assert.Equal(t, "Unknown", Kind(0).String())
	assert.Equal(t, "MsgSend", KindMsgSend.String())
	assert.Equal(t, "/cosmos.bank.v1beta1.MsgSend", KindMsgSend.TypeURL())
}

func TestPackName(t *testing.T) {
	msgAny, err := PackName("MsgDelegate", []byte{1, 2, 3})
	assert.NoError(t, err)
	assert.Equal(t, "/cosmos.staking.v1beta1.MsgDelegate", msgAny.TypeUrl)
	assert.Equal(t, []byte{1, 2, 3}, msgAny.Value)
}

func TestPackName_Unsupported(t *testing.T) {
	msgAny, err := PackName("MsgVerifyInvariant", nil)
	assert.ErrorIs(t, err, common.ErrUnsupportedType)
	assert.Nil(t, msgAny)
}

func TestPack_Unsupported(t *testing.T) {
	msgAny, err := Pack(Kind(100), nil)
	assert.ErrorIs(t, err, common.ErrUnsupportedType)
	assert.Nil(t, msgAny)
}

func TestPackUnpack_RoundTrip(t *testing.T) {
	for _, params := range testParams() {
		t.Run(params.Kind().String(), func(t *testing.T) {
			kind, msg, err := BuildMessage(params)
			require.NoError(t, err)

			expected, err := msg.Marshal()
			require.NoError(t, err)

			msgAny, err := PackMsg(kind, msg)
			require.NoError(t, err)
			assert.Equal(t, kind.TypeURL(), msgAny.TypeUrl)

			unpackedKind, unpacked, err := Unpack(msgAny)
			require.NoError(t, err)
			assert.Equal(t, kind, unpackedKind)

			actual, err := unpacked.Marshal()
			require.NoError(t, err)
			assert.Equal(t, expected, actual)
		})
	}
}

func TestUnpack_UnsupportedType(t *testing.T) {
	kind, msg, err := Unpack(&codectypes.Any{TypeUrl: "/cosmos.crisis.v1beta1.MsgVerifyInvariant", Value: []byte{}})
	assert.ErrorIs(t, err, common.ErrUnsupportedType)
	assert.Equal(t, Kind(0), kind)
	assert.Nil(t, msg)
}

func TestKindFromTypeURL_Prefixed(t *testing.T) {
	for _, typeURL := range []string{
		"evil.example/cosmos.bank.v1beta1.MsgSend",
		"type.googleapis.com/cosmos.bank.v1beta1.MsgSend",
		"//cosmos.bank.v1beta1.MsgSend",
	} {
		_, err := KindFromTypeURL(typeURL)
		assert.ErrorIs(t, err, common.ErrUnsupportedType, typeURL)
	}

	value, err := (&banktypes.MsgSend{FromAddress: testFromAddress}).Marshal()
	require.NoError(t, err)
	_, msg, err := Unpack(&codectypes.Any{TypeUrl: "evil.example/cosmos.bank.v1beta1.MsgSend", Value: value})
	assert.ErrorIs(t, err, common.ErrUnsupportedType)
	assert.Nil(t, msg)
}

func TestUnpack_InvalidValue(t *testing.T) {
	kind, msg, err := Unpack(&codectypes.Any{TypeUrl: KindMsgSend.TypeURL(), Value: []byte{0xff}})
	assert.ErrorIs(t, err, common.ErrDecode)
	assert.Equal(t, Kind(0), kind)
	assert.Nil(t, msg)
}

func TestUnpack_Nil(t *testing.T) {
	_, _, err := Unpack(nil)
	assert.ErrorIs(t, err, common.ErrDecode)
}
