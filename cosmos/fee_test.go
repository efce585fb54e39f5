package cosmos

import (
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/assert"

	"github.com/dan13ram/wallet-msg-service/common"
	"github.com/dan13ram/wallet-msg-service/models"
)

func TestAggregateCoins(t *testing.T) {
	tests := []struct {
		name     string
		coins    []models.Coin
		expected sdk.Coins
	}{
		{
			name:     "Empty",
			coins:    nil,
			expected: sdk.Coins{},
		},
		{
			name:     "Single",
			coins:    []models.Coin{{Denom: "nhash", Amount: "100"}},
			expected: sdk.Coins{sdk.Coin{Denom: "nhash", Amount: math.NewInt(100)}},
		},
		{
			name: "SameDenom",
			coins: []models.Coin{
				{Denom: "nhash", Amount: "100"},
				{Denom: "nhash", Amount: "50"},
			},
			expected: sdk.Coins{sdk.Coin{Denom: "nhash", Amount: math.NewInt(150)}},
		},
		{
			name: "SortedByDenom",
			coins: []models.Coin{
				{Denom: "usd", Amount: "1"},
				{Denom: "nhash", Amount: "2"},
				{Denom: "atom", Amount: "3"},
				{Denom: "nhash", Amount: "4"},
			},
			expected: sdk.Coins{
				sdk.Coin{Denom: "atom", Amount: math.NewInt(3)},
				sdk.Coin{Denom: "nhash", Amount: math.NewInt(6)},
				sdk.Coin{Denom: "usd", Amount: math.NewInt(1)},
			},
		},
		{
			name: "OrdinalCompare",
			coins: []models.Coin{
				{Denom: "b", Amount: "1"},
				{Denom: "B", Amount: "1"},
				{Denom: "a", Amount: "1"},
			},
			expected: sdk.Coins{
				sdk.Coin{Denom: "B", Amount: math.NewInt(1)},
				sdk.Coin{Denom: "a", Amount: math.NewInt(1)},
				sdk.Coin{Denom: "b", Amount: math.NewInt(1)},
			},
		},
		{
			name: "ArbitraryPrecision",
			coins: []models.Coin{
				{Denom: "nhash", Amount: "18446744073709551615"},
				{Denom: "nhash", Amount: "18446744073709551615"},
			},
			expected: sdk.Coins{sdk.Coin{Denom: "nhash", Amount: math.NewIntFromUint64(18446744073709551615).MulRaw(2)}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := AggregateCoins(tt.coins)
			assert.NoError(t, err)
			assert.Equal(t, len(tt.expected), len(result))
			for i := range tt.expected {
				assert.Equal(t, tt.expected[i].Denom, result[i].Denom)
				assert.True(t, tt.expected[i].Amount.Equal(result[i].Amount), "amount %s != %s", tt.expected[i].Amount, result[i].Amount)
			}
		})
	}
}

func TestAggregateCoins_OrderIndependent(t *testing.T) {
	coins := []models.Coin{
		{Denom: "usd", Amount: "7"},
		{Denom: "nhash", Amount: "100"},
		{Denom: "usd", Amount: "3"},
		{Denom: "nhash", Amount: "50"},
	}
	reversed := make([]models.Coin, len(coins))
	for i, c := range coins {
		reversed[len(coins)-1-i] = c
	}

	a, err := AggregateCoins(coins)
	assert.NoError(t, err)
	b, err := AggregateCoins(reversed)
	assert.NoError(t, err)

	assert.Equal(t, a.String(), b.String())
	assert.Equal(t, "150nhash,10usd", a.String())
}

func TestAggregateCoins_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		coins []models.Coin
	}{
		{name: "NotANumber", coins: []models.Coin{{Denom: "nhash", Amount: "abc"}}},
		{name: "Decimal", coins: []models.Coin{{Denom: "nhash", Amount: "1.5"}}},
		{name: "Empty", coins: []models.Coin{{Denom: "nhash", Amount: ""}}},
		{name: "Negative", coins: []models.Coin{{Denom: "nhash", Amount: "-1"}}},
		{name: "NoDenom", coins: []models.Coin{{Denom: "", Amount: "1"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := AggregateCoins(tt.coins)
			assert.ErrorIs(t, err, common.ErrValidation)
			assert.Nil(t, result)
		})
	}
}
