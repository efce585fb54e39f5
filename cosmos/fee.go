package cosmos

import (
	"sort"

	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/dan13ram/wallet-msg-service/common"
	"github.com/dan13ram/wallet-msg-service/models"
)

// AggregateCoins sums coins of the same denom and sorts the result ascending by denom.
// Denoms are compared as given, callers normalize case.
func AggregateCoins(coins []models.Coin) (sdk.Coins, error) {
	feeList := sdk.Coins{}
	for _, coin := range coins {
		if coin.Denom == "" {
			return nil, errorsmod.Wrap(common.ErrValidation, "coin denom is required")
		}

		amount, ok := math.NewIntFromString(coin.Amount)
		if !ok {
			return nil, errorsmod.Wrapf(common.ErrValidation, "invalid amount %q for denom %s", coin.Amount, coin.Denom)
		}
		if amount.IsNegative() {
			return nil, errorsmod.Wrapf(common.ErrValidation, "negative amount %s for denom %s", coin.Amount, coin.Denom)
		}

		found := false
		for i, agg := range feeList {
			if agg.Denom == coin.Denom {
				feeList[i] = sdk.Coin{Denom: agg.Denom, Amount: agg.Amount.Add(amount)}
				found = true
				break
			}
		}
		if !found {
			feeList = append(feeList, sdk.Coin{Denom: coin.Denom, Amount: amount})
		}
	}

	sort.SliceStable(feeList, func(i, j int) bool {
		return feeList[i].Denom < feeList[j].Denom
	})

	return feeList, nil
}
