// Package wasmtypes encodes the cosmwasm.wasm.v1 messages the wallet can sign.
package wasmtypes

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/dan13ram/wallet-msg-service/cosmos/wire"
)

const MsgExecuteContractTypeName = "cosmwasm.wasm.v1.MsgExecuteContract"

// MsgExecuteContract submits the given message data to a smart contract. Msg holds the
// raw JSON bytes sent to the contract.
type MsgExecuteContract struct {
	Sender   string
	Contract string
	Msg      []byte
	Funds    sdk.Coins
}

func (m *MsgExecuteContract) Marshal() ([]byte, error) {
	var b []byte
	b = wire.AppendString(b, 1, m.Sender)
	b = wire.AppendString(b, 2, m.Contract)
	b = wire.AppendBytes(b, 3, m.Msg)
	for _, coin := range m.Funds {
		var err error
		if b, err = wire.AppendCoin(b, 5, coin); err != nil {
			return nil, err
		}
	}
	return b, nil
}

func (m *MsgExecuteContract) Unmarshal(b []byte) error {
	fields, err := wire.Fields(b)
	if err != nil {
		return fmt.Errorf("failed to decode MsgExecuteContract: %w", err)
	}

	*m = MsgExecuteContract{}
	for _, f := range fields {
		switch f.Num {
		case 1:
			m.Sender, err = f.Str()
		case 2:
			m.Contract, err = f.Str()
		case 3:
			m.Msg = append([]byte{}, f.Bytes...)
		case 5:
			var coin sdk.Coin
			if coin, err = f.Coin(); err == nil {
				m.Funds = append(m.Funds, coin)
			}
		}
		if err != nil {
			return fmt.Errorf("failed to decode MsgExecuteContract: %w", err)
		}
	}
	return nil
}
