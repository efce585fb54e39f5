// Package msgfeestypes encodes the provenance.msgfees.v1 fee calculation query.
package msgfeestypes

import (
	"fmt"
	"math"

	"google.golang.org/protobuf/encoding/protowire"

	"github.com/dan13ram/wallet-msg-service/cosmos/wire"
)

const CalculateTxFeesRequestTypeName = "provenance.msgfees.v1.CalculateTxFeesRequest"

// CalculateTxFeesRequest asks a node to simulate TxBytes and price the result.
type CalculateTxFeesRequest struct {
	TxBytes          []byte
	DefaultBaseDenom string
	GasAdjustment    float32
}

func (m *CalculateTxFeesRequest) Marshal() ([]byte, error) {
	var b []byte
	b = wire.AppendBytes(b, 1, m.TxBytes)
	b = wire.AppendString(b, 2, m.DefaultBaseDenom)
	if m.GasAdjustment != 0 {
		b = protowire.AppendTag(b, 3, protowire.Fixed32Type)
		b = protowire.AppendFixed32(b, math.Float32bits(m.GasAdjustment))
	}
	return b, nil
}

func (m *CalculateTxFeesRequest) Unmarshal(b []byte) error {
	fields, err := wire.Fields(b)
	if err != nil {
		return fmt.Errorf("failed to decode CalculateTxFeesRequest: %w", err)
	}

	*m = CalculateTxFeesRequest{}
	for _, f := range fields {
		switch f.Num {
		case 1:
			m.TxBytes = append([]byte{}, f.Bytes...)
		case 2:
			m.DefaultBaseDenom = string(f.Bytes)
		case 3:
			if f.Type != protowire.Fixed32Type {
				return fmt.Errorf("failed to decode CalculateTxFeesRequest: gas_adjustment wire type %d", f.Type)
			}
			m.GasAdjustment = math.Float32frombits(uint32(f.Value))
		}
	}
	return nil
}
