package markertypes

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/dan13ram/wallet-msg-service/cosmos/wire"
)

const MsgAddMarkerRequestTypeName = "provenance.marker.v1.MsgAddMarkerRequest"

// AccessGrant is a set of permissions for one address on a marker.
type AccessGrant struct {
	Address     string
	Permissions []Access
}

// MsgAddMarkerRequest creates a new marker for the Amount denom.
type MsgAddMarkerRequest struct {
	Amount                 sdk.Coin
	Manager                string
	FromAddress            string
	Status                 MarkerStatus
	MarkerType             MarkerType
	AccessList             []AccessGrant
	SupplyFixed            bool
	AllowGovernanceControl bool
	AllowForcedTransfer    bool
	RequiredAttributes     []string
}

func (g *AccessGrant) Marshal() ([]byte, error) {
	var b []byte
	b = wire.AppendString(b, 1, g.Address)
	perms := make([]uint64, 0, len(g.Permissions))
	for _, p := range g.Permissions {
		perms = append(perms, uint64(p))
	}
	b = wire.AppendPackedVarints(b, 2, perms)
	return b, nil
}

func (g *AccessGrant) Unmarshal(b []byte) error {
	fields, err := wire.Fields(b)
	if err != nil {
		return err
	}

	*g = AccessGrant{}
	for _, f := range fields {
		switch f.Num {
		case 1:
			if g.Address, err = f.Str(); err != nil {
				return err
			}
		case 2:
			vs, err := f.Varints()
			if err != nil {
				return err
			}
			for _, v := range vs {
				g.Permissions = append(g.Permissions, Access(int32(v)))
			}
		}
	}
	return nil
}

func (m *MsgAddMarkerRequest) Marshal() ([]byte, error) {
	b, err := wire.AppendCoin(nil, 1, m.Amount)
	if err != nil {
		return nil, err
	}
	b = wire.AppendString(b, 3, m.Manager)
	b = wire.AppendString(b, 4, m.FromAddress)
	b = wire.AppendVarint(b, 5, uint64(m.Status))
	b = wire.AppendVarint(b, 6, uint64(m.MarkerType))
	for _, grant := range m.AccessList {
		bz, err := grant.Marshal()
		if err != nil {
			return nil, err
		}
		b = wire.AppendMessage(b, 7, bz)
	}
	b = wire.AppendBool(b, 8, m.SupplyFixed)
	b = wire.AppendBool(b, 9, m.AllowGovernanceControl)
	b = wire.AppendBool(b, 10, m.AllowForcedTransfer)
	for _, attr := range m.RequiredAttributes {
		b = wire.AppendString(b, 11, attr)
	}
	return b, nil
}

func (m *MsgAddMarkerRequest) Unmarshal(b []byte) error {
	fields, err := wire.Fields(b)
	if err != nil {
		return fmt.Errorf("failed to decode MsgAddMarkerRequest: %w", err)
	}

	*m = MsgAddMarkerRequest{}
	for _, f := range fields {
		switch f.Num {
		case 1:
			m.Amount, err = f.Coin()
		case 3:
			m.Manager, err = f.Str()
		case 4:
			m.FromAddress, err = f.Str()
		case 5:
			m.Status = MarkerStatus(int32(f.Value))
		case 6:
			m.MarkerType = MarkerType(int32(f.Value))
		case 7:
			var grant AccessGrant
			if err = grant.Unmarshal(f.Bytes); err == nil {
				m.AccessList = append(m.AccessList, grant)
			}
		case 8:
			m.SupplyFixed = f.Value != 0
		case 9:
			m.AllowGovernanceControl = f.Value != 0
		case 10:
			m.AllowForcedTransfer = f.Value != 0
		case 11:
			var attr string
			if attr, err = f.Str(); err == nil {
				m.RequiredAttributes = append(m.RequiredAttributes, attr)
			}
		}
		if err != nil {
			return fmt.Errorf("failed to decode MsgAddMarkerRequest: %w", err)
		}
	}
	return nil
}
