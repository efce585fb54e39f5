package msgfeestypes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateTxFeesRequest_RoundTrip(t *testing.T) {
	req := &CalculateTxFeesRequest{
		TxBytes:          []byte{1, 2, 3},
		DefaultBaseDenom: "nhash",
		GasAdjustment:    1.25,
	}

	bz, err := req.Marshal()
	require.NoError(t, err)
	// fixed32 little endian encoding of 1.25
	assert.Equal(t, []byte{0x1d, 0x00, 0x00, 0xa0, 0x3f}, bz[len(bz)-5:])

	var decoded CalculateTxFeesRequest
	require.NoError(t, decoded.Unmarshal(bz))
	assert.Equal(t, req, &decoded)
}

func TestCalculateTxFeesRequest_WrongWireType(t *testing.T) {
	var decoded CalculateTxFeesRequest
	assert.Error(t, decoded.Unmarshal([]byte{0x18, 0x01}))
}
