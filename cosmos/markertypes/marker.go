// Package markertypes encodes the provenance.marker.v1 add-marker message and its enums.
package markertypes

type MarkerStatus int32

const (
	StatusUnspecified MarkerStatus = 0
	StatusProposed    MarkerStatus = 1
	StatusFinalized   MarkerStatus = 2
	StatusActive      MarkerStatus = 3
	StatusCancelled   MarkerStatus = 4
	StatusDestroyed   MarkerStatus = 5
)

var markerStatusNames = map[MarkerStatus]string{
	StatusUnspecified: "MARKER_STATUS_UNSPECIFIED",
	StatusProposed:    "MARKER_STATUS_PROPOSED",
	StatusFinalized:   "MARKER_STATUS_FINALIZED",
	StatusActive:      "MARKER_STATUS_ACTIVE",
	StatusCancelled:   "MARKER_STATUS_CANCELLED",
	StatusDestroyed:   "MARKER_STATUS_DESTROYED",
}

type MarkerType int32

const (
	TypeUnspecified MarkerType = 0
	TypeCoin        MarkerType = 1
	TypeRestricted  MarkerType = 2
)

var markerTypeNames = map[MarkerType]string{
	TypeUnspecified: "MARKER_TYPE_UNSPECIFIED",
	TypeCoin:        "MARKER_TYPE_COIN",
	TypeRestricted:  "MARKER_TYPE_RESTRICTED",
}

type Access int32

const (
	AccessUnspecified   Access = 0
	AccessMint          Access = 1
	AccessBurn          Access = 2
	AccessDeposit       Access = 3
	AccessWithdraw      Access = 4
	AccessDelete        Access = 5
	AccessAdmin         Access = 6
	AccessTransfer      Access = 7
	AccessForceTransfer Access = 8
)

var accessNames = map[Access]string{
	AccessUnspecified:   "ACCESS_UNSPECIFIED",
	AccessMint:          "ACCESS_MINT",
	AccessBurn:          "ACCESS_BURN",
	AccessDeposit:       "ACCESS_DEPOSIT",
	AccessWithdraw:      "ACCESS_WITHDRAW",
	AccessDelete:        "ACCESS_DELETE",
	AccessAdmin:         "ACCESS_ADMIN",
	AccessTransfer:      "ACCESS_TRANSFER",
	AccessForceTransfer: "ACCESS_FORCE_TRANSFER",
}

// Name returns the symbolic name of s, false if s is not a defined status.
func (s MarkerStatus) Name() (string, bool) {
	name, ok := markerStatusNames[s]
	return name, ok
}

func (t MarkerType) Name() (string, bool) {
	name, ok := markerTypeNames[t]
	return name, ok
}

func (a Access) Name() (string, bool) {
	name, ok := accessNames[a]
	return name, ok
}

func ParseMarkerStatus(name string) (MarkerStatus, bool) {
	for v, n := range markerStatusNames {
		if n == name {
			return v, true
		}
	}
	return 0, false
}

func ParseMarkerType(name string) (MarkerType, bool) {
	for v, n := range markerTypeNames {
		if n == name {
			return v, true
		}
	}
	return 0, false
}

func ParseAccess(name string) (Access, bool) {
	for v, n := range accessNames {
		if n == name {
			return v, true
		}
	}
	return 0, false
}
