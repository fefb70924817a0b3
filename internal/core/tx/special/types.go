package special

import "fmt"

// Type is the special transaction type carried in the high 16 bits of a
// transaction's version field. It selects the payload decoder; the payload
// bytes never describe their own type.
type Type uint16

// Special transaction types from Dash Core (DIP2).
const (
	TypeClassic                  Type = 0 // TRANSACTION_NORMAL
	TypeProviderRegistration     Type = 1 // TRANSACTION_PROVIDER_REGISTER
	TypeProviderUpdateService    Type = 2 // TRANSACTION_PROVIDER_UPDATE_SERVICE
	TypeProviderUpdateRegistrar  Type = 3 // TRANSACTION_PROVIDER_UPDATE_REGISTRAR
	TypeProviderUpdateRevocation Type = 4 // TRANSACTION_PROVIDER_UPDATE_REVOKE
	TypeCoinbase                 Type = 5 // TRANSACTION_COINBASE
	TypeQuorumCommitment         Type = 6 // TRANSACTION_QUORUM_COMMITMENT
	TypeMnHfSignal               Type = 7 // TRANSACTION_MNHF_SIGNAL
	TypeAssetLock                Type = 8 // TRANSACTION_ASSET_LOCK
	TypeAssetUnlock              Type = 9 // TRANSACTION_ASSET_UNLOCK
)

// String returns the string name of the transaction type
func (t Type) String() string {
	switch t {
	case TypeClassic:
		return "Classic"
	case TypeProviderRegistration:
		return "ProviderRegistration"
	case TypeProviderUpdateService:
		return "ProviderUpdateService"
	case TypeProviderUpdateRegistrar:
		return "ProviderUpdateRegistrar"
	case TypeProviderUpdateRevocation:
		return "ProviderUpdateRevocation"
	case TypeCoinbase:
		return "Coinbase"
	case TypeQuorumCommitment:
		return "QuorumCommitment"
	case TypeMnHfSignal:
		return "MnHfSignal"
	case TypeAssetLock:
		return "AssetLock"
	case TypeAssetUnlock:
		return "AssetUnlock"
	default:
		return fmt.Sprintf("Unknown(%d)", uint16(t))
	}
}

// IsSpecial reports whether t carries an extra payload.
func (t Type) IsSpecial() bool {
	return t != TypeClassic
}
