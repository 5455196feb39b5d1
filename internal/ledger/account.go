package ledger

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

// AccountKey is the in-memory key for balance tracking: one balance per
// (holder, asset) pair.
type AccountKey struct {
	Holder common.Address
	Asset  common.Address
}

func NewAccountKey(holder, asset common.Address) AccountKey {
	return AccountKey{Holder: holder, Asset: asset}
}

// AccountPath returns the string representation for storage/logging
func (k AccountKey) AccountPath() string {
	return fmt.Sprintf("holder:%s:%s", k.Holder.Hex(), k.Asset.Hex())
}
