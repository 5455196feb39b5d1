package ledger

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
	"github.com/holiman/uint256"
)

// JournalType represents the purpose of a journal entry
type JournalType int32

const (
	JournalTypeMint JournalType = iota
	JournalTypeTransfer
)

func (jt JournalType) String() string {
	switch jt {
	case JournalTypeMint:
		return "mint"
	case JournalTypeTransfer:
		return "transfer"
	default:
		return "unknown"
	}
}

// Journal is a single balanced movement of one asset between two holders.
// Mints have a zero From holder and increase supply instead.
type Journal struct {
	JournalID   uuid.UUID
	BatchID     uuid.UUID
	Sequence    int64
	From        AccountKey   // Balance decreases (ignored for mints)
	To          AccountKey   // Balance increases
	Asset       common.Address
	Amount      *uint256.Int // ALWAYS positive
	JournalType JournalType
}

// Batch represents a set of journal entries applied atomically
type Batch struct {
	BatchID  uuid.UUID
	Sequence int64
	Journals []Journal
}

// Validate ensures the batch is well-formed.
func (b *Batch) Validate() error {
	if len(b.Journals) == 0 {
		return fmt.Errorf("batch %s is empty", b.BatchID)
	}

	for _, j := range b.Journals {
		if j.Amount == nil || j.Amount.IsZero() {
			return fmt.Errorf("journal %s has non-positive amount", j.JournalID)
		}

		if j.BatchID != b.BatchID {
			return fmt.Errorf("journal %s has mismatched batch_id", j.JournalID)
		}

		if j.To.Asset != j.Asset || (j.JournalType == JournalTypeTransfer && j.From.Asset != j.Asset) {
			return fmt.Errorf("journal %s mixes assets", j.JournalID)
		}

		if j.JournalType == JournalTypeTransfer && j.From == j.To {
			return fmt.Errorf("journal %s has same source and destination account", j.JournalID)
		}
	}

	return nil
}
