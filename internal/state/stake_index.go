package state

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/ethereum/go-ethereum/common"
)

// StakeIndex tracks which positions each owner has staked.
// Not thread-safe. Only accessed from the single-threaded gauge core.
type StakeIndex struct {
	sets map[common.Address]*PositionSet
}

func NewStakeIndex() *StakeIndex {
	return &StakeIndex{
		sets: make(map[common.Address]*PositionSet),
	}
}

// Add records id as staked by owner.
func (si *StakeIndex) Add(owner common.Address, id PositionID) error {
	set, ok := si.sets[owner]
	if !ok {
		set = NewPositionSet()
		si.sets[owner] = set
	}
	if err := set.Add(id); err != nil {
		if set.Len() == 0 {
			delete(si.sets, owner)
		}
		return err
	}
	return nil
}

// Remove drops id from owner's set. Empty sets are discarded.
func (si *StakeIndex) Remove(owner common.Address, id PositionID) error {
	set, ok := si.sets[owner]
	if !ok {
		return fmt.Errorf("remove position %d for %s: %w", id, owner.Hex(), ErrNotFound)
	}
	if err := set.Remove(id); err != nil {
		return err
	}
	if set.Len() == 0 {
		delete(si.sets, owner)
	}
	return nil
}

// IndexOf returns the slot of id in owner's enumeration order.
func (si *StakeIndex) IndexOf(owner common.Address, id PositionID) (int, bool) {
	set, ok := si.sets[owner]
	if !ok {
		return 0, false
	}
	return set.IndexOf(id)
}

// Reinsert undoes Remove, putting id back into the slot it was removed from.
func (si *StakeIndex) Reinsert(owner common.Address, id PositionID, slot int) error {
	set, ok := si.sets[owner]
	if !ok {
		set = NewPositionSet()
		si.sets[owner] = set
	}
	if err := set.Reinsert(id, slot); err != nil {
		if set.Len() == 0 {
			delete(si.sets, owner)
		}
		return err
	}
	return nil
}

func (si *StakeIndex) Contains(owner common.Address, id PositionID) bool {
	set, ok := si.sets[owner]
	return ok && set.Contains(id)
}

func (si *StakeIndex) Count(owner common.Address) int {
	if set, ok := si.sets[owner]; ok {
		return set.Len()
	}
	return 0
}

// Positions returns a copy of owner's staked identifiers.
func (si *StakeIndex) Positions(owner common.Address) []PositionID {
	if set, ok := si.sets[owner]; ok {
		return set.All()
	}
	return []PositionID{}
}

// Owners returns every owner with at least one stake, sorted by address bytes
// so that iteration is deterministic.
func (si *StakeIndex) Owners() []common.Address {
	owners := make([]common.Address, 0, len(si.sets))
	for owner := range si.sets {
		owners = append(owners, owner)
	}
	sort.Slice(owners, func(i, j int) bool {
		return bytes.Compare(owners[i][:], owners[j][:]) < 0
	})
	return owners
}

// Total returns the number of staked positions across all owners.
func (si *StakeIndex) Total() int {
	n := 0
	for _, set := range si.sets {
		n += set.Len()
	}
	return n
}

// Validate checks the reverse-index invariant of every owner's set.
func (si *StakeIndex) Validate() error {
	for _, owner := range si.Owners() {
		if err := si.sets[owner].checkInvariant(); err != nil {
			return err
		}
	}
	return nil
}
