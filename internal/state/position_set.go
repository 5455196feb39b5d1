package state

import (
	"errors"
	"fmt"
)

var (
	// ErrDuplicateEntry means Add was called for an identifier already in the set.
	ErrDuplicateEntry = errors.New("duplicate entry")
	// ErrNotFound means Remove was called for an identifier not in the set.
	ErrNotFound = errors.New("entry not found")
	// ErrSlotOutOfRange means Reinsert was given a slot past the end of the set.
	ErrSlotOutOfRange = errors.New("slot out of range")
)

// PositionID identifies a position certificate.
type PositionID uint64

// PositionSet is an ordered set of position identifiers with O(1)
// add/remove/contains. Removal swaps the target with the last element, so
// enumeration order is not stable across removals.
//
// Invariant: index[id] == 0 iff id is absent; for every present id,
// ids[index[id]-1] == id.
type PositionSet struct {
	ids   []PositionID
	index map[PositionID]int // 1-based slot in ids
}

func NewPositionSet() *PositionSet {
	return &PositionSet{
		index: make(map[PositionID]int),
	}
}

// Add appends id to the set.
func (s *PositionSet) Add(id PositionID) error {
	if s.index[id] != 0 {
		return fmt.Errorf("add position %d: %w", id, ErrDuplicateEntry)
	}
	s.ids = append(s.ids, id)
	s.index[id] = len(s.ids)
	return nil
}

// Remove deletes id by moving the last element into its slot.
func (s *PositionSet) Remove(id PositionID) error {
	slot := s.index[id]
	if slot == 0 {
		return fmt.Errorf("remove position %d: %w", id, ErrNotFound)
	}

	last := len(s.ids) - 1
	if slot-1 != last {
		moved := s.ids[last]
		s.ids[slot-1] = moved
		s.index[moved] = slot
	}

	s.ids = s.ids[:last]
	delete(s.index, id)
	return nil
}

// Contains reports whether id is present.
func (s *PositionSet) Contains(id PositionID) bool {
	return s.index[id] != 0
}

// Len returns the number of members.
func (s *PositionSet) Len() int {
	return len(s.ids)
}

// IndexOf returns the 0-based slot of id in enumeration order.
func (s *PositionSet) IndexOf(id PositionID) (int, bool) {
	slot := s.index[id]
	return slot - 1, slot != 0
}

// Reinsert puts id back into slot i, undoing a Remove that emptied it: the
// member Remove moved into slot i returns to the end.
func (s *PositionSet) Reinsert(id PositionID, i int) error {
	if s.index[id] != 0 {
		return fmt.Errorf("reinsert position %d: %w", id, ErrDuplicateEntry)
	}
	if i < 0 || i > len(s.ids) {
		return fmt.Errorf("reinsert position %d at slot %d of %d: %w", id, i, len(s.ids), ErrSlotOutOfRange)
	}
	if i == len(s.ids) {
		return s.Add(id)
	}

	moved := s.ids[i]
	s.ids = append(s.ids, moved)
	s.index[moved] = len(s.ids)
	s.ids[i] = id
	s.index[id] = i + 1
	return nil
}

// All returns a copy of the members in current slot order.
func (s *PositionSet) All() []PositionID {
	out := make([]PositionID, len(s.ids))
	copy(out, s.ids)
	return out
}

// checkInvariant verifies the reverse index against the sequence.
func (s *PositionSet) checkInvariant() error {
	if len(s.index) != len(s.ids) {
		return fmt.Errorf("index size %d != sequence size %d", len(s.index), len(s.ids))
	}
	for i, id := range s.ids {
		if s.index[id] != i+1 {
			return fmt.Errorf("position %d at slot %d indexed as %d", id, i+1, s.index[id])
		}
	}
	return nil
}
