package state

import (
	"errors"
	"math/rand"
	"sort"
	"testing"

	"github.com/ethereum/go-ethereum/common"
)

func sortedIDs(ids []PositionID) []PositionID {
	out := append([]PositionID(nil), ids...)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func TestPositionSet_AddContainsLen(t *testing.T) {
	s := NewPositionSet()
	for _, id := range []PositionID{7, 3, 11} {
		if err := s.Add(id); err != nil {
			t.Fatalf("Add(%d): %v", id, err)
		}
	}

	if s.Len() != 3 {
		t.Errorf("len: got %d, want 3", s.Len())
	}
	if !s.Contains(3) || s.Contains(4) {
		t.Error("contains mismatch")
	}
	if all := s.All(); all[0] != 7 || all[2] != 11 {
		t.Errorf("insertion order not kept: %v", s.All())
	}
}

func TestPositionSet_AddDuplicate(t *testing.T) {
	s := NewPositionSet()
	_ = s.Add(1)
	err := s.Add(1)
	if !errors.Is(err, ErrDuplicateEntry) {
		t.Fatalf("expected ErrDuplicateEntry, got %v", err)
	}
	if s.Len() != 1 {
		t.Errorf("failed add mutated set: len=%d", s.Len())
	}
}

func TestPositionSet_RemoveMissing(t *testing.T) {
	s := NewPositionSet()
	if err := s.Remove(42); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPositionSet_RemoveMiddleSwapsLast(t *testing.T) {
	s := NewPositionSet()
	for _, id := range []PositionID{1, 2, 3, 4} {
		_ = s.Add(id)
	}

	if err := s.Remove(2); err != nil {
		t.Fatalf("Remove: %v", err)
	}

	// 4 moves into slot 2
	want := []PositionID{1, 4, 3}
	got := s.All()
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("after remove: got %v, want %v", got, want)
		}
	}
	for _, id := range want {
		if !s.Contains(id) {
			t.Errorf("member %d lost", id)
		}
	}
	if s.Contains(2) {
		t.Error("removed member still present")
	}
	if err := s.checkInvariant(); err != nil {
		t.Fatal(err)
	}
}

func TestPositionSet_RemoveLastAndOnly(t *testing.T) {
	s := NewPositionSet()
	_ = s.Add(9)
	if err := s.Remove(9); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if s.Len() != 0 || s.Contains(9) {
		t.Error("set not empty after removing only member")
	}
	// Re-adding after removal must work.
	if err := s.Add(9); err != nil {
		t.Fatalf("re-add: %v", err)
	}
}

func TestPositionSet_AddRemovePairRestoresMembers(t *testing.T) {
	s := NewPositionSet()
	for _, id := range []PositionID{5, 6, 7} {
		_ = s.Add(id)
	}
	before := sortedIDs(s.All())

	_ = s.Add(100)
	_ = s.Remove(100)

	after := sortedIDs(s.All())
	if len(before) != len(after) {
		t.Fatalf("size changed: %v vs %v", before, after)
	}
	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("members changed: %v vs %v", before, after)
		}
	}
}

func TestPositionSet_ReinsertUndoesRemove(t *testing.T) {
	for _, victim := range []PositionID{1, 2, 3, 4} {
		s := NewPositionSet()
		for _, id := range []PositionID{1, 2, 3, 4} {
			_ = s.Add(id)
		}
		before := s.All()

		slot, ok := s.IndexOf(victim)
		if !ok {
			t.Fatalf("IndexOf(%d): not found", victim)
		}
		if err := s.Remove(victim); err != nil {
			t.Fatalf("Remove(%d): %v", victim, err)
		}
		if err := s.Reinsert(victim, slot); err != nil {
			t.Fatalf("Reinsert(%d, %d): %v", victim, slot, err)
		}

		after := s.All()
		for i := range before {
			if before[i] != after[i] {
				t.Fatalf("victim %d: order %v, want %v", victim, after, before)
			}
		}
		if err := s.checkInvariant(); err != nil {
			t.Fatalf("victim %d: %v", victim, err)
		}
	}
}

func TestPositionSet_ReinsertRejectsBadInput(t *testing.T) {
	s := NewPositionSet()
	_ = s.Add(1)

	if err := s.Reinsert(1, 0); !errors.Is(err, ErrDuplicateEntry) {
		t.Errorf("reinsert present member: got %v", err)
	}
	if err := s.Reinsert(2, 5); !errors.Is(err, ErrSlotOutOfRange) {
		t.Errorf("reinsert past end: got %v", err)
	}
	if s.Len() != 1 {
		t.Errorf("failed reinsert mutated set: %v", s.All())
	}
}

// TestPositionSet_RandomOpsMatchModel drives random add/remove sequences and
// compares against a map model after every step.
func TestPositionSet_RandomOpsMatchModel(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	s := NewPositionSet()
	model := make(map[PositionID]bool)

	for step := 0; step < 5000; step++ {
		id := PositionID(rng.Intn(64))
		if rng.Intn(2) == 0 {
			err := s.Add(id)
			if model[id] {
				if !errors.Is(err, ErrDuplicateEntry) {
					t.Fatalf("step %d: add existing %d: got %v", step, id, err)
				}
			} else if err != nil {
				t.Fatalf("step %d: add %d: %v", step, id, err)
			}
			model[id] = true
		} else {
			err := s.Remove(id)
			if !model[id] {
				if !errors.Is(err, ErrNotFound) {
					t.Fatalf("step %d: remove absent %d: got %v", step, id, err)
				}
			} else if err != nil {
				t.Fatalf("step %d: remove %d: %v", step, id, err)
			}
			delete(model, id)
		}

		if s.Len() != len(model) {
			t.Fatalf("step %d: len %d, model %d", step, s.Len(), len(model))
		}
		for candidate := PositionID(0); candidate < 64; candidate++ {
			if s.Contains(candidate) != model[candidate] {
				t.Fatalf("step %d: contains(%d)=%v, model=%v", step, candidate, s.Contains(candidate), model[candidate])
			}
		}
		if err := s.checkInvariant(); err != nil {
			t.Fatalf("step %d: %v", step, err)
		}
	}
}

func TestStakeIndex_PerOwnerIsolation(t *testing.T) {
	alice := common.HexToAddress("0x00000000000000000000000000000000000a11ce")
	bob := common.HexToAddress("0x0000000000000000000000000000000000000b0b")
	si := NewStakeIndex()

	_ = si.Add(alice, 1)
	_ = si.Add(alice, 2)
	_ = si.Add(bob, 3)

	if si.Count(alice) != 2 || si.Count(bob) != 1 {
		t.Fatalf("counts: alice=%d bob=%d", si.Count(alice), si.Count(bob))
	}
	if si.Contains(bob, 1) {
		t.Error("bob should not hold alice's position")
	}
	if err := si.Remove(bob, 1); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound removing foreign position, got %v", err)
	}

	_ = si.Remove(bob, 3)
	if len(si.Owners()) != 1 {
		t.Errorf("empty set should be dropped, owners=%v", si.Owners())
	}
	if si.Total() != 2 {
		t.Errorf("total: got %d, want 2", si.Total())
	}
	if err := si.Validate(); err != nil {
		t.Fatal(err)
	}
}

func TestStakeIndex_ReinsertRecreatesDroppedSet(t *testing.T) {
	owner := common.HexToAddress("0x00000000000000000000000000000000000a11ce")
	si := NewStakeIndex()
	_ = si.Add(owner, 8)

	slot, _ := si.IndexOf(owner, 8)
	_ = si.Remove(owner, 8)
	if len(si.Owners()) != 0 {
		t.Fatalf("empty set kept: %v", si.Owners())
	}

	if err := si.Reinsert(owner, 8, slot); err != nil {
		t.Fatalf("Reinsert: %v", err)
	}
	if !si.Contains(owner, 8) || si.Count(owner) != 1 {
		t.Errorf("position not restored: %v", si.Positions(owner))
	}
}

func TestStakeIndex_ExportRestorePreservesOrder(t *testing.T) {
	owner := common.HexToAddress("0x00000000000000000000000000000000000a11ce")
	si := NewStakeIndex()
	for _, id := range []PositionID{10, 20, 30} {
		_ = si.Add(owner, id)
	}
	_ = si.Remove(owner, 10)

	restored, err := RestoreStakeIndex(si.Export())
	if err != nil {
		t.Fatalf("restore: %v", err)
	}
	got, want := restored.Positions(owner), si.Positions(owner)
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}
