package core_test

import (
	"GaugeLedger/internal/core"
	"errors"
	"testing"

	"github.com/google/uuid"
)

func TestReentrancyGuard(t *testing.T) {
	var g core.ReentrancyGuard
	release, err := g.Enter()
	if err != nil {
		t.Fatalf("first Enter: %v", err)
	}
	if !g.Held() {
		t.Fatal("guard should be held")
	}
	if _, err := g.Enter(); !errors.Is(err, core.ErrReentrantCall) {
		t.Fatalf("nested Enter: expected ErrReentrantCall, got %v", err)
	}
	release()
	if g.Held() {
		t.Fatal("guard should be released")
	}
	if _, err := g.Enter(); err != nil {
		t.Fatalf("Enter after release: %v", err)
	}
}

func TestClockValidator(t *testing.T) {
	cv := core.NewClockValidator()
	if err := cv.Validate(10); err != nil {
		t.Fatalf("Validate(10): %v", err)
	}
	cv.Advance(10)
	if err := cv.Validate(10); err != nil {
		t.Errorf("equal timestamp rejected: %v", err)
	}
	if err := cv.Validate(9); !errors.Is(err, core.ErrClockRegression) {
		t.Errorf("expected ErrClockRegression, got %v", err)
	}
	cv.Advance(5)
	if cv.Last() != 10 {
		t.Errorf("Advance moved the clock backwards to %d", cv.Last())
	}
	if cv.Regressions() != 1 {
		t.Errorf("regressions: %d", cv.Regressions())
	}
}

func TestCommandLRU_EvictsOldest(t *testing.T) {
	lru := core.NewCommandLRU(2)
	a, b, c := uuid.New(), uuid.New(), uuid.New()
	lru.Add(a)
	lru.Add(b)
	lru.Contains(a) // a becomes most recent
	lru.Add(c)

	if lru.Contains(b) {
		t.Error("b should have been evicted")
	}
	if !lru.Contains(a) || !lru.Contains(c) {
		t.Error("a and c should remain")
	}
	if lru.Size() != 2 || lru.Evictions() != 1 {
		t.Errorf("size %d evictions %d", lru.Size(), lru.Evictions())
	}
}

type stubDB struct {
	known map[uuid.UUID]bool
	err   error
}

func (s stubDB) IsDuplicate(id uuid.UUID) (bool, error) {
	return s.known[id], s.err
}

func TestIdempotencyChecker_Tiers(t *testing.T) {
	persisted := uuid.New()
	ic := core.NewIdempotencyChecker(4, stubDB{known: map[uuid.UUID]bool{persisted: true}}, nil)

	if !ic.IsDuplicate("stake", persisted) {
		t.Error("ID known to the log should be a duplicate")
	}
	fresh := uuid.New()
	if ic.IsDuplicate("stake", fresh) {
		t.Error("fresh ID reported as duplicate")
	}
	ic.MarkProcessed(fresh)
	if !ic.IsDuplicate("stake", fresh) {
		t.Error("processed ID should be a duplicate")
	}

	failing := core.NewIdempotencyChecker(4, stubDB{err: errors.New("db down")}, nil)
	if failing.IsDuplicate("claim", uuid.New()) {
		t.Error("DB error must not report a duplicate")
	}
	if failing.Tier2Errors() != 1 {
		t.Errorf("tier-2 errors: %d", failing.Tier2Errors())
	}
}

func TestStateHasher_Chains(t *testing.T) {
	h1, h2 := core.NewStateHasher(), core.NewStateHasher()
	if h1.Tip() != h2.Tip() {
		t.Fatal("genesis tips differ")
	}
	a := h1.ComputeHash(0, []byte("x"))
	b := h2.ComputeHash(0, []byte("x"))
	if a != b {
		t.Fatal("same input, different hash")
	}
	if h1.ComputeHash(1, []byte("y")) == h2.ComputeHash(1, []byte("z")) {
		t.Error("different digests, same hash")
	}
}
