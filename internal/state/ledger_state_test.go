package state_test

import (
	"GaugeLedger/internal/state"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
)

func TestRewardLedger_GetReturnsCopy(t *testing.T) {
	l := state.NewRewardLedger()
	l.Put(1, state.RewardEntry{
		Owner:       common.HexToAddress("0x01"),
		Liquidity:   uint256.NewInt(1000),
		Accumulated: uint256.NewInt(5),
		Snapshot:    uint256.NewInt(7),
	})

	e, ok := l.Get(1)
	if !ok {
		t.Fatal("entry 1 missing")
	}
	e.Accumulated.SetUint64(999)

	again, _ := l.Get(1)
	if again.Accumulated.Uint64() != 5 {
		t.Errorf("mutating a copy touched the ledger: %s", again.Accumulated.Dec())
	}
}

func TestRewardLedger_TotalAndIDs(t *testing.T) {
	l := state.NewRewardLedger()
	for id, acc := range map[state.PositionID]uint64{3: 10, 1: 20, 2: 30} {
		l.Put(id, state.RewardEntry{Accumulated: uint256.NewInt(acc)})
	}

	ids := l.IDs()
	if len(ids) != 3 || ids[0] != 1 || ids[1] != 2 || ids[2] != 3 {
		t.Errorf("ids not sorted: %v", ids)
	}
	if got := l.TotalAccumulated().Uint64(); got != 60 {
		t.Errorf("total: got %d, want 60", got)
	}

	l.Delete(2)
	if l.Len() != 2 {
		t.Errorf("len after delete: %d", l.Len())
	}
	if _, ok := l.Get(2); ok {
		t.Error("deleted entry still present")
	}
}

func TestRewardLedger_ExportRestore(t *testing.T) {
	l := state.NewRewardLedger()
	l.Put(4, state.RewardEntry{
		Owner:       common.HexToAddress("0x00000000000000000000000000000000000a11ce"),
		TickLower:   -120,
		TickUpper:   240,
		Liquidity:   uint256.MustFromDecimal("123456789012345678901234567890"),
		Accumulated: uint256.NewInt(42),
		Snapshot:    uint256.MustFromDecimal("1000000000000000000000000000000000000"),
		LastSettled: 99,
	})

	restored, err := state.RestoreRewardLedger(l.Export())
	if err != nil {
		t.Fatalf("RestoreRewardLedger: %v", err)
	}

	got, ok := restored.Get(4)
	if !ok {
		t.Fatal("entry 4 missing after restore")
	}
	if got.TickLower != -120 || got.LastSettled != 99 {
		t.Errorf("restored entry: %+v", got)
	}
	if got.Liquidity.Dec() != "123456789012345678901234567890" {
		t.Errorf("liquidity: %s", got.Liquidity.Dec())
	}
}

func TestEpochState_RecordAndRestoreRate(t *testing.T) {
	es := state.NewEpochState()

	if prev := es.RecordRate(0, uint256.NewInt(5)); prev != nil {
		t.Fatalf("first record returned %s", prev.Dec())
	}

	prev := es.RecordRate(0, uint256.NewInt(9))
	if prev == nil || prev.Uint64() != 5 {
		t.Fatalf("second record returned %v", prev)
	}

	es.RestoreRate(0, prev)
	if r, ok := es.RateAt(0); !ok || r.Uint64() != 5 {
		t.Errorf("rate after restore: %v %v", r, ok)
	}

	es.RestoreRate(604800, nil)
	if _, ok := es.RateAt(604800); ok {
		t.Error("restoring nil should leave the epoch unset")
	}
}

func TestEpochState_ScheduleIsCopied(t *testing.T) {
	es := state.NewEpochState()
	rate := uint256.NewInt(10)
	es.SetSchedule(state.Schedule{PeriodEnd: 604800, RatePerSecond: rate})
	rate.SetUint64(11)

	s := es.Schedule()
	if s.RatePerSecond.Uint64() != 10 || s.PeriodEnd != 604800 {
		t.Errorf("schedule: rate %s period end %d", s.RatePerSecond.Dec(), s.PeriodEnd)
	}
}

func TestFeeLedger_AccrueForwardsPerAssetAboveThreshold(t *testing.T) {
	fl := state.NewFeeLedger()
	threshold := uint256.NewInt(604800)

	due0, due1 := fl.Accrue(uint256.NewInt(604800), uint256.NewInt(10), threshold)
	if !due0.IsZero() || !due1.IsZero() {
		t.Fatalf("equal to threshold must not forward: %s/%s", due0.Dec(), due1.Dec())
	}

	due0, due1 = fl.Accrue(uint256.NewInt(1), uint256.NewInt(5), threshold)
	if due0.Uint64() != 604801 || !due1.IsZero() {
		t.Errorf("due %s/%s", due0.Dec(), due1.Dec())
	}

	f0, f1 := fl.Totals()
	if !f0.IsZero() || f1.Uint64() != 15 {
		t.Errorf("totals %s/%s", f0.Dec(), f1.Dec())
	}
}
