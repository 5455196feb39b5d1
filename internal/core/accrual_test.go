package core_test

import (
	"GaugeLedger/internal/core"
	"GaugeLedger/internal/ledger"
	"GaugeLedger/internal/sim"
	"GaugeLedger/internal/state"
	"errors"
	"testing"

	"github.com/holiman/uint256"
)

func TestAccrual_SoleStakerReceivesFullEmission(t *testing.T) {
	f := newFixture(t, false)
	f.mint(1, alice, -60, 60, tokens(1))
	f.stake(0, alice, 1)

	deposit := tokens(10_000)
	ru := rateUpdated(t, f.deposit(0, deposit))

	rate := new(uint256.Int).Div(deposit, uint256.NewInt(week))
	if !ru.RatePerSecond.Eq(rate) {
		t.Fatalf("rate %s, expected %s", ru.RatePerSecond.Dec(), rate.Dec())
	}
	if ru.PeriodEnd != week || !ru.Leftover.IsZero() {
		t.Errorf("period end %d, leftover %s", ru.PeriodEnd, ru.Leftover.Dec())
	}

	half := new(uint256.Int).Mul(rate, uint256.NewInt(week/2))
	pending, err := f.g.PendingRewards(week/2, 1)
	if err != nil {
		t.Fatalf("PendingRewards: %v", err)
	}
	if !pending.Eq(half) {
		t.Errorf("pending at half period: %s, expected %s", pending.Dec(), half.Dec())
	}

	paid := f.claim(week, alice, 1)
	expected := new(uint256.Int).Mul(rate, uint256.NewInt(week))
	if !paid.Eq(expected) {
		t.Fatalf("paid %s, expected %s", paid.Dec(), expected.Dec())
	}

	dust := new(uint256.Int).Sub(deposit, paid)
	if !dust.Lt(uint256.NewInt(week)) {
		t.Errorf("dust %s", dust.Dec())
	}
	if !f.rewardBalance(gaugeAddr).Eq(dust) {
		t.Errorf("gauge holds %s, expected dust %s", f.rewardBalance(gaugeAddr).Dec(), dust.Dec())
	}
	if !f.g.RemainingEmission(week).IsZero() {
		t.Errorf("remaining emission after period end: %s", f.g.RemainingEmission(week).Dec())
	}
}

func TestAccrual_MidPeriodDepositFoldsLeftover(t *testing.T) {
	f := newFixture(t, false)
	f.mint(1, alice, -60, 60, tokens(1))
	f.stake(0, alice, 1)

	first := tokens(5_000)
	f.deposit(0, first)
	rate1 := new(uint256.Int).Div(first, uint256.NewInt(week))

	mid := week / 2
	second := tokens(3_000)
	ru := rateUpdated(t, f.deposit(mid, second))

	leftover := new(uint256.Int).Mul(rate1, uint256.NewInt(mid))
	if !ru.Leftover.Eq(leftover) {
		t.Errorf("leftover %s, expected %s", ru.Leftover.Dec(), leftover.Dec())
	}
	if ru.PeriodEnd != week {
		t.Errorf("period end %d", ru.PeriodEnd)
	}

	// The remaining half-week carries the new deposit plus what was unspent.
	rate2 := new(uint256.Int).Add(rate1, new(uint256.Int).Div(second, uint256.NewInt(mid)))
	if !ru.RatePerSecond.Eq(rate2) {
		t.Fatalf("rate %s, expected %s", ru.RatePerSecond.Dec(), rate2.Dec())
	}

	recorded, ok := f.g.RateForEpoch(0)
	if !ok || !recorded.Eq(rate2) {
		t.Errorf("recorded rate for epoch 0: %v %v", recorded, ok)
	}

	paid := f.claim(week, alice, 1)
	expected := new(uint256.Int).Mul(new(uint256.Int).Add(rate1, rate2), uint256.NewInt(mid))
	if !paid.Eq(expected) {
		t.Fatalf("paid %s, expected %s", paid.Dec(), expected.Dec())
	}

	total := tokens(8_000)
	if paid.Gt(total) {
		t.Fatalf("paid %s more than deposited %s", paid.Dec(), total.Dec())
	}
	rest := new(uint256.Int).Sub(total, paid)
	if !rest.Lt(uint256.NewInt(2 * week)) {
		t.Errorf("dust %s", rest.Dec())
	}
	if !f.rewardBalance(gaugeAddr).Eq(rest) {
		t.Errorf("gauge holds %s, expected %s", f.rewardBalance(gaugeAddr).Dec(), rest.Dec())
	}
}

func TestAccrual_EmissionWithNoStakersCarriesOver(t *testing.T) {
	f := newFixture(t, false)
	f.mint(1, alice, -60, 60, tokens(1))

	first := tokens(1_000)
	f.deposit(0, first)
	rate1 := new(uint256.Int).Div(first, uint256.NewInt(week))

	ru := rateUpdated(t, f.deposit(week, tokens(1_000)))
	carry := new(uint256.Int).Mul(rate1, uint256.NewInt(week))
	if !ru.CarryOver.Eq(carry) {
		t.Fatalf("carry-over %s, expected %s", ru.CarryOver.Dec(), carry.Dec())
	}
	if !ru.Leftover.IsZero() || ru.PeriodEnd != 2*week {
		t.Errorf("leftover %s, period end %d", ru.Leftover.Dec(), ru.PeriodEnd)
	}

	f.stake(week, alice, 1)
	paid := f.claim(2*week, alice, 1)
	rate2 := new(uint256.Int).Div(new(uint256.Int).Add(tokens(1_000), carry), uint256.NewInt(week))
	if expected := new(uint256.Int).Mul(rate2, uint256.NewInt(week)); !paid.Eq(expected) {
		t.Errorf("paid %s, expected %s", paid.Dec(), expected.Dec())
	}
}

func TestAccrual_SharesFollowLiquidity(t *testing.T) {
	f := newFixture(t, false)
	f.mint(1, alice, -60, 60, tokens(1))
	f.mint(2, bob, -120, 120, tokens(3))
	f.stake(0, alice, 1)
	f.stake(0, bob, 2)
	f.deposit(0, tokens(1_000))

	a := f.claim(week, alice, 1)
	b := f.claim(week, bob, 2)

	emitted := new(uint256.Int).Mul(new(uint256.Int).Div(tokens(1_000), uint256.NewInt(week)), uint256.NewInt(week))
	sum := new(uint256.Int).Add(a, b)
	if sum.Gt(emitted) {
		t.Fatalf("paid %s more than emitted %s", sum.Dec(), emitted.Dec())
	}
	if !new(uint256.Int).Sub(emitted, sum).Lt(uint256.NewInt(3)) {
		t.Errorf("rounding loss too large: emitted %s paid %s", emitted.Dec(), sum.Dec())
	}

	tripled := new(uint256.Int).Mul(a, uint256.NewInt(3))
	diff := new(uint256.Int).Sub(b, tripled)
	if tripled.Gt(b) {
		diff = new(uint256.Int).Sub(tripled, b)
	}
	if !diff.Lt(uint256.NewInt(4)) {
		t.Errorf("alice %s bob %s not 1:3", a.Dec(), b.Dec())
	}
}

func TestAccrual_OutOfRangePositionEarnsNothing(t *testing.T) {
	f := newFixture(t, false)
	f.mint(1, alice, -60, 60, tokens(1))
	f.mint(2, bob, 120, 240, tokens(1))
	f.stake(0, alice, 1)
	f.stake(0, bob, 2)
	f.deposit(0, tokens(100))

	if paid := f.claim(week, bob, 2); !paid.IsZero() {
		t.Errorf("out of range position paid %s", paid.Dec())
	}
	if paid := f.claim(week, alice, 1); paid.IsZero() {
		t.Errorf("in range position paid nothing")
	}
}

func TestAccrual_RangeExitStopsAccrual(t *testing.T) {
	f := newFixture(t, false)
	f.mint(1, alice, -60, 60, tokens(1))
	f.stake(0, alice, 1)
	f.deposit(0, tokens(1_000))
	rate := new(uint256.Int).Div(tokens(1_000), uint256.NewInt(week))

	if err := f.w.Pool().MoveTick(100, 120); err != nil {
		t.Fatalf("MoveTick: %v", err)
	}
	paid := f.claim(week, alice, 1)
	if expected := new(uint256.Int).Mul(rate, uint256.NewInt(100)); !paid.Eq(expected) {
		t.Errorf("paid %s, expected %s", paid.Dec(), expected.Dec())
	}
}

func TestAccrual_SettleTwiceAtSameInstantIsNoop(t *testing.T) {
	f := newFixture(t, false)
	f.mint(1, alice, -60, 60, tokens(1))
	f.stake(0, alice, 1)
	f.deposit(0, tokens(1_000))

	if first := f.claim(1000, alice, 1); first.IsZero() {
		t.Fatal("first claim paid nothing")
	}

	events, err := f.g.Claim(core.Call{Caller: alice, Timestamp: 1000}, 1)
	if err != nil {
		t.Fatalf("second claim: %v", err)
	}
	if len(events) != 0 {
		t.Errorf("second claim emitted %d events", len(events))
	}

	entry, ok := f.g.RewardEntry(1)
	if !ok || !entry.Accumulated.IsZero() || entry.LastSettled != 1000 {
		t.Errorf("entry after second claim: %+v", entry)
	}
}

func TestAccrual_PendingReadsAreStableAndMonotonic(t *testing.T) {
	f := newFixture(t, false)
	f.mint(1, alice, -60, 60, tokens(1))
	f.mint(2, bob, -120, 120, tokens(2))
	f.stake(0, alice, 1)
	f.stake(0, bob, 2)
	f.deposit(0, tokens(1_000))
	gBefore, wBefore := f.digests()

	first, err := f.g.PendingRewards(300, 1)
	if err != nil {
		t.Fatalf("PendingRewards: %v", err)
	}
	for i := 0; i < 3; i++ {
		again, err := f.g.PendingRewards(300, 1)
		if err != nil {
			t.Fatalf("PendingRewards: %v", err)
		}
		if !again.Eq(first) {
			t.Fatalf("read %d: %s, first read %s", i, again.Dec(), first.Dec())
		}
	}

	prev := new(uint256.Int)
	for _, ts := range []uint64{0, 1, 300, 301, week / 2, week - 1, week, week + 1, 3 * week} {
		pending, err := f.g.PendingRewards(ts, 1)
		if err != nil {
			t.Fatalf("PendingRewards(%d): %v", ts, err)
		}
		if pending.Lt(prev) {
			t.Fatalf("pending went down at %d: %s < %s", ts, pending.Dec(), prev.Dec())
		}
		prev = pending
	}

	late, _ := f.g.PendingRewards(2*week, 1)
	later, _ := f.g.PendingRewards(5*week, 1)
	if !late.Eq(later) {
		t.Errorf("pending still growing after the reserve ran out: %s vs %s", late.Dec(), later.Dec())
	}

	gAfter, wAfter := f.digests()
	if gAfter != gBefore || wAfter != wBefore {
		t.Fatal("pending reads changed state")
	}

	if paid := f.claim(300, alice, 1); !paid.Eq(first) {
		t.Errorf("claim paid %s, pending read %s", paid.Dec(), first.Dec())
	}
}

// laggingPool reports zero for every range once lagging is set, which puts
// any non-zero snapshot ahead of the pool.
type laggingPool struct {
	core.Pool
	lagging bool
}

func (p *laggingPool) RangeScopedRewardPerUnit(tickLower, tickUpper int32, atGlobal *uint256.Int) (*uint256.Int, error) {
	if p.lagging {
		return new(uint256.Int), nil
	}
	return p.Pool.RangeScopedRewardPerUnit(tickLower, tickUpper, atGlobal)
}

func TestAccrual_RangeValueBehindSnapshotFailsFast(t *testing.T) {
	var pool *laggingPool
	f := wrappedFixture(t, false, func(_ *core.Gauge, c *core.Collaborators) {
		pool = &laggingPool{Pool: c.Pool}
		c.Pool = pool
	})
	f.mint(1, alice, -60, 60, tokens(1))
	f.stake(0, alice, 1)
	f.deposit(0, tokens(1_000))
	f.claim(100, alice, 1)

	entry, _ := f.g.RewardEntry(1)
	if entry.Snapshot.IsZero() {
		t.Fatal("snapshot should have moved after a claim")
	}
	gBefore, wBefore := f.digests()

	pool.lagging = true
	if _, err := f.g.PendingRewards(200, 1); !errors.Is(err, core.ErrInvariantViolation) {
		t.Fatalf("pending: expected ErrInvariantViolation, got %v", err)
	}
	if _, err := f.g.Claim(core.Call{Caller: alice, Timestamp: 200}, 1); !errors.Is(err, core.ErrInvariantViolation) {
		t.Fatalf("claim: expected ErrInvariantViolation, got %v", err)
	}
	f.requireUnchanged(gBefore, wBefore)

	pool.lagging = false
	if paid := f.claim(200, alice, 1); paid.IsZero() {
		t.Errorf("claim after recovery paid nothing")
	}
}

func newEngine() *core.AccrualEngine {
	pool := sim.NewPool(poolAddr, gaugeAddr, token0, token1, 60, 0, ledger.NewBank(0))
	return core.NewAccrualEngine(pool, state.NewRewardLedger(), state.NewEpochState())
}

func TestPlanRate_Failures(t *testing.T) {
	e := newEngine()

	_, err := e.PlanRate(0, uint256.NewInt(1), new(uint256.Int), uint256.NewInt(1))
	if !errors.Is(err, core.ErrInvalidRate) {
		t.Errorf("dust deposit: expected ErrInvalidRate, got %v", err)
	}

	deposit := uint256.NewInt(10 * week)
	_, err = e.PlanRate(0, deposit, new(uint256.Int), uint256.NewInt(5*week))
	if !errors.Is(err, core.ErrInsufficientFunding) {
		t.Errorf("underfunded: expected ErrInsufficientFunding, got %v", err)
	}
}

func TestPlanRate_DurationRunsToEpochEnd(t *testing.T) {
	e := newEngine()
	mid := week / 2

	plan, err := e.PlanRate(mid, uint256.NewInt(4*mid), uint256.NewInt(mid), uint256.NewInt(10*week))
	if err != nil {
		t.Fatalf("PlanRate: %v", err)
	}
	if plan.Duration != mid || plan.EpochStart != 0 || plan.PeriodEnd != week {
		t.Errorf("duration %d, epoch start %d, period end %d", plan.Duration, plan.EpochStart, plan.PeriodEnd)
	}
	if !plan.Rate.Eq(uint256.NewInt(5)) || !plan.Total.Eq(uint256.NewInt(5*mid)) {
		t.Errorf("rate %s, total %s", plan.Rate.Dec(), plan.Total.Dec())
	}

	// Last second of an epoch still has a one-second duration.
	plan, err = e.PlanRate(week-1, uint256.NewInt(7), new(uint256.Int), uint256.NewInt(7))
	if err != nil {
		t.Fatalf("PlanRate at last second: %v", err)
	}
	if plan.Duration != 1 || !plan.Rate.Eq(uint256.NewInt(7)) {
		t.Errorf("duration %d, rate %s", plan.Duration, plan.Rate.Dec())
	}
}
