package sim

import (
	"GaugeLedger/internal/ledger"
	fpmath "GaugeLedger/internal/math"
	"errors"
	"fmt"
	"sort"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
)

var (
	ErrPoolClock    = errors.New("pool timestamp went backwards")
	ErrInvalidRange = errors.New("invalid tick range")
	ErrLiquidity    = errors.New("staked liquidity underflow")
)

// tickInfo tracks staked liquidity referencing one tick and the reward growth
// on the side of the tick away from the current price.
type tickInfo struct {
	lowerOf *uint256.Int // staked liquidity whose range starts at this tick
	upperOf *uint256.Int // staked liquidity whose range ends at this tick
	outside *uint256.Int
}

func (t *tickInfo) gross() *uint256.Int {
	return new(uint256.Int).Add(t.lowerOf, t.upperOf)
}

// Pool is an in-memory concentrated-liquidity pool that streams gauge rewards
// through a global reward-per-unit counter (1e36 scale). A position is in
// range when tickLower <= currentTick < tickUpper.
// Not thread-safe; the Processor serialises access.
type Pool struct {
	address     common.Address
	gauge       common.Address
	token0      common.Address
	token1      common.Address
	tickSpacing int32
	bank        *ledger.Bank

	currentTick     int32
	stakedLiquidity *uint256.Int

	rewardRate    *uint256.Int
	rewardReserve *uint256.Int
	periodFinish  uint64
	rollover      *uint256.Int
	growthGlobal  *uint256.Int
	lastUpdated   uint64

	ticks map[int32]*tickInfo

	gaugeFees0 *uint256.Int
	gaugeFees1 *uint256.Int
}

func NewPool(address, gauge, token0, token1 common.Address, tickSpacing, initialTick int32, bank *ledger.Bank) *Pool {
	return &Pool{
		address:         address,
		gauge:           gauge,
		token0:          token0,
		token1:          token1,
		tickSpacing:     tickSpacing,
		bank:            bank,
		currentTick:     initialTick,
		stakedLiquidity: new(uint256.Int),
		rewardRate:      new(uint256.Int),
		rewardReserve:   new(uint256.Int),
		rollover:        new(uint256.Int),
		growthGlobal:    new(uint256.Int),
		ticks:           make(map[int32]*tickInfo),
		gaugeFees0:      new(uint256.Int),
		gaugeFees1:      new(uint256.Int),
	}
}

func (p *Pool) Address() common.Address { return p.address }
func (p *Pool) CurrentTick() int32      { return p.currentTick }

// AdvanceGlobalCounter emits rate * elapsed (capped at the reserve) into the
// global counter, or into rollover when nothing is staked.
func (p *Pool) AdvanceGlobalCounter(now uint64) error {
	if now < p.lastUpdated {
		return fmt.Errorf("%w: last=%d now=%d", ErrPoolClock, p.lastUpdated, now)
	}
	elapsed := now - p.lastUpdated
	if elapsed == 0 {
		return nil
	}

	if !p.rewardReserve.IsZero() {
		emitted, err := fpmath.Mul(p.rewardRate, uint256.NewInt(elapsed))
		if err != nil {
			return err
		}
		reward := fpmath.Min(emitted, p.rewardReserve)
		p.rewardReserve = new(uint256.Int).Sub(p.rewardReserve, reward)

		if p.stakedLiquidity.IsZero() {
			p.rollover = new(uint256.Int).Add(p.rollover, reward)
		} else {
			perUnit, err := fpmath.ToPerUnit(reward, p.stakedLiquidity)
			if err != nil {
				return err
			}
			p.growthGlobal = new(uint256.Int).Add(p.growthGlobal, perUnit)
		}
	}

	p.lastUpdated = now
	return nil
}

func (p *Pool) checkRange(tickLower, tickUpper int32) error {
	if tickLower >= tickUpper {
		return fmt.Errorf("%w: [%d, %d)", ErrInvalidRange, tickLower, tickUpper)
	}
	if tickLower%p.tickSpacing != 0 || tickUpper%p.tickSpacing != 0 {
		return fmt.Errorf("%w: [%d, %d) not on spacing %d", ErrInvalidRange, tickLower, tickUpper, p.tickSpacing)
	}
	return nil
}

func (p *Pool) inRange(tickLower, tickUpper int32) bool {
	return tickLower <= p.currentTick && p.currentTick < tickUpper
}

// tick returns the info for t, initializing it on first reference with all
// prior growth assumed to lie below the current price.
func (p *Pool) tick(t int32) *tickInfo {
	info, ok := p.ticks[t]
	if !ok {
		info = &tickInfo{lowerOf: new(uint256.Int), upperOf: new(uint256.Int), outside: new(uint256.Int)}
		if t <= p.currentTick {
			info.outside.Set(p.growthGlobal)
		}
		p.ticks[t] = info
	}
	return info
}

// AddStakedLiquidity records delta as staked over [tickLower, tickUpper).
// isStake=false (a liquidity change of an unstaked position) is not modelled.
func (p *Pool) AddStakedLiquidity(now uint64, delta *uint256.Int, tickLower, tickUpper int32, isStake bool) error {
	if !isStake {
		return errors.New("pool: unstaked liquidity updates are not supported")
	}
	if err := p.checkRange(tickLower, tickUpper); err != nil {
		return err
	}
	if err := p.AdvanceGlobalCounter(now); err != nil {
		return err
	}

	lower, upper := p.tick(tickLower), p.tick(tickUpper)
	lower.lowerOf = new(uint256.Int).Add(lower.lowerOf, delta)
	upper.upperOf = new(uint256.Int).Add(upper.upperOf, delta)
	if p.inRange(tickLower, tickUpper) {
		p.stakedLiquidity = new(uint256.Int).Add(p.stakedLiquidity, delta)
	}
	return nil
}

// RemoveStakedLiquidity reverses AddStakedLiquidity. Ticks no longer
// referenced are cleared.
func (p *Pool) RemoveStakedLiquidity(now uint64, delta *uint256.Int, tickLower, tickUpper int32, isStake bool) error {
	if !isStake {
		return errors.New("pool: unstaked liquidity updates are not supported")
	}
	if err := p.checkRange(tickLower, tickUpper); err != nil {
		return err
	}
	lower, okL := p.ticks[tickLower]
	upper, okU := p.ticks[tickUpper]
	if !okL || !okU || lower.lowerOf.Lt(delta) || upper.upperOf.Lt(delta) {
		return fmt.Errorf("%w: [%d, %d) delta %s", ErrLiquidity, tickLower, tickUpper, delta.Dec())
	}
	active := p.inRange(tickLower, tickUpper)
	if active && p.stakedLiquidity.Lt(delta) {
		return fmt.Errorf("%w: staked %s delta %s", ErrLiquidity, p.stakedLiquidity.Dec(), delta.Dec())
	}
	if err := p.AdvanceGlobalCounter(now); err != nil {
		return err
	}

	lower.lowerOf = new(uint256.Int).Sub(lower.lowerOf, delta)
	upper.upperOf = new(uint256.Int).Sub(upper.upperOf, delta)
	if active {
		p.stakedLiquidity = new(uint256.Int).Sub(p.stakedLiquidity, delta)
	}
	for _, t := range []int32{tickLower, tickUpper} {
		if p.ticks[t].gross().IsZero() {
			delete(p.ticks, t)
		}
	}
	return nil
}

// RangeScopedRewardPerUnit returns growth inside [tickLower, tickUpper) at
// the given global value. All arithmetic is modular.
func (p *Pool) RangeScopedRewardPerUnit(tickLower, tickUpper int32, atGlobal *uint256.Int) (*uint256.Int, error) {
	if err := p.checkRange(tickLower, tickUpper); err != nil {
		return nil, err
	}
	global := p.growthGlobal
	if atGlobal != nil {
		global = atGlobal
	}

	lowerOut, upperOut := p.outsideOf(tickLower), p.outsideOf(tickUpper)

	below := lowerOut
	if p.currentTick < tickLower {
		below = new(uint256.Int).Sub(global, lowerOut)
	}
	above := upperOut
	if p.currentTick >= tickUpper {
		above = new(uint256.Int).Sub(global, upperOut)
	}

	inside := new(uint256.Int).Sub(global, below)
	return inside.Sub(inside, above), nil
}

func (p *Pool) outsideOf(t int32) *uint256.Int {
	if info, ok := p.ticks[t]; ok {
		return info.outside
	}
	if t <= p.currentTick {
		return p.growthGlobal
	}
	return new(uint256.Int)
}

// MoveTick moves the price to target, crossing every initialized tick in
// between and adjusting staked liquidity.
func (p *Pool) MoveTick(now uint64, target int32) error {
	if err := p.AdvanceGlobalCounter(now); err != nil {
		return err
	}

	ticks := p.sortedTicks()
	if target > p.currentTick {
		for _, t := range ticks {
			if t > p.currentTick && t <= target {
				info := p.ticks[t]
				info.outside = new(uint256.Int).Sub(p.growthGlobal, info.outside)
				staked := new(uint256.Int).Add(p.stakedLiquidity, info.lowerOf)
				p.stakedLiquidity = staked.Sub(staked, info.upperOf)
			}
		}
	} else if target < p.currentTick {
		for i := len(ticks) - 1; i >= 0; i-- {
			t := ticks[i]
			if t <= p.currentTick && t > target {
				info := p.ticks[t]
				info.outside = new(uint256.Int).Sub(p.growthGlobal, info.outside)
				staked := new(uint256.Int).Add(p.stakedLiquidity, info.upperOf)
				p.stakedLiquidity = staked.Sub(staked, info.lowerOf)
			}
		}
	}
	p.currentTick = target
	return nil
}

func (p *Pool) sortedTicks() []int32 {
	ticks := make([]int32, 0, len(p.ticks))
	for t := range p.ticks {
		ticks = append(ticks, t)
	}
	sort.Slice(ticks, func(i, j int) bool { return ticks[i] < ticks[j] })
	return ticks
}

func (p *Pool) TotalStakedLiquidity() *uint256.Int {
	return new(uint256.Int).Set(p.stakedLiquidity)
}

func (p *Pool) RewardAssetBalance() *uint256.Int {
	return new(uint256.Int).Set(p.rewardReserve)
}

func (p *Pool) GlobalRewardPerUnit() *uint256.Int {
	return new(uint256.Int).Set(p.growthGlobal)
}

func (p *Pool) LastGlobalUpdateTime() uint64 {
	return p.lastUpdated
}

func (p *Pool) CarryOverRewards() *uint256.Int {
	return new(uint256.Int).Set(p.rollover)
}

// SetRewardParameters installs a new emission schedule and clears rollover,
// which the caller has folded into totalAmount.
func (p *Pool) SetRewardParameters(now uint64, rate, totalAmount *uint256.Int, periodEnd uint64) error {
	if periodEnd <= now {
		return fmt.Errorf("pool: period end %d not after %d", periodEnd, now)
	}
	if err := p.AdvanceGlobalCounter(now); err != nil {
		return err
	}
	p.rewardRate = new(uint256.Int).Set(rate)
	p.rewardReserve = new(uint256.Int).Set(totalAmount)
	p.periodFinish = periodEnd
	p.rollover = new(uint256.Int)
	return nil
}

// AccrueGaugeFees credits swap fees earned by staked liquidity. The tokens
// are minted to the pool until the gauge harvests them.
func (p *Pool) AccrueGaugeFees(amount0, amount1 *uint256.Int) error {
	if !amount0.IsZero() {
		if err := p.bank.Mint(p.token0, p.address, amount0); err != nil {
			return err
		}
	}
	if !amount1.IsZero() {
		if err := p.bank.Mint(p.token1, p.address, amount1); err != nil {
			return err
		}
	}
	p.gaugeFees0 = new(uint256.Int).Add(p.gaugeFees0, amount0)
	p.gaugeFees1 = new(uint256.Int).Add(p.gaugeFees1, amount1)
	return nil
}

// HarvestFees transfers accrued gauge fees to the gauge.
func (p *Pool) HarvestFees(now uint64) (amount0, amount1 *uint256.Int, err error) {
	if now < p.lastUpdated {
		return nil, nil, fmt.Errorf("%w: last=%d now=%d", ErrPoolClock, p.lastUpdated, now)
	}
	amount0, amount1 = p.gaugeFees0, p.gaugeFees1
	if err := p.bank.Transfer(p.token0, p.address, p.gauge, amount0); err != nil {
		return nil, nil, err
	}
	if err := p.bank.Transfer(p.token1, p.address, p.gauge, amount1); err != nil {
		// The first transfer succeeded; put it back before failing.
		if rbErr := p.bank.Transfer(p.token0, p.gauge, p.address, amount0); rbErr != nil {
			return nil, nil, errors.Join(err, rbErr)
		}
		return nil, nil, err
	}
	p.gaugeFees0, p.gaugeFees1 = new(uint256.Int), new(uint256.Int)
	return amount0, amount1, nil
}

// ReturnFees reverses a HarvestFees whose operation failed. The gauge must
// still hold the harvested amounts.
func (p *Pool) ReturnFees(amount0, amount1 *uint256.Int) error {
	if err := p.bank.Transfer(p.token0, p.gauge, p.address, amount0); err != nil {
		return fmt.Errorf("return fees: %w", err)
	}
	if err := p.bank.Transfer(p.token1, p.gauge, p.address, amount1); err != nil {
		if rbErr := p.bank.Transfer(p.token0, p.address, p.gauge, amount0); rbErr != nil {
			return errors.Join(err, rbErr)
		}
		return fmt.Errorf("return fees: %w", err)
	}
	p.gaugeFees0 = new(uint256.Int).Add(p.gaugeFees0, amount0)
	p.gaugeFees1 = new(uint256.Int).Add(p.gaugeFees1, amount1)
	return nil
}

// Checkpoint captures price, staked liquidity, reward accounting and ticks.
// The returned revert puts them back exactly. Fee counters are not covered.
func (p *Pool) Checkpoint() (revert func()) {
	currentTick := p.currentTick
	staked := new(uint256.Int).Set(p.stakedLiquidity)
	rate := new(uint256.Int).Set(p.rewardRate)
	reserve := new(uint256.Int).Set(p.rewardReserve)
	periodFinish := p.periodFinish
	rollover := new(uint256.Int).Set(p.rollover)
	growth := new(uint256.Int).Set(p.growthGlobal)
	lastUpdated := p.lastUpdated

	ticks := make(map[int32]*tickInfo, len(p.ticks))
	for t, info := range p.ticks {
		ticks[t] = &tickInfo{
			lowerOf: new(uint256.Int).Set(info.lowerOf),
			upperOf: new(uint256.Int).Set(info.upperOf),
			outside: new(uint256.Int).Set(info.outside),
		}
	}

	return func() {
		p.currentTick = currentTick
		p.stakedLiquidity = staked
		p.rewardRate = rate
		p.rewardReserve = reserve
		p.periodFinish = periodFinish
		p.rollover = rollover
		p.growthGlobal = growth
		p.lastUpdated = lastUpdated
		p.ticks = ticks
	}
}

// PoolExport is the audit form of pool state.
type PoolExport struct {
	CurrentTick     int32        `json:"current_tick"`
	StakedLiquidity string       `json:"staked_liquidity"`
	RewardRate      string       `json:"reward_rate"`
	RewardReserve   string       `json:"reward_reserve"`
	PeriodFinish    uint64       `json:"period_finish"`
	Rollover        string       `json:"rollover"`
	GrowthGlobal    string       `json:"growth_global"`
	LastUpdated     uint64       `json:"last_updated"`
	Ticks           []TickExport `json:"ticks"`
	GaugeFees0      string       `json:"gauge_fees0"`
	GaugeFees1      string       `json:"gauge_fees1"`
}

type TickExport struct {
	Tick    int32  `json:"tick"`
	LowerOf string `json:"lower_of"`
	UpperOf string `json:"upper_of"`
	Outside string `json:"outside"`
}

func (p *Pool) Export() PoolExport {
	ticks := make([]TickExport, 0, len(p.ticks))
	for _, t := range p.sortedTicks() {
		info := p.ticks[t]
		ticks = append(ticks, TickExport{
			Tick:    t,
			LowerOf: info.lowerOf.Dec(),
			UpperOf: info.upperOf.Dec(),
			Outside: info.outside.Dec(),
		})
	}
	return PoolExport{
		CurrentTick:     p.currentTick,
		StakedLiquidity: p.stakedLiquidity.Dec(),
		RewardRate:      p.rewardRate.Dec(),
		RewardReserve:   p.rewardReserve.Dec(),
		PeriodFinish:    p.periodFinish,
		Rollover:        p.rollover.Dec(),
		GrowthGlobal:    p.growthGlobal.Dec(),
		LastUpdated:     p.lastUpdated,
		Ticks:           ticks,
		GaugeFees0:      p.gaugeFees0.Dec(),
		GaugeFees1:      p.gaugeFees1.Dec(),
	}
}

// checkInvariants recomputes staked liquidity from tick references.
func (p *Pool) checkInvariants() error {
	active := new(uint256.Int)
	for _, t := range p.sortedTicks() {
		if t <= p.currentTick {
			info := p.ticks[t]
			active.Add(active, info.lowerOf)
			active.Sub(active, info.upperOf)
		}
	}
	if !active.Eq(p.stakedLiquidity) {
		return fmt.Errorf("pool staked liquidity %s, ticks imply %s", p.stakedLiquidity.Dec(), active.Dec())
	}
	return nil
}
