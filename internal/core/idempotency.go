package core

import (
	"GaugeLedger/internal/observability"
	"container/list"

	"github.com/google/uuid"
)

// IdempotencyChecker deduplicates command IDs in two tiers: a bounded
// in-memory LRU in front of the persisted command log.
type IdempotencyChecker struct {
	lru       *CommandLRU
	dbChecker DBIdempotencyChecker
	metrics   *observability.Metrics

	tier2Errors int64
}

// DBIdempotencyChecker looks a command ID up in the durable log.
type DBIdempotencyChecker interface {
	IsDuplicate(commandID uuid.UUID) (bool, error)
}

func NewIdempotencyChecker(capacity int, dbChecker DBIdempotencyChecker, metrics *observability.Metrics) *IdempotencyChecker {
	return &IdempotencyChecker{
		lru:       NewCommandLRU(capacity),
		dbChecker: dbChecker,
		metrics:   metrics,
	}
}

// IsDuplicate reports whether the command was already applied.
func (ic *IdempotencyChecker) IsDuplicate(commandType string, id uuid.UUID) bool {
	if ic.lru.Contains(id) {
		ic.recordDuplicate(commandType, "lru")
		return true
	}

	if ic.dbChecker == nil {
		return false
	}
	isDup, err := ic.dbChecker.IsDuplicate(id)
	if err != nil {
		// A DB outage must not stall the core; the unique key on the command
		// log still rejects a replayed ID at persist time.
		ic.tier2Errors++
		return false
	}
	if isDup {
		ic.recordDuplicate(commandType, "postgres")
		ic.lru.Add(id)
		return true
	}
	return false
}

// SetDBChecker installs the persisted-log tier. Replay runs without it,
// since every replayed ID is already in the log.
func (ic *IdempotencyChecker) SetDBChecker(db DBIdempotencyChecker) {
	ic.dbChecker = db
}

// MarkProcessed adds the ID to the LRU after a successful apply.
func (ic *IdempotencyChecker) MarkProcessed(id uuid.UUID) {
	ic.lru.Add(id)
	if ic.metrics != nil {
		ic.metrics.DedupLRUSize.Set(float64(ic.lru.Size()))
	}
}

// Warm preloads recently applied IDs, e.g. after replay.
func (ic *IdempotencyChecker) Warm(ids []uuid.UUID) {
	ic.lru.WarmFromKeys(ids)
}

func (ic *IdempotencyChecker) Tier2Errors() int64 {
	return ic.tier2Errors
}

func (ic *IdempotencyChecker) recordDuplicate(commandType, tier string) {
	if ic.metrics != nil {
		ic.metrics.IdempotencyDuplicates.WithLabelValues(commandType, tier).Inc()
	}
}

// --- LRU ---

// CommandLRU is a bounded set of recently applied command IDs.
// Not thread-safe; only the Processor touches it.
type CommandLRU struct {
	capacity int
	cache    map[uuid.UUID]*list.Element
	order    *list.List

	evictions int64
}

func NewCommandLRU(capacity int) *CommandLRU {
	if capacity < 1 {
		capacity = 1
	}
	return &CommandLRU{
		capacity: capacity,
		cache:    make(map[uuid.UUID]*list.Element, capacity),
		order:    list.New(),
	}
}

// Contains checks membership and promotes a hit to most recently used.
func (lru *CommandLRU) Contains(id uuid.UUID) bool {
	elem, ok := lru.cache[id]
	if ok {
		lru.order.MoveToFront(elem)
	}
	return ok
}

// Add inserts id, evicting the least recently used entry when full.
func (lru *CommandLRU) Add(id uuid.UUID) {
	if elem, ok := lru.cache[id]; ok {
		lru.order.MoveToFront(elem)
		return
	}
	lru.cache[id] = lru.order.PushFront(id)
	if lru.order.Len() > lru.capacity {
		lru.evictOldest()
	}
}

func (lru *CommandLRU) evictOldest() {
	elem := lru.order.Back()
	if elem == nil {
		return
	}
	lru.order.Remove(elem)
	delete(lru.cache, elem.Value.(uuid.UUID))
	lru.evictions++
}

// WarmFromKeys loads IDs oldest first so the newest end up most recent.
func (lru *CommandLRU) WarmFromKeys(ids []uuid.UUID) {
	for _, id := range ids {
		lru.Add(id)
	}
}

func (lru *CommandLRU) Size() int {
	return lru.order.Len()
}

func (lru *CommandLRU) Evictions() int64 {
	return lru.evictions
}
