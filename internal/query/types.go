package query

// StakeView is one position in gauge custody, as projected.
type StakeView struct {
	PositionID   uint64 `json:"position_id"`
	Owner        string `json:"owner"`
	Liquidity    string `json:"liquidity"`
	StakedAt     int64  `json:"staked_at"`
	LastSequence int64  `json:"last_sequence"`
}

// ClaimView is the lifetime payout of one (owner, position) pair.
type ClaimView struct {
	Owner         string `json:"owner"`
	PositionID    uint64 `json:"position_id"`
	TotalClaimed  string `json:"total_claimed"`
	ClaimCount    int64  `json:"claim_count"`
	LastClaimedAt int64  `json:"last_claimed_at"`
}

// RateView is one deposit that reset the emission rate.
type RateView struct {
	Sequence      int64  `json:"sequence"`
	Caller        string `json:"caller"`
	Deposit       string `json:"deposit"`
	CarryOver     string `json:"carry_over"`
	Leftover      string `json:"leftover"`
	RatePerSecond string `json:"rate_per_second"`
	EpochStart    int64  `json:"epoch_start"`
	PeriodEnd     int64  `json:"period_end"`
	Timestamp     int64  `json:"timestamp"`
}

// FeeHarvestView is one pool fee collection by the gauge.
type FeeHarvestView struct {
	Sequence   int64  `json:"sequence"`
	Index      int    `json:"index"`
	Caller     string `json:"caller"`
	Amount0    string `json:"amount0"`
	Amount1    string `json:"amount1"`
	Forwarded0 string `json:"forwarded0"`
	Forwarded1 string `json:"forwarded1"`
	Timestamp  int64  `json:"timestamp"`
}

// IntegrityReport is the result of a command log check.
type IntegrityReport struct {
	IsHealthy       bool    `json:"is_healthy"`
	LastSequence    int64   `json:"last_sequence"`
	HashChainBreaks []int64 `json:"hash_chain_breaks,omitempty"`
	SequenceGaps    []int64 `json:"sequence_gaps,omitempty"`
	ProjectionLag   int64   `json:"projection_lag"`
}
