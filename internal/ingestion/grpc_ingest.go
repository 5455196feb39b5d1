package ingestion

import (
	"GaugeLedger/internal/core"
	"GaugeLedger/internal/event"
	"context"
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
	"github.com/holiman/uint256"
)

// ErrMalformedCommand marks payloads that do not decode as a command.
var ErrMalformedCommand = errors.New("malformed command")

// GRPCIngestService submits commands received over RPC. It is meant for
// admin operations and manual injection; producers use the NATS stream.
type GRPCIngestService struct {
	submitter Submitter
}

func NewGRPCIngestService(submitter Submitter) *GRPCIngestService {
	return &GRPCIngestService{submitter: submitter}
}

// Inject decodes a wire-format command and submits it.
func (s *GRPCIngestService) Inject(ctx context.Context, data []byte) (core.Result, error) {
	cmd, err := event.DecodeCommand(data)
	if err != nil {
		return core.Result{}, fmt.Errorf("%w: %w", ErrMalformedCommand, err)
	}
	return s.Submit(ctx, cmd)
}

// Submit applies cmd unless ctx is already done.
func (s *GRPCIngestService) Submit(ctx context.Context, cmd event.Command) (core.Result, error) {
	if err := ctx.Err(); err != nil {
		return core.Result{}, err
	}
	return s.submitter.Submit(cmd)
}

// InjectDeposit deposits amount of the reward token on behalf of caller.
// A fresh command ID is assigned, so a retried call deposits twice.
func (s *GRPCIngestService) InjectDeposit(
	ctx context.Context,
	caller common.Address,
	amount *uint256.Int,
	timestamp uint64,
	claimFees bool,
) (core.Result, error) {
	if amount == nil || amount.IsZero() {
		return core.Result{}, core.ErrZeroAmount
	}

	h := event.Header{ID: uuid.New(), Caller: caller, Timestamp: timestamp}
	var cmd event.Command = &event.DepositRewardsCmd{Header: h, Amount: amount}
	if !claimFees {
		cmd = &event.DepositRewardsNoFeeClaimCmd{Header: h, Amount: amount}
	}
	return s.Submit(ctx, cmd)
}

// InjectClaimAll pays every position account has staked. Only the reward
// controller may call it.
func (s *GRPCIngestService) InjectClaimAll(
	ctx context.Context,
	controller common.Address,
	account common.Address,
	timestamp uint64,
) (core.Result, error) {
	cmd := &event.ClaimAllCmd{
		Header:  event.Header{ID: uuid.New(), Caller: controller, Timestamp: timestamp},
		Account: account,
	}
	return s.Submit(ctx, cmd)
}
