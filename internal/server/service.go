package server

import (
	gaugev1 "GaugeLedger/gen/go/gaugeledger/v1"
	"GaugeLedger/internal/core"
	"GaugeLedger/internal/ingestion"
	"GaugeLedger/internal/persistence"
	"GaugeLedger/internal/query"
	"GaugeLedger/internal/sim"
	"GaugeLedger/internal/state"
	"context"
	"encoding/hex"
	"encoding/json"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// SnapshotSaver persists audit snapshots.
type SnapshotSaver interface {
	SaveSnapshot(ctx context.Context, snap *persistence.SnapshotData) error
}

// ServerDeps holds everything the gauge service reads or drives. Query,
// Snapshots and Rebuild are optional; their methods answer Unavailable
// when unset.
type ServerDeps struct {
	Processor      *core.Processor
	Ingest         *ingestion.GRPCIngestService
	Query          *query.QueryService
	Snapshots      SnapshotSaver
	Rebuild        func(ctx context.Context) error
	RewardDecimals int32
	Now            func() time.Time
}

type gaugeService struct {
	gaugev1.UnimplementedGaugeServiceServer
	deps ServerDeps
}

// NewGaugeService returns the GaugeServiceServer backed by deps.
func NewGaugeService(deps ServerDeps) gaugev1.GaugeServiceServer {
	if deps.Now == nil {
		deps.Now = time.Now
	}
	return &gaugeService{deps: deps}
}

// --- Commands ---

func (s *gaugeService) Submit(ctx context.Context, req *gaugev1.SubmitRequest) (*gaugev1.SubmitResponse, error) {
	if len(req.Command) == 0 {
		return nil, status.Error(codes.InvalidArgument, "command is required")
	}
	res, err := s.deps.Ingest.Inject(ctx, []byte(req.Command))
	if err != nil {
		return nil, statusFromError(err)
	}
	return submitResponse(res)
}

func (s *gaugeService) Deposit(ctx context.Context, req *gaugev1.DepositRequest) (*gaugev1.SubmitResponse, error) {
	caller, err := parseAddress("caller", req.Caller)
	if err != nil {
		return nil, err
	}
	amount, err := query.ParseAmount(req.Amount, s.deps.RewardDecimals)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "amount: %v", err)
	}
	res, err := s.deps.Ingest.InjectDeposit(ctx, caller, amount, req.Timestamp, req.ClaimFees)
	if err != nil {
		return nil, statusFromError(err)
	}
	return submitResponse(res)
}

func (s *gaugeService) ClaimAll(ctx context.Context, req *gaugev1.ClaimAllRequest) (*gaugev1.SubmitResponse, error) {
	controller, err := parseAddress("controller", req.Controller)
	if err != nil {
		return nil, err
	}
	account, err := parseAddress("account", req.Account)
	if err != nil {
		return nil, err
	}
	res, err := s.deps.Ingest.InjectClaimAll(ctx, controller, account, req.Timestamp)
	if err != nil {
		return nil, statusFromError(err)
	}
	return submitResponse(res)
}

func submitResponse(res core.Result) (*gaugev1.SubmitResponse, error) {
	resp := &gaugev1.SubmitResponse{
		Sequence:  res.Sequence,
		Duplicate: res.Duplicate,
		StateHash: hex.EncodeToString(res.StateHash[:]),
	}
	for _, evt := range res.Events {
		data, err := json.Marshal(evt)
		if err != nil {
			return nil, status.Errorf(codes.Internal, "encode %s: %v", evt.EventType(), err)
		}
		resp.Events = append(resp.Events, &gaugev1.EventView{
			Type:     evt.EventType().String(),
			Actor:    evt.Actor(),
			DataJson: string(data),
		})
	}
	return resp, nil
}

// --- Live queries ---

func (s *gaugeService) PendingRewards(ctx context.Context, req *gaugev1.PendingRewardsRequest) (*gaugev1.PendingRewardsResponse, error) {
	resp := &gaugev1.PendingRewardsResponse{PositionId: req.PositionId}
	err := s.deps.Processor.Capture(func(g *core.Gauge, _ core.Sandbox, v core.View) error {
		at := req.At
		if at == 0 {
			at = v.LastTimestamp
		}
		amount, err := g.PendingRewards(at, state.PositionID(req.PositionId))
		if err != nil {
			return err
		}
		resp.At = at
		resp.Amount = amount.Dec()
		resp.Display = query.FormatAmount(amount, s.deps.RewardDecimals)
		resp.AsOfSequence = v.Applied - 1
		return nil
	})
	if err != nil {
		return nil, statusFromError(err)
	}
	return resp, nil
}

func (s *gaugeService) Stakes(ctx context.Context, req *gaugev1.StakesRequest) (*gaugev1.StakesResponse, error) {
	owner, err := parseAddress("owner", req.Owner)
	if err != nil {
		return nil, err
	}
	resp := &gaugev1.StakesResponse{Owner: owner.Hex(), Positions: []uint64{}}
	err = s.deps.Processor.Capture(func(g *core.Gauge, _ core.Sandbox, v core.View) error {
		for _, id := range g.StakedPositions(owner) {
			resp.Positions = append(resp.Positions, uint64(id))
		}
		resp.AsOfSequence = v.Applied - 1
		return nil
	})
	if err != nil {
		return nil, statusFromError(err)
	}
	return resp, nil
}

func (s *gaugeService) RewardEntry(ctx context.Context, req *gaugev1.RewardEntryRequest) (*gaugev1.RewardEntryResponse, error) {
	var entry state.RewardEntry
	var found bool
	err := s.deps.Processor.Read(func(g *core.Gauge) error {
		entry, found = g.RewardEntry(state.PositionID(req.PositionId))
		return nil
	})
	if err != nil {
		return nil, statusFromError(err)
	}
	if !found {
		return nil, status.Errorf(codes.NotFound, "position %d is not staked", req.PositionId)
	}
	return &gaugev1.RewardEntryResponse{
		PositionId:  req.PositionId,
		Owner:       entry.Owner.Hex(),
		TickLower:   entry.TickLower,
		TickUpper:   entry.TickUpper,
		Liquidity:   decOf(entry.Liquidity),
		Accumulated: decOf(entry.Accumulated),
		Snapshot:    decOf(entry.Snapshot),
		LastSettled: entry.LastSettled,
	}, nil
}

func (s *gaugeService) Schedule(ctx context.Context, req *gaugev1.ScheduleRequest) (*gaugev1.ScheduleResponse, error) {
	resp := &gaugev1.ScheduleResponse{}
	err := s.deps.Processor.Capture(func(g *core.Gauge, _ core.Sandbox, v core.View) error {
		now := v.LastTimestamp
		sched := g.Schedule()
		remaining := g.RemainingEmission(now)
		fees0, fees1 := g.FeeTotals()

		resp.RatePerSecond = decOf(sched.RatePerSecond)
		resp.PeriodEnd = sched.PeriodEnd
		resp.RemainingEmission = remaining.Dec()
		resp.RemainingDisplay = query.FormatAmount(remaining, s.deps.RewardDecimals)
		resp.HeldFees0 = decOf(fees0)
		resp.HeldFees1 = decOf(fees1)
		resp.TotalStaked = int64(g.TotalStaked())
		resp.AsOfSequence = v.Applied - 1
		resp.AsOfTimestamp = now
		resp.StateHash = hex.EncodeToString(v.Tip[:])
		return nil
	})
	if err != nil {
		return nil, statusFromError(err)
	}
	return resp, nil
}

func (s *gaugeService) Balance(ctx context.Context, req *gaugev1.BalanceRequest) (*gaugev1.BalanceResponse, error) {
	asset, err := parseAddress("asset", req.Asset)
	if err != nil {
		return nil, err
	}
	holder, err := parseAddress("holder", req.Holder)
	if err != nil {
		return nil, err
	}
	resp := &gaugev1.BalanceResponse{Asset: asset.Hex(), Holder: holder.Hex()}
	err = s.deps.Processor.Capture(func(_ *core.Gauge, sandbox core.Sandbox, v core.View) error {
		w, ok := sandbox.(*sim.World)
		if !ok {
			return status.Error(codes.Unimplemented, "balances need a simulated world")
		}
		resp.Amount = w.Bank().BalanceOf(asset, holder).Dec()
		resp.AsOfSequence = v.Applied - 1
		return nil
	})
	if err != nil {
		return nil, statusFromError(err)
	}
	return resp, nil
}

// --- Projected queries ---

func (s *gaugeService) ClaimHistory(ctx context.Context, req *gaugev1.ClaimHistoryRequest) (*gaugev1.ClaimHistoryResponse, error) {
	if s.deps.Query == nil {
		return nil, status.Error(codes.Unavailable, "projections are not configured")
	}
	owner, err := parseAddress("owner", req.Owner)
	if err != nil {
		return nil, err
	}
	claims, asOf, err := s.deps.Query.ClaimsOf(ctx, owner)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "claims: %v", err)
	}
	resp := &gaugev1.ClaimHistoryResponse{AsOfSequence: asOf}
	for _, c := range claims {
		resp.Claims = append(resp.Claims, &gaugev1.ClaimView{
			Owner:         c.Owner,
			PositionId:    c.PositionID,
			TotalClaimed:  c.TotalClaimed,
			ClaimCount:    c.ClaimCount,
			LastClaimedAt: c.LastClaimedAt,
		})
	}
	return resp, nil
}

func (s *gaugeService) RateHistory(ctx context.Context, req *gaugev1.RateHistoryRequest) (*gaugev1.RateHistoryResponse, error) {
	if s.deps.Query == nil {
		return nil, status.Error(codes.Unavailable, "projections are not configured")
	}
	pageSize := req.PageSize
	if pageSize <= 0 || pageSize > 500 {
		pageSize = 100
	}
	rates, err := s.deps.Query.RateHistory(ctx, int(pageSize), req.BeforeSequence)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "rate history: %v", err)
	}
	resp := &gaugev1.RateHistoryResponse{}
	for _, r := range rates {
		resp.Rates = append(resp.Rates, &gaugev1.RateView{
			Sequence:      r.Sequence,
			Caller:        r.Caller,
			Deposit:       r.Deposit,
			CarryOver:     r.CarryOver,
			Leftover:      r.Leftover,
			RatePerSecond: r.RatePerSecond,
			EpochStart:    r.EpochStart,
			PeriodEnd:     r.PeriodEnd,
			Timestamp:     r.Timestamp,
		})
	}
	return resp, nil
}

// --- Admin ---

func (s *gaugeService) TakeSnapshot(ctx context.Context, req *gaugev1.TakeSnapshotRequest) (*gaugev1.TakeSnapshotResponse, error) {
	if s.deps.Snapshots == nil {
		return nil, status.Error(codes.Unavailable, "snapshot store is not configured")
	}
	snap, err := persistence.TakeSnapshot(s.deps.Processor, s.deps.Now())
	if err != nil {
		return nil, statusFromError(err)
	}
	if err := s.deps.Snapshots.SaveSnapshot(ctx, snap); err != nil {
		return nil, status.Errorf(codes.Internal, "save snapshot: %v", err)
	}
	return &gaugev1.TakeSnapshotResponse{Applied: snap.Applied, StateHash: snap.StateHash}, nil
}

func (s *gaugeService) VerifyIntegrity(ctx context.Context, req *gaugev1.VerifyIntegrityRequest) (*gaugev1.VerifyIntegrityResponse, error) {
	if s.deps.Query == nil {
		return nil, status.Error(codes.Unavailable, "command log is not configured")
	}
	report, err := s.deps.Query.VerifyIntegrity(ctx)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "verify integrity: %v", err)
	}
	return &gaugev1.VerifyIntegrityResponse{Report: &gaugev1.IntegrityReport{
		IsHealthy:       report.IsHealthy,
		LastSequence:    report.LastSequence,
		HashChainBreaks: report.HashChainBreaks,
		SequenceGaps:    report.SequenceGaps,
		ProjectionLag:   report.ProjectionLag,
	}}, nil
}

func (s *gaugeService) RebuildProjections(ctx context.Context, req *gaugev1.RebuildProjectionsRequest) (*gaugev1.RebuildProjectionsResponse, error) {
	if s.deps.Rebuild == nil {
		return nil, status.Error(codes.Unavailable, "projections are not configured")
	}
	if err := s.deps.Rebuild(ctx); err != nil {
		return nil, status.Errorf(codes.Internal, "rebuild failed: %v", err)
	}
	return &gaugev1.RebuildProjectionsResponse{Done: true}, nil
}

// --- Helpers ---

func parseAddress(field, s string) (common.Address, error) {
	if !common.IsHexAddress(s) {
		return common.Address{}, status.Errorf(codes.InvalidArgument, "%s: malformed address %q", field, s)
	}
	return common.HexToAddress(s), nil
}

func decOf(v *uint256.Int) string {
	if v == nil {
		return "0"
	}
	return v.Dec()
}
