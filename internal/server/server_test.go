package server_test

import (
	gaugev1 "GaugeLedger/gen/go/gaugeledger/v1"
	"GaugeLedger/internal/core"
	"GaugeLedger/internal/event"
	"GaugeLedger/internal/ingestion"
	"GaugeLedger/internal/observability"
	"GaugeLedger/internal/persistence"
	"GaugeLedger/internal/server"
	"GaugeLedger/internal/sim"
	"context"
	"encoding/hex"
	"encoding/json"
	"net"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
	"github.com/holiman/uint256"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/reflect/protoregistry"
)

var (
	ctrl   = common.HexToAddress("0x00000000000000000000000000000000000000a4")
	lp     = common.HexToAddress("0x00000000000000000000000000000000000000c1")
	trader = common.HexToAddress("0x00000000000000000000000000000000000000c2")
	reward = common.HexToAddress("0x00000000000000000000000000000000000000b1")
)

func worldConfig() sim.WorldConfig {
	return sim.WorldConfig{
		Gauge: core.GaugeConfig{
			Gauge:       common.HexToAddress("0x00000000000000000000000000000000000000a1"),
			Admin:       common.HexToAddress("0x00000000000000000000000000000000000000a6"),
			RewardToken: reward,
			Asset0:      common.HexToAddress("0x00000000000000000000000000000000000000b2"),
			Asset1:      common.HexToAddress("0x00000000000000000000000000000000000000b3"),
			TickSpacing: 60,
		},
		Pool:       common.HexToAddress("0x00000000000000000000000000000000000000a2"),
		Registry:   common.HexToAddress("0x00000000000000000000000000000000000000a3"),
		Controller: ctrl,
		FeeHandler: common.HexToAddress("0x00000000000000000000000000000000000000a5"),
	}
}

type fixture struct {
	client    gaugev1.GaugeServiceClient
	processor *core.Processor
	metrics   *observability.Metrics
	snapshots *memorySnapshots
}

type memorySnapshots struct {
	saved []int64
}

func (m *memorySnapshots) SaveSnapshot(_ context.Context, snap *persistence.SnapshotData) error {
	m.saved = append(m.saved, snap.Applied)
	return nil
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	g, w, err := sim.NewGaugeWorld(worldConfig())
	require.NoError(t, err)
	p := core.NewProcessor(g, w, core.ProcessorConfig{})

	metrics := observability.NewMetrics(prometheus.NewRegistry())
	snaps := &memorySnapshots{}
	svc := server.NewGaugeService(server.ServerDeps{
		Processor:      p,
		Ingest:         ingestion.NewGRPCIngestService(p),
		Snapshots:      snaps,
		RewardDecimals: 18,
		Now:            func() time.Time { return time.Unix(0, 0) },
	})
	srv := server.NewGRPCServer("", "", svc, metrics, nil, zerolog.Nop())

	lis := bufconn.Listen(1 << 20)
	ctx, cancel := context.WithCancel(context.Background())
	go srv.Serve(ctx, lis)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)

	t.Cleanup(func() {
		conn.Close()
		cancel()
		srv.Stop()
	})
	return &fixture{client: gaugev1.NewGaugeServiceClient(conn), processor: p, metrics: metrics, snapshots: snaps}
}

func h(caller common.Address, ts uint64) event.Header {
	return event.Header{ID: uuid.New(), Caller: caller, Timestamp: ts}
}

func encode(t *testing.T, cmd event.Command) *gaugev1.SubmitRequest {
	t.Helper()
	data, err := event.EncodeCommand(cmd)
	require.NoError(t, err)
	return &gaugev1.SubmitRequest{Command: string(data)}
}

func tokens(n uint64) *uint256.Int {
	return new(uint256.Int).Mul(uint256.NewInt(n), uint256.NewInt(1_000_000_000_000_000_000))
}

// stakeOne mints rewards and a position, then stakes it at t=10.
func (f *fixture) stakeOne(t *testing.T) {
	t.Helper()
	ctx := context.Background()
	for _, cmd := range []event.Command{
		&event.MintTokensCmd{Header: h(ctrl, 0), Asset: reward, To: ctrl, Amount: tokens(10)},
		&event.MintPositionCmd{Header: h(lp, 0), PositionID: 1, Owner: lp, TickLower: -60, TickUpper: 60, Liquidity: uint256.NewInt(1000)},
		&event.StakeCmd{Header: h(lp, 10), PositionID: 1},
	} {
		_, err := f.client.Submit(ctx, encode(t, cmd))
		require.NoError(t, err, cmd.CommandType().String())
	}
}

func TestGaugeService_StakeDepositAndQuery(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.stakeOne(t)

	dep, err := f.client.Deposit(ctx, &gaugev1.DepositRequest{
		Caller: ctrl.Hex(), Amount: "6.048", Timestamp: 20, ClaimFees: true,
	})
	require.NoError(t, err)
	require.Equal(t, int64(3), dep.Sequence)
	require.Len(t, dep.Events, 1)
	require.Equal(t, "RateUpdated", dep.Events[0].Type)
	require.True(t, json.Valid([]byte(dep.Events[0].DataJson)), dep.Events[0].DataJson)

	sched, err := f.client.Schedule(ctx, &gaugev1.ScheduleRequest{})
	require.NoError(t, err)
	require.NotEqual(t, "0", sched.RatePerSecond)
	require.Greater(t, sched.PeriodEnd, uint64(20))
	require.Equal(t, int64(1), sched.TotalStaked)
	require.Equal(t, int64(3), sched.AsOfSequence)
	require.Equal(t, uint64(20), sched.AsOfTimestamp)
	hash := f.processor.StateHash()
	require.Equal(t, hex.EncodeToString(hash[:]), sched.StateHash)

	pending, err := f.client.PendingRewards(ctx, &gaugev1.PendingRewardsRequest{PositionId: 1, At: 1020})
	require.NoError(t, err)
	amount, err := uint256.FromDecimal(pending.Amount)
	require.NoError(t, err)
	require.False(t, amount.IsZero())
	require.True(t, amount.Lt(tokens(7)))
	require.NotEmpty(t, pending.Display)

	stakes, err := f.client.Stakes(ctx, &gaugev1.StakesRequest{Owner: lp.Hex()})
	require.NoError(t, err)
	require.Equal(t, []uint64{1}, stakes.Positions)

	entry, err := f.client.RewardEntry(ctx, &gaugev1.RewardEntryRequest{PositionId: 1})
	require.NoError(t, err)
	require.Equal(t, lp.Hex(), entry.Owner)
	require.Equal(t, "1000", entry.Liquidity)
	require.Equal(t, int32(-60), entry.TickLower)

	bal, err := f.client.Balance(ctx, &gaugev1.BalanceRequest{Asset: reward.Hex(), Holder: ctrl.Hex()})
	require.NoError(t, err)
	require.Equal(t, "3952000000000000000", bal.Amount)

	snap, err := f.client.TakeSnapshot(ctx, &gaugev1.TakeSnapshotRequest{})
	require.NoError(t, err)
	require.Equal(t, int64(4), snap.Applied)
	require.Equal(t, []int64{4}, f.snapshots.saved)

	require.Equal(t, 1.0, testutil.ToFloat64(f.metrics.QueryRequests.WithLabelValues("Schedule", "OK")))
}

func TestGaugeService_Duplicate(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.stakeOne(t)

	req := encode(t, &event.MoveTickCmd{Header: h(trader, 30), Tick: 120})
	first, err := f.client.Submit(ctx, req)
	require.NoError(t, err)
	require.False(t, first.Duplicate)

	again, err := f.client.Submit(ctx, req)
	require.NoError(t, err)
	require.True(t, again.Duplicate)
	require.Equal(t, f.processor.Sequence(), again.Sequence)
}

func TestGaugeService_ErrorCodes(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.stakeOne(t)

	tests := []struct {
		name string
		call func() error
		want codes.Code
	}{
		{"unknown command type", func() error {
			_, err := f.client.Submit(ctx, &gaugev1.SubmitRequest{Command: `{"type":"teleport"}`})
			return err
		}, codes.InvalidArgument},
		{"empty command", func() error {
			_, err := f.client.Submit(ctx, &gaugev1.SubmitRequest{})
			return err
		}, codes.InvalidArgument},
		{"already staked", func() error {
			_, err := f.client.Submit(ctx, encode(t, &event.StakeCmd{Header: h(lp, 11), PositionID: 1}))
			return err
		}, codes.FailedPrecondition},
		{"not the owner", func() error {
			_, err := f.client.Submit(ctx, encode(t, &event.UnstakeCmd{Header: h(trader, 11), PositionID: 1}))
			return err
		}, codes.FailedPrecondition},
		{"clock regression", func() error {
			_, err := f.client.Submit(ctx, encode(t, &event.ClaimCmd{Header: h(lp, 5), PositionID: 1}))
			return err
		}, codes.FailedPrecondition},
		{"claim all by non-controller", func() error {
			_, err := f.client.ClaimAll(ctx, &gaugev1.ClaimAllRequest{Controller: lp.Hex(), Account: lp.Hex(), Timestamp: 12})
			return err
		}, codes.PermissionDenied},
		{"deposit by non-controller", func() error {
			_, err := f.client.Deposit(ctx, &gaugev1.DepositRequest{Caller: lp.Hex(), Amount: "1", Timestamp: 12})
			return err
		}, codes.PermissionDenied},
		{"malformed amount", func() error {
			_, err := f.client.Deposit(ctx, &gaugev1.DepositRequest{Caller: ctrl.Hex(), Amount: "lots", Timestamp: 12})
			return err
		}, codes.InvalidArgument},
		{"zero amount", func() error {
			_, err := f.client.Deposit(ctx, &gaugev1.DepositRequest{Caller: ctrl.Hex(), Amount: "0", Timestamp: 12})
			return err
		}, codes.InvalidArgument},
		{"malformed owner", func() error {
			_, err := f.client.Stakes(ctx, &gaugev1.StakesRequest{Owner: "0x12"})
			return err
		}, codes.InvalidArgument},
		{"unknown reward entry", func() error {
			_, err := f.client.RewardEntry(ctx, &gaugev1.RewardEntryRequest{PositionId: 99})
			return err
		}, codes.NotFound},
		{"pending for unstaked position", func() error {
			_, err := f.client.PendingRewards(ctx, &gaugev1.PendingRewardsRequest{PositionId: 99})
			return err
		}, codes.FailedPrecondition},
		{"projections not configured", func() error {
			_, err := f.client.ClaimHistory(ctx, &gaugev1.ClaimHistoryRequest{Owner: lp.Hex()})
			return err
		}, codes.Unavailable},
		{"rebuild not configured", func() error {
			_, err := f.client.RebuildProjections(ctx, &gaugev1.RebuildProjectionsRequest{})
			return err
		}, codes.Unavailable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.call()
			require.Error(t, err)
			require.Equal(t, tt.want, status.Code(err), err.Error())
		})
	}

	// None of the rejected commands advanced the log.
	require.Equal(t, int64(3), f.processor.Sequence())
}

func TestGaugeService_DescriptorIsRegistered(t *testing.T) {
	desc, err := protoregistry.GlobalFiles.FindDescriptorByName("gaugeledger.v1.GaugeService")
	require.NoError(t, err)
	require.Equal(t, "gaugeledger/v1/gauge.proto", desc.ParentFile().Path())
	require.Equal(t, gaugev1.GaugeService_ServiceDesc.ServiceName, string(desc.FullName()))
}
