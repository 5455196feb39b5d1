package query_test

import (
	"GaugeLedger/internal/core"
	"GaugeLedger/internal/event"
	"GaugeLedger/internal/persistence"
	"GaugeLedger/internal/projection"
	"GaugeLedger/internal/query"
	"GaugeLedger/internal/sim"
	"GaugeLedger/internal/testutil"
	"context"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
	"github.com/holiman/uint256"
	"github.com/stretchr/testify/require"
)

var (
	ctrl   = common.HexToAddress("0x00000000000000000000000000000000000000a4")
	lp     = common.HexToAddress("0x00000000000000000000000000000000000000c1")
	reward = common.HexToAddress("0x00000000000000000000000000000000000000b1")
)

func h(caller common.Address, ts uint64) event.Header {
	return event.Header{ID: uuid.New(), Caller: caller, Timestamp: ts}
}

// recordHistory stakes one position, funds the gauge and claims once, and
// returns every processor output.
func recordHistory(t *testing.T) []core.CoreOutput {
	t.Helper()
	g, w, err := sim.NewGaugeWorld(sim.WorldConfig{
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
	})
	require.NoError(t, err)

	amount := uint256.NewInt(6_048_000)
	cmds := []event.Command{
		&event.MintTokensCmd{Header: h(ctrl, 0), Asset: reward, To: ctrl, Amount: amount},
		&event.MintPositionCmd{Header: h(lp, 0), PositionID: 1, Owner: lp, TickLower: -60, TickUpper: 60, Liquidity: uint256.NewInt(1000)},
		&event.StakeCmd{Header: h(lp, 10), PositionID: 1},
		&event.DepositRewardsCmd{Header: h(ctrl, 20), Amount: amount},
		&event.ClaimCmd{Header: h(lp, 900), PositionID: 1},
	}

	persist := make(chan core.CoreOutput, len(cmds))
	p := core.NewProcessor(g, w, core.ProcessorConfig{PersistChan: persist})
	for _, cmd := range cmds {
		_, err := p.Submit(cmd)
		require.NoError(t, err, "%s", cmd.CommandType())
	}
	close(persist)

	var outs []core.CoreOutput
	for out := range persist {
		outs = append(outs, out)
	}
	return outs
}

func TestQueryService_ReadsProjectedHistory(t *testing.T) {
	testutil.RequireIntegration(t)
	db, cleanup := testutil.SetupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	outs := recordHistory(t)
	require.NoError(t, persistence.NewCommandLogWriter(db).WriteBatch(ctx, outs))

	feed := make(chan core.CoreOutput, len(outs))
	for _, out := range outs {
		feed <- out
	}
	close(feed)
	require.NoError(t, projection.NewProjectionWorker(db, feed, nil).Run(ctx))

	qs := query.NewQueryService(db)
	last := int64(len(outs) - 1)

	stakes, asOf, err := qs.StakesOf(ctx, lp)
	require.NoError(t, err)
	require.Equal(t, last, asOf)
	require.Len(t, stakes, 1)
	require.Equal(t, uint64(1), stakes[0].PositionID)
	require.Equal(t, "1000", stakes[0].Liquidity)
	require.Equal(t, int64(10), stakes[0].StakedAt)

	claims, _, err := qs.ClaimsOf(ctx, lp)
	require.NoError(t, err)
	require.Len(t, claims, 1)
	require.Equal(t, int64(1), claims[0].ClaimCount)
	require.Equal(t, int64(900), claims[0].LastClaimedAt)

	rates, err := qs.RateHistory(ctx, 10, 0)
	require.NoError(t, err)
	require.Len(t, rates, 1)
	require.Equal(t, int64(3), rates[0].Sequence)
	require.Equal(t, "6048000", rates[0].Deposit)

	older, err := qs.RateHistory(ctx, 10, 3)
	require.NoError(t, err)
	require.Empty(t, older)

	report, err := qs.VerifyIntegrity(ctx)
	require.NoError(t, err)
	require.True(t, report.IsHealthy, "report: %+v", report)
	require.Equal(t, last, report.LastSequence)
	require.Zero(t, report.ProjectionLag)
}
