package event_test

import (
	"GaugeLedger/internal/event"
	"errors"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
	"github.com/holiman/uint256"
)

func header(ts uint64) event.Header {
	return event.Header{
		ID:        uuid.MustParse("550e8400-e29b-41d4-a716-446655440000"),
		Caller:    common.HexToAddress("0x00000000000000000000000000000000000a11ce"),
		Timestamp: ts,
	}
}

func TestEncodeDecode_MintPosition(t *testing.T) {
	in := &event.MintPositionCmd{
		Header:     header(42),
		PositionID: 7,
		Owner:      common.HexToAddress("0x0000000000000000000000000000000000000b0b"),
		TickLower:  -120,
		TickUpper:  240,
		Liquidity:  uint256.MustFromDecimal("1000000000000000000000"),
	}

	data, err := event.EncodeCommand(in)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	cmd, err := event.DecodeCommand(data)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	out, ok := cmd.(*event.MintPositionCmd)
	if !ok {
		t.Fatalf("expected *event.MintPositionCmd, got %T", cmd)
	}
	if out.Header != in.Header {
		t.Errorf("header: got %+v, want %+v", out.Header, in.Header)
	}
	if out.PositionID != 7 || out.Owner != in.Owner {
		t.Errorf("identity mismatch: %+v", out)
	}
	if out.TickLower != -120 || out.TickUpper != 240 {
		t.Errorf("ticks: got [%d,%d]", out.TickLower, out.TickUpper)
	}
	if !out.Liquidity.Eq(in.Liquidity) {
		t.Errorf("liquidity: got %s", out.Liquidity.Dec())
	}
}

func TestDecode_DepositRewards(t *testing.T) {
	data := []byte(`{
		"type": "deposit_rewards",
		"command_id": "660e8400-e29b-41d4-a716-446655440001",
		"caller": "0x00000000000000000000000000000000000000c0",
		"timestamp": 604800,
		"amount": "10000000000000000000000"
	}`)

	cmd, err := event.DecodeCommand(data)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	dep, ok := cmd.(*event.DepositRewardsCmd)
	if !ok {
		t.Fatalf("expected *event.DepositRewardsCmd, got %T", cmd)
	}
	if dep.Amount.Dec() != "10000000000000000000000" {
		t.Errorf("amount: got %s", dep.Amount.Dec())
	}
	if dep.Time() != 604800 {
		t.Errorf("timestamp: got %d", dep.Time())
	}
	if dep.CommandType().IsSandbox() {
		t.Error("deposit is a gauge command")
	}
}

func TestDecode_Rejects(t *testing.T) {
	cases := map[string]string{
		"unknown type":   `{"type":"migrate_gauge","command_id":"550e8400-e29b-41d4-a716-446655440000","caller":"0x00000000000000000000000000000000000000c0"}`,
		"bad uuid":       `{"type":"stake","command_id":"nope","caller":"0x00000000000000000000000000000000000000c0"}`,
		"bad caller":     `{"type":"stake","command_id":"550e8400-e29b-41d4-a716-446655440000","caller":"alice"}`,
		"bad amount":     `{"type":"deposit_rewards","command_id":"550e8400-e29b-41d4-a716-446655440000","caller":"0x00000000000000000000000000000000000000c0","amount":"-5"}`,
		"malformed json": `{"type":`,
	}

	for name, data := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := event.DecodeCommand([]byte(data)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestDecode_UnknownTypeError(t *testing.T) {
	_, err := event.DecodeCommand([]byte(`{"type":"migrate_gauge"}`))
	var ute *event.UnknownTypeError
	if !errors.As(err, &ute) {
		t.Fatalf("expected UnknownTypeError, got %v", err)
	}
	if ute.Type != "migrate_gauge" {
		t.Errorf("type: got %q", ute.Type)
	}
}

func TestWrapAndDecodeEnvelope(t *testing.T) {
	claimed := &event.RewardClaimed{
		Owner:      common.HexToAddress("0x00000000000000000000000000000000000a11ce"),
		PositionID: 3,
		Amount:     uint256.NewInt(1234),
	}

	envs, err := event.Wrap(9, uuid.New(), 100, []event.Event{claimed})
	if err != nil {
		t.Fatalf("wrap: %v", err)
	}
	if len(envs) != 1 || envs[0].Sequence != 9 || envs[0].EventType != event.EventTypeRewardClaimed {
		t.Fatalf("unexpected envelope: %+v", envs)
	}

	evt, err := envs[0].Decode()
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	got := evt.(*event.RewardClaimed)
	if got.PositionID != 3 || got.Amount.Uint64() != 1234 || got.Owner != claimed.Owner {
		t.Errorf("round trip mismatch: %+v", got)
	}
}
