package ingestion_test

import (
	"GaugeLedger/internal/event"
	"GaugeLedger/internal/ingestion"
	"errors"
	"testing"
	"time"
)

const stakeJSON = `{
	"type": "stake",
	"command_id": "550e8400-e29b-41d4-a716-446655440000",
	"caller": "0x00000000000000000000000000000000000000c1",
	"timestamp": 1700000000,
	"position_id": 9
}`

func raw(subject, data string) ingestion.RawCommand {
	return ingestion.RawCommand{
		Subject:  subject,
		Data:     []byte(data),
		Received: time.Now(),
	}
}

func TestCommandSubject(t *testing.T) {
	if got := ingestion.CommandSubject(event.CommandTypeDepositRewards); got != "gauge.commands.deposit_rewards" {
		t.Errorf("subject: got %s", got)
	}
}

func TestParseRawCommand(t *testing.T) {
	cmd, err := ingestion.ParseRawCommand(raw("gauge.commands.stake", stakeJSON))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	stake, ok := cmd.(*event.StakeCmd)
	if !ok {
		t.Fatalf("expected *event.StakeCmd, got %T", cmd)
	}
	if stake.PositionID != 9 {
		t.Errorf("position: got %d, want 9", stake.PositionID)
	}
	if stake.Time() != 1700000000 {
		t.Errorf("timestamp: got %d", stake.Time())
	}
}

func TestParseRawCommand_SubjectTokens(t *testing.T) {
	tests := []struct {
		name    string
		subject string
		wantErr bool
	}{
		{"exact", "gauge.commands.stake", false},
		{"partitioned", "gauge.commands.stake.shard-3", false},
		{"bare prefix", "gauge.commands", false},
		{"other subject", "admin.replay", false},
		{"mismatch", "gauge.commands.claim", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ingestion.ParseRawCommand(raw(tt.subject, stakeJSON))
			if tt.wantErr {
				if !errors.Is(err, ingestion.ErrSubjectMismatch) {
					t.Errorf("expected ErrSubjectMismatch, got %v", err)
				}
				return
			}
			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestParseRawCommand_Malformed(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"invalid json", `{not json`},
		{"unknown type", `{"type":"migrate_gauge","command_id":"550e8400-e29b-41d4-a716-446655440000","caller":"0x00000000000000000000000000000000000000c1"}`},
		{"bad uuid", `{"type":"stake","command_id":"nope","caller":"0x00000000000000000000000000000000000000c1"}`},
		{"bad caller", `{"type":"stake","command_id":"550e8400-e29b-41d4-a716-446655440000","caller":"alice"}`},
		{"bad amount", `{"type":"deposit_rewards","command_id":"550e8400-e29b-41d4-a716-446655440000","caller":"0x00000000000000000000000000000000000000c1","amount":"-5"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ingestion.ParseRawCommand(raw("gauge.commands", tt.data)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestParseRawCommand_UnknownTypeError(t *testing.T) {
	_, err := ingestion.ParseRawCommand(raw("gauge.commands", `{"type":"migrate_gauge"}`))
	var unknown *event.UnknownTypeError
	if !errors.As(err, &unknown) {
		t.Fatalf("expected UnknownTypeError, got %v", err)
	}
	if unknown.Type != "migrate_gauge" {
		t.Errorf("type: got %s", unknown.Type)
	}
}
