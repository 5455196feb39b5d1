package math_test

import (
	fpmath "GaugeLedger/internal/math"
	"testing"

	"github.com/holiman/uint256"
)

func TestEpochStartEnd(t *testing.T) {
	tests := []struct {
		name      string
		ts        uint64
		wantStart uint64
		wantEnd   uint64
	}{
		{"genesis", 0, 0, 604800},
		{"mid first epoch", 302400, 0, 604800},
		{"last second of epoch", 604799, 0, 604800},
		{"exact boundary", 604800, 604800, 1209600},
		{"later epoch", 1_700_000_000, 1_699_488_000, 1_700_092_800},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := fpmath.EpochStart(tt.ts); got != tt.wantStart {
				t.Errorf("EpochStart(%d): got %d, want %d", tt.ts, got, tt.wantStart)
			}
			if got := fpmath.EpochEnd(tt.ts); got != tt.wantEnd {
				t.Errorf("EpochEnd(%d): got %d, want %d", tt.ts, got, tt.wantEnd)
			}
		})
	}
}

func TestTimeUntilEpochEndNeverZero(t *testing.T) {
	for _, ts := range []uint64{0, 1, 604799, 604800, 604801, 1_700_000_000} {
		if fpmath.TimeUntilEpochEnd(ts) == 0 {
			t.Errorf("TimeUntilEpochEnd(%d) is zero", ts)
		}
	}
}

func TestPerUnitRoundTrip(t *testing.T) {
	amount := uint256.NewInt(10_000)
	liquidity := uint256.NewInt(1_000)

	perUnit, err := fpmath.ToPerUnit(amount, liquidity)
	if err != nil {
		t.Fatalf("ToPerUnit: %v", err)
	}

	back, err := fpmath.FromPerUnit(perUnit, liquidity)
	if err != nil {
		t.Fatalf("FromPerUnit: %v", err)
	}
	if !back.Eq(amount) {
		t.Errorf("round trip: got %s, want %s", back.Dec(), amount.Dec())
	}
}

func TestPerUnitRoundsDown(t *testing.T) {
	perUnit, err := fpmath.ToPerUnit(uint256.NewInt(10), uint256.NewInt(3))
	if err != nil {
		t.Fatalf("ToPerUnit: %v", err)
	}
	back, _ := fpmath.FromPerUnit(perUnit, uint256.NewInt(3))
	if back.Uint64() != 9 {
		t.Errorf("expected rounding down to 9, got %s", back.Dec())
	}
}

func TestMulDivZeroDenominator(t *testing.T) {
	z, err := fpmath.MulDiv(uint256.NewInt(5), uint256.NewInt(5), new(uint256.Int))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !z.IsZero() {
		t.Errorf("expected zero, got %s", z.Dec())
	}
}

func TestMulOverflow(t *testing.T) {
	maxU := new(uint256.Int).SetAllOne()
	if _, err := fpmath.Mul(maxU, uint256.NewInt(2)); err == nil {
		t.Error("expected overflow error")
	}
	if _, err := fpmath.Add(maxU, uint256.NewInt(1)); err == nil {
		t.Error("expected overflow error")
	}
}

func TestMin(t *testing.T) {
	a, b := uint256.NewInt(3), uint256.NewInt(7)
	if fpmath.Min(a, b).Uint64() != 3 || fpmath.Min(b, a).Uint64() != 3 {
		t.Error("Min returned the larger operand")
	}
}
