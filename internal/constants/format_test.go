package constants

import "testing"

func TestOutputFormat_Valid(t *testing.T) {
	tests := []struct {
		name   string
		format OutputFormat
		want   bool
	}{
		{"text", FormatText, true},
		{"json", FormatJSON, true},
		{"empty", OutputFormat(""), false},
		{"uppercase", OutputFormat("JSON"), false},
		{"unknown", OutputFormat("csv"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.format.Valid(); got != tt.want {
				t.Errorf("OutputFormat(%q).Valid() = %v, want %v", tt.format, got, tt.want)
			}
		})
	}
}

func TestNeighbors_AxisAligned(t *testing.T) {
	seen := make(map[Offset]bool)
	for _, off := range Neighbors {
		if abs(off.DX)+abs(off.DY) != 1 {
			t.Errorf("offset %+v is not a unit axis step", off)
		}
		if seen[off] {
			t.Errorf("offset %+v listed twice", off)
		}
		seen[off] = true
	}
	if len(seen) != 4 {
		t.Errorf("expected 4 distinct neighbors, got %d", len(seen))
	}
}

func TestTransferNeverExceedsBalance(t *testing.T) {
	// A city with four neighbors must never send more than it holds.
	for _, balance := range []int{0, 1, 999, 1000, 3999, 4000, InitialCoins} {
		sent := len(Neighbors) * (balance / TransferDivisor)
		if sent > balance {
			t.Errorf("balance %d: sends %d", balance, sent)
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
