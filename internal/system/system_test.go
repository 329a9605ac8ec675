package system

import "testing"

func TestWorkersPositive(t *testing.T) {
	if Workers() < 1 {
		t.Errorf("expected at least one worker, got %d", Workers())
	}
}

func TestFrameBudget(t *testing.T) {
	const frame = 4 * 1280 * 720
	tests := []struct {
		name      string
		workers   int
		available uint64
		want      int
	}{
		{"memory unknown", 8, 0, 8},
		{"plenty of memory", 8, 16 << 30, 8},
		{"memory bound", 8, 3 * 4 * frame, 3},
		{"tiny memory", 8, frame, 1},
		{"no workers", 0, 16 << 30, 1},
	}
	for _, tt := range tests {
		if got := FrameBudget(tt.workers, frame, tt.available); got != tt.want {
			t.Errorf("%s: got %d, want %d", tt.name, got, tt.want)
		}
	}
}
