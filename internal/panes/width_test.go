package panes

import "testing"

func TestGridColumns(t *testing.T) {
	tests := []struct {
		name   string
		panePx int
		want   int
	}{
		{"full width fits four", 952, 4},
		{"narrow pane floors at one", 300, 1},
		{"zero floors at one", 0, 1},
		{"huge pane caps at four", 4000, 4},
		{"two card widths", 480, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GridColumns(tt.panePx); got != tt.want {
				t.Errorf("GridColumns(%d) = %d, want %d", tt.panePx, got, tt.want)
			}
		})
	}
}

func TestGridColumnsForCells(t *testing.T) {
	// 119 cells * 8px = 952px.
	if got := GridColumnsForCells(119); got != 4 {
		t.Errorf("GridColumnsForCells(119) = %d, want 4", got)
	}
	if got := GridColumnsForCells(30); got != 1 {
		t.Errorf("GridColumnsForCells(30) = %d, want 1", got)
	}
}
