package editor

import "testing"

func TestRangeEnd(t *testing.T) {
	r := Range{Start: 3, Len: 4}
	if r.End() != 7 {
		t.Errorf("End() = %d, want 7", r.End())
	}
	if r.IsCursor() {
		t.Error("non-empty range should not be a cursor")
	}
	if !(Range{Start: 3}).IsCursor() {
		t.Error("zero-length range should be a cursor")
	}
}

func TestClampRanges(t *testing.T) {
	tests := []struct {
		name   string
		ranges []Range
		n      int
		want   []Range
	}{
		{"in range untouched", []Range{{2, 3}}, 10, []Range{{2, 3}}},
		{"cursor at end kept", []Range{{10, 0}}, 10, []Range{{10, 0}}},
		{"length clamped", []Range{{8, 5}}, 10, []Range{{8, 2}}},
		{"start beyond dropped", []Range{{11, 0}}, 10, nil},
		{"negative start dropped", []Range{{-1, 2}}, 10, nil},
		{"mixed", []Range{{0, 4}, {12, 1}, {9, 9}}, 10, []Range{{0, 4}, {9, 1}}},
		{"empty input", nil, 10, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClampRanges(tt.ranges, tt.n)
			if len(got) != len(tt.want) {
				t.Fatalf("ClampRanges() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("range %d = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}
