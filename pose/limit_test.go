package pose

import "testing"

func TestLimit_Clamp(t *testing.T) {
	tests := []struct {
		name  string
		limit Limit
		value float64
		want  float64
	}{
		{"inside", Limit{-1, 1}, 0.5, 0.5},
		{"below", Limit{-1, 1}, -3, -1},
		{"above", Limit{-1, 1}, 3, 1},
		{"on lower edge", Limit{-1, 1}, -1, -1},
		{"on upper edge", Limit{-1, 1}, 1, 1},
		{"degenerate", Limit{2, 2}, 10, 2},
		{"inverted below lower", Limit{1, -1}, 0, 1},
		{"inverted above lower", Limit{1, -1}, 5, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.limit.Clamp(tt.value); got != tt.want {
				t.Errorf("Clamp(%v) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}

func TestLimit_Valid(t *testing.T) {
	if !(Limit{-1, 1}).Valid() {
		t.Error("[-1, 1] should be valid")
	}
	if !(Limit{}).Valid() {
		t.Error("zero limit should be valid")
	}
	if (Limit{1, -1}).Valid() {
		t.Error("[1, -1] should be invalid")
	}
}

func TestLimits_Named(t *testing.T) {
	l := Limits{Roll: Limit{-5, 5}}

	named := l.Named()
	if len(named) != 6 {
		t.Fatalf("Named() returned %d limits, want 6", len(named))
	}
	if named[5].Axis != "roll" || named[5].Limit != (Limit{-5, 5}) {
		t.Errorf("Named()[5] = %+v, want roll [-5, 5]", named[5])
	}
}
