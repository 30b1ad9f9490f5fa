package diag

import "testing"

type aRanger struct {
	Ranging
}

func TestEmbeddingRangingImplementsRanger(t *testing.T) {
	r := Ranging{1, 10}
	s := Ranger(aRanger{Ranging{1, 10}})
	if s.Range() != r {
		t.Errorf("s.Range() = %v, want %v", s.Range(), r)
	}
}

func TestIsKnown(t *testing.T) {
	if Unknown.IsKnown() {
		t.Errorf("Unknown.IsKnown() = true, want false")
	}
	if !(Ranging{0, 4}).IsKnown() {
		t.Errorf("Ranging{0, 4}.IsKnown() = false, want true")
	}
}

func TestPointRanging(t *testing.T) {
	if r := PointRanging(3); r != (Ranging{3, 3}) {
		t.Errorf("PointRanging(3) = %v, want 3-3", r)
	}
}

func TestMixedRanging(t *testing.T) {
	r := MixedRanging(Ranging{1, 2}, Ranging{4, 8})
	if r != (Ranging{1, 8}) {
		t.Errorf("MixedRanging = %v, want 1-8", r)
	}
}
