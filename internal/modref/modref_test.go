package modref

import "testing"

func TestScalarOps(t *testing.T) {
	const m = 17
	if AddMod64(16, 5, m) != 4 || SubMod64(5, 7, m) != 15 || MulMod64(5, 7, m) != 1 {
		t.Fatalf("toy arithmetic is wrong")
	}
	big := uint64(1<<63 + 25)
	if got := AddMod64(^uint64(0), ^uint64(0), big); got != (2*(^uint64(0)%big))%big {
		t.Fatalf("AddMod64 near the top: %d", got)
	}
	if MulMod64(^uint64(0), 2, 1<<61-1) != (^uint64(0)%(1<<61-1))*2%(1<<61-1) {
		t.Fatalf("MulMod64 wide product")
	}
}

func TestNegacyclicMul(t *testing.T) {
	const m = 17
	// (1 + X) * (1 + X^3) mod X^4+1 = 1 + X + X^3 + X^4 = X + X^3
	got := NegacyclicMul([]uint64{1, 1, 0, 0}, []uint64{1, 0, 0, 1}, m)
	want := []uint64{0, 1, 0, 1}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
	// X^3 * X^3 = X^6 = -X^2
	got = NegacyclicMul([]uint64{0, 0, 0, 1}, []uint64{0, 0, 0, 1}, m)
	if got[2] != m-1 || got[0]+got[1]+got[3] != 0 {
		t.Fatalf("X^3*X^3 = %v", got)
	}
}
