package engine

import "testing"

func TestLevelBoundaries(t *testing.T) {
	cases := []struct {
		xp   int
		want int
	}{
		{0, 1},
		{1, 1},
		{99, 1},
		{100, 2},
		{101, 2},
		{199, 2},
		{200, 3},
		{250, 3},
		{1000, 11},
	}
	for _, c := range cases {
		if got := LevelForXP(c.xp); got != c.want {
			t.Errorf("LevelForXP(%d)=%d, want %d", c.xp, got, c.want)
		}
	}
}

func TestLevelBoundaryPerTier(t *testing.T) {
	for k := 1; k <= 50; k++ {
		if got := LevelForXP(XPPerLevel * k); got != k+1 {
			t.Fatalf("LevelForXP(%d)=%d, want %d", XPPerLevel*k, got, k+1)
		}
		if got := LevelForXP(XPPerLevel*k - 1); got != k {
			t.Fatalf("LevelForXP(%d)=%d, want %d", XPPerLevel*k-1, got, k)
		}
	}
}

func TestLevelMonotonic(t *testing.T) {
	prev := LevelForXP(0)
	for xp := 1; xp <= 2500; xp++ {
		cur := LevelForXP(xp)
		if cur < prev {
			t.Fatalf("level decreased: LevelForXP(%d)=%d < LevelForXP(%d)=%d", xp, cur, xp-1, prev)
		}
		prev = cur
	}
}

func TestWithinPlusToNextIsTierWidth(t *testing.T) {
	for xp := 0; xp <= 1000; xp++ {
		if got := XPWithinLevel(xp) + XPToNextLevel(xp); got != XPPerLevel {
			t.Fatalf("xp=%d: within+toNext=%d, want %d", xp, got, XPPerLevel)
		}
	}
}

func TestProgressFraction(t *testing.T) {
	if got := ProgressFraction(250); got != 0.5 {
		t.Errorf("ProgressFraction(250)=%v, want 0.5", got)
	}
	for _, xp := range []int{0, 50, 99, 100, 250, 999} {
		f := ProgressFraction(xp)
		if f < 0 || f >= 1 {
			t.Errorf("ProgressFraction(%d)=%v, want value in [0,1)", xp, f)
		}
	}
}

func TestNegativeXPClamped(t *testing.T) {
	if got := LevelForXP(-5); got != 1 {
		t.Errorf("LevelForXP(-5)=%d, want 1", got)
	}
	if got := XPWithinLevel(-5); got != 0 {
		t.Errorf("XPWithinLevel(-5)=%d, want 0", got)
	}
}
