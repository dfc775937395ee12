package scte35

import "testing"

func TestToPTSModularWrap(t *testing.T) {
	cases := []struct {
		ticks uint64
		want  uint64
	}{
		{0, 0},
		{300, 1},
		{9_000_000, 30_000},
		{90_000_000, 300_000},
		// (2^33 * 300) wraps back to zero.
		{ptsWrapMod * ClockScale, 0},
		{ptsWrapMod*ClockScale + 300, 1},
	}
	for _, c := range cases {
		got := uint64(toPTS(c.ticks))
		if got != c.want {
			t.Errorf("toPTS(%d) = %d, want %d", c.ticks, got, c.want)
		}
	}
}
