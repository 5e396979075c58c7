package overlay

import "testing"

func TestModeTransitions(t *testing.T) {
	cases := []struct {
		from Mode
		ev   Event
		want Mode
	}{
		{ModeNormal, EventToggleVisible, ModeHidden},
		{ModeNormal, EventToggleAdjust, ModeAdjust},
		{ModeAdjust, EventToggleVisible, ModeHidden},
		{ModeAdjust, EventToggleAdjust, ModeNormal},
		{ModeHidden, EventToggleVisible, ModeNormal},
		{ModeHidden, EventToggleAdjust, ModeHidden},
	}
	for _, tc := range cases {
		if got := tc.from.Next(tc.ev); got != tc.want {
			t.Errorf("%v + event %d = %v, want %v", tc.from, tc.ev, got, tc.want)
		}
	}
}

func TestHidingLeavesAdjust(t *testing.T) {
	// Adjust -> hide -> unhide must land in normal, not back in adjust.
	m := ModeAdjust
	m = m.Next(EventToggleVisible)
	if m != ModeHidden {
		t.Fatalf("expected hidden, got %v", m)
	}
	m = m.Next(EventToggleVisible)
	if m != ModeNormal {
		t.Fatalf("expected normal after unhide, got %v", m)
	}
}

func TestModePredicates(t *testing.T) {
	if !ModeNormal.Visible() || !ModeAdjust.Visible() || ModeHidden.Visible() {
		t.Error("Visible predicate wrong")
	}
	if ModeNormal.Adjusting() || !ModeAdjust.Adjusting() || ModeHidden.Adjusting() {
		t.Error("Adjusting predicate wrong")
	}
}
