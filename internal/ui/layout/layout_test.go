package layout

import (
	"strings"
	"testing"
)

func TestClock(t *testing.T) {
	tests := []struct {
		secs int
		want string
	}{
		{0, "0:00"},
		{5, "0:05"},
		{65, "1:05"},
		{600, "10:00"},
		{-3, "0:00"},
	}
	for _, tt := range tests {
		if got := Clock(tt.secs); got != tt.want {
			t.Errorf("Clock(%d) = %q, want %q", tt.secs, got, tt.want)
		}
	}
}

func TestIsTooSmall(t *testing.T) {
	if !IsTooSmall(79, 30) {
		t.Error("79 columns should be too small")
	}
	if IsTooSmall(80, 24) {
		t.Error("80x24 should fit")
	}
}

func TestRenderHeaderShowsUserAndStreak(t *testing.T) {
	h := RenderHeader("Nauka", HeaderInfo{Username: "ola", Streak: 3}, 100)
	if !strings.Contains(h, "Matura") || !strings.Contains(h, "Nauka") || !strings.Contains(h, "ola") {
		t.Errorf("header missing parts: %q", h)
	}
}

func TestContentHeight(t *testing.T) {
	if got := ContentHeight(30); got != 24 {
		t.Errorf("ContentHeight(30) = %d, want 24", got)
	}
	if got := ContentHeight(4); got != 0 {
		t.Errorf("ContentHeight(4) = %d, want 0", got)
	}
}
