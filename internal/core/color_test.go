package core

import "testing"

func TestColorCode(t *testing.T) {
	tests := []struct {
		c    Color
		want string
	}{
		{ColorDefault, ""},
		{ColorRed, "1"},
		{ColorWhite, "7"},
		{ColorBrightWhite, "15"},
		{ColorOrange, "208"},
		{ColorGray, "245"},
		{ColorGray + 1, ""},
	}

	for _, tt := range tests {
		if got := tt.c.Code(); got != tt.want {
			t.Errorf("Color(%d).Code() = %q, want %q", tt.c, got, tt.want)
		}
	}

	for c := ColorDefault + 1; c <= ColorGray; c++ {
		if c.Code() == "" {
			t.Errorf("Color(%d) has no code", c)
		}
	}
}

func TestDiskColor(t *testing.T) {
	if DiskColor(0) != ColorDefault {
		t.Error("size 0 should have no color")
	}
	if DiskColor(1) != ColorRed || DiskColor(2) != ColorOrange {
		t.Errorf("DiskColor(1), DiskColor(2) = %v, %v", DiskColor(1), DiskColor(2))
	}

	// The palette wraps for towers taller than it.
	n := len(diskPalette)
	if DiskColor(n+1) != DiskColor(1) {
		t.Errorf("DiskColor(%d) = %v, want the first palette color", n+1, DiskColor(n+1))
	}
	for size := 2; size <= 15; size++ {
		if DiskColor(size) == DiskColor(size-1) {
			t.Errorf("disks %d and %d share a color", size-1, size)
		}
	}
}
