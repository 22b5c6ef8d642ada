package tui

import "testing"

func TestValidHex(t *testing.T) {
	for _, ok := range []string{"#FF00FF", "#a1b2c3"} {
		if err := validHex(ok); err != nil {
			t.Errorf("expected %s to be accepted, got %v", ok, err)
		}
	}
	for _, bad := range []string{"FF00FF", "#FF00F", "#GG00FF", ""} {
		if err := validHex(bad); err == nil {
			t.Errorf("expected %q to be rejected", bad)
		}
	}
}

func TestGetCustomTheme(t *testing.T) {
	if GetCustomTheme("42") == nil {
		t.Fatalf("expected a theme")
	}
}
