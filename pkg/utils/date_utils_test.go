package utils

import "testing"

func TestParseDate(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{"2026-09-01", false},
		{" 2026-09-01 ", false},
		{"2026-9-1", true},
		{"01/09/2026", true},
		{"", true},
	}

	for _, tt := range tests {
		_, err := ParseDate(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseDate(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
		}
	}
}

func TestMonthYearOf(t *testing.T) {
	if got := MonthYearOf("2026-09-15"); got != "2026-09" {
		t.Errorf("MonthYearOf(2026-09-15) = %q", got)
	}
	if got := MonthYearOf("garbage"); got != "" {
		t.Errorf("MonthYearOf(garbage) = %q, want empty", got)
	}
}
