package transform

import "testing"

func TestFormatPrice(t *testing.T) {
	tests := []struct {
		cents int64
		want  string
	}{
		{0, "$0.00"},
		{5, "$0.05"},
		{99, "$0.99"},
		{100, "$1.00"},
		{1250, "$12.50"},
		{10050, "$100.50"},
		{123456, "$1234.56"},
	}

	for _, tt := range tests {
		if got := FormatPrice(tt.cents); got != tt.want {
			t.Errorf("FormatPrice(%d): got %q, want %q", tt.cents, got, tt.want)
		}
	}
}

func TestMajorUnits(t *testing.T) {
	tests := []struct {
		cents int64
		want  float64
	}{
		{0, 0},
		{1250, 12.5},
		{10050, 100.5},
		{1, 0.01},
	}

	for _, tt := range tests {
		if got := MajorUnits(tt.cents); got != tt.want {
			t.Errorf("MajorUnits(%d): got %v, want %v", tt.cents, got, tt.want)
		}
	}
}
