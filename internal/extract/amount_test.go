package extract

import "testing"

func TestNormalizeAmount(t *testing.T) {
	tests := []struct {
		name  string
		raw   string
		want  int64
		found bool
	}{
		{"plain integer", "1200", 1200, true},
		{"currency suffix", "1200 Kz", 1200, true},
		{"currency prefix", "AOA 450", 450, true},
		{"comma decimal", "450,75", 451, true},
		{"period decimal", "450.25", 450, true},
		{"zero", "0", 0, true},
		{"letters only", "Kz", 0, false},
		{"empty", "", 0, false},
		{"two separators", "1.200,50", 0, false},
		{"garbage", "..,,", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := normalizeAmount(tt.raw)
			if ok != tt.found {
				t.Fatalf("normalizeAmount(%q) ok = %v, want %v", tt.raw, ok, tt.found)
			}
			if ok && got != tt.want {
				t.Errorf("normalizeAmount(%q) = %d, want %d", tt.raw, got, tt.want)
			}
		})
	}
}
