// bytes_test.go - Unit Tests fuer die Groessen-Formatierung
package format

import "testing"

func TestHumanBytes(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "0 B"},
		{999, "999 B"},
		{1000, "1 KB"},
		{1500, "1.5 KB"},
		{102400, "102 KB"},
		{1000000, "1 MB"},
		{2500000, "2.5 MB"},
		{1000000000, "1 GB"},
		{1100000000, "1.1 GB"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := HumanBytes(tt.in); got != tt.want {
				t.Errorf("HumanBytes(%d) = %q, erwartet %q", tt.in, got, tt.want)
			}
		})
	}
}
