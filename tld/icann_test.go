package tld

import "testing"

func TestICANNContains(t *testing.T) {
	tests := []struct {
		label string
		want  bool
	}{
		{label: "com", want: true},
		{label: "co", want: true},
		{label: "uk", want: true},
		{label: "museum", want: true},
		{label: "xn--p1ai", want: true},
		{label: "banana", want: false},
		{label: "localhost", want: false},
		{label: "", want: false},
	}

	var reg ICANN
	for _, tt := range tests {
		if got := reg.Contains(tt.label); got != tt.want {
			t.Errorf("Contains(%q) = %v, want %v", tt.label, got, tt.want)
		}
	}
}
