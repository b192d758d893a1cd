package service

import "testing"

func TestRound3(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{"exact value passes through", 0.492, 0.492},
		{"rounds down", 0.70199, 0.702},
		{"rounds half up", 0.0015, 0.002},
		{"zero", 0, 0},
		{"one", 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Round3(tt.in); got != tt.want {
				t.Errorf("Round3(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestDecay(t *testing.T) {
	tests := []struct {
		name       string
		confidence float64
		factor     float64
		want       float64
	}{
		{"loser factor on 0.82", 0.82, LoserDecayFactor, 0.492},
		{"support factor on 0.78", 0.78, SupportDecayFactor, 0.702},
		{"support factor on 0.75", 0.75, SupportDecayFactor, 0.675},
		{"support factor chains on prior result", 0.702, SupportDecayFactor, 0.632},
		{"zero stays zero", 0, LoserDecayFactor, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Decay(tt.confidence, tt.factor); got != tt.want {
				t.Errorf("Decay(%v, %v) = %v, want %v", tt.confidence, tt.factor, got, tt.want)
			}
		})
	}
}
