package service

import (
	"math"
	"testing"
)

func TestProximityScorer_KnownValues(t *testing.T) {
	scorer := NewProximityScorer(5000)

	tests := []struct {
		name       string
		distOrigin float64
		distDest   float64
		seatsMatch bool
		want       float64
	}{
		{
			name:       "perfect match with seats",
			distOrigin: 0, distDest: 0, seatsMatch: true,
			want: 1.5,
		},
		{
			name:       "perfect match without seats",
			distOrigin: 0, distDest: 0, seatsMatch: false,
			want: 1.0,
		},
		{
			name:       "both at radius edge",
			distOrigin: 5000, distDest: 5000, seatsMatch: false,
			want: 0.0,
		},
		{
			name:       "origin beyond radius floors to zero",
			distOrigin: 7000, distDest: 0, seatsMatch: false,
			want: 0.5,
		},
		{
			name:       "both far beyond radius with boost",
			distOrigin: 9999, distDest: 12000, seatsMatch: true,
			want: 0.0,
		},
		{
			name:       "seat boost pushes score above one",
			distOrigin: 1000, distDest: 1000, seatsMatch: true,
			want: 1.2,
		},
		{
			name:       "near-perfect boosted score stays unclamped",
			distOrigin: 100, distDest: 100, seatsMatch: true,
			want: 1.47,
		},
		{
			name:       "halfway on both",
			distOrigin: 2500, distDest: 2500, seatsMatch: false,
			want: 0.5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := scorer.Score(tt.distOrigin, tt.distDest, tt.seatsMatch)
			if got != tt.want {
				t.Errorf("Score(%v, %v, %v) = %v, want %v",
					tt.distOrigin, tt.distDest, tt.seatsMatch, got, tt.want)
			}
		})
	}
}

func TestProximityScorer_RoundsToThreeDecimals(t *testing.T) {
	scorer := NewProximityScorer(5000)

	// 1 - 333/5000 = 0.9334; averaged with 1.0 gives 0.9667, already 3dp.
	if got := scorer.Score(333, 0, false); got != 0.967 {
		t.Errorf("Score(333, 0, false) = %v, want 0.967", got)
	}

	// 1 - 1234/5000 = 0.7532; averaged with 1.0 gives 0.8766, rounds to 0.877.
	if got := scorer.Score(1234, 0, false); got != 0.877 {
		t.Errorf("Score(1234, 0, false) = %v, want 0.877", got)
	}
}

func TestProximityScorer_NeverNegative(t *testing.T) {
	scorer := NewProximityScorer(5000)

	distances := []float64{0, 1, 2500, 4999, 5000, 5001, 10000, 1e9}
	for _, do := range distances {
		for _, dd := range distances {
			for _, match := range []bool{true, false} {
				got := scorer.Score(do, dd, match)
				if got < 0 {
					t.Fatalf("Score(%v, %v, %v) = %v, want >= 0", do, dd, match, got)
				}
				if got > 1.5 {
					t.Fatalf("Score(%v, %v, %v) = %v, want <= 1.5", do, dd, match, got)
				}
				// Rounded to exactly three decimal places.
				if math.Round(got*1000)/1000 != got {
					t.Fatalf("Score(%v, %v, %v) = %v, not rounded to 3 decimals", do, dd, match, got)
				}
			}
		}
	}
}

func TestProximityScorer_DefaultRadius(t *testing.T) {
	scorer := NewProximityScorer(0)

	// Falls back to the 5000 m normalization radius.
	if got := scorer.Score(5000, 5000, false); got != 0 {
		t.Errorf("Score(5000, 5000, false) = %v, want 0", got)
	}
}
