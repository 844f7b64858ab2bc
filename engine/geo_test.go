package engine

import (
	"math"
	"testing"
)

func TestDistanceMeters(t *testing.T) {
	tests := []struct {
		name      string
		a, b      Location
		want      float64
		tolerance float64
	}{
		{
			name: "same point",
			a:    Location{Lat: 30.6187, Lng: -96.3365},
			b:    Location{Lat: 30.6187, Lng: -96.3365},
			want: 0,
		},
		{
			// Memorial Student Center to Kyle Field, roughly 350m
			name:      "across campus",
			a:         Location{Lat: 30.6123, Lng: -96.3416},
			b:         Location{Lat: 30.6100, Lng: -96.3404},
			want:      280,
			tolerance: 30,
		},
		{
			// College Station to Houston, roughly 134km
			name:      "city scale",
			a:         Location{Lat: 30.6280, Lng: -96.3344},
			b:         Location{Lat: 29.7604, Lng: -95.3698},
			want:      133800,
			tolerance: 2500,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DistanceMeters(tt.a, tt.b)
			if math.Abs(got-tt.want) > tt.tolerance {
				t.Fatalf("DistanceMeters() = %v, want %v ± %v", got, tt.want, tt.tolerance)
			}
		})
	}
}

func TestDistanceMetersIsSymmetric(t *testing.T) {
	a := Location{Lat: 30.6187, Lng: -96.3365}
	b := Location{Lat: 30.6100, Lng: -96.3404}
	if DistanceMeters(a, b) != DistanceMeters(b, a) {
		t.Fatal("distance is not symmetric")
	}
}
