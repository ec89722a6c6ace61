package main

import (
	"math"
	"testing"
)

func reversed(points []LonLat) []LonLat {
	out := make([]LonLat, len(points))
	for i, p := range points {
		out[len(points)-1-i] = p
	}
	return out
}

func TestLineLengthKnownValue(t *testing.T) {
	// One degree of longitude along the equator projects to
	// earthRadius * pi/180 meters on the Web-Mercator plane.
	points := []LonLat{{Lon: 0, Lat: 0}, {Lon: 1, Lat: 0}}
	wantMiles := earthRadiusMeters * math.Pi / 180 / metersPerMile

	got := lineLengthMiles(points)
	if math.Abs(got-wantMiles) > 0.001 {
		t.Errorf("lineLengthMiles = %f, want %f", got, wantMiles)
	}
}

func TestLineLengthDirectionIndependence(t *testing.T) {
	tests := []struct {
		name   string
		points []LonLat
	}{
		{"Two points", []LonLat{{0, 0}, {1, 1}}},
		{"Diagonal at mid latitude", []LonLat{{-110, 39}, {-109, 40}, {-108, 39.5}}},
		{"Many vertices", []LonLat{{10, 50}, {10.5, 50.2}, {11, 49.8}, {12, 50.6}, {12.3, 50.9}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			forward := lineLengthMiles(tt.points)
			backward := lineLengthMiles(reversed(tt.points))
			if math.Abs(forward-backward) > 1e-9 {
				t.Errorf("length depends on direction: forward %f, backward %f", forward, backward)
			}
			if forward <= 0 {
				t.Errorf("expected positive length, got %f", forward)
			}
		})
	}
}

func TestLineLengthDegenerate(t *testing.T) {
	if got := lineLengthMiles([]LonLat{{1, 1}}); got != 0 {
		t.Errorf("single point length = %f, want 0", got)
	}
	if got := lineLengthMiles(nil); got != 0 {
		t.Errorf("nil length = %f, want 0", got)
	}
}

// unitSquareAt builds a 1x1 degree ring with its lower edge at the given
// latitude. The ring is left unclosed; ringAreaSqMiles closes it.
func unitSquareAt(lat float64) []LonLat {
	return []LonLat{
		{Lon: 0, Lat: lat},
		{Lon: 1, Lat: lat},
		{Lon: 1, Lat: lat + 1},
		{Lon: 0, Lat: lat + 1},
	}
}

func TestRingAreaProperties(t *testing.T) {
	ring := unitSquareAt(39)

	area := ringAreaSqMiles(ring)
	if area <= 0 {
		t.Fatalf("expected positive area, got %f", area)
	}

	// Vertex order must not matter.
	if rev := ringAreaSqMiles(reversed(ring)); math.Abs(rev-area) > 1e-9 {
		t.Errorf("area depends on winding: %f vs %f", area, rev)
	}

	// Explicitly closing the ring must not change the result.
	closed := append(append([]LonLat{}, ring...), ring[0])
	if cl := ringAreaSqMiles(closed); math.Abs(cl-area) > 1e-9 {
		t.Errorf("area differs for closed ring: %f vs %f", area, cl)
	}
}

func TestRingAreaDistortionGrowsWithLatitude(t *testing.T) {
	// Web-Mercator stretches toward the poles, so the projected area of the
	// same degree-extent square grows monotonically with latitude.
	lats := []float64{0, 15, 30, 45, 60}
	prev := 0.0
	for _, lat := range lats {
		area := ringAreaSqMiles(unitSquareAt(lat))
		if area <= prev {
			t.Fatalf("area at latitude %g (%f) not greater than at previous latitude (%f)", lat, area, prev)
		}
		prev = area
	}
}

func TestRingAreaDegenerate(t *testing.T) {
	if got := ringAreaSqMiles([]LonLat{{0, 0}, {1, 1}}); got != 0 {
		t.Errorf("two-point ring area = %f, want 0", got)
	}
}
