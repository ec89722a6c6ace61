package main

import (
	"math"
)

// Geometry measurement on the Web-Mercator plane. Every vertex is projected
// from EPSG:4326 to EPSG:3857 and the length/area is taken as plain planar
// Euclidean geometry, then converted to miles. Web-Mercator stretches with
// latitude, so the numbers are approximations suitable for popup
// annotations, not survey-grade measurement.

const (
	earthRadiusMeters = 6378137.0 // WGS84 / EPSG:3857 sphere radius
	metersPerMile     = 1609.34
	sqMetersPerSqMile = 2.59e6
)

// webMercator is the EPSG:4326 -> EPSG:3857 forward transform, in meters.
func webMercator(p LonLat) (x, y float64) {
	x = earthRadiusMeters * p.Lon * math.Pi / 180
	latRad := p.Lat * math.Pi / 180
	y = earthRadiusMeters * math.Log(math.Tan(math.Pi/4+latRad/2))
	return x, y
}

// lineLengthMiles computes the projected length of an ordered coordinate
// sequence in miles. Fewer than two points measure zero.
func lineLengthMiles(points []LonLat) float64 {
	meters := 0.0
	for i := 1; i < len(points); i++ {
		x0, y0 := webMercator(points[i-1])
		x1, y1 := webMercator(points[i])
		meters += math.Hypot(x1-x0, y1-y0)
	}
	return meters / metersPerMile
}

// ringAreaSqMiles computes the projected area of a polygon's outer ring in
// square miles, via the shoelace formula. The ring is treated as closed
// whether or not the first vertex is repeated at the end; vertex order
// (clockwise or counter-clockwise) does not matter.
func ringAreaSqMiles(ring []LonLat) float64 {
	if len(ring) < 3 {
		return 0
	}
	sum := 0.0
	for i := range ring {
		x0, y0 := webMercator(ring[i])
		x1, y1 := webMercator(ring[(i+1)%len(ring)])
		sum += x0*y1 - x1*y0
	}
	return math.Abs(sum) / 2 / sqMetersPerSqMile
}
