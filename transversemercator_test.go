package utmconv_test

import (
	"math"
	"testing"

	"github.com/coordkit/utmconv"
	"github.com/golang/geo/s2"
)

func TestTransverseMercatorCentralMeridian(t *testing.T) {
	// Points on the central meridian project to x = 0, and the northing
	// carries the sign of the latitude.
	tm := utmconv.NewTransverseMercator(utmconv.WGS84)
	meridian := utmconv.CentralMeridian(33) // 15 degrees east

	for lat := -80.0; lat <= 84.0; lat += 1.0 {
		x, y := tm.Project(s2.LatLngFromDegrees(lat, 15), meridian)
		if math.Abs(x) > 1e-6 {
			t.Fatalf("lat %v: expected x = 0 on the central meridian, got %v", lat, x)
		}
		if lat > 0 && y <= 0 {
			t.Fatalf("lat %v: expected positive northing, got %v", lat, y)
		}
		if lat < 0 && y >= 0 {
			t.Fatalf("lat %v: expected negative northing, got %v", lat, y)
		}
	}
}

func TestTransverseMercatorRoundTrip(t *testing.T) {
	tm := utmconv.NewTransverseMercator(utmconv.WGS84)
	meridian := utmconv.CentralMeridian(33)

	const tolDeg = 1e-7
	for lat := -80.0; lat <= 84.0; lat += 2.0 {
		for lng := 12.0; lng <= 18.0; lng += 0.5 {
			geo := s2.LatLngFromDegrees(lat, lng)
			x, y := tm.Project(geo, meridian)
			geo2 := tm.Unproject(x, y, meridian)
			if math.Abs(geo2.Lat.Degrees()-lat) > tolDeg ||
				math.Abs(geo2.Lng.Degrees()-lng) > tolDeg {
				t.Fatalf("round trip at %v,%v: got %v,%v",
					lat, lng, geo2.Lat.Degrees(), geo2.Lng.Degrees())
			}
		}
	}
}

func TestTransverseMercatorHemisphereAntisymmetry(t *testing.T) {
	// Mirroring the latitude mirrors the northing and keeps the easting.
	tm := utmconv.NewTransverseMercator(utmconv.WGS84)
	meridian := utmconv.CentralMeridian(33)

	for lat := 1.0; lat <= 80.0; lat += 1.0 {
		for lng := 13.0; lng <= 17.0; lng += 1.0 {
			xN, yN := tm.Project(s2.LatLngFromDegrees(lat, lng), meridian)
			xS, yS := tm.Project(s2.LatLngFromDegrees(-lat, lng), meridian)
			if math.Abs(xN-xS) > 1e-6 {
				t.Fatalf("easting not symmetric at %v,%v: %v vs %v", lat, lng, xN, xS)
			}
			if math.Abs(yN+yS) > 1e-6 {
				t.Fatalf("northing not antisymmetric at %v,%v: %v vs %v", lat, lng, yN, yS)
			}
		}
	}
}
