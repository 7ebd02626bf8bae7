package utmconv

import (
	"math"

	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
)

// Hemisphere represents the hemisphere, north or south.
type Hemisphere byte

// Hemisphere constants
const (
	HemisphereInvalid Hemisphere = iota
	HemisphereNorth
	HemisphereSouth
)

// String returns the single-letter hemisphere designator.
func (h Hemisphere) String() string {
	switch h {
	case HemisphereNorth:
		return "N"
	case HemisphereSouth:
		return "S"
	default:
		return "?"
	}
}

// UTMCoord is a UTM coordinate.
type UTMCoord struct {
	Zone       int
	Hemisphere Hemisphere
	Easting    float64
	Northing   float64
}

const utmScaleFactor = 0.9996
const utmFalseEasting = 500000.0
const utmSouthernNorthingOffset = 10000000.0

// UTM is a UTM coordinate converter for the WGS84 ellipsoid.
type UTM struct {
	tranMerc *TransverseMercator
}

// NewUTM constructs a new UTM converter for the WGS84 ellipsoid.
func NewUTM() *UTM {
	return &UTM{tranMerc: NewTransverseMercator(WGS84)}
}

// ZoneForLongitude returns the UTM zone containing the given longitude,
// floor((lng+180)/6)+1. The result is in [1, 60] for longitudes in
// [-180, 180).
func ZoneForLongitude(lng s1.Angle) int {
	return int(math.Floor((lng.Degrees()+180)/6)) + 1
}

// CentralMeridian returns the central meridian of a UTM zone.
func CentralMeridian(zone int) s1.Angle {
	return s1.Angle(float64(-183+zone*6) * math.Pi / 180)
}

// ConvertFromGeodetic converts geodetic (latitude and longitude) coordinates
// to UTM projection (zone, hemisphere, easting and northing) coordinates.
// zoneOverride forces a specific zone in [1, 60]; 0 selects the zone
// containing the longitude.
//
// No validation is performed: the caller is responsible for supplying a
// geodetically sensible latitude, longitude and zone. Out-of-range inputs
// yield a mathematically defined but geodetically meaningless result.
func (u *UTM) ConvertFromGeodetic(geodetic s2.LatLng, zoneOverride int) UTMCoord {
	zone := ZoneForLongitude(geodetic.Lng)
	if zoneOverride != 0 {
		zone = zoneOverride
	}

	x, y := u.tranMerc.Project(geodetic, CentralMeridian(zone))

	easting := x*utmScaleFactor + utmFalseEasting
	northing := y * utmScaleFactor
	// The southern offset is keyed on the sign of the computed raw northing,
	// not on the hemisphere of the input latitude.
	if northing < 0 {
		northing += utmSouthernNorthingOffset
	}

	hemisphere := HemisphereNorth
	if geodetic.Lat < 0 {
		hemisphere = HemisphereSouth
	}

	return UTMCoord{
		Zone:       zone,
		Hemisphere: hemisphere,
		Easting:    easting,
		Northing:   northing,
	}
}

// ConvertToGeodetic converts UTM projection (zone, hemisphere, easting and
// northing) coordinates to geodetic (latitude and longitude) coordinates.
//
// As with ConvertFromGeodetic, inputs are not validated.
func (u *UTM) ConvertToGeodetic(coord UTMCoord) s2.LatLng {
	x := (coord.Easting - utmFalseEasting) / utmScaleFactor
	y := coord.Northing
	if coord.Hemisphere == HemisphereSouth {
		y -= utmSouthernNorthingOffset
	}
	y /= utmScaleFactor

	return u.tranMerc.Unproject(x, y, CentralMeridian(coord.Zone))
}
