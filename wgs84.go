package utmconv

// Ellipsoid describes a reference ellipsoid by its semi-major and semi-minor
// axes in meters.
type Ellipsoid struct {
	SemiMajorAxis float64
	SemiMinorAxis float64
}

// WGS84 is the World Geodetic System 1984 reference ellipsoid.
var WGS84 = Ellipsoid{
	SemiMajorAxis: 6378137.0,
	SemiMinorAxis: 6356752.314,
}

// DefaultUTMConverter is a WGS84 ellipsoid based UTM converter.
var DefaultUTMConverter *UTM

func init() {
	DefaultUTMConverter = NewUTM()
}
