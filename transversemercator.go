package utmconv

import (
	"math"

	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
)

// TransverseMercator provides conversions between geodetic coordinates
// (latitude and longitude) and Transverse Mercator projection coordinates
// (easting and northing) relative to an arbitrary central meridian.
//
// The projection is unscaled: the UTM scale factor and false easting/northing
// offsets are applied by the UTM converter on top of it. Both directions are
// total functions of their numeric inputs; accuracy degrades beyond roughly
// three or four degrees from the central meridian, which is outside UTM's
// intended use.
type TransverseMercator struct {
	ellipsoid Ellipsoid
	arc       meridianArc
	ep2       float64 // second eccentricity squared, (a²-b²)/b²
}

// NewTransverseMercator constructs a TransverseMercator converter for the
// given ellipsoid.
func NewTransverseMercator(e Ellipsoid) *TransverseMercator {
	a := e.SemiMajorAxis
	b := e.SemiMinorAxis
	return &TransverseMercator{
		ellipsoid: e,
		arc:       newMeridianArc(e),
		ep2:       (a*a - b*b) / (b * b),
	}
}

// Project maps geodetic coordinates to Transverse Mercator easting x and
// northing y in meters relative to centralMeridian. The easting is an odd
// power series in the longitude difference (orders 1, 3, 5, 7); the northing
// is the meridian arc length plus an even power series (orders 2, 4, 6, 8).
func (t *TransverseMercator) Project(geodetic s2.LatLng, centralMeridian s1.Angle) (x, y float64) {
	phi := geodetic.Lat.Radians()

	a := t.ellipsoid.SemiMajorAxis
	b := t.ellipsoid.SemiMinorAxis

	cosPhi := math.Cos(phi)
	nu2 := t.ep2 * cosPhi * cosPhi
	n := (a * a) / (b * math.Sqrt(1+nu2))
	tanPhi := math.Tan(phi)
	t2 := tanPhi * tanPhi

	l := geodetic.Lng.Radians() - centralMeridian.Radians()

	// Series coefficients for the third through eighth order terms. The term
	// order below is significant for floating-point reproducibility; do not
	// reassociate.
	l3coef := 1.0 - t2 + nu2
	l4coef := 5.0 - t2 + 9*nu2 + 4*(nu2*nu2)
	l5coef := 5.0 - 18*t2 + (t2*t2) + 14*nu2 - 58*t2*nu2
	l6coef := 61.0 - 58*t2 + (t2*t2) + 270*nu2 - 330*t2*nu2
	l7coef := 61.0 - 479*t2 + 179*(t2*t2) - (t2*t2*t2)
	l8coef := 1385.0 - 3111*t2 + 543*(t2*t2) - (t2*t2*t2)

	x = n*cosPhi*l +
		(n/6)*math.Pow(cosPhi, 3)*l3coef*math.Pow(l, 3) +
		(n/120)*math.Pow(cosPhi, 5)*l5coef*math.Pow(l, 5) +
		(n/5040)*math.Pow(cosPhi, 7)*l7coef*math.Pow(l, 7)

	y = t.arc.length(phi) +
		(tanPhi/2)*n*math.Pow(cosPhi, 2)*math.Pow(l, 2) +
		(tanPhi/24)*n*math.Pow(cosPhi, 4)*l4coef*math.Pow(l, 4) +
		(tanPhi/720)*n*math.Pow(cosPhi, 6)*l6coef*math.Pow(l, 6) +
		(tanPhi/40320)*n*math.Pow(cosPhi, 8)*l8coef*math.Pow(l, 8)

	return x, y
}

// Unproject maps Transverse Mercator easting x and northing y in meters,
// relative to centralMeridian, back to geodetic coordinates. It is the
// series inverse of Project built around the footpoint latitude of y.
func (t *TransverseMercator) Unproject(x, y float64, centralMeridian s1.Angle) s2.LatLng {
	phif := t.arc.footpointLatitude(y)

	a := t.ellipsoid.SemiMajorAxis
	b := t.ellipsoid.SemiMinorAxis

	cf := math.Cos(phif)
	nuf2 := t.ep2 * cf * cf
	nf := (a * a) / (b * math.Sqrt(1+nuf2))
	nfPow := nf

	tf := math.Tan(phif)
	tf2 := tf * tf
	tf4 := tf2 * tf2

	// Fractional coefficients over successive powers of nf.
	x1frac := 1 / (nfPow * cf)
	nfPow *= nf
	x2frac := tf / (2 * nfPow)
	nfPow *= nf
	x3frac := 1 / (6 * nfPow * cf)
	nfPow *= nf
	x4frac := tf / (24 * nfPow)
	nfPow *= nf
	x5frac := 1 / (120 * nfPow * cf)
	nfPow *= nf
	x6frac := tf / (720 * nfPow)
	nfPow *= nf
	x7frac := 1 / (5040 * nfPow * cf)
	nfPow *= nf
	x8frac := tf / (40320 * nfPow)

	// Polynomial coefficients in tf² and νf². Same term-order caveat as in
	// Project.
	x2poly := -1.0 - nuf2
	x3poly := -1.0 - 2*tf2 - nuf2
	x4poly := 5.0 + 3*tf2 + 6*nuf2 - 6*tf2*nuf2 - 3*(nuf2*nuf2) - 9*tf2*(nuf2*nuf2)
	x5poly := 5.0 + 28*tf2 + 24*tf4 + 6*nuf2 + 8*tf2*nuf2
	x6poly := -61.0 - 90*tf2 - 45*tf4 - 107*nuf2 + 162*tf2*nuf2
	x7poly := -61.0 - 662*tf2 - 1320*tf4 - 720*(tf4*tf2)
	x8poly := 1385.0 + 3633*tf2 + 4095*tf4 + 1575*(tf4*tf2)

	phi := phif +
		x2frac*x2poly*(x*x) +
		x4frac*x4poly*math.Pow(x, 4) +
		x6frac*x6poly*math.Pow(x, 6) +
		x8frac*x8poly*math.Pow(x, 8)

	lambda := centralMeridian.Radians() +
		x1frac*x +
		x3frac*x3poly*math.Pow(x, 3) +
		x5frac*x5poly*math.Pow(x, 5) +
		x7frac*x7poly*math.Pow(x, 7)

	return s2.LatLng{Lat: s1.Angle(phi), Lng: s1.Angle(lambda)}
}
