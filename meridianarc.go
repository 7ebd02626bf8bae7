package utmconv

import "math"

// meridianArc converts between a geodetic latitude and the ellipsoidal arc
// length along the meridian from the equator to that latitude. Both
// directions are truncated series in Helmert's n = (a-b)/(a+b); the
// coefficients are computed once from the ellipsoid so the forward and
// inverse series always share the same n and rectifying radius alpha.
type meridianArc struct {
	alpha float64 // rectifying radius in meters

	// forward series, arc length from latitude
	beta, gamma, delta, epsilon float64

	// inverse series, footpoint latitude from arc length
	betaPrime, gammaPrime, deltaPrime, epsilonPrime float64
}

func newMeridianArc(e Ellipsoid) meridianArc {
	n := (e.SemiMajorAxis - e.SemiMinorAxis) / (e.SemiMajorAxis + e.SemiMinorAxis)
	n2 := n * n
	n3 := n2 * n
	n4 := n3 * n
	n5 := n4 * n

	return meridianArc{
		alpha: ((e.SemiMajorAxis + e.SemiMinorAxis) / 2) * (1 + n2/4 + n4/64),

		beta:    -3*n/2 + 9*n3/16 - 3*n5/32,
		gamma:   15*n2/16 - 15*n4/32,
		delta:   -35*n3/48 + 105*n5/256,
		epsilon: 315 * n4 / 512,

		betaPrime:    3*n/2 - 27*n3/32 + 269*n5/512,
		gammaPrime:   21*n2/16 - 55*n4/32,
		deltaPrime:   151*n3/96 - 417*n5/128,
		epsilonPrime: 1097 * n4 / 512,
	}
}

// length returns the arc length of the meridian from the equator to the
// latitude phi (radians), in meters. Defined for all real phi.
func (m meridianArc) length(phi float64) float64 {
	return m.alpha * (phi +
		m.beta*math.Sin(2*phi) +
		m.gamma*math.Sin(4*phi) +
		m.delta*math.Sin(6*phi) +
		m.epsilon*math.Sin(8*phi))
}

// footpointLatitude returns the latitude (radians) whose meridian arc length
// is approximately y meters. The series is an approximation rather than an
// exact inverse of length; within the UTM latitude band the residual is
// below a millimeter on the ground.
func (m meridianArc) footpointLatitude(y float64) float64 {
	yRect := y / m.alpha
	return yRect +
		m.betaPrime*math.Sin(2*yRect) +
		m.gammaPrime*math.Sin(4*yRect) +
		m.deltaPrime*math.Sin(6*yRect) +
		m.epsilonPrime*math.Sin(8*yRect)
}
