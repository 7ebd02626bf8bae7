package utmconv

import (
	"fmt"
	"math"
	"strconv"
)

// Direction is a cardinal compass direction qualifying a DMS coordinate.
type Direction byte

// Direction constants
const (
	DirectionNorth Direction = iota
	DirectionSouth
	DirectionEast
	DirectionWest
)

// String returns the single-letter direction designator.
func (d Direction) String() string {
	switch d {
	case DirectionNorth:
		return "N"
	case DirectionSouth:
		return "S"
	case DirectionEast:
		return "E"
	case DirectionWest:
		return "W"
	default:
		return "?"
	}
}

// LatitudeRangeError reports a DMS latitude whose degree component exceeds
// the latitude bound.
type LatitudeRangeError struct {
	Degrees float64
	Bound   float64
}

func (e *LatitudeRangeError) Error() string {
	return fmt.Sprintf("latitude degrees %v out of range: magnitude exceeds %v", e.Degrees, e.Bound)
}

// LongitudeRangeError reports a DMS longitude whose degree component exceeds
// the longitude bound.
type LongitudeRangeError struct {
	Degrees float64
	Bound   float64
}

func (e *LongitudeRangeError) Error() string {
	return fmt.Sprintf("longitude degrees %v out of range: magnitude exceeds %v", e.Degrees, e.Bound)
}

// DMSToDecimal converts a degree-minute-second coordinate to decimal
// degrees. South and west coordinates come back negative.
//
// It returns a *LatitudeRangeError if direction is north or south and the
// degree component exceeds 90 in magnitude, and a *LongitudeRangeError if
// the degree component exceeds 180 in magnitude otherwise.
func DMSToDecimal(direction Direction, degrees, minutes, seconds float64) (float64, error) {
	switch direction {
	case DirectionNorth, DirectionSouth:
		if math.Abs(degrees) > 90 {
			return 0, &LatitudeRangeError{Degrees: degrees, Bound: 90}
		}
	default:
		if math.Abs(degrees) > 180 {
			return 0, &LongitudeRangeError{Degrees: degrees, Bound: 180}
		}
	}

	decimal := degrees + minutes/60 + seconds/3600
	if direction == DirectionSouth || direction == DirectionWest {
		decimal = -decimal
	}
	return decimal, nil
}

// DecimalToDMS formats decimal degrees as a D°M'S" string. The sign of the
// input is dropped; the output is always a non-negative magnitude.
// secondsPrecision is the number of decimal places retained on the seconds
// component; a negative precision keeps all of them. Trailing zeros are not
// printed.
func DecimalToDMS(decimal float64, secondsPrecision int) string {
	// Snap to nanodegrees before splitting so binary residue such as
	// 14.999999999999998 does not bleed into the minute and second fields.
	const nanodegreeScale = 1e9
	dd := math.Round(math.Abs(decimal)*nanodegreeScale) / nanodegreeScale

	deg := math.Floor(dd)
	frac := dd - deg
	min := math.Floor(frac * 60)
	sec := frac*3600 - min*60

	if secondsPrecision >= 0 {
		scale := math.Pow(10, float64(secondsPrecision))
		sec = math.Round(sec*scale) / scale
	}

	return fmt.Sprintf("%d°%d'%s\"", int(deg), int(min), strconv.FormatFloat(sec, 'f', -1, 64))
}
