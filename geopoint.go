// Copyright 2022  Il Sub Bang
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package isea

import (
	"math"

	"github.com/golang/geo/s1"
)

// GeoPoint is a spherical point, latitude and longitude in radians.
// lat is constrained to [-pi/2, pi/2]; lon is normalized to (-pi, pi] by
// every function in this package that produces one.
type GeoPoint struct {
	lat float64
	lon float64
}

// NewGeoPoint builds a GeoPoint from radians.
func NewGeoPoint(latRad, lonRad float64) GeoPoint {
	return GeoPoint{lat: latRad, lon: normalizeLon(lonRad)}
}

// NewGeoPointDegrees builds a GeoPoint from decimal degrees.
func NewGeoPointDegrees(latDeg, lonDeg float64) GeoPoint {
	return NewGeoPoint(DegsToRads(latDeg), DegsToRads(lonDeg))
}

// Lat returns the latitude in radians.
func (p GeoPoint) Lat() float64 { return p.lat }

// Lon returns the longitude in radians, normalized to (-pi, pi].
func (p GeoPoint) Lon() float64 { return p.lon }

// DegsToRads converts decimal degrees to radians.
func DegsToRads(degrees float64) float64 { return degrees * mPi180 }

// RadsToDegs converts radians to decimal degrees.
func RadsToDegs(radians float64) float64 { return radians * m180Pi }

// normalizeLon reduces lon modulo 2*pi into (-pi, pi], matching the
// invariant spec.md §3 places on GeoPoint.lon.
func normalizeLon(lon float64) float64 {
	lon = math.Mod(lon, m2Pi)
	for lon > mPi {
		lon -= m2Pi
	}
	for lon <= -mPi {
		lon += m2Pi
	}
	return lon
}

// azimuth returns the initial bearing on the sphere from `from` to `to`,
// per spec.md §4.1: the two-argument arctangent of
// cos(to.lat)*sin(Δlon) over cos(from.lat)*sin(to.lat) −
// sin(from.lat)*cos(to.lat)*cos(Δlon).
func azimuth(from, to GeoPoint) s1.Angle {
	dLon := to.lon - from.lon
	y := math.Cos(to.lat) * math.Sin(dLon)
	x := math.Cos(from.lat)*math.Sin(to.lat) -
		math.Sin(from.lat)*math.Cos(to.lat)*math.Cos(dLon)
	return s1.Angle(math.Atan2(y, x))
}

// rotateToNewPole performs Snyder's oblique-pole transformation with np's
// longitude taken as the reference meridian (lambda0): the point at np's
// latitude on the opposite meridian, (np.lat, np.lon+pi), becomes the new
// system's north pole. rotateToISEAPole adds that pi to np.lon first, so
// np itself becomes the pole there.
//
// Grounded on Snyder, Map Projections: A Working Manual, p.31, and on
// original_source's snyder_ctran.
func rotateToNewPole(np, pt GeoPoint) GeoPoint {
	alpha := np.lat
	beta := np.lon
	lambda0 := beta

	phi := pt.lat
	lambda := pt.lon

	cosP := math.Cos(phi)
	sinA := math.Sin(alpha)

	sinPhiPrime := sinA*math.Sin(phi) - math.Cos(alpha)*cosP*math.Cos(lambda-lambda0)

	lpMinusBeta := math.Atan2(
		cosP*math.Sin(lambda-lambda0),
		sinA*cosP*math.Cos(lambda-lambda0)+math.Cos(alpha)*math.Sin(phi),
	)
	lambdaPrime := normalizeLon(lpMinusBeta + beta)

	return GeoPoint{lat: math.Asin(clamp11(sinPhiPrime)), lon: lambdaPrime}
}

// rotateToISEAPole is the full core wrapper used by the forward transform:
// it additionally applies the 180-degree longitude shift that aligns
// Snyder's reference edge (down triangle 3) with the ISEA convention
// (along the side of triangle 1 from vertex 0 to vertex 1), per spec.md
// §4.1 and original_source's isea_ctran.
func rotateToISEAPole(np GeoPoint, pt GeoPoint, lon0 float64) GeoPoint {
	shifted := GeoPoint{lat: np.lat, lon: np.lon + mPi}
	rotated := rotateToNewPole(shifted, pt)

	lon := rotated.lon - (mPi - lon0 + np.lon)
	lon += mPi

	return GeoPoint{lat: rotated.lat, lon: normalizeLon(lon)}
}

// clamp11 clamps x into [-1, 1], guarding math.Asin/math.Acos against
// floating-point overshoot on near-unit inputs.
func clamp11(x float64) float64 {
	if x > 1 {
		return 1
	}
	if x < -1 {
		return -1
	}
	return x
}
