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

import "math"

// forwardSnyder applies the Snyder equal-area mapping to a point already
// rotated into ISEA-pole coordinates. It searches the 20 faces in index
// order and returns the first one whose spherical "q-zone" contains ll,
// together with the face-local planar coordinate in R' units.
//
// Grounded on original_source's isea_snyder_forward and spec.md §4.3.
func forwardSnyder(ll GeoPoint) (FaceIndex, PlanarPoint, error) {
	cotTheta := 1 / math.Tan(snyderTheta)
	tanG := math.Tan(snyderLittleG)

	for f := 1; f <= numIcosaFaces; f++ {
		face := FaceIndex(f)
		center := face.center()

		// step 1: reject faces whose center is too far from the point
		z := angularDistance(center, ll)
		if z > snyderLittleG+faceEpsilon {
			continue
		}

		// step 2: azimuth from face center, folded into [0, 120 degrees]
		az := float64(azimuth(center, ll)) - face.azOffset()
		if az < 0.0 {
			az += m2Pi
		}

		azAdjustMultiples := 0
		for az < 0.0 {
			az += deg120
			azAdjustMultiples--
		}
		for az > deg120+epsilon {
			az -= deg120
			azAdjustMultiples++
		}

		// step 3: reject faces where z falls outside the face's q-zone
		q := math.Atan2(tanG, math.Cos(az)+math.Sin(az)*cotTheta)
		if z > q+faceEpsilon {
			continue
		}

		// step 4: Snyder equations 5-8 and 10-12
		h := math.Acos(math.Sin(az)*math.Sin(snyderG)*math.Cos(snyderLittleG) - math.Cos(az)*math.Cos(snyderG))
		ag := az + snyderG + h - mPi
		azPrime := math.Atan2(2*ag, rPrime*rPrime*tanG*tanG-2*ag*cotTheta)

		dPrime := rPrime * tanG / (math.Cos(azPrime) + math.Sin(azPrime)*cotTheta)
		fScale := dPrime / (2 * rPrime * math.Sin(q/2))
		rho := 2 * rPrime * fScale * math.Sin(z/2)

		azPrime += deg120 * float64(azAdjustMultiples)

		return face, PlanarPoint{
			X: rho * math.Sin(azPrime),
			Y: rho * math.Cos(azPrime),
		}, nil
	}

	return 0, PlanarPoint{}, ErrCoordinateOutsideDomain
}
