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

// Derived lengths shared by face identification and the Newton solve
// below, all in units of rPrime (the same normalized units forwardSnyder
// works in). Grounded on original_source's RprimeTang/centerToBase/triWidth.
var (
	rprimeTang   = rPrime * math.Tan(snyderLittleG)
	centerToBase = rprimeTang / 2
	triWidth     = rprimeTang * 1.7320508075688772935 // sqrt(3)
	yOffsets     = [4]float64{-2 * centerToBase, -4 * centerToBase, -5 * centerToBase, -7 * centerToBase}
)

const (
	westVertexLon     = -deg144
	faceSearchEpsilon = 2e-8
)

// faceOrientation returns the face's azimuth offset: 0 for faces 1..5 and
// 11..15, mPi otherwise. Grounded on original_source's faceOrientation.
func faceOrientation(f FaceIndex) float64 {
	if f <= 5 || (f >= 11 && f <= 15) {
		return 0
	}
	return mPi
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// identifyFace locates the icosahedral face containing a point in the
// planar mosaic frame, by shearing the point onto the unit rhombic grid
// the mosaic tiling is built from. It returns the face and the point's
// coordinates relative to that face's mosaic center offset.
//
// Grounded on original_source's ISEAPlanarProjection::cartesianToGeo
// (face-selection portion) and spec.md §4.7.
func identifyFace(pt PlanarPoint) (FaceIndex, PlanarPoint, bool) {
	const (
		sr     = -0.86602540378443864676 // sin(-60 degrees)
		cr     = 0.5                     // cos(-60 degrees)
		shearX = 0.57735026918962576451  // 1/sqrt(3)
	)
	sx := 1 / triWidth
	sy := 1 / (3 * centerToBase)

	yp := -(pt.X*sr + pt.Y*cr)
	x := (pt.X*cr - pt.Y*sr + yp*shearX) * sx
	y := yp * sy

	switch {
	case x < 0 || (y > x && x < 5-faceSearchEpsilon):
		x += faceSearchEpsilon
	case x > 5 || (y < x && x > faceSearchEpsilon):
		x -= faceSearchEpsilon
	}
	switch {
	case y < 0 || (x > y && y < 6-faceSearchEpsilon):
		y += faceSearchEpsilon
	case y > 6 || (x < y && y > faceSearchEpsilon):
		y -= faceSearchEpsilon
	}

	if x < 0 || x > 5 || y < 0 || y > 6 {
		return 0, PlanarPoint{}, false
	}

	ix := clampInt(int(x), 0, 4)
	iy := clampInt(int(y), 0, 5)
	if iy != ix && iy != ix+1 {
		return 0, PlanarPoint{}, false
	}

	top := x-float64(ix) > y-float64(iy)
	face := -1
	switch ix + iy {
	case 0:
		face = pick(top, 0, 5)
	case 2:
		face = pick(top, 1, 6)
	case 4:
		face = pick(top, 2, 7)
	case 6:
		face = pick(top, 3, 8)
	case 8:
		face = pick(top, 4, 9)
	case 1:
		face = pick(top, 10, 15)
	case 3:
		face = pick(top, 11, 16)
	case 5:
		face = pick(top, 12, 17)
	case 7:
		face = pick(top, 13, 18)
	case 9:
		face = pick(top, 14, 19)
	}
	if face < 0 {
		return 0, PlanarPoint{}, false
	}
	face++ // 0-based dodecahedron-vertex index to 1-based FaceIndex

	fy := (face - 1) / 5
	fx := (face - 1) - 5*fy
	rx := pt.X - (2*float64(fx)+float64(fy/2)+1)*triWidth/2
	ry := pt.Y - (yOffsets[fy] + 3*centerToBase)

	return FaceIndex(face), PlanarPoint{X: rx, Y: ry}, true
}

func pick(top bool, whenTop, whenBottom int) int {
	if top {
		return whenTop
	}
	return whenBottom
}

// inverseSnyder solves Snyder's forward equations in reverse: given a
// face and the planar coordinate relative to that face's mosaic center,
// it recovers the spherical point under the face's pole, via Newton
// iteration on the area equation for Az_earth.
//
// Grounded on original_source's ISEAPlanarProjection::icosahedronToSphere
// and spec.md §4.7.
func inverseSnyder(face FaceIndex, local PlanarPoint) (GeoPoint, error) {
	tanG := math.Tan(snyderLittleG)
	cotTheta := 1 / math.Tan(snyderTheta)
	cosG := math.Cos(snyderG)
	sinGcosLittleG := math.Sin(snyderG) * math.Cos(snyderLittleG)

	azPrime := math.Atan2(local.X, local.Y)
	rho := math.Hypot(local.X, local.Y)

	azAdjustment := faceOrientation(face)
	azPrime += azAdjustment
	for azPrime < 0 {
		azAdjustment += deg120
		azPrime += deg120
	}
	for azPrime > deg120 {
		azAdjustment -= deg120
		azPrime -= deg120
	}

	cotAzPrime := math.Cos(azPrime) / math.Sin(azPrime)
	area := rprimeTang * rprimeTang / (2 * (cotAzPrime + cotTheta))
	target := area - westVertexLon // R == 1 in normalized units

	azEarth := azPrime
	deltaAz := 10 * newtonEpsilon
	for iterations := 0; math.Abs(deltaAz) > newtonEpsilon; iterations++ {
		if iterations >= newtonMaxIterations {
			return GeoPoint{}, &ConvergenceError{Iterations: iterations, LastDelta: deltaAz}
		}
		sinAzEarth, cosAzEarth := math.Sin(azEarth), math.Cos(azEarth)
		h := math.Acos(sinAzEarth*sinGcosLittleG - cosAzEarth*cosG)
		fAzEarth := target - h - azEarth
		fPrimeAzEarth := (cosAzEarth*sinGcosLittleG+sinAzEarth*cosG)/math.Sin(h) - 1
		deltaAz = -fAzEarth / fPrimeAzEarth
		azEarth += deltaAz
	}

	q := math.Atan2(tanG, math.Cos(azEarth)+math.Sin(azEarth)*cotTheta)
	d := rprimeTang / (math.Cos(azPrime) + math.Sin(azPrime)*cotTheta)
	fScale := d / (2 * rPrime * math.Sin(q/2))
	z := 2 * math.Asin(rho/(2*rPrime*fScale))

	azEarth -= azAdjustment

	center := face.center()
	sinLat0, cosLat0 := math.Sin(center.lat), math.Cos(center.lat)
	sinZ, cosZ := math.Sin(z), math.Cos(z)
	cosLat0SinZ := cosLat0 * sinZ

	lat := math.Asin(sinLat0*cosZ + cosLat0SinZ*math.Cos(azEarth))
	lon := center.lon + math.Atan2(math.Sin(azEarth)*cosLat0SinZ, cosZ-sinLat0*math.Sin(lat))

	return GeoPoint{lat: lat, lon: lon}, nil
}
