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

// FaceIndex identifies an icosahedral triangular face, 1..20.
type FaceIndex int

// faceIsDownPointing reports whether f is a "down-pointing" triangle in the
// unfolded mosaic, per spec.md §3: ((f-1)/5) mod 2 == 1.
func (f FaceIndex) faceIsDownPointing() bool {
	return ((int(f)-1)/5)%2 == 1
}

const (
	deg36  = 0.62831853071795864768
	deg72  = 1.25663706143591729537
	deg108 = 1.88495559215387594306
	deg120 = 2.09439510239319549229
	deg144 = 2.51327412287183459075
)

// icosaVertex is the 12 vertices of the icosahedron: the poles and the two
// 5-vertex belts at latitude ±atan(1/2), indexed 0..11.
var icosaVertex = [12]GeoPoint{
	NewGeoPoint(mPi2, 0),
	NewGeoPoint(vertexLat, mPi),
	NewGeoPoint(vertexLat, -deg108),
	NewGeoPoint(vertexLat, -deg36),
	NewGeoPoint(vertexLat, deg36),
	NewGeoPoint(vertexLat, deg108),
	NewGeoPoint(-vertexLat, -deg144),
	NewGeoPoint(-vertexLat, -deg72),
	NewGeoPoint(-vertexLat, 0),
	NewGeoPoint(-vertexLat, deg72),
	NewGeoPoint(-vertexLat, deg144),
	NewGeoPoint(-mPi2, 0),
}

// faceReferenceVertex maps each face (1..20) to the index into icosaVertex
// used to compute that face's azimuth offset. Grounded on
// original_source/isea.cpp's tri_v1 table; the choice of vertex per face is
// arbitrary (any vertex of the face works) but must match the table the
// rest of the forward transform assumes.
var faceReferenceVertex = [20]int{
	0, 0, 0, 0, 0,
	6, 7, 8, 9, 10,
	2, 3, 4, 5, 1,
	11, 11, 11, 11, 11,
}

// faceCenter is the spherical center of each of the 20 icosahedral faces,
// indexed 0..19 for faces 1..20. 5 faces sit at latitude E, 5 at F, 5 at
// -F, 5 at -E, per spec.md §4.2.
var faceCenter = [20]GeoPoint{
	NewGeoPoint(eRad, -deg144), NewGeoPoint(eRad, -deg72), NewGeoPoint(eRad, 0), NewGeoPoint(eRad, deg72), NewGeoPoint(eRad, deg144),
	NewGeoPoint(fRad, -deg144), NewGeoPoint(fRad, -deg72), NewGeoPoint(fRad, 0), NewGeoPoint(fRad, deg72), NewGeoPoint(fRad, deg144),
	NewGeoPoint(-fRad, -deg108), NewGeoPoint(-fRad, -deg36), NewGeoPoint(-fRad, deg36), NewGeoPoint(-fRad, deg108), NewGeoPoint(-fRad, mPi),
	NewGeoPoint(-eRad, -deg108), NewGeoPoint(-eRad, -deg36), NewGeoPoint(-eRad, deg36), NewGeoPoint(-eRad, deg108), NewGeoPoint(-eRad, mPi),
}

func (f FaceIndex) center() GeoPoint { return faceCenter[f-1] }

// azOffset returns the bearing from face f's center to its reference
// vertex — the az_offset subtracted from the point's azimuth in spec.md
// §4.3 step 2. Grounded on original_source's az_adjustment.
func (f FaceIndex) azOffset() float64 {
	v := icosaVertex[faceReferenceVertex[f-1]]
	c := f.center()
	dLon := v.lon - c.lon
	return math.Atan2(
		math.Cos(v.lat)*math.Sin(dLon),
		math.Cos(c.lat)*math.Sin(v.lat)-math.Sin(c.lat)*math.Cos(v.lat)*math.Cos(dLon),
	)
}

// facePlanarCenter returns the face center on the unfolded planar mosaic,
// in units of R' (the caller scales by radius/R' as needed). Grounded on
// original_source's isea_triangle_xy and spec.md §4.2's face_center_planar.
func (f FaceIndex) facePlanarCenter() PlanarPoint {
	idx := int(f) - 1

	x := tableG * float64(2*(idx%5)-4)
	if idx > 9 {
		x += tableG
	}

	var y float64
	switch idx / 5 {
	case 0:
		y = 5 * tableH
	case 1:
		y = tableH
	case 2:
		y = -tableH
	default:
		y = -5 * tableH
	}

	return PlanarPoint{X: x * rPrime, Y: y * rPrime}
}
