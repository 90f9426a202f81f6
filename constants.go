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

const (
	// pi
	mPi = math.Pi
	// pi / 2.0
	mPi2 = math.Pi / 2.0
	// 2.0 * pi
	m2Pi = 2.0 * math.Pi
	// pi / 180
	mPi180 = math.Pi / 180
	// 180 / pi
	m180Pi = 180 / math.Pi

	// threshold epsilon for degenerate-vector checks
	epsilon = 0.0000000000000001

	// the number of triangular faces on an icosahedron
	numIcosaFaces = 20
	// the number of quads in the DGG topology: 5 upper + 5 lower + 2 poles
	numQuads = 12

	// face-membership epsilon from Snyder forward (snyderforward.go):
	// accepts points exactly on a shared edge into the lower-indexed face.
	faceEpsilon = 0.000005

	// Newton iteration convergence threshold for the inverse (snyderinverse.go).
	newtonEpsilon = 1e-11

	// Newton iteration cap; exceeding this raises ConvergenceError.
	newtonMaxIterations = 100

	// half the spherical face angle of the icosahedron, G in Snyder's notation,
	// in radians (36 degrees).
	snyderG = 36 * mPi180

	// half the planar face angle, theta in Snyder's notation, in radians
	// (30 degrees).
	snyderTheta = 30 * mPi180

	// spherical center-to-vertex distance of an icosahedron face, g in
	// Snyder's notation, in radians (37.37736814 degrees).
	snyderLittleG = 37.37736814 * mPi180

	// R', the planar face scale in units of the sphere radius:
	// (1/(2*sqrt(5)) + 1/6) * sqrt(pi*sqrt(3)).
	rPrime = 0.91038328153090290025

	// ISEA_SCALE, 1/(R' * tan(g) * sqrt(3)): the standard ISEA planar scale,
	// used as the radius when ParseOptions sees the rescale option.
	iseaScale = 0.8301572857837594396028083

	// latitude of the two 5-vertex belts of the icosahedron, used to build
	// the vertex table (26.565051177 degrees, atan(1/2)).
	vertexLat = 0.46364760899944494524

	// latitude of the 5 face centers nearest the north pole (52.62263186
	// degrees, atan((3+sqrt(5))/4)).
	eRad = 0.91843818702186776133

	// latitude of the 5 face centers nearest the equator on the northern
	// side (10.81231696 degrees, atan((3-sqrt(5))/4)).
	fRad = 0.18871053072122403508

	// mosaic face spacing before facePlanarCenter's R' scaling:
	// tan(g) * sin(60 deg).
	tableG = 0.6615845383

	// mosaic row spacing before facePlanarCenter's R' scaling: tan(g) / 4.
	tableH = 0.1909830056

	// half the height of the unit triangle in the ISEA_SCALE-normalized
	// frame that isea_ptdd/isea_ptdi operate in: 1/(4*sqrt(3)).
	unitTriHalfHeight = 0.14433756729740644112

	// default ISEA orientation pole, in radians.
	iseaStdLat = 1.01722196792335072101
	iseaStdLon = 0.19634954084936207740

	// WGS84 authalic sphere radius, meters: sqrt of the surface area of the
	// WGS84 ellipsoid divided by 4*pi.
	earthAuthalicRadiusM = 6371007.18091875
)
