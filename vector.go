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

	"github.com/golang/geo/r3"
)

// geoToVec3d places a GeoPoint on the unit sphere as a cartesian vector:
// x = cos(lat)*cos(lon), y = cos(lat)*sin(lon), z = sin(lat).
//
// For two points on the unit sphere, the dot product of their vectors
// equals the cosine of the angular separation between them — exactly the
// quantity spec.md §4.3 step 1 computes via
// sin(a)sin(b) + cos(a)cos(b)cos(Δlon). This lets the forward face search
// use github.com/golang/geo/r3 in place of the teacher's hand-rolled Vec3d.
func geoToVec3d(p GeoPoint) r3.Vector {
	cosLat := math.Cos(p.lat)
	return r3.Vector{
		X: cosLat * math.Cos(p.lon),
		Y: cosLat * math.Sin(p.lon),
		Z: math.Sin(p.lat),
	}
}

// angularDistance returns the great-circle angle in radians between two
// points, computed as acos of the dot product of their unit vectors.
func angularDistance(a, b GeoPoint) float64 {
	return math.Acos(clamp11(geoToVec3d(a).Dot(geoToVec3d(b))))
}
