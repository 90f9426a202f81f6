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

// PlanarPoint is a double-precision 2D point. Per spec.md §3 its units
// depend on the pipeline stage: the authalic sphere radius, the
// dimensionless normalized triangle scale R', or hex side-lengths.
type PlanarPoint struct {
	X float64
	Y float64
}

// Magnitude returns the Euclidean norm of the point treated as a vector
// from the origin.
func (p PlanarPoint) Magnitude() float64 {
	return math.Sqrt(p.X*p.X + p.Y*p.Y)
}

func (p PlanarPoint) add(q PlanarPoint) PlanarPoint {
	return PlanarPoint{X: p.X + q.X, Y: p.Y + q.Y}
}

func (p PlanarPoint) scale(k float64) PlanarPoint {
	return PlanarPoint{X: p.X * k, Y: p.Y * k}
}

// rotateDegrees rotates p about the origin by degrees, matching
// original_source's isea_rotate (positive degrees rotate counterclockwise,
// taking +X toward +Y).
func (p PlanarPoint) rotateDegrees(degrees float64) PlanarPoint {
	rad := -degrees * mPi180
	for rad >= m2Pi {
		rad -= m2Pi
	}
	for rad <= -m2Pi {
		rad += m2Pi
	}
	cosR, sinR := math.Cos(rad), math.Sin(rad)
	return PlanarPoint{
		X: p.X*cosR + p.Y*sinR,
		Y: -p.X*sinR + p.Y*cosR,
	}
}
