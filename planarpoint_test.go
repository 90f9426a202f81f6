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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlanarPointAddAndScale(t *testing.T) {
	p := PlanarPoint{X: 1, Y: 2}
	q := PlanarPoint{X: 3, Y: -1}

	assert.Equal(t, PlanarPoint{X: 4, Y: 1}, p.add(q))
	assert.Equal(t, PlanarPoint{X: 2, Y: 4}, p.scale(2))
}

func TestPlanarPointMagnitude(t *testing.T) {
	p := PlanarPoint{X: 3, Y: 4}
	assert.InDelta(t, 5, p.Magnitude(), 1e-12)
}

func TestRotateDegreesPreservesMagnitude(t *testing.T) {
	p := PlanarPoint{X: 1, Y: 0}
	for _, deg := range []float64{30, 60, 90, 120, 240, 360} {
		rotated := p.rotateDegrees(deg)
		assert.InDelta(t, p.Magnitude(), rotated.Magnitude(), 1e-9)
	}
}

func TestRotateDegreesFullTurnIsIdentity(t *testing.T) {
	p := PlanarPoint{X: 0.3, Y: -0.7}
	rotated := p.rotateDegrees(360)
	assert.InDelta(t, p.X, rotated.X, 1e-9)
	assert.InDelta(t, p.Y, rotated.Y, 1e-9)
}

func TestAngularDistanceSamePointIsZero(t *testing.T) {
	p := NewGeoPointDegrees(12, 34)
	assert.InDelta(t, 0, angularDistance(p, p), 1e-12)
}

func TestAngularDistanceAntipodal(t *testing.T) {
	p := NewGeoPointDegrees(0, 0)
	q := NewGeoPointDegrees(0, 180)
	assert.InDelta(t, mPi, angularDistance(p, q), 1e-9)
}

func TestAngularDistanceQuarterTurn(t *testing.T) {
	p := NewGeoPointDegrees(0, 0)
	q := NewGeoPointDegrees(90, 0)
	assert.InDelta(t, mPi2, angularDistance(p, q), 1e-9)
}
