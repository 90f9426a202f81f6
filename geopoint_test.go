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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeLon(t *testing.T) {
	cases := []struct {
		in, want float64
	}{
		{0, 0},
		{mPi, mPi},
		{-mPi, mPi},
		{m2Pi, 0},
		{mPi + 0.1, -mPi + 0.1},
		{-mPi - 0.1, mPi - 0.1},
	}
	for _, c := range cases {
		assert.InDelta(t, c.want, normalizeLon(c.in), 1e-12)
	}
}

func TestAzimuthCardinalDirections(t *testing.T) {
	origin := NewGeoPoint(0, 0)

	north := NewGeoPoint(0.5, 0)
	assert.InDelta(t, 0, float64(azimuth(origin, north)), 1e-9)

	east := NewGeoPoint(0, 0.5)
	assert.InDelta(t, mPi2, float64(azimuth(origin, east)), 1e-9)
}

func TestRotateToNewPoleSendsAntipodalMeridianPointToZenith(t *testing.T) {
	np := NewGeoPoint(DegsToRads(40), DegsToRads(-30))
	// The point sharing np's latitude on the opposite side of np's
	// meridian rotates onto the new system's north pole.
	farSide := NewGeoPoint(np.lat, np.lon+mPi)
	rotated := rotateToNewPole(np, farSide)
	assert.InDelta(t, mPi2, rotated.lat, 1e-9)
}

func TestClamp11(t *testing.T) {
	assert.Equal(t, 1.0, clamp11(1.0000000001))
	assert.Equal(t, -1.0, clamp11(-1.0000000001))
	assert.Equal(t, 0.5, clamp11(0.5))
}

func TestDegRadRoundTrip(t *testing.T) {
	for _, deg := range []float64{0, 36, 90, 144, 180} {
		assert.InDelta(t, deg, RadsToDegs(DegsToRads(deg)), 1e-9)
	}
}

func TestGeoPointLatLonAccessors(t *testing.T) {
	p := NewGeoPointDegrees(12, 34)
	assert.InDelta(t, DegsToRads(12), p.Lat(), 1e-12)
	assert.InDelta(t, DegsToRads(34), p.Lon(), 1e-12)
}

func TestNewGeoPointNormalizesLongitude(t *testing.T) {
	p := NewGeoPoint(0, mPi+1)
	assert.True(t, p.Lon() <= mPi)
	assert.True(t, math.Abs(p.Lon()-(-mPi+1)) < 1e-9)
}
