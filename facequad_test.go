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

func TestFaceToQuadCoversAllTenUpperAndLowerQuads(t *testing.T) {
	for f := FaceIndex(1); f <= 20; f++ {
		quad, _ := faceToQuad(f, PlanarPoint{})
		assert.True(t, quad >= 1 && quad <= 10, "face %d produced quad %d", f, quad)
	}
}

func TestFaceToQuadPairsUpAndDownFacesIntoSameQuad(t *testing.T) {
	for k := 0; k < 5; k++ {
		up, _ := faceToQuad(FaceIndex(k+1), PlanarPoint{})
		down, _ := faceToQuad(FaceIndex(k+6), PlanarPoint{})
		assert.Equal(t, up, down, "faces %d and %d should share a quad", k+1, k+6)
	}
	for k := 0; k < 5; k++ {
		up, _ := faceToQuad(FaceIndex(k+11), PlanarPoint{})
		down, _ := faceToQuad(FaceIndex(k+16), PlanarPoint{})
		assert.Equal(t, up, down, "faces %d and %d should share a quad", k+11, k+16)
	}
}
