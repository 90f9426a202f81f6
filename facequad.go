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

// Quad identifies one of the 12 rhombic quads of the DGG topology: 1..5 the
// northern upper row, 6..10 the southern row, 0 the north-pole degenerate
// quad, 11 the south-pole degenerate quad.
type Quad int

// faceToQuad rotates pt by 60 degrees (up-pointing face) or 240 degrees
// (down-pointing face) and, for down-pointing faces, translates by
// (+0.5, +cos(30deg)), placing it in a rhombic frame where each quad is a
// unit rhombus. It returns the quad the face belongs to.
//
// Grounded on original_source's isea_ptdd.
func faceToQuad(f FaceIndex, pt PlanarPoint) (Quad, PlanarPoint) {
	down := f.faceIsDownPointing()
	quad := Quad(((int(f)-1)%5)+5*((int(f)-1)/10)) + 1

	if down {
		pt = pt.rotateDegrees(240)
		pt = pt.add(PlanarPoint{X: 0.5, Y: 0.86602540378443864672}) // cos(30deg)
	} else {
		pt = pt.rotateDegrees(60)
	}

	return quad, pt
}
