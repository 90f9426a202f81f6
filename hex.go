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

	"github.com/pkg/errors"
)

// cos(30 degrees), used throughout the hex layer to shear a continuous
// planar coordinate onto the triangular lattice.
const cos30 = 0.86602540378443864672

// HexAxial is a hex-lattice coordinate in one of two equivalent forms,
// selected by Iso: when Iso is true, X, Y and Z are the cube coordinates
// with the invariant X+Y+Z == 0; when Iso is false, only X and Y carry
// information (Z is zero) and Y is the "doubled" axial coordinate used by
// the DGG's d/i indices. toCube and toAxial convert between the two and
// are each other's inverse.
type HexAxial struct {
	X, Y, Z int64
	Iso     bool
}

// foldY recomputes the paired y-coordinate for the X/Y halving step shared
// by toCube and toAxial. The halving must round toward -infinity, not
// toward zero; since Go's integer division truncates toward zero exactly
// like C's, splitting on the sign of x (as original_source's hex_xy/hex_iso
// do) reproduces the correct floor behavior without a separate helper.
func foldY(x, y int64) int64 {
	if x >= 0 {
		return -y - (x+1)/2
	}
	return -y - x/2
}

// toCube converts an axial-without-z coordinate into cube form, filling in
// Z so that X+Y+Z == 0. A no-op if h is already in cube form.
func (h HexAxial) toCube() HexAxial {
	if h.Iso {
		return h
	}
	y := foldY(h.X, h.Y)
	return HexAxial{X: h.X, Y: y, Z: -h.X - y, Iso: true}
}

// toAxial converts a cube coordinate into axial-without-z form, dropping Z.
// A no-op if h is already in axial form.
func (h HexAxial) toAxial() HexAxial {
	if !h.Iso {
		return h
	}
	y := foldY(h.X, h.Y)
	return HexAxial{X: h.X, Y: y, Z: 0, Iso: false}
}

// hexBin locates the integer hex nearest a continuous point (x, y) on a
// triangular lattice whose hex width is width, returning the result in
// axial-without-z form. Grounded on original_source's hexbin2.
//
// Fails with DomainError if width is zero, or if the resulting coordinates
// would overflow a 32-bit signed integer — the platform limit the packed
// SEQNUM/HEX encodings in dgg.go are built around.
func hexBin(width, x, y float64) (HexAxial, error) {
	if width == 0 {
		return HexAxial{}, newDomainError("hexBin", errors.New("hex width is zero"))
	}

	// shear onto the triangular lattice, then scale to hex units
	xr := x / cos30
	yr := y - xr/2
	xr /= width
	yr /= width
	zr := -xr - yr

	rx := math.Floor(xr + 0.5)
	ry := math.Floor(yr + 0.5)
	rz := math.Floor(zr + 0.5)

	if math.Abs(rx+ry) > math.MaxInt32 || math.Abs(rx+ry+rz) > math.MaxInt32 {
		return HexAxial{}, newDomainError("hexBin", errors.New("integer overflow rounding into axial hex coordinate"))
	}

	ix, iy, iz := int64(rx), int64(ry), int64(rz)

	if s := ix + iy + iz; s != 0 {
		dx, dy, dz := math.Abs(rx-xr), math.Abs(ry-yr), math.Abs(rz-zr)
		switch {
		case dx >= dy && dx >= dz:
			ix -= s
		case dy >= dx && dy >= dz:
			iy -= s
		default:
			iz -= s
		}
	}

	cube := HexAxial{X: ix, Y: iy, Z: iz, Iso: true}
	return cube.toAxial(), nil
}
