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

// DI is a discrete hex address within a single quad: distance from the
// quad's apex (D) and around its base (I).
type DI struct {
	D, I int64
}

// 28-bit signed range required by diToHex's d*16+quad packing.
const (
	hexPackMinD = -(1 << 27)
	hexPackMaxD = (1 << 27) - 1
)

func hexesPerQuad(cfg DggConfig) int64 {
	return int64(ipow(cfg.Aperture, cfg.Resolution))
}

// faceToDI combines faceToQuad's rhombic-quad coordinate with hex binning
// to produce a (quad, D, I) address, per spec.md §4.6.
//
// For aperture 3 at odd resolutions it uses the "ap3odd" path (hex side
// length (2^R+1)/2); otherwise it uses the general path (side length
// aperture^(R/2), with the point rotated -30 degrees before binning).
// Both paths feed the same quad-crossing and polar-collapse rule.
func faceToDI(quad Quad, pt PlanarPoint, cfg DggConfig) (Quad, DI, error) {
	var d, i, maxCoord int64

	if cfg.Aperture == 3 && cfg.Resolution%2 != 0 {
		sideLength := (math.Pow(2, float64(cfg.Resolution)) + 1) / 2
		hexWidth := cos30 / sideLength
		maxCoord = int64(math.Round(sideLength * 2))

		h, err := hexBin(hexWidth, pt.X, pt.Y)
		if err != nil {
			return quad, DI{}, err
		}
		cube := h.toCube()
		d = cube.X - cube.Z
		i = cube.X + 2*cube.Y
	} else {
		sideLength := math.Round(math.Pow(float64(cfg.Aperture), float64(cfg.Resolution)/2))
		if sideLength == 0 {
			return quad, DI{}, newDomainError("faceToDI", errors.New("zero hex side length"))
		}
		hexWidth := 1 / sideLength

		rotated := pt.rotateDegrees(-30)
		h, err := hexBin(hexWidth, rotated.X, rotated.Y)
		if err != nil {
			return quad, DI{}, err
		}
		cube := h.toCube()
		d = cube.X
		i = -cube.Z
		maxCoord = int64(sideLength)
	}

	quad, d, i = applyQuadCrossing(quad, d, i, maxCoord)
	return quad, DI{D: d, I: i}, nil
}

// applyQuadCrossing implements spec.md §4.6's quad-crossing and
// polar-collapse rule, shared by both hex-binning paths.
func applyQuadCrossing(quad Quad, d, i, maxCoord int64) (Quad, int64, int64) {
	switch {
	case quad >= 1 && quad <= 5:
		switch {
		case d == 0 && i == maxCoord:
			return 0, 0, 0
		case i == maxCoord:
			next := quad + 1
			if next == 6 {
				next = 1
			}
			return next, 0, maxCoord - d
		case d == maxCoord:
			return quad + 5, 0, i
		}
	case quad >= 6 && quad <= 10:
		switch {
		case i == 0 && d == maxCoord:
			return 11, 0, 0
		case d == maxCoord:
			next := quad + 1
			if next == 11 {
				next = 6
			}
			return next, maxCoord - i, 0
		case i == maxCoord:
			return Quad((int(quad) - 4) % 5), d, 0
		}
	}
	return quad, d, i
}

// diToSerial converts a (quad, D, I) address to a single sequence number,
// per spec.md §4.6. Quad 0 (north pole) is always 1; quad 11 (south pole)
// is always 1 + 10*hexesPerQuad + 1.
func diToSerial(quad Quad, di DI, cfg DggConfig) int64 {
	hexes := hexesPerQuad(cfg)

	switch quad {
	case 0:
		return 1
	case 11:
		return 1 + 10*hexes + 1
	}

	if cfg.Aperture == 3 && cfg.Resolution%2 == 1 {
		height := int64(math.Floor(math.Pow(float64(cfg.Aperture), float64(cfg.Resolution-1)/2)))
		return di.D*height + di.I/height + (int64(quad)-1)*hexes + 2
	}

	side := int64(math.Round(math.Pow(float64(cfg.Aperture), float64(cfg.Resolution)/2)))
	return (int64(quad)-1)*hexes + side*di.D + di.I + 2
}

// PackedHex is a (quad, D, I) address packed into a single axial
// coordinate, quad occupying the low 4 bits of X.
type PackedHex struct {
	X, Y int64
}

// diToHex packs quad into the low 4 bits of the D coordinate, per
// spec.md §4.6: hx = d*16 + quad, hy = i. Fails with InvalidShift if d is
// outside the 28-bit signed range the shift requires.
func diToHex(quad Quad, di DI) (PackedHex, error) {
	if di.D < hexPackMinD || di.D > hexPackMaxD {
		return PackedHex{}, &InvalidShift{D: int(di.D)}
	}
	return PackedHex{X: di.D*16 + int64(quad), Y: di.I}, nil
}
