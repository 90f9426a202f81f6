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
	"strconv"

	"github.com/pkg/errors"
)

// Orientation names which of the two built-in pole placements a DggConfig
// was built from. DefaultConfig and ParseOptions write that placement's
// pole into OriginLat/OriginLon; the projection itself reads only those
// origin fields, never Orientation.
type Orientation int

const (
	OrientationISEA Orientation = iota
	OrientationPole
)

func (o Orientation) String() string {
	if o == OrientationPole {
		return "pole"
	}
	return "isea"
}

// Output selects the shape of a Forward call's result, per spec.md §4.8.
type Output int

const (
	OutputPlane Output = iota
	OutputProjTri
	OutputVertex2DD
	OutputQ2DD
	OutputQ2DI
	OutputSeqNum
	OutputHex
)

func (o Output) String() string {
	switch o {
	case OutputPlane:
		return "plane"
	case OutputProjTri:
		return "projtri"
	case OutputVertex2DD:
		return "vertex2dd"
	case OutputQ2DD:
		return "q2dd"
	case OutputQ2DI:
		return "q2di"
	case OutputSeqNum:
		return "seqnum"
	case OutputHex:
		return "hex"
	default:
		return "unknown"
	}
}

// DggConfig is the configuration record recognized by the core, read once
// and reused across any number of Forward/Inverse calls.
type DggConfig struct {
	Orientation Orientation
	OriginLat   float64
	OriginLon   float64
	OriginAz    float64
	Aperture    int
	Resolution  int
	Radius      float64
	Output      Output
}

// DefaultConfig returns the standard ISEA orientation, aperture 3,
// resolution 4, unit radius, plane output.
func DefaultConfig() DggConfig {
	return DggConfig{
		Orientation: OrientationISEA,
		OriginLat:   iseaStdLat,
		OriginLon:   iseaStdLon,
		Aperture:    3,
		Resolution:  4,
		Radius:      1.0,
		Output:      OutputPlane,
	}
}

// pole returns the rotation pole this configuration projects onto:
// (OriginLat, OriginLon), whatever Orientation says.
func (c DggConfig) pole() GeoPoint {
	return NewGeoPoint(c.OriginLat, c.OriginLon)
}

// DggState is the transient record a Forward call updates: the face and
// quad it last resolved, and the sequence number it last computed. It
// carries no information a caller needs between calls and exists purely
// for observers that want post-hoc metadata; ForwardResult is the
// authoritative return value.
type DggState struct {
	Triangle FaceIndex
	Quad     Quad
	Serial   int64
}

// ParseOptions builds a DggConfig from the string-keyed option set
// described in spec.md §6, layered on top of DefaultConfig. Unrecognized
// keys are ignored; malformed values for a recognized key fail.
func ParseOptions(opts map[string]string) (DggConfig, error) {
	cfg := DefaultConfig()

	if v, ok := opts["orient"]; ok {
		switch v {
		case "isea":
			cfg.Orientation = OrientationISEA
			cfg.OriginLat, cfg.OriginLon = iseaStdLat, iseaStdLon
		case "pole":
			cfg.Orientation = OrientationPole
			cfg.OriginLat, cfg.OriginLon = mPi2, 0
		default:
			return cfg, errors.Errorf("isea: unrecognized orient value %q", v)
		}
	}

	if v, ok := opts["lat_0"]; ok {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return cfg, errors.Wrap(err, "isea: parsing lat_0")
		}
		cfg.OriginLat = f
	}
	if v, ok := opts["lon_0"]; ok {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return cfg, errors.Wrap(err, "isea: parsing lon_0")
		}
		cfg.OriginLon = f
	}
	if v, ok := opts["azi"]; ok {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return cfg, errors.Wrap(err, "isea: parsing azi")
		}
		cfg.OriginAz = f
	}

	if v, ok := opts["aperture"]; ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return cfg, errors.Wrap(err, "isea: parsing aperture")
		}
		if n != 3 && n != 4 {
			return cfg, errors.Errorf("isea: unsupported aperture %d", n)
		}
		cfg.Aperture = n
	}
	if v, ok := opts["resolution"]; ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return cfg, errors.Wrap(err, "isea: parsing resolution")
		}
		if n < 0 {
			return cfg, errors.Errorf("isea: negative resolution %d", n)
		}
		cfg.Resolution = n
	}

	if v, ok := opts["mode"]; ok {
		switch v {
		case "plane", "":
			cfg.Output = OutputPlane
		case "di":
			cfg.Output = OutputQ2DI
		case "dd":
			cfg.Output = OutputQ2DD
		case "hex":
			cfg.Output = OutputHex
		default:
			return cfg, errors.Errorf("isea: unrecognized mode value %q", v)
		}
	}

	if _, ok := opts["rescale"]; ok {
		cfg.Radius = iseaScale
	}

	return cfg, nil
}

// ForwardResult is the tagged-union return of a Forward call; Output says
// which fields are meaningful: Planar for PLANE and PROJTRI, Quad and
// Planar for VERTEX2DD and Q2DD, and Quad plus DI, Serial or Hex for Q2DI,
// SEQNUM and HEX.
type ForwardResult struct {
	Output Output
	Planar PlanarPoint
	Quad   Quad
	DI     DI
	Serial int64
	Hex    PackedHex
}
