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
	"fmt"

	"github.com/pkg/errors"
)

// ErrCoordinateOutsideDomain is returned by the forward transform when no
// icosahedral face contains the input point. Per spec.md this should be
// unreachable for valid spherical input; it exists so the failure is
// reported rather than terminating the process.
var ErrCoordinateOutsideDomain = errors.New("isea: coordinate outside projection domain")

// DomainError reports a numeric precondition violated deep in the hex or
// face-quad math: division by a zero hex width, or an integer overflow
// while rounding a continuous coordinate into an axial hex coordinate.
type DomainError struct {
	Op  string
	Err error
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("isea: domain error in %s: %v", e.Op, e.Err)
}

func (e *DomainError) Unwrap() error { return e.Err }

func newDomainError(op string, cause error) *DomainError {
	return &DomainError{Op: op, Err: errors.Wrapf(cause, "isea.%s", op)}
}

// ConvergenceError reports that Newton iteration in the inverse projection
// failed to reach newtonEpsilon within newtonMaxIterations steps.
type ConvergenceError struct {
	Iterations int
	LastDelta  float64
}

func (e *ConvergenceError) Error() string {
	return fmt.Sprintf("isea: newton iteration did not converge after %d steps (|delta|=%g)", e.Iterations, e.LastDelta)
}

// InvalidShift reports that hex packing (di_to_hex) would overflow the
// 28-bit signed range the shift-and-pack scheme requires.
type InvalidShift struct {
	D int
}

func (e *InvalidShift) Error() string {
	return fmt.Sprintf("isea: invalid shift packing d=%d into hex coordinate", e.D)
}
