//
// Copyright 2026 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//

// Package checks contains argument checks for the statistical functions.
//
// Most functions in this module trust their caller and let bad input show up
// as NaN or ±Inf. The checks here cover the few cases that fail fast, plus
// helpers that only warn.
package checks

import (
	"errors"
	"fmt"
	"math"

	log "github.com/golang/glog"
)

// ErrLengthMismatch is wrapped by every error returned when two samples that
// must be paired element by element have different lengths.
var ErrLengthMismatch = errors.New("length mismatch")

// CheckSameLength returns an error wrapping ErrLengthMismatch if len1 != len2.
func CheckSameLength(label string, len1, len2 int) error {
	if len1 != len2 {
		return fmt.Errorf("%s: arrays must have the same length, got %d and %d: %w", label, len1, len2, ErrLengthMismatch)
	}
	return nil
}

// CheckAlpha returns an error if the supplied alpha is not between 0 and 1.
func CheckAlpha(label string, alpha float64) error {
	if alpha <= 0 || alpha >= 1 || math.IsNaN(alpha) || math.IsInf(alpha, 0) {
		return fmt.Errorf("%s: Alpha is %f, must be within (0, 1) and finite", label, alpha)
	}
	return nil
}

// CheckConfidenceLevel returns an error if the confidence level is not a
// fraction strictly between 0 and 1 (e.g. 0.95, not 95).
func CheckConfidenceLevel(label string, confidence float64) error {
	if confidence <= 0 || confidence >= 1 || math.IsNaN(confidence) {
		return fmt.Errorf("%s: ConfidenceLevel is %f, must be within (0, 1)", label, confidence)
	}
	return nil
}

// CheckProbability returns an error if p is not within the open interval (0, 1).
func CheckProbability(label string, p float64) error {
	if math.IsNaN(p) {
		return fmt.Errorf("%s: probability cannot be NaN", label)
	}
	if p <= 0 || p >= 1 {
		return fmt.Errorf("%s: probability is %e, must be strictly between 0 and 1", label, p)
	}
	return nil
}

// CheckMarginOfError returns an error if the margin of error is nonpositive or +∞.
func CheckMarginOfError(label string, margin float64) error {
	if margin <= 0 || math.IsInf(margin, 0) || math.IsNaN(margin) {
		return fmt.Errorf("%s: MarginOfError is %f, must be strictly positive and finite", label, margin)
	}
	return nil
}

// CheckClusterCount returns an error if k is less than 1.
func CheckClusterCount(label string, k int) error {
	if k < 1 {
		return fmt.Errorf("%s: K is %d, must be at least 1", label, k)
	}
	return nil
}

// CheckMaxIterations returns an error if maxIterations is negative.
func CheckMaxIterations(label string, maxIterations int) error {
	if maxIterations < 0 {
		return fmt.Errorf("%s: MaxIterations is %d, cannot be negative", label, maxIterations)
	}
	return nil
}

// CheckPoints returns an error if points is empty or its vectors do not all
// have the same, nonzero dimensionality.
func CheckPoints(label string, points [][]float64) error {
	if len(points) == 0 {
		return fmt.Errorf("%s: at least one point is required", label)
	}
	dim := len(points[0])
	if dim == 0 {
		return fmt.Errorf("%s: points must have at least one coordinate", label)
	}
	for i, p := range points {
		if len(p) != dim {
			return fmt.Errorf("%s: point %d has %d coordinates, want %d", label, i, len(p), dim)
		}
	}
	return nil
}

// CheckPolynomialDegree returns an error if degree is less than 1 or if there are
// not more observations than coefficients to fit.
func CheckPolynomialDegree(label string, degree, n int) error {
	if degree < 1 {
		return fmt.Errorf("%s: Degree is %d, must be at least 1", label, degree)
	}
	if n <= degree {
		return fmt.Errorf("%s: %d observations cannot determine a polynomial of degree %d", label, n, degree)
	}
	return nil
}

// WarnSampleSize logs a warning if a sample has fewer than min observations.
// The computation still proceeds; the result will typically be NaN or ±Inf.
func WarnSampleSize(label string, n, min int) {
	if n < min {
		log.Warningf("%s: sample has %d observations, at least %d are needed for a finite result", label, n, min)
	}
}

// WarnIfError logs err as a warning, if it is not nil, and reports whether it did.
func WarnIfError(err error) bool {
	if err != nil {
		log.Warningf("%v", err)
		return true
	}
	return false
}
