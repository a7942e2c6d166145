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

// Package dist contains approximations of the cumulative distribution
// functions used by the hypothesis tests, together with their densities.
//
// The approximations are deliberately cheap and some of them are crude. They
// are kept as they are because callers compare against known outputs; use
// Exact() where accuracy matters more than compatibility.
package dist

import (
	"math"

	log "github.com/golang/glog"
	"github.com/google/statcore/checks"
)

// Zelen & Severo (1964) polynomial, Abramowitz & Stegun 26.2.17.
const (
	zsP  = 0.2316419
	zsB1 = 0.3193815
	zsB2 = -0.3565638
	zsB3 = 1.781478
	zsB4 = -1.821256
	zsB5 = 1.330274
)

// Acklam's rational approximation of the normal quantile function.
var (
	acklamA = [...]float64{
		-3.969683028665376e+01,
		2.209460984245205e+02,
		-2.759285104469687e+02,
		1.383577518672690e+02,
		-3.066479806614716e+01,
		2.506628277459239e+00,
	}
	acklamB = [...]float64{
		-5.447609879822406e+01,
		1.615858368580409e+02,
		-1.556989798598866e+02,
		6.680131188771972e+01,
		-1.328068155288572e+01,
	}
	acklamC = [...]float64{
		-7.784894002430293e-03,
		-3.223964580411365e-01,
		-2.400758277161838e+00,
		-2.549732539343734e+00,
		4.374664141464968e+00,
		2.938163982698783e+00,
	}
	acklamD = [...]float64{
		7.784695709041462e-03,
		3.224671290700398e-01,
		2.445134137142996e+00,
		3.754408661907416e+00,
	}
)

const (
	acklamLow  = 0.02425
	acklamHigh = 1 - acklamLow
)

// NormalPDF returns the density of the standard normal distribution at x.
func NormalPDF(x float64) float64 {
	return math.Exp(-x*x/2) / math.Sqrt(2*math.Pi)
}

// NormalCDF returns P(Z ≤ x) for a standard normal Z using the Zelen & Severo
// polynomial with 7-digit coefficients. The absolute error is at most about
// 2.3e-7, largest near x = 0.
func NormalCDF(x float64) float64 {
	t := 1 / (1 + zsP*math.Abs(x))
	poly := t * (zsB1 + t*(zsB2+t*(zsB3+t*(zsB4+t*zsB5))))
	tail := NormalPDF(x) * poly
	if x > 0 {
		return 1 - tail
	}
	return tail
}

// InverseNormalCDF returns z such that NormalCDF(z) ≈ p, using Acklam's
// algorithm (relative error below 1.15e-9).
//
// p must be strictly between 0 and 1. Other values return NaN.
func InverseNormalCDF(p float64) float64 {
	if err := checks.CheckProbability("InverseNormalCDF", p); err != nil {
		log.Warningf("%v, returning NaN", err)
		return math.NaN()
	}
	switch {
	case p < acklamLow:
		q := math.Sqrt(-2 * math.Log(p))
		return acklamTail(q)
	case p > acklamHigh:
		q := math.Sqrt(-2 * math.Log(1-p))
		return -acklamTail(q)
	default:
		q := p - 0.5
		r := q * q
		num := (((((acklamA[0]*r+acklamA[1])*r+acklamA[2])*r+acklamA[3])*r+acklamA[4])*r + acklamA[5]) * q
		den := ((((acklamB[0]*r+acklamB[1])*r+acklamB[2])*r+acklamB[3])*r+acklamB[4])*r + 1
		return num / den
	}
}

// acklamTail evaluates the lower tail region for q = √(−2·log p).
func acklamTail(q float64) float64 {
	num := ((((acklamC[0]*q+acklamC[1])*q+acklamC[2])*q+acklamC[3])*q+acklamC[4])*q + acklamC[5]
	den := (((acklamD[0]*q+acklamD[1])*q+acklamD[2])*q+acklamD[3])*q + 1
	return num / den
}

// ClampProbability clamps p to [0, 1]. Approximation error can push p-values
// computed as 1 − CDF slightly outside the unit interval. NaN is returned
// unchanged.
func ClampProbability(p float64) float64 {
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}
