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

// Package special contains special functions needed by the distribution
// densities.
package special

import "math"

// lanczosG is the g parameter of the Lanczos approximation.
const lanczosG = 7

// lanczosCoefficients are the classic 9-term coefficients for g = 7, good for
// roughly 15 significant digits on the positive real axis.
var lanczosCoefficients = [...]float64{
	0.99999999999980993,
	676.5203681218851,
	-1259.1392167224028,
	771.32342877765313,
	-176.61502916214059,
	12.507343278686905,
	-0.13857109526572012,
	9.9843695780195716e-6,
	1.5056327351493116e-7,
}

// Gamma returns Γ(z) using the Lanczos approximation.
//
// For z < 0.5 the reflection formula Γ(z) = π / (sin(πz)·Γ(1−z)) is used. At
// non-positive integers sin(πz) vanishes and the result is ±Inf or NaN.
func Gamma(z float64) float64 {
	if z < 0.5 {
		return math.Pi / (math.Sin(math.Pi*z) * Gamma(1-z))
	}
	x, t := lanczosSeries(z)
	return math.Sqrt(2*math.Pi) * math.Pow(t, z-0.5) * math.Exp(-t) * x
}

// LogGamma returns log|Γ(z)| computed from the same series as Gamma. It stays
// finite for arguments where Gamma overflows, e.g. the large degrees of
// freedom that show up in t and F densities.
func LogGamma(z float64) float64 {
	if z < 0.5 {
		return math.Log(math.Abs(math.Pi/math.Sin(math.Pi*z))) - LogGamma(1-z)
	}
	x, t := lanczosSeries(z)
	return 0.5*math.Log(2*math.Pi) + (z-0.5)*math.Log(t) - t + math.Log(x)
}

// lanczosSeries returns the partial-fraction sum and the shifted argument
// t = z + g − 0.5 for z ≥ 0.5.
func lanczosSeries(z float64) (x, t float64) {
	z--
	x = lanczosCoefficients[0]
	for i := 1; i < len(lanczosCoefficients); i++ {
		x += lanczosCoefficients[i] / (z + float64(i))
	}
	t = z + lanczosG + 0.5
	return x, t
}
