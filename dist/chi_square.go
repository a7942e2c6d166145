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

package dist

import (
	"math"

	"github.com/google/statcore/special"
)

// ChiSquareCDF returns an approximation of P(X ≤ x) for a chi-square
// distribution with df degrees of freedom.
//
// For df ≥ 30 it uses the Wilson–Hilferty cube root transformation. For
// smaller df it returns the linear ramp min(1, max(0, x/(2·df))). The ramp is
// not a real CDF; it is kept so that existing p-values stay reproducible.
func ChiSquareCDF(x, df float64) float64 {
	if df >= LargeSampleDF {
		v := 2 / (9 * df)
		z := (math.Cbrt(x/df) - (1 - v)) / math.Sqrt(v)
		return NormalCDF(z)
	}
	return math.Min(1, math.Max(0, x/(2*df)))
}

// ChiSquarePDF returns the density of the chi-square distribution with df
// degrees of freedom at x. It is 0 for x < 0.
func ChiSquarePDF(x, df float64) float64 {
	if x < 0 {
		return 0
	}
	k := df / 2
	if k < maxGammaArg {
		return math.Pow(x, k-1) * math.Exp(-x/2) / (math.Pow(2, k) * special.Gamma(k))
	}
	return math.Exp((k-1)*math.Log(x) - x/2 - k*math.Ln2 - special.LogGamma(k))
}
