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

// LargeSampleDF is the number of degrees of freedom from which the t and
// chi-square approximations switch to their normal-based large sample forms.
const LargeSampleDF = 30

// maxGammaArg is the largest argument for which special.Gamma does not
// overflow a float64.
const maxGammaArg = 171

// TCDF returns an approximation of P(T ≤ t) for Student's t distribution with
// df degrees of freedom.
//
// For df ≥ 30 the normal CDF is used directly. Below that, t is mapped to an
// approximately normal deviate with z = t·(1 − 1/(4df)) / √(1 + t²/(2df))
// (Abramowitz & Stegun 26.7.8). This is a rough asymptotic form: it is within a
// few thousandths for moderate df and |t| but it underestimates the tails
// badly for df ≤ 2.
func TCDF(t, df float64) float64 {
	if df >= LargeSampleDF {
		return NormalCDF(t)
	}
	z := t * (1 - 1/(4*df)) / math.Sqrt(1+t*t/(2*df))
	return NormalCDF(z)
}

// InverseTCDF returns an approximation of the p-quantile of Student's t
// distribution with df degrees of freedom.
//
// For df ≥ 30 the normal quantile is returned. Below that, the normal quantile
// z is corrected with the Cornish-Fisher series in 1/df, 1/df² and 1/df³.
func InverseTCDF(p, df float64) float64 {
	z := InverseNormalCDF(p)
	if df >= LargeSampleDF {
		return z
	}
	z2 := z * z
	z3 := z2 * z
	z5 := z3 * z2
	z7 := z5 * z2
	g1 := (z3 + z) / 4
	g2 := (5*z5 + 16*z3 + 3*z) / 96
	g3 := (3*z7 + 19*z5 + 17*z3 - 15*z) / 384
	return z + g1/df + g2/(df*df) + g3/(df*df*df)
}

// TPDF returns the density of Student's t distribution with df degrees of
// freedom at t. df need not be an integer.
func TPDF(t, df float64) float64 {
	var norm float64
	if (df+1)/2 < maxGammaArg {
		norm = special.Gamma((df+1)/2) / (math.Sqrt(df*math.Pi) * special.Gamma(df/2))
	} else {
		norm = math.Exp(special.LogGamma((df+1)/2)-special.LogGamma(df/2)) / math.Sqrt(df*math.Pi)
	}
	return norm * math.Pow(1+t*t/df, -(df+1)/2)
}
