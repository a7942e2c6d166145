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

// FCDF returns a crude approximation of P(F ≤ f) for the F distribution with
// df1 and df2 degrees of freedom: 0 for f ≤ 0, 1 for f ≥ 10 and
// (f / (f + df2/df1))^(df1/2) in between.
//
// The saturation at 10 means any ANOVA with F ≥ 10 reports p = 0.
func FCDF(f, df1, df2 float64) float64 {
	if f <= 0 {
		return 0
	}
	if f >= 10 {
		return 1
	}
	return math.Pow(f/(f+df2/df1), df1/2)
}

// FPDF returns the density of the F distribution with df1 and df2 degrees of
// freedom at f. It is 0 for f < 0.
func FPDF(f, df1, df2 float64) float64 {
	if f < 0 {
		return 0
	}
	if f == 0 {
		switch {
		case df1 < 2:
			return math.Inf(1)
		case df1 == 2:
			return 1
		default:
			return 0
		}
	}
	a, b := df1/2, df2/2
	logBeta := special.LogGamma(a) + special.LogGamma(b) - special.LogGamma(a+b)
	logDensity := a*math.Log(df1*f) + b*math.Log(df2) - (a+b)*math.Log(df1*f+df2) - math.Log(f) - logBeta
	return math.Exp(logDensity)
}
