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

package hypothesis

import (
	log "github.com/golang/glog"
	"github.com/google/statcore/checks"
	"github.com/google/statcore/dist"
)

// minExpectedFrequency is the usual rule of thumb below which the chi-square
// approximation is unreliable.
const minExpectedFrequency = 5

// ChiSquareTest compares observed category counts with expected counts.
//
// χ² = Σ (O−E)²/E with k−1 degrees of freedom and p = 1 − χ²_CDF(χ²). It
// returns an error wrapping checks.ErrLengthMismatch if the lengths differ.
// Expected values are not validated: a zero expected count yields an infinite
// or NaN statistic.
func (t *Tester) ChiSquareTest(observed, expected []float64) (Result, error) {
	if err := checks.CheckSameLength("ChiSquareTest", len(observed), len(expected)); err != nil {
		return Result{}, err
	}
	contributions := make([]float64, len(observed))
	var chi2 float64
	for i := range observed {
		if expected[i] < minExpectedFrequency {
			log.V(1).Infof("ChiSquareTest: expected count %f in category %d is below %d", expected[i], i, minExpectedFrequency)
		}
		d := observed[i] - expected[i]
		contributions[i] = d * d / expected[i]
		chi2 += contributions[i]
	}
	df := float64(len(observed) - 1)
	p := dist.ClampProbability(1 - t.family.ChiSquareCDF(chi2, df))
	return Result{
		Kind:             ChiSquareGoodnessOfFit,
		TestStatistic:    chi2,
		DegreesOfFreedom: df,
		PValue:           p,
		Interpretation: interpret(p,
			"The observed frequencies differ significantly from the expected frequencies",
			"The observed frequencies are consistent with the expected frequencies"),
		Assumptions: []string{
			"Observations are independent",
			"Expected frequencies are at least 5 in every category",
		},
		ChiSquare: &ChiSquareDetails{Contributions: contributions},
	}, nil
}
