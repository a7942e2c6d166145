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
	"github.com/google/statcore/checks"
	"github.com/google/statcore/descriptive"
	"github.com/google/statcore/dist"
	"gonum.org/v1/gonum/floats"
)

// OneWayANOVA tests whether all groups share the same mean.
//
// F = MS_between / MS_within with k−1 and n−k degrees of freedom, and
// p = 1 − F_CDF(F). The caller must pass at least 2 groups of at least 2
// observations each.
func (t *Tester) OneWayANOVA(groups [][]float64) Result {
	checks.WarnSampleSize("OneWayANOVA groups", len(groups), 2)
	var total float64
	var n int
	means := make([]float64, len(groups))
	for i, g := range groups {
		checks.WarnSampleSize("OneWayANOVA", len(g), 2)
		means[i] = descriptive.Mean(g)
		total += floats.Sum(g)
		n += len(g)
	}
	grandMean := total / float64(n)

	var ssBetween, ssWithin float64
	for i, g := range groups {
		d := means[i] - grandMean
		ssBetween += float64(len(g)) * d * d
		for _, x := range g {
			e := x - means[i]
			ssWithin += e * e
		}
	}
	dfBetween := float64(len(groups) - 1)
	dfWithin := float64(n - len(groups))
	msBetween := ssBetween / dfBetween
	msWithin := ssWithin / dfWithin
	f := msBetween / msWithin
	p := dist.ClampProbability(1 - t.family.FCDF(f, dfBetween, dfWithin))

	return Result{
		Kind:             ANOVA,
		TestStatistic:    f,
		DegreesOfFreedom: dfBetween,
		PValue:           p,
		Interpretation: interpret(p,
			"At least one group mean differs significantly from the others",
			"There is no significant difference between the group means"),
		Assumptions: []string{
			"Observations are independent",
			"Each group is approximately normally distributed",
			"Groups have equal variances",
		},
		ANOVA: &ANOVADetails{
			SSBetween:  ssBetween,
			SSWithin:   ssWithin,
			SSTotal:    ssBetween + ssWithin,
			DFBetween:  dfBetween,
			DFWithin:   dfWithin,
			MSBetween:  msBetween,
			MSWithin:   msWithin,
			GrandMean:  grandMean,
			GroupMeans: means,
			EtaSquared: ssBetween / (ssBetween + ssWithin),
		},
	}
}
