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
	"math"

	"github.com/google/statcore/checks"
	"github.com/google/statcore/descriptive"
	"github.com/google/statcore/dist"
)

const (
	tTestSignificant    = "The difference is statistically significant; reject the null hypothesis"
	tTestNotSignificant = "The difference is not statistically significant; fail to reject the null hypothesis"
)

// OneSampleTTest tests whether the mean of data differs from mu0.
//
// t = (x̄ − μ0) / (s/√n) with n−1 degrees of freedom and a two-tailed p-value
// 2·(1 − T_CDF(|t|)). It needs at least 2 observations.
func (t *Tester) OneSampleTTest(data []float64, mu0 float64) Result {
	checks.WarnSampleSize("OneSampleTTest", len(data), 2)
	n := float64(len(data))
	mean := descriptive.Mean(data)
	sd := descriptive.StandardDeviation(data, true)
	se := sd / math.Sqrt(n)
	stat := (mean - mu0) / se
	df := n - 1
	p := t.twoTailedP(stat, df)
	return Result{
		Kind:             OneSampleT,
		TestStatistic:    stat,
		DegreesOfFreedom: df,
		PValue:           p,
		Confidence:       t.confidenceInterval(mean, se, df),
		Interpretation:   interpret(p, tTestSignificant, tTestNotSignificant),
		Assumptions: []string{
			"Observations are independent",
			"Data are approximately normally distributed",
		},
		TTest: &TTestDetails{
			Mean1:          mean,
			Mean2:          mu0,
			N1:             len(data),
			MeanDifference: mean - mu0,
			StandardError:  se,
			EffectSize:     (mean - mu0) / sd,
		},
	}
}

// TwoSampleTTest tests whether data1 and data2 have the same mean.
//
// With equalVariances the variances are pooled and df = n1+n2−2. Otherwise
// Welch's standard error is used with the Welch–Satterthwaite df. Swapping the
// samples negates the statistic and leaves the p-value unchanged.
func (t *Tester) TwoSampleTTest(data1, data2 []float64, equalVariances bool) Result {
	checks.WarnSampleSize("TwoSampleTTest", len(data1), 2)
	checks.WarnSampleSize("TwoSampleTTest", len(data2), 2)
	n1, n2 := float64(len(data1)), float64(len(data2))
	mean1, mean2 := descriptive.Mean(data1), descriptive.Mean(data2)
	v1, v2 := descriptive.Variance(data1, true), descriptive.Variance(data2, true)

	var se, df, sdForEffect float64
	kind := TwoSampleT
	assumptions := []string{
		"Observations are independent within and between groups",
		"Both groups are approximately normally distributed",
	}
	if equalVariances {
		pooled := ((n1-1)*v1 + (n2-1)*v2) / (n1 + n2 - 2)
		se = math.Sqrt(pooled * (1/n1 + 1/n2))
		df = n1 + n2 - 2
		sdForEffect = math.Sqrt(pooled)
		assumptions = append(assumptions, "Both groups have equal variances")
	} else {
		kind = WelchT
		a, b := v1/n1, v2/n2
		se = math.Sqrt(a + b)
		df = (a + b) * (a + b) / (a*a/(n1-1) + b*b/(n2-1))
		sdForEffect = math.Sqrt((v1 + v2) / 2)
		assumptions = append(assumptions, "Variances may differ between groups")
	}
	diff := mean1 - mean2
	stat := diff / se
	p := t.twoTailedP(stat, df)
	return Result{
		Kind:             kind,
		TestStatistic:    stat,
		DegreesOfFreedom: df,
		PValue:           p,
		Confidence:       t.confidenceInterval(diff, se, df),
		Interpretation:   interpret(p, tTestSignificant, tTestNotSignificant),
		Assumptions:      assumptions,
		TTest: &TTestDetails{
			Mean1:          mean1,
			Mean2:          mean2,
			N1:             len(data1),
			N2:             len(data2),
			MeanDifference: diff,
			StandardError:  se,
			EffectSize:     diff / sdForEffect,
		},
	}
}

// PairedTTest tests whether the element-wise differences data1[i] − data2[i]
// have mean 0. It is a one-sample t-test on the differences and returns an
// error wrapping checks.ErrLengthMismatch if the lengths differ.
func (t *Tester) PairedTTest(data1, data2 []float64) (Result, error) {
	if err := checks.CheckSameLength("PairedTTest", len(data1), len(data2)); err != nil {
		return Result{}, err
	}
	diffs := make([]float64, len(data1))
	for i := range data1 {
		diffs[i] = data1[i] - data2[i]
	}
	r := t.OneSampleTTest(diffs, 0)
	r.Kind = PairedT
	r.Assumptions = []string{
		"Pairs are independent of each other",
		"Differences are approximately normally distributed",
	}
	return r, nil
}

// twoTailedP returns 2·(1 − T_CDF(|stat|, df)) clamped to [0, 1].
func (t *Tester) twoTailedP(stat, df float64) float64 {
	return dist.ClampProbability(2 * (1 - t.family.TCDF(math.Abs(stat), df)))
}

// confidenceInterval returns center ± t*·se at ConfidenceLevel.
func (t *Tester) confidenceInterval(center, se, df float64) *ConfidenceInterval {
	tCrit := t.family.InverseTCDF(1-(1-ConfidenceLevel)/2, df)
	return &ConfidenceInterval{
		LowerBound: center - tCrit*se,
		UpperBound: center + tCrit*se,
		Level:      ConfidenceLevel,
	}
}
