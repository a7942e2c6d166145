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

// Package descriptive computes descriptive statistics of a sample.
//
// None of the functions modify their input; anything that needs sorted data
// sorts a copy. Inputs are not validated: statistics that are undefined for
// the given sample size come out as NaN or ±Inf rather than as errors.
package descriptive

import (
	"math"
	"slices"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Stats holds the summary of a sample returned by Describe.
type Stats struct {
	Count    int
	Mean     float64
	Median   float64
	Mode     []float64
	Variance float64 // sample variance, n−1 denominator
	StdDev   float64
	Range    float64
	Min      float64
	Max      float64
	Q1       float64
	Q3       float64
	IQR      float64
	Skewness float64
	Kurtosis float64 // excess kurtosis
}

// Describe computes every statistic in Stats for data. Nothing is cached
// between calls.
//
// Variance and StdDev need at least 2 values, Skewness at least 3 and Kurtosis
// at least 4; with fewer they are NaN or ±Inf.
func Describe(data []float64) Stats {
	q1, q3 := Quartiles(data)
	lo, hi := Min(data), Max(data)
	v := Variance(data, true)
	return Stats{
		Count:    len(data),
		Mean:     Mean(data),
		Median:   Median(data),
		Mode:     Mode(data),
		Variance: v,
		StdDev:   math.Sqrt(v),
		Range:    hi - lo,
		Min:      lo,
		Max:      hi,
		Q1:       q1,
		Q3:       q3,
		IQR:      q3 - q1,
		Skewness: Skewness(data),
		Kurtosis: Kurtosis(data),
	}
}

// Mean returns the arithmetic mean of data. It is NaN for an empty slice.
func Mean(data []float64) float64 {
	if len(data) == 0 {
		return math.NaN()
	}
	return stat.Mean(data, nil)
}

// Median returns the middle value of the sorted data, or the average of the
// two middle values if len(data) is even. It is NaN for an empty slice.
func Median(data []float64) float64 {
	n := len(data)
	if n == 0 {
		return math.NaN()
	}
	sorted := sortedCopy(data)
	if n%2 == 0 {
		return (sorted[n/2-1] + sorted[n/2]) / 2
	}
	return sorted[n/2]
}

// Mode returns every value that occurs with the highest frequency, in
// ascending order. A sample where all values are distinct returns all of
// them. It returns an empty slice for an empty input.
func Mode(data []float64) []float64 {
	counts := make(map[float64]int, len(data))
	maxCount := 0
	for _, x := range data {
		counts[x]++
		if counts[x] > maxCount {
			maxCount = counts[x]
		}
	}
	modes := []float64{}
	for x, c := range counts {
		if c == maxCount {
			modes = append(modes, x)
		}
	}
	sort.Float64s(modes)
	return modes
}

// Variance returns the sum of squared deviations from the mean divided by
// n−1 if sample is true, or by n otherwise. It is NaN for an empty slice.
//
// A sample variance of fewer than 2 values divides by zero and returns NaN
// (or +Inf); callers must guard n < 2 themselves.
func Variance(data []float64, sample bool) float64 {
	if len(data) == 0 {
		return math.NaN()
	}
	if sample {
		return stat.Variance(data, nil)
	}
	return stat.PopVariance(data, nil)
}

// StandardDeviation returns the square root of Variance(data, sample).
func StandardDeviation(data []float64, sample bool) float64 {
	return math.Sqrt(Variance(data, sample))
}

// Quartiles returns the first and third quartiles of data using the
// positional method: q1 = sorted[⌊0.25·n⌋] and q3 = sorted[⌊0.75·n⌋]. No
// interpolation is done. Both are NaN for an empty slice.
func Quartiles(data []float64) (q1, q3 float64) {
	n := len(data)
	if n == 0 {
		return math.NaN(), math.NaN()
	}
	sorted := sortedCopy(data)
	return sorted[int(math.Floor(float64(n)*0.25))], sorted[int(math.Floor(float64(n)*0.75))]
}

// Skewness returns the adjusted Fisher-Pearson standardized third moment
//
//	n / ((n−1)(n−2)) · Σ((x−mean)/s)³
//
// where s is the sample standard deviation. It requires at least 3 values and
// is NaN for an empty slice.
func Skewness(data []float64) float64 {
	if len(data) == 0 {
		return math.NaN()
	}
	return stat.Skew(data, nil)
}

// Kurtosis returns the unbiased estimator of excess kurtosis
//
//	n(n+1) / ((n−1)(n−2)(n−3)) · Σ((x−mean)/s)⁴ − 3(n−1)² / ((n−2)(n−3))
//
// where s is the sample standard deviation. It requires at least 4 values and
// is NaN for an empty slice.
func Kurtosis(data []float64) float64 {
	if len(data) == 0 {
		return math.NaN()
	}
	return stat.ExKurtosis(data, nil)
}

// ZScore returns the number of standard deviations value lies from mean.
func ZScore(value, mean, sd float64) float64 {
	return (value - mean) / sd
}

// Min returns the smallest value in data, or NaN for an empty slice.
func Min(data []float64) float64 {
	if len(data) == 0 {
		return math.NaN()
	}
	return floats.Min(data)
}

// Max returns the largest value in data, or NaN for an empty slice.
func Max(data []float64) float64 {
	if len(data) == 0 {
		return math.NaN()
	}
	return floats.Max(data)
}

// Range returns Max(data) − Min(data).
func Range(data []float64) float64 {
	return Max(data) - Min(data)
}

func sortedCopy(data []float64) []float64 {
	sorted := slices.Clone(data)
	sort.Float64s(sorted)
	return sorted
}
