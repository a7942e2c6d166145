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

// Package stattestutils contains reference computations and sample generators
// shared by the tests of the statistics packages.
package stattestutils

import (
	"math"
	"math/rand"
)

// SampleMean returns the arithmetic mean of values, or 0 for an empty slice.
func SampleMean(values []float64) float64 {
	var sum float64 = 0.0
	for _, v := range values {
		sum += v
	}
	return sum / math.Max(1, float64(len(values)))
}

// SampleVariance returns the population variance of values, or 0 for an empty
// slice.
func SampleVariance(values []float64) float64 {
	mean := SampleMean(values)
	var sumOfSquares float64 = 0.0
	for _, v := range values {
		sumOfSquares += math.Pow(v-mean, 2)
	}
	return sumOfSquares / math.Max(1, float64(len(values)))
}

// NearEqual reports whether a and b differ by at most tolerance.
func NearEqual(a, b, tolerance float64) bool {
	return math.Abs(a-b) <= tolerance
}

// NormalSample returns n values drawn from a normal distribution with the given
// mean and standard deviation, using a source seeded with seed.
func NormalSample(seed int64, n int, mean, sd float64) []float64 {
	r := rand.New(rand.NewSource(seed))
	values := make([]float64, n)
	for i := range values {
		values[i] = mean + sd*r.NormFloat64()
	}
	return values
}

// UniformSample returns n values drawn uniformly from [lower, upper), using a
// source seeded with seed.
func UniformSample(seed int64, n int, lower, upper float64) []float64 {
	r := rand.New(rand.NewSource(seed))
	values := make([]float64, n)
	for i := range values {
		values[i] = lower + (upper-lower)*r.Float64()
	}
	return values
}

// Blobs returns len(centers)*perCenter points scattered uniformly within radius
// of each center, grouped by center in order.
func Blobs(seed int64, centers [][]float64, perCenter int, radius float64) [][]float64 {
	r := rand.New(rand.NewSource(seed))
	points := make([][]float64, 0, len(centers)*perCenter)
	for _, c := range centers {
		for i := 0; i < perCenter; i++ {
			p := make([]float64, len(c))
			for d := range c {
				p[d] = c[d] + radius*(2*r.Float64()-1)
			}
			points = append(points, p)
		}
	}
	return points
}
