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

// Package aggregate provides accumulators for summary statistics of inputs
// that arrive in chunks or are split across workers.
package aggregate

import (
	"fmt"
	"math"
)

// Moments accumulates the count, extremes and central moments up to the
// fourth of a stream of float64 values. Partial accumulators can be merged
// and serialized, and the result matches descriptive.Describe on the
// concatenated input up to floating point rounding.
//
// NaN values are accumulated like any other and make the moments NaN.
//
// Not thread-safe.
type Moments struct {
	count int64
	mean  float64
	// Sums of the 2nd, 3rd and 4th powers of the deviations from mean.
	m2, m3, m4 float64
	min, max   float64
	state      aggregationState
}

// MomentsResult holds the statistics computed by Moments.Result. The
// definitions, including the n−1 denominator of Variance and the sample size
// requirements, are those of the descriptive package.
type MomentsResult struct {
	Count    int64
	Mean     float64
	Variance float64
	StdDev   float64
	Min      float64
	Max      float64
	Range    float64
	Skewness float64
	Kurtosis float64
}

// NewMoments returns an empty Moments.
func NewMoments() *Moments {
	return &Moments{min: math.Inf(1), max: math.Inf(-1)}
}

// Add adds x to m.
func (m *Moments) Add(x float64) error {
	if m.state != defaultState {
		return fmt.Errorf("Moments cannot be amended: %s", m.state.errorMessage())
	}
	m.combine(1, x, 0, 0, 0)
	m.min = math.Min(m.min, x)
	m.max = math.Max(m.max, x)
	return nil
}

// AddAll adds every value of data to m.
func (m *Moments) AddAll(data []float64) error {
	for _, x := range data {
		if err := m.Add(x); err != nil {
			return err
		}
	}
	return nil
}

// combine folds a second set of moments with count nb into m using the
// pairwise update formulas for central moments.
func (m *Moments) combine(nbInt int64, meanB, m2b, m3b, m4b float64) {
	if nbInt == 0 {
		return
	}
	if m.count == 0 {
		m.count, m.mean, m.m2, m.m3, m.m4 = nbInt, meanB, m2b, m3b, m4b
		return
	}
	na, nb := float64(m.count), float64(nbInt)
	n := na + nb
	d := meanB - m.mean
	d2 := d * d
	m4 := m.m4 + m4b +
		d2*d2*na*nb*(na*na-na*nb+nb*nb)/(n*n*n) +
		6*d2*(na*na*m2b+nb*nb*m.m2)/(n*n) +
		4*d*(na*m3b-nb*m.m3)/n
	m3 := m.m3 + m3b +
		d2*d*na*nb*(na-nb)/(n*n) +
		3*d*(na*m2b-nb*m.m2)/n
	m.m2 += m2b + d2*na*nb/n
	m.m3, m.m4 = m3, m4
	m.mean += d * nb / n
	m.count += nbInt
}

// Merge merges m2 into m (i.e., adds to m all entries that were added to m2).
// m2 is consumed by this operation: m2 may not be used after it is merged
// into m.
func (m *Moments) Merge(m2 *Moments) error {
	if err := checkMergeMoments(m, m2); err != nil {
		return err
	}
	m.combine(m2.count, m2.mean, m2.m2, m2.m3, m2.m4)
	m.min = math.Min(m.min, m2.min)
	m.max = math.Max(m.max, m2.max)
	m2.state = merged
	return nil
}

func checkMergeMoments(m1, m2 *Moments) error {
	if m1 == m2 {
		return fmt.Errorf("checkMergeMoments: a Moments cannot be merged into itself")
	}
	if m1.state != defaultState {
		return fmt.Errorf("checkMergeMoments: m1 cannot be merged with another Moments instance: %s", m1.state.errorMessage())
	}
	if m2.state != defaultState {
		return fmt.Errorf("checkMergeMoments: m2 cannot be merged with another Moments instance: %s", m2.state.errorMessage())
	}
	return nil
}

// Result returns the statistics of the values added so far. The method can be
// called only once.
func (m *Moments) Result() (MomentsResult, error) {
	if m.state != defaultState {
		return MomentsResult{}, fmt.Errorf("Moments' result cannot be computed: %s", m.state.errorMessage())
	}
	m.state = resultReturned

	if m.count == 0 {
		nan := math.NaN()
		return MomentsResult{Mean: nan, Variance: nan, StdDev: nan, Min: nan, Max: nan, Range: nan, Skewness: nan, Kurtosis: nan}, nil
	}
	n := float64(m.count)
	v := m.m2 / (n - 1)
	s := math.Sqrt(v)
	return MomentsResult{
		Count:    m.count,
		Mean:     m.mean,
		Variance: v,
		StdDev:   s,
		Min:      m.min,
		Max:      m.max,
		Range:    m.max - m.min,
		Skewness: n / ((n - 1) * (n - 2)) * m.m3 / (s * s * s),
		Kurtosis: n*(n+1)/((n-1)*(n-2)*(n-3))*m.m4/(v*v) - 3*(n-1)*(n-1)/((n-2)*(n-3)),
	}, nil
}

// GobEncode encodes Moments.
func (m *Moments) GobEncode() ([]byte, error) {
	if m.state != defaultState && m.state != serialized {
		return nil, fmt.Errorf("Moments object cannot be serialized: %s", m.state.errorMessage())
	}
	enc := encodableMoments{
		Count: m.count,
		Mean:  m.mean,
		M2:    m.m2,
		M3:    m.m3,
		M4:    m.m4,
		Min:   m.min,
		Max:   m.max,
	}
	m.state = serialized
	return encode(enc)
}

// GobDecode decodes Moments.
func (m *Moments) GobDecode(data []byte) error {
	var enc encodableMoments
	if err := decode(&enc, data); err != nil {
		return fmt.Errorf("couldn't decode Moments from bytes: %w", err)
	}
	*m = Moments{
		count: enc.Count,
		mean:  enc.Mean,
		m2:    enc.M2,
		m3:    enc.M3,
		m4:    enc.M4,
		min:   enc.Min,
		max:   enc.Max,
		state: defaultState,
	}
	return nil
}

// encodableMoments can be encoded by the gob package.
type encodableMoments struct {
	Count      int64
	Mean       float64
	M2, M3, M4 float64
	Min, Max   float64
}
