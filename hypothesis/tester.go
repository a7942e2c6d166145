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
	"fmt"

	"github.com/google/statcore/dist"
)

// Tester runs hypothesis tests against a family of distribution functions.
//
// A Tester holds no mutable state and is safe for concurrent use.
type Tester struct {
	family dist.Family
}

// TesterOptions contains the options necessary to initialize a Tester.
type TesterOptions struct {
	Family dist.Family // Distribution functions used for p-values and critical values. Defaults to dist.Approximate().
}

// NewTester returns a new Tester.
func NewTester(opt *TesterOptions) *Tester {
	if opt == nil {
		opt = &TesterOptions{}
	}
	f := opt.Family
	if f == nil {
		f = dist.Approximate()
	}
	return &Tester{family: f}
}

// Family returns the distribution functions used by t.
func (t *Tester) Family() dist.Family {
	return t.family
}

var defaultTester = NewTester(nil)

// OneSampleTTest runs Tester.OneSampleTTest with the approximate distributions.
func OneSampleTTest(data []float64, mu0 float64) Result {
	return defaultTester.OneSampleTTest(data, mu0)
}

// TwoSampleTTest runs Tester.TwoSampleTTest with the approximate distributions.
func TwoSampleTTest(data1, data2 []float64, equalVariances bool) Result {
	return defaultTester.TwoSampleTTest(data1, data2, equalVariances)
}

// PairedTTest runs Tester.PairedTTest with the approximate distributions.
func PairedTTest(data1, data2 []float64) (Result, error) {
	return defaultTester.PairedTTest(data1, data2)
}

// OneWayANOVA runs Tester.OneWayANOVA with the approximate distributions.
func OneWayANOVA(groups [][]float64) Result {
	return defaultTester.OneWayANOVA(groups)
}

// ChiSquareTest runs Tester.ChiSquareTest with the approximate distributions.
func ChiSquareTest(observed, expected []float64) (Result, error) {
	return defaultTester.ChiSquareTest(observed, expected)
}

// interpret phrases a p-value against SignificanceLevel.
func interpret(p float64, significant, notSignificant string) string {
	if p < SignificanceLevel {
		return fmt.Sprintf("%s (p = %.4f < %.2f).", significant, p, SignificanceLevel)
	}
	return fmt.Sprintf("%s (p = %.4f ≥ %.2f).", notSignificant, p, SignificanceLevel)
}
