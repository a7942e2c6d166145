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
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/statcore/dist"
)

func TestOneWayANOVASeparatedGroups(t *testing.T) {
	got := OneWayANOVA([][]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}})
	want := &ANOVADetails{
		SSBetween:  54,
		SSWithin:   6,
		SSTotal:    60,
		DFBetween:  2,
		DFWithin:   6,
		MSBetween:  27,
		MSWithin:   1,
		GrandMean:  5,
		GroupMeans: []float64{2, 5, 8},
		EtaSquared: 0.9,
	}
	if diff := cmp.Diff(want, got.ANOVA, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Errorf("OneWayANOVA details mismatch (-want +got):\n%s", diff)
	}
	if !approxEqual(got.TestStatistic, 27) {
		t.Errorf("OneWayANOVA: got F = %f, want 27", got.TestStatistic)
	}
	if got.DegreesOfFreedom != 2 {
		t.Errorf("OneWayANOVA: got df = %f, want 2", got.DegreesOfFreedom)
	}
	if !got.Significant() {
		t.Errorf("OneWayANOVA: got p = %f, want < %f", got.PValue, SignificanceLevel)
	}
	if got.Kind != ANOVA || got.TTest != nil || got.ChiSquare != nil {
		t.Errorf("OneWayANOVA: got kind %v with unexpected details", got.Kind)
	}
}

func TestOneWayANOVAExactFamily(t *testing.T) {
	// For F(2, d2) the survival function is (1 + 2F/d2)^(−d2/2): 10^−3 here.
	got := NewTester(&TesterOptions{Family: dist.Exact()}).OneWayANOVA([][]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}})
	if !cmp.Equal(got.PValue, 0.001, cmpopts.EquateApprox(1e-6, 0)) {
		t.Errorf("exact OneWayANOVA: got p = %g, want 0.001", got.PValue)
	}
}

func TestOneWayANOVAEqualMeans(t *testing.T) {
	got := OneWayANOVA([][]float64{{1, 2, 3}, {2, 3, 1}, {3, 1, 2}})
	if got.TestStatistic != 0 {
		t.Errorf("OneWayANOVA on identical groups: got F = %f, want 0", got.TestStatistic)
	}
	if got.PValue != 1 {
		t.Errorf("OneWayANOVA on identical groups: got p = %f, want 1", got.PValue)
	}
	if got.Significant() {
		t.Errorf("OneWayANOVA on identical groups: got a significant result")
	}
}

func TestOneWayANOVAUnequalGroupSizes(t *testing.T) {
	groups := [][]float64{{3, 4, 5, 4}, {6, 7, 8}, {4, 5, 6, 5, 5}}
	got := OneWayANOVA(groups)
	var all []float64
	for _, g := range groups {
		all = append(all, g...)
	}
	var grand, ssTotal float64
	for _, x := range all {
		grand += x
	}
	grand /= float64(len(all))
	for _, x := range all {
		ssTotal += (x - grand) * (x - grand)
	}
	if !approxEqual(got.ANOVA.SSTotal, ssTotal) {
		t.Errorf("OneWayANOVA: got SSTotal = %f, want %f", got.ANOVA.SSTotal, ssTotal)
	}
	if got.ANOVA.DFWithin != 9 {
		t.Errorf("OneWayANOVA: got dfWithin = %f, want 9", got.ANOVA.DFWithin)
	}
	if got.PValue < 0 || got.PValue > 1 || math.IsNaN(got.PValue) {
		t.Errorf("OneWayANOVA: p-value %f outside [0, 1]", got.PValue)
	}
}
