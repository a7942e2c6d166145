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

package power

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"gonum.org/v1/gonum/stat/distuv"
)

func TestSampleSizeForMean(t *testing.T) {
	for _, tc := range []struct {
		margin, sd, confidence float64
		want                   int
	}{
		// (1.959964·15/5)² = 34.57
		{5, 15, 0.95, 35},
		// (2.575829·15/5)² = 59.71
		{5, 15, 0.99, 60},
		// (1.644854·10/2)² = 67.64
		{2, 10, 0.90, 68},
		{1, 0, 0.95, 0},
	} {
		if got := SampleSizeForMean(tc.margin, tc.sd, tc.confidence); got != tc.want {
			t.Errorf("SampleSizeForMean(%f, %f, %f): got %d, want %d", tc.margin, tc.sd, tc.confidence, got, tc.want)
		}
	}
}

func TestSampleSizeForProportion(t *testing.T) {
	for _, tc := range []struct {
		margin, p, confidence float64
		want                  int
	}{
		// 1.959964²·0.25/0.0025 = 384.15
		{0.05, DefaultProportion, 0.95, 385},
		// 1.959964²·0.09/0.0009 = 384.15
		{0.03, 0.1, 0.95, 385},
		// 2.575829²·0.25/0.0001 = 16587.2
		{0.01, DefaultProportion, 0.99, 16588},
	} {
		if got := SampleSizeForProportion(tc.margin, tc.p, tc.confidence); got != tc.want {
			t.Errorf("SampleSizeForProportion(%f, %f, %f): got %d, want %d", tc.margin, tc.p, tc.confidence, got, tc.want)
		}
	}
}

func TestDefaultProportionIsMostConservative(t *testing.T) {
	want := SampleSizeForProportion(0.04, DefaultProportion, 0.95)
	for _, p := range []float64{0.05, 0.2, 0.35, 0.49, 0.51, 0.8} {
		if got := SampleSizeForProportion(0.04, p, 0.95); got > want {
			t.Errorf("SampleSizeForProportion(0.04, %f, 0.95) = %d, exceeds the size %d for p = 0.5", p, got, want)
		}
	}
}

func TestSampleSizeInvalidConfidence(t *testing.T) {
	// A percentage instead of a fraction makes the critical value NaN.
	if got := SampleSizeForMean(5, 15, 95); got != 0 {
		t.Errorf("SampleSizeForMean with confidence 95: got %d, want 0", got)
	}
	if got := SampleSizeForProportion(0.05, 0.5, 95); got != 0 {
		t.Errorf("SampleSizeForProportion with confidence 95: got %d, want 0", got)
	}
}

func TestSampleSizeTooLargeForInt(t *testing.T) {
	if got := SampleSizeForMean(1e-100, 15, 0.95); got != 0 {
		t.Errorf("SampleSizeForMean with margin 1e-100: got %d, want 0", got)
	}
	if got := SampleSizeForProportion(1e-100, DefaultProportion, 0.95); got != 0 {
		t.Errorf("SampleSizeForProportion with margin 1e-100: got %d, want 0", got)
	}
}

func TestPower(t *testing.T) {
	for _, tc := range []struct {
		effectSize float64
		n          int
		alpha      float64
	}{
		{0.5, 32, 0.05},
		{0.2, 100, 0.05},
		{0.8, 10, 0.01},
		{0, 50, 0.05},
	} {
		z := distuv.UnitNormal.Quantile(1 - tc.alpha/2)
		want := distuv.UnitNormal.CDF(tc.effectSize*math.Sqrt(float64(tc.n)) - z)
		got := Power(tc.effectSize, tc.n, tc.alpha)
		if !cmp.Equal(got, want, cmpopts.EquateApprox(0, 1e-6)) {
			t.Errorf("Power(%f, %d, %f): got %f, want %f", tc.effectSize, tc.n, tc.alpha, got, want)
		}
		if got < 0 || got > 1 {
			t.Errorf("Power(%f, %d, %f) = %f, want a value in [0, 1]", tc.effectSize, tc.n, tc.alpha, got)
		}
	}
}

func TestPowerIncreasesWithSampleSize(t *testing.T) {
	prev := Power(0.3, 2, 0.05)
	for n := 3; n <= 200; n++ {
		got := Power(0.3, n, 0.05)
		if got < prev {
			t.Errorf("Power(0.3, %d, 0.05) = %f, less than %f for n = %d", n, got, prev, n-1)
		}
		prev = got
	}
}
