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

package regression

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/statcore/checks"
	"github.com/google/statcore/stattestutils"
	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat"
)

func TestPearsonCorrelation(t *testing.T) {
	for _, tc := range []struct {
		desc string
		x, y []float64
		want float64
	}{
		{"perfect positive", []float64{1, 2, 3, 4, 5}, []float64{2, 4, 6, 8, 10}, 1},
		{"perfect negative", []float64{1, 2, 3, 4, 5}, []float64{10, 8, 6, 4, 2}, -1},
		{"uncorrelated", []float64{1, 2, 3, 4, 5}, []float64{2, 1, 3, 1, 2}, 0},
	} {
		got, err := PearsonCorrelation(tc.x, tc.y)
		if err != nil {
			t.Fatalf("PearsonCorrelation(%v, %v): %v", tc.x, tc.y, err)
		}
		if !cmp.Equal(got, tc.want, cmpopts.EquateApprox(0, 1e-12)) {
			t.Errorf("PearsonCorrelation(%v, %v) (%s): got %f, want %f", tc.x, tc.y, tc.desc, got, tc.want)
		}
	}
}

func TestPearsonCorrelationMatchesReference(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		x := stattestutils.NormalSample(seed, 50, 3, 2)
		y := stattestutils.NormalSample(seed+10, 50, -1, 4)
		for i := range y {
			y[i] += 0.5 * x[i]
		}
		got, err := PearsonCorrelation(x, y)
		if err != nil {
			t.Fatalf("PearsonCorrelation: %v", err)
		}
		want, err := stats.Pearson(x, y)
		if err != nil {
			t.Fatalf("stats.Pearson: %v", err)
		}
		if !cmp.Equal(got, want, cmpopts.EquateApprox(1e-9, 0)) {
			t.Errorf("PearsonCorrelation (seed %d): got %f, want %f", seed, got, want)
		}
		if got < -1 || got > 1 {
			t.Errorf("PearsonCorrelation (seed %d): got %f, want a value in [-1, 1]", seed, got)
		}
	}
}

func TestPearsonCorrelationConstant(t *testing.T) {
	got, err := PearsonCorrelation([]float64{3, 3, 3}, []float64{1, 2, 3})
	if err != nil {
		t.Fatalf("PearsonCorrelation: %v", err)
	}
	if !math.IsNaN(got) {
		t.Errorf("PearsonCorrelation with constant x: got %f, want NaN", got)
	}
}

func TestLengthMismatch(t *testing.T) {
	x, y := []float64{1, 2, 3}, []float64{1, 2}
	if _, err := PearsonCorrelation(x, y); !errors.Is(err, checks.ErrLengthMismatch) {
		t.Errorf("PearsonCorrelation: got err %v, want ErrLengthMismatch", err)
	}
	if _, err := LinearRegression(x, y); !errors.Is(err, checks.ErrLengthMismatch) {
		t.Errorf("LinearRegression: got err %v, want ErrLengthMismatch", err)
	}
	if _, err := PolynomialRegression(x, y, 1); !errors.Is(err, checks.ErrLengthMismatch) {
		t.Errorf("PolynomialRegression: got err %v, want ErrLengthMismatch", err)
	}
}

func TestLinearRegression(t *testing.T) {
	got, err := LinearRegression([]float64{1, 2, 3}, []float64{2, 4, 6})
	if err != nil {
		t.Fatalf("LinearRegression: %v", err)
	}
	want := Linear{Slope: 2, Intercept: 0, RSquared: 1, R: 1, N: 3}
	if diff := cmp.Diff(want, got, cmpopts.EquateApprox(0, 1e-12)); diff != "" {
		t.Errorf("LinearRegression mismatch (-want +got):\n%s", diff)
	}
	if p := got.Predict(10); !cmp.Equal(p, 20.0, cmpopts.EquateApprox(0, 1e-12)) {
		t.Errorf("Predict(10): got %f, want 20", p)
	}
}

func TestLinearRegressionMatchesReference(t *testing.T) {
	x := stattestutils.UniformSample(7, 40, 0, 10)
	y := stattestutils.NormalSample(8, 40, 0, 1)
	for i := range y {
		y[i] += 1.5*x[i] - 4
	}
	got, err := LinearRegression(x, y)
	if err != nil {
		t.Fatalf("LinearRegression: %v", err)
	}
	alpha, beta := stat.LinearRegression(x, y, nil, false)
	r2 := stat.RSquared(x, y, nil, alpha, beta)
	want := Linear{Slope: beta, Intercept: alpha, RSquared: r2, R: math.Sqrt(r2), N: 40}
	if diff := cmp.Diff(want, got, cmpopts.EquateApprox(1e-9, 1e-12)); diff != "" {
		t.Errorf("LinearRegression mismatch (-want +got):\n%s", diff)
	}
}

func TestPolynomialRegression(t *testing.T) {
	x := []float64{-2, -1, 0, 1, 2, 3}
	y := make([]float64, len(x))
	for i, xi := range x {
		y[i] = 1 + 2*xi + 3*xi*xi
	}
	got, err := PolynomialRegression(x, y, 2)
	if err != nil {
		t.Fatalf("PolynomialRegression: %v", err)
	}
	want := Polynomial{Coefficients: []float64{1, 2, 3}, Degree: 2, RSquared: 1}
	if diff := cmp.Diff(want, got, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Errorf("PolynomialRegression mismatch (-want +got):\n%s", diff)
	}
	if p := got.Predict(4); !cmp.Equal(p, 57.0, cmpopts.EquateApprox(0, 1e-8)) {
		t.Errorf("Predict(4): got %f, want 57", p)
	}
}

func TestPolynomialRegressionDegreeOneMatchesLinear(t *testing.T) {
	x := stattestutils.UniformSample(3, 25, -5, 5)
	y := stattestutils.NormalSample(4, 25, 2, 3)
	lin, err := LinearRegression(x, y)
	if err != nil {
		t.Fatalf("LinearRegression: %v", err)
	}
	poly, err := PolynomialRegression(x, y, 1)
	if err != nil {
		t.Fatalf("PolynomialRegression: %v", err)
	}
	want := []float64{lin.Intercept, lin.Slope}
	if diff := cmp.Diff(want, poly.Coefficients, cmpopts.EquateApprox(1e-9, 1e-12)); diff != "" {
		t.Errorf("PolynomialRegression(degree 1) coefficients mismatch (-want +got):\n%s", diff)
	}
	if !cmp.Equal(poly.RSquared, lin.RSquared, cmpopts.EquateApprox(1e-9, 1e-12)) {
		t.Errorf("PolynomialRegression(degree 1): got R² = %f, want %f", poly.RSquared, lin.RSquared)
	}
}

func TestPolynomialRegressionErrors(t *testing.T) {
	for _, tc := range []struct {
		desc   string
		x, y   []float64
		degree int
	}{
		{"degree zero", []float64{1, 2, 3}, []float64{1, 2, 3}, 0},
		{"negative degree", []float64{1, 2, 3}, []float64{1, 2, 3}, -1},
		{"too few observations", []float64{1, 2}, []float64{1, 2}, 2},
	} {
		if _, err := PolynomialRegression(tc.x, tc.y, tc.degree); err == nil {
			t.Errorf("PolynomialRegression (%s): got no error", tc.desc)
		}
	}
}
