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

// Package regression provides Pearson correlation and ordinary least squares
// fits of straight lines and polynomials.
package regression

import (
	"errors"
	"fmt"
	"math"

	log "github.com/golang/glog"
	"github.com/google/statcore/checks"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// Linear is a least squares line y = Slope·x + Intercept.
//
// RSquared is 1 − SS_res/SS_tot and is undefined (NaN or ±Inf) when y is
// constant. R is the Pearson correlation of x and y.
type Linear struct {
	Slope     float64
	Intercept float64
	RSquared  float64
	R         float64
	N         int
}

// Predict returns the fitted value at x.
func (l Linear) Predict(x float64) float64 {
	return l.Slope*x + l.Intercept
}

// PearsonCorrelation returns the Pearson correlation coefficient of x and y,
//
//	r = (nΣxy − ΣxΣy) / √((nΣx² − (Σx)²)(nΣy² − (Σy)²)).
//
// It returns an error wrapping checks.ErrLengthMismatch if the lengths differ,
// and NaN if either variable is constant.
func PearsonCorrelation(x, y []float64) (float64, error) {
	if err := checks.CheckSameLength("PearsonCorrelation", len(x), len(y)); err != nil {
		return math.NaN(), err
	}
	return pearson(x, y), nil
}

func pearson(x, y []float64) float64 {
	if constant(x) || constant(y) {
		return math.NaN()
	}
	n := float64(len(x))
	sx, sy := floats.Sum(x), floats.Sum(y)
	num := n*floats.Dot(x, y) - sx*sy
	den := math.Sqrt((n*floats.Dot(x, x) - sx*sx) * (n*floats.Dot(y, y) - sy*sy))
	return num / den
}

// constant reports whether data is empty or holds a single distinct value.
func constant(data []float64) bool {
	return len(data) == 0 || floats.Min(data) == floats.Max(data)
}

// LinearRegression fits y = Slope·x + Intercept by ordinary least squares.
//
// It returns an error wrapping checks.ErrLengthMismatch if the lengths differ.
// A constant x yields NaN coefficients.
func LinearRegression(x, y []float64) (Linear, error) {
	if err := checks.CheckSameLength("LinearRegression", len(x), len(y)); err != nil {
		return Linear{}, err
	}
	checks.WarnSampleSize("LinearRegression", len(x), 2)
	n := float64(len(x))
	sx, sy := floats.Sum(x), floats.Sum(y)
	slope := (n*floats.Dot(x, y) - sx*sy) / (n*floats.Dot(x, x) - sx*sx)
	if constant(x) {
		slope = math.NaN()
	}
	l := Linear{
		Slope:     slope,
		Intercept: (sy - slope*sx) / n,
		R:         pearson(x, y),
		N:         len(x),
	}
	l.RSquared = rSquared(y, l.Predict, x)
	return l, nil
}

// rSquared returns 1 − SS_res/SS_tot for the predictions of f at x.
func rSquared(y []float64, f func(float64) float64, x []float64) float64 {
	mean := stat.Mean(y, nil)
	var ssRes, ssTot float64
	for i := range y {
		r := y[i] - f(x[i])
		ssRes += r * r
		d := y[i] - mean
		ssTot += d * d
	}
	return 1 - ssRes/ssTot
}

// Polynomial is a least squares polynomial
// y = Coefficients[0] + Coefficients[1]·x + … + Coefficients[Degree]·x^Degree.
type Polynomial struct {
	Coefficients []float64
	Degree       int
	RSquared     float64
}

// Predict returns the fitted value at x.
func (p Polynomial) Predict(x float64) float64 {
	var v float64
	for i := len(p.Coefficients) - 1; i >= 0; i-- {
		v = v*x + p.Coefficients[i]
	}
	return v
}

// PolynomialRegression fits a polynomial of the given degree by least squares,
// solving the Vandermonde system with a QR decomposition.
//
// It returns an error if the lengths differ, if degree < 1, or if there are
// not more observations than the degree. A nearly singular system is logged
// and the (possibly inaccurate) solution is returned.
func PolynomialRegression(x, y []float64, degree int) (Polynomial, error) {
	if err := checks.CheckSameLength("PolynomialRegression", len(x), len(y)); err != nil {
		return Polynomial{}, err
	}
	if err := checks.CheckPolynomialDegree("PolynomialRegression", degree, len(x)); err != nil {
		return Polynomial{}, err
	}
	a := mat.NewDense(len(x), degree+1, nil)
	for i, xi := range x {
		v := 1.0
		for j := 0; j <= degree; j++ {
			a.Set(i, j, v)
			v *= xi
		}
	}
	var beta mat.VecDense
	if err := beta.SolveVec(a, mat.NewVecDense(len(y), y)); err != nil {
		var cond mat.Condition
		if !errors.As(err, &cond) {
			return Polynomial{}, fmt.Errorf("PolynomialRegression: %w", err)
		}
		log.Warningf("PolynomialRegression: ill-conditioned system (condition number %g), coefficients may be inaccurate", float64(cond))
	}
	p := Polynomial{
		Coefficients: mat.Col(nil, 0, &beta),
		Degree:       degree,
	}
	p.RSquared = rSquared(y, p.Predict, x)
	return p, nil
}
