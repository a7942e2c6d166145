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

package dist

import (
	log "github.com/golang/glog"
	"gonum.org/v1/gonum/stat/distuv"
)

// Kind is an enum type. Its values are the supported families of distribution
// functions.
type Kind int

// Distribution function families used by the hypothesis tests.
const (
	ApproximateFamily Kind = iota
	ExactFamily
	Unrecognised
)

// ToFamily converts a Kind into a Family instance.
func ToFamily(k Kind) Family {
	switch k {
	case ApproximateFamily:
		return Approximate()
	case ExactFamily:
		return Exact()
	case Unrecognised:
		log.Warningf("ToFamily: Unrecognised family specified, returning nil")
	default:
		log.Warningf("ToFamily: unknown kind (%v) specified, returning nil", k)
	}
	return nil
}

// ToKind converts a Family instance into a Kind.
func ToKind(f Family) Kind {
	switch f {
	case Approximate():
		return ApproximateFamily
	case Exact():
		return ExactFamily
	case nil:
		log.Warningf("ToKind: nil family specified, returning Unrecognised")
	default:
		log.Warningf("ToKind: unknown Family (%v) specified, returning Unrecognised", f)
	}
	return Unrecognised
}

// String returns the name of the family.
func (k Kind) String() string {
	switch k {
	case ApproximateFamily:
		return "approximate"
	case ExactFamily:
		return "exact"
	default:
		return "unrecognised"
	}
}

// Family is the set of distribution functions the hypothesis tests need.
type Family interface {
	// NormalCDF returns P(Z ≤ x) for a standard normal Z.
	NormalCDF(x float64) float64
	// InverseNormalCDF returns the p-quantile of the standard normal distribution.
	InverseNormalCDF(p float64) float64
	// TCDF returns P(T ≤ t) for Student's t with df degrees of freedom.
	TCDF(t, df float64) float64
	// InverseTCDF returns the p-quantile of Student's t with df degrees of freedom.
	InverseTCDF(p, df float64) float64
	// ChiSquareCDF returns P(X ≤ x) for a chi-square variable with df degrees of freedom.
	ChiSquareCDF(x, df float64) float64
	// FCDF returns P(F ≤ f) for the F distribution with df1 and df2 degrees of freedom.
	FCDF(f, df1, df2 float64) float64
}

type approximate struct{}

// Approximate returns the Family made of this package's approximations. It is
// the default everywhere in this module.
func Approximate() Family {
	return approximate{}
}

func (approximate) NormalCDF(x float64) float64        { return NormalCDF(x) }
func (approximate) InverseNormalCDF(p float64) float64 { return InverseNormalCDF(p) }
func (approximate) TCDF(t, df float64) float64         { return TCDF(t, df) }
func (approximate) InverseTCDF(p, df float64) float64  { return InverseTCDF(p, df) }
func (approximate) ChiSquareCDF(x, df float64) float64 { return ChiSquareCDF(x, df) }
func (approximate) FCDF(f, df1, df2 float64) float64   { return FCDF(f, df1, df2) }

type exact struct{}

// Exact returns a Family backed by gonum's distuv package, which evaluates the
// regularized incomplete gamma and beta functions. Results differ from
// Approximate(), sometimes substantially for the chi-square and F
// distributions.
func Exact() Family {
	return exact{}
}

func (exact) NormalCDF(x float64) float64 {
	return distuv.UnitNormal.CDF(x)
}

func (exact) InverseNormalCDF(p float64) float64 {
	return distuv.UnitNormal.Quantile(p)
}

func (exact) TCDF(t, df float64) float64 {
	return distuv.StudentsT{Mu: 0, Sigma: 1, Nu: df}.CDF(t)
}

func (exact) InverseTCDF(p, df float64) float64 {
	return distuv.StudentsT{Mu: 0, Sigma: 1, Nu: df}.Quantile(p)
}

func (exact) ChiSquareCDF(x, df float64) float64 {
	return distuv.ChiSquared{K: df}.CDF(x)
}

func (exact) FCDF(f, df1, df2 float64) float64 {
	return distuv.F{D1: df1, D2: df2}.CDF(f)
}
