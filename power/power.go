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

// Package power computes the sample sizes needed to estimate a mean or a
// proportion to a given margin of error, and the approximate power of a
// two-sided z-test.
//
// Confidence levels are fractions (0.95, not 95). Invalid levels are not
// rejected; they are logged and the computation proceeds.
package power

import (
	"math"

	log "github.com/golang/glog"
	"github.com/google/statcore/checks"
	"github.com/google/statcore/dist"
)

// DefaultProportion is the proportion that maximizes p(1−p), giving the most
// conservative sample size when nothing is known about p.
const DefaultProportion = 0.5

// criticalValue returns z_{1−α/2} for α = 1 − confidence.
func criticalValue(confidence float64) float64 {
	alpha := 1 - confidence
	return dist.InverseNormalCDF(1 - alpha/2)
}

// ceilSize rounds a sample size up. Sizes that are not finite or do not fit
// in an int, which arise only from invalid or extreme arguments, are logged
// and reported as 0.
func ceilSize(label string, n float64) int {
	if math.IsNaN(n) || math.Abs(n) >= math.MaxInt {
		log.Warningf("%s: sample size is %g, returning 0", label, n)
		return 0
	}
	return int(math.Ceil(n))
}

// SampleSizeForMean returns the number of observations needed to estimate a
// mean with standard deviation sd to within ±margin at the given confidence:
// ceil((z·σ/E)²).
func SampleSizeForMean(margin, sd, confidence float64) int {
	checks.WarnIfError(checks.CheckMarginOfError("SampleSizeForMean", margin))
	checks.WarnIfError(checks.CheckConfidenceLevel("SampleSizeForMean", confidence))
	z := criticalValue(confidence)
	e := z * sd / margin
	return ceilSize("SampleSizeForMean", e*e)
}

// SampleSizeForProportion returns the number of observations needed to
// estimate a proportion near p to within ±margin at the given confidence:
// ceil(z²·p(1−p)/E²). Pass DefaultProportion when p is unknown.
func SampleSizeForProportion(margin, p, confidence float64) int {
	checks.WarnIfError(checks.CheckMarginOfError("SampleSizeForProportion", margin))
	checks.WarnIfError(checks.CheckProbability("SampleSizeForProportion", p))
	checks.WarnIfError(checks.CheckConfidenceLevel("SampleSizeForProportion", confidence))
	z := criticalValue(confidence)
	return ceilSize("SampleSizeForProportion", z*z*p*(1-p)/(margin*margin))
}

// Power returns the normal approximation Φ(d·√n − z_{1−α/2}) of the power of
// a two-sided test at level alpha to detect a standardized effect of size
// effectSize with n observations. It ignores the opposite tail and is not a
// noncentral t computation.
func Power(effectSize float64, n int, alpha float64) float64 {
	checks.WarnIfError(checks.CheckAlpha("Power", alpha))
	checks.WarnSampleSize("Power", n, 1)
	z := criticalValue(1 - alpha)
	return dist.NormalCDF(effectSize*math.Sqrt(float64(n)) - z)
}
