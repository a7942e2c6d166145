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

// Package hypothesis implements t-tests, one-way ANOVA and the chi-square
// goodness-of-fit test.
//
// Tests do not validate their input beyond the length checks of paired data.
// Samples that are too small produce NaN statistics, which propagate into the
// returned Result.
package hypothesis

import "fmt"

// SignificanceLevel is the level the Interpretation of every Result is
// phrased against. Callers wanting another α should compare PValue
// themselves.
const SignificanceLevel = 0.05

// ConfidenceLevel is the level of the confidence intervals attached to t-test
// results.
const ConfidenceLevel = 0.95

// TestKind identifies the test that produced a Result.
type TestKind int

// Kinds of tests.
const (
	OneSampleT TestKind = iota
	TwoSampleT
	WelchT
	PairedT
	ANOVA
	ChiSquareGoodnessOfFit
)

var kindNames = map[TestKind]string{
	OneSampleT:             "One-sample t-test",
	TwoSampleT:             "Two-sample t-test (pooled variance)",
	WelchT:                 "Welch's t-test",
	PairedT:                "Paired t-test",
	ANOVA:                  "One-way ANOVA",
	ChiSquareGoodnessOfFit: "Chi-square goodness-of-fit test",
}

func (k TestKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "Unknown test"
}

// ConfidenceInterval holds lower and upper bounds and the confidence level they
// were computed for.
type ConfidenceInterval struct {
	LowerBound, UpperBound float64
	Level                  float64
}

// Result is the outcome of a hypothesis test. Exactly one of TTest, ANOVA and
// ChiSquare is set, matching Kind.
type Result struct {
	Kind          TestKind
	TestStatistic float64
	// DegreesOfFreedom is the (possibly fractional) df of the reference
	// distribution. For ANOVA it is the numerator df; see ANOVADetails for
	// both.
	DegreesOfFreedom float64
	// PValue is clamped to [0, 1].
	PValue         float64
	Confidence     *ConfidenceInterval
	Interpretation string
	Assumptions    []string

	TTest     *TTestDetails
	ANOVA     *ANOVADetails
	ChiSquare *ChiSquareDetails
}

// Significant reports whether PValue is below SignificanceLevel.
func (r Result) Significant() bool {
	return r.PValue < SignificanceLevel
}

// TTestDetails holds the intermediate quantities of a t-test. For one-sample
// and paired tests Mean2 is the hypothesized mean and N2 is 0.
type TTestDetails struct {
	Mean1, Mean2   float64
	N1, N2         int
	MeanDifference float64
	StandardError  float64
	// EffectSize is Cohen's d.
	EffectSize float64
}

// ANOVADetails holds the sums of squares table of a one-way ANOVA.
type ANOVADetails struct {
	SSBetween, SSWithin, SSTotal float64
	DFBetween, DFWithin          float64
	MSBetween, MSWithin          float64
	GrandMean                    float64
	GroupMeans                   []float64
	// EtaSquared is SSBetween / SSTotal.
	EtaSquared float64
}

// ChiSquareDetails holds the per-category terms (O−E)²/E of a chi-square test.
type ChiSquareDetails struct {
	Contributions []float64
}

// String returns a one-line summary of r.
func (r Result) String() string {
	return fmt.Sprintf("%v: statistic = %.4f, df = %.4g, p = %.4f", r.Kind, r.TestStatistic, r.DegreesOfFreedom, r.PValue)
}
