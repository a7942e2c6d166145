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

// Package cluster implements k-means clustering with Euclidean distance.
//
// Centroids start at independent uniform random coordinates in
// [InitLower, InitUpper) regardless of where the data lie, so a run may leave
// clusters empty or settle on a poor partition. Results are reproducible only
// when Options.Source is seeded.
package cluster

import (
	"math"

	log "github.com/golang/glog"
	"github.com/google/statcore/checks"
	"github.com/google/statcore/rand"
	"gonum.org/v1/gonum/floats"
)

const (
	// DefaultMaxIterations is used when Options.MaxIterations is 0.
	DefaultMaxIterations = 100

	// InitLower and InitUpper bound the initial centroid coordinates.
	InitLower = 0.0
	InitUpper = 10.0
)

// Options contains the options necessary to run KMeans.
type Options struct {
	// Maximum number of assignment passes. Defaults to DefaultMaxIterations.
	MaxIterations int
	// Source of the initial centroid coordinates. Defaults to rand.Secure().
	Source rand.Source
}

// Result is the outcome of a k-means run.
type Result struct {
	// Assignments[i] is the cluster of the i-th point, in [0, k).
	Assignments []int
	// Centroids[j] is the mean of the points assigned to cluster j, or its
	// previous position if no point is assigned to it.
	Centroids [][]float64
	// Iterations is the number of assignment passes performed.
	Iterations int
	// Converged reports whether the last pass left every assignment unchanged.
	Converged bool
	// Inertia is the sum of squared distances from each point to its centroid.
	Inertia float64
}

// Nearest returns the index of the centroid closest to point, the lowest
// index among ties.
func (r *Result) Nearest(point []float64) int {
	return nearest(point, r.Centroids)
}

// KMeans partitions points into k clusters.
//
// Each pass assigns every point to its nearest centroid and then moves each
// centroid to the mean of its points; a centroid with no points stays where it
// is. The passes stop once the assignments no longer change or after
// opt.MaxIterations passes.
//
// KMeans returns an error if k < 1, if points is empty or ragged, or if
// opt.MaxIterations is negative. The input is not modified.
func KMeans(points [][]float64, k int, opt *Options) (*Result, error) {
	if opt == nil {
		opt = &Options{}
	}
	if err := checks.CheckClusterCount("KMeans", k); err != nil {
		return nil, err
	}
	if err := checks.CheckPoints("KMeans", points); err != nil {
		return nil, err
	}
	if err := checks.CheckMaxIterations("KMeans", opt.MaxIterations); err != nil {
		return nil, err
	}
	maxIterations := opt.MaxIterations
	if maxIterations == 0 {
		maxIterations = DefaultMaxIterations
	}
	src := opt.Source
	if src == nil {
		src = rand.Secure()
	}

	centroids := initialCentroids(src, k, len(points[0]))
	assignments := make([]int, len(points))
	for i := range assignments {
		assignments[i] = -1
	}
	res := &Result{Assignments: assignments, Centroids: centroids}
	for res.Iterations < maxIterations {
		res.Iterations++
		if !assign(points, centroids, assignments) {
			res.Converged = true
			break
		}
		updateCentroids(points, centroids, assignments)
		log.V(1).Infof("KMeans: pass %d reassigned points", res.Iterations)
	}
	for i, p := range points {
		d := floats.Distance(p, centroids[assignments[i]], 2)
		res.Inertia += d * d
	}
	return res, nil
}

// initialCentroids draws k centroids of dimension dim with coordinates
// uniform in [InitLower, InitUpper).
func initialCentroids(src rand.Source, k, dim int) [][]float64 {
	centroids := make([][]float64, k)
	for j := range centroids {
		c := make([]float64, dim)
		for d := range c {
			c[d] = InitLower + (InitUpper-InitLower)*src.Float64()
		}
		centroids[j] = c
	}
	return centroids
}

// assign sets each point's cluster to its nearest centroid and reports
// whether any assignment changed.
func assign(points, centroids [][]float64, assignments []int) bool {
	changed := false
	for i, p := range points {
		j := nearest(p, centroids)
		if j != assignments[i] {
			assignments[i] = j
			changed = true
		}
	}
	return changed
}

func nearest(p []float64, centroids [][]float64) int {
	best, bestDist := 0, math.Inf(1)
	for j, c := range centroids {
		if d := floats.Distance(p, c, 2); d < bestDist {
			best, bestDist = j, d
		}
	}
	return best
}

// updateCentroids moves each centroid to the mean of its assigned points,
// leaving centroids without points unchanged.
func updateCentroids(points, centroids [][]float64, assignments []int) {
	sums := make([][]float64, len(centroids))
	counts := make([]int, len(centroids))
	for j := range sums {
		sums[j] = make([]float64, len(centroids[j]))
	}
	for i, p := range points {
		j := assignments[i]
		floats.Add(sums[j], p)
		counts[j]++
	}
	for j, s := range sums {
		if counts[j] == 0 {
			log.V(1).Infof("KMeans: cluster %d is empty, keeping its centroid", j)
			continue
		}
		floats.Scale(1/float64(counts[j]), s)
		centroids[j] = s
	}
}
