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

// Package rand provides the sources of uniform random numbers used to
// initialize k-means centroids.
package rand

import (
	"bufio"
	cryptorand "crypto/rand"
	"encoding/binary"
	"io"
	mathrand "math/rand"
	"sync"

	log "github.com/golang/glog"
)

// Source produces uniformly distributed float64 values in [0, 1).
type Source interface {
	Float64() float64
}

var (
	randBufLock sync.Mutex
	randBuf     io.Reader = bufio.NewReaderSize(cryptorand.Reader, 65536)
)

func readRandBuf(b []byte) (int, error) {
	randBufLock.Lock()
	defer randBufLock.Unlock()
	return io.ReadFull(randBuf, b)
}

// U64 returns a uniformly random uint64 read from the shared crypto buffer.
func U64() uint64 {
	var r [8]uint8
	if _, err := readRandBuf(r[:]); err != nil {
		log.Fatalf("out of randomness, should never happen: %v", err)
	}
	return binary.LittleEndian.Uint64(r[:])
}

// Float64 returns a uniformly random float64 in [0, 1) from the top 53 bits
// of U64.
func Float64() float64 {
	return float64(U64()>>11) / (1 << 53)
}

// secureSource is a Source backed by crypto/rand.
type secureSource struct{}

func (secureSource) Float64() float64 { return Float64() }

// Secure returns a non-deterministic Source backed by crypto/rand. It is safe
// for concurrent use.
func Secure() Source {
	return secureSource{}
}

// seededSource is a deterministic Source. It is not safe for concurrent use.
type seededSource struct {
	r *mathrand.Rand
}

func (s *seededSource) Float64() float64 { return s.r.Float64() }

// NewSeeded returns a deterministic Source: two sources created with the same
// seed produce the same sequence. Use it to make k-means runs reproducible.
func NewSeeded(seed int64) Source {
	return &seededSource{r: mathrand.New(mathrand.NewSource(seed))}
}
