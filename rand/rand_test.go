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

package rand

import (
	"bytes"
	"testing"
)

func TestFloat64UsesTopBits(t *testing.T) {
	randBuf = bytes.NewReader([]byte{
		// Little-endian 1<<63: the top bit alone gives 0.5.
		0, 0, 0, 0, 0, 0, 0, 0x80,
		// All ones: the largest float64 below 1.
		0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
		// All zeros.
		0, 0, 0, 0, 0, 0, 0, 0,
	})
	for i, want := range []float64{0.5, 1 - 1.0/(1<<53), 0} {
		if got := Secure().Float64(); got != want {
			t.Errorf("Float64: got %v, want %v in %d-th iteration", got, want, i)
		}
	}
}

func TestSecureInUnitInterval(t *testing.T) {
	randBuf = bytes.NewReader(bytes.Repeat([]byte{0x3c, 0xa5, 0x00, 0xff, 0x71}, 1600))
	s := Secure()
	for i := 0; i < 1000; i++ {
		if got := s.Float64(); got < 0 || got >= 1 {
			t.Fatalf("Secure().Float64() = %v, want a value in [0, 1)", got)
		}
	}
}

func TestNewSeededIsReproducible(t *testing.T) {
	a, b, c := NewSeeded(42), NewSeeded(42), NewSeeded(43)
	differs := false
	for i := 0; i < 20; i++ {
		x, y, z := a.Float64(), b.Float64(), c.Float64()
		if x != y {
			t.Fatalf("NewSeeded(42) produced %v and %v at draw %d, want identical sequences", x, y, i)
		}
		if x != z {
			differs = true
		}
		if x < 0 || x >= 1 {
			t.Errorf("NewSeeded(42).Float64() = %v, want a value in [0, 1)", x)
		}
	}
	if !differs {
		t.Errorf("NewSeeded(42) and NewSeeded(43) produced identical sequences")
	}
}
