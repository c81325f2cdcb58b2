// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nef

import (
	"math"
	"math/rand"
	"testing"

	"github.com/goki/mat32"
)

func TestEnsembleRates(t *testing.T) {
	en := NewEnsemble("TestEns", 50, 2)
	if err := en.Build(); err != nil {
		t.Fatal(err)
	}
	rand.Seed(7)
	en.Init()

	// encoders must be unit length
	for j := 0; j < en.NUnits; j++ {
		enc := en.Encoders.Values[j*en.DimN : (j+1)*en.DimN]
		nrm := float32(0)
		for _, e := range enc {
			nrm += e * e
		}
		if mat32.Abs(nrm-1) > 1e-5 {
			t.Errorf("encoder %d not unit length: norm^2 = %v\n", j, nrm)
		}
	}

	// rates must be non-negative and finite over a grid of inputs
	for _, x := range [][]float32{{0, 0}, {1, 0}, {-1, 0}, {0.5, -0.5}, {-1, 1}} {
		if err := en.ActFmInput(x); err != nil {
			t.Fatal(err)
		}
		anyOn := false
		for j, a := range en.Acts {
			if a < 0 {
				t.Errorf("negative rate at unit %d for input %v: %v\n", j, x, a)
			}
			if math.IsNaN(float64(a)) || math.IsInf(float64(a), 0) {
				t.Errorf("non-finite rate at unit %d for input %v: %v\n", j, x, a)
			}
			if a > 0 {
				anyOn = true
			}
		}
		if !anyOn {
			t.Errorf("no unit active for input %v\n", x)
		}
	}
}

func TestEnsembleDeterministicInit(t *testing.T) {
	en := NewEnsemble("TestEns", 30, 3)
	if err := en.Build(); err != nil {
		t.Fatal(err)
	}
	rand.Seed(21)
	en.Init()
	enc1 := make([]float32, len(en.Encoders.Values))
	copy(enc1, en.Encoders.Values)
	gn1 := make([]float32, len(en.Gains))
	copy(gn1, en.Gains)

	rand.Seed(21)
	en.Init()
	for i := range enc1 {
		if en.Encoders.Values[i] != enc1[i] { // exact: same seed, same curves
			t.Fatalf("encoders differ across seeded inits at %d\n", i)
		}
	}
	for j := range gn1 {
		if en.Gains[j] != gn1[j] {
			t.Fatalf("gains differ across seeded inits at %d\n", j)
		}
	}
}

func TestEnsembleDimMismatch(t *testing.T) {
	en := NewEnsemble("TestEns", 10, 2)
	if err := en.Build(); err != nil {
		t.Fatal(err)
	}
	rand.Seed(1)
	en.Init()
	if err := en.ActFmInput([]float32{1, 2, 3}); err == nil {
		t.Errorf("expected error for input len != DimN")
	}
}

func TestEnsembleZeroUnits(t *testing.T) {
	en := NewEnsemble("TestEns", 0, 2)
	if err := en.Build(); err != nil {
		t.Fatal(err)
	}
	en.Init()
	if err := en.ActFmInput([]float32{0.5, 0.5}); err != nil {
		t.Errorf("zero-unit ensemble must be a valid no-op, got: %v\n", err)
	}
}
