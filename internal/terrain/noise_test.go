package terrain

import (
	"errors"
	"math/rand"
	"testing"
)

type constNoise float64

func (c constNoise) Eval(x, y float64) float64 { return float64(c) }

func TestNoiseFieldRange(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for _, kind := range []NoiseKind{NoisePerlin, NoiseSimplex} {
		for trial := 0; trial < 20; trial++ {
			src, err := NewNoise(kind, rng.Int63())
			if err != nil {
				t.Fatalf("NewNoise(%s): %v", kind, err)
			}
			waves := make([]Wave, 1+rng.Intn(4))
			for i := range waves {
				waves[i] = Wave{
					Frequency: 0.1 + rng.Float64()*8,
					Amplitude: 0.01 + rng.Float64()*3,
					Seed:      rng.Float64() * 100,
				}
			}
			scale := 0.01 + rng.Float64()
			offset := [2]float64{rng.Float64() * 50, rng.Float64() * 50}

			field, err := NoiseField(16, 12, scale, offset, waves, src)
			if err != nil {
				t.Fatalf("NoiseField: %v", err)
			}
			for x := range field {
				for y, v := range field[x] {
					if v < 0 || v > 1 {
						t.Fatalf("%s trial %d: field[%d][%d] = %f, out of [0,1]", kind, trial, x, y, v)
					}
				}
			}
		}
	}
}

func TestNoiseFieldWeightedAverage(t *testing.T) {
	waves := []Wave{{Frequency: 1, Amplitude: 1}, {Frequency: 4, Amplitude: 3}}
	field, err := NoiseField(3, 2, 0.5, [2]float64{}, waves, constNoise(0.25))
	if err != nil {
		t.Fatalf("NoiseField: %v", err)
	}
	if len(field) != 3 || len(field[0]) != 2 {
		t.Fatalf("field shape = %dx%d, want 3x2", len(field), len(field[0]))
	}
	for x := range field {
		for y, v := range field[x] {
			if v != 0.25 {
				t.Errorf("field[%d][%d] = %f, want 0.25", x, y, v)
			}
		}
	}
}

func TestNoiseFieldDegenerate(t *testing.T) {
	src := constNoise(0.5)
	if _, err := NoiseField(2, 2, 1, [2]float64{}, nil, src); !errors.Is(err, ErrNoWaves) {
		t.Errorf("empty waves: err = %v, want ErrNoWaves", err)
	}
	zero := []Wave{{Frequency: 1, Amplitude: 0}, {Frequency: 2, Amplitude: 0}}
	if _, err := NoiseField(2, 2, 1, [2]float64{}, zero, src); !errors.Is(err, ErrDegenerateWaves) {
		t.Errorf("zero amplitudes: err = %v, want ErrDegenerateWaves", err)
	}
}

func TestNoiseDeterministic(t *testing.T) {
	for _, kind := range []NoiseKind{NoisePerlin, NoiseSimplex} {
		a, _ := NewNoise(kind, 99999)
		b, _ := NewNoise(kind, 99999)
		for _, p := range [][2]float64{{3.7, 8.2}, {0.1, 0.9}, {120.5, -4.25}} {
			if va, vb := a.Eval(p[0], p[1]), b.Eval(p[0], p[1]); va != vb {
				t.Errorf("%s not deterministic at %v: %f != %f", kind, p, va, vb)
			}
		}
	}
}

func TestParseNoiseKind(t *testing.T) {
	tests := []struct {
		in      string
		want    NoiseKind
		wantErr bool
	}{
		{"", NoisePerlin, false},
		{"perlin", NoisePerlin, false},
		{" Simplex ", NoiseSimplex, false},
		{"value", "", true},
	}
	for _, tt := range tests {
		got, err := ParseNoiseKind(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseNoiseKind(%q) err = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseNoiseKind(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
	if _, err := NewNoise("worley", 1); !errors.Is(err, ErrUnknownNoise) {
		t.Errorf("NewNoise(worley) err = %v, want ErrUnknownNoise", err)
	}
}
