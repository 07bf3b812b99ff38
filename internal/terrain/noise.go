package terrain

import (
	"fmt"
	"strings"

	"github.com/aquilax/go-perlin"
	opensimplex "github.com/ojrac/opensimplex-go"
)

// Wave is one octave of a noise field.
type Wave struct {
	Frequency float64 `json:"frequency"`
	Amplitude float64 `json:"amplitude"`
	Seed      float64 `json:"seed,omitempty"` // positional offset for this octave only
}

// Noise is a seeded, continuous 2D noise source with output in [0,1].
type Noise interface {
	Eval(x, y float64) float64
}

// NoiseKind selects a Noise backend.
type NoiseKind string

const (
	NoisePerlin  NoiseKind = "perlin"
	NoiseSimplex NoiseKind = "simplex"
)

// ParseNoiseKind accepts the backend names case-insensitively. An empty name
// selects Perlin.
func ParseNoiseKind(s string) (NoiseKind, error) {
	switch NoiseKind(strings.ToLower(strings.TrimSpace(s))) {
	case "", NoisePerlin:
		return NoisePerlin, nil
	case NoiseSimplex:
		return NoiseSimplex, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownNoise, s)
}

// NewNoise builds the backend for kind seeded with seed.
func NewNoise(kind NoiseKind, seed int64) (Noise, error) {
	switch kind {
	case "", NoisePerlin:
		// Single octave; layering is done by the wave list.
		return perlinNoise{p: perlin.NewPerlin(2, 2, 1, seed)}, nil
	case NoiseSimplex:
		return simplexNoise{n: opensimplex.NewNormalized(seed)}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownNoise, kind)
}

type perlinNoise struct {
	p *perlin.Perlin
}

// go-perlin returns roughly [-1,1].
func (n perlinNoise) Eval(x, y float64) float64 {
	return clamp01((n.p.Noise2D(x, y) + 1) / 2)
}

type simplexNoise struct {
	n opensimplex.Noise
}

func (n simplexNoise) Eval(x, y float64) float64 {
	return clamp01(n.n.Eval2(x, y))
}

// NoiseField evaluates the weighted average of waves over a width x height
// grid, indexed [x][y]. Each octave samples src at
// (pos*frequency + wave.Seed) where pos = (x*scale+offset[0], y*scale+offset[1]).
func NoiseField(width, height int, scale float64, offset [2]float64, waves []Wave, src Noise) ([][]float64, error) {
	if len(waves) == 0 {
		return nil, ErrNoWaves
	}
	var norm float64
	for _, w := range waves {
		norm += w.Amplitude
	}
	if norm <= 0 {
		return nil, ErrDegenerateWaves
	}

	field := make([][]float64, width)
	for x := 0; x < width; x++ {
		field[x] = make([]float64, height)
		for y := 0; y < height; y++ {
			sx := float64(x)*scale + offset[0]
			sy := float64(y)*scale + offset[1]

			var v float64
			for _, w := range waves {
				v += w.Amplitude * src.Eval(sx*w.Frequency+w.Seed, sy*w.Frequency+w.Seed)
			}
			field[x][y] = v / norm
		}
	}
	return field, nil
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
