package terrain

import (
	"errors"
	"fmt"
)

// Settings is everything one generation pass needs.
type Settings struct {
	Width    int        `json:"width"`
	Height   int        `json:"height"`
	Scale    float64    `json:"scale"`
	Offset   [2]float64 `json:"offset"`
	CellSize float64    `json:"cell_size"`

	HeightWaves      []Wave `json:"height_waves"`
	MoistureWaves    []Wave `json:"moisture_waves"`
	TemperatureWaves []Wave `json:"temperature_waves"`

	Biomes    []Biome `json:"biomes"`
	MaxRivers int     `json:"max_rivers"`

	Noise NoiseKind `json:"noise"`
	// Zero seeds are replaced by a time-based seed at the start of a pass.
	Seed      int64 `json:"seed"`
	RiverSeed int64 `json:"river_seed"`
}

// Validate reports every configuration problem at once.
func (s Settings) Validate() error {
	var errs []error
	if s.Width <= 0 || s.Height <= 0 {
		errs = append(errs, fmt.Errorf("%w: %dx%d", ErrInvalidSize, s.Width, s.Height))
	}
	if !(s.Scale > 0) {
		errs = append(errs, fmt.Errorf("%w: %v", ErrInvalidScale, s.Scale))
	}
	errs = append(errs,
		validateWaves("height", s.HeightWaves),
		validateWaves("moisture", s.MoistureWaves),
		validateWaves("temperature", s.TemperatureWaves),
	)
	if len(s.Biomes) == 0 {
		errs = append(errs, ErrNoBiomes)
	}
	for i, b := range s.Biomes {
		if len(b.Tiles) == 0 {
			errs = append(errs, fmt.Errorf("%w: biome %d (%s)", ErrNoTiles, i, b.Name))
		}
		if b.Type < 0 || int(b.Type) >= len(biomeNames) {
			errs = append(errs, fmt.Errorf("%w: biome %d has type %d", ErrUnknownBiome, i, int(b.Type)))
		}
	}
	if s.MaxRivers < 0 {
		errs = append(errs, fmt.Errorf("%w: %d", ErrNegativeRivers, s.MaxRivers))
	}
	if _, err := ParseNoiseKind(string(s.Noise)); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

func validateWaves(field string, waves []Wave) error {
	if len(waves) == 0 {
		return fmt.Errorf("%w: %s", ErrNoWaves, field)
	}
	var sum float64
	for i, w := range waves {
		if !(w.Amplitude > 0) || !(w.Frequency > 0) {
			return fmt.Errorf("%w: %s wave %d has frequency %v amplitude %v", ErrDegenerateWaves, field, i, w.Frequency, w.Amplitude)
		}
		sum += w.Amplitude
	}
	if sum <= 0 {
		return fmt.Errorf("%w: %s", ErrDegenerateWaves, field)
	}
	return nil
}
