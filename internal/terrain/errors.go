package terrain

import "errors"

// Configuration errors. Settings.Validate wraps these so callers can match
// with errors.Is.
var (
	ErrInvalidSize     = errors.New("terrain: grid size must be positive")
	ErrInvalidScale    = errors.New("terrain: scale must be positive")
	ErrNoWaves         = errors.New("terrain: wave list is empty")
	ErrDegenerateWaves = errors.New("terrain: wave amplitudes must sum to a positive value")
	ErrNoBiomes        = errors.New("terrain: biome list is empty")
	ErrNoTiles         = errors.New("terrain: biome has no tile variants")
	ErrNegativeRivers  = errors.New("terrain: max rivers must not be negative")
	ErrUnknownNoise    = errors.New("terrain: unknown noise kind")
	ErrUnknownBiome    = errors.New("terrain: unknown biome type")
)
