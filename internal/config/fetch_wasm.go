//go:build js && wasm

package config

import (
	"context"
	"errors"
)

var ErrFetchUnsupported = errors.New("config: remote settings are not supported in browser builds")

// Fetch is unavailable under WASM; settings come from the embedded assets.
func Fetch(ctx context.Context, src, dir string) (string, error) {
	return "", ErrFetchUnsupported
}
