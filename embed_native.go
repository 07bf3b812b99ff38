//go:build !js || !wasm

package main

import "io/fs"

// Native builds read assets/ from disk
func GetEmbeddedFS() fs.FS {
	return nil
}

func IsEmbedded() bool {
	return false
}
