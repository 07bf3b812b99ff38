//go:build js && wasm

package main

import (
	"embed"
	"io/fs"
)

// Bundled settings and tileset for the browser build
//
//go:embed all:assets
var embeddedAssets embed.FS

func GetEmbeddedFS() fs.FS {
	return embeddedAssets
}

// True for WASM
func IsEmbedded() bool {
	return true
}
