package main

import (
	"bytes"
	"image"
	"io/fs"
	"log"

	_ "image/jpeg" // Register JPEG decoder
	_ "image/png"  // Register PNG decoder

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"Hexmap/internal/config"
	"Hexmap/internal/terrain"
)

const settingsAsset = "assets/terrain.json"

func loadImage(path string) *ebiten.Image {
	if IsEmbedded() {
		embeddedFS := GetEmbeddedFS()
		if embeddedFS != nil {
			data, err := fs.ReadFile(embeddedFS, path)
			if err != nil {
				log.Printf("Warning: Failed to load embedded image %s: %v", path, err)
				return nil
			}
			img, _, err := image.Decode(bytes.NewReader(data))
			if err != nil {
				log.Printf("Warning: Failed to decode embedded image %s: %v", path, err)
				return nil
			}
			return ebiten.NewImageFromImage(img)
		}
	}
	// Fallback to filesystem
	img, _, err := ebitenutil.NewImageFromFile(path)
	if err != nil {
		log.Printf("Warning: Failed to load image %s: %v", path, err)
		return nil
	}
	return img
}

// loadSettings resolves the generation settings: an explicit file (or
// go-getter source) wins, then the bundled asset, then built-in defaults.
func loadSettings(src, cacheDir string) (terrain.Settings, error) {
	if src != "" {
		path, err := fetchSettings(src, cacheDir)
		if err != nil {
			return terrain.Settings{}, err
		}
		return config.Load(path)
	}

	if IsEmbedded() {
		if embeddedFS := GetEmbeddedFS(); embeddedFS != nil {
			s, err := config.LoadFS(embeddedFS, settingsAsset)
			if err == nil {
				return s, nil
			}
			log.Printf("Warning: Failed to load embedded settings: %v", err)
		}
		return config.Default(), nil
	}

	s, err := config.Load(settingsAsset)
	if err != nil {
		log.Printf("Warning: %v (using built-in settings)", err)
		return config.Default(), nil
	}
	return s, nil
}
