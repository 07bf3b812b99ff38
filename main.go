package main

import (
	"context"
	"flag"
	"fmt"
	"image/color"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"Hexmap/internal/config"
	"Hexmap/internal/terrain"
)

const (
	ScreenWidth  = 1280
	ScreenHeight = 720

	// Camera pan speed in pixels per tick
	PanSpeed = 8.0
)

var backgroundColor = color.RGBA{18, 22, 30, 255}

type Game struct {
	settings terrain.Settings
	result   *terrain.Result
	logger   *slog.Logger

	// Systems
	tilemap *Tilemap
	ui      *UI

	// Debug
	showDebug   bool
	showOutline bool
}

func NewGame(settings terrain.Settings, tileset *ebiten.Image, logger *slog.Logger) (*Game, error) {
	g := &Game{
		settings: settings,
		logger:   logger,
		tilemap:  NewTilemap(tileset, 16),
		ui:       NewUI(),
	}
	if err := g.regenerate(); err != nil {
		return nil, err
	}
	return g, nil
}

// regenerate runs a full pass with the current settings.
func (g *Game) regenerate() error {
	gen, err := terrain.New(g.settings, g.tilemap,
		terrain.WithLogger(g.logger),
		terrain.WithFramer(g.tilemap),
	)
	if err != nil {
		return err
	}

	g.tilemap.Resize(g.settings.Width, g.settings.Height)
	start := time.Now()
	res, err := gen.Generate()
	if err != nil {
		return err
	}
	g.result = res
	g.ui.SetResult(res, g.settings.Noise)
	g.ui.AddNotification(fmt.Sprintf("Generated %dx%d map in %s", g.settings.Width, g.settings.Height, time.Since(start).Round(time.Millisecond)))
	return nil
}

// Update game logic
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		g.showDebug = !g.showDebug
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		g.showOutline = !g.showOutline
	}

	// Fresh time-based seeds
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.settings.Seed = 0
		g.settings.RiverSeed = 0
		if err := g.regenerate(); err != nil {
			log.Printf("ERROR: regenerate: %v", err)
			g.ui.AddNotification("Regeneration failed")
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		if g.settings.Noise == terrain.NoiseSimplex {
			g.settings.Noise = terrain.NoisePerlin
		} else {
			g.settings.Noise = terrain.NoiseSimplex
		}
		// Keep the seeds so only the backend changes
		g.settings.Seed = g.result.Seed
		g.settings.RiverSeed = g.result.RiverSeed
		if err := g.regenerate(); err != nil {
			log.Printf("ERROR: regenerate: %v", err)
			g.ui.AddNotification("Regeneration failed")
		}
	}

	g.updateCamera()

	mx, my := ebiten.CursorPosition()
	g.ui.Update(g.result.Grid, g.tilemap, mx, my)
	return nil
}

func (g *Game) updateCamera() {
	var dx, dy float64
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA) {
		dx -= PanSpeed
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD) {
		dx += PanSpeed
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW) {
		dy -= PanSpeed
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) || ebiten.IsKeyPressed(ebiten.KeyS) {
		dy += PanSpeed
	}
	if dx != 0 || dy != 0 {
		g.tilemap.Pan(dx, dy)
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	// Draw world
	g.tilemap.Draw(screen, g.showOutline)

	// Draw UI
	g.ui.Draw(screen)

	// Draw debug
	if g.showDebug {
		g.drawDebug(screen)
	}
}

func (g *Game) drawDebug(screen *ebiten.Image) {
	grid := g.result.Grid
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("FPS: %0.2f\nTPS: %0.2f\nCamera: %0.0f,%0.0f\nWater: %d  Mountain: %d\nRivers: %d",
		ebiten.ActualFPS(), ebiten.ActualTPS(), g.tilemap.CameraX, g.tilemap.CameraY,
		grid.Count(terrain.Water), grid.Count(terrain.Mountain), len(g.result.Rivers)), ScreenWidth-220, 20)
}

func (g *Game) Layout(w, h int) (int, int) {
	return ScreenWidth, ScreenHeight
}

func fetchSettings(src, cacheDir string) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	return config.Fetch(ctx, src, cacheDir)
}

func main() {
	fs := flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	configSrc := fs.String("config", "", "settings file or go-getter source (default: assets/terrain.json)")
	tilesetPath := fs.String("tileset", "", "tileset atlas image (16px tiles); colors are used when empty")
	verbose := fs.Bool("v", false, "log every carved river")

	settings := config.Default()
	config.Bind(fs, &settings)
	_ = fs.Parse(os.Args[1:])

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level}))

	fromFile, err := loadSettings(*configSrc, filepath.Join(os.TempDir(), "hexmap"))
	if err != nil {
		log.Fatalf("Failed to load settings: %v", err)
	}
	config.Merge(&settings, fromFile, config.Explicit(fs))

	var tileset *ebiten.Image
	if *tilesetPath != "" {
		tileset = loadImage(*tilesetPath)
	}

	game, err := NewGame(settings, tileset, logger)
	if err != nil {
		log.Fatalf("Failed to generate map: %v", err)
	}

	ebiten.SetWindowSize(ScreenWidth, ScreenHeight)
	ebiten.SetWindowTitle("Hexmap - Procedural Hex Terrain")
	log.Println("Map ready (R to regenerate, N to switch noise)")

	if err := ebiten.RunGame(game); err != nil {
		if err != ebiten.Termination {
			log.Fatal(err)
		}
	}
}
