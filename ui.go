package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"Hexmap/internal/terrain"
)

// Pool size
const MaxNotifications = 8

// UI HUD
type UI struct {
	// Pass stats
	seed, riverSeed int64
	riverCount      int
	riverCells      int
	noise           terrain.NoiseKind

	// Hovered cell
	hover      terrain.Coord
	hoverValid bool
	hoverBiome terrain.BiomeType
	hoverTile  int
	hoverFlash int

	// Notifications
	notifications     [MaxNotifications]Notification
	activeNotifyCount int
}

type Notification struct {
	Text   string
	Timer  int
	Active bool // Pool
}

func NewUI() *UI {
	return &UI{}
}

// SetResult records the stats of a finished pass.
func (ui *UI) SetResult(res *terrain.Result, noise terrain.NoiseKind) {
	ui.seed = res.Seed
	ui.riverSeed = res.RiverSeed
	ui.noise = noise
	ui.riverCount = 0
	ui.riverCells = 0
	for _, r := range res.Rivers {
		if len(r.Cells) > 0 {
			ui.riverCount++
		}
		ui.riverCells += len(r.Cells)
	}
}

func (ui *UI) Update(grid *terrain.Grid, tm *Tilemap, cursorX, cursorY int) {
	c, ok := tm.CellAt(cursorX, cursorY)
	if ok && grid != nil {
		cell := grid.At(c)
		if !ui.hoverValid || cell.Biome != ui.hoverBiome {
			ui.hoverFlash = 20
		}
		ui.hover = c
		ui.hoverBiome = cell.Biome
		ui.hoverTile = int(cell.Tile)
	}
	ui.hoverValid = ok && grid != nil

	if ui.hoverFlash > 0 {
		ui.hoverFlash--
	}

	// Update notifications (in-place, no allocations)
	writeIdx := 0
	for i := 0; i < ui.activeNotifyCount; i++ {
		n := ui.notifications[i]
		n.Timer--
		if !n.Active || n.Timer <= 0 {
			continue
		}
		ui.notifications[writeIdx] = n
		writeIdx++
	}
	ui.activeNotifyCount = writeIdx
}

func (ui *UI) AddNotification(notificationText string) {
	if ui.activeNotifyCount < MaxNotifications {
		ui.notifications[ui.activeNotifyCount] = Notification{
			Text:   notificationText,
			Timer:  180,
			Active: true,
		}
		ui.activeNotifyCount++
	} else {
		// Overwrite oldest
		ui.notifications[0] = Notification{
			Text:   notificationText,
			Timer:  180,
			Active: true,
		}
	}
}

func (ui *UI) Draw(screen *ebiten.Image) {
	face := basicfont.Face7x13

	ui.drawStats(screen, face)
	if ui.hoverValid {
		ui.drawHover(screen, face)
	}
	ui.drawNotifications(screen, face)
	ui.drawControlsHint(screen, face)
}

func (ui *UI) drawStats(screen *ebiten.Image, face font.Face) {
	x, y := 20, 20
	lines := []string{
		fmt.Sprintf("Seed:   %d", ui.seed),
		fmt.Sprintf("Rivers seed: %d", ui.riverSeed),
		fmt.Sprintf("Rivers: %d (%d cells)", ui.riverCount, ui.riverCells),
		fmt.Sprintf("Noise:  %s", ui.noise),
	}

	vector.DrawFilledRect(screen, float32(x-8), float32(y-6), 260, float32(len(lines)*18+8), color.RGBA{0, 0, 0, 160}, false)
	for i, line := range lines {
		text.Draw(screen, line, face, x, y+12+i*18, color.White)
	}
}

func (ui *UI) drawHover(screen *ebiten.Image, face font.Face) {
	label := fmt.Sprintf("~ %s (%d,%d) tile %d ~", ui.hoverBiome, ui.hover.X, ui.hover.Y, ui.hoverTile)
	textWidth := len(label) * 7
	x := ScreenWidth/2 - textWidth/2
	y := 40

	vector.DrawFilledRect(screen, float32(x-20), float32(y-15), float32(textWidth+40), 25, color.RGBA{0, 0, 0, 140}, false)

	clr := biomeColor(ui.hoverBiome)
	if ui.hoverFlash > 0 && ui.hoverFlash%4 < 2 {
		clr = color.RGBA{255, 255, 255, 255}
	}
	text.Draw(screen, label, face, x, y, clr)
}

func biomeColor(b terrain.BiomeType) color.RGBA {
	switch b {
	case terrain.Water:
		return color.RGBA{120, 170, 255, 255}
	case terrain.Beach, terrain.Desert:
		return color.RGBA{220, 180, 100, 255}
	case terrain.Grassland:
		return color.RGBA{100, 200, 100, 255}
	case terrain.Forest:
		return color.RGBA{50, 150, 50, 255}
	case terrain.Swamp:
		return color.RGBA{100, 130, 80, 255}
	case terrain.Mountain:
		return color.RGBA{150, 150, 180, 255}
	case terrain.Tundra, terrain.Snow:
		return color.RGBA{230, 240, 255, 255}
	}
	return color.RGBA{200, 200, 200, 255}
}

func (ui *UI) drawNotifications(screen *ebiten.Image, face font.Face) {
	startY := ScreenHeight - 60
	drawnCount := 0
	for i := 0; i < ui.activeNotifyCount; i++ {
		n := &ui.notifications[i]
		if !n.Active {
			continue
		}

		y := startY - drawnCount*25
		drawnCount++

		// Fade based on timer
		alpha := 255
		if n.Timer < 30 {
			alpha = int(float64(n.Timer) / 30 * 255)
		}

		textWidth := len(n.Text) * 7
		x := ScreenWidth/2 - textWidth/2

		text.Draw(screen, n.Text, face, x, y, color.RGBA{255, 255, 200, uint8(alpha)})
	}
}

func (ui *UI) drawControlsHint(screen *ebiten.Image, face font.Face) {
	hints := "WASD/Arrows: Pan | R: Regenerate | N: Noise | G: Grid | F1: Debug | ESC: Quit"
	textWidth := len(hints) * 7
	x := ScreenWidth/2 - textWidth/2
	y := ScreenHeight - 20

	text.Draw(screen, hints, face, x, y, color.RGBA{200, 200, 200, 180})
}
