package main

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"Hexmap/internal/config"
	"Hexmap/internal/terrain"
)

// Row pitch of pointy-top hexes relative to their width.
const rowPitch = 0.8660254037844386 // sqrt(3)/2

// Fallback colors when no tileset is loaded
var tilePalette = map[int]color.RGBA{
	int(config.TileWater):      {40, 90, 180, 255},
	int(config.TileSand):       {222, 200, 140, 255},
	int(config.TileGrass):      {90, 170, 70, 255},
	int(config.TileFlower):     {150, 190, 80, 255},
	int(config.TileLeaves):     {40, 120, 50, 255},
	int(config.TileDirt):       {120, 90, 60, 255},
	int(config.TileMossyStone): {80, 110, 80, 255},
	int(config.TileSnowGrass):  {225, 235, 240, 255},
	int(config.TileStone):      {130, 130, 140, 255},
	int(config.TileDarkStone):  {80, 80, 90, 255},
}

// Tilemap receives painted cells from the generator and draws them as a
// brick-laid hex grid, north up.
type Tilemap struct {
	Tileset   *ebiten.Image
	TileCache map[int]*ebiten.Image
	Grid      [][]int // [y][x]
	Cols      int
	Rows      int
	TileSize  int     // atlas tile size
	CellSize  float64 // on-screen cell width
	DrawOpts  *ebiten.DrawImageOptions

	CameraX, CameraY float64
}

func NewTilemap(tileset *ebiten.Image, tileSize int) *Tilemap {
	return &Tilemap{
		Tileset:   tileset,
		TileSize:  tileSize,
		CellSize:  float64(tileSize),
		TileCache: make(map[int]*ebiten.Image),
		DrawOpts:  &ebiten.DrawImageOptions{},
	}
}

// Resize clears the grid before a generation pass paints into it.
func (tm *Tilemap) Resize(cols, rows int) {
	tm.Cols = cols
	tm.Rows = rows
	tm.Grid = make([][]int, rows)
	for y := 0; y < rows; y++ {
		tm.Grid[y] = make([]int, cols)
	}
}

// Paint implements terrain.Painter.
func (tm *Tilemap) Paint(x, y int, tile terrain.TileID) {
	if x < 0 || x >= tm.Cols || y < 0 || y >= tm.Rows {
		return
	}
	tm.Grid[y][x] = int(tile)
}

// Frame implements terrain.Framer: adopt the cell size and center the camera.
func (tm *Tilemap) Frame(width, height int, cellSize float64) {
	if width != tm.Cols || height != tm.Rows {
		tm.Resize(width, height)
	}
	if cellSize > 0 {
		tm.CellSize = cellSize
	}
	w, h := tm.WorldSize()
	tm.CameraX = (w - ScreenWidth) / 2
	tm.CameraY = (h - ScreenHeight) / 2
	tm.clampCamera()
}

// WorldSize is the map size in pixels.
func (tm *Tilemap) WorldSize() (float64, float64) {
	return (float64(tm.Cols) + 0.5) * tm.CellSize, float64(tm.Rows) * tm.CellSize * rowPitch
}

// CellOrigin returns the world-space top-left corner of cell (x, y).
func (tm *Tilemap) CellOrigin(x, y int) (float64, float64) {
	wx := float64(x) * tm.CellSize
	if y%2 != 0 {
		wx += tm.CellSize / 2
	}
	wy := float64(tm.Rows-1-y) * tm.CellSize * rowPitch
	return wx, wy
}

// CellAt maps a screen position to the cell under it.
func (tm *Tilemap) CellAt(sx, sy int) (terrain.Coord, bool) {
	if tm.CellSize <= 0 {
		return terrain.Coord{}, false
	}
	wx := float64(sx) + tm.CameraX
	wy := float64(sy) + tm.CameraY

	row := int(math.Floor(wy / (tm.CellSize * rowPitch)))
	y := tm.Rows - 1 - row
	if y < 0 || y >= tm.Rows {
		return terrain.Coord{}, false
	}
	if y%2 != 0 {
		wx -= tm.CellSize / 2
	}
	x := int(math.Floor(wx / tm.CellSize))
	if x < 0 || x >= tm.Cols {
		return terrain.Coord{}, false
	}
	return terrain.Coord{X: x, Y: y}, true
}

// Pan moves the camera, clamped to the map.
func (tm *Tilemap) Pan(dx, dy float64) {
	tm.CameraX += dx
	tm.CameraY += dy
	tm.clampCamera()
}

func (tm *Tilemap) clampCamera() {
	w, h := tm.WorldSize()

	if tm.CameraX > w-ScreenWidth {
		tm.CameraX = w - ScreenWidth
	}
	if tm.CameraX < 0 {
		tm.CameraX = 0
	}
	if tm.CameraY > h-ScreenHeight {
		tm.CameraY = h - ScreenHeight
	}
	if tm.CameraY < 0 {
		tm.CameraY = 0
	}
}

func (tm *Tilemap) Draw(screen *ebiten.Image, outline bool) {
	if tm.Grid == nil || tm.CellSize <= 0 {
		return
	}

	pitch := tm.CellSize * rowPitch
	startRow := int(tm.CameraY/pitch) - 1
	endRow := startRow + int(ScreenHeight/pitch) + 3
	startCol := int(tm.CameraX/tm.CellSize) - 1
	endCol := startCol + int(ScreenWidth/tm.CellSize) + 3

	if startRow < 0 {
		startRow = 0
	}
	if endRow > tm.Rows {
		endRow = tm.Rows
	}
	if startCol < 0 {
		startCol = 0
	}
	if endCol > tm.Cols {
		endCol = tm.Cols
	}

	for row := startRow; row < endRow; row++ {
		y := tm.Rows - 1 - row
		for x := startCol; x < endCol; x++ {
			wx, wy := tm.CellOrigin(x, y)
			sx := float32(wx - tm.CameraX)
			sy := float32(wy - tm.CameraY)
			tileID := tm.Grid[y][x]

			if img := tm.tileImage(tileID); img != nil {
				tm.DrawOpts.GeoM.Reset()
				tm.DrawOpts.GeoM.Scale(tm.CellSize/float64(tm.TileSize), pitch/float64(tm.TileSize))
				tm.DrawOpts.GeoM.Translate(float64(sx), float64(sy))
				screen.DrawImage(img, tm.DrawOpts)
			} else {
				clr, ok := tilePalette[tileID]
				if !ok {
					clr = color.RGBA{200, 0, 200, 255}
				}
				vector.DrawFilledRect(screen, sx, sy, float32(tm.CellSize), float32(pitch), clr, false)
			}

			if outline {
				vector.StrokeRect(screen, sx, sy, float32(tm.CellSize), float32(pitch), 1, color.RGBA{0, 0, 0, 60}, false)
			}
		}
	}
}

// Lazy atlas lookup; nil without a tileset
func (tm *Tilemap) tileImage(tileID int) *ebiten.Image {
	if tm.Tileset == nil || tileID < 0 {
		return nil
	}
	if cached, ok := tm.TileCache[tileID]; ok {
		return cached
	}

	bounds := tm.Tileset.Bounds()
	tilesetCols := bounds.Dx() / tm.TileSize
	if tilesetCols == 0 {
		return nil
	}
	tsX := (tileID % tilesetCols) * tm.TileSize
	tsY := (tileID / tilesetCols) * tm.TileSize
	if tsX+tm.TileSize > bounds.Dx() || tsY+tm.TileSize > bounds.Dy() {
		tm.TileCache[tileID] = nil
		return nil
	}

	rect := image.Rect(tsX, tsY, tsX+tm.TileSize, tsY+tm.TileSize)
	img := tm.Tileset.SubImage(rect).(*ebiten.Image)
	tm.TileCache[tileID] = img
	return img
}
