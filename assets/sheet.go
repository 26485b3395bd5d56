package assets

import (
	"image"
	"image/color"
	"image/draw"
	"sync"

	"golang.org/x/image/vector"
)

const (
	SheetWidth  = 256
	SheetHeight = 128
)

// Named sheet regions. Prefab frame rects point into these.
var (
	TilesRegion   = image.Rect(0, 0, 128, 16)
	RockRegion    = image.Rect(128, 0, 144, 64)
	WallRegion    = image.Rect(144, 0, 176, 32)
	PlayerIdle    = image.Rect(0, 32, 36, 57)
	PlayerThrust  = image.Rect(0, 64, 36, 89)
	EnemyFrameA   = image.Rect(48, 32, 72, 52)
	EnemyFrameB   = image.Rect(80, 32, 104, 52)
	ShotRegion    = image.Rect(112, 32, 117, 37)
	EnemyShotRect = image.Rect(120, 32, 125, 37)
)

var (
	groundColors = []color.NRGBA{
		{R: 0x1d, G: 0x2b, B: 0x53, A: 0xff},
		{R: 0x22, G: 0x32, B: 0x5e, A: 0xff},
		{R: 0x1a, G: 0x26, B: 0x4a, A: 0xff},
		{R: 0x25, G: 0x36, B: 0x63, A: 0xff},
		{R: 0x1d, G: 0x2b, B: 0x53, A: 0xff},
		{R: 0x20, G: 0x2e, B: 0x58, A: 0xff},
	}
	wallColors = []color.NRGBA{
		{R: 0x5f, G: 0x57, B: 0x4f, A: 0xff},
		{R: 0x6f, G: 0x67, B: 0x5f, A: 0xff},
	}
	rockColor   = color.NRGBA{R: 0xab, G: 0x52, B: 0x36, A: 0xff}
	crackColor  = color.NRGBA{R: 0x3a, G: 0x1c, B: 0x12, A: 0xff}
	playerColor = color.NRGBA{R: 0x29, G: 0xad, B: 0xff, A: 0xff}
	flameColor  = color.NRGBA{R: 0xff, G: 0xa3, B: 0x00, A: 0xff}
	enemyColor  = color.NRGBA{R: 0xff, G: 0x00, B: 0x4d, A: 0xff}
	shotColor   = color.NRGBA{R: 0xff, G: 0xec, B: 0x27, A: 0xff}
	eShotColor  = color.NRGBA{R: 0xff, G: 0x77, B: 0xa8, A: 0xff}
)

var (
	sheetOnce sync.Once
	sheet     *image.NRGBA
)

// Sheet returns the generated sprite sheet. It is built once and shared.
func Sheet() *image.NRGBA {
	sheetOnce.Do(func() {
		sheet = buildSheet()
	})
	return sheet
}

func buildSheet() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, SheetWidth, SheetHeight))

	for i, c := range groundColors {
		r := tileRect(i)
		fill(img, r, c)
		// a couple of specks so ground variants read differently
		img.SetNRGBA(r.Min.X+2+i*2, r.Min.Y+3+i, lighten(c, 24))
		img.SetNRGBA(r.Min.X+11-i, r.Min.Y+12-i, lighten(c, 16))
	}
	for i, c := range wallColors {
		r := tileRect(len(groundColors) + i)
		fill(img, r, c)
		bricks(img, r, lighten(c, -30))
	}

	for stage := 0; stage < 4; stage++ {
		r := image.Rect(RockRegion.Min.X, RockRegion.Min.Y+stage*16, RockRegion.Max.X, RockRegion.Min.Y+(stage+1)*16)
		polygon(img, r, rockColor, [][2]float32{{3, 1}, {13, 2}, {15, 9}, {11, 15}, {2, 14}, {1, 6}})
		for c := 0; c < stage*3; c++ {
			img.SetNRGBA(r.Min.X+4+c, r.Min.Y+4+(c*5)%9, crackColor)
		}
	}

	fill(img, WallRegion, wallColors[0])
	bricks(img, WallRegion, lighten(wallColors[0], -30))

	ship := [][2]float32{{18, 0}, {35, 20}, {24, 17}, {12, 17}, {0, 20}}
	polygon(img, PlayerIdle, playerColor, ship)
	polygon(img, PlayerThrust, playerColor, ship)
	polygon(img, PlayerThrust, flameColor, [][2]float32{{13, 18}, {23, 18}, {18, 25}})

	polygon(img, EnemyFrameA, enemyColor, [][2]float32{{0, 0}, {24, 0}, {12, 20}})
	polygon(img, EnemyFrameB, enemyColor, [][2]float32{{2, 0}, {22, 0}, {12, 18}})
	polygon(img, EnemyFrameB, flameColor, [][2]float32{{9, 0}, {15, 0}, {12, 4}})

	fill(img, ShotRegion, shotColor)
	fill(img, EnemyShotRect, eShotColor)
	return img
}

// tileRect is the sheet frame of tile i in the 8-wide tile strip.
func tileRect(i int) image.Rectangle {
	perRow := TilesRegion.Dx() / 16
	x := TilesRegion.Min.X + (i%perRow)*16
	y := TilesRegion.Min.Y + (i/perRow)*16
	return image.Rect(x, y, x+16, y+16)
}

func fill(img draw.Image, r image.Rectangle, c color.Color) {
	draw.Draw(img, r, image.NewUniform(c), image.Point{}, draw.Src)
}

func bricks(img *image.NRGBA, r image.Rectangle, mortar color.NRGBA) {
	for y := r.Min.Y; y < r.Max.Y; y += 8 {
		for x := r.Min.X; x < r.Max.X; x++ {
			img.SetNRGBA(x, y, mortar)
		}
		off := 0
		if (y-r.Min.Y)/8%2 == 1 {
			off = 4
		}
		for x := r.Min.X + off; x < r.Max.X; x += 8 {
			for yy := y; yy < y+8 && yy < r.Max.Y; yy++ {
				img.SetNRGBA(x, yy, mortar)
			}
		}
	}
}

// polygon rasterizes a closed path given in frame-local coordinates.
func polygon(img draw.Image, r image.Rectangle, c color.Color, pts [][2]float32) {
	if len(pts) < 3 {
		return
	}
	z := vector.NewRasterizer(r.Dx(), r.Dy())
	z.MoveTo(pts[0][0], pts[0][1])
	for _, p := range pts[1:] {
		z.LineTo(p[0], p[1])
	}
	z.ClosePath()
	z.Draw(img, r, image.NewUniform(c), image.Point{})
}

func lighten(c color.NRGBA, d int) color.NRGBA {
	adj := func(v uint8) uint8 {
		n := int(v) + d
		if n < 0 {
			return 0
		}
		if n > 255 {
			return 255
		}
		return uint8(n)
	}
	return color.NRGBA{R: adj(c.R), G: adj(c.G), B: adj(c.B), A: c.A}
}
