package render

import (
	"fmt"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/scrollshooter/assets"
)

// SheetKey is the key prefabs use for the generated sprite sheet.
const SheetKey = "sheet"

// LoadImage returns the image registered under key, building the generated
// sheet on first use.
func LoadImage(key string) (*ebiten.Image, error) {
	if key == "" {
		return nil, fmt.Errorf("empty image key")
	}
	if img := GetImage(key); img != nil {
		return img, nil
	}
	if key != SheetKey {
		return nil, fmt.Errorf("failed to load image %s", key)
	}
	img := ebiten.NewImageFromImage(assets.Sheet())
	RegisterImage(key, img)
	return img, nil
}

// SubImage cuts a frame out of a registered sheet.
func SubImage(key string, src image.Rectangle) (*ebiten.Image, error) {
	sheet, err := LoadImage(key)
	if err != nil {
		return nil, err
	}
	if src.Empty() {
		return sheet, nil
	}
	sub, ok := sheet.SubImage(src).(*ebiten.Image)
	if !ok {
		return nil, fmt.Errorf("sub image %v of %s", src, key)
	}
	return sub, nil
}
