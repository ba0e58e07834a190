package window

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/shvbsle/skirmish/internal/render"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// maxGlyphs bounds the text cache; HUD strings change every kill.
const maxGlyphs = 128

var face = basicfont.Face7x13

func drawScene(screen *ebiten.Image, sc render.Scene, glyphs *glyphCache) {
	screen.Fill(sc.Background)

	for _, op := range sc.Rects {
		x, y := float32(op.Rect.X), float32(op.Rect.Y)
		w, h := float32(op.Rect.W), float32(op.Rect.H)
		vector.DrawFilledRect(screen, x, y, w, h, op.Fill, false)
		if op.StrokeWidth > 0 {
			vector.StrokeRect(screen, x, y, w, h, float32(op.StrokeWidth), op.Stroke, false)
		}
	}

	for _, op := range sc.Texts {
		if op.Shadow != nil {
			shadow := op
			shadow.X += render.ShadowOffset
			shadow.Y += render.ShadowOffset
			shadow.Color = *op.Shadow
			drawText(screen, shadow, glyphs)
		}
		drawText(screen, op, glyphs)
	}
}

// drawText renders the bitmap font at its native 13px once and scales the
// result up to the requested size.
func drawText(screen *ebiten.Image, op render.TextOp, glyphs *glyphCache) {
	img := glyphs.get(op.Text, op.Color)
	if img == nil {
		return
	}

	size := op.Size
	if size == 0 {
		size = render.SizeSmall
	}
	scale := float64(size) / float64(render.SizeSmall)

	x := op.X
	if op.Centered {
		x -= float64(img.Bounds().Dx()) * scale / 2
	}

	opts := &ebiten.DrawImageOptions{}
	opts.GeoM.Scale(scale, scale)
	opts.GeoM.Translate(x, op.Y)
	screen.DrawImage(img, opts)
}

type glyphKey struct {
	text string
	clr  color.RGBA
}

type glyphCache struct {
	images map[glyphKey]*ebiten.Image
}

func newGlyphCache() *glyphCache {
	return &glyphCache{images: make(map[glyphKey]*ebiten.Image)}
}

func (c *glyphCache) get(s string, clr color.RGBA) *ebiten.Image {
	key := glyphKey{text: s, clr: clr}
	if img, ok := c.images[key]; ok {
		return img
	}

	w := font.MeasureString(face, s).Ceil()
	h := face.Metrics().Height.Ceil()
	if w == 0 || h == 0 {
		return nil
	}

	if len(c.images) >= maxGlyphs {
		for k, img := range c.images {
			img.Deallocate()
			delete(c.images, k)
		}
	}

	img := ebiten.NewImage(w, h)
	text.Draw(img, s, face, 0, face.Metrics().Ascent.Ceil(), clr)
	c.images[key] = img
	return img
}
