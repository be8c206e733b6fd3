package capture

import (
	"image"
	"image/draw"
	"math"

	"github.com/nfnt/resize"
	"github.com/rviscarra/multi-screenshot/internal/rdisplay"
)

func scaledSize(n int, scale float64) uint {
	return uint(math.Max(1, math.Round(float64(n)*scale)))
}

func downscale(buf rdisplay.PixelBuffer, scale float64) rdisplay.PixelBuffer {
	w, h := scaledSize(buf.Width, scale), scaledSize(buf.Height, scale)
	img := resize.Resize(w, h, buf.RGBA(), resize.Lanczos3)
	rgba, ok := img.(*image.RGBA)
	if !ok {
		rgba = image.NewRGBA(img.Bounds())
		draw.Draw(rgba, rgba.Bounds(), img, img.Bounds().Min, draw.Src)
	}
	return rdisplay.FromRGBA(rgba)
}
