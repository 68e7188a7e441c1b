package output

import (
	"image"

	"github.com/nfnt/resize"
)

// Scale image to the given width, preserving its aspect ratio.
func Thumbnail(img image.Image, width uint) image.Image {
	if width == 0 || int(width) >= img.Bounds().Dx() {
		return img
	}
	return resize.Resize(width, 0, img, resize.Lanczos3)
}
