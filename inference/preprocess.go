package inference

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// ImageSize is the input resolution the classifier was trained on.
const ImageSize = 128

// Preprocess reproduces the classifier's training-time pipeline: 3-channel
// colour, single-channel grayscale, bilinear resize to 128x128, pixel values
// scaled to [0,1] by dividing by 255, and a trailing channel dimension. The
// batch dimension is added when the predict request is encoded.
func Preprocess(img image.Image) [][][]float32 {
	gray := toGrayscale(img)

	resized := image.NewGray(image.Rect(0, 0, ImageSize, ImageSize))
	draw.BiLinear.Scale(resized, resized.Bounds(), gray, gray.Bounds(), draw.Src, nil)

	tensor := make([][][]float32, ImageSize)
	for y := 0; y < ImageSize; y++ {
		row := make([][]float32, ImageSize)
		for x := 0; x < ImageSize; x++ {
			row[x] = []float32{float32(resized.GrayAt(x, y).Y) / 255.0}
		}
		tensor[y] = row
	}

	return tensor
}

// toGrayscale collapses the decoded image to one luminance channel using the
// 0.299R + 0.587G + 0.114B weighting the original pipeline used.
func toGrayscale(img image.Image) *image.Gray {
	bounds := img.Bounds()
	gray := image.NewGray(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))

	for y := 0; y < bounds.Dy(); y++ {
		for x := 0; x < bounds.Dx(); x++ {
			r, g, b, _ := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			// RGBA returns 16-bit channels; round, then drop to 8 bits
			lum := (299*r + 587*g + 114*b + 500) / 1000
			gray.SetGray(x, y, color.Gray{Y: uint8(lum >> 8)})
		}
	}

	return gray
}
