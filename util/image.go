package util

import (
	"image"
	"image/color"
)

// GrayFromImage 将任意图像转换为灰度图像
func GrayFromImage(img image.Image) *image.Gray {
	bounds := img.Bounds()
	gray := image.NewGray(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			pixel := img.At(x, y)
			g := color.GrayModel.Convert(pixel).(color.Gray)
			gray.SetGray(x-bounds.Min.X, y-bounds.Min.Y, g)
		}
	}
	return gray
}
