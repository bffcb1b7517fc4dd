package codec

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
)

// GeneratePlot menggambar satu periode sebagai PNG (x: indeks sampel, y: nilai 0-255).
func GeneratePlot(table []uint8, scale int) ([]byte, error) {
	if len(table) == 0 {
		return nil, fmt.Errorf("empty table")
	}
	if scale <= 0 {
		scale = 1
	}

	width := len(table) * scale
	const height = 256

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	bg := color.RGBA{R: 16, G: 16, B: 16, A: 255}
	mid := color.RGBA{R: 80, G: 80, B: 80, A: 255}
	fg := color.RGBA{R: 64, G: 255, B: 64, A: 255}

	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			img.Set(x, y, bg)
		}
		img.Set(x, height-1-128, mid)
	}

	for i, v := range table {
		y := height - 1 - int(v)
		for dx := 0; dx < scale; dx++ {
			img.Set(i*scale+dx, y, fg)
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
