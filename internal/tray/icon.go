package tray

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"sync"
)

const iconSize = 64

var (
	iconOnce  sync.Once
	iconBytes []byte
)

// Icon returns the tray icon as PNG: a white disc on a blue square.
func Icon() []byte {
	iconOnce.Do(func() {
		iconBytes = renderIcon()
	})
	return iconBytes
}

func renderIcon() []byte {
	img := image.NewNRGBA(image.Rect(0, 0, iconSize, iconSize))
	bg := color.NRGBA{R: 40, G: 90, B: 140, A: 255}
	fg := color.NRGBA{R: 255, G: 255, B: 255, A: 255}

	// Ellipse bounded by 16..48 on both axes.
	const cx, cy, r = 32.0, 32.0, 16.0
	for y := 0; y < iconSize; y++ {
		for x := 0; x < iconSize; x++ {
			dx := float64(x) + 0.5 - cx
			dy := float64(y) + 0.5 - cy
			if dx*dx+dy*dy <= r*r {
				img.SetNRGBA(x, y, fg)
			} else {
				img.SetNRGBA(x, y, bg)
			}
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil
	}
	return buf.Bytes()
}
