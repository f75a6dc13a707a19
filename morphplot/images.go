// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg"
	_ "image/png"
	"math"
	"os"
	"path/filepath"

	"golang.org/x/image/draw"
)

const (
	// brightness scales photograph intensities. The raw photos are
	// underexposed.
	brightness = 1.75

	// thumbSize bounds the longer side of a photograph thumbnail in
	// pixels.
	thumbSize = 240
)

// loadPhotos reads the photographs 0.jpg through (n-1).jpg from dir
// as brightened thumbnails.
func loadPhotos(dir string, n int) ([]image.Image, error) {
	photos := make([]image.Image, n)
	for i := range photos {
		var err error
		photos[i], err = loadPhoto(filepath.Join(dir, fmt.Sprintf("%d.jpg", i)))
		if err != nil {
			return nil, err
		}
	}
	return photos, nil
}

func loadPhoto(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	src, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return brighten(thumbnail(src, thumbSize), brightness), nil
}

// thumbnail scales src down so its longer side is at most size
// pixels. Smaller images are returned as is.
func thumbnail(src image.Image, size int) image.Image {
	sb := src.Bounds()
	w, h := sb.Dx(), sb.Dy()
	if w <= size && h <= size {
		return src
	}
	if w >= h {
		w, h = size, int(math.Round(float64(h)*float64(size)/float64(w)))
	} else {
		w, h = int(math.Round(float64(w)*float64(size)/float64(h))), size
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.BiLinear.Scale(dst, dst.Bounds(), src, sb, draw.Over, nil)
	return dst
}

// brighten scales the color channels of src by f, clipping at full
// intensity.
func brighten(src image.Image, f float64) *image.NRGBA {
	b := src.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	scale := func(v uint8) uint8 {
		return uint8(math.Min(255, math.Round(float64(v)*f)))
	}
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.NRGBAModel.Convert(src.At(x, y)).(color.NRGBA)
			dst.SetNRGBA(x-b.Min.X, y-b.Min.Y, color.NRGBA{scale(c.R), scale(c.G), scale(c.B), c.A})
		}
	}
	return dst
}
